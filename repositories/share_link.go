package repositories

import (
	"errors"
	"time"

	"gorm.io/gorm"
	"shipment-proof-service/core"
	"shipment-proof-service/models"
)

// ShareLinkRepository is the repo for accessing share links
type ShareLinkRepository struct {
	db *gorm.DB
}

func NewShareLinkRepository(db *gorm.DB) *ShareLinkRepository {
	return &ShareLinkRepository{db: db}
}

// Create inserts a new share link. A token collision trips the unique index
// and surfaces as a Conflict rather than overwriting an existing binding.
func (r *ShareLinkRepository) Create(link *models.ShareLink) error {
	err := r.db.Create(link).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.Conflict("share link token collision", nil)
	}
	return err
}

// GetByToken looks a link up by exact token match, with its video loaded.
func (r *ShareLinkRepository) GetByToken(token string) (*models.ShareLink, error) {
	var link models.ShareLink
	err := r.db.Preload("ProofVideo.Shipment").Preload("ProofVideo").
		Where("token = ?", token).
		First(&link).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("share link", token)
	}
	if err != nil {
		return nil, err
	}
	return &link, nil
}

// DeleteForOrganization removes one link by id, scoped through its video's
// shipment to the organization. Returns NotFound when nothing was deleted.
func (r *ShareLinkRepository) DeleteForOrganization(organizationID, id string) error {
	result := r.db.
		Where(`id = ? AND proof_video_id IN (
			SELECT proof_videos.id FROM proof_videos
			JOIN shipments ON shipments.id = proof_videos.shipment_id
			WHERE shipments.organization_id = ?)`, id, organizationID).
		Delete(&models.ShareLink{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return core.NotFound("share link", id)
	}
	return nil
}

// DeleteExpired removes every link past its expiry in one statement and
// returns the number removed.
func (r *ShareLinkRepository) DeleteExpired(now time.Time) (int64, error) {
	result := r.db.
		Where("expires_at < ?", now).
		Delete(&models.ShareLink{})
	return result.RowsAffected, result.Error
}
