package repositories

import (
	"errors"

	"gorm.io/gorm"
	"shipment-proof-service/core"
	"shipment-proof-service/models"
)

// ProofVideoRepository is the repo for accessing proof videos
type ProofVideoRepository struct {
	db *gorm.DB
}

func NewProofVideoRepository(db *gorm.DB) *ProofVideoRepository {
	return &ProofVideoRepository{db: db}
}

func (r *ProofVideoRepository) WithTx(tx *gorm.DB) *ProofVideoRepository {
	return &ProofVideoRepository{db: tx}
}

// Create inserts the proof video. The unique index on shipment_id makes a
// second insert for the same shipment fail here with a Conflict, which is the
// losing side of the double-upload race.
func (r *ProofVideoRepository) Create(video *models.ProofVideo) error {
	err := r.db.Create(video).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.Conflict("a proof video already exists for this shipment", map[string]any{
			"shipmentId": video.ShipmentID,
		})
	}
	return err
}

// ExistsForShipment reports whether a proof video is already recorded
// against the shipment.
func (r *ProofVideoRepository) ExistsForShipment(shipmentID string) (bool, error) {
	var count int64
	err := r.db.Model(&models.ProofVideo{}).
		Where("shipment_id = ?", shipmentID).
		Count(&count).Error
	return count > 0, err
}

// GetForOrganization returns the video only if its shipment belongs to the
// organization.
func (r *ProofVideoRepository) GetForOrganization(organizationID, id string) (*models.ProofVideo, error) {
	var video models.ProofVideo
	err := r.db.
		Joins("JOIN shipments ON shipments.id = proof_videos.shipment_id").
		Where("proof_videos.id = ? AND shipments.organization_id = ?", id, organizationID).
		First(&video).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("proof video", id)
	}
	if err != nil {
		return nil, err
	}
	return &video, nil
}
