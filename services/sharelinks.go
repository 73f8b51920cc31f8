package services

import (
	"crypto/rand"
	"encoding/hex"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shipment-proof-service/core"
	"shipment-proof-service/metrics"
	"shipment-proof-service/models"
	"shipment-proof-service/repositories"
)

// tokenByteLength gives 256 bits of entropy, rendered as 64 hex characters.
const tokenByteLength = 32

// ShareLinkService issues and validates the time-bound bearer tokens that
// grant unauthenticated read access to a proof video.
type ShareLinkService struct {
	logger *zap.Logger
	links  *repositories.ShareLinkRepository
	videos *repositories.ProofVideoRepository
}

func NewShareLinkService(logger *zap.Logger, db *gorm.DB) *ShareLinkService {
	return &ShareLinkService{
		logger: logger,
		links:  repositories.NewShareLinkRepository(db),
		videos: repositories.NewProofVideoRepository(db),
	}
}

// Issue mints a share link for the proof video, valid for the given number
// of hours. The token is generated server-side and its uniqueness rests on
// the storage constraint, so a collision fails rather than rebinding an
// existing token.
func (s *ShareLinkService) Issue(organizationID, proofVideoID string, expiresInHours int) (*models.ShareLink, error) {
	if expiresInHours <= 0 {
		return nil, core.InvalidArgument("expiresInHours must be a positive number of hours")
	}

	video, err := s.videos.GetForOrganization(organizationID, proofVideoID)
	if err != nil {
		return nil, err
	}

	token, err := generateToken()
	if err != nil {
		return nil, err
	}

	link := &models.ShareLink{
		ID:           uuid.NewString(),
		Token:        token,
		ProofVideoID: video.ID,
		ExpiresAt:    time.Now().UTC().Add(time.Duration(expiresInHours) * time.Hour),
	}

	if err := s.links.Create(link); err != nil {
		return nil, err
	}

	metrics.ShareLinksIssued.Inc()
	s.logger.Info("Share link issued",
		zap.String("share_link_id", link.ID),
		zap.String("proof_video_id", video.ID),
		zap.Time("expires_at", link.ExpiresAt),
	)
	return link, nil
}

// Validate resolves a token to its proof video. Unknown tokens are NotFound;
// known but stale tokens are Expired. Expired links stay in storage until
// the cleanup worker removes them.
func (s *ShareLinkService) Validate(token string) (*models.ProofVideo, error) {
	link, err := s.links.GetByToken(token)
	if err != nil {
		metrics.ShareLinkValidations.WithLabelValues("not_found").Inc()
		return nil, err
	}

	if link.Expired(time.Now().UTC()) {
		metrics.ShareLinkValidations.WithLabelValues("expired").Inc()
		return nil, core.Expired("share link has expired")
	}

	metrics.ShareLinkValidations.WithLabelValues("ok").Inc()
	return link.ProofVideo, nil
}

// Revoke deletes one share link, scoped to the caller's organization.
func (s *ShareLinkService) Revoke(organizationID, id string) error {
	if err := s.links.DeleteForOrganization(organizationID, id); err != nil {
		return err
	}
	s.logger.Info("Share link revoked", zap.String("share_link_id", id))
	return nil
}

// CleanupExpired removes every link past its expiry and returns the count.
// Zero is a normal result.
func (s *ShareLinkService) CleanupExpired() (int64, error) {
	removed, err := s.links.DeleteExpired(time.Now().UTC())
	if err != nil {
		return 0, err
	}
	metrics.ShareLinksCleaned.Add(float64(removed))
	return removed, nil
}

func generateToken() (string, error) {
	buf := make([]byte, tokenByteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
