package services

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shipment-proof-service/core"
	"shipment-proof-service/messaging"
	"shipment-proof-service/metrics"
	"shipment-proof-service/models"
	"shipment-proof-service/repositories"
	"shipment-proof-service/storage"
)

// ProofService coordinates the one-shot upload: it gates the attach against
// the shipment's current state, stores the binary, and then inserts the
// video and seals the shipment as a single unit of work.
type ProofService struct {
	logger    *zap.Logger
	db        *gorm.DB
	shipments *repositories.ShipmentRepository
	videos    *repositories.ProofVideoRepository
	lifecycle *LifecycleService
	blobs     storage.BlobStore
	publisher messaging.Publisher
}

func NewProofService(
	logger *zap.Logger,
	db *gorm.DB,
	lifecycle *LifecycleService,
	blobs storage.BlobStore,
	publisher messaging.Publisher,
) *ProofService {
	return &ProofService{
		logger:    logger,
		db:        db,
		shipments: repositories.NewShipmentRepository(db),
		videos:    repositories.NewProofVideoRepository(db),
		lifecycle: lifecycle,
		blobs:     blobs,
		publisher: publisher,
	}
}

// AttachProof uploads the proof video for a shipment and seals it.
//
// The blob store call happens before any durable write, so a storage failure
// leaves no trace in the database. The insert and the seal then commit
// together or not at all: the unique index on the video's shipment reference
// makes the loser of a concurrent double upload fail inside the transaction,
// and the conditional seal rejects any status change that interleaved since
// the eligibility check.
func (s *ProofService) AttachProof(ctx context.Context, organizationID, shipmentID, uploaderID string, content io.Reader, filename string) (*models.ProofVideo, error) {
	shipment, err := s.shipments.GetByID(organizationID, shipmentID)
	if err != nil {
		return nil, err
	}

	exists, err := s.videos.ExistsForShipment(shipmentID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, core.Conflict("a proof video already exists for this shipment", map[string]any{
			"shipmentId": shipmentID,
		})
	}

	if shipment.Status.IsTerminal() {
		return nil, core.InvalidState(
			"proof can only be attached while the shipment is open", string(shipment.Status))
	}

	videoURL, err := s.blobs.Store(ctx, content, filename)
	if err != nil {
		metrics.ProofUploadFailures.Inc()
		s.logger.Error("Proof upload failed",
			zap.String("shipment_id", shipmentID),
			zap.Error(err),
		)
		return nil, core.UploadFailed(err)
	}

	video := &models.ProofVideo{
		ID:         uuid.NewString(),
		ShipmentID: shipmentID,
		VideoURL:   videoURL,
		UploadedBy: uploaderID,
	}

	if err := s.commitProof(video, shipment); err != nil {
		return nil, err
	}

	metrics.ProofsAttached.Inc()
	s.logger.Info("Shipment sealed with proof video",
		zap.String("shipment_id", shipmentID),
		zap.String("proof_video_id", video.ID),
	)

	// Best effort: the seal is already committed, a broker hiccup must not
	// undo it.
	event := messaging.ProofSealedEvent{
		ShipmentID:     shipment.ID,
		AWB:            shipment.AWB,
		OrganizationID: shipment.OrganizationID,
		ProofVideoID:   video.ID,
		VideoURL:       video.VideoURL,
		SealedAt:       time.Now().UTC(),
	}
	if err := s.publisher.PublishProofSealed(event); err != nil {
		s.logger.Warn("Failed to publish proof sealed event",
			zap.String("shipment_id", shipment.ID),
			zap.Error(err),
		)
	}

	return video, nil
}

// commitProof persists the video and the seal as one unit of work. Either
// write failing rolls back the other: no video without a seal, no seal
// through this path without its video.
func (s *ProofService) commitProof(video *models.ProofVideo, shipment *models.Shipment) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := s.videos.WithTx(tx).Create(video); err != nil {
			return err
		}
		return s.lifecycle.SealInTx(tx, shipment)
	})
}
