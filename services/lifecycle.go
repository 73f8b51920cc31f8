package services

import (
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"shipment-proof-service/core"
	"shipment-proof-service/metrics"
	"shipment-proof-service/models"
	"shipment-proof-service/repositories"
)

// LifecycleService owns the shipment status field. Every status change in
// the system goes through here; nothing else writes to it.
type LifecycleService struct {
	logger    *zap.Logger
	shipments *repositories.ShipmentRepository
}

func NewLifecycleService(logger *zap.Logger, db *gorm.DB) *LifecycleService {
	return &LifecycleService{
		logger:    logger,
		shipments: repositories.NewShipmentRepository(db),
	}
}

// CreateShipment records a new shipment in CREATED for the organization.
func (s *LifecycleService) CreateShipment(organizationID, userID, awb string) (*models.Shipment, error) {
	if awb == "" {
		return nil, core.InvalidArgument("awb is required")
	}

	shipment := &models.Shipment{
		ID:             uuid.NewString(),
		AWB:            awb,
		OrganizationID: organizationID,
		CreatedByID:    userID,
		Status:         models.StatusCreated,
	}

	if err := s.shipments.Create(shipment); err != nil {
		return nil, err
	}

	metrics.ShipmentsCreated.Inc()
	s.logger.Info("Shipment created",
		zap.String("shipment_id", shipment.ID),
		zap.String("awb", shipment.AWB),
	)
	return shipment, nil
}

func (s *LifecycleService) GetShipment(organizationID, id string) (*models.Shipment, error) {
	return s.shipments.GetByID(organizationID, id)
}

func (s *LifecycleService) ListShipments(organizationID string) ([]models.Shipment, error) {
	return s.shipments.GetAll(organizationID)
}

// RequestTransition moves the shipment to the requested status if the
// lifecycle table allows it. Requesting the current status is a no-op and
// always succeeds, including in terminal states; that is the single
// exception to terminal meaning frozen.
func (s *LifecycleService) RequestTransition(organizationID, id string, requested models.ShipmentStatus) (*models.Shipment, error) {
	if !requested.IsValid() {
		return nil, core.InvalidArgument("unknown status: " + string(requested))
	}

	shipment, err := s.shipments.GetByID(organizationID, id)
	if err != nil {
		return nil, err
	}

	if shipment.Status == requested {
		return shipment, nil
	}

	if !shipment.Status.CanTransitionTo(requested) {
		return nil, core.InvalidTransition(
			string(shipment.Status), string(requested), statusNames(shipment.Status.AllowedNext()))
	}

	// Conditioned on the status we just read, so a concurrent writer makes
	// this a zero-row update instead of a silent overwrite.
	ok, err := s.shipments.UpdateStatusFrom(id, shipment.Status, requested)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, core.Conflict("shipment was modified concurrently", map[string]any{"id": id})
	}

	metrics.TransitionsApplied.WithLabelValues(string(requested)).Inc()
	s.logger.Info("Shipment status changed",
		zap.String("shipment_id", id),
		zap.String("from", string(shipment.Status)),
		zap.String("to", string(requested)),
	)

	shipment.Status = requested
	return shipment, nil
}

// UpdateShipment changes mutable shipment fields. Terminal shipments are
// audit records and reject any change with ImmutableEntity, checked again
// inside the guarded update so the window between read and write is closed.
func (s *LifecycleService) UpdateShipment(organizationID, id, awb string) (*models.Shipment, error) {
	if awb == "" {
		return nil, core.InvalidArgument("awb is required")
	}

	shipment, err := s.shipments.GetByID(organizationID, id)
	if err != nil {
		return nil, err
	}

	if shipment.Status.IsTerminal() {
		return nil, core.ImmutableEntity("shipment", id, string(shipment.Status))
	}

	ok, err := s.shipments.UpdateFieldsIfActive(organizationID, id, map[string]any{"awb": awb})
	if err != nil {
		return nil, err
	}
	if !ok {
		// Raced with a seal or failure between the read above and the write.
		return nil, core.ImmutableEntity("shipment", id, string(shipment.Status))
	}

	shipment.AWB = awb
	return shipment, nil
}

// SealInTx moves the shipment from its observed status to SEALED inside the
// caller's transaction. Only the upload coordinator calls this, atomically
// with the proof video insert; eligibility was validated against the
// observed status, and the conditional update rejects any interleaved
// mutation with a Conflict.
func (s *LifecycleService) SealInTx(tx *gorm.DB, shipment *models.Shipment) error {
	ok, err := s.shipments.WithTx(tx).UpdateStatusFrom(shipment.ID, shipment.Status, models.StatusSealed)
	if err != nil {
		return err
	}
	if !ok {
		return core.Conflict("shipment was modified concurrently", map[string]any{"id": shipment.ID})
	}
	metrics.TransitionsApplied.WithLabelValues(string(models.StatusSealed)).Inc()
	return nil
}

func statusNames(statuses []models.ShipmentStatus) []string {
	names := make([]string, len(statuses))
	for i, status := range statuses {
		names[i] = string(status)
	}
	return names
}
