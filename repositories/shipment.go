package repositories

import (
	"errors"

	"gorm.io/gorm"
	"shipment-proof-service/core"
	"shipment-proof-service/models"
)

// ShipmentRepository is the repo for accessing shipments and related data
type ShipmentRepository struct {
	db *gorm.DB
}

// NewShipmentRepository creates a new repository with DB dependency
func NewShipmentRepository(db *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: db}
}

// WithTx returns a repository bound to the given transaction handle.
func (r *ShipmentRepository) WithTx(tx *gorm.DB) *ShipmentRepository {
	return &ShipmentRepository{db: tx}
}

// Create inserts a new shipment. A duplicate (awb, organization) pair
// surfaces as a Conflict.
func (r *ShipmentRepository) Create(shipment *models.Shipment) error {
	err := r.db.Create(shipment).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return core.Conflict("a shipment with this AWB already exists", map[string]any{
			"awb": shipment.AWB,
		})
	}
	return err
}

// GetByID returns one shipment scoped to the owning organization.
func (r *ShipmentRepository) GetByID(organizationID, id string) (*models.Shipment, error) {
	var shipment models.Shipment
	err := r.db.Preload("ProofVideo").
		Where("id = ? AND organization_id = ?", id, organizationID).
		First(&shipment).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, core.NotFound("shipment", id)
	}
	if err != nil {
		return nil, err
	}
	return &shipment, nil
}

// GetAll returns all shipments belonging to the organization.
func (r *ShipmentRepository) GetAll(organizationID string) ([]models.Shipment, error) {
	var shipments []models.Shipment
	err := r.db.Preload("ProofVideo").
		Where("organization_id = ?", organizationID).
		Order("created_at DESC").
		Find(&shipments).Error
	return shipments, err
}

// UpdateStatusFrom moves the shipment's status to next only if the row still
// holds the observed status. Returns false when a concurrent writer got there
// first; the caller decides what that means.
func (r *ShipmentRepository) UpdateStatusFrom(id string, observed, next models.ShipmentStatus) (bool, error) {
	result := r.db.Model(&models.Shipment{}).
		Where("id = ? AND status = ?", id, observed).
		Update("status", next)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

// UpdateFieldsIfActive applies field updates only while the shipment is in a
// non-terminal status. The status guard sits inside the UPDATE itself so the
// terminal check holds at commit time, not just at read time.
func (r *ShipmentRepository) UpdateFieldsIfActive(organizationID, id string, updates map[string]any) (bool, error) {
	result := r.db.Model(&models.Shipment{}).
		Where("id = ? AND organization_id = ? AND status NOT IN ?",
			id, organizationID, []models.ShipmentStatus{models.StatusSealed, models.StatusFailed}).
		Updates(updates)
	if errors.Is(result.Error, gorm.ErrDuplicatedKey) {
		return false, core.Conflict("a shipment with this AWB already exists", map[string]any{"id": id})
	}
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
