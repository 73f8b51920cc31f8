package models

import "time"

type ShipmentStatus string

const (
	StatusCreated    ShipmentStatus = "CREATED"
	StatusRecording  ShipmentStatus = "RECORDING"
	StatusProcessing ShipmentStatus = "PROCESSING"
	StatusSealed     ShipmentStatus = "SEALED"
	StatusFailed     ShipmentStatus = "FAILED"
)

// allowedTransitions is the whole lifecycle rule in one place. Forward
// progress is strictly linear; FAILED is reachable from any non-terminal
// state. Terminal states have no entry.
var allowedTransitions = map[ShipmentStatus][]ShipmentStatus{
	StatusCreated:    {StatusRecording, StatusFailed},
	StatusRecording:  {StatusProcessing, StatusFailed},
	StatusProcessing: {StatusSealed, StatusFailed},
	StatusSealed:     {},
	StatusFailed:     {},
}

// IsValid reports whether s is one of the known lifecycle statuses.
func (s ShipmentStatus) IsValid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

// IsTerminal reports whether s admits no further transitions.
func (s ShipmentStatus) IsTerminal() bool {
	return s == StatusSealed || s == StatusFailed
}

// AllowedNext returns the statuses reachable from s. The slice is a copy.
func (s ShipmentStatus) AllowedNext() []ShipmentStatus {
	next := allowedTransitions[s]
	out := make([]ShipmentStatus, len(next))
	copy(out, next)
	return out
}

// CanTransitionTo reports whether the lifecycle table permits moving from s
// to next. Same-state is not a transition and is handled by the caller.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Shipment is the audit record a proof video gets sealed against. Rows are
// never deleted; once the status is terminal the row never changes again.
type Shipment struct {
	ID             string         `gorm:"type:uuid;primaryKey" json:"id"`
	AWB            string         `gorm:"size:100;not null;uniqueIndex:idx_shipments_awb_org" json:"awb"`
	OrganizationID string         `gorm:"type:uuid;not null;uniqueIndex:idx_shipments_awb_org;index" json:"organizationId"`
	CreatedByID    string         `gorm:"type:uuid;not null" json:"createdById"`
	Status         ShipmentStatus `gorm:"size:20;not null" json:"status"`
	CreatedAt      time.Time      `json:"createdAt"`
	UpdatedAt      time.Time      `json:"updatedAt"`

	ProofVideo *ProofVideo `gorm:"foreignKey:ShipmentID" json:"proofVideo,omitempty"`
}
