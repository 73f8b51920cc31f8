package models

import "time"

// ProofVideo is the sealed evidence artifact. The unique index on ShipmentID
// is what makes the one-video-per-shipment rule hold under concurrent
// uploads; application-level checks are only a fast path in front of it.
type ProofVideo struct {
	ID         string    `gorm:"type:uuid;primaryKey" json:"id"`
	ShipmentID string    `gorm:"type:uuid;not null;uniqueIndex:idx_proof_videos_shipment" json:"shipmentId"`
	VideoURL   string    `gorm:"size:512;not null" json:"videoUrl"`
	UploadedBy string    `gorm:"type:uuid;not null" json:"uploadedBy"`
	CreatedAt  time.Time `json:"createdAt"`

	Shipment *Shipment `gorm:"foreignKey:ShipmentID" json:"-"`
}
