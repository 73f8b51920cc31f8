package models

import "time"

// ShareLink grants unauthenticated, time-bound read access to one proof
// video. The token is a server-generated bearer credential; its uniqueness is
// enforced by the index, never by a check-then-insert. Unlike shipments and
// videos, links may be deleted (revocation, expiry cleanup).
type ShareLink struct {
	ID           string    `gorm:"type:uuid;primaryKey" json:"id"`
	Token        string    `gorm:"size:64;not null;uniqueIndex:idx_share_links_token" json:"token"`
	ProofVideoID string    `gorm:"type:uuid;not null;index" json:"proofVideoId"`
	ExpiresAt    time.Time `gorm:"not null;index" json:"expiresAt"`
	CreatedAt    time.Time `json:"createdAt"`

	ProofVideo *ProofVideo `gorm:"foreignKey:ProofVideoID" json:"-"`
}

// Expired reports whether the link is past its validity at the given time.
func (l *ShareLink) Expired(now time.Time) bool {
	return now.After(l.ExpiresAt)
}
