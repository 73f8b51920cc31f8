package models

import "time"

type Organization struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:200;not null" json:"name"`
	CreatedAt time.Time `json:"createdAt"`
}

type User struct {
	ID             string    `gorm:"type:uuid;primaryKey" json:"id"`
	Email          string    `gorm:"size:255;not null;uniqueIndex:idx_users_email" json:"email"`
	PasswordHash   string    `gorm:"size:100;not null" json:"-"`
	OrganizationID string    `gorm:"type:uuid;not null;index" json:"organizationId"`
	CreatedAt      time.Time `json:"createdAt"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
