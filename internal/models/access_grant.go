package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AccessGrant is the active entitlement of one email.
type AccessGrant struct {
	ID            uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	Email         string     `gorm:"size:255;not null;uniqueIndex" json:"email"`
	PlanType      string     `gorm:"size:20;not null" json:"plan_type"`
	ExpiresAt     *time.Time `json:"expires_at,omitempty"`
	DownloadsLeft *int       `json:"downloads_left,omitempty"`
	GrantedAt     time.Time  `gorm:"not null" json:"granted_at"`
	GrantedBy     string     `gorm:"size:255" json:"granted_by,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

func (g *AccessGrant) BeforeCreate(tx *gorm.DB) error {
	if g.ID == uuid.Nil {
		g.ID = uuid.New()
	}
	return nil
}

func (AccessGrant) TableName() string {
	return "active_access"
}
