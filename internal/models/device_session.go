package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DeviceSession is one device a subscriber is logged in from.
type DeviceSession struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Email        string    `gorm:"size:255;not null;index" json:"email"`
	IPAddress    string    `gorm:"size:64;not null" json:"ip_address"`
	DeviceType   string    `gorm:"size:20;not null" json:"device_type"`
	UserAgent    string    `gorm:"size:1000" json:"user_agent"`
	LastActivity time.Time `gorm:"not null;index" json:"last_activity"`
	CreatedAt    time.Time `json:"created_at"`
}

func (d *DeviceSession) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (DeviceSession) TableName() string {
	return "device_sessions"
}
