package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Download records one consumed report export.
type Download struct {
	ID              uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	Email           string         `gorm:"size:255;not null;index" json:"email"`
	CalculationData datatypes.JSON `json:"calculation_data"`
	CreatedAt       time.Time      `json:"created_at"`
}

func (d *Download) BeforeCreate(tx *gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	return nil
}

func (Download) TableName() string {
	return "downloads"
}
