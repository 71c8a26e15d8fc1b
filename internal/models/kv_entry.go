package models

import "time"

// KVEntry backs the durable key-value store.
type KVEntry struct {
	Key       string    `gorm:"size:255;primaryKey" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for KVEntry
func (KVEntry) TableName() string {
	return "kv_entries"
}
