package models

import "time"

// KVRecord is the single persisted table: one JSON blob per feature key.
// All higher-level state (links, profile, missions, currency, settings)
// serializes into Value; there is no relational integrity across keys.
type KVRecord struct {
	Key       string    `gorm:"primaryKey" json:"key"`
	Value     string    `gorm:"type:jsonb;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (KVRecord) TableName() string {
	return "kv_records"
}
