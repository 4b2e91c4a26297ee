package models

import (
	"time"

	"gorm.io/datatypes"
)

// KVEntry is one stored blob.
type KVEntry struct {
	Key       string         `gorm:"column:kv_key;type:varchar(128);primaryKey"`
	Value     datatypes.JSON `gorm:"column:value;not null"`
	UpdatedAt time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

func (KVEntry) TableName() string { return "kv_entries" }
