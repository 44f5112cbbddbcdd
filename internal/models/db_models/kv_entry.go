package db_models

import (
	"time"

	"gorm.io/gorm"
)

// KVEntry backs the store adapter: one row per keyspace, whole-value JSON.
type KVEntry struct {
	Key       string `gorm:"primaryKey;size:128"`
	Value     string `gorm:"type:text"`
	UpdatedAt int64
}

func (e *KVEntry) BeforeSave(tx *gorm.DB) error {
	e.UpdatedAt = time.Now().Unix()
	return nil
}
