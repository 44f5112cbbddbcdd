package repositories

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
)

// Fixed keyspaces. Each is written whole on every change and never
// interleaves with the others.
const (
	KeyWizardState = "pricing_wizard_state"
	KeyHistory     = "pricing_history"
	KeyBranding    = "branding_settings"
)

type StoreRepositoryInterface interface {
	Read(ctx context.Context, key string) (string, bool, error)
	Write(ctx context.Context, key string, value string) error
	Clear(ctx context.Context, key string) error
}

type StoreRepository struct {
	db *gorm.DB
}

func NewStoreRepository(db *gorm.DB) StoreRepositoryInterface {
	return &StoreRepository{db: db}
}

func (s *StoreRepository) Read(ctx context.Context, key string) (string, bool, error) {
	var entry db_models.KVEntry
	err := s.db.WithContext(ctx).Where("key = ?", key).First(&entry).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return entry.Value, true, nil
}

func (s *StoreRepository) Write(ctx context.Context, key string, value string) error {
	entry := db_models.KVEntry{Key: key, Value: value}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&entry).Error
}

func (s *StoreRepository) Clear(ctx context.Context, key string) error {
	return s.db.WithContext(ctx).Where("key = ?", key).Delete(&db_models.KVEntry{}).Error
}
