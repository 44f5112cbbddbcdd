package services

import (
	"context"
	"encoding/json"
	"log"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type BrandingServiceInterface interface {
	Get(ctx context.Context) db_models.BrandingSettings
	Update(ctx context.Context, settings db_models.BrandingSettings) error
}

type BrandingService struct {
	store repositories.StoreRepositoryInterface
}

func NewBrandingService(store repositories.StoreRepositoryInterface) BrandingServiceInterface {
	return &BrandingService{store: store}
}

// Get returns the stored branding, or the default identity when nothing has
// been saved yet (or the stored value cannot be read).
func (b *BrandingService) Get(ctx context.Context) db_models.BrandingSettings {
	raw, ok, err := b.store.Read(ctx, repositories.KeyBranding)
	if err != nil {
		log.Printf("Failed to load branding settings: %v", err)
		return db_models.DefaultBranding()
	}
	if !ok {
		return db_models.DefaultBranding()
	}

	var settings db_models.BrandingSettings
	if err := json.Unmarshal([]byte(raw), &settings); err != nil {
		log.Printf("Discarding corrupt branding settings: %v", err)
		return db_models.DefaultBranding()
	}
	return settings
}

func (b *BrandingService) Update(ctx context.Context, settings db_models.BrandingSettings) error {
	raw, err := json.Marshal(settings)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if err := b.store.Write(ctx, repositories.KeyBranding, string(raw)); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}
