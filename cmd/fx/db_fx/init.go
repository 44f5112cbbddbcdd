package db_fx

import (
	"context"

	"go.uber.org/fx"
	"gorm.io/gorm"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/infra"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
)

var Module = fx.Provide(
	provideDB, provideStoreRepo)

func provideDB(lc fx.Lifecycle) *gorm.DB {
	db := infra.InitPostgresql()
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			infra.ClosePostgresql(db)
			return nil
		},
	})
	return db
}

func provideStoreRepo(db *gorm.DB) repositories.StoreRepositoryInterface {
	return repositories.NewStoreRepository(db)
}
