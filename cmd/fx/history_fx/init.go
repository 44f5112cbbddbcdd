package history_fx

import (
	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
)

var Module = fx.Provide(
	provideHistoryService, provideHistoryController)

func provideHistoryService(store repositories.StoreRepositoryInterface) services.HistoryServiceInterface {
	return services.NewHistoryService(store)
}

func provideHistoryController(historyService services.HistoryServiceInterface) *controllers.HistoryController {
	return controllers.NewHistoryController(historyService)
}
