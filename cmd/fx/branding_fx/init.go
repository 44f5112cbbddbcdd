package branding_fx

import (
	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
)

var Module = fx.Provide(
	provideBrandingService, provideBrandingController)

func provideBrandingService(store repositories.StoreRepositoryInterface) services.BrandingServiceInterface {
	return services.NewBrandingService(store)
}

func provideBrandingController(brandingService services.BrandingServiceInterface) *controllers.BrandingController {
	return controllers.NewBrandingController(brandingService)
}
