package wizard_fx

import (
	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
)

var Module = fx.Provide(
	provideWizardService, provideWizardController)

func provideWizardService(store repositories.StoreRepositoryInterface) services.WizardServiceInterface {
	return services.NewWizardService(store)
}

func provideWizardController(wizardService services.WizardServiceInterface) *controllers.WizardController {
	return controllers.NewWizardController(wizardService)
}
