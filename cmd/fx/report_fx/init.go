package report_fx

import (
	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/pdf"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
)

var Module = fx.Provide(
	provideReportGenerator,
	ProvideReportService,
	provideReportController)

func provideReportGenerator() *pdf.ReportGenerator {
	return pdf.NewReportGenerator()
}

// ProvideReportService creates the report service with all dependencies
func ProvideReportService(
	wizard services.WizardServiceInterface,
	pricing services.PricingServiceInterface,
	branding services.BrandingServiceInterface,
	history services.HistoryServiceInterface,
	generator *pdf.ReportGenerator,
) services.ReportServiceInterface {
	return services.NewReportService(wizard, pricing, branding, history, generator)
}

func provideReportController(reportService services.ReportServiceInterface) *controllers.ReportController {
	return controllers.NewReportController(reportService)
}
