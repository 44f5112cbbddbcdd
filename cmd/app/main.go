package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/branding_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/db_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/history_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/pricing_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/report_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/cmd/fx/wizard_fx"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/api/controllers"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	app := fx.New(
		db_fx.Module,
		wizard_fx.Module,
		pricing_fx.Module,
		history_fx.Module,
		branding_fx.Module,
		report_fx.Module,

		fx.Provide(ProvideRouter),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, engine *gin.Engine) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				port := os.Getenv("PORT")
				if port == "" {
					port = "8080"
				}
				log.Printf("Starting HTTP server at :%s", port)
				if err := engine.Run(":" + port); err != nil {
					log.Fatalf("Failed to start server: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("Stopping HTTP server")
			return nil
		},
	})
}

func ProvideRouter(
	wizardController *controllers.WizardController,
	pricingController *controllers.PricingController,
	historyController *controllers.HistoryController,
	brandingController *controllers.BrandingController,
	reportController *controllers.ReportController) *gin.Engine {

	r := gin.Default()
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.TraceIDMiddleware())

	RegisterRoutes(r, wizardController, pricingController, historyController, brandingController, reportController)

	return r
}

func RegisterRoutes(r *gin.Engine,
	wizardController *controllers.WizardController,
	pricingController *controllers.PricingController,
	historyController *controllers.HistoryController,
	brandingController *controllers.BrandingController,
	reportController *controllers.ReportController) {

	wizardGroup := r.Group("/wizard")
	wizardGroup.GET("", wizardController.GetState)
	wizardGroup.POST("/next", wizardController.NextStep)
	wizardGroup.POST("/back", wizardController.PrevStep)
	wizardGroup.POST("/goto", wizardController.GoToStep)
	wizardGroup.POST("/reset", wizardController.Reset)
	wizardGroup.PUT("/service-info", wizardController.UpdateServiceInfo)
	wizardGroup.PUT("/technical-details", wizardController.UpdateTechnicalDetails)
	wizardGroup.PUT("/effort-estimation", wizardController.UpdateEffortEstimation)
	wizardGroup.PUT("/freelancer-profile", wizardController.UpdateFreelancerProfile)
	wizardGroup.PUT("/market-info", wizardController.UpdateMarketInfo)

	pricingGroup := r.Group("/pricing")
	pricingGroup.POST("/generate", pricingController.Generate)
	pricingGroup.GET("/status", pricingController.Status)

	historyGroup := r.Group("/history")
	historyGroup.GET("", historyController.List)
	historyGroup.DELETE("/:id", historyController.Remove)
	historyGroup.DELETE("", historyController.Clear)
	historyGroup.GET("/export", historyController.Export)
	historyGroup.POST("/import", historyController.Import)

	brandingGroup := r.Group("/branding")
	brandingGroup.GET("", brandingController.Get)
	brandingGroup.PUT("", brandingController.Update)

	reportGroup := r.Group("/reports")
	reportGroup.POST("/generate", reportController.Generate)
}
