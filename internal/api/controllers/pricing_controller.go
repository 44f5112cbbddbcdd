package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type PricingController struct {
	pricingService services.PricingServiceInterface
}

func NewPricingController(pricingService services.PricingServiceInterface) *PricingController {
	return &PricingController{
		pricingService: pricingService,
	}
}

// Generate starts an asynchronous pricing run for the current wizard state.
// Calling it while a run is in flight does not start a second one. Retrying
// after a failure starts a fresh run with the identical input.
func (pc *PricingController) Generate(c *gin.Context) {
	pc.pricingService.StartPricing(c.Request.Context())
	utils.RespondSuccess(c, pc.pricingService.Status(c.Request.Context()), "Pricing generation started")
}

// Status reports the loading stage, and the result once the stage sequence
// has completed.
func (pc *PricingController) Status(c *gin.Context) {
	utils.RespondSuccess(c, pc.pricingService.Status(c.Request.Context()), "Pricing status")
}
