package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type BrandingController struct {
	brandingService services.BrandingServiceInterface
}

func NewBrandingController(brandingService services.BrandingServiceInterface) *BrandingController {
	return &BrandingController{
		brandingService: brandingService,
	}
}

func (bc *BrandingController) Get(c *gin.Context) {
	settings := bc.brandingService.Get(c.Request.Context())
	utils.RespondSuccess(c, settings, "Fetched branding settings")
}

func (bc *BrandingController) Update(c *gin.Context) {
	var req request_models.UpdateBrandingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	settings := db_models.BrandingSettings{
		CompanyName: req.CompanyName,
		Email:       req.Email,
		Phone:       req.Phone,
		Website:     req.Website,
		Logo:        req.Logo,
	}
	if err := bc.brandingService.Update(c.Request.Context(), settings); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, settings, "Branding settings updated")
}
