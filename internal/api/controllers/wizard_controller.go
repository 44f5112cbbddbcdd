package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type WizardController struct {
	wizardService services.WizardServiceInterface
}

func NewWizardController(wizardService services.WizardServiceInterface) *WizardController {
	return &WizardController{
		wizardService: wizardService,
	}
}

func (wc *WizardController) GetState(c *gin.Context) {
	state := wc.wizardService.State(c.Request.Context())
	utils.RespondSuccess(c, state, "Fetched wizard state")
}

func (wc *WizardController) NextStep(c *gin.Context) {
	state, err := wc.wizardService.Advance(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, state, "Moved to next step")
}

func (wc *WizardController) PrevStep(c *gin.Context) {
	state := wc.wizardService.Retreat(c.Request.Context())
	utils.RespondSuccess(c, state, "Moved to previous step")
}

func (wc *WizardController) GoToStep(c *gin.Context) {
	var req request_models.GoToStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.GoTo(c.Request.Context(), req.Step)
	utils.RespondSuccess(c, state, "Moved to step")
}

func (wc *WizardController) UpdateServiceInfo(c *gin.Context) {
	var patch request_models.ServiceInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.UpdateServiceInfo(c.Request.Context(), patch)
	utils.RespondSuccess(c, state, "Service info updated")
}

func (wc *WizardController) UpdateTechnicalDetails(c *gin.Context) {
	var patch request_models.TechnicalDetailsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.UpdateTechnicalDetails(c.Request.Context(), patch)
	utils.RespondSuccess(c, state, "Technical details updated")
}

func (wc *WizardController) UpdateEffortEstimation(c *gin.Context) {
	var patch request_models.EffortEstimationPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.UpdateEffortEstimation(c.Request.Context(), patch)
	utils.RespondSuccess(c, state, "Effort estimation updated")
}

func (wc *WizardController) UpdateFreelancerProfile(c *gin.Context) {
	var patch request_models.FreelancerProfilePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.UpdateFreelancerProfile(c.Request.Context(), patch)
	utils.RespondSuccess(c, state, "Freelancer profile updated")
}

func (wc *WizardController) UpdateMarketInfo(c *gin.Context) {
	var patch request_models.MarketInfoPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	state := wc.wizardService.UpdateMarketInfo(c.Request.Context(), patch)
	utils.RespondSuccess(c, state, "Market info updated")
}

func (wc *WizardController) Reset(c *gin.Context) {
	state := wc.wizardService.Reset(c.Request.Context())
	utils.RespondSuccess(c, state, "Wizard reset")
}
