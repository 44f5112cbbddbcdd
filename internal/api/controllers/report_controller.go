package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type ReportController struct {
	reportService services.ReportServiceInterface
}

func NewReportController(reportService services.ReportServiceInterface) *ReportController {
	return &ReportController{
		reportService: reportService,
	}
}

// Generate produces the branded PDF proposal for the current result and
// streams it back as a download.
func (rc *ReportController) Generate(c *gin.Context) {
	var req request_models.GenerateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Client name is required")
		return
	}

	fileName, data, err := rc.reportService.GenerateReport(c.Request.Context(), req.ClientName, req.ProjectName, req.Notes)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/pdf", data)
}
