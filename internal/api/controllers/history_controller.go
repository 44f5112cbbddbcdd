package controllers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/services"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type HistoryController struct {
	historyService services.HistoryServiceInterface
}

func NewHistoryController(historyService services.HistoryServiceInterface) *HistoryController {
	return &HistoryController{
		historyService: historyService,
	}
}

func (hc *HistoryController) List(c *gin.Context) {
	history := hc.historyService.List(c.Request.Context())
	utils.RespondSuccess(c, history, "Fetched history")
}

func (hc *HistoryController) Remove(c *gin.Context) {
	id := c.Param("id")
	if err := hc.historyService.Remove(c.Request.Context(), id); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "History item deleted")
}

func (hc *HistoryController) Clear(c *gin.Context) {
	if err := hc.historyService.Clear(c.Request.Context()); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "History cleared")
}

// Export serves the retained list as a downloadable, date-stamped JSON file.
func (hc *HistoryController) Export(c *gin.Context) {
	data, err := hc.historyService.Export(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	fileName := fmt.Sprintf("pricing_history_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	c.Data(http.StatusOK, "application/json", []byte(data))
}

func (hc *HistoryController) Import(c *gin.Context) {
	var req request_models.ImportHistoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request payload")
		return
	}

	if err := hc.historyService.Import(c.Request.Context(), req.Data); err != nil {
		utils.HandleServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, nil, "History imported")
}
