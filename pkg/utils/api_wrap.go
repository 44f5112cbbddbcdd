package utils

import (
	"errors"
	"github.com/gin-gonic/gin"
	"log"
	"net/http"
)

type APIResponse struct {
	Status  string      `json:"status"`
	Code    int         `json:"code"`
	Message string      `json:"message,omitempty"`
	TraceID string      `json:"trace_id,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

func RespondSuccess(c *gin.Context, data interface{}, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(http.StatusOK, APIResponse{
		Status:  "success",
		Code:    http.StatusOK,
		Message: message,
		TraceID: traceID.(string),
		Data:    data,
	})
}

func RespondError(c *gin.Context, code int, message string) {
	traceID, _ := c.Get("trace_id")
	c.JSON(code, APIResponse{
		Status:  "error",
		Code:    code,
		Message: message,
		TraceID: traceID.(string),
	})
}

func HandleServiceError(c *gin.Context, err error) {
	traceID, _ := c.Get("trace_id")

	switch {
	case errors.Is(err, ErrStepIncomplete):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Please fill the required fields before continuing",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrMissingAPIKey):
		c.JSON(http.StatusServiceUnavailable, APIResponse{
			Status:  "error",
			Code:    http.StatusServiceUnavailable,
			Message: "AI API key is missing. Set GEMINI_API_KEY (or OPENAI_API_KEY) in your .env file",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrProviderFailure), errors.Is(err, ErrEmptyAIResponse), errors.Is(err, ErrAIResponseParse):
		log.Printf("AI pricing error: %v", err)
		c.JSON(http.StatusBadGateway, APIResponse{
			Status:  "error",
			Code:    http.StatusBadGateway,
			Message: "Failed to generate pricing. Check your API key or try again",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrNoPricingResult):
		c.JSON(http.StatusConflict, APIResponse{
			Status:  "error",
			Code:    http.StatusConflict,
			Message: "No pricing result available yet",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrImportNotArray):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Imported data must be a JSON array",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrImportInvalidItem):
		c.JSON(http.StatusBadRequest, APIResponse{
			Status:  "error",
			Code:    http.StatusBadRequest,
			Message: "Imported data has an invalid format",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrHistoryNotFound):
		c.JSON(http.StatusNotFound, APIResponse{
			Status:  "error",
			Code:    http.StatusNotFound,
			Message: "History item not found",
			TraceID: traceID.(string),
		})
	case errors.Is(err, ErrDatabaseError):
		log.Printf("Database error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID.(string),
		})
	default:
		log.Printf("Unknown error: %v", err)
		c.JSON(http.StatusInternalServerError, APIResponse{
			Status:  "error",
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
			TraceID: traceID.(string),
		})
	}
}
