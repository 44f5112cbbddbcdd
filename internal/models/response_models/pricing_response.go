package response_models

import "github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"

// PricingStatusResponse is what the client polls while a pricing run is in
// flight. The result is attached only once the progress sequence completes.
type PricingStatusResponse struct {
	Running    bool                     `json:"running"`
	Stage      int                      `json:"stage"`
	StageLabel string                   `json:"stage_label"`
	StageIcon  string                   `json:"stage_icon"`
	Stages     int                      `json:"stages"`
	Done       bool                     `json:"done"`
	Result     *db_models.PricingResult `json:"result,omitempty"`
	Error      string                   `json:"error,omitempty"`
}
