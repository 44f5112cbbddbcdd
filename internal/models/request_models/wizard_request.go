package request_models

// Patch DTOs merge into the wizard sections. Nil fields are left unchanged,
// matching the partial-update semantics of the wizard mutators.

type ServiceInfoPatch struct {
	ServiceType  *string `json:"serviceType"`
	Description  *string `json:"description"`
	Deliverables *string `json:"deliverables"`
}

type TechnicalDetailsPatch struct {
	Tools      *[]string `json:"tools"`
	Complexity *string   `json:"complexity"`
	Features   *[]string `json:"features"`
}

type EffortEstimationPatch struct {
	EstimatedHours *float64 `json:"estimatedHours"`
	DeliverySpeed  *string  `json:"deliverySpeed"`
}

type FreelancerProfilePatch struct {
	YearsOfExperience  *float64 `json:"yearsOfExperience"`
	ExpertiseLevel     *string  `json:"expertiseLevel"`
	HasSimilarProjects *bool    `json:"hasSimilarProjects"`
}

type MarketInfoPatch struct {
	FreelancerLocation *string `json:"freelancerLocation"`
	ClientLocation     *string `json:"clientLocation"`
	MarketType         *string `json:"marketType"`
}

type GoToStepRequest struct {
	Step int `json:"step"`
}
