package request_models

type GenerateReportRequest struct {
	ClientName  string `json:"client_name" binding:"required"`
	ProjectName string `json:"project_name"`
	Notes       string `json:"notes"`
}

type ImportHistoryRequest struct {
	Data string `json:"data" binding:"required"`
}

type UpdateBrandingRequest struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Website     string `json:"website"`
	Logo        string `json:"logo"`
}
