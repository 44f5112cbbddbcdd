package db_models

// BrandingSettings are the identity fields printed on exported reports.
// Persisted independently of the wizard draft.
type BrandingSettings struct {
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	Phone       string `json:"phone,omitempty"`
	Website     string `json:"website,omitempty"`
	Logo        string `json:"logo,omitempty"` // base64 encoded image
}

func DefaultBranding() BrandingSettings {
	return BrandingSettings{
		CompanyName: "SmartQuote Studio",
		Email:       "hello@smartquote.dev",
		Phone:       "",
		Website:     "",
		Logo:        "",
	}
}
