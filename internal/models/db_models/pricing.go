package db_models

type Complexity = string
type DeliverySpeed = string
type MarketType = string
type ExperienceLevel = string

const (
	ComplexitySimple  Complexity = "simple"
	ComplexityMedium  Complexity = "medium"
	ComplexityComplex Complexity = "complex"

	DeliveryNormal DeliverySpeed = "normal"
	DeliveryUrgent DeliverySpeed = "urgent"

	MarketLocal    MarketType = "local"
	MarketRegional MarketType = "regional"
	MarketGlobal   MarketType = "global"

	LevelJunior ExperienceLevel = "junior"
	LevelMid    ExperienceLevel = "mid"
	LevelSenior ExperienceLevel = "senior"
	LevelExpert ExperienceLevel = "expert"
)

type ServiceInfo struct {
	ServiceType  string `json:"serviceType"`
	Description  string `json:"description"`
	Deliverables string `json:"deliverables"`
}

type TechnicalDetails struct {
	Tools      []string   `json:"tools"`
	Complexity Complexity `json:"complexity"`
	Features   []string   `json:"features"`
}

type EffortEstimation struct {
	EstimatedHours float64       `json:"estimatedHours"`
	DeliverySpeed  DeliverySpeed `json:"deliverySpeed"`
}

type FreelancerProfile struct {
	YearsOfExperience  float64         `json:"yearsOfExperience"`
	ExpertiseLevel     ExperienceLevel `json:"expertiseLevel"`
	HasSimilarProjects bool            `json:"hasSimilarProjects"`
}

type MarketInfo struct {
	FreelancerLocation string     `json:"freelancerLocation"`
	ClientLocation     string     `json:"clientLocation"`
	MarketType         MarketType `json:"marketType"`
}

type PricingPackage struct {
	Name        string   `json:"name"`
	Price       float64  `json:"price"`
	Description string   `json:"description"`
	Features    []string `json:"features"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type PricingPackages struct {
	Economic PricingPackage `json:"economic"`
	Standard PricingPackage `json:"standard"`
	Premium  PricingPackage `json:"premium"`
}

// PricingResult is the model output verbatim. No arithmetic validation is
// performed on it beyond JSON decoding.
type PricingResult struct {
	Range         PriceRange      `json:"range"`
	Level         string          `json:"level"`
	Reasoning     string          `json:"reasoning"`
	Packages      PricingPackages `json:"packages"`
	Justification string          `json:"justification"`
	Currency      string          `json:"currency"`
}

type ReportSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type ReportContent struct {
	Introduction   string          `json:"introduction"`
	CustomSections []ReportSection `json:"customSections"`
	Conclusion     string          `json:"conclusion"`
}

// WizardState is the whole serialized wizard session. It is persisted as a
// single JSON blob under the wizard-draft key on every mutation.
type WizardState struct {
	Step              int               `json:"step"`
	ServiceInfo       ServiceInfo       `json:"serviceInfo"`
	TechnicalDetails  TechnicalDetails  `json:"technicalDetails"`
	EffortEstimation  EffortEstimation  `json:"effortEstimation"`
	FreelancerProfile FreelancerProfile `json:"freelancerProfile"`
	MarketInfo        MarketInfo        `json:"marketInfo"`
	PricingResult     *PricingResult    `json:"pricingResult,omitempty"`
}

const (
	MinStep = 1
	MaxStep = 6
)

func DefaultWizardState() WizardState {
	return WizardState{
		Step: MinStep,
		ServiceInfo: ServiceInfo{
			ServiceType:  "",
			Description:  "",
			Deliverables: "",
		},
		TechnicalDetails: TechnicalDetails{
			Tools:      []string{},
			Complexity: ComplexityMedium,
			Features:   []string{},
		},
		EffortEstimation: EffortEstimation{
			EstimatedHours: 10,
			DeliverySpeed:  DeliveryNormal,
		},
		FreelancerProfile: FreelancerProfile{
			YearsOfExperience:  1,
			ExpertiseLevel:     LevelMid,
			HasSimilarProjects: false,
		},
		MarketInfo: MarketInfo{
			FreelancerLocation: "",
			ClientLocation:     "",
			MarketType:         MarketLocal,
		},
	}
}
