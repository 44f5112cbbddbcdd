package db_models

// PricingHistoryItem is a saved snapshot of one completed wizard run and its
// result. Immutable once created except for deletion.
type PricingHistoryItem struct {
	ID          string        `json:"id"`
	Timestamp   int64         `json:"timestamp"` // unix milliseconds
	ClientName  string        `json:"clientName"`
	ProjectName string        `json:"projectName"`
	State       WizardState   `json:"state"`
	Result      PricingResult `json:"result"`
}
