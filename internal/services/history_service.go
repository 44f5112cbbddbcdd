package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

// MaxHistoryItems caps the retained list to keep the draft store small.
const MaxHistoryItems = 50

type HistoryServiceInterface interface {
	Record(ctx context.Context, clientName, projectName string, state db_models.WizardState, result db_models.PricingResult)
	List(ctx context.Context) []db_models.PricingHistoryItem
	Remove(ctx context.Context, id string) error
	Clear(ctx context.Context) error
	Export(ctx context.Context) (string, error)
	Import(ctx context.Context, data string) error
}

type HistoryService struct {
	store repositories.StoreRepositoryInterface
}

func NewHistoryService(store repositories.StoreRepositoryInterface) HistoryServiceInterface {
	return &HistoryService{store: store}
}

// Record prepends a new snapshot, truncates to the cap, and persists. A
// failed write halves the retained list and retries once; a second failure
// drops the save with only a log line, since history must never block the
// pricing flow.
func (h *HistoryService) Record(ctx context.Context, clientName, projectName string, state db_models.WizardState, result db_models.PricingResult) {
	item := db_models.PricingHistoryItem{
		ID:          uuid.New().String(),
		Timestamp:   time.Now().UnixMilli(),
		ClientName:  clientName,
		ProjectName: projectName,
		State:       state,
		Result:      result,
	}

	history := h.List(ctx)
	history = append([]db_models.PricingHistoryItem{item}, history...)
	if len(history) > MaxHistoryItems {
		history = history[:MaxHistoryItems]
	}

	if err := h.persist(ctx, history); err != nil {
		log.Printf("Failed to save history, evicting oldest entries: %v", err)
		reduced := history
		if len(reduced) > MaxHistoryItems/2 {
			reduced = reduced[:MaxHistoryItems/2]
		}
		if err := h.persist(ctx, reduced); err != nil {
			log.Printf("Failed to recover from history storage error: %v", err)
		}
	}
}

func (h *HistoryService) persist(ctx context.Context, history []db_models.PricingHistoryItem) error {
	raw, err := json.Marshal(history)
	if err != nil {
		return err
	}
	return h.store.Write(ctx, repositories.KeyHistory, string(raw))
}

// List returns retained items most-recent-first. Corrupt or unreadable
// storage yields an empty list, never an error.
func (h *HistoryService) List(ctx context.Context) []db_models.PricingHistoryItem {
	raw, ok, err := h.store.Read(ctx, repositories.KeyHistory)
	if err != nil {
		log.Printf("Failed to load history: %v", err)
		return []db_models.PricingHistoryItem{}
	}
	if !ok {
		return []db_models.PricingHistoryItem{}
	}

	var history []db_models.PricingHistoryItem
	if err := json.Unmarshal([]byte(raw), &history); err != nil {
		log.Printf("Discarding corrupt history: %v", err)
		return []db_models.PricingHistoryItem{}
	}
	return history
}

func (h *HistoryService) Remove(ctx context.Context, id string) error {
	history := h.List(ctx)

	filtered := make([]db_models.PricingHistoryItem, 0, len(history))
	found := false
	for _, item := range history {
		if item.ID == id {
			found = true
			continue
		}
		filtered = append(filtered, item)
	}
	if !found {
		return utils.ErrHistoryNotFound
	}

	if err := h.persist(ctx, filtered); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func (h *HistoryService) Clear(ctx context.Context) error {
	if err := h.store.Clear(ctx, repositories.KeyHistory); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

// Export serializes the retained list as formatted JSON.
func (h *HistoryService) Export(ctx context.Context) (string, error) {
	history := h.List(ctx)
	raw, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return "", utils.ErrDatabaseError
	}
	return string(raw), nil
}

// Import replaces the entire retained list with the given payload: full
// overwrite, not merge. Existing history is untouched on any failure.
func (h *HistoryService) Import(ctx context.Context, data string) error {
	var top interface{}
	if err := json.Unmarshal([]byte(data), &top); err != nil {
		return utils.ErrImportNotArray
	}
	rawItems, ok := top.([]interface{})
	if !ok {
		return utils.ErrImportNotArray
	}

	for _, rawItem := range rawItems {
		fields, ok := rawItem.(map[string]interface{})
		if !ok {
			return utils.ErrImportInvalidItem
		}
		if !hasNonEmpty(fields, "id") || !hasNonEmpty(fields, "clientName") {
			return utils.ErrImportInvalidItem
		}
		if ts, ok := fields["timestamp"].(float64); !ok || ts == 0 {
			return utils.ErrImportInvalidItem
		}
		if fields["result"] == nil {
			return utils.ErrImportInvalidItem
		}
	}

	var history []db_models.PricingHistoryItem
	if err := json.Unmarshal([]byte(data), &history); err != nil {
		return utils.ErrImportInvalidItem
	}

	if err := h.persist(ctx, history); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func hasNonEmpty(fields map[string]interface{}, key string) bool {
	v, ok := fields[key].(string)
	return ok && v != ""
}
