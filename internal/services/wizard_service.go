package services

import (
	"context"
	"encoding/json"
	"log"
	"strings"
	"sync"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type WizardServiceInterface interface {
	State(ctx context.Context) db_models.WizardState
	Advance(ctx context.Context) (db_models.WizardState, error)
	Retreat(ctx context.Context) db_models.WizardState
	GoTo(ctx context.Context, step int) db_models.WizardState
	UpdateServiceInfo(ctx context.Context, patch request_models.ServiceInfoPatch) db_models.WizardState
	UpdateTechnicalDetails(ctx context.Context, patch request_models.TechnicalDetailsPatch) db_models.WizardState
	UpdateEffortEstimation(ctx context.Context, patch request_models.EffortEstimationPatch) db_models.WizardState
	UpdateFreelancerProfile(ctx context.Context, patch request_models.FreelancerProfilePatch) db_models.WizardState
	UpdateMarketInfo(ctx context.Context, patch request_models.MarketInfoPatch) db_models.WizardState
	SetPricingResult(ctx context.Context, result db_models.PricingResult) db_models.WizardState
	Reset(ctx context.Context) db_models.WizardState
}

// WizardService owns the wizard state. Every mutation goes through it, every
// mutation persists the whole state, and any edit to an input section clears
// a previously computed result so a stale price is never shown.
type WizardService struct {
	mu    sync.Mutex
	state db_models.WizardState
	store repositories.StoreRepositoryInterface
}

func NewWizardService(store repositories.StoreRepositoryInterface) WizardServiceInterface {
	s := &WizardService{
		state: db_models.DefaultWizardState(),
		store: store,
	}
	s.rehydrate()
	return s
}

// rehydrate restores the draft from the store. Absence or corruption both
// fall back to the default state, not an error.
func (s *WizardService) rehydrate() {
	raw, ok, err := s.store.Read(context.Background(), repositories.KeyWizardState)
	if err != nil {
		log.Printf("Failed to load wizard draft: %v", err)
		return
	}
	if !ok {
		return
	}

	var stored db_models.WizardState
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		log.Printf("Discarding corrupt wizard draft: %v", err)
		return
	}

	if stored.Step < db_models.MinStep {
		stored.Step = db_models.MinStep
	}
	if stored.Step > db_models.MaxStep {
		stored.Step = db_models.MaxStep
	}
	s.state = stored
}

func (s *WizardService) persist(ctx context.Context) {
	raw, err := json.Marshal(s.state)
	if err != nil {
		log.Printf("Failed to serialize wizard draft: %v", err)
		return
	}
	if err := s.store.Write(ctx, repositories.KeyWizardState, string(raw)); err != nil {
		log.Printf("Failed to persist wizard draft: %v", err)
	}
}

func (s *WizardService) State(ctx context.Context) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// validateStep gates leaving a step that has required fields. Steps 2 and 4
// are always complete because their sections default to valid values.
func validateStep(state db_models.WizardState) error {
	switch state.Step {
	case 1:
		info := state.ServiceInfo
		if strings.TrimSpace(info.ServiceType) == "" ||
			strings.TrimSpace(info.Description) == "" ||
			strings.TrimSpace(info.Deliverables) == "" {
			return utils.ErrStepIncomplete
		}
	case 3:
		if state.EffortEstimation.EstimatedHours <= 0 {
			return utils.ErrStepIncomplete
		}
	case 5:
		if strings.TrimSpace(state.MarketInfo.FreelancerLocation) == "" {
			return utils.ErrStepIncomplete
		}
	}
	return nil
}

func (s *WizardService) Advance(ctx context.Context) (db_models.WizardState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := validateStep(s.state); err != nil {
		return s.state, err
	}

	if s.state.Step < db_models.MaxStep {
		s.state.Step++
	}
	s.persist(ctx)
	return s.state, nil
}

func (s *WizardService) Retreat(ctx context.Context) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Step > db_models.MinStep {
		s.state.Step--
	}
	s.persist(ctx)
	return s.state
}

func (s *WizardService) GoTo(ctx context.Context, step int) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.Step = step
	s.persist(ctx)
	return s.state
}

func (s *WizardService) UpdateServiceInfo(ctx context.Context, patch request_models.ServiceInfoPatch) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.ServiceType != nil {
		s.state.ServiceInfo.ServiceType = *patch.ServiceType
	}
	if patch.Description != nil {
		s.state.ServiceInfo.Description = *patch.Description
	}
	if patch.Deliverables != nil {
		s.state.ServiceInfo.Deliverables = *patch.Deliverables
	}

	s.invalidateResultLocked()
	s.persist(ctx)
	return s.state
}

func (s *WizardService) UpdateTechnicalDetails(ctx context.Context, patch request_models.TechnicalDetailsPatch) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.Tools != nil {
		s.state.TechnicalDetails.Tools = *patch.Tools
	}
	if patch.Complexity != nil {
		s.state.TechnicalDetails.Complexity = *patch.Complexity
	}
	if patch.Features != nil {
		s.state.TechnicalDetails.Features = *patch.Features
	}

	s.invalidateResultLocked()
	s.persist(ctx)
	return s.state
}

func (s *WizardService) UpdateEffortEstimation(ctx context.Context, patch request_models.EffortEstimationPatch) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.EstimatedHours != nil {
		s.state.EffortEstimation.EstimatedHours = *patch.EstimatedHours
	}
	if patch.DeliverySpeed != nil {
		s.state.EffortEstimation.DeliverySpeed = *patch.DeliverySpeed
	}

	s.invalidateResultLocked()
	s.persist(ctx)
	return s.state
}

func (s *WizardService) UpdateFreelancerProfile(ctx context.Context, patch request_models.FreelancerProfilePatch) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.YearsOfExperience != nil {
		s.state.FreelancerProfile.YearsOfExperience = *patch.YearsOfExperience
	}
	if patch.ExpertiseLevel != nil {
		s.state.FreelancerProfile.ExpertiseLevel = *patch.ExpertiseLevel
	}
	if patch.HasSimilarProjects != nil {
		s.state.FreelancerProfile.HasSimilarProjects = *patch.HasSimilarProjects
	}

	s.invalidateResultLocked()
	s.persist(ctx)
	return s.state
}

func (s *WizardService) UpdateMarketInfo(ctx context.Context, patch request_models.MarketInfoPatch) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	if patch.FreelancerLocation != nil {
		s.state.MarketInfo.FreelancerLocation = *patch.FreelancerLocation
	}
	if patch.ClientLocation != nil {
		s.state.MarketInfo.ClientLocation = *patch.ClientLocation
	}
	if patch.MarketType != nil {
		s.state.MarketInfo.MarketType = *patch.MarketType
	}

	s.invalidateResultLocked()
	s.persist(ctx)
	return s.state
}

func (s *WizardService) SetPricingResult(ctx context.Context, result db_models.PricingResult) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state.PricingResult = &result
	s.persist(ctx)
	return s.state
}

func (s *WizardService) Reset(ctx context.Context) db_models.WizardState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.state = db_models.DefaultWizardState()
	s.persist(ctx)
	return s.state
}

// invalidateResultLocked clears any computed result. A stale result must
// never survive an edit to the input that produced it.
func (s *WizardService) invalidateResultLocked() {
	s.state.PricingResult = nil
}
