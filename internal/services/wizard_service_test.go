package services

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/request_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/repositories"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

func strPtr(s string) *string   { return &s }
func f64Ptr(f float64) *float64 { return &f }

func completeWizard(t *testing.T, svc WizardServiceInterface) {
	t.Helper()
	ctx := context.Background()
	svc.UpdateServiceInfo(ctx, request_models.ServiceInfoPatch{
		ServiceType:  strPtr("web-development"),
		Description:  strPtr("Company site with CMS"),
		Deliverables: strPtr("Responsive site, admin panel"),
	})
	svc.UpdateMarketInfo(ctx, request_models.MarketInfoPatch{
		FreelancerLocation: strPtr("Berlin"),
	})
}

func TestWizardStartsWithDefaults(t *testing.T) {
	svc := NewWizardService(newMemStore())

	state := svc.State(context.Background())
	assert.Equal(t, db_models.MinStep, state.Step)
	assert.Equal(t, db_models.ComplexityMedium, state.TechnicalDetails.Complexity)
	assert.Equal(t, 10.0, state.EffortEstimation.EstimatedHours)
	assert.Nil(t, state.PricingResult)
}

func TestAdvanceBlockedOnEmptyServiceInfo(t *testing.T) {
	svc := NewWizardService(newMemStore())

	state, err := svc.Advance(context.Background())
	assert.ErrorIs(t, err, utils.ErrStepIncomplete)
	assert.Equal(t, 1, state.Step)
}

func TestAdvanceClampsAtLastStep(t *testing.T) {
	svc := NewWizardService(newMemStore())
	completeWizard(t, svc)

	ctx := context.Background()
	var state db_models.WizardState
	for i := 0; i < 10; i++ {
		var err error
		state, err = svc.Advance(ctx)
		require.NoError(t, err)
	}
	assert.Equal(t, db_models.MaxStep, state.Step)
}

func TestRetreatClampsAtFirstStep(t *testing.T) {
	svc := NewWizardService(newMemStore())
	svc.GoTo(context.Background(), 3)

	var state db_models.WizardState
	for i := 0; i < 10; i++ {
		state = svc.Retreat(context.Background())
	}
	assert.Equal(t, db_models.MinStep, state.Step)
}

func TestEffortEstimationGatesAdvance(t *testing.T) {
	svc := NewWizardService(newMemStore())
	ctx := context.Background()
	svc.GoTo(ctx, 3)

	svc.UpdateEffortEstimation(ctx, request_models.EffortEstimationPatch{EstimatedHours: f64Ptr(0)})
	_, err := svc.Advance(ctx)
	assert.ErrorIs(t, err, utils.ErrStepIncomplete)

	svc.UpdateEffortEstimation(ctx, request_models.EffortEstimationPatch{EstimatedHours: f64Ptr(1)})
	state, err := svc.Advance(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, state.Step)
}

func TestEditInvalidatesPricingResult(t *testing.T) {
	svc := NewWizardService(newMemStore())
	ctx := context.Background()

	svc.SetPricingResult(ctx, db_models.PricingResult{Level: "standard"})
	require.NotNil(t, svc.State(ctx).PricingResult)

	state := svc.UpdateTechnicalDetails(ctx, request_models.TechnicalDetailsPatch{
		Complexity: strPtr(db_models.ComplexityComplex),
	})
	assert.Nil(t, state.PricingResult)
}

func TestResetRestoresDefaults(t *testing.T) {
	svc := NewWizardService(newMemStore())
	ctx := context.Background()
	completeWizard(t, svc)
	svc.GoTo(ctx, 5)
	svc.SetPricingResult(ctx, db_models.PricingResult{Level: "premium"})

	state := svc.Reset(ctx)
	assert.Equal(t, db_models.DefaultWizardState(), state)
}

func TestRehydrateRestoresDraft(t *testing.T) {
	store := newMemStore()
	first := NewWizardService(store)
	ctx := context.Background()
	completeWizard(t, first)
	first.GoTo(ctx, 4)

	second := NewWizardService(store)
	state := second.State(ctx)
	assert.Equal(t, 4, state.Step)
	assert.Equal(t, "web-development", state.ServiceInfo.ServiceType)
}

func TestRehydrateDiscardsCorruptDraft(t *testing.T) {
	store := newMemStore()
	store.seed(repositories.KeyWizardState, "{not json")

	svc := NewWizardService(store)
	assert.Equal(t, db_models.DefaultWizardState(), svc.State(context.Background()))
}

func TestRehydrateClampsStoredStep(t *testing.T) {
	store := newMemStore()
	stored := db_models.DefaultWizardState()
	stored.Step = 99
	raw, err := json.Marshal(stored)
	require.NoError(t, err)
	store.seed(repositories.KeyWizardState, string(raw))

	svc := NewWizardService(store)
	assert.Equal(t, db_models.MaxStep, svc.State(context.Background()).Step)
}

func TestStatePersistedOnEveryMutation(t *testing.T) {
	store := newMemStore()
	svc := NewWizardService(store)

	svc.UpdateMarketInfo(context.Background(), request_models.MarketInfoPatch{
		ClientLocation: strPtr("Riyadh"),
	})

	raw, ok := store.get(repositories.KeyWizardState)
	require.True(t, ok)

	var stored db_models.WizardState
	require.NoError(t, json.Unmarshal([]byte(raw), &stored))
	assert.Equal(t, "Riyadh", stored.MarketInfo.ClientLocation)
}
