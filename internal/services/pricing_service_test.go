package services

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/response_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

const samplePricingJSON = `{
  "range": { "min": 800, "max": 2500 },
  "level": "standard",
  "reasoning": "Mid-level freelancer, medium complexity.",
  "packages": {
    "economic": { "name": "Starter", "price": 800, "description": "Essentials only", "features": ["Landing page"] },
    "standard": { "name": "Growth", "price": 1500, "description": "The recommended scope", "features": ["Full site", "CMS"] },
    "premium": { "name": "Scale", "price": 2500, "description": "Everything included", "features": ["Full site", "CMS", "SEO"] }
  },
  "justification": "Based on scope and market.",
  "currency": "USD"
}`

func waitForStatus(t *testing.T, svc PricingServiceInterface, pred func(response_models.PricingStatusResponse) bool) response_models.PricingStatusResponse {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		resp := svc.Status(context.Background())
		if pred(resp) {
			return resp
		}
		time.Sleep(2 * time.Millisecond)
	}
	t.Fatal("status never reached expected condition")
	return response_models.PricingStatusResponse{}
}

func TestPricingRunStoresResult(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	ai := &stubAI{response: "```json\n" + samplePricingJSON + "\n```"}
	svc := NewPricingServiceWithInterval(wizard, ai, time.Millisecond)

	svc.StartPricing(context.Background())

	resp := waitForStatus(t, svc, func(r response_models.PricingStatusResponse) bool { return r.Done })
	require.NotNil(t, resp.Result)
	assert.Equal(t, 1500.0, resp.Result.Packages.Standard.Price)
	assert.Equal(t, "USD", resp.Result.Currency)
	assert.False(t, resp.Running)

	state := wizard.State(context.Background())
	require.NotNil(t, state.PricingResult)
	assert.Equal(t, "standard", state.PricingResult.Level)
}

func TestPricingRunSurfacesProviderError(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	ai := &stubAI{err: utils.ErrProviderFailure}
	svc := NewPricingServiceWithInterval(wizard, ai, time.Millisecond)

	svc.StartPricing(context.Background())

	resp := waitForStatus(t, svc, func(r response_models.PricingStatusResponse) bool { return r.Error != "" })
	assert.Contains(t, resp.Error, "try again")
	assert.False(t, resp.Done)
	assert.Nil(t, wizard.State(context.Background()).PricingResult)
}

func TestPricingRunMissingAPIKeyMessage(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	client, err := utils.NewAIClient("gemini", "", "")
	require.NoError(t, err)
	svc := NewPricingServiceWithInterval(wizard, client, time.Millisecond)

	svc.StartPricing(context.Background())

	resp := waitForStatus(t, svc, func(r response_models.PricingStatusResponse) bool { return r.Error != "" })
	assert.Contains(t, resp.Error, "GEMINI_API_KEY")
}

func TestStartPricingInFlightGuard(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	release := make(chan struct{})
	ai := &stubAI{response: samplePricingJSON, block: release}
	svc := NewPricingServiceWithInterval(wizard, ai, time.Millisecond)

	ctx := context.Background()
	svc.StartPricing(ctx)
	svc.StartPricing(ctx)
	svc.StartPricing(ctx)

	close(release)
	waitForStatus(t, svc, func(r response_models.PricingStatusResponse) bool { return r.Done })

	assert.Equal(t, 1, ai.callCount())
}

func TestStatusPollsSafelyWhileRunSettles(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	release := make(chan struct{})
	ai := &stubAI{err: utils.ErrProviderFailure, block: release}
	svc := NewPricingServiceWithInterval(wizard, ai, time.Millisecond)

	svc.StartPricing(context.Background())

	// Hammer Status from several goroutines while the provider call settles;
	// the race detector flags any unsynchronized read of the settle fields.
	stop := make(chan struct{})
	var wg sync.WaitGroup
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-stop:
					return
				default:
					svc.Status(context.Background())
				}
			}
		}()
	}

	close(release)
	resp := waitForStatus(t, svc, func(r response_models.PricingStatusResponse) bool { return r.Error != "" })
	close(stop)
	wg.Wait()

	assert.Contains(t, resp.Error, "try again")
}

func TestComputePricingAcceptsFencedAndPlainJSON(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	state := wizard.State(context.Background())

	for _, response := range []string{
		samplePricingJSON,
		"```json\n" + samplePricingJSON + "\n```",
	} {
		svc := &PricingService{wizard: wizard, aiClient: &stubAI{response: response}}
		result, err := svc.computePricing(context.Background(), state)
		require.NoError(t, err)
		assert.Equal(t, 800.0, result.Range.Min)
		assert.Equal(t, "Starter", result.Packages.Economic.Name)
	}
}

func TestComputePricingRejectsEmptyResponse(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	svc := &PricingService{wizard: wizard, aiClient: &stubAI{response: "   \n"}}

	_, err := svc.computePricing(context.Background(), wizard.State(context.Background()))
	assert.ErrorIs(t, err, utils.ErrEmptyAIResponse)
}

func TestComputePricingRejectsNonJSON(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	svc := &PricingService{wizard: wizard, aiClient: &stubAI{response: "Here is your price: about $1000."}}

	_, err := svc.computePricing(context.Background(), wizard.State(context.Background()))
	assert.ErrorIs(t, err, utils.ErrAIResponseParse)
}

func TestBuildPricingPromptIsDeterministic(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	state := wizard.State(context.Background())

	first := BuildPricingPrompt(state)
	second := BuildPricingPrompt(state)
	assert.Equal(t, first, second)
	assert.True(t, strings.Contains(first, `"economic"`))
	assert.True(t, strings.Contains(first, "Output JSON only"))
}

func TestNarrativeFallsBackOnProviderError(t *testing.T) {
	wizard := NewWizardService(newMemStore())
	ai := &stubAI{err: utils.ErrProviderFailure}
	svc := &PricingService{wizard: wizard, aiClient: ai}

	content := svc.GenerateReportNarrative(context.Background(), db_models.PricingPackages{}, "Acme", "")
	assert.Contains(t, content.Introduction, "Acme")
	assert.NotEmpty(t, content.Conclusion)
}
