package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/response_models"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type PricingServiceInterface interface {
	// StartPricing kicks off an asynchronous pricing run. If one is already
	// in flight the call is a no-op; the caller polls Status either way.
	StartPricing(ctx context.Context)
	Status(ctx context.Context) response_models.PricingStatusResponse
	GenerateReportNarrative(ctx context.Context, packages db_models.PricingPackages, clientName, notes string) db_models.ReportContent
}

// pricingJob is one pricing run: provider call plus its progress sequence.
type pricingJob struct {
	tracker *ProgressTracker
	result  *db_models.PricingResult
	err     error
	settled bool
}

type PricingService struct {
	mu       sync.Mutex
	job      *pricingJob
	wizard   WizardServiceInterface
	aiClient utils.AIClientInterface
	interval time.Duration
}

func NewPricingService(wizard WizardServiceInterface, aiClient utils.AIClientInterface) PricingServiceInterface {
	return &PricingService{
		wizard:   wizard,
		aiClient: aiClient,
		interval: DefaultStageInterval,
	}
}

// NewPricingServiceWithInterval exists for tests that cannot wait for the
// production stage cadence.
func NewPricingServiceWithInterval(wizard WizardServiceInterface, aiClient utils.AIClientInterface, interval time.Duration) PricingServiceInterface {
	return &PricingService{
		wizard:   wizard,
		aiClient: aiClient,
		interval: interval,
	}
}

func (p *PricingService) StartPricing(ctx context.Context) {
	p.mu.Lock()
	defer p.mu.Unlock()

	// In-flight guard: a concurrent trigger must not issue a duplicate call.
	if p.job != nil && !p.job.settled {
		return
	}

	job := &pricingJob{}
	job.tracker = NewProgressTracker(PricingStages, p.interval, nil)
	p.job = job
	job.tracker.Start()

	state := p.wizard.State(ctx)

	// The provider call is detached from the request context: cancellation
	// is not supported, a run always settles on its own.
	go p.run(job, state)
}

func (p *PricingService) run(job *pricingJob, state db_models.WizardState) {
	result, err := p.computePricing(context.Background(), state)

	p.mu.Lock()
	job.settled = true
	if err != nil {
		job.err = err
		p.mu.Unlock()
		// On failure the animation stops immediately; the client shows the
		// error with edit/retry actions.
		job.tracker.Stop()
		log.Printf("Pricing generation failed: %v", err)
		return
	}
	job.result = result
	p.mu.Unlock()

	p.wizard.SetPricingResult(context.Background(), *result)
	job.tracker.Finish()
}

func (p *PricingService) Status(ctx context.Context) response_models.PricingStatusResponse {
	p.mu.Lock()
	job := p.job
	p.mu.Unlock()

	if job == nil {
		// No run this session; a rehydrated draft may still carry a result.
		if state := p.wizard.State(ctx); state.PricingResult != nil {
			return response_models.PricingStatusResponse{
				Done:   true,
				Stage:  len(PricingStages) - 1,
				Stages: len(PricingStages),
				Result: state.PricingResult,
			}
		}
		return response_models.PricingStatusResponse{Stages: len(PricingStages)}
	}

	// The snapshot comes first: completion is only signalled after the result
	// has been stored, so a completed snapshot guarantees the copy below sees
	// it. Settle fields are written by run() under p.mu; copy them inside the
	// same critical section so a poll during settle stays synchronized.
	stage, label, icon, completed := job.tracker.Snapshot()

	p.mu.Lock()
	jobErr := job.err
	jobResult := job.result
	p.mu.Unlock()

	if jobErr != nil {
		return response_models.PricingStatusResponse{
			Stages: len(PricingStages),
			Error:  userFacingError(jobErr),
		}
	}
	resp := response_models.PricingStatusResponse{
		Running:    !completed,
		Stage:      stage,
		StageLabel: label,
		StageIcon:  icon,
		Stages:     len(PricingStages),
		Done:       completed,
	}
	if completed {
		resp.Result = jobResult
	}
	return resp
}

// userFacingError collapses the whole pricing taxonomy into one message;
// recovery is always "edit input or retry".
func userFacingError(err error) string {
	if err == utils.ErrMissingAPIKey {
		return "API key is missing. Please add GEMINI_API_KEY to your .env file."
	}
	return "Failed to generate pricing. Please check your API key or try again."
}

func (p *PricingService) computePricing(ctx context.Context, state db_models.WizardState) (*db_models.PricingResult, error) {
	prompt := BuildPricingPrompt(state)

	text, err := p.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return nil, utils.ErrEmptyAIResponse
	}

	cleaned := utils.CleanJSONResponse(text)

	var result db_models.PricingResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		log.Printf("Raw model response: %s", text)
		return nil, utils.ErrAIResponseParse
	}

	return &result, nil
}

// BuildPricingPrompt embeds every wizard field plus a strict output
// contract. The structure is deterministic: same state, same prompt.
func BuildPricingPrompt(state db_models.WizardState) string {
	var b strings.Builder

	b.WriteString("Act as a Senior Software Pricing Strategist with 20 years of experience.\n\n")

	b.WriteString("Weigh these factors seriously:\n")
	fmt.Fprintf(&b, "1. Purchasing power: the client is in (%s) and the freelancer is in (%s), market type: %s\n",
		state.MarketInfo.ClientLocation, state.MarketInfo.FreelancerLocation, state.MarketInfo.MarketType)
	fmt.Fprintf(&b, "2. Technical stack: %s\n", strings.Join(state.TechnicalDetails.Tools, ", "))
	fmt.Fprintf(&b, "3. Freelancer experience: %g years (%s), similar projects done: %t\n\n",
		state.FreelancerProfile.YearsOfExperience, state.FreelancerProfile.ExpertiseLevel,
		state.FreelancerProfile.HasSimilarProjects)

	b.WriteString("--- Project details ---\n")
	fmt.Fprintf(&b, "Service type: %s\n", state.ServiceInfo.ServiceType)
	fmt.Fprintf(&b, "Description: %s\n", state.ServiceInfo.Description)
	fmt.Fprintf(&b, "Deliverables: %s\n\n", state.ServiceInfo.Deliverables)

	fmt.Fprintf(&b, "Complexity: %s\n", state.TechnicalDetails.Complexity)
	fmt.Fprintf(&b, "Features: %s\n\n", strings.Join(state.TechnicalDetails.Features, ", "))

	fmt.Fprintf(&b, "Effort: %g hours\n", state.EffortEstimation.EstimatedHours)
	fmt.Fprintf(&b, "Delivery speed: %s\n\n", state.EffortEstimation.DeliverySpeed)

	b.WriteString("--- Task ---\n")
	b.WriteString("Create three pricing packages (economic, standard, premium).\n\n")

	b.WriteString("Rules:\n")
	b.WriteString("- Output JSON only\n")
	b.WriteString("- No Markdown\n")
	b.WriteString("- Follow this structure literally:\n\n")

	b.WriteString(`{
  "range": { "min": number, "max": number },
  "level": "economic" | "standard" | "premium",
  "reasoning": "text",
  "packages": {
    "economic": { "name": "", "price": number, "description": "", "features": [] },
    "standard": { "name": "", "price": number, "description": "", "features": [] },
    "premium": { "name": "", "price": number, "description": "", "features": [] }
  },
  "justification": "text",
  "currency": "the currency (e.g. USD, EUR, SAR)"
}`)

	return b.String()
}

// FallbackReportContent is used whenever narrative generation fails, so
// report export never blocks on model output.
func FallbackReportContent(clientName string) db_models.ReportContent {
	return db_models.ReportContent{
		Introduction: fmt.Sprintf(
			"We are pleased to present %s with this tailored pricing proposal. "+
				"The packages below were prepared from a detailed analysis of the project scope, "+
				"the required effort, and current market conditions.", clientName),
		CustomSections: []db_models.ReportSection{
			{
				Title:   "Our approach",
				Content: "Each package balances scope, quality, and budget so you can choose the level of investment that fits your goals.",
			},
		},
		Conclusion: "We look forward to working with you. Please reach out with any questions about the packages above.",
	}
}

func (p *PricingService) GenerateReportNarrative(ctx context.Context, packages db_models.PricingPackages, clientName, notes string) db_models.ReportContent {
	prompt := buildNarrativePrompt(packages, clientName, notes)

	text, err := p.aiClient.GenerateText(ctx, prompt)
	if err != nil {
		log.Printf("Report narrative generation failed, using fallback: %v", err)
		return FallbackReportContent(clientName)
	}

	cleaned := utils.CleanJSONResponse(text)
	if cleaned == "" {
		return FallbackReportContent(clientName)
	}

	var content db_models.ReportContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		log.Printf("Report narrative parse failed, using fallback: %v", err)
		return FallbackReportContent(clientName)
	}

	return content
}

func buildNarrativePrompt(packages db_models.PricingPackages, clientName, notes string) string {
	var b strings.Builder

	b.WriteString("You are writing the narrative of a client-facing pricing proposal.\n\n")
	fmt.Fprintf(&b, "Client name: %s\n", clientName)
	if strings.TrimSpace(notes) != "" {
		fmt.Fprintf(&b, "Extra notes from the author: %s\n", notes)
	}

	b.WriteString("\nPackages:\n")
	for _, pkg := range []struct {
		tier string
		p    db_models.PricingPackage
	}{
		{"economic", packages.Economic},
		{"standard", packages.Standard},
		{"premium", packages.Premium},
	} {
		fmt.Fprintf(&b, "- %s: %s, price %.0f, %s\n", pkg.tier, pkg.p.Name, pkg.p.Price, pkg.p.Description)
	}

	b.WriteString(`
Rules:
- Output JSON only, no Markdown
- Follow this structure literally:

{
  "introduction": "warm opening paragraph addressed to the client",
  "customSections": [ { "title": "", "content": "" } ],
  "conclusion": "short closing paragraph"
}`)

	return b.String()
}
