package services

import (
	"context"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/pdf"
	"github.com/Husam-Abdulraheem/freelance-pricing-ai/pkg/utils"
)

type ReportServiceInterface interface {
	// GenerateReport produces the branded PDF for the current pricing
	// result and records a history snapshot. Returns the download filename
	// and the document bytes.
	GenerateReport(ctx context.Context, clientName, projectName, notes string) (string, []byte, error)
}

type ReportService struct {
	wizard    WizardServiceInterface
	pricing   PricingServiceInterface
	branding  BrandingServiceInterface
	history   HistoryServiceInterface
	generator *pdf.ReportGenerator
}

func NewReportService(
	wizard WizardServiceInterface,
	pricing PricingServiceInterface,
	branding BrandingServiceInterface,
	history HistoryServiceInterface,
	generator *pdf.ReportGenerator,
) ReportServiceInterface {
	return &ReportService{
		wizard:    wizard,
		pricing:   pricing,
		branding:  branding,
		history:   history,
		generator: generator,
	}
}

func (r *ReportService) GenerateReport(ctx context.Context, clientName, projectName, notes string) (string, []byte, error) {
	state := r.wizard.State(ctx)
	if state.PricingResult == nil {
		return "", nil, utils.ErrNoPricingResult
	}
	result := *state.PricingResult

	// Narrative generation soft-fails internally: it always yields content.
	content := r.pricing.GenerateReportNarrative(ctx, result.Packages, clientName, notes)

	branding := r.branding.Get(ctx)

	data, err := r.generator.Generate(result, content, clientName, projectName, branding)
	if err != nil {
		return "", nil, err
	}

	// A history snapshot exists only for runs that produced a report.
	r.history.Record(ctx, clientName, projectName, state, result)

	return pdf.ReportFileName(clientName), data, nil
}
