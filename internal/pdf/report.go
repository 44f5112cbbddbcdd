package pdf

import (
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/Husam-Abdulraheem/freelance-pricing-ai/internal/models/db_models"
)

var accentGreen = &props.Color{Red: 22, Green: 163, Blue: 74}
var mutedGray = &props.Color{Red: 107, Green: 114, Blue: 128}

type ReportGenerator struct{}

func NewReportGenerator() *ReportGenerator {
	return &ReportGenerator{}
}

// Generate lays out the proposal as a native multi-page document: header,
// introduction, project details excerpt, the recommended standard package,
// the economic/premium comparison, the narrative's custom sections, and a
// branding footer. Rows flow onto new pages automatically.
func (g *ReportGenerator) Generate(
	result db_models.PricingResult,
	content db_models.ReportContent,
	clientName string,
	projectName string,
	branding db_models.BrandingSettings,
) ([]byte, error) {
	m := maroto.New(config.NewBuilder().Build())

	title := "Pricing Proposal"
	if strings.TrimSpace(projectName) != "" {
		title = fmt.Sprintf("%s - Pricing Proposal", projectName)
	}

	// Header
	m.AddRow(12,
		col.New(8).Add(
			text.New(title, props.Text{
				Size:  18,
				Style: fontstyle.Bold,
				Color: accentGreen,
			}),
		),
		col.New(4).Add(
			text.New(time.Now().Format("Jan 2, 2006"), props.Text{
				Size:  10,
				Align: align.Right,
				Color: mutedGray,
			}),
		),
	)
	m.AddRow(6,
		col.New(8).Add(
			text.New("Product and services proposal", props.Text{
				Size:  9,
				Color: mutedGray,
			}),
		),
		col.New(4).Add(
			text.New(clientName, props.Text{
				Size:  10,
				Style: fontstyle.Bold,
				Align: align.Right,
			}),
		),
	)

	m.AddRow(8)

	// Introduction
	m.AddRow(8,
		col.New(12).Add(
			text.New("Introduction", props.Text{
				Size:  13,
				Style: fontstyle.Bold,
			}),
		),
	)
	m.AddRow(textRowHeight(content.Introduction),
		col.New(12).Add(
			text.New(content.Introduction, props.Text{Size: 9}),
		),
	)

	// Project details: the first blank-line-delimited paragraph of the
	// model's justification.
	excerpt := firstParagraph(result.Justification)
	if excerpt != "" {
		m.AddRow(8,
			col.New(12).Add(
				text.New("Project Details", props.Text{
					Size:  12,
					Style: fontstyle.Bold,
				}),
			),
		)
		m.AddRow(textRowHeight(excerpt),
			col.New(12).Add(
				text.New(excerpt, props.Text{Size: 9}),
			),
		)
	}

	// Recommended package
	m.AddRow(10,
		col.New(12).Add(
			text.New("Suggested Pricing Packages", props.Text{
				Size:  13,
				Style: fontstyle.Bold,
			}),
		),
	)
	m.AddRow(8,
		col.New(8).Add(
			text.New(fmt.Sprintf("%s (Recommended)", result.Packages.Standard.Name), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Color: accentGreen,
			}),
		),
		col.New(4).Add(
			text.New(fmt.Sprintf("%.0f %s", result.Packages.Standard.Price, result.Currency), props.Text{
				Size:  12,
				Style: fontstyle.Bold,
				Align: align.Right,
				Color: accentGreen,
			}),
		),
	)
	m.AddRow(textRowHeight(result.Packages.Standard.Description),
		col.New(12).Add(
			text.New(result.Packages.Standard.Description, props.Text{Size: 9, Color: mutedGray}),
		),
	)
	// First 8 features, two per row.
	standardFeatures := result.Packages.Standard.Features
	if len(standardFeatures) > 8 {
		standardFeatures = standardFeatures[:8]
	}
	for i := 0; i < len(standardFeatures); i += 2 {
		left := "• " + standardFeatures[i]
		right := ""
		if i+1 < len(standardFeatures) {
			right = "• " + standardFeatures[i+1]
		}
		m.AddRow(5,
			col.New(6).Add(text.New(left, props.Text{Size: 8})),
			col.New(6).Add(text.New(right, props.Text{Size: 8})),
		)
	}

	m.AddRow(8)

	// Economic / premium comparison
	m.AddRow(8,
		col.New(6).Add(
			text.New(result.Packages.Economic.Name, props.Text{Size: 10, Style: fontstyle.Bold}),
		),
		col.New(6).Add(
			text.New(result.Packages.Premium.Name, props.Text{Size: 10, Style: fontstyle.Bold}),
		),
	)
	m.AddRow(5,
		col.New(6).Add(
			text.New(fmt.Sprintf("%.0f %s", result.Packages.Economic.Price, result.Currency), props.Text{Size: 9}),
		),
		col.New(6).Add(
			text.New(fmt.Sprintf("%.0f %s", result.Packages.Premium.Price, result.Currency), props.Text{Size: 9}),
		),
	)
	maxFeatures := len(result.Packages.Economic.Features)
	if len(result.Packages.Premium.Features) > maxFeatures {
		maxFeatures = len(result.Packages.Premium.Features)
	}
	for i := 0; i < maxFeatures; i++ {
		left, right := "", ""
		if i < len(result.Packages.Economic.Features) {
			left = "• " + result.Packages.Economic.Features[i]
		}
		if i < len(result.Packages.Premium.Features) {
			right = "• " + result.Packages.Premium.Features[i]
		}
		m.AddRow(5,
			col.New(6).Add(text.New(left, props.Text{Size: 8})),
			col.New(6).Add(text.New(right, props.Text{Size: 8})),
		)
	}

	// Narrative sections
	if len(content.CustomSections) > 0 {
		m.AddRow(10,
			col.New(12).Add(
				text.New("Tailored Analysis", props.Text{
					Size:  13,
					Style: fontstyle.Bold,
				}),
			),
		)
		for _, section := range content.CustomSections {
			m.AddRow(7,
				col.New(12).Add(
					text.New(section.Title, props.Text{Size: 10, Style: fontstyle.Bold}),
				),
			)
			m.AddRow(textRowHeight(section.Content),
				col.New(12).Add(
					text.New(section.Content, props.Text{Size: 9}),
				),
			)
		}
	}

	// Footer
	m.AddRow(10)
	m.AddRow(textRowHeight(content.Conclusion),
		col.New(12).Add(
			text.New(content.Conclusion, props.Text{Size: 9, Align: align.Center, Color: mutedGray}),
		),
	)
	m.AddRow(8,
		col.New(6).Add(
			text.New(branding.CompanyName, props.Text{Size: 11, Style: fontstyle.Bold}),
		),
		col.New(6).Add(
			text.New(branding.Email, props.Text{Size: 9, Align: align.Right}),
		),
	)
	if branding.Phone != "" || branding.Website != "" {
		m.AddRow(5,
			col.New(6).Add(
				text.New(branding.Phone, props.Text{Size: 8, Color: mutedGray}),
			),
			col.New(6).Add(
				text.New(branding.Website, props.Text{Size: 8, Align: align.Right, Color: mutedGray}),
			),
		)
	}

	document, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate PDF document: %w", err)
	}

	return document.GetBytes(), nil
}

// firstParagraph returns the text up to the first blank line.
func firstParagraph(s string) string {
	parts := strings.SplitN(s, "\n\n", 2)
	return strings.TrimSpace(parts[0])
}

// textRowHeight sizes a row for wrapped body text. Rough but sufficient:
// maroto wraps within the row, it just needs enough vertical room.
func textRowHeight(s string) float64 {
	lines := len(s)/95 + 1
	return float64(lines*4 + 2)
}

// ReportFileName derives the download name from the client name, whitespace
// replaced by underscores.
func ReportFileName(clientName string) string {
	name := strings.Join(strings.Fields(strings.TrimSpace(clientName)), "_")
	if name == "" {
		name = "client"
	}
	return fmt.Sprintf("quote_%s.pdf", name)
}
