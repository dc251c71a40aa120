// Package prompt builds the QBR generation prompt. Compose is a pure
// function of its inputs so identical requests produce byte-identical
// prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// NoContextMarker is emitted verbatim when no historical snippets were
// retrieved for the request.
const NoContextMarker = "No historical context available"

const rolePreamble = `You are an expert business analyst creating a Quarterly Business Review (QBR).`

const formattingDirectives = `Format the QBR professionally with clear section headers and bullet points for key items.
Include specific metrics and data points to support all observations and recommendations.`

var templateInstructions = map[domain.TemplateKind]string{
	domain.TemplateStandard: `Produce a complete Standard QBR covering business health, adoption, support, and strategy in equal depth.`,
	domain.TemplateExecSummary: `Produce a condensed executive-summary-only QBR: lead with the overall health assessment and limit each section to the three most decision-relevant points.`,
	domain.TemplateTechnicalDeep: `Produce a technical deep-dive QBR: emphasize feature-level usage, integration health, and support ticket root causes over commercial commentary.`,
	domain.TemplateCustomerSuccess: `Produce a customer-success-focused QBR: emphasize satisfaction drivers, adoption journey, and renewal readiness.`,
}

var viewInstructions = map[domain.AudienceView]string{
	domain.ViewExecutive: `Write for an executive audience: business outcomes first, minimal operational detail, quantify financial impact wherever the data allows.`,
	domain.ViewTechnical: `Write for a technical audience: include adoption rates, usage patterns, and ticket trends with their underlying drivers.`,
	domain.ViewCustomerSuccess: `Write for a customer success audience: highlight relationship health, satisfaction trajectory, and engagement risks.`,
	domain.ViewSales: `Write for a sales audience: highlight renewal probability, expansion signals, and competitive positioning.`,
}

var viewSections = map[domain.AudienceView][]string{
	domain.ViewExecutive: {
		"Executive Summary",
		"Business Impact Analysis",
		"Strategic Recommendations",
		"Risk Assessment",
		"Action Items",
	},
	domain.ViewTechnical: {
		"Technical Overview",
		"Product Adoption Review",
		"Integration and Usage Analysis",
		"Support Ticket Analysis",
		"Technical Roadmap Alignment",
		"Action Items",
	},
	domain.ViewCustomerSuccess: {
		"Relationship Health Summary",
		"Customer Satisfaction Analysis",
		"Adoption Progress",
		"Support and Success Analysis",
		"Success Plan Actions",
	},
	domain.ViewSales: {
		"Account Summary",
		"Renewal Outlook",
		"Expansion Opportunities",
		"Competitive Position",
		"Next Steps",
	},
}

// fallbackSections is used for any view without a configured layout.
var fallbackSections = []string{
	"Executive Summary",
	"Business Review",
	"Recommendations",
}

// Compose deterministically merges the template style, audience emphasis,
// section layout, and data payload into one generation prompt. Unknown
// template or view keys contribute an empty instruction fragment rather
// than failing; the section layout falls back to a generic three-section
// list.
func Compose(
	metrics domain.AccountMetrics,
	snippets []domain.HistoricalSnippet,
	template domain.TemplateKind,
	view domain.AudienceView,
) string {
	var b strings.Builder

	b.WriteString(rolePreamble)
	b.WriteString("\n\n")

	if instr, ok := templateInstructions[template]; ok {
		b.WriteString(instr)
		b.WriteString("\n\n")
	}
	if instr, ok := viewInstructions[view]; ok {
		b.WriteString(instr)
		b.WriteString("\n\n")
	}

	b.WriteString("Company Data:\n")
	b.WriteString(serializeMetrics(metrics))
	b.WriteString("\n")

	b.WriteString("Historical Context:\n")
	if len(snippets) == 0 {
		b.WriteString(NoContextMarker)
		b.WriteString("\n")
	} else {
		for _, s := range snippets {
			fmt.Fprintf(&b, "- [%s] %s\n", s.CompanyName, s.Content)
		}
	}
	b.WriteString("\n")

	fmt.Fprintf(&b, "Generate a detailed %s for the %s audience with these specific sections:\n\n", template, view)

	sections, ok := viewSections[view]
	if !ok {
		sections = fallbackSections
	}
	for i, title := range sections {
		fmt.Fprintf(&b, "%d. %s\n", i+1, title)
	}
	b.WriteString("\n")

	b.WriteString(formattingDirectives)

	return b.String()
}

func serializeMetrics(m domain.AccountMetrics) string {
	var b strings.Builder
	fmt.Fprintf(&b, "COMPANY_NAME: %s\n", m.CompanyName)
	fmt.Fprintf(&b, "HEALTH_SCORE: %.1f\n", m.HealthScore)
	fmt.Fprintf(&b, "CONTRACT_VALUE: %.2f\n", m.ContractValue)
	fmt.Fprintf(&b, "CSAT_SCORE: %.1f\n", m.CSATScore)
	fmt.Fprintf(&b, "ACTIVE_USERS: %d\n", m.ActiveUsers)
	fmt.Fprintf(&b, "FEATURE_ADOPTION_RATE: %.2f\n", m.FeatureAdoptionRate)
	fmt.Fprintf(&b, "TICKET_VOLUME: %d\n", m.TicketVolume)
	fmt.Fprintf(&b, "RENEWAL_PROBABILITY: %.1f\n", m.RenewalProbability)
	fmt.Fprintf(&b, "QBR_PERIOD: %s %d\n", m.Quarter, m.Year)
	return b.String()
}

// Sections returns the ordered section titles for a view, or the generic
// fallback layout when the view has none configured.
func Sections(view domain.AudienceView) []string {
	if sections, ok := viewSections[view]; ok {
		return sections
	}
	return fallbackSections
}
