package domain

import "time"

// TemplateKind selects the overall QBR template.
type TemplateKind string

const (
	TemplateStandard        TemplateKind = "Standard QBR"
	TemplateExecSummary     TemplateKind = "Executive Summary Only"
	TemplateTechnicalDeep   TemplateKind = "Technical Deep Dive"
	TemplateCustomerSuccess TemplateKind = "Customer Success Focus"
)

// AudienceView selects which audience the report is written for.
type AudienceView string

const (
	ViewExecutive       AudienceView = "Executive View"
	ViewTechnical       AudienceView = "Technical View"
	ViewCustomerSuccess AudienceView = "Customer Success View"
	ViewSales           AudienceView = "Sales View"
)

// TemplateKinds lists all supported templates in picker order.
func TemplateKinds() []TemplateKind {
	return []TemplateKind{
		TemplateStandard,
		TemplateExecSummary,
		TemplateTechnicalDeep,
		TemplateCustomerSuccess,
	}
}

// AudienceViews lists all supported views in picker order.
func AudienceViews() []AudienceView {
	return []AudienceView{
		ViewExecutive,
		ViewTechnical,
		ViewCustomerSuccess,
		ViewSales,
	}
}

// Models lists the completion models offered by the dashboard.
func Models() []string {
	return []string{
		"llama3.2-3b",
		"claude-3-5-sonnet",
		"mistral-large2",
		"llama3.1-8b",
		"llama3.1-405b",
		"llama3.1-70b",
		"mistral-7b",
		"jamba-1.5-large",
		"mixtral-8x7b",
		"reka-flash",
		"gemma-7b",
	}
}

// ChunkCounts lists the allowed context-chunk counts.
func ChunkCounts() []int {
	return []int{4, 6, 8, 10, 12, 14, 16}
}

// ReportRequest carries everything needed to generate one QBR.
// Constructed fresh per generation and never mutated afterwards.
type ReportRequest struct {
	Company    string
	Template   TemplateKind
	View       AudienceView
	Model      string
	ChunkCount int
	UseHistory bool
	Validation bool // accepted but currently inert
}

// GeneratedReport is one finished QBR kept in the session history.
type GeneratedReport struct {
	ID        string
	Company   string
	Model     string
	Content   string
	Template  TemplateKind
	View      AudienceView
	CreatedAt time.Time
}
