// Package report runs the QBR generation pipeline: fetch metrics,
// optionally retrieve historical context, compose the prompt, call the
// completion service, and record the result in the session history. The
// pipeline is synchronous and returns a tagged Outcome so the transport
// layers stay thin renderers.
package report

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
	"github.com/de-tools/qbr-atlas/pkg/services/completion"
	"github.com/de-tools/qbr-atlas/pkg/services/prompt"
)

// MetricsSource is the warehouse surface the pipeline needs.
type MetricsSource interface {
	GetAccountMetrics(ctx context.Context, company string) (domain.AccountMetrics, error)
	GetSimilarSnippets(ctx context.Context, company string, k int) ([]domain.HistoricalSnippet, error)
}

// OutcomeKind tags the pipeline result.
type OutcomeKind string

const (
	OutcomeSuccess         OutcomeKind = "success"
	OutcomeNotFound        OutcomeKind = "not_found"
	OutcomeDataSourceError OutcomeKind = "data_source_error"
	OutcomeGenerationError OutcomeKind = "generation_error"
)

// Outcome is the tagged result of one pipeline run. Report is set only on
// success; Message carries the user-facing error text otherwise.
type Outcome struct {
	Kind    OutcomeKind
	Report  *domain.GeneratedReport
	Message string
}

// Pipeline wires the warehouse, the completion provider, and the session
// history together.
type Pipeline struct {
	source   MetricsSource
	provider completion.Provider
	history  *Store
}

func NewPipeline(source MetricsSource, provider completion.Provider, history *Store) *Pipeline {
	return &Pipeline{
		source:   source,
		provider: provider,
		history:  history,
	}
}

// FetchMetrics runs the metrics-display step on its own.
func (p *Pipeline) FetchMetrics(ctx context.Context, company string) (domain.AccountMetrics, error) {
	return p.source.GetAccountMetrics(ctx, company)
}

// Generate runs the full pipeline for one request. Nothing is appended to
// the session history unless generation succeeded.
func (p *Pipeline) Generate(ctx context.Context, req domain.ReportRequest) Outcome {
	logger := zerolog.Ctx(ctx)

	metrics, err := p.source.GetAccountMetrics(ctx, req.Company)
	if errors.Is(err, domain.ErrCompanyNotFound) {
		return Outcome{Kind: OutcomeNotFound, Message: fmt.Sprintf("no metrics found for %s", req.Company)}
	}
	if err != nil {
		logger.Error().Err(err).Str("company", req.Company).Msg("metrics lookup failed")
		return Outcome{Kind: OutcomeDataSourceError, Message: err.Error()}
	}

	var snippets []domain.HistoricalSnippet
	if req.UseHistory {
		snippets, err = p.source.GetSimilarSnippets(ctx, req.Company, req.ChunkCount)
		if err != nil {
			logger.Error().Err(err).Str("company", req.Company).Msg("context retrieval failed")
			return Outcome{Kind: OutcomeDataSourceError, Message: err.Error()}
		}
	}

	composed := prompt.Compose(metrics, snippets, req.Template, req.View)

	content, err := p.provider.Complete(ctx, req.Model, composed)
	if err != nil {
		logger.Error().Err(err).Str("model", req.Model).Msg("completion call failed")
		return Outcome{Kind: OutcomeGenerationError, Message: err.Error()}
	}

	generated := domain.GeneratedReport{
		ID:        uuid.NewString(),
		Company:   req.Company,
		Model:     req.Model,
		Content:   content,
		Template:  req.Template,
		View:      req.View,
		CreatedAt: time.Now(),
	}
	p.history.Append(generated)

	return Outcome{Kind: OutcomeSuccess, Report: &generated}
}

// History exposes the session store for listing.
func (p *Pipeline) History() *Store {
	return p.history
}

// ExportFilename is the download name for a generated report.
func ExportFilename(company string, t time.Time) string {
	return fmt.Sprintf("QBR_%s_%s.md", company, t.Format("20060102"))
}
