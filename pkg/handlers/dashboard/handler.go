package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/de-tools/qbr-atlas/pkg/models/api"
	"github.com/de-tools/qbr-atlas/pkg/models/domain"
	"github.com/de-tools/qbr-atlas/pkg/services/report"
	"github.com/de-tools/qbr-atlas/pkg/services/search"
)

const defaultChunkCount = 4

// Pipeline is the QBR generation surface the handlers render.
type Pipeline interface {
	FetchMetrics(ctx context.Context, company string) (domain.AccountMetrics, error)
	Generate(ctx context.Context, req domain.ReportRequest) report.Outcome
	History() *report.Store
}

// CompanyLister populates the company picker.
type CompanyLister interface {
	ListCompanies(ctx context.Context) ([]string, error)
}

// Searcher runs the free-text lookup.
type Searcher interface {
	Search(ctx context.Context, query string, k int, model string) (search.Response, error)
}

type Handler struct {
	pipeline  Pipeline
	companies CompanyLister
	searcher  Searcher
}

func NewHandler(pipeline Pipeline, companies CompanyLister, searcher Searcher) *Handler {
	return &Handler{
		pipeline:  pipeline,
		companies: companies,
		searcher:  searcher,
	}
}

func (h *Handler) ListCompanies(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	names, err := h.companies.ListCompanies(ctx)
	if err != nil {
		writeError(w, http.StatusBadGateway, string(report.OutcomeDataSourceError), err.Error())
		return
	}

	response := make([]api.Company, 0, len(names))
	for _, name := range names {
		response = append(response, api.Company{Name: name})
	}
	writeJSON(ctx, w, response)
}

func (h *Handler) GetMetrics(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	company := companyParam(r)

	metrics, err := h.pipeline.FetchMetrics(ctx, company)
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrCompanyNotFound):
		writeError(w, http.StatusNotFound, string(report.OutcomeNotFound),
			fmt.Sprintf("no metrics found for %s", company))
		return
	default:
		writeError(w, http.StatusBadGateway, string(report.OutcomeDataSourceError), err.Error())
		return
	}

	writeJSON(ctx, w, api.AccountMetrics{
		CompanyName:         metrics.CompanyName,
		HealthScore:         metrics.HealthScore,
		ContractValue:       metrics.ContractValue,
		CSATScore:           metrics.CSATScore,
		ActiveUsers:         metrics.ActiveUsers,
		FeatureAdoptionRate: metrics.FeatureAdoptionRate,
		TicketVolume:        metrics.TicketVolume,
		RenewalProbability:  metrics.RenewalProbability,
		Quarter:             metrics.Quarter,
		Year:                metrics.Year,
	})
}

func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	company := companyParam(r)

	var body api.GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "malformed request body")
		return
	}

	chunkCount := body.ChunkCount
	if chunkCount == 0 {
		chunkCount = defaultChunkCount
	}

	outcome := h.pipeline.Generate(ctx, domain.ReportRequest{
		Company:    company,
		Template:   domain.TemplateKind(body.Template),
		View:       domain.AudienceView(body.View),
		Model:      body.Model,
		ChunkCount: chunkCount,
		UseHistory: body.UseHistory,
		Validation: body.Validation,
	})

	switch outcome.Kind {
	case report.OutcomeSuccess:
		writeJSON(ctx, w, toAPIReport(*outcome.Report))
	case report.OutcomeNotFound:
		writeError(w, http.StatusNotFound, string(outcome.Kind), outcome.Message)
	case report.OutcomeDataSourceError, report.OutcomeGenerationError:
		writeError(w, http.StatusBadGateway, string(outcome.Kind), outcome.Message)
	}
}

func (h *Handler) ListReports(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	reports := h.pipeline.History().List()
	response := make([]api.GeneratedReport, 0, len(reports))
	for _, rep := range reports {
		response = append(response, toAPIReport(rep))
	}
	writeJSON(ctx, w, response)
}

// ExportReport serves one report as a markdown download.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	rep, ok := h.pipeline.History().Get(id)
	if !ok {
		writeError(w, http.StatusNotFound, string(report.OutcomeNotFound), "report not found")
		return
	}

	filename := report.ExportFilename(rep.Company, rep.CreatedAt)
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	_, _ = w.Write([]byte(rep.Content))
}

func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	query := r.URL.Query().Get("q")
	if query == "" {
		writeError(w, http.StatusBadRequest, "invalid_request", "missing query parameter q")
		return
	}

	k := 3
	if raw := r.URL.Query().Get("k"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(w, http.StatusBadRequest, "invalid_request", "k must be a positive integer")
			return
		}
		k = parsed
	}
	model := r.URL.Query().Get("model")

	resp, err := h.searcher.Search(ctx, query, k, model)
	if err != nil {
		kind := report.OutcomeDataSourceError
		var genErr *domain.GenerationError
		if errors.As(err, &genErr) {
			kind = report.OutcomeGenerationError
		}
		writeError(w, http.StatusBadGateway, string(kind), err.Error())
		return
	}

	results := make([]api.SearchResult, 0, len(resp.Results))
	for _, res := range resp.Results {
		results = append(results, api.SearchResult{
			CompanyName: res.CompanyName,
			Snippet:     res.Snippet,
		})
	}
	writeJSON(ctx, w, api.SearchResponse{Results: results, Answer: resp.Answer})
}

// Options serves the picker enumerations.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	templates := make([]string, 0, 4)
	for _, t := range domain.TemplateKinds() {
		templates = append(templates, string(t))
	}
	views := make([]string, 0, 4)
	for _, v := range domain.AudienceViews() {
		views = append(views, string(v))
	}

	writeJSON(r.Context(), w, api.Options{
		Templates:   templates,
		Views:       views,
		Models:      domain.Models(),
		ChunkCounts: domain.ChunkCounts(),
	})
}

// companyParam decodes the company route segment; company names contain
// spaces.
func companyParam(r *http.Request) string {
	raw := chi.URLParam(r, "company")
	if decoded, err := url.PathUnescape(raw); err == nil {
		return decoded
	}
	return raw
}

func toAPIReport(r domain.GeneratedReport) api.GeneratedReport {
	return api.GeneratedReport{
		ID:        r.ID,
		Company:   r.Company,
		Model:     r.Model,
		Content:   r.Content,
		Template:  string(r.Template),
		View:      string(r.View),
		CreatedAt: r.CreatedAt,
	}
}

func writeJSON(ctx context.Context, w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to encode response")
	}
}

func writeError(w http.ResponseWriter, status int, kind, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(api.Error{Kind: kind, Message: message})
}
