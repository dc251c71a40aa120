package report

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

type mockSource struct {
	mock.Mock
}

func (m *mockSource) GetAccountMetrics(ctx context.Context, company string) (domain.AccountMetrics, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(domain.AccountMetrics), args.Error(1)
}

func (m *mockSource) GetSimilarSnippets(ctx context.Context, company string, k int) ([]domain.HistoricalSnippet, error) {
	args := m.Called(ctx, company, k)
	return args.Get(0).([]domain.HistoricalSnippet), args.Error(1)
}

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	args := m.Called(ctx, model, prompt)
	return args.String(0), args.Error(1)
}

func sampleMetrics() domain.AccountMetrics {
	return domain.AccountMetrics{
		CompanyName:        "Kohlleffel Inc",
		HealthScore:        82.3,
		ContractValue:      150000,
		CSATScore:          4.6,
		ActiveUsers:        42,
		RenewalProbability: 88,
		Quarter:            "Q4",
		Year:               2024,
	}
}

func sampleRequest() domain.ReportRequest {
	return domain.ReportRequest{
		Company:    "Kohlleffel Inc",
		Template:   domain.TemplateStandard,
		View:       domain.ViewExecutive,
		Model:      "claude-3-5-sonnet",
		ChunkCount: 4,
	}
}

func TestPipeline_Generate_Success_AppendsExactlyOne(t *testing.T) {
	// Given
	source := new(mockSource)
	provider := new(mockProvider)
	history := NewStore()
	source.On("GetAccountMetrics", mock.Anything, "Kohlleffel Inc").
		Return(sampleMetrics(), nil)
	provider.On("Complete", mock.Anything, "claude-3-5-sonnet", mock.Anything).
		Return("## Executive Summary\nHealthy account.", nil)

	pipeline := NewPipeline(source, provider, history)

	// When
	outcome := pipeline.Generate(context.Background(), sampleRequest())

	// Then
	require.Equal(t, OutcomeSuccess, outcome.Kind)
	require.NotNil(t, outcome.Report)
	assert.NotEmpty(t, outcome.Report.ID)
	assert.Equal(t, "Kohlleffel Inc", outcome.Report.Company)
	assert.Equal(t, 1, history.Len())
}

func TestPipeline_Generate_GenerationFailureLeavesHistoryUnchanged(t *testing.T) {
	source := new(mockSource)
	provider := new(mockProvider)
	history := NewStore()
	source.On("GetAccountMetrics", mock.Anything, "Kohlleffel Inc").
		Return(sampleMetrics(), nil)
	provider.On("Complete", mock.Anything, "claude-3-5-sonnet", mock.Anything).
		Return("", &domain.GenerationError{Model: "claude-3-5-sonnet", Err: fmt.Errorf("quota exceeded")})

	pipeline := NewPipeline(source, provider, history)

	before := history.Len()
	outcome := pipeline.Generate(context.Background(), sampleRequest())

	assert.Equal(t, OutcomeGenerationError, outcome.Kind)
	assert.Nil(t, outcome.Report)
	assert.NotEmpty(t, outcome.Message)
	assert.Equal(t, before, history.Len())
}

func TestPipeline_Generate_UnknownCompanyIsNotFound(t *testing.T) {
	source := new(mockSource)
	provider := new(mockProvider)
	source.On("GetAccountMetrics", mock.Anything, "Ghost Corp").
		Return(domain.AccountMetrics{}, domain.ErrCompanyNotFound)

	pipeline := NewPipeline(source, provider, NewStore())

	req := sampleRequest()
	req.Company = "Ghost Corp"
	outcome := pipeline.Generate(context.Background(), req)

	assert.Equal(t, OutcomeNotFound, outcome.Kind)
	provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Generate_RetrievalFailureIsDataSourceError(t *testing.T) {
	source := new(mockSource)
	provider := new(mockProvider)
	history := NewStore()
	source.On("GetAccountMetrics", mock.Anything, "Kohlleffel Inc").
		Return(sampleMetrics(), nil)
	source.On("GetSimilarSnippets", mock.Anything, "Kohlleffel Inc", 4).
		Return([]domain.HistoricalSnippet{}, &domain.DataSourceError{Op: "retrieve context", Err: fmt.Errorf("timeout")})

	pipeline := NewPipeline(source, provider, history)

	req := sampleRequest()
	req.UseHistory = true
	outcome := pipeline.Generate(context.Background(), req)

	assert.Equal(t, OutcomeDataSourceError, outcome.Kind)
	assert.Equal(t, 0, history.Len())
	provider.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything, mock.Anything)
}

func TestPipeline_Generate_SkipsRetrievalWhenHistoryDisabled(t *testing.T) {
	source := new(mockSource)
	provider := new(mockProvider)
	source.On("GetAccountMetrics", mock.Anything, "Kohlleffel Inc").
		Return(sampleMetrics(), nil)
	provider.On("Complete", mock.Anything, "claude-3-5-sonnet", mock.Anything).
		Return("report", nil)

	pipeline := NewPipeline(source, provider, NewStore())

	outcome := pipeline.Generate(context.Background(), sampleRequest())

	assert.Equal(t, OutcomeSuccess, outcome.Kind)
	source.AssertNotCalled(t, "GetSimilarSnippets", mock.Anything, mock.Anything, mock.Anything)
}

func TestExportFilename(t *testing.T) {
	ts := time.Date(2024, time.November, 5, 14, 30, 0, 0, time.UTC)
	assert.Equal(t, "QBR_Kohlleffel Inc_20241105.md", ExportFilename("Kohlleffel Inc", ts))
}
