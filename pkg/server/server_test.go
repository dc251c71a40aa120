package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/qbr-atlas/pkg/models/api"
	"github.com/de-tools/qbr-atlas/pkg/models/domain"
	"github.com/de-tools/qbr-atlas/pkg/services/report"
	"github.com/de-tools/qbr-atlas/pkg/services/search"
)

type mockPipeline struct {
	mock.Mock
	history *report.Store
}

func (m *mockPipeline) FetchMetrics(ctx context.Context, company string) (domain.AccountMetrics, error) {
	args := m.Called(ctx, company)
	return args.Get(0).(domain.AccountMetrics), args.Error(1)
}

func (m *mockPipeline) Generate(ctx context.Context, req domain.ReportRequest) report.Outcome {
	args := m.Called(ctx, req)
	return args.Get(0).(report.Outcome)
}

func (m *mockPipeline) History() *report.Store {
	return m.history
}

type mockCompanyLister struct {
	mock.Mock
}

func (m *mockCompanyLister) ListCompanies(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	return args.Get(0).([]string), args.Error(1)
}

type mockSearcher struct {
	mock.Mock
}

func (m *mockSearcher) Search(ctx context.Context, query string, k int, model string) (search.Response, error) {
	args := m.Called(ctx, query, k, model)
	return args.Get(0).(search.Response), args.Error(1)
}

func TestWebAPI_RoutesAreWired(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	pipeline := &mockPipeline{history: report.NewStore()}
	companies := new(mockCompanyLister)
	searcher := new(mockSearcher)

	companies.On("ListCompanies", mock.Anything).Return([]string{"Capital Forge"}, nil)
	pipeline.On("FetchMetrics", mock.Anything, "Capital Forge").
		Return(domain.AccountMetrics{CompanyName: "Capital Forge", HealthScore: 91.2}, nil)

	webAPI := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Pipeline:  pipeline,
			Companies: companies,
			Searcher:  searcher,
		},
	})

	t.Run("list companies", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webAPI.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got []api.Company
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, []api.Company{{Name: "Capital Forge"}}, got)
	})

	t.Run("get metrics", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webAPI.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/companies/Capital%20Forge/metrics", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got api.AccountMetrics
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Equal(t, 91.2, got.HealthScore)
	})

	t.Run("options", func(t *testing.T) {
		rec := httptest.NewRecorder()
		webAPI.router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/options", nil))

		require.Equal(t, http.StatusOK, rec.Code)
		var got api.Options
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&got))
		assert.Len(t, got.Models, 11)
	})
}

func TestNewWebAPI_ShutdownTimeout(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("configured value is used", func(t *testing.T) {
		webAPI := NewWebAPI(logger, Config{Addr: ":8080", ShutdownTimeout: 3 * time.Second})

		assert.Equal(t, 3*time.Second, webAPI.shutdownTimeout)
	})

	t.Run("zero falls back to default", func(t *testing.T) {
		webAPI := NewWebAPI(logger, Config{Addr: ":8080"})

		assert.Equal(t, 10*time.Second, webAPI.shutdownTimeout)
	})
}
