package warehouse

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

var metricsCols = []string{
	"health_score", "contract_value", "csat_score", "active_users",
	"feature_adoption_rate", "ticket_volume", "renewal_probability",
	"qbr_quarter", "qbr_year",
}

func newStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewStore(db, snowflakeDialect{}), mock
}

func TestStore_GetAccountMetrics_ShouldReturnRow(t *testing.T) {
	// Given: one metrics row for the company
	store, mock := newStore(t)
	mock.ExpectQuery(`SELECT\s+health_score`).
		WithArgs("Kohlleffel Inc").
		WillReturnRows(sqlmock.NewRows(metricsCols).
			AddRow(82.3, 150000.0, 4.6, 42, 0.73, 12, 88.0, "Q4", 2024))

	// When
	m, err := store.GetAccountMetrics(context.Background(), "Kohlleffel Inc")

	// Then
	require.NoError(t, err)
	assert.Equal(t, "Kohlleffel Inc", m.CompanyName)
	assert.Equal(t, 82.3, m.HealthScore)
	assert.Equal(t, 42, m.ActiveUsers)
	assert.Equal(t, "Q4", m.Quarter)
	assert.Equal(t, 2024, m.Year)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetAccountMetrics_EmptyResultIsNotFound(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`SELECT\s+health_score`).
		WithArgs("Ghost Corp").
		WillReturnRows(sqlmock.NewRows(metricsCols))

	_, err := store.GetAccountMetrics(context.Background(), "Ghost Corp")

	assert.ErrorIs(t, err, domain.ErrCompanyNotFound)
}

func TestStore_GetAccountMetrics_QueryFailureIsDataSourceError(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`SELECT\s+health_score`).
		WithArgs("Kohlleffel Inc").
		WillReturnError(fmt.Errorf("connection reset"))

	_, err := store.GetAccountMetrics(context.Background(), "Kohlleffel Inc")

	var dsErr *domain.DataSourceError
	require.True(t, errors.As(err, &dsErr))
	assert.Equal(t, "fetch metrics", dsErr.Op)
	assert.False(t, errors.Is(err, domain.ErrCompanyNotFound))
}

func TestStore_ListCompanies(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`SELECT DISTINCT company_name`).
		WillReturnRows(sqlmock.NewRows([]string{"company_name"}).
			AddRow("Capital Forge").
			AddRow("Kohlleffel Inc"))

	companies, err := store.ListCompanies(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []string{"Capital Forge", "Kohlleffel Inc"}, companies)
}

func TestStore_GetSimilarSnippets_ExcludesTargetAndBindsK(t *testing.T) {
	// Given: the similarity query binds the target twice and the chunk count
	store, mock := newStore(t)
	mock.ExpectQuery(`vector_cosine_similarity`).
		WithArgs("Kohlleffel Inc", "Kohlleffel Inc", 4).
		WillReturnRows(sqlmock.NewRows([]string{"company_name", "qbr_information"}).
			AddRow("Hrncir Inc", "Improved adoption this quarter.").
			AddRow("Millman Inc", "Renewal risk flagged."))

	snippets, err := store.GetSimilarSnippets(context.Background(), "Kohlleffel Inc", 4)

	require.NoError(t, err)
	require.Len(t, snippets, 2)
	assert.Equal(t, "Hrncir Inc", snippets[0].CompanyName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestStore_GetSimilarSnippets_EmptyCorpusReturnsEmpty(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`vector_cosine_similarity`).
		WithArgs("Kohlleffel Inc", "Kohlleffel Inc", 8).
		WillReturnRows(sqlmock.NewRows([]string{"company_name", "qbr_information"}))

	snippets, err := store.GetSimilarSnippets(context.Background(), "Kohlleffel Inc", 8)

	require.NoError(t, err)
	assert.Empty(t, snippets)
}

func TestStore_SearchByName_LowercasesPattern(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`LOWER\(company_name\) LIKE`).
		WithArgs("%capital forge%", 3).
		WillReturnRows(sqlmock.NewRows([]string{"company_name", "qbr_information"}).
			AddRow("Capital Forge", "Solid quarter."))

	snippets, err := store.SearchByName(context.Background(), "Capital Forge", 3)

	require.NoError(t, err)
	require.Len(t, snippets, 1)
	assert.Equal(t, "Capital Forge", snippets[0].CompanyName)
}

func TestStore_SearchByContent(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`LOWER\(qbr_information\) LIKE`).
		WithArgs("%renewal risk%", 5).
		WillReturnRows(sqlmock.NewRows([]string{"company_name", "qbr_information"}).
			AddRow("Millman Inc", "Renewal risk flagged."))

	snippets, err := store.SearchByContent(context.Background(), "Renewal Risk", 5)

	require.NoError(t, err)
	require.Len(t, snippets, 1)
}

func TestStore_CountSnippets(t *testing.T) {
	store, mock := newStore(t)
	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM qbr_data_vectors`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

	count, err := store.CountSnippets(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 7, count)
}
