package warehouse

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// Store provides the QBR lookups against the warehouse. All queries are
// parameterized point or ranking lookups; nothing here retries.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

func NewStore(db *sql.DB, dialect Dialect) *Store {
	return &Store{db: db, dialect: dialect}
}

// GetAccountMetrics fetches one company's current-period metrics.
// An empty result set yields domain.ErrCompanyNotFound; anything else
// that goes wrong yields a DataSourceError.
func (s *Store) GetAccountMetrics(ctx context.Context, company string) (domain.AccountMetrics, error) {
	query := `
		SELECT
			health_score,
			contract_value,
			csat_score,
			active_users,
			feature_adoption_rate,
			ticket_volume,
			renewal_probability,
			qbr_quarter,
			qbr_year
		FROM qbr_data
		WHERE company_name = ?
	`

	var m domain.AccountMetrics
	m.CompanyName = company

	row := s.db.QueryRowContext(ctx, query, company)
	err := row.Scan(
		&m.HealthScore,
		&m.ContractValue,
		&m.CSATScore,
		&m.ActiveUsers,
		&m.FeatureAdoptionRate,
		&m.TicketVolume,
		&m.RenewalProbability,
		&m.Quarter,
		&m.Year,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.AccountMetrics{}, domain.ErrCompanyNotFound
	}
	if err != nil {
		return domain.AccountMetrics{}, &domain.DataSourceError{Op: "fetch metrics", Err: err}
	}
	return m, nil
}

// ListCompanies returns the distinct company names for the picker.
func (s *Store) ListCompanies(ctx context.Context) ([]string, error) {
	query := `
		SELECT DISTINCT company_name
		FROM qbr_data
		ORDER BY company_name
	`

	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "list companies", Err: err}
	}
	defer rows.Close()

	var companies []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, &domain.DataSourceError{Op: "list companies", Err: err}
		}
		companies = append(companies, name)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.DataSourceError{Op: "list companies", Err: err}
	}
	return companies, nil
}

// GetSimilarSnippets ranks other companies' stored QBR text by similarity
// to the target company's embedding, descending, truncated to k. An empty
// corpus or a target with no stored embedding yields an empty slice, not
// an error.
func (s *Store) GetSimilarSnippets(ctx context.Context, company string, k int) ([]domain.HistoricalSnippet, error) {
	rows, err := s.db.QueryContext(ctx, s.dialect.SimilarityQuery(), company, company, k)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "retrieve context", Err: err}
	}
	defer rows.Close()

	return scanSnippets(rows, "retrieve context")
}

// SearchByName matches company names case-insensitively by substring,
// limited to k rows.
func (s *Store) SearchByName(ctx context.Context, query string, k int) ([]domain.HistoricalSnippet, error) {
	stmt := `
		SELECT company_name, qbr_information
		FROM qbr_data_vectors
		WHERE LOWER(company_name) LIKE ?
		LIMIT ?
	`

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx, stmt, pattern, k)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "search by name", Err: err}
	}
	defer rows.Close()

	return scanSnippets(rows, "search by name")
}

// SearchByContent matches the stored QBR text by substring, limited to
// k rows. Used only when the name tier comes back empty.
func (s *Store) SearchByContent(ctx context.Context, query string, k int) ([]domain.HistoricalSnippet, error) {
	stmt := `
		SELECT company_name, qbr_information
		FROM qbr_data_vectors
		WHERE LOWER(qbr_information) LIKE ?
		LIMIT ?
	`

	pattern := "%" + strings.ToLower(query) + "%"
	rows, err := s.db.QueryContext(ctx, stmt, pattern, k)
	if err != nil {
		return nil, &domain.DataSourceError{Op: "search by content", Err: err}
	}
	defer rows.Close()

	return scanSnippets(rows, "search by content")
}

// CountSnippets reports the size of the historical corpus.
func (s *Store) CountSnippets(ctx context.Context) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM qbr_data_vectors`).Scan(&count)
	if err != nil {
		return 0, &domain.DataSourceError{Op: "count snippets", Err: err}
	}
	return count, nil
}

func scanSnippets(rows *sql.Rows, op string) ([]domain.HistoricalSnippet, error) {
	var snippets []domain.HistoricalSnippet
	for rows.Next() {
		var s domain.HistoricalSnippet
		if err := rows.Scan(&s.CompanyName, &s.Content); err != nil {
			return nil, &domain.DataSourceError{Op: op, Err: err}
		}
		snippets = append(snippets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, &domain.DataSourceError{Op: op, Err: err}
	}
	return snippets, nil
}
