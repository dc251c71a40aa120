package completion

import (
	"context"
	"database/sql"

	"github.com/de-tools/qbr-atlas/pkg/models/domain"
)

// CortexProvider runs completions through the warehouse's own COMPLETE
// function, reusing the metrics connection.
type CortexProvider struct {
	db *sql.DB
}

func NewCortexProvider(db *sql.DB) *CortexProvider {
	return &CortexProvider{db: db}
}

func (p *CortexProvider) Complete(ctx context.Context, model, prompt string) (string, error) {
	query := `SELECT SNOWFLAKE.CORTEX.COMPLETE(?, ?) AS response`

	var response string
	err := p.db.QueryRowContext(ctx, query, model, prompt).Scan(&response)
	if err != nil {
		return "", &domain.GenerationError{Model: model, Err: err}
	}
	return response, nil
}
