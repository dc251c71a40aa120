package warehouse

import (
	"database/sql"
	"fmt"

	_ "github.com/databricks/databricks-sql-go"
	sf "github.com/snowflakedb/gosnowflake"

	"github.com/de-tools/qbr-atlas/pkg/services/config"
)

// Dialect supplies the per-warehouse SQL that differs between backends.
// Point lookups and listings share one syntax; the similarity ranking
// does not.
type Dialect interface {
	Name() string
	// SimilarityQuery ranks stored QBR snippets of other companies by
	// vector similarity against the target company's embedding,
	// descending, truncated to the bound chunk count. Placeholders:
	// target company (twice), chunk count.
	SimilarityQuery() string
}

type snowflakeDialect struct{}

func (snowflakeDialect) Name() string { return "snowflake" }

func (snowflakeDialect) SimilarityQuery() string {
	return `
		WITH similarity_cte AS (
			SELECT
				company_name,
				qbr_information,
				vector_cosine_similarity(
					qbr_embeddings,
					(SELECT qbr_embeddings FROM qbr_data_vectors WHERE company_name = ?)
				) AS similarity
			FROM qbr_data_vectors
			WHERE company_name != ?
			QUALIFY ROW_NUMBER() OVER (ORDER BY similarity DESC) <= ?
		)
		SELECT company_name, qbr_information
		FROM similarity_cte
	`
}

type databricksDialect struct{}

func (databricksDialect) Name() string { return "databricks" }

func (databricksDialect) SimilarityQuery() string {
	return `
		SELECT company_name, qbr_information
		FROM (
			SELECT
				company_name,
				qbr_information,
				reduce(zip_with(qbr_embeddings,
					(SELECT first(qbr_embeddings) FROM qbr_data_vectors WHERE company_name = ?),
					(x, y) -> x * y), CAST(0 AS DOUBLE), (acc, v) -> acc + v) AS similarity
			FROM qbr_data_vectors
			WHERE company_name != ?
		)
		ORDER BY similarity DESC
		LIMIT ?
	`
}

// Open connects to the configured warehouse and returns the connection
// together with the matching dialect.
func Open(cfg config.Warehouse) (*sql.DB, Dialect, error) {
	switch cfg.Driver {
	case "", "snowflake":
		dsn, err := sf.DSN(&sf.Config{
			Account:   cfg.Account,
			User:      cfg.User,
			Password:  cfg.Password,
			Database:  cfg.Database,
			Schema:    cfg.Schema,
			Warehouse: cfg.Warehouse,
			Role:      cfg.Role,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build snowflake DSN: %w", err)
		}
		db, err := sql.Open("snowflake", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to snowflake: %w", err)
		}
		return db, snowflakeDialect{}, nil
	case "databricks":
		dsn := fmt.Sprintf("token:%s@%s%s", cfg.Token, cfg.Host, cfg.HTTPPath)
		db, err := sql.Open("databricks", dsn)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to connect to databricks: %w", err)
		}
		return db, databricksDialect{}, nil
	default:
		return nil, nil, fmt.Errorf("unsupported warehouse driver: %s", cfg.Driver)
	}
}
