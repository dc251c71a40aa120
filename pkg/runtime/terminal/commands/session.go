package commands

import (
	"database/sql"
	"fmt"

	"github.com/de-tools/qbr-atlas/pkg/services/completion"
	"github.com/de-tools/qbr-atlas/pkg/services/config"
	"github.com/de-tools/qbr-atlas/pkg/services/report"
	"github.com/de-tools/qbr-atlas/pkg/services/search"
	"github.com/de-tools/qbr-atlas/pkg/store/warehouse"
)

// session bundles the connected services one CLI invocation needs. Each
// invocation owns its own report history, mirroring the dashboard's
// per-session store.
type session struct {
	db       *sql.DB
	store    *warehouse.Store
	pipeline *report.Pipeline
	searcher *search.Searcher
}

func openSession(profilePath string) (*session, error) {
	cfg, err := config.Load(profilePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profile: %w", err)
	}

	db, dialect, err := warehouse.Open(cfg.Warehouse)
	if err != nil {
		return nil, err
	}

	provider, err := completion.NewProvider(cfg.Completion, db)
	if err != nil {
		db.Close()
		return nil, err
	}

	store := warehouse.NewStore(db, dialect)
	return &session{
		db:       db,
		store:    store,
		pipeline: report.NewPipeline(store, provider, report.NewStore()),
		searcher: search.NewSearcher(store, provider),
	}, nil
}

func (s *session) Close() error {
	return s.db.Close()
}
