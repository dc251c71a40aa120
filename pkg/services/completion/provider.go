// Package completion wraps the hosted text-completion backends. One
// blocking call per request, no retries; failures surface as a
// recoverable domain.GenerationError.
package completion

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/qbr-atlas/pkg/services/config"
)

// Provider is a synchronous text-completion backend.
type Provider interface {
	Complete(ctx context.Context, model, prompt string) (string, error)
}

// NewProvider builds the configured backend. The cortex provider runs
// COMPLETE through the warehouse connection; the openai provider talks to
// any OpenAI-compatible endpoint.
func NewProvider(cfg config.Completion, db *sql.DB) (Provider, error) {
	switch cfg.Provider {
	case "", "cortex":
		if db == nil {
			return nil, fmt.Errorf("cortex provider requires a warehouse connection")
		}
		return NewCortexProvider(db), nil
	case "openai":
		return NewOpenAIProvider(cfg.BaseURL, cfg.APIKey), nil
	default:
		return nil, fmt.Errorf("unsupported completion provider: %s", cfg.Provider)
	}
}
