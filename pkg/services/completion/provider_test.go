package completion

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/qbr-atlas/pkg/services/config"
)

func TestNewProvider_DefaultsToCortex(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	provider, err := NewProvider(config.Completion{}, db)

	require.NoError(t, err)
	assert.IsType(t, &CortexProvider{}, provider)
}

func TestNewProvider_OpenAI(t *testing.T) {
	provider, err := NewProvider(config.Completion{
		Provider: "openai",
		BaseURL:  "http://localhost:8080/v1",
		APIKey:   "test-key",
	}, nil)

	require.NoError(t, err)
	assert.IsType(t, &OpenAIProvider{}, provider)
}

func TestNewProvider_CortexRequiresWarehouse(t *testing.T) {
	_, err := NewProvider(config.Completion{Provider: "cortex"}, nil)
	assert.Error(t, err)
}

func TestNewProvider_UnknownProvider(t *testing.T) {
	_, err := NewProvider(config.Completion{Provider: "bedrock"}, nil)
	assert.ErrorContains(t, err, "unsupported completion provider")
}
