package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Warehouse holds connection settings for the metrics warehouse. Driver
// selects the dialect: "snowflake" (default) or "databricks".
type Warehouse struct {
	Driver    string `mapstructure:"driver"`
	Account   string `mapstructure:"account"`
	User      string `mapstructure:"user"`
	Password  string `mapstructure:"password"`
	Database  string `mapstructure:"database"`
	Schema    string `mapstructure:"schema"`
	Warehouse string `mapstructure:"warehouse"`
	Role      string `mapstructure:"role"`
	Host      string `mapstructure:"host"`
	HTTPPath  string `mapstructure:"http_path"`
	Token     string `mapstructure:"token"`
}

// Completion selects the completion backend. Provider is "cortex" (the
// warehouse's own COMPLETE function, default) or "openai" (any
// OpenAI-compatible endpoint).
type Completion struct {
	Provider string `mapstructure:"provider"`
	BaseURL  string `mapstructure:"base_url"`
	APIKey   string `mapstructure:"api_key"`
}

type Config struct {
	Warehouse  Warehouse  `mapstructure:"warehouse"`
	Completion Completion `mapstructure:"completion"`
}

// Load reads a YAML profile from the given path.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetDefault("warehouse.driver", "snowflake")
	v.SetDefault("completion.provider", "cortex")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return &cfg, nil
}
