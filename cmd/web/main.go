package main

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/de-tools/qbr-atlas/pkg/server"
	"github.com/de-tools/qbr-atlas/pkg/services/completion"
	"github.com/de-tools/qbr-atlas/pkg/services/config"
	"github.com/de-tools/qbr-atlas/pkg/services/report"
	"github.com/de-tools/qbr-atlas/pkg/services/search"
	"github.com/de-tools/qbr-atlas/pkg/store/warehouse"
)

var cfgPath string

func main() {
	var rootCmd = &cobra.Command{
		Use:   "web",
		Short: "Start the QBR dashboard server",
		RunE:  runServer,
	}

	rootCmd.Flags().StringVarP(&cfgPath, "config", "c", "qbr-atlas.yaml",
		"Path to the configuration profile")

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func runServer(cmd *cobra.Command, _ []string) error {
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Error loading .env file: %v\n", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	db, dialect, err := warehouse.Open(cfg.Warehouse)
	if err != nil {
		return fmt.Errorf("failed to connect to warehouse: %w", err)
	}
	defer db.Close()

	provider, err := completion.NewProvider(cfg.Completion, db)
	if err != nil {
		return fmt.Errorf("failed to create completion provider: %w", err)
	}

	store := warehouse.NewStore(db, dialect)
	pipeline := report.NewPipeline(store, provider, report.NewStore())
	searcher := search.NewSearcher(store, provider)

	logger.Info().Msgf("Configuration found at `%s` successfully loaded.", cfgPath)
	logger.Info().Str("warehouse", dialect.Name()).Str("completion", cfg.Completion.Provider).
		Msg("providers configured")

	host := os.Getenv("SERVER_HOST")
	port := os.Getenv("SERVER_PORT")

	if host == "" || port == "" {
		logger.Error().Msgf("Missing server configuration from .env file")
		os.Exit(1)
	}

	api := server.NewWebAPI(logger, server.Config{
		Addr:            net.JoinHostPort(host, port),
		ShutdownTimeout: 10 * time.Second,
		Dependencies: server.Dependencies{
			Pipeline:  pipeline,
			Companies: store,
			Searcher:  searcher,
		},
	})

	return api.Start()
}
