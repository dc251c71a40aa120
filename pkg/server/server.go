package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
	"github.com/rs/zerolog"

	"github.com/de-tools/qbr-atlas/pkg/handlers/dashboard"
	qbrmiddleware "github.com/de-tools/qbr-atlas/pkg/server/middleware"
)

type WebAPI struct {
	router          *chi.Mux
	logger          *zerolog.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

type Dependencies struct {
	Pipeline  dashboard.Pipeline
	Companies dashboard.CompanyLister
	Searcher  dashboard.Searcher
}

type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	Dependencies    Dependencies
}

func NewWebAPI(logger zerolog.Logger, config Config) *WebAPI {
	handler := dashboard.NewHandler(
		config.Dependencies.Pipeline,
		config.Dependencies.Companies,
		config.Dependencies.Searcher,
	)

	router := chi.NewRouter()

	router.Use(qbrmiddleware.Logger(&logger))
	router.Use(middleware.Recoverer)
	router.Use(cors.AllowAll().Handler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/options", handler.Options)
		r.Get("/companies", handler.ListCompanies)
		r.Get("/companies/{company}/metrics", handler.GetMetrics)
		r.Post("/companies/{company}/qbr", handler.GenerateReport)
		r.Get("/reports", handler.ListReports)
		r.Get("/reports/{id}/export", handler.ExportReport)
		r.Get("/search", handler.Search)
	})

	shutdownTimeout := config.ShutdownTimeout
	if shutdownTimeout <= 0 {
		shutdownTimeout = 10 * time.Second
	}

	return &WebAPI{
		router: router,
		logger: &logger,
		server: &http.Server{
			Addr:    config.Addr,
			Handler: router,
		},
		shutdownTimeout: shutdownTimeout,
	}
}

func (w *WebAPI) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		w.logger.Info().Str("addr", w.server.Addr).Msg("starting server")
		serverErrors <- w.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case <-shutdown:
		w.logger.Info().Msg("shutdown initiated")

		// Give outstanding requests a deadline for completion.
		ctx, cancel := context.WithTimeout(context.Background(), w.shutdownTimeout)
		defer cancel()

		err := w.server.Shutdown(ctx)
		if err != nil {
			w.logger.Error().Err(err).Msg("graceful shutdown failed")
			err = w.server.Close()
		}

		if err != nil {
			return err
		}
	}

	return nil
}
