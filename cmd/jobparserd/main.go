package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/common"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/export"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/extract"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/llm/gemini"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/pdftext"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/server"
	"github.com/LogeshBharathi/pdf-job-parser-backend/internal/store"
)

func main() {
	// .env is optional; real deployments configure through the environment.
	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := store.Open(cfg.Store.Path)
	if err != nil {
		logger.Error("opening parse history db", "path", cfg.Store.Path, "error", err)
		os.Exit(1)
	}
	defer db.Close()
	parses := store.NewParseRepository(db)

	var model extract.FieldExtractor
	if cfg.Gemini.APIKey != "" {
		model = gemini.NewClient(gemini.Config{
			APIKey:         cfg.Gemini.APIKey,
			BaseURL:        cfg.Gemini.BaseURL,
			Model:          cfg.Gemini.Model,
			Timeout:        cfg.Gemini.Timeout,
			MaxPromptChars: cfg.Gemini.MaxPromptChars,
		}, logger)
		logger.Info("generative tier enabled", "model", cfg.Gemini.Model)
	} else {
		logger.Warn("GEMINI_API_KEY not set; running in regex fallback mode")
	}

	orch := extract.NewOrchestrator(
		logger,
		extract.Config{},
		pdftext.NewPDFExtractor(logger),
		model,
		extract.NewRegexStrategy(nil),
	)

	svc := server.NewService(logger, cfg.Server, orch, parses, export.NewService(parses, logger))

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("http serving", "addr", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", "error", err)
	}
	logger.Info("stopped")
}
