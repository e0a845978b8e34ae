package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/vocabdeck/vocabdeck-backend/internal/adapter/contentdir"
	"github.com/vocabdeck/vocabdeck-backend/internal/adapter/llm"
	"github.com/vocabdeck/vocabdeck-backend/internal/config"
	"github.com/vocabdeck/vocabdeck-backend/internal/loader"
	"github.com/vocabdeck/vocabdeck-backend/internal/modes"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/exercise"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/impex"
	"github.com/vocabdeck/vocabdeck-backend/internal/service/passage"
	"github.com/vocabdeck/vocabdeck-backend/internal/store"
	"github.com/vocabdeck/vocabdeck-backend/internal/transport/middleware"
	"github.com/vocabdeck/vocabdeck-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, builds the
// content store and services, fixes the serving engines for the
// configured mode, and serves the REST API until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("mode", cfg.Engine.Mode),
		slog.String("log_level", cfg.Log.Level),
	)

	files := contentdir.New(cfg.Content.DataDir)
	st := store.New(logger, files, cfg.Content)
	ld := loader.New(logger, st, cfg.Loader)

	report, err := ld.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("initialize content: %w", err)
	}
	logger.Info("content initialized",
		slog.Bool("valid", report.Valid),
		slog.Int("words", report.Words),
		slog.Int("warnings", len(report.Warnings)),
	)

	gen := exercise.NewService(logger, st, cfg.Generation)
	comp := passage.NewComposer(logger, st)

	var model modes.ModelEngine
	if cfg.Engine.IsModelMode() {
		model = llm.NewClient(logger, cfg.Engine)
	}
	engines, err := modes.New(logger, cfg.Engine, st, gen, comp, model)
	if err != nil {
		return err
	}

	ix := impex.NewService(logger, st)

	content := rest.NewContentHandler(engines, cfg.Generation, logger)
	admin := rest.NewAdminHandler(st, ld, ix, logger)
	health := rest.NewHealthHandler(ld, engines, BuildVersion())
	mux := rest.NewRouter(content, admin, health)

	mws := []middleware.Middleware{
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Server.RateLimitPerMinute > 0 {
		rl := middleware.NewRateLimiter(time.Minute)
		defer rl.Stop()
		mws = append(mws, rl.Limit(cfg.Server.RateLimitPerMinute))
	}
	handler := middleware.Chain(mws...)(mux)

	if cfg.Content.WatchEnabled {
		w, err := loader.NewWatcher(logger, ld, files.CategoryDirs(), cfg.Content.WatchDebounce)
		if err != nil {
			return fmt.Errorf("create content watcher: %w", err)
		}
		w.Start(ctx)
		defer w.Stop()
	}

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown http server: %w", err)
	}

	logger.Info("server stopped")
	return nil
}
