package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"marketstore/internal/app/server/api"
	"marketstore/internal/app/server/config"
	"marketstore/internal/domain/market"
	"marketstore/internal/infrastructure/migration"
	"marketstore/internal/infrastructure/storage"

	"golang.org/x/exp/slog"
)

const shutdownTimeout = 10 * time.Second

type App struct {
	cfg *config.Config
	log *slog.Logger
}

func New(cfg *config.Config, log *slog.Logger) *App {
	return &App{
		cfg: cfg,
		log: log.With("component", "server"),
	}
}

// Run поднимает хранилище и HTTP сервер и блокируется до отмены ctx,
// после чего дожидается завершения активных запросов.
func (a *App) Run(ctx context.Context) error {
	store, err := storage.New(ctx, a.cfg.DB, a.log)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			a.log.Error("failed to close storage", "error", err)
		}
	}()

	service := market.NewService(store.Markets, a.log)

	n, err := service.Stats(ctx)
	if err != nil {
		return fmt.Errorf("storage sanity check: %w", err)
	}
	a.log.Info(fmt.Sprintf("database contains %d markets", n), "backend", a.cfg.DB.Backend)

	srv := &http.Server{
		Addr:              a.cfg.Server.RunAddress,
		Handler:           api.New(service, a.log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting server", "address", srv.Addr, "env", a.cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	a.log.Info("server stopped")
	return nil
}

// Migrate применяет миграции к настроенной базе. С reset схема
// сначала откатывается, все данные удаляются.
func Migrate(cfg config.DB, reset bool, log *slog.Logger) error {
	var mg *migration.Migration
	switch cfg.Backend {
	case config.BackendSQLite:
		mg = migration.NewMigration(migration.DialectSQLite, migration.SQLiteURL(cfg.SQLitePath), nil)
	case config.BackendPostgres:
		mg = migration.NewMigration(migration.DialectPostgres, cfg.DatabaseURI, nil)
	default:
		return fmt.Errorf("backend %q has no schema to migrate", cfg.Backend)
	}

	if reset {
		log.Warn("resetting database schema", "backend", cfg.Backend)
		return mg.Reset()
	}
	log.Info("applying migrations", "backend", cfg.Backend)
	return mg.Up()
}
