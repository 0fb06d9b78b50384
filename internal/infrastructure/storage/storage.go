package storage

import (
	"context"
	"fmt"
	"io"

	"marketstore/internal/app/server/config"
	"marketstore/internal/domain/market"
	"marketstore/internal/infrastructure/storage/memory"
	"marketstore/internal/infrastructure/storage/postgres"
	"marketstore/internal/infrastructure/storage/sqlite"

	"golang.org/x/exp/slog"
)

// Storage - выбранное хранилище: репозиторий рынков и функция закрытия.
type Storage struct {
	Markets market.Repository
	closer  io.Closer
}

func (s *Storage) Close() error {
	if s.closer == nil {
		return nil
	}
	return s.closer.Close()
}

// New создает хранилище по имени бэкенда из конфигурации.
//
// Поддерживаемые бэкенды:
//
//	"sqlite"   - файл SQLite (по умолчанию)
//	"postgres" - PostgreSQL по DATABASE_URI
//	"memory"   - в памяти процесса, для тестов
func New(ctx context.Context, cfg config.DB, log *slog.Logger) (*Storage, error) {
	switch cfg.Backend {
	case config.BackendSQLite, "":
		s, err := sqlite.New(ctx, cfg.SQLitePath, cfg.MigrateOnStart, log)
		if err != nil {
			return nil, err
		}
		return &Storage{Markets: s.Markets(), closer: s}, nil
	case config.BackendPostgres:
		s, err := postgres.New(ctx, cfg.DatabaseURI, cfg.MigrateOnStart, log)
		if err != nil {
			return nil, err
		}
		return &Storage{Markets: s.Markets(), closer: s}, nil
	case config.BackendMemory:
		return &Storage{Markets: memory.NewMarketRepository()}, nil
	default:
		return nil, fmt.Errorf("unknown storage backend: %q (supported: sqlite, postgres, memory)", cfg.Backend)
	}
}
