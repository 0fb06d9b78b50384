package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"marketstore/internal/infrastructure/migration"
	"marketstore/internal/infrastructure/storage/sqldb"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"golang.org/x/exp/slog"
)

type Storage struct {
	pool *pgxpool.Pool
	db   *sql.DB
	log  *slog.Logger
}

// New открывает пул соединений и, если migrate, применяет миграции.
func New(ctx context.Context, databaseURI string, migrate bool, log *slog.Logger) (*Storage, error) {
	pool, err := pgxpool.New(ctx, databaseURI)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if migrate {
		mg := migration.NewMigration(migration.DialectPostgres, databaseURI, migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			pool.Close()
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	return &Storage{
		pool: pool,
		db:   stdlib.OpenDBFromPool(pool),
		log:  log,
	}, nil
}

// Markets возвращает репозиторий рынков поверх пула.
func (s *Storage) Markets() *sqldb.MarketRepository {
	return sqldb.NewMarketRepository(s.db, sqldb.Postgres, s.log)
}

func (s *Storage) Close() error {
	err := s.db.Close()
	s.pool.Close()
	return err
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}
