package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"marketstore/internal/infrastructure/migration"
	"marketstore/internal/infrastructure/storage/sqldb"

	_ "github.com/mattn/go-sqlite3"
	"golang.org/x/exp/slog"
)

// WAL, ожидание блокировки до 5 с, все транзакции открываются BEGIN IMMEDIATE.
const dsnParams = "?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000&_txlock=immediate"

type Storage struct {
	db  *sql.DB
	log *slog.Logger
}

// New открывает (или создает) файл базы и, если migrate, применяет миграции.
func New(ctx context.Context, path string, migrate bool, log *slog.Logger) (*Storage, error) {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create database dir: %w", err)
		}
	}

	if migrate {
		mg := migration.NewMigration(migration.DialectSQLite, migration.SQLiteURL(path), migration.DefaultEngine)
		if err := mg.Up(); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+dsnParams)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Storage{db: db, log: log}, nil
}

func (s *Storage) Markets() *sqldb.MarketRepository {
	return sqldb.NewMarketRepository(s.db, sqldb.SQLite, s.log)
}

func (s *Storage) DB() *sql.DB {
	return s.db
}

func (s *Storage) Close() error {
	return s.db.Close()
}
