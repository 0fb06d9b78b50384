package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	"marketstore/internal/domain/market"

	"golang.org/x/exp/slog"
)

// deleteBatchSize ограничивает число id в одном DELETE ... IN (...):
// у SQLite и PostgreSQL есть предел на число параметров запроса.
const deleteBatchSize = 500

// MarketRepository - реализация market.Repository поверх database/sql.
// Используется и для SQLite, и для PostgreSQL.
type MarketRepository struct {
	db      *sql.DB
	dialect Dialect
	log     *slog.Logger
}

func NewMarketRepository(db *sql.DB, dialect Dialect, log *slog.Logger) *MarketRepository {
	return &MarketRepository{
		db:      db,
		dialect: dialect,
		log:     log.With("component", "market_repository", "dialect", dialect.Name),
	}
}

func (r *MarketRepository) Create(ctx context.Context, t market.Template) (market.Record, error) {
	return RunInTx(ctx, r.db, func(tx *sql.Tx) (market.Record, error) {
		query, args := buildInsert(r.dialect, t)

		var id int64
		if err := tx.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
			r.log.Error("failed to insert market", "error", err)
			return market.Record{}, fmt.Errorf("insert market: %w", err)
		}

		records, err := r.read(ctx, tx, market.ByID(id))
		if err != nil {
			return market.Record{}, err
		}
		if len(records) != 1 {
			return market.Record{}, fmt.Errorf("re-read market %d: got %d rows", id, len(records))
		}
		return records[0], nil
	})
}

func (r *MarketRepository) Read(ctx context.Context, t market.Template) ([]market.Record, error) {
	return RunInTx(ctx, r.db, func(tx *sql.Tx) ([]market.Record, error) {
		return r.read(ctx, tx, t)
	})
}

func (r *MarketRepository) Update(ctx context.Context, values, conditions market.Template) ([]market.Record, error) {
	return RunInTx(ctx, r.db, func(tx *sql.Tx) ([]market.Record, error) {
		matched, err := r.read(ctx, tx, conditions)
		if err != nil {
			return nil, err
		}

		updated := make([]market.Record, 0, len(matched))
		for _, existing := range matched {
			query, args := buildUpdate(r.dialect, market.Merge(existing, values))
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				r.log.Error("failed to update market", "id", existing.ID, "error", err)
				return nil, fmt.Errorf("update market %d: %w", existing.ID, err)
			}

			records, err := r.read(ctx, tx, market.ByID(existing.ID))
			if err != nil {
				return nil, err
			}
			updated = append(updated, records...)
		}
		return updated, nil
	})
}

func (r *MarketRepository) Delete(ctx context.Context, t market.Template) ([]market.Record, error) {
	return RunInTx(ctx, r.db, func(tx *sql.Tx) ([]market.Record, error) {
		matched, err := r.read(ctx, tx, t)
		if err != nil {
			return nil, err
		}
		if len(matched) == 0 {
			return matched, nil
		}

		ids := make([]int64, len(matched))
		for i, rec := range matched {
			ids[i] = rec.ID
		}

		for chunk := range slices.Chunk(ids, deleteBatchSize) {
			query, args := buildDelete(r.dialect, chunk)
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				r.log.Error("failed to delete markets", "count", len(ids), "error", err)
				return nil, fmt.Errorf("delete markets: %w", err)
			}
		}
		return matched, nil
	})
}

func (r *MarketRepository) Count(ctx context.Context) (int64, error) {
	var n int64
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+market.Table).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("count markets: %w", err)
	}
	return n, nil
}

// Вспомогательные методы
func (r *MarketRepository) read(ctx context.Context, tx *sql.Tx, t market.Template) ([]market.Record, error) {
	query, args := buildSelect(r.dialect, market.Compile(t))

	rows, err := tx.QueryContext(ctx, query, args...)
	if err != nil {
		r.log.Error("failed to read markets", "error", err)
		return nil, fmt.Errorf("read markets: %w", err)
	}
	defer rows.Close()

	return scanRecords(rows)
}

func scanRecords(rows *sql.Rows) ([]market.Record, error) {
	records := make([]market.Record, 0)
	for rows.Next() {
		var rec market.Record
		err := rows.Scan(
			&rec.ID, &rec.Name, &rec.Address, &rec.City, &rec.County,
			&rec.State, &rec.Zip, &rec.Lat, &rec.Long,
		)
		if err != nil {
			return nil, fmt.Errorf("scan market: %w", err)
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}
