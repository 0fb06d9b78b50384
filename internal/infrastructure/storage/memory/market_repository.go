package memory

import (
	"context"
	"sort"
	"sync"

	"marketstore/internal/domain/market"
)

// MarketRepository хранит рынки в памяти процесса. Все операции
// выполняются под одной блокировкой, поэтому каждая из них атомарна.
type MarketRepository struct {
	mu      sync.Mutex
	records map[int64]market.Record
	lastID  int64
}

func NewMarketRepository() *MarketRepository {
	return &MarketRepository{
		records: make(map[int64]market.Record),
	}
}

func (r *MarketRepository) Create(ctx context.Context, t market.Template) (market.Record, error) {
	if err := ctx.Err(); err != nil {
		return market.Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	rec := market.NewRecord(r.lastID, t)
	r.records[rec.ID] = rec
	return rec, nil
}

func (r *MarketRepository) Read(ctx context.Context, t market.Template) ([]market.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.match(t), nil
}

func (r *MarketRepository) Update(ctx context.Context, values, conditions market.Template) ([]market.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.match(conditions)
	for i, rec := range matched {
		matched[i] = market.Merge(rec, values)
		r.records[rec.ID] = matched[i]
	}
	return matched, nil
}

func (r *MarketRepository) Delete(ctx context.Context, t market.Template) ([]market.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	matched := r.match(t)
	for _, rec := range matched {
		delete(r.records, rec.ID)
	}
	return matched, nil
}

func (r *MarketRepository) Count(ctx context.Context) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	return int64(len(r.records)), nil
}

// match возвращает копии подходящих записей по возрастанию id. Вызывается под r.mu.
func (r *MarketRepository) match(t market.Template) []market.Record {
	result := make([]market.Record, 0)
	for _, rec := range r.records {
		if market.Matches(t, rec) {
			result = append(result, rec)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result
}
