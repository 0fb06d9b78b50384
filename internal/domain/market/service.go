package market

import (
	"context"

	"golang.org/x/exp/slog"
)

// Service - бизнес-логика операций над рынками: проверка аргументов,
// логирование и приведение ошибок хранилища к ErrStorageFailure.
type Service struct {
	repo Repository
	log  *slog.Logger
}

type Servicer interface {
	Echo(ctx context.Context, rec Record) Record
	Create(ctx context.Context, t Template) (Record, error)
	Read(ctx context.Context, t Template) ([]Record, error)
	Update(ctx context.Context, values, conditions Template) ([]Record, error)
	Delete(ctx context.Context, t Template) ([]Record, error)
	Stats(ctx context.Context) (int64, error)
}

// NewService creates a new market service
func NewService(repo Repository, log *slog.Logger) Servicer {
	return &Service{
		repo: repo,
		log:  log.With("component", "market_service"),
	}
}

// Echo returns the record unchanged. Used for connectivity checks.
func (s *Service) Echo(_ context.Context, rec Record) Record {
	s.log.Info("EchoMarket", "market", rec)
	return rec
}

// Create validates the template and stores a new market
func (s *Service) Create(ctx context.Context, t Template) (Record, error) {
	s.log.Info("CreateMarket", "market", t)
	if err := ValidateCreate(t); err != nil {
		return Record{}, err
	}

	rec, err := s.repo.Create(ctx, t)
	if err != nil {
		s.log.Error("failed to create market", "error", err)
		return Record{}, storageFailure("create market", err)
	}

	s.log.Info("market created", "id", rec.ID)
	return rec, nil
}

// Read returns all markets matching the template
func (s *Service) Read(ctx context.Context, t Template) ([]Record, error) {
	s.log.Info("ReadMarket", "market", t)
	records, err := s.repo.Read(ctx, t)
	if err != nil {
		s.log.Error("failed to read markets", "error", err)
		return nil, storageFailure("read markets", err)
	}
	return records, nil
}

// Update merges values into every market matching conditions
func (s *Service) Update(ctx context.Context, values, conditions Template) ([]Record, error) {
	s.log.Info("UpdateMarket", "market", values, "conditions", conditions)
	if err := ValidateUpdate(values); err != nil {
		return nil, err
	}

	records, err := s.repo.Update(ctx, values, conditions)
	if err != nil {
		s.log.Error("failed to update markets", "error", err)
		return nil, storageFailure("update markets", err)
	}

	s.log.Info("markets updated", "count", len(records))
	return records, nil
}

// Delete removes every market matching the template and returns them
func (s *Service) Delete(ctx context.Context, t Template) ([]Record, error) {
	s.log.Info("DeleteMarket", "market", t)
	records, err := s.repo.Delete(ctx, t)
	if err != nil {
		s.log.Error("failed to delete markets", "error", err)
		return nil, storageFailure("delete markets", err)
	}

	s.log.Info("markets deleted", "count", len(records))
	return records, nil
}

// Stats returns the number of stored markets
func (s *Service) Stats(ctx context.Context) (int64, error) {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return 0, storageFailure("count markets", err)
	}
	return n, nil
}
