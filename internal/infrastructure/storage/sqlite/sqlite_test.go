package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"marketstore/internal/domain/market"
	"marketstore/internal/infrastructure/storage/storagetest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	path := filepath.Join(t.TempDir(), "markets.db")
	s, err := New(context.Background(), path, true, slog.Default())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestMarketRepository(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) market.Repository {
		return newTestStorage(t).Markets()
	})
}

func TestNew_WithoutMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "markets.db")
	s, err := New(context.Background(), path, false, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	// Таблицы нет: ошибка хранилища, а не паника или пустой результат.
	_, err = s.Markets().Read(context.Background(), market.Template{})
	assert.Error(t, err)
}

func TestMarketRepository_Persists(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "markets.db")

	s, err := New(ctx, path, true, slog.Default())
	require.NoError(t, err)
	rec, err := s.Markets().Create(ctx, market.Template{Name: market.Some("A"), Lat: market.Some(1.25)})
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = New(ctx, path, true, slog.Default())
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Markets().Read(ctx, market.ByID(rec.ID))
	require.NoError(t, err)
	assert.Equal(t, []market.Record{rec}, got)
}
