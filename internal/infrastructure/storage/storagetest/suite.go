// Package storagetest содержит общий набор проверок для реализаций
// market.Repository. Каждое хранилище прогоняет его в своих тестах.
package storagetest

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"marketstore/internal/domain/market"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Factory возвращает пустое хранилище для одного подтеста.
type Factory func(t *testing.T) market.Repository

func Run(t *testing.T, newRepo Factory) {
	t.Run("CreateAndRead", func(t *testing.T) { testCreateAndRead(t, newRepo(t)) })
	t.Run("EmptyTemplateMatchesAll", func(t *testing.T) { testEmptyTemplate(t, newRepo(t)) })
	t.Run("OptionalFieldsRoundTrip", func(t *testing.T) { testOptionalFields(t, newRepo(t)) })
	t.Run("Update", func(t *testing.T) { testUpdate(t, newRepo(t)) })
	t.Run("UpdateManyRows", func(t *testing.T) { testUpdateMany(t, newRepo(t)) })
	t.Run("UpdateNoMatch", func(t *testing.T) { testUpdateNoMatch(t, newRepo(t)) })
	t.Run("Delete", func(t *testing.T) { testDelete(t, newRepo(t)) })
	t.Run("IDsNeverReused", func(t *testing.T) { testIDsNeverReused(t, newRepo(t)) })
	t.Run("Scenario", func(t *testing.T) { testScenario(t, newRepo(t)) })
	t.Run("ConcurrentCreates", func(t *testing.T) { testConcurrentCreates(t, newRepo(t)) })
}

func testCreateAndRead(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	market1 := market.Record{
		Name:    "Farmer's Market1",
		Address: market.Some("Address"),
		City:    market.Some("City"),
	}
	created, err := repo.Create(ctx, market1.Template())
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	market1.ID = created.ID
	assert.Equal(t, market1, created)

	read, err := repo.Read(ctx, market1.Template())
	require.NoError(t, err)
	assert.Equal(t, []market.Record{created}, read)

	market2 := market.Record{
		Name:    "Farmer's Market2",
		Address: market.Some("Address2"),
		Zip:     market.Some("99999"),
	}
	created2, err := repo.Create(ctx, market2.Template())
	require.NoError(t, err)
	assert.NotEqual(t, created.ID, created2.ID)

	read, err = repo.Read(ctx, market2.Template())
	require.NoError(t, err)
	market2.ID = created2.ID
	assert.Equal(t, []market.Record{market2}, read)

	read, err = repo.Read(ctx, market.Template{City: market.Some("Nowhere")})
	require.NoError(t, err)
	assert.NotNil(t, read)
	assert.Empty(t, read)
}

func testEmptyTemplate(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	all, err := repo.Read(ctx, market.Template{})
	require.NoError(t, err)
	assert.Empty(t, all)

	var created []market.Record
	for i := 0; i < 3; i++ {
		rec, err := repo.Create(ctx, market.Template{Name: market.Some(fmt.Sprintf("market-%d", i))})
		require.NoError(t, err)
		created = append(created, rec)
	}

	all, err = repo.Read(ctx, market.Template{})
	require.NoError(t, err)
	assert.Equal(t, created, all)

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), n)
}

func testOptionalFields(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	full := market.Template{
		Name:    market.Some("Full"),
		Address: market.Some(""),
		City:    market.Some("City"),
		County:  market.Some("County"),
		State:   market.Some("CA"),
		Zip:     market.Some("90000"),
		Lat:     market.Some(37.7749),
		Long:    market.Some(-122.4194),
	}
	rec, err := repo.Create(ctx, full)
	require.NoError(t, err)
	assert.Equal(t, market.NewRecord(rec.ID, full), rec)

	sparse, err := repo.Create(ctx, market.Template{Name: market.Some("Sparse")})
	require.NoError(t, err)
	assert.False(t, sparse.Address.IsSet())
	assert.False(t, sparse.Lat.IsSet())

	// Пустая строка - заданное значение и не совпадает с NULL.
	got, err := repo.Read(ctx, market.Template{Address: market.Some("")})
	require.NoError(t, err)
	assert.Equal(t, []market.Record{rec}, got)

	got, err = repo.Read(ctx, market.Template{Lat: market.Some(37.7749), Long: market.Some(-122.4194)})
	require.NoError(t, err)
	assert.Equal(t, []market.Record{rec}, got)

	got, err = repo.Read(ctx, market.Template{Lat: market.Some(37.77)})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func testUpdate(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	old := market.Template{
		Name:    market.Some("Farmer's Market Old"),
		Address: market.Some("Address Old"),
		City:    market.Some("City Old"),
		State:   market.Some("CA Old"),
	}
	changes := market.Template{
		Name:    market.Some("Farmer's Market Updated"),
		Address: market.Some("Address Updated"),
		City:    market.Some("City Updated"),
		Zip:     market.Some("90000"),
	}

	created, err := repo.Create(ctx, old)
	require.NoError(t, err)

	updated, err := repo.Update(ctx, changes, old)
	require.NoError(t, err)

	want := market.Record{
		ID:      created.ID,
		Name:    "Farmer's Market Updated",
		Address: market.Some("Address Updated"),
		City:    market.Some("City Updated"),
		State:   market.Some("CA Old"),
		Zip:     market.Some("90000"),
	}
	assert.Equal(t, []market.Record{want}, updated)

	got, err := repo.Read(ctx, old)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = repo.Read(ctx, market.ByID(created.ID))
	require.NoError(t, err)
	assert.Equal(t, []market.Record{want}, got)
}

func testUpdateMany(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	a, err := repo.Create(ctx, market.Template{Name: market.Some("A"), City: market.Some("X"), Zip: market.Some("1")})
	require.NoError(t, err)
	b, err := repo.Create(ctx, market.Template{Name: market.Some("B"), City: market.Some("X")})
	require.NoError(t, err)
	c, err := repo.Create(ctx, market.Template{Name: market.Some("C"), City: market.Some("Y")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, market.Template{State: market.Some("CA")}, market.Template{City: market.Some("X")})
	require.NoError(t, err)
	require.Len(t, updated, 2)

	a.State = market.Some("CA")
	b.State = market.Some("CA")
	assert.Equal(t, []market.Record{a, b}, updated)

	got, err := repo.Read(ctx, market.ByID(c.ID))
	require.NoError(t, err)
	assert.Equal(t, []market.Record{c}, got)
}

func testUpdateNoMatch(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	rec, err := repo.Create(ctx, market.Template{Name: market.Some("A")})
	require.NoError(t, err)

	updated, err := repo.Update(ctx, market.Template{Name: market.Some("B")}, market.Template{Name: market.Some("missing")})
	require.NoError(t, err)
	assert.Empty(t, updated)

	got, err := repo.Read(ctx, market.Template{})
	require.NoError(t, err)
	assert.Equal(t, []market.Record{rec}, got)
}

func testDelete(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	a, err := repo.Create(ctx, market.Template{Name: market.Some("test_farmers"), City: market.Some("X")})
	require.NoError(t, err)
	b, err := repo.Create(ctx, market.Template{Name: market.Some("test_farmers")})
	require.NoError(t, err)
	keep, err := repo.Create(ctx, market.Template{Name: market.Some("keep")})
	require.NoError(t, err)

	tmpl := market.Template{Name: market.Some("test_farmers")}
	before, err := repo.Read(ctx, tmpl)
	require.NoError(t, err)

	deleted, err := repo.Delete(ctx, tmpl)
	require.NoError(t, err)
	assert.Equal(t, before, deleted)
	assert.Equal(t, []market.Record{a, b}, deleted)

	after, err := repo.Read(ctx, tmpl)
	require.NoError(t, err)
	assert.Empty(t, after)

	deleted, err = repo.Delete(ctx, tmpl)
	require.NoError(t, err)
	assert.Empty(t, deleted)

	rest, err := repo.Read(ctx, market.Template{})
	require.NoError(t, err)
	assert.Equal(t, []market.Record{keep}, rest)
}

func testIDsNeverReused(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	first, err := repo.Create(ctx, market.Template{Name: market.Some("first")})
	require.NoError(t, err)
	_, err = repo.Delete(ctx, market.ByID(first.ID))
	require.NoError(t, err)

	second, err := repo.Create(ctx, market.Template{Name: market.Some("second")})
	require.NoError(t, err)
	assert.Greater(t, second.ID, first.ID)
}

func testScenario(t *testing.T, repo market.Repository) {
	ctx := context.Background()

	created, err := repo.Create(ctx, market.Template{Name: market.Some("A"), City: market.Some("X")})
	require.NoError(t, err)
	want := market.Record{ID: created.ID, Name: "A", City: market.Some("X")}
	assert.Equal(t, want, created)

	read, err := repo.Read(ctx, market.Template{City: market.Some("X")})
	require.NoError(t, err)
	assert.Equal(t, []market.Record{want}, read)

	updated, err := repo.Update(ctx, market.Template{Zip: market.Some("99999")}, market.Template{Name: market.Some("A")})
	require.NoError(t, err)
	want.Zip = market.Some("99999")
	assert.Equal(t, []market.Record{want}, updated)

	deleted, err := repo.Delete(ctx, market.ByID(created.ID))
	require.NoError(t, err)
	assert.Equal(t, []market.Record{want}, deleted)

	read, err = repo.Read(ctx, market.ByID(created.ID))
	require.NoError(t, err)
	assert.Empty(t, read)
}

func testConcurrentCreates(t *testing.T, repo market.Repository) {
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	ids := make([]int64, workers)
	errs := make([]error, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			rec, err := repo.Create(ctx, market.Template{Name: market.Some(fmt.Sprintf("w%d", i))})
			ids[i], errs[i] = rec.ID, err
		}(i)
	}
	wg.Wait()

	seen := make(map[int64]bool, workers)
	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.False(t, seen[ids[i]], "duplicate id %d", ids[i])
		seen[ids[i]] = true
	}

	n, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(workers), n)
}
