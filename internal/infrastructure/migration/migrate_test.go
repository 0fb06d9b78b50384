package migration

import (
	"database/sql"
	"errors"
	"path/filepath"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/source"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockMigrator - мок для интерфейса Migrator
type MockMigrator struct {
	mock.Mock
}

func (m *MockMigrator) Up() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Down() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockMigrator) Close() (error, error) {
	args := m.Called()
	return args.Error(0), args.Error(1)
}

func engineFor(m Migrator) MigrationEngine {
	return func(src source.Driver, db string) (Migrator, error) {
		return m, nil
	}
}

func TestMigration_Up_Success(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Up").Return(nil)
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(DialectSQLite, "", engineFor(mockM))
	err := mg.Up()

	assert.NoError(t, err)
	mockM.AssertExpectations(t)
}

func TestMigration_Up_NoChange(t *testing.T) {
	mockM := new(MockMigrator)

	// ErrNoChange не должна считаться ошибкой в методе Up()
	mockM.On("Up").Return(migrate.ErrNoChange)
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(DialectPostgres, "", engineFor(mockM))
	assert.NoError(t, mg.Up())
}

func TestMigration_Up_Error(t *testing.T) {
	mockM := new(MockMigrator)
	boom := errors.New("dirty database")

	mockM.On("Up").Return(boom)
	mockM.On("Close").Return(nil, errors.New("close db"))

	mg := NewMigration(DialectSQLite, "", engineFor(mockM))
	err := mg.Up()

	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "close db")
}

func TestMigration_Up_EngineError(t *testing.T) {
	// Ошибка на этапе создания мигратора (например, неверный драйвер)
	engine := func(src source.Driver, db string) (Migrator, error) {
		return nil, errors.New("engine crash")
	}

	mg := NewMigration(DialectSQLite, "", engine)
	err := mg.Up()

	assert.Error(t, err)
	assert.Equal(t, "engine crash", err.Error())
}

func TestMigration_UnknownDialect(t *testing.T) {
	mg := NewMigration("oracle", "", engineFor(new(MockMigrator)))
	assert.Error(t, mg.Up())
}

func TestMigration_Reset(t *testing.T) {
	mockM := new(MockMigrator)

	mockM.On("Down").Return(nil).Once()
	mockM.On("Up").Return(nil).Once()
	mockM.On("Close").Return(nil, nil)

	mg := NewMigration(DialectSQLite, "", engineFor(mockM))
	assert.NoError(t, mg.Reset())
	mockM.AssertExpectations(t)
}

func TestMigration_SQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "markets.db")
	mg := NewMigration(DialectSQLite, SQLiteURL(path), nil)

	require.NoError(t, mg.Up())
	// Повторный запуск ничего не меняет
	require.NoError(t, mg.Up())

	db, err := sql.Open("sqlite3", path)
	require.NoError(t, err)
	defer db.Close()

	_, err = db.Exec(`INSERT INTO Markets (Name) VALUES ('A')`)
	require.NoError(t, err)

	require.NoError(t, mg.Reset())

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Markets`).Scan(&n))
	assert.Equal(t, 0, n)
}
