package postgres

import (
	"context"
	"errors"
	"os"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

func newMockStore(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS person").WillReturnResult(sqlmock.NewResult(0, 0))

	store, err := NewWithDB(db)
	require.NoError(t, err)

	t.Cleanup(func() {
		mock.ExpectClose()
		require.NoError(t, store.Close())
		require.NoError(t, mock.ExpectationsWereMet())
	})
	return store, mock
}

func TestSaveReturnsGeneratedID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO person (name, age, email) VALUES ($1, $2, $3) RETURNING id")).
		WithArgs("Al", 5, "a@b.com").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(7)))

	saved, err := store.Save(context.Background(), types.Person{ID: 123, Name: "Al", Age: 5, Email: "a@b.com"})
	require.NoError(t, err)
	assert.Equal(t, types.Person{ID: 7, Name: "Al", Age: 5, Email: "a@b.com"}, saved)
}

func TestSaveWrapsDriverError(t *testing.T) {
	store, mock := newMockStore(t)

	boom := errors.New("connection refused")
	mock.ExpectQuery("INSERT INTO person").WillReturnError(boom)

	_, err := store.Save(context.Background(), types.Person{Name: "Al", Age: 5, Email: "a@b.com"})
	assert.ErrorIs(t, err, boom)
}

func TestFindByID(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, age, email FROM person WHERE id = $1")).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "email"}).
			AddRow(int64(3), "Bo", 40, "bo@example.com"))

	p, err := store.FindByID(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, types.Person{ID: 3, Name: "Bo", Age: 40, Email: "bo@example.com"}, p)
}

func TestFindByIDMissing(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, name, age, email FROM person WHERE id").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "email"}))

	_, err := store.FindByID(context.Background(), 404)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestFindAll(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name, age, email FROM person ORDER BY id")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "email"}).
			AddRow(int64(1), "Al", 5, "a@b.com").
			AddRow(int64(2), "Bo", 40, "bo@example.com"))

	people, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []types.Person{
		{ID: 1, Name: "Al", Age: 5, Email: "a@b.com"},
		{ID: 2, Name: "Bo", Age: 40, Email: "bo@example.com"},
	}, people)
}

func TestFindAllEmpty(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT id, name, age, email FROM person").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "age", "email"}))

	people, err := store.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestNewWithDBCreateTableFails(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE").WillReturnError(errors.New("permission denied"))

	_, err = NewWithDB(db)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create table")
}

func TestCreateTableColumnsFitValidation(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// Every value validation accepts must fit its column.
	mock.ExpectExec(`age\s+INTEGER\s+NOT NULL,\s+email\s+TEXT\s+NOT NULL`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err = NewWithDB(db)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestSaveLongEmail(t *testing.T) {
	store, mock := newMockStore(t)

	email := strings.Repeat("a", 64) + "@" + strings.Repeat("b", 250) + ".com"
	mock.ExpectQuery("INSERT INTO person").
		WithArgs("Al", 5, email).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	saved, err := store.Save(context.Background(), types.Person{Name: "Al", Age: 5, Email: email})
	require.NoError(t, err)
	assert.Equal(t, email, saved.Email)
}

func TestIntegration(t *testing.T) {
	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set; skipping postgres integration test")
	}

	store, err := New(&config.Config{Storage: config.Storage{Driver: config.DriverPostgres, DSN: dsn}})
	require.NoError(t, err)
	defer store.Close()

	ctx := context.Background()
	saved, err := store.Save(ctx, types.Person{Name: "Integration", Age: 30, Email: "it@example.com"})
	require.NoError(t, err)
	require.NotZero(t, saved.ID)

	got, err := store.FindByID(ctx, saved.ID)
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}
