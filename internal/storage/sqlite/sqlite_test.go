package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aanand-mishra/people-api/internal/config"
	"github.com/aanand-mishra/people-api/internal/storage"
	"github.com/aanand-mishra/people-api/internal/types"
)

func newTestDB(t *testing.T) *SQLite {
	t.Helper()

	cfg := &config.Config{
		Storage: config.Storage{
			Driver: config.DriverSQLite,
			DSN:    filepath.Join(t.TempDir(), "people.db"),
		},
	}

	db, err := New(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestFindAllEmpty(t *testing.T) {
	db := newTestDB(t)

	people, err := db.FindAll(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, people)
	assert.Empty(t, people)
}

func TestSaveAssignsIncreasingIDs(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	first, err := db.Save(ctx, types.Person{Name: "Al", Age: 5, Email: "a@b.com"})
	require.NoError(t, err)
	second, err := db.Save(ctx, types.Person{ID: 99, Name: "Bo", Age: 7, Email: "b@c.com"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID, "caller-provided id must be ignored")

	got, err := db.FindByID(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, types.Person{ID: 2, Name: "Bo", Age: 7, Email: "b@c.com"}, got)

	all, err := db.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []types.Person{first, second}, all)
}

func TestFindByIDMissing(t *testing.T) {
	db := newTestDB(t)

	_, err := db.FindByID(context.Background(), 42)
	assert.ErrorIs(t, err, storage.ErrNotFound)
}

func TestNewReopensExistingFile(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "people.db")
	cfg := &config.Config{Storage: config.Storage{Driver: config.DriverSQLite, DSN: dsn}}

	db, err := New(cfg)
	require.NoError(t, err)
	_, err = db.Save(context.Background(), types.Person{Name: "Al", Age: 1, Email: "a@b.com"})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := New(cfg)
	require.NoError(t, err)
	defer reopened.Close()

	all, err := reopened.FindAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
