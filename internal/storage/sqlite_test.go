package storage

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/dbx"

	_ "modernc.org/sqlite"
)

var dbSeq int

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	dbSeq++
	dsn := fmt.Sprintf("file:kvtest%d?mode=memory&cache=shared", dbSeq)
	db, err := sql.Open("sqlite", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)
	return db
}

func TestSQLiteStore_GetMissingKey(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))

	_, err := s.Get(context.Background(), "nope")
	require.ErrorIs(t, err, common.ErrNotFound)
}

func TestSQLiteStore_SetAndGet(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "users", `[]`))

	got, err := s.Get(ctx, "users")
	require.NoError(t, err)
	require.Equal(t, `[]`, got)
}

func TestSQLiteStore_SetOverwrites(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v1"))
	require.NoError(t, s.Set(ctx, "k", "v2"))

	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v2", got)
}

func TestSQLiteStore_Delete(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "k", "v"))
	require.NoError(t, s.Delete(ctx, "k"))

	_, err := s.Get(ctx, "k")
	require.ErrorIs(t, err, common.ErrNotFound)

	// deleting an absent key is not an error
	require.NoError(t, s.Delete(ctx, "k"))
}

func TestSQLiteStore_ListAndClear(t *testing.T) {
	s := NewSQLiteStore(setupDB(t))
	ctx := context.Background()

	require.NoError(t, s.Set(ctx, "a", "1"))
	require.NoError(t, s.Set(ctx, "b", "2"))

	all, err := s.List(ctx)
	require.NoError(t, err)
	require.Equal(t, map[string]string{"a": "1", "b": "2"}, all)

	require.NoError(t, s.Clear(ctx))
	all, err = s.List(ctx)
	require.NoError(t, err)
	require.Empty(t, all)
}

func TestSQLiteStore_InsideTransaction(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()

	err := dbx.WithTx(ctx, db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		s := NewSQLiteStore(tx)
		if err := s.Set(ctx, "a", "1"); err != nil {
			return err
		}
		return s.Set(ctx, "b", "2")
	})
	require.NoError(t, err)

	s := NewSQLiteStore(db)
	got, err := s.Get(ctx, "b")
	require.NoError(t, err)
	require.Equal(t, "2", got)
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()

	db, err := InitDatabase(ctx, "file:kvmigr?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	s := NewSQLiteStore(db)
	require.NoError(t, s.Set(ctx, "k", "v"))
	got, err := s.Get(ctx, "k")
	require.NoError(t, err)
	require.Equal(t, "v", got)
}
