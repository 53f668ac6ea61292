package services

import (
	"database/sql"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmoranq/recetario/internal/backup"
	"github.com/jmoranq/recetario/internal/logging"

	_ "modernc.org/sqlite"
)

var dbSeq int

type testEnv struct {
	db         *sql.DB
	users      *UserService
	recipes    *RecipeService
	share      *ShareService
	backupPath string
}

func setupEnv(t *testing.T) *testEnv {
	t.Helper()
	dbSeq++
	db, err := sql.Open("sqlite", fmt.Sprintf("file:svctest%d?mode=memory&cache=shared", dbSeq))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE kv (key TEXT PRIMARY KEY, value TEXT NOT NULL)`)
	require.NoError(t, err)

	log := logging.NewDefault()
	backupPath := filepath.Join(t.TempDir(), "users_backup.json")

	return &testEnv{
		db:         db,
		users:      NewUserService(db, backup.NewWriter(backupPath, log), log),
		recipes:    NewRecipeService(db, log),
		share:      NewShareService(db, log),
		backupPath: backupPath,
	}
}
