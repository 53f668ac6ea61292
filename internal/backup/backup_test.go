package backup

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/models"
)

func TestWriteSnapshot_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_backup.json")
	w := NewWriter(path, logging.NewDefault())
	ctx := context.Background()

	users := []models.User{
		{Email: "a@x.com", Password: "$2a$10$hash1"},
		{Email: "b@x.com", Password: "$2a$10$hash2"},
	}
	require.NoError(t, w.WriteSnapshot(ctx, users))

	raw, err := w.ReadSnapshot()
	require.NoError(t, err)

	var got []models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Equal(t, users, got)
}

func TestWriteSnapshot_Overwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "users_backup.json")
	w := NewWriter(path, logging.NewDefault())
	ctx := context.Background()

	require.NoError(t, w.WriteSnapshot(ctx, []models.User{{Email: "a@x.com"}}))
	require.NoError(t, w.WriteSnapshot(ctx, []models.User{{Email: "a@x.com"}, {Email: "b@x.com"}}))

	raw, err := w.ReadSnapshot()
	require.NoError(t, err)

	var got []models.User
	require.NoError(t, json.Unmarshal([]byte(raw), &got))
	require.Len(t, got, 2)
}

func TestReadSnapshot_Missing(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "absent.json"), logging.NewDefault())
	_, err := w.ReadSnapshot()
	require.Error(t, err)
}

func TestWriteSnapshot_BadPath(t *testing.T) {
	w := NewWriter(filepath.Join(t.TempDir(), "no", "such", "dir", "x.json"), logging.NewDefault())
	err := w.WriteSnapshot(context.Background(), nil)
	require.Error(t, err)
}
