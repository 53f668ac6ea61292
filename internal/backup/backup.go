// Package backup writes a secondary, independently readable snapshot of the
// user table to a plain file. The snapshot is best effort: it is refreshed
// after every successful registration, failures are logged and otherwise
// ignored, and no functional path reads it back. It exists so the user table
// can be inspected or recovered without going through the database.
package backup

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/models"
)

// Writer persists user-table snapshots at a fixed path, overwriting any
// prior snapshot.
type Writer struct {
	path string
	log  logging.Logger
}

func NewWriter(path string, log logging.Logger) *Writer {
	return &Writer{path: path, log: log.With("component", "backup")}
}

// WriteSnapshot dumps the entire user table as indented JSON. The previous
// snapshot is replaced wholesale; there is no append mode.
func (w *Writer) WriteSnapshot(ctx context.Context, users []models.User) error {
	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal users snapshot: %w", err)
	}

	if err := os.WriteFile(w.path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", w.path, err)
	}

	w.log.Debug(ctx, "users snapshot written", "path", w.path, "count", len(users))
	return nil
}

// ReadSnapshot returns the raw snapshot content. Diagnostics only; callers
// must not base functional decisions on it.
func (w *Writer) ReadSnapshot() (string, error) {
	data, err := os.ReadFile(w.path)
	if err != nil {
		return "", fmt.Errorf("failed to read snapshot %s: %w", w.path, err)
	}
	return string(data), nil
}
