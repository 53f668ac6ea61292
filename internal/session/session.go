// Package session manages the single "currently logged in" pointer. The
// pointer is explicit state carried by a Manager instance rather than a
// package-level variable, so independent Managers (e.g. in tests) never
// share login state.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/storage"
)

const sessionKey = "loggedInUser"

// Manager persists the session pointer in the key-value store. Callers are
// responsible for only setting emails that exist in the user table; the
// user service enforces that before delegating here.
type Manager struct {
	store storage.Store
}

func NewManager(store storage.Store) *Manager {
	return &Manager{store: store}
}

// Set records email as the logged-in user, replacing any previous session.
func (m *Manager) Set(ctx context.Context, email string) error {
	data, err := json.Marshal(models.Session{Email: email})
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}
	return m.store.Set(ctx, sessionKey, string(data))
}

// Get returns the logged-in email, or "" when nobody is logged in.
func (m *Manager) Get(ctx context.Context) (string, error) {
	raw, err := m.store.Get(ctx, sessionKey)
	if errors.Is(err, common.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var s models.Session
	if err := json.Unmarshal([]byte(raw), &s); err != nil {
		return "", fmt.Errorf("failed to decode session: %w", err)
	}
	return s.Email, nil
}

// Clear removes the session pointer (logout).
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Delete(ctx, sessionKey)
}
