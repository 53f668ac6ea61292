package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/storage"
)

// usersKey is the single document holding the whole user table as a JSON
// array, in registration order.
const usersKey = "users"

// StoreRepository implements Repository over the key-value store.
type StoreRepository struct {
	store storage.Store
}

func NewStoreRepository(store storage.Store) *StoreRepository {
	return &StoreRepository{store: store}
}

func (r *StoreRepository) load(ctx context.Context) ([]models.User, error) {
	raw, err := r.store.Get(ctx, usersKey)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var users []models.User
	if err := json.Unmarshal([]byte(raw), &users); err != nil {
		return nil, fmt.Errorf("failed to decode users: %w", err)
	}
	return users, nil
}

// Create scans the current table for a duplicate email, then persists the
// fully rebuilt array in a single write. A failed write leaves the stored
// table untouched.
func (r *StoreRepository) Create(ctx context.Context, user *models.User) error {
	existing, err := r.load(ctx)
	if err != nil {
		return err
	}

	for _, u := range existing {
		if common.SameEmail(u.Email, user.Email) {
			return common.ErrAlreadyRegistered
		}
	}

	updated := append(existing, *user)
	data, err := json.Marshal(updated)
	if err != nil {
		return fmt.Errorf("failed to encode users: %w", err)
	}

	return r.store.Set(ctx, usersKey, string(data))
}

func (r *StoreRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	all, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, u := range all {
		if common.SameEmail(u.Email, email) {
			found := u
			return &found, nil
		}
	}
	return nil, common.ErrNotFound
}

func (r *StoreRepository) List(ctx context.Context) ([]models.User, error) {
	return r.load(ctx)
}
