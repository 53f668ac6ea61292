// Package users owns the registered-user table. It guards the uniqueness
// invariant: no two records may share an email, compared case-insensitively,
// regardless of the casing stored.
package users

import (
	"context"

	"github.com/jmoranq/recetario/internal/models"
)

type Repository interface {
	// Create appends a new user. Returns common.ErrAlreadyRegistered when
	// the email is already taken.
	Create(ctx context.Context, user *models.User) error

	// GetByEmail returns the user whose email matches after normalization,
	// or common.ErrNotFound.
	GetByEmail(ctx context.Context, email string) (*models.User, error)

	// List returns all registered users in registration order.
	List(ctx context.Context) ([]models.User, error)
}
