// Package services contains the application services the front end calls
// into: account management, recipe authoring and queries, and sharing.
// Services own the invariants that span repositories; no service ever calls
// back into the presentation layer.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/jmoranq/recetario/internal/backup"
	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/repositories/users"
	"github.com/jmoranq/recetario/internal/session"
	"github.com/jmoranq/recetario/internal/storage"
)

// UserService handles registration, authentication, and the login session.
// Passwords are bcrypt-hashed before they reach the store; the plaintext is
// never persisted.
type UserService struct {
	users   users.Repository
	session *session.Manager
	backup  *backup.Writer
	log     logging.Logger
}

// NewUserService wires the user repository and session manager over db.
// backupWriter may be nil to disable snapshots.
func NewUserService(db *sql.DB, backupWriter *backup.Writer, log logging.Logger) *UserService {
	store := storage.NewSQLiteStore(db)
	return &UserService{
		users:   users.NewStoreRepository(store),
		session: session.NewManager(store),
		backup:  backupWriter,
		log:     log.With("component", "users"),
	}
}

// Register creates a new account. Duplicate emails yield
// common.ErrAlreadyRegistered; blank input yields common.ErrValidation.
// After a successful registration a best-effort snapshot of the user table
// is written; snapshot failures are logged, never returned.
func (s *UserService) Register(ctx context.Context, email string, password []byte) error {
	email = strings.TrimSpace(email)
	if email == "" || len(password) == 0 {
		return fmt.Errorf("email and password are required: %w", common.ErrValidation)
	}

	hash, err := bcrypt.GenerateFromPassword(password, bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.users.Create(ctx, &models.User{Email: email, Password: string(hash)}); err != nil {
		return err
	}

	s.writeSnapshot(ctx)
	return nil
}

func (s *UserService) writeSnapshot(ctx context.Context) {
	if s.backup == nil {
		return
	}
	all, err := s.users.List(ctx)
	if err == nil {
		err = s.backup.WriteSnapshot(ctx, all)
	}
	if err != nil {
		s.log.Warn(ctx, "users snapshot failed", "error", err)
	}
}

// Authenticate reports whether the (email, password) pair matches a
// registered account. An unknown email is false, not an error.
func (s *UserService) Authenticate(ctx context.Context, email string, password []byte) (bool, error) {
	u, err := s.users.GetByEmail(ctx, email)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), password); err != nil {
		return false, nil
	}
	return true, nil
}

// Login authenticates and, on success, records the session pointer.
func (s *UserService) Login(ctx context.Context, email string, password []byte) error {
	ok, err := s.Authenticate(ctx, email, password)
	if err != nil {
		return err
	}
	if !ok {
		return common.ErrUnauthorized
	}
	return s.session.Set(ctx, strings.TrimSpace(email))
}

// SetSession records email as logged in. The email must belong to a
// registered user; a dangling session pointer is never written.
func (s *UserService) SetSession(ctx context.Context, email string) error {
	if _, err := s.users.GetByEmail(ctx, email); err != nil {
		return err
	}
	return s.session.Set(ctx, strings.TrimSpace(email))
}

// GetSession returns the logged-in email, or "" when nobody is logged in.
func (s *UserService) GetSession(ctx context.Context) (string, error) {
	return s.session.Get(ctx)
}

// Logout clears the session pointer.
func (s *UserService) Logout(ctx context.Context) error {
	return s.session.Clear(ctx)
}

// List returns all registered users.
func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.users.List(ctx)
}

// Candidates returns the emails a recipe may be shared with: every
// registered user except the given one.
func (s *UserService) Candidates(ctx context.Context, except string) ([]string, error) {
	all, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}

	var out []string
	for _, u := range all {
		if !common.SameEmail(u.Email, except) {
			out = append(out, u.Email)
		}
	}
	return out, nil
}
