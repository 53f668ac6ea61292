package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/dbx"
	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/repositories/users"
	"github.com/jmoranq/recetario/internal/storage"
)

// sharedKey holds the whole inbox mapping (recipient email → entries) as a
// single JSON document.
const sharedKey = "sharedRecipes"

// ShareService copies recipes from their author into other users' inboxes.
// Each delivered entry is an independent copy; later changes to the original
// never reach an inbox.
type ShareService struct {
	db    *sql.DB
	users users.Repository
	log   logging.Logger
}

func NewShareService(db *sql.DB, log logging.Logger) *ShareService {
	return &ShareService{
		db:    db,
		users: users.NewStoreRepository(storage.NewSQLiteStore(db)),
		log:   log.With("component", "share"),
	}
}

func loadInboxes(ctx context.Context, store storage.Store) (map[string][]models.SharedRecipe, error) {
	raw, err := store.Get(ctx, sharedKey)
	if errors.Is(err, common.ErrNotFound) {
		return map[string][]models.SharedRecipe{}, nil
	}
	if err != nil {
		return nil, err
	}

	inboxes := map[string][]models.SharedRecipe{}
	if err := json.Unmarshal([]byte(raw), &inboxes); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", sharedKey, err)
	}
	return inboxes, nil
}

// Share delivers a copy of recipe into toEmail's inbox.
//
// The recipient must be a registered user (common.ErrRecipientNotFound
// otherwise) and must differ from fromAuthor (common.ErrSelfShare). On any
// failure the inbox document is left exactly as it was. The whole mapping is
// rewritten under one transaction, so two logically concurrent shares cannot
// lose each other's entries.
func (s *ShareService) Share(ctx context.Context, recipe models.Recipe, fromAuthor, toEmail string) error {
	if common.SameEmail(fromAuthor, toEmail) {
		return common.ErrSelfShare
	}

	if _, err := s.users.GetByEmail(ctx, toEmail); err != nil {
		if errors.Is(err, common.ErrNotFound) {
			return common.ErrRecipientNotFound
		}
		return err
	}

	recipient := common.NormalizeEmail(toEmail)
	entry := models.SharedRecipe{
		Recipe:         recipe,
		SharedAt:       time.Now().UTC(),
		OriginalAuthor: recipe.Author,
		SharedWith:     []string{recipient},
	}

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := storage.NewSQLiteStore(tx)

		inboxes, err := loadInboxes(ctx, store)
		if err != nil {
			return err
		}
		inboxes[recipient] = append(inboxes[recipient], entry)

		data, err := json.Marshal(inboxes)
		if err != nil {
			return fmt.Errorf("failed to encode %s: %w", sharedKey, err)
		}
		return store.Set(ctx, sharedKey, string(data))
	})
	if err != nil {
		return err
	}

	s.log.Debug(ctx, "recipe shared", "id", recipe.ID, "from", fromAuthor, "to", recipient)
	return nil
}

// Inbox returns the entries shared with email, oldest first.
func (s *ShareService) Inbox(ctx context.Context, email string) ([]models.SharedRecipe, error) {
	inboxes, err := loadInboxes(ctx, storage.NewSQLiteStore(s.db))
	if err != nil {
		return nil, err
	}
	return inboxes[common.NormalizeEmail(email)], nil
}
