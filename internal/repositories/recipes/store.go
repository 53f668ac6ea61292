package recipes

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/dbx"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/storage"
)

const (
	// legacyKey holds recipes created via the author-agnostic path.
	legacyKey = "userRecipes"
	// allKey is the global feed of every recipe created via the keyed path.
	allKey = "allRecipes"
)

// authorKey returns the per-author index key. The email portion is
// normalized so differently-cased logins share one index.
func authorKey(email string) string {
	return "userRecipes_" + common.NormalizeEmail(email)
}

// StoreRepository implements Repository over the key-value store. It holds
// the database handle so multi-key writes can run inside one transaction.
type StoreRepository struct {
	db *sql.DB
}

func NewStoreRepository(db *sql.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

func loadList(ctx context.Context, store storage.Store, key string) ([]models.Recipe, error) {
	raw, err := store.Get(ctx, key)
	if errors.Is(err, common.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var list []models.Recipe
	if err := json.Unmarshal([]byte(raw), &list); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return list, nil
}

func appendTo(ctx context.Context, store storage.Store, key string, recipe models.Recipe) error {
	list, err := loadList(ctx, store, key)
	if err != nil {
		return err
	}

	list = append(list, recipe)
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return store.Set(ctx, key, string(data))
}

func (r *StoreRepository) stamp(recipe *models.Recipe) {
	if recipe.ID == "" {
		recipe.ID = uuid.NewString()
	}
	if recipe.CreatedAt.IsZero() {
		recipe.CreatedAt = time.Now().UTC()
	}
	if recipe.Author == "" {
		recipe.Author = models.AuthorUnknown
	}
}

func (r *StoreRepository) Create(ctx context.Context, recipe *models.Recipe, author string) error {
	recipe.Author = author
	r.stamp(recipe)

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		store := storage.NewSQLiteStore(tx)
		if err := appendTo(ctx, store, authorKey(author), *recipe); err != nil {
			return err
		}
		return appendTo(ctx, store, allKey, *recipe)
	})
}

func (r *StoreRepository) Append(ctx context.Context, recipe *models.Recipe) error {
	r.stamp(recipe)
	return appendTo(ctx, storage.NewSQLiteStore(r.db), legacyKey, *recipe)
}

func (r *StoreRepository) ListAll(ctx context.Context) ([]models.Recipe, error) {
	store := storage.NewSQLiteStore(r.db)

	all, err := loadList(ctx, store, allKey)
	if err != nil {
		return nil, err
	}
	legacy, err := loadList(ctx, store, legacyKey)
	if err != nil {
		return nil, err
	}

	merged := make([]models.Recipe, 0, len(seedRecipes)+len(all)+len(legacy))
	merged = append(merged, seedRecipes...)
	merged = append(merged, all...)
	merged = append(merged, legacy...)
	return merged, nil
}

func (r *StoreRepository) ListForAuthor(ctx context.Context, email string) ([]models.Recipe, error) {
	return loadList(ctx, storage.NewSQLiteStore(r.db), authorKey(email))
}
