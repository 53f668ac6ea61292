// Package recipes owns the recipe indexes. The same entity set is kept
// under several denormalized keys (a legacy global list, a global feed, and
// one list per author); every write that touches more than one key runs in
// a single transaction so the indexes can never drift apart.
package recipes

import (
	"context"

	"github.com/jmoranq/recetario/internal/models"
)

type Repository interface {
	// Create stamps id/createdAt/author on the recipe and appends it to the
	// author's index and the global feed atomically.
	Create(ctx context.Context, recipe *models.Recipe, author string) error

	// Append is the legacy authoring path: the recipe goes to the
	// author-agnostic global list only. Missing id/createdAt/author are
	// stamped the same way Create stamps them.
	Append(ctx context.Context, recipe *models.Recipe) error

	// ListAll merges the built-in samples with every stored recipe. Each
	// call re-reads the store; results are never served from a cache.
	ListAll(ctx context.Context) ([]models.Recipe, error)

	// ListForAuthor reads the per-author index only.
	ListForAuthor(ctx context.Context, email string) ([]models.Recipe, error)
}
