package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/logging"
	"github.com/jmoranq/recetario/internal/models"
	"github.com/jmoranq/recetario/internal/repositories/recipes"
	"github.com/jmoranq/recetario/internal/session"
	"github.com/jmoranq/recetario/internal/storage"
)

// RecipeService handles authoring and querying recipes. The author of a new
// recipe is always the logged-in user; the legacy path tolerates a missing
// session and records the author as unknown.
type RecipeService struct {
	recipes recipes.Repository
	session *session.Manager
	log     logging.Logger
}

func NewRecipeService(db *sql.DB, log logging.Logger) *RecipeService {
	return &RecipeService{
		recipes: recipes.NewStoreRepository(db),
		session: session.NewManager(storage.NewSQLiteStore(db)),
		log:     log.With("component", "recipes"),
	}
}

func validateRecipe(r *models.Recipe) error {
	if r.Title == "" || r.Type == "" || r.Ingredients == "" || r.Instructions == "" {
		return fmt.Errorf("all recipe fields are required: %w", common.ErrValidation)
	}
	return nil
}

// Create authors a recipe as the logged-in user. The recipe lands in the
// author's own collection and the global feed; without a session it fails
// with common.ErrNotLoggedIn.
func (s *RecipeService) Create(ctx context.Context, recipe *models.Recipe) error {
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	author, err := s.session.Get(ctx)
	if err != nil {
		return err
	}
	if author == "" {
		return common.ErrNotLoggedIn
	}

	if err := s.recipes.Create(ctx, recipe, author); err != nil {
		return err
	}
	s.log.Debug(ctx, "recipe created", "id", recipe.ID, "author", author)
	return nil
}

// CreateLegacy authors a recipe through the author-agnostic path: it only
// joins the legacy global list, and a missing session is not an error (the
// author is recorded as unknown).
func (s *RecipeService) CreateLegacy(ctx context.Context, recipe *models.Recipe) error {
	if err := validateRecipe(recipe); err != nil {
		return err
	}

	author, err := s.session.Get(ctx)
	if err != nil {
		return err
	}
	if author == "" {
		author = models.AuthorUnknown
	}
	recipe.Author = author

	return s.recipes.Append(ctx, recipe)
}

// ListAll returns the full catalog: built-in samples plus everything stored.
func (s *RecipeService) ListAll(ctx context.Context) ([]models.Recipe, error) {
	return s.recipes.ListAll(ctx)
}

// ListMine returns the logged-in user's own recipes.
func (s *RecipeService) ListMine(ctx context.Context) ([]models.Recipe, error) {
	author, err := s.session.Get(ctx)
	if err != nil {
		return nil, err
	}
	if author == "" {
		return nil, common.ErrNotLoggedIn
	}
	return s.recipes.ListForAuthor(ctx, author)
}

// ListForAuthor returns the recipes of an arbitrary author.
func (s *RecipeService) ListForAuthor(ctx context.Context, email string) ([]models.Recipe, error) {
	return s.recipes.ListForAuthor(ctx, email)
}

// Search filters the full catalog; an empty query returns it unfiltered.
func (s *RecipeService) Search(ctx context.Context, query string) ([]models.Recipe, error) {
	all, err := s.recipes.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return recipes.Search(query, all), nil
}
