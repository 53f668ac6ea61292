package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoranq/recetario/internal/common"
	"github.com/jmoranq/recetario/internal/models"
)

func (a *App) readRecipeDetails(ctx context.Context) (*models.Recipe, error) {
	title, err := GetSimpleText(a.reader, "Recipe name", a.out)
	if err != nil {
		return nil, err
	}

	prompt := fmt.Sprintf("Type (%s, %s, %s, %s, %s)",
		models.TypeStarter, models.TypeMainCourse, models.TypeDessert, models.TypeDrink, models.TypeSalad)
	rtype, err := GetSimpleText(a.reader, prompt, a.out)
	if err != nil {
		return nil, err
	}

	ingredients, err := GetMultiline(a.reader, "Ingredients:", a.out)
	if err != nil {
		return nil, err
	}

	instructions, err := GetMultiline(a.reader, "Instructions:", a.out)
	if err != nil {
		return nil, err
	}

	return &models.Recipe{
		Title:        title,
		Type:         rtype,
		Ingredients:  ingredients,
		Instructions: instructions,
	}, nil
}

func (a *App) addRecipe(ctx context.Context, save func(context.Context, *models.Recipe) error) error {
	recipe, err := a.readRecipeDetails(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := save(ctx, recipe); err != nil {
		switch {
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintln(a.out, "All fields are required.")
		case errors.Is(err, common.ErrNotLoggedIn):
			fmt.Fprintln(a.out, "Log in first.")
		default:
			fmt.Fprintln(a.out, "Could not save the recipe:", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Recipe saved:", recipe.Title)
	return nil
}

// AddRecipe authors a recipe as the logged-in user.
func (a *App) AddRecipe(ctx context.Context) error {
	return a.addRecipe(ctx, a.recipes.Create)
}

// QuickAdd authors a recipe through the legacy path, which tolerates a
// missing session.
func (a *App) QuickAdd(ctx context.Context) error {
	return a.addRecipe(ctx, a.recipes.CreateLegacy)
}
