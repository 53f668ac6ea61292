package cli

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"github.com/jmoranq/recetario/internal/common"
)

// ShareRecipe lets the logged-in user pick one of their own recipes and a
// recipient, then delivers a copy into the recipient's inbox. The current
// user is never offered as a recipient.
func (a *App) ShareRecipe(ctx context.Context) error {
	mine, err := a.recipes.ListMine(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(mine) == 0 {
		fmt.Fprintln(a.out, "You have no recipes to share yet.")
		return nil
	}
	a.printRecipes(mine)

	pick, err := GetSimpleText(a.reader, "Recipe number to share", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	n, err := strconv.Atoi(pick)
	if err != nil || n < 1 || n > len(mine) {
		fmt.Fprintln(a.out, "Invalid recipe number.")
		return nil
	}
	recipe := mine[n-1]

	candidates, err := a.users.Candidates(ctx, a.userEmail)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	if len(candidates) == 0 {
		fmt.Fprintln(a.out, "Nobody else is registered on this device.")
		return nil
	}
	fmt.Fprintln(a.out, "Share with:", strings.Join(candidates, ", "))

	to, err := GetSimpleText(a.reader, "Recipient email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if err := a.share.Share(ctx, recipe, a.userEmail, to); err != nil {
		switch {
		case errors.Is(err, common.ErrRecipientNotFound):
			fmt.Fprintln(a.out, "No such user:", to)
		case errors.Is(err, common.ErrSelfShare):
			fmt.Fprintln(a.out, "You already have that recipe.")
		default:
			fmt.Fprintln(a.out, "Could not share the recipe:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "Shared %q with %s\n", recipe.Title, to)
	return nil
}
