package cli

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoranq/recetario/internal/models"
)

func (a *App) printRecipes(list []models.Recipe) {
	if len(list) == 0 {
		fmt.Fprintln(a.out, "No recipes found.")
		return
	}
	for i, r := range list {
		author := r.Author
		if author == "" {
			author = models.AuthorUnknown
		}
		fmt.Fprintf(a.out, "%d. %s [%s] by %s\n", i+1, r.Title, r.Type, author)
	}
}

// ListCatalog prints the full catalog, samples included.
func (a *App) ListCatalog(ctx context.Context) error {
	list, err := a.recipes.ListAll(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.printRecipes(list)
	return nil
}

// ListMine prints the logged-in user's own recipes.
func (a *App) ListMine(ctx context.Context) error {
	list, err := a.recipes.ListMine(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.printRecipes(list)
	return nil
}

// ListInbox prints the recipes other users shared with the logged-in user.
func (a *App) ListInbox(ctx context.Context) error {
	inbox, err := a.share.Inbox(ctx, a.userEmail)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(inbox) == 0 {
		fmt.Fprintln(a.out, "Nothing has been shared with you yet.")
		return nil
	}
	for i, e := range inbox {
		fmt.Fprintf(a.out, "%d. %s [%s] from %s on %s\n",
			i+1, e.Title, e.Type, e.OriginalAuthor, e.SharedAt.Format("2006-01-02"))
	}
	return nil
}

// ListUsers prints the emails of every registered account.
func (a *App) ListUsers(ctx context.Context) error {
	all, err := a.users.List(ctx)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	if len(all) == 0 {
		fmt.Fprintln(a.out, "No accounts registered yet.")
		return nil
	}
	for _, u := range all {
		fmt.Fprintln(a.out, "-", u.Email)
	}
	return nil
}

// SearchCatalog prompts for a query and prints the matches. An empty query
// lists everything.
func (a *App) SearchCatalog(ctx context.Context) error {
	query, err := GetSimpleText(a.reader, "Search for", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	list, err := a.recipes.Search(ctx, query)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	a.printRecipes(list)
	return nil
}
