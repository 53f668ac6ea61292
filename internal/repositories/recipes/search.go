package recipes

import (
	"strings"

	"github.com/jmoranq/recetario/internal/models"
)

// Search filters corpus by a case-insensitive substring match against the
// title and, where present, the author. An empty or whitespace-only query
// returns the corpus unchanged: this is a display filter, not a security
// boundary, so nothing is ever hidden behind it.
func Search(query string, corpus []models.Recipe) []models.Recipe {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return corpus
	}

	var result []models.Recipe
	for _, r := range corpus {
		if strings.Contains(strings.ToLower(r.Title), q) {
			result = append(result, r)
			continue
		}
		if r.Author != "" && strings.Contains(strings.ToLower(r.Author), q) {
			result = append(result, r)
		}
	}
	return result
}
