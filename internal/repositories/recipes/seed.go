package recipes

import "github.com/jmoranq/recetario/internal/models"

// seedRecipes are the built-in samples every catalog starts with. They are
// not persisted; ListAll prepends them to whatever the store holds.
var seedRecipes = []models.Recipe{
	{
		ID:           "1",
		Title:        "Pasta Carbonara",
		Type:         models.TypeMainCourse,
		Ingredients:  "Spaghetti, huevos, panceta, queso parmesano",
		Instructions: "1. Cocinar la pasta...",
	},
	{
		ID:           "2",
		Title:        "Tiramisú",
		Type:         models.TypeDessert,
		Ingredients:  "Queso mascarpone, huevos, café, bizcochos",
		Instructions: "1. Preparar el café...",
	},
}
