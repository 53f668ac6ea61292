package models

import "time"

// AuthorUnknown is recorded when a recipe is authored without a logged-in
// user (the legacy authoring path allows it).
const AuthorUnknown = "Unknown"

// Recipe categories. Free-form strings are accepted by the store; these are
// the values the authoring surface offers.
const (
	TypeStarter    = "entrada"
	TypeMainCourse = "plato_principal"
	TypeDessert    = "postre"
	TypeDrink      = "bebida"
	TypeSalad      = "ensalada"
)

// Recipe is an authored recipe. ID and CreatedAt are stamped at creation;
// the value is immutable afterwards and identity is by ID.
type Recipe struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Author       string    `json:"author"`
	Ingredients  string    `json:"ingredients"`
	Instructions string    `json:"instructions"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SharedRecipe is a recipe copied into a recipient's inbox. It is a copy,
// not a reference: mutating or re-sharing the original never touches
// entries already delivered. SharedWith always holds exactly one recipient.
type SharedRecipe struct {
	Recipe
	SharedAt       time.Time `json:"sharedAt"`
	OriginalAuthor string    `json:"originalAuthor"`
	SharedWith     []string  `json:"sharedWith"`
}
