// Package models defines the entities persisted by Recetario: users,
// recipes, and shared-recipe inbox entries. All of them are stored as JSON
// documents inside the key-value store; no relational schema exists, so the
// repositories owning each entity enforce its invariants.
package models

// User is a registered account. Email is unique (compared case-insensitively
// at lookup time, stored as entered). Password holds a bcrypt hash, never
// the plaintext. Users are created by registration and never updated or
// deleted afterwards.
type User struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Session is the single "currently logged in" pointer, or absent. There is
// at most one per running instance; it must always reference a registered
// email.
type Session struct {
	Email string `json:"email"`
}
