// Package common defines shared constants and sentinel errors used across
// Recetario components. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrNotFound = errors.New("not found")

	// Input validation errors (user-correctable).
	ErrValidation = errors.New("validation error")

	// Registration / authentication errors.
	ErrAlreadyRegistered = errors.New("email already registered")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrNotLoggedIn       = errors.New("not logged in")

	// Sharing errors.
	ErrRecipientNotFound = errors.New("recipient not found")
	ErrSelfShare         = errors.New("cannot share a recipe with yourself")
)
