package cli

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/jmoranq/recetario/internal/common"
)

// Register prompts for credentials and creates an account. A duplicate
// email is reported as user-correctable input, not as a failure.
func (a *App) Register(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.users.Register(ctx, email, password); err != nil {
		switch {
		case errors.Is(err, common.ErrAlreadyRegistered):
			fmt.Fprintln(a.out, "That email is already registered.")
		case errors.Is(err, common.ErrValidation):
			fmt.Fprintln(a.out, "Email and password are required.")
		default:
			fmt.Fprintln(a.out, "Could not save the account, please try again:", err)
		}
		return err
	}

	fmt.Fprintln(a.out, "Registered! You can now log in.")
	return nil
}

// Login prompts for credentials and starts a session.
func (a *App) Login(ctx context.Context) error {
	email, err := GetSimpleText(a.reader, "Enter email", a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}

	password, err := GetPassword(a.out)
	if err != nil {
		log.Printf("error: %v", err)
		return err
	}
	defer common.WipeByteArray(password)

	if err := a.users.Login(ctx, email, password); err != nil {
		if errors.Is(err, common.ErrUnauthorized) {
			fmt.Fprintln(a.out, "Wrong email or password.")
		} else {
			fmt.Fprintln(a.out, "Login failed:", err)
		}
		return err
	}

	a.userEmail = email
	fmt.Fprintln(a.out, "Welcome,", email)
	return nil
}

// Logout ends the session.
func (a *App) Logout(ctx context.Context) error {
	if err := a.users.Logout(ctx); err != nil {
		fmt.Fprintln(a.out, "Logout failed:", err)
		return err
	}
	a.userEmail = ""
	fmt.Fprintln(a.out, "Logged out.")
	return nil
}
