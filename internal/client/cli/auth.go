package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/rjawad/voiceproof-cli/internal/client/services"
)

// getSimpleText and getPassword are indirections used to facilitate testing.
var getSimpleText = GetSimpleText
var getPassword = GetPassword

// Login prompts for credentials, authenticates against the backend, and on
// success starts the session (including the expiry watchdog).
func (a *App) Login(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	user, err := a.auth.Login(ctx, username, string(password))
	if err != nil {
		a.renderError(ctx, err)
		return err
	}

	a.beginSession(ctx, user)
	fmt.Printf("Logged in as %s (%s)\n", user.DisplayName(), a.session.FormatTimeRemaining(ctx))
	return nil
}

// Register prompts for the signup fields and creates an account. Password
// policy violations are reported before anything is sent to the server. A
// successful signup logs the user in, as the backend returns a session grant.
func (a *App) Register(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Username", os.Stdout)
	if err != nil {
		return err
	}
	email, err := getSimpleText(a.reader, "Email", os.Stdout)
	if err != nil {
		return err
	}
	fullName, err := getSimpleText(a.reader, "Full name (optional)", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(password)

	confirmation, err := getPassword("Confirm password", os.Stdout)
	if err != nil {
		return err
	}
	defer wipeBytes(confirmation)

	user, err := a.auth.Register(ctx, services.RegisterInput{
		Username:        username,
		Email:           email,
		FullName:        fullName,
		Password:        string(password),
		ConfirmPassword: string(confirmation),
	})
	if err != nil {
		a.renderError(ctx, err)
		return err
	}

	a.beginSession(ctx, user)
	fmt.Printf("Account created. Logged in as %s.\n", user.DisplayName())
	return nil
}

// Logout clears the stored credentials and ends the in-memory session.
func (a *App) Logout(ctx context.Context) error {
	a.auth.Logout(ctx)
	a.endSession()
	fmt.Println("Logged out.")
	return nil
}
