// Package services contains the application services of the VoiceProof CLI:
// the auth endpoints adapter and the detection service. Services translate
// user-level operations into API calls and keep the credential store in sync
// with the results.
package services

import (
	"context"
	"errors"
	"time"
	"unicode"

	"github.com/rjawad/voiceproof-cli/internal/client/client"
	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/client/repositories/credentials"
	"github.com/rjawad/voiceproof-cli/internal/client/session"
)

// Password policy violations. Pre-flight checks only: the server remains the
// authority on whether a registration is accepted.
var (
	ErrPasswordsDoNotMatch = errors.New("passwords do not match")
	ErrPasswordTooShort    = errors.New("password must be at least 8 characters long")
	ErrPasswordNoUpper     = errors.New("password must contain at least one uppercase letter")
	ErrPasswordNoLower     = errors.New("password must contain at least one lowercase letter")
	ErrPasswordNoDigit     = errors.New("password must contain at least one number")
)

// RegisterInput collects the signup form fields. ConfirmPassword is checked
// locally and never leaves the client.
type RegisterInput struct {
	Username        string
	Email           string
	FullName        string
	Password        string
	ConfirmPassword string
}

// AuthService adapts login/register submissions to the remote auth endpoints
// and persists the returned session.
type AuthService interface {
	Login(ctx context.Context, username, password string) (models.UserProfile, error)
	Register(ctx context.Context, input RegisterInput) (models.UserProfile, error)
	Logout(ctx context.Context)
}

type authService struct {
	client  client.Client
	store   credentials.Repository
	session *session.Manager
	now     func() time.Time
}

func NewAuthService(apiClient client.Client, store credentials.Repository, sess *session.Manager) AuthService {
	return &authService{client: apiClient, store: store, session: sess, now: time.Now}
}

// Login authenticates against POST /auth/login and saves the grant. The
// error, when remote, carries the server's detail message verbatim.
func (a *authService) Login(ctx context.Context, username, password string) (models.UserProfile, error) {
	grant, err := a.client.Login(ctx, username, password)
	if err != nil {
		return models.UserProfile{}, err
	}

	if err := a.store.SaveGrant(ctx, *grant, a.now()); err != nil {
		return models.UserProfile{}, err
	}
	return grant.User, nil
}

// Register validates the password policy locally, then creates the account
// via POST /auth/register. The service logs the new user in: the endpoint
// returns the same grant shape as login and it is persisted the same way.
func (a *authService) Register(ctx context.Context, input RegisterInput) (models.UserProfile, error) {
	if err := ValidatePassword(input.Password, input.ConfirmPassword); err != nil {
		return models.UserProfile{}, err
	}

	grant, err := a.client.Register(ctx, models.RegisterRequest{
		Username: input.Username,
		Email:    input.Email,
		Password: input.Password,
		FullName: input.FullName,
	})
	if err != nil {
		return models.UserProfile{}, err
	}

	if err := a.store.SaveGrant(ctx, *grant, a.now()); err != nil {
		return models.UserProfile{}, err
	}
	return grant.User, nil
}

func (a *authService) Logout(ctx context.Context) {
	a.session.Logout(ctx)
}

// ValidatePassword enforces the client-side password policy: confirmation
// match, minimum length 8, and at least one uppercase letter, one lowercase
// letter, and one digit. Each violation has its own message so the form can
// tell the user exactly what to fix.
func ValidatePassword(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordsDoNotMatch
	}
	if len(password) < 8 {
		return ErrPasswordTooShort
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		}
	}

	if !hasUpper {
		return ErrPasswordNoUpper
	}
	if !hasLower {
		return ErrPasswordNoLower
	}
	if !hasDigit {
		return ErrPasswordNoDigit
	}
	return nil
}
