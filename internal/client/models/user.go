// Package models defines the wire and storage schemas used by the VoiceProof
// client: the user/session types owned by the auth layer and the prediction
// payloads consumed from the detection endpoints.
package models

import "time"

// UserProfile is the immutable user snapshot returned by the auth endpoints.
// It is taken at session creation and not refreshed until the next login.
type UserProfile struct {
	ID        int64  `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	IsActive  bool   `json:"is_active"`
	CreatedAt string `json:"created_at"`
}

// DisplayName returns the full name when present, the username otherwise.
func (u UserProfile) DisplayName() string {
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// AuthGrant is the success body of POST /auth/login and /auth/register.
type AuthGrant struct {
	AccessToken string      `json:"access_token"`
	TokenType   string      `json:"token_type"`
	ExpiresIn   int64       `json:"expires_in"` // seconds
	User        UserProfile `json:"user"`
}

// Session is the locally persisted authentication state. A Session exists
// only when all three fields were stored and parsed successfully.
type Session struct {
	Token     string
	ExpiresAt int64 // epoch millis
	User      UserProfile
}

// ExpiresAtTime converts the stored expiry instant to a time.Time.
func (s Session) ExpiresAtTime() time.Time {
	return time.UnixMilli(s.ExpiresAt)
}

// RegisterRequest is the body of POST /auth/register. The confirmation
// password is checked client-side and never sent.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name,omitempty"`
}

// LoginRequest is the body of POST /auth/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
