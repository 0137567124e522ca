// Package session owns the client-side session lifecycle: deciding whether a
// stored session is valid right now, computing time remaining, tearing the
// session down, and the background expiry watchdog.
//
// Every read goes back to the credential store, so a clear performed by the
// watchdog or by a 401 response is visible to the very next call. All
// ambiguous states (missing entries, corrupt data, store failures) resolve to
// "not authenticated".
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/client/repositories/credentials"
	"github.com/rjawad/voiceproof-cli/internal/logging"
)

type Manager struct {
	store credentials.Repository
	log   logging.Logger
	now   func() time.Time
}

func NewManager(store credentials.Repository, log logging.Logger) *Manager {
	return &Manager{store: store, log: log, now: time.Now}
}

// current loads the session, folding store failures into absence.
func (m *Manager) current(ctx context.Context) *models.Session {
	s, err := m.store.LoadSession(ctx)
	if err != nil {
		m.log.Warn(ctx, "credential store read failed, treating as unauthenticated", "error", err)
		return nil
	}
	return s
}

// IsExpired reports whether the stored session has passed its expiry instant.
// A missing session counts as expired.
func (m *Manager) IsExpired(ctx context.Context) bool {
	s := m.current(ctx)
	if s == nil {
		return true
	}
	return m.now().UnixMilli() > s.ExpiresAt
}

// IsAuthenticated reports whether a token exists and has not expired.
func (m *Manager) IsAuthenticated(ctx context.Context) bool {
	s := m.current(ctx)
	if s == nil || s.Token == "" {
		return false
	}
	return m.now().UnixMilli() <= s.ExpiresAt
}

// Token returns the bearer token of the current valid session.
func (m *Manager) Token(ctx context.Context) (string, bool) {
	s := m.current(ctx)
	if s == nil || s.Token == "" || m.now().UnixMilli() > s.ExpiresAt {
		return "", false
	}
	return s.Token, true
}

// User returns the user snapshot stored at login.
func (m *Manager) User(ctx context.Context) (models.UserProfile, bool) {
	s := m.current(ctx)
	if s == nil {
		return models.UserProfile{}, false
	}
	return s.User, true
}

// TimeRemaining returns whole seconds until expiry, never negative.
func (m *Manager) TimeRemaining(ctx context.Context) int64 {
	s := m.current(ctx)
	if s == nil {
		return 0
	}
	remaining := (s.ExpiresAt - m.now().UnixMilli()) / 1000
	if remaining < 0 {
		return 0
	}
	return remaining
}

// FormatTimeRemaining renders the remaining lifetime for display:
// "2h 5m remaining", "35m remaining", or "Expired".
func (m *Manager) FormatTimeRemaining(ctx context.Context) string {
	seconds := m.TimeRemaining(ctx)
	if seconds <= 0 {
		return "Expired"
	}

	hours := seconds / 3600
	minutes := (seconds % 3600) / 60

	if hours > 0 {
		return fmt.Sprintf("%dh %dm remaining", hours, minutes)
	}
	return fmt.Sprintf("%dm remaining", minutes)
}

// Logout tears the session down. Safe to call from any state; a store
// failure is logged, never propagated, so callers can always reach the
// login surface.
func (m *Manager) Logout(ctx context.Context) {
	if err := m.store.Clear(ctx); err != nil {
		m.log.Error(ctx, "failed to clear credentials on logout", "error", err)
	}
}
