package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/logging"
)

// fakeStore is an in-memory credentials.Repository for session tests.
type fakeStore struct {
	mu         sync.Mutex
	session    *models.Session
	loadErr    error
	clearErr   error
	clearCalls int
}

func (f *fakeStore) SaveGrant(ctx context.Context, grant models.AuthGrant, now time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = &models.Session{
		Token:     grant.AccessToken,
		ExpiresAt: now.UnixMilli() + grant.ExpiresIn*1000,
		User:      grant.User,
	}
	return nil
}

func (f *fakeStore) LoadSession(ctx context.Context) (*models.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if f.session == nil {
		return nil, nil
	}
	s := *f.session
	return &s, nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.clearCalls++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.session = nil
	return nil
}

func (f *fakeStore) setSession(s *models.Session) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.session = s
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard, slog.LevelError)
}

func newTestManager(store *fakeStore, now time.Time) *Manager {
	m := NewManager(store, testLogger())
	m.now = func() time.Time { return now }
	return m
}

var baseTime = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func sessionExpiringIn(d time.Duration) *models.Session {
	return &models.Session{
		Token:     "tok-123",
		ExpiresAt: baseTime.Add(d).UnixMilli(),
		User:      models.UserProfile{ID: 1, Username: "alice", Email: "a@b.c"},
	}
}

func TestManager_EmptyStore_FailsClosed(t *testing.T) {
	store := &fakeStore{}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	assert.False(t, m.IsAuthenticated(ctx))
	assert.True(t, m.IsExpired(ctx))
	assert.Equal(t, int64(0), m.TimeRemaining(ctx))
	assert.Equal(t, "Expired", m.FormatTimeRemaining(ctx))

	_, ok := m.Token(ctx)
	assert.False(t, ok)
}

func TestManager_ValidSession(t *testing.T) {
	store := &fakeStore{session: sessionExpiringIn(2 * time.Hour)}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	assert.True(t, m.IsAuthenticated(ctx))
	assert.False(t, m.IsExpired(ctx))
	assert.Equal(t, int64(7200), m.TimeRemaining(ctx))

	tok, ok := m.Token(ctx)
	require.True(t, ok)
	assert.Equal(t, "tok-123", tok)

	u, ok := m.User(ctx)
	require.True(t, ok)
	assert.Equal(t, "alice", u.Username)
}

func TestManager_ExpiredSession(t *testing.T) {
	// expiry one second in the past
	store := &fakeStore{session: sessionExpiringIn(-time.Second)}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	assert.False(t, m.IsAuthenticated(ctx))
	assert.True(t, m.IsExpired(ctx))
	assert.Equal(t, int64(0), m.TimeRemaining(ctx))
	assert.Equal(t, "Expired", m.FormatTimeRemaining(ctx))
}

func TestManager_ExactlyAtExpiryInstant_StillValid(t *testing.T) {
	// expiry is strict: the session dies only after the instant passes
	store := &fakeStore{session: sessionExpiringIn(0)}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	assert.False(t, m.IsExpired(ctx))
	assert.True(t, m.IsAuthenticated(ctx))
}

func TestManager_StoreFailure_FailsClosed(t *testing.T) {
	store := &fakeStore{loadErr: errors.New("disk on fire")}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	assert.False(t, m.IsAuthenticated(ctx))
	assert.True(t, m.IsExpired(ctx))
	assert.Equal(t, "Expired", m.FormatTimeRemaining(ctx))
}

func TestManager_TimeRemaining_NonIncreasingAndNeverNegative(t *testing.T) {
	store := &fakeStore{session: sessionExpiringIn(90 * time.Second)}
	m := NewManager(store, testLogger())
	ctx := context.Background()

	prev := int64(1 << 62)
	for _, offset := range []time.Duration{0, 30 * time.Second, 89 * time.Second, 91 * time.Second, time.Hour} {
		now := baseTime.Add(offset)
		m.now = func() time.Time { return now }

		got := m.TimeRemaining(ctx)
		assert.LessOrEqual(t, got, prev, "offset %v", offset)
		assert.GreaterOrEqual(t, got, int64(0), "offset %v", offset)
		prev = got
	}
}

func TestManager_FormatTimeRemaining_HourAndMinuteForms(t *testing.T) {
	tests := []struct {
		name string
		ttl  time.Duration
		want string
	}{
		{"hours and minutes", 2*time.Hour + 5*time.Minute, "2h 5m remaining"},
		{"exactly one hour", time.Hour, "1h 0m remaining"},
		{"minutes only", 35 * time.Minute, "35m remaining"},
		{"under a minute", 42 * time.Second, "0m remaining"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := &fakeStore{session: sessionExpiringIn(tc.ttl)}
			m := newTestManager(store, baseTime)
			assert.Equal(t, tc.want, m.FormatTimeRemaining(context.Background()))
		})
	}
}

func TestManager_HalfwayThroughTwoHourSession(t *testing.T) {
	// expires_in = 7200 at login time T: at T+3600s one hour remains
	store := &fakeStore{}
	require.NoError(t, store.SaveGrant(context.Background(), models.AuthGrant{
		AccessToken: "tok-123",
		ExpiresIn:   7200,
	}, baseTime))

	m := newTestManager(store, baseTime.Add(3600*time.Second))
	ctx := context.Background()

	assert.Equal(t, int64(3600), m.TimeRemaining(ctx))
	assert.Equal(t, "1h 0m remaining", m.FormatTimeRemaining(ctx))
}

func TestManager_Logout_ClearsAndNeverFails(t *testing.T) {
	store := &fakeStore{session: sessionExpiringIn(time.Hour)}
	m := newTestManager(store, baseTime)
	ctx := context.Background()

	m.Logout(ctx)
	assert.Equal(t, 1, store.clearCalls)
	assert.False(t, m.IsAuthenticated(ctx))

	// a failing store must not panic or surface the error
	store.clearErr = errors.New("locked")
	assert.NotPanics(t, func() { m.Logout(ctx) })
	assert.Equal(t, 2, store.clearCalls)
}
