// Package credentials persists the client's authentication state: the access
// token, its expiry instant, and the user snapshot taken at login.
//
// The three values are stored as independent string entries under fixed keys.
// A session exists only when all three entries are present and well-formed;
// anything partial or corrupt reads back as absent, never as an error. The
// repository is the sole writer of these entries.
package credentials

import (
	"context"
	"time"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
)

// Storage keys. Mirrors the wire contract: token is the raw bearer token,
// expiresAt is stringified epoch millis, user is the JSON-serialized profile.
const (
	keyToken     = "token"
	keyExpiresAt = "expiresAt"
	keyUser      = "user"
)

type Repository interface {
	// SaveGrant persists the grant atomically, computing the expiry instant
	// as now + ExpiresIn seconds.
	SaveGrant(ctx context.Context, grant models.AuthGrant, now time.Time) error

	// LoadSession returns the stored session, or (nil, nil) when any entry
	// is missing or unparsable. A non-nil error means the store itself
	// failed; callers treat that as not authenticated.
	LoadSession(ctx context.Context) (*models.Session, error)

	// Clear removes all session entries. Idempotent.
	Clear(ctx context.Context) error
}
