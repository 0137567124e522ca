package credentials

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
	"github.com/rjawad/voiceproof-cli/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func get(ctx context.Context, db dbx.DBTX, key string) (string, bool, error) {
	var value string
	err := db.QueryRowContext(ctx, `SELECT value FROM credentials WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get credentials[%s]: %w", key, err)
	}
	return value, true, nil
}

func set(ctx context.Context, db dbx.DBTX, key, value string) error {
	_, err := db.ExecContext(ctx, `
		INSERT INTO credentials (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set credentials[%s]: %w", key, err)
	}
	return nil
}

// SaveGrant writes token, expiry instant, and user snapshot in a single
// transaction so a reader never observes a partially written session.
func (r *SQLiteRepository) SaveGrant(ctx context.Context, grant models.AuthGrant, now time.Time) error {
	userJSON, err := json.Marshal(grant.User)
	if err != nil {
		return fmt.Errorf("failed to encode user profile: %w", err)
	}

	expiresAt := now.UnixMilli() + grant.ExpiresIn*1000

	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := set(ctx, tx, keyToken, grant.AccessToken); err != nil {
			return err
		}
		if err := set(ctx, tx, keyExpiresAt, strconv.FormatInt(expiresAt, 10)); err != nil {
			return err
		}
		return set(ctx, tx, keyUser, string(userJSON))
	})
}

// LoadSession reads the three entries and reassembles the session. Missing or
// malformed entries resolve to an absent session, not an error: the caller is
// expected to fail closed, and a corrupt store must send the user to login
// rather than crash.
func (r *SQLiteRepository) LoadSession(ctx context.Context) (*models.Session, error) {
	token, ok, err := get(ctx, r.db, keyToken)
	if err != nil {
		return nil, err
	}
	if !ok || token == "" {
		return nil, nil
	}

	rawExpiry, ok, err := get(ctx, r.db, keyExpiresAt)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	expiresAt, err := strconv.ParseInt(rawExpiry, 10, 64)
	if err != nil {
		return nil, nil
	}

	rawUser, ok, err := get(ctx, r.db, keyUser)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	var user models.UserProfile
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, nil
	}

	return &models.Session{Token: token, ExpiresAt: expiresAt, User: user}, nil
}

// Clear deletes all session entries. Deleting rows that are already gone is
// a no-op, which makes repeated calls safe.
func (r *SQLiteRepository) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx,
		`DELETE FROM credentials WHERE key IN (?, ?, ?)`,
		keyToken, keyExpiresAt, keyUser)
	if err != nil {
		return fmt.Errorf("failed to clear credentials: %w", err)
	}
	return nil
}
