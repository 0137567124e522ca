package client

import (
	"context"
	"io"

	"github.com/rjawad/voiceproof-cli/internal/client/models"
)

// Client is the API contract against the VoiceProof backend. Login and
// Register are tokenless; every other call carries the current bearer token
// and may fail with ErrAuthRequired, ErrReloginRequired, ErrUnavailable, or
// an *APIError.
type Client interface {
	Close() error
	Login(ctx context.Context, username, password string) (*models.AuthGrant, error)
	Register(ctx context.Context, req models.RegisterRequest) (*models.AuthGrant, error)
	Predict(ctx context.Context, filename string, audio io.Reader) (*models.PredictionResult, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
	Stats(ctx context.Context) (*models.UserStats, error)
}
