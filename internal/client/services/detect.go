package services

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rjawad/voiceproof-cli/internal/client/client"
	"github.com/rjawad/voiceproof-cli/internal/client/models"
)

// DetectionService runs audio files through the remote detector and fetches
// the caller's stored results. The prediction payloads are opaque to the
// client; they are decoded and handed to the presentation layer as-is.
type DetectionService interface {
	Analyze(ctx context.Context, path string) (*models.PredictionResult, error)
	History(ctx context.Context) ([]models.HistoryEntry, error)
	Stats(ctx context.Context) (*models.UserStats, error)
}

type detectionService struct {
	client client.Client
}

func NewDetectionService(apiClient client.Client) DetectionService {
	return &detectionService{client: apiClient}
}

// Analyze streams the file at path to POST /predict and returns the
// multi-model verdict.
func (d *detectionService) Analyze(ctx context.Context, path string) (*models.PredictionResult, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open audio file: %w", err)
	}
	defer f.Close()

	return d.client.Predict(ctx, filepath.Base(path), f)
}

func (d *detectionService) History(ctx context.Context) ([]models.HistoryEntry, error) {
	return d.client.History(ctx)
}

func (d *detectionService) Stats(ctx context.Context) (*models.UserStats, error) {
	return d.client.Stats(ctx)
}
