package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/rjawad/voiceproof-cli/internal/client/client"
	"github.com/rjawad/voiceproof-cli/internal/client/models"
)

// Analyze uploads the audio file at path and renders the multi-model verdict.
func (a *App) Analyze(ctx context.Context, path string) error {
	fmt.Printf("Uploading %s ...\n", path)

	result, err := a.detect.Analyze(ctx, path)
	if err != nil {
		a.renderError(ctx, err)
		return err
	}

	printResult(result)
	return nil
}

func printResult(r *models.PredictionResult) {
	fmt.Printf("\n%s\n", r.Filename)
	fmt.Printf("  Verdict:    %s (%.1f%% confidence, %s)\n", r.FinalPrediction, r.FinalConfidence, r.ConfidenceLevel)
	fmt.Printf("  Duration:   %.1fs in %d chunk(s)\n", r.DurationSeconds, r.NumChunks)

	fmt.Println("  Models:")
	printModel("random forest", r.Predictions.RandomForest)
	printModel("cnn", r.Predictions.CNN)
	printModel("ensemble", r.Predictions.Ensemble)

	if r.ModelsAgree {
		fmt.Println("  All models agree.")
	} else {
		fmt.Println("  Models disagree; treat the verdict with caution.")
	}
}

func printModel(name string, p models.ModelPrediction) {
	fmt.Printf("    %-14s %s (%.1f%%)\n", name, p.Prediction, p.Confidence)
}

// History lists the user's previously analyzed files.
func (a *App) History(ctx context.Context) error {
	entries, err := a.detect.History(ctx)
	if err != nil {
		a.renderError(ctx, err)
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No predictions yet.")
		return nil
	}

	for _, e := range entries {
		agreement := "models agree"
		if !e.ModelsAgree {
			agreement = "models disagree"
		}
		fmt.Printf("%6d  %-30s %-8s %5.1f%%  %s  %s\n",
			e.ID, e.Filename, e.FinalPrediction, e.FinalConfidence, agreement, e.CreatedAt)
	}
	return nil
}

// Stats prints the user's aggregate detection counters.
func (a *App) Stats(ctx context.Context) error {
	stats, err := a.detect.Stats(ctx)
	if err != nil {
		a.renderError(ctx, err)
		return err
	}

	fmt.Printf("Total predictions: %d\n", stats.TotalPredictions)
	fmt.Printf("  Bonafide: %d (%.1f%%)\n", stats.BonafideCount, stats.BonafidePercentage)
	fmt.Printf("  Spoof:    %d (%.1f%%)\n", stats.SpoofCount, stats.SpoofPercentage)
	fmt.Printf("  Average confidence: %.1f%%\n", stats.AverageConfidence)
	return nil
}

// Status shows the current session state.
func (a *App) Status(ctx context.Context) error {
	if !a.session.IsAuthenticated(ctx) {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("Session: %s\n", a.session.FormatTimeRemaining(ctx))
	return nil
}

// WhoAmI shows the profile snapshot stored at login.
func (a *App) WhoAmI(ctx context.Context) error {
	u, ok := a.session.User(ctx)
	if !ok {
		fmt.Println("Not logged in.")
		return nil
	}
	fmt.Printf("Username: %s\n", u.Username)
	fmt.Printf("Email:    %s\n", u.Email)
	if u.FullName != "" {
		fmt.Printf("Name:     %s\n", u.FullName)
	}
	fmt.Printf("Active:   %v\n", u.IsActive)
	fmt.Printf("Joined:   %s\n", u.CreatedAt)
	return nil
}

// renderError maps a failure to the message shown to the user. Auth failures
// additionally end the in-memory session so the prompt falls back to the
// login surface.
func (a *App) renderError(ctx context.Context, err error) {
	switch {
	case errors.Is(err, client.ErrReloginRequired):
		fmt.Println("Session expired. Please login again.")
		a.endSession()
	case errors.Is(err, client.ErrAuthRequired):
		fmt.Println("Please login first.")
		a.endSession()
	case errors.Is(err, client.ErrUnavailable):
		fmt.Println("Service unreachable. Check your connection and try again.")
	default:
		fmt.Println("Error:", err.Error())
	}
}
