package models

// The detection payloads are decoded at the transport boundary and passed
// through to the presentation layer; the client does not interpret them
// beyond rendering.

// ClassProbabilities is a per-class probability pair summing to 1.
type ClassProbabilities struct {
	Spoof    float64 `json:"spoof"`
	Bonafide float64 `json:"bonafide"`
}

// ModelPrediction is the verdict of a single classifier.
type ModelPrediction struct {
	Prediction    string             `json:"prediction"` // BONAFIDE or SPOOF
	Confidence    float64            `json:"confidence"` // percentage 0–100
	Probabilities ClassProbabilities `json:"probabilities"`
}

// ModelSet groups the three classifiers run by the service.
type ModelSet struct {
	RandomForest ModelPrediction `json:"random_forest"`
	CNN          ModelPrediction `json:"cnn"`
	Ensemble     ModelPrediction `json:"ensemble"`
}

// PredictionResult is the response of POST /predict.
type PredictionResult struct {
	Filename        string   `json:"filename"`
	FileSizeBytes   int64    `json:"file_size_bytes"`
	DurationSeconds float64  `json:"duration_seconds"`
	NumChunks       int      `json:"num_chunks"`
	Predictions     ModelSet `json:"predictions"`
	FinalPrediction string   `json:"final_prediction"`
	FinalConfidence float64  `json:"final_confidence"`
	ConfidenceLevel string   `json:"confidence_level"`
	ModelsAgree     bool     `json:"models_agree"`
}

// HistoryEntry is one stored prediction as returned by GET /history.
type HistoryEntry struct {
	ID              int64    `json:"id"`
	Filename        string   `json:"filename"`
	FileSizeBytes   int64    `json:"file_size_bytes"`
	DurationSeconds float64  `json:"duration_seconds"`
	FinalPrediction string   `json:"final_prediction"`
	FinalConfidence float64  `json:"final_confidence"`
	ConfidenceLevel string   `json:"confidence_level"`
	ModelsAgree     bool     `json:"models_agree"`
	Predictions     ModelSet `json:"predictions"`
	NumChunks       int      `json:"num_chunks"`
	ProcessingTime  float64  `json:"processing_time"`
	CreatedAt       string   `json:"created_at"`
}

// HistoryPage is the envelope of GET /history.
type HistoryPage struct {
	History []HistoryEntry `json:"history"`
}

// UserStats is the response of GET /stats.
type UserStats struct {
	TotalPredictions   int64   `json:"total_predictions"`
	BonafideCount      int64   `json:"bonafide_count"`
	SpoofCount         int64   `json:"spoof_count"`
	AverageConfidence  float64 `json:"average_confidence"`
	BonafidePercentage float64 `json:"bonafide_percentage"`
	SpoofPercentage    float64 `json:"spoof_percentage"`
}
