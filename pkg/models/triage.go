// Package models contains shared data models used across the SympCheck codebase.
package models

// Risk levels produced by the severity scorer.
const (
	RiskLow  = "Low"
	RiskHigh = "High"
)

// Prediction is one ranked disease candidate for a set of reported symptoms.
type Prediction struct {
	Disease     string   `json:"disease"`
	Confidence  float64  `json:"confidence"` // percentage, rounded to 2 decimals
	Description string   `json:"description"`
	Precautions []string `json:"precautions"`
}

// RiskAssessment combines symptom severity weights, symptom count, and days
// symptomatic into a single score and a binary risk label.
type RiskAssessment struct {
	SeverityScore float64 `json:"severity_score"`
	RiskLevel     string  `json:"risk_level"`
}

// PredictResult is the full output of a predict operation.
type PredictResult struct {
	Predictions   []Prediction `json:"predictions"`
	SeverityScore float64      `json:"severity_score"`
	RiskLevel     string       `json:"risk_level"`
	// Graph is a data:image/png;base64 URI of the confidence bar chart.
	// Empty when rendering fails; the prediction itself is unaffected.
	Graph string `json:"graph"`
}

// TrainingRecord is one row of the training association table: a disease
// label plus a fixed-width binary vector over the symptom columns.
type TrainingRecord struct {
	Disease string
	Present []int
}
