package triage

import "github.com/sympcheck/sympcheck/pkg/models"

// Fixed scoring constants. The +1 denominator smoothing and the 13 risk
// threshold are part of the scoring contract; do not make them configurable.
const riskThreshold = 13.0

// SeverityTable resolves a symptom to its severity weight, 0 when unknown.
type SeverityTable interface {
	Weight(symptom string) int
}

// Score combines reported symptoms' severity weights and symptom count with
// the reported duration into a risk score and a binary risk label:
//
//	score = Σ weight(symptom) × numDays / (len(symptoms) + 1)
//
// The count uses the raw reported list, duplicates and unknown symptoms
// included; unknown symptoms contribute weight 0. numDays below 1 is
// treated as 1. An empty symptom set scores 0 and is always low risk.
func Score(weights SeverityTable, symptoms []string, numDays int) models.RiskAssessment {
	if numDays < 1 {
		numDays = 1
	}

	var total int
	for _, s := range symptoms {
		total += weights.Weight(s)
	}

	score := float64(total*numDays) / float64(len(symptoms)+1)

	level := models.RiskLow
	if score > riskThreshold {
		level = models.RiskHigh
	}
	return models.RiskAssessment{SeverityScore: score, RiskLevel: level}
}
