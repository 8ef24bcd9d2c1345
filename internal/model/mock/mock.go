// Package mock provides a models.Classifier for tests.
package mock

import "github.com/sympcheck/sympcheck/pkg/models"

// MockClassifier satisfies models.Classifier for testing.
type MockClassifier struct {
	Name_             string
	Classes           int
	ProbabilitiesFunc func(features []float64) ([]float64, error)
}

func (m *MockClassifier) Name() string { return m.Name_ }

func (m *MockClassifier) NumClasses() int { return m.Classes }

func (m *MockClassifier) Probabilities(features []float64) ([]float64, error) {
	if m.ProbabilitiesFunc != nil {
		return m.ProbabilitiesFunc(features)
	}
	probs := make([]float64, m.Classes)
	if m.Classes > 0 {
		for i := range probs {
			probs[i] = 1 / float64(m.Classes)
		}
	}
	return probs, nil
}

// NewFixed returns a classifier that always emits the given distribution.
func NewFixed(probs []float64) *MockClassifier {
	return &MockClassifier{
		Name_:   "mock",
		Classes: len(probs),
		ProbabilitiesFunc: func(_ []float64) ([]float64, error) {
			return probs, nil
		},
	}
}

// NewFailing returns a classifier that always returns the given error.
func NewFailing(err error) *MockClassifier {
	return &MockClassifier{
		Name_:   "mock-failing",
		Classes: 1,
		ProbabilitiesFunc: func(_ []float64) ([]float64, error) {
			return nil, err
		},
	}
}

// Compile-time check that MockClassifier implements Classifier.
var _ models.Classifier = (*MockClassifier)(nil)
