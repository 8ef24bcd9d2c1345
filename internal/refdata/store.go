// Package refdata holds the immutable reference data the triage core runs
// against: severity weights, disease descriptions, precaution lists, and the
// training association table. Everything is loaded once at startup and never
// mutated, so a single Store is shared by all requests without locking.
package refdata

import "github.com/sympcheck/sympcheck/pkg/models"

// Fallbacks applied when a ranked disease has no reference entry.
const (
	DefaultDescription = "No description available."
	DefaultPrecaution  = "No specific precautions available."
)

// Store is the in-memory reference store. Construct with Load; zero value is
// not usable.
type Store struct {
	severity     map[string]int
	descriptions map[string]string
	precautions  map[string][]string

	symptoms []string // severity table key column, file order
	columns  []string // training table symptom columns, file order
	records  []models.TrainingRecord
}

// Weight returns the severity weight for a symptom, 0 when unknown.
func (s *Store) Weight(symptom string) int {
	return s.severity[symptom]
}

// Description returns the disease description, falling back to the
// "no description" sentinel. Lookups never fail.
func (s *Store) Description(disease string) string {
	if d, ok := s.descriptions[disease]; ok {
		return d
	}
	return DefaultDescription
}

// Precautions returns the cleaned precaution list for a disease, falling
// back to a singleton sentinel list. Lookups never fail.
func (s *Store) Precautions(disease string) []string {
	if p, ok := s.precautions[disease]; ok {
		return p
	}
	return []string{DefaultPrecaution}
}

// Symptoms returns all known symptom names in severity-table order. The
// returned slice is shared; callers must not modify it.
func (s *Store) Symptoms() []string {
	return s.symptoms
}

// Columns returns the training table's symptom columns in file order.
func (s *Store) Columns() []string {
	return s.columns
}

// Records returns the full training association table.
func (s *Store) Records() []models.TrainingRecord {
	return s.records
}
