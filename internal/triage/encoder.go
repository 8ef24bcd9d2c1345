// Package triage implements the diagnostic inference pipeline: symptom
// encoding, disease ranking, severity scoring, and follow-up question
// recommendation. All computation is in-memory over immutable reference
// data; nothing here blocks on I/O.
package triage

// Encode maps reported symptom names onto a fixed-order feature vector
// aligned with the classifier's trained column order. Each known symptom
// sets a 1 at its column index; unknown symptoms are silently ignored.
// Duplicates are harmless and an empty input yields an all-zero vector.
func Encode(symptoms, columns []string) []float64 {
	index := make(map[string]int, len(columns))
	for i, c := range columns {
		index[c] = i
	}

	vec := make([]float64, len(columns))
	for _, s := range symptoms {
		if i, ok := index[s]; ok {
			vec[i] = 1
		}
	}
	return vec
}
