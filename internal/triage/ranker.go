package triage

import (
	"fmt"
	"math"
	"sort"
)

// topPredictions is how many ranked diseases a predict call returns.
const topPredictions = 3

// RankedDisease is one entry of the ranker output: a disease label and its
// confidence as a percentage, rounded to 2 decimals.
type RankedDisease struct {
	Disease    string
	Confidence float64
}

// Rank selects the top-k classes from a probability distribution. Ordering
// uses the unrounded probabilities, descending, with ties resolved by the
// classifier's native class index order (stable sort). Confidences are
// converted to percentage scale and rounded for presentation only.
func Rank(probs []float64, labels []string, k int) ([]RankedDisease, error) {
	if len(probs) != len(labels) {
		return nil, fmt.Errorf("triage: classifier emitted %d probabilities for %d labels", len(probs), len(labels))
	}

	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})

	if k > len(order) {
		k = len(order)
	}
	ranked := make([]RankedDisease, k)
	for i := 0; i < k; i++ {
		idx := order[i]
		ranked[i] = RankedDisease{
			Disease:    labels[idx],
			Confidence: round2(probs[idx] * 100),
		}
	}
	return ranked, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
