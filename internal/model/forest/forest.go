// Package forest evaluates a random-forest artifact exported to JSON by the
// offline training pipeline. Each tree is stored as parallel node arrays
// (scikit-learn layout); predict_proba is the mean of the per-tree leaf
// class distributions.
package forest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/sympcheck/sympcheck/pkg/models"
)

// leaf marks a node with no children in the left/right arrays.
const leaf = -1

type tree struct {
	Feature   []int       `json:"feature"`
	Threshold []float64   `json:"threshold"`
	Left      []int       `json:"left"`
	Right     []int       `json:"right"`
	Value     [][]float64 `json:"value"` // per-node class counts; meaningful at leaves
}

type artifact struct {
	NFeatures int    `json:"n_features"`
	NClasses  int    `json:"n_classes"`
	Trees     []tree `json:"trees"`
}

// Forest is the pure-Go random-forest backend.
type Forest struct {
	nFeatures int
	nClasses  int
	trees     []tree
}

// Load reads and validates a forest artifact.
func Load(path string) (*Forest, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("forest: %w", err)
	}

	var a artifact
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("forest: malformed artifact %s: %w", path, err)
	}
	if a.NFeatures <= 0 || a.NClasses <= 0 || len(a.Trees) == 0 {
		return nil, fmt.Errorf("forest: artifact %s missing n_features, n_classes, or trees", path)
	}

	for ti, t := range a.Trees {
		n := len(t.Feature)
		if len(t.Threshold) != n || len(t.Left) != n || len(t.Right) != n || len(t.Value) != n {
			return nil, fmt.Errorf("forest: tree %d: node arrays have inconsistent lengths", ti)
		}
		if n == 0 {
			return nil, fmt.Errorf("forest: tree %d is empty", ti)
		}
		for i := 0; i < n; i++ {
			if t.Left[i] == leaf != (t.Right[i] == leaf) {
				return nil, fmt.Errorf("forest: tree %d node %d: half-leaf node", ti, i)
			}
			if t.Left[i] == leaf {
				if len(t.Value[i]) != a.NClasses {
					return nil, fmt.Errorf("forest: tree %d node %d: leaf distribution has %d classes, want %d", ti, i, len(t.Value[i]), a.NClasses)
				}
				continue
			}
			if t.Left[i] < 0 || t.Left[i] >= n || t.Right[i] < 0 || t.Right[i] >= n {
				return nil, fmt.Errorf("forest: tree %d node %d: child index out of range", ti, i)
			}
			if t.Feature[i] < 0 || t.Feature[i] >= a.NFeatures {
				return nil, fmt.Errorf("forest: tree %d node %d: feature index %d out of range", ti, i, t.Feature[i])
			}
		}
	}

	return &Forest{
		nFeatures: a.NFeatures,
		nClasses:  a.NClasses,
		trees:     a.Trees,
	}, nil
}

// Probabilities averages the normalized leaf distributions of all trees for
// one feature vector.
func (f *Forest) Probabilities(features []float64) ([]float64, error) {
	if len(features) != f.nFeatures {
		return nil, fmt.Errorf("forest: got %d features, model expects %d", len(features), f.nFeatures)
	}

	probs := make([]float64, f.nClasses)
	for _, t := range f.trees {
		node := 0
		for t.Left[node] != leaf {
			if features[t.Feature[node]] <= t.Threshold[node] {
				node = t.Left[node]
			} else {
				node = t.Right[node]
			}
		}

		dist := t.Value[node]
		var total float64
		for _, v := range dist {
			total += v
		}
		if total == 0 {
			continue
		}
		for i, v := range dist {
			probs[i] += v / total
		}
	}

	for i := range probs {
		probs[i] /= float64(len(f.trees))
	}
	return probs, nil
}

func (f *Forest) NumClasses() int { return f.nClasses }

func (f *Forest) Name() string { return "forest" }

var _ models.Classifier = (*Forest)(nil)
