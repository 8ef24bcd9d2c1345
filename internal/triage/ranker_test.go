package triage

import "testing"

func TestRank_TopThreeDescending(t *testing.T) {
	labels := []string{"A", "B", "C", "D"}
	probs := []float64{0.05, 0.6, 0.25, 0.1}

	ranked, err := Rank(probs, labels, 3)
	if err != nil {
		t.Fatal(err)
	}

	want := []RankedDisease{
		{Disease: "B", Confidence: 60},
		{Disease: "C", Confidence: 25},
		{Disease: "D", Confidence: 10},
	}
	if len(ranked) != len(want) {
		t.Fatalf("expected %d entries, got %d", len(want), len(ranked))
	}
	for i := range want {
		if ranked[i] != want[i] {
			t.Errorf("entry %d: expected %+v, got %+v", i, want[i], ranked[i])
		}
	}
}

func TestRank_TiesKeepClassOrder(t *testing.T) {
	labels := []string{"A", "B", "C", "D"}
	probs := []float64{0.1, 0.4, 0.4, 0.1}

	ranked, err := Rank(probs, labels, 3)
	if err != nil {
		t.Fatal(err)
	}

	// B and C tie at 0.4, A and D tie at 0.1; native index order wins.
	want := []string{"B", "C", "A"}
	for i := range want {
		if ranked[i].Disease != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], ranked[i].Disease)
		}
	}
}

func TestRank_RoundsToTwoDecimals(t *testing.T) {
	labels := []string{"A", "B", "C"}
	probs := []float64{1.0 / 3, 1.0 / 3, 1.0 / 3}

	ranked, err := Rank(probs, labels, 3)
	if err != nil {
		t.Fatal(err)
	}
	for _, r := range ranked {
		if r.Confidence != 33.33 {
			t.Errorf("expected 33.33, got %v", r.Confidence)
		}
	}
}

func TestRank_FewerClassesThanK(t *testing.T) {
	ranked, err := Rank([]float64{0.9, 0.1}, []string{"A", "B"}, 3)
	if err != nil {
		t.Fatal(err)
	}
	if len(ranked) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(ranked))
	}
}

func TestRank_LengthMismatch(t *testing.T) {
	if _, err := Rank([]float64{0.5, 0.5}, []string{"A"}, 3); err == nil {
		t.Fatal("expected error on probability/label length mismatch")
	}
}

func TestRank_ConfidencesNonIncreasingAndBounded(t *testing.T) {
	labels := []string{"A", "B", "C", "D", "E"}
	probs := []float64{0.07, 0.31, 0.02, 0.42, 0.18}

	ranked, err := Rank(probs, labels, 3)
	if err != nil {
		t.Fatal(err)
	}
	for i, r := range ranked {
		if r.Confidence < 0 || r.Confidence > 100 {
			t.Errorf("confidence %v out of [0,100]", r.Confidence)
		}
		if i > 0 && ranked[i-1].Confidence < r.Confidence {
			t.Errorf("confidences not non-increasing: %v then %v", ranked[i-1].Confidence, r.Confidence)
		}
	}
}
