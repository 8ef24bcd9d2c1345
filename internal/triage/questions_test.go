package triage

import (
	"testing"

	"github.com/sympcheck/sympcheck/pkg/models"
)

var questionColumns = []string{"itching", "skin_rash", "fatigue", "headache", "nausea"}

func questionRecords() []models.TrainingRecord {
	return []models.TrainingRecord{
		{Disease: "Fungal infection", Present: []int{1, 1, 0, 0, 0}},
		{Disease: "Fungal infection", Present: []int{1, 0, 1, 0, 0}},
		{Disease: "Flu", Present: []int{0, 0, 1, 1, 0}},
		{Disease: "Migraine", Present: []int{0, 0, 0, 1, 1}},
	}
}

func TestRelatedQuestions_EmptyInput(t *testing.T) {
	got := RelatedQuestions(questionRecords(), questionColumns, nil)
	if got == nil {
		t.Fatal("expected empty slice, got nil")
	}
	if len(got) != 0 {
		t.Errorf("expected no questions, got %v", got)
	}
}

func TestRelatedQuestions_NoMatchingDisease(t *testing.T) {
	got := RelatedQuestions(questionRecords(), questionColumns, []string{"no_such_symptom"})
	if len(got) != 0 {
		t.Errorf("expected no questions, got %v", got)
	}
}

func TestRelatedQuestions_SingleDisease(t *testing.T) {
	// "skin_rash" only matches Fungal infection; its other symptoms are
	// itching (count 2) and fatigue (count 1).
	got := RelatedQuestions(questionRecords(), questionColumns, []string{"skin_rash"})

	want := []string{"itching", "fatigue"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestRelatedQuestions_ExcludesReportedSymptoms(t *testing.T) {
	got := RelatedQuestions(questionRecords(), questionColumns, []string{"itching", "fatigue"})
	for _, q := range got {
		if q == "itching" || q == "fatigue" {
			t.Errorf("reported symptom %q must not be proposed again", q)
		}
	}
}

func TestRelatedQuestions_UnionAcrossDiseases(t *testing.T) {
	// "headache" matches Flu and Migraine; candidates come only from their
	// columns: fatigue (Flu) and nausea (Migraine), tied at 1 → alphabetical.
	got := RelatedQuestions(questionRecords(), questionColumns, []string{"headache"})

	want := []string{"fatigue", "nausea"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestRelatedQuestions_OnlyDrawsFromMatchingDiseases(t *testing.T) {
	// "itching" matches only Fungal infection; headache and nausea belong to
	// other diseases and must never surface.
	got := RelatedQuestions(questionRecords(), questionColumns, []string{"itching"})
	for _, q := range got {
		if q == "headache" || q == "nausea" {
			t.Errorf("question %q drawn from a non-matching disease", q)
		}
	}
}

func TestRelatedQuestions_CapsAtSix(t *testing.T) {
	columns := []string{"s0", "s1", "s2", "s3", "s4", "s5", "s6", "s7"}
	records := []models.TrainingRecord{
		{Disease: "Everything", Present: []int{1, 1, 1, 1, 1, 1, 1, 1}},
	}

	got := RelatedQuestions(records, columns, []string{"s0"})
	if len(got) != 6 {
		t.Fatalf("expected 6 questions, got %d: %v", len(got), got)
	}

	want := []string{"s1", "s2", "s3", "s4", "s5", "s6"} // tied tallies, alphabetical
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}

func TestRelatedQuestions_SortedByTally(t *testing.T) {
	columns := []string{"a", "b", "c"}
	records := []models.TrainingRecord{
		{Disease: "D", Present: []int{1, 0, 1}},
		{Disease: "D", Present: []int{1, 1, 1}},
		{Disease: "D", Present: []int{1, 0, 1}},
	}

	// Reporting "a": c appears 3 times, b once.
	got := RelatedQuestions(records, columns, []string{"a"})

	want := []string{"c", "b"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("expected %v, got %v", want, got)
		}
	}
}
