package triage

import (
	"sort"

	"github.com/sympcheck/sympcheck/pkg/models"
)

// maxQuestions caps the number of follow-up questions returned.
const maxQuestions = 6

// RelatedQuestions proposes the next yes/no symptoms to ask, given what the
// user already reported. It is a greedy co-occurrence heuristic over the
// training table:
//
//  1. collect every disease that has any reported symptom present in any of
//     its rows,
//  2. for each such disease, tally how often each not-yet-reported symptom
//     is present across its rows,
//  3. return the top-scoring symptoms, ties broken alphabetically.
//
// Empty input or no matching disease returns an empty slice (never nil,
// never an error). Consumers treat the result as an unordered top set.
func RelatedQuestions(records []models.TrainingRecord, columns []string, reported []string) []string {
	if len(reported) == 0 {
		return []string{}
	}

	reportedIdx := make(map[int]bool, len(reported))
	columnIdx := make(map[string]int, len(columns))
	for i, c := range columns {
		columnIdx[c] = i
	}
	for _, s := range reported {
		if i, ok := columnIdx[s]; ok {
			reportedIdx[i] = true
		}
	}

	matching := matchingDiseases(records, reportedIdx)
	if len(matching) == 0 {
		return []string{}
	}

	// Tally per-disease presence counts for symptoms not yet reported.
	tally := make(map[int]int)
	for _, rec := range records {
		if !matching[rec.Disease] {
			continue
		}
		for j, present := range rec.Present {
			if present > 0 && !reportedIdx[j] {
				tally[j] += present
			}
		}
	}

	ranked := make([]int, 0, len(tally))
	for j := range tally {
		ranked = append(ranked, j)
	}
	sort.Slice(ranked, func(a, b int) bool {
		if tally[ranked[a]] != tally[ranked[b]] {
			return tally[ranked[a]] > tally[ranked[b]]
		}
		return columns[ranked[a]] < columns[ranked[b]]
	})

	if len(ranked) > maxQuestions {
		ranked = ranked[:maxQuestions]
	}
	questions := make([]string, len(ranked))
	for i, j := range ranked {
		questions[i] = columns[j]
	}
	return questions
}

// matchingDiseases returns the set of disease labels with at least one
// reported symptom present in at least one of their rows.
func matchingDiseases(records []models.TrainingRecord, reportedIdx map[int]bool) map[string]bool {
	matching := make(map[string]bool)
	for _, rec := range records {
		if matching[rec.Disease] {
			continue
		}
		for j := range reportedIdx {
			if j < len(rec.Present) && rec.Present[j] > 0 {
				matching[rec.Disease] = true
				break
			}
		}
	}
	return matching
}
