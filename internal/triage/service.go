package triage

import (
	"context"
	"crypto/sha256"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/sympcheck/sympcheck/internal/cache"
	"github.com/sympcheck/sympcheck/internal/chart"
	"github.com/sympcheck/sympcheck/internal/refdata"
	"github.com/sympcheck/sympcheck/pkg/models"
)

const chartCacheTTL = time.Hour

// Service wires the triage pipeline to its collaborators: the reference
// store, the pre-trained classifier, the chart renderer, and the optional
// cache. One instance serves all requests; every field is read-only after
// construction.
type Service struct {
	ref      *refdata.Store
	clf      models.Classifier
	labels   []string
	columns  []string
	renderer chart.Renderer
	cache    cache.Cache // nil disables chart memoization
}

// NewService validates that the loaded artifacts agree with each other and
// returns a ready Service. Callers treat an error as fatal to startup.
func NewService(ref *refdata.Store, clf models.Classifier, labels, columns []string, renderer chart.Renderer, ca cache.Cache) (*Service, error) {
	if ref == nil || clf == nil || renderer == nil {
		return nil, fmt.Errorf("triage: reference store, classifier, and renderer are required")
	}
	if len(labels) != clf.NumClasses() {
		return nil, fmt.Errorf("triage: %d labels for a %d-class model", len(labels), clf.NumClasses())
	}
	if len(columns) == 0 {
		return nil, fmt.Errorf("triage: empty feature column list")
	}
	if got := ref.Columns(); len(got) == len(columns) {
		for i := range columns {
			if got[i] != columns[i] {
				return nil, fmt.Errorf("triage: training table column %d is %q, model expects %q", i, got[i], columns[i])
			}
		}
	} else {
		return nil, fmt.Errorf("triage: training table has %d symptom columns, model expects %d", len(got), len(columns))
	}

	return &Service{
		ref:      ref,
		clf:      clf,
		labels:   labels,
		columns:  columns,
		renderer: renderer,
		cache:    ca,
	}, nil
}

// Symptoms lists every known symptom name for client-side autocomplete.
func (s *Service) Symptoms() []string {
	return s.ref.Symptoms()
}

// RelatedQuestions returns the next yes/no symptoms worth asking.
func (s *Service) RelatedQuestions(symptoms []string) []string {
	return RelatedQuestions(s.ref.Records(), s.columns, symptoms)
}

// Predict runs the full pipeline: encode, classify, rank, assemble, score,
// and render the confidence chart. The chart is presentational; a renderer
// failure degrades to an empty graph field instead of failing the request.
func (s *Service) Predict(ctx context.Context, symptoms []string, numDays int) (*models.PredictResult, error) {
	vec := Encode(symptoms, s.columns)

	probs, err := s.clf.Probabilities(vec)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}

	ranked, err := Rank(probs, s.labels, topPredictions)
	if err != nil {
		return nil, err
	}

	predictions := make([]models.Prediction, len(ranked))
	for i, r := range ranked {
		predictions[i] = models.Prediction{
			Disease:     r.Disease,
			Confidence:  r.Confidence,
			Description: s.ref.Description(r.Disease),
			Precautions: s.ref.Precautions(r.Disease),
		}
	}

	risk := Score(s.ref, symptoms, numDays)

	return &models.PredictResult{
		Predictions:   predictions,
		SeverityScore: risk.SeverityScore,
		RiskLevel:     risk.RiskLevel,
		Graph:         s.renderGraph(ctx, ranked),
	}, nil
}

// renderGraph renders (or recalls) the confidence bar chart as a data URI.
func (s *Service) renderGraph(ctx context.Context, ranked []RankedDisease) string {
	if len(ranked) == 0 {
		return ""
	}

	labels := make([]string, len(ranked))
	scores := make([]float64, len(ranked))
	for i, r := range ranked {
		labels[i] = r.Disease
		scores[i] = r.Confidence
	}

	key := cache.ChartKey(chartHash(ranked))
	if s.cache != nil {
		if png, ok, err := s.cache.Get(ctx, key); err == nil && ok {
			return chart.DataURI(png)
		}
	}

	png, err := s.renderer.Render(labels, scores)
	if err != nil {
		slog.Warn("chart render failed", "error", err)
		return ""
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, key, png, chartCacheTTL); err != nil {
			slog.Warn("chart cache write failed", "error", err)
		}
	}
	return chart.DataURI(png)
}

// chartHash fingerprints the ranked output; identical rankings reuse the
// same cached render.
func chartHash(ranked []RankedDisease) string {
	var b strings.Builder
	for _, r := range ranked {
		fmt.Fprintf(&b, "%s=%.2f;", r.Disease, r.Confidence)
	}
	return fmt.Sprintf("%x", sha256.Sum256([]byte(b.String())))
}
