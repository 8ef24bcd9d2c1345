// Package chart renders ranked prediction confidences into an image. The
// triage core only hands over (label, score) pairs; everything visual stays
// behind the Renderer interface.
package chart

import (
	"bytes"
	"encoding/base64"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Renderer turns ranked (label, score) pairs into PNG bytes.
// Implementations must be safe for concurrent use.
type Renderer interface {
	Render(labels []string, scores []float64) ([]byte, error)
}

// BarRenderer draws a confidence bar chart with go-chart.
type BarRenderer struct {
	Width  int
	Height int
}

// NewBarRenderer returns a BarRenderer with the default canvas size.
func NewBarRenderer() *BarRenderer {
	return &BarRenderer{Width: 600, Height: 400}
}

// Render draws one bar per prediction, y-axis fixed to the 0–100 confidence
// scale.
func (r *BarRenderer) Render(labels []string, scores []float64) ([]byte, error) {
	if len(labels) == 0 {
		return nil, fmt.Errorf("chart: nothing to render")
	}
	if len(labels) != len(scores) {
		return nil, fmt.Errorf("chart: got %d labels for %d scores", len(labels), len(scores))
	}

	bars := make([]gochart.Value, len(labels))
	for i := range labels {
		bars[i] = gochart.Value{Label: labels[i], Value: scores[i]}
	}

	bc := gochart.BarChart{
		Title:    "Top Predictions",
		Width:    r.Width,
		Height:   r.Height,
		BarWidth: 80,
		YAxis: gochart.YAxis{
			Name: "Confidence (%)",
			Range: &gochart.ContinuousRange{
				Min: 0,
				Max: 100,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := bc.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render: %w", err)
	}
	return buf.Bytes(), nil
}

// DataURI wraps PNG bytes in the data URI the frontend embeds directly.
func DataURI(png []byte) string {
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png)
}

var _ Renderer = (*BarRenderer)(nil)
