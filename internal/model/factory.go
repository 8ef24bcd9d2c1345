package model

import (
	"fmt"

	"github.com/sympcheck/sympcheck/internal/config"
	"github.com/sympcheck/sympcheck/internal/model/forest"
	"github.com/sympcheck/sympcheck/internal/model/onnx"
	"github.com/sympcheck/sympcheck/pkg/models"
)

// NewClassifier constructs the configured inference backend.
// Called once at server startup; any error here is fatal.
func NewClassifier(cfg config.ModelConfig) (models.Classifier, error) {
	switch cfg.Backend {
	case "forest":
		return forest.Load(cfg.Path)
	case "onnx":
		return onnx.Load(cfg.Path)
	default:
		return nil, fmt.Errorf("unknown model backend %q: must be one of forest, onnx", cfg.Backend)
	}
}
