package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	mw "github.com/sympcheck/sympcheck/internal/api/middleware"
	"github.com/sympcheck/sympcheck/internal/api/response"
	"github.com/sympcheck/sympcheck/pkg/models"
)

// Predictor runs the full triage pipeline for one request.
type Predictor interface {
	Predict(ctx context.Context, symptoms []string, numDays int) (*models.PredictResult, error)
}

// NewPredictHandler returns an http.HandlerFunc for POST /api/v1/predict.
func NewPredictHandler(svc Predictor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Symptoms []string `json:"symptoms"`
			NumDays  int      `json:"num_days"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		numDays := req.NumDays
		if numDays < 1 {
			numDays = 1
		}

		result, err := svc.Predict(r.Context(), req.Symptoms, numDays)
		if err != nil {
			slog.Error("predict failed",
				"error", err,
				"symptom_count", len(req.Symptoms),
				"request_id", mw.GetRequestID(r),
			)
			response.Error(w, http.StatusInternalServerError, "INTERNAL_ERROR",
				"An unexpected error occurred", nil)
			return
		}

		response.JSON(w, result)
	}
}
