// Package handler contains the HTTP handlers for the triage API. Each
// handler depends on a narrow interface so tests can inject a stub service.
package handler

import (
	"net/http"

	"github.com/sympcheck/sympcheck/internal/api/response"
)

// SymptomLister exposes the known symptom names.
type SymptomLister interface {
	Symptoms() []string
}

type symptomsResponse struct {
	Symptoms []string `json:"symptoms"`
}

// NewSymptomsHandler returns an http.HandlerFunc for GET /api/v1/symptoms.
// Used by the frontend for autocomplete and input validation.
func NewSymptomsHandler(svc SymptomLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		symptoms := svc.Symptoms()
		if symptoms == nil {
			symptoms = []string{}
		}
		response.JSON(w, symptomsResponse{Symptoms: symptoms})
	}
}
