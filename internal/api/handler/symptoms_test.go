package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubLister struct {
	symptoms []string
}

func (s *stubLister) Symptoms() []string { return s.symptoms }

func TestSymptomsHandler(t *testing.T) {
	h := NewSymptomsHandler(&stubLister{symptoms: []string{"itching", "skin_rash"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/symptoms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body struct {
		Symptoms []string `json:"symptoms"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, []string{"itching", "skin_rash"}, body.Symptoms)
}

func TestSymptomsHandler_EmptyList(t *testing.T) {
	h := NewSymptomsHandler(&stubLister{symptoms: nil})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/symptoms", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// nil must marshal as [] and not null
	assert.JSONEq(t, `{"symptoms":[]}`, rec.Body.String())
}
