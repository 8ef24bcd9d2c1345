package handler

import (
	"encoding/json"
	"net/http"

	"github.com/sympcheck/sympcheck/internal/api/response"
)

// QuestionRecommender proposes follow-up symptoms to ask about.
type QuestionRecommender interface {
	RelatedQuestions(symptoms []string) []string
}

type questionsResponse struct {
	Questions []string `json:"questions"`
}

// NewQuestionsHandler returns an http.HandlerFunc for POST /api/v1/questions.
// An empty symptom list or no co-occurring disease yields an empty question
// list, never an error.
func NewQuestionsHandler(svc QuestionRecommender) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Symptoms []string `json:"symptoms"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			response.Error(w, http.StatusBadRequest, "INVALID_REQUEST", "Invalid JSON body", nil)
			return
		}

		questions := svc.RelatedQuestions(req.Symptoms)
		if questions == nil {
			questions = []string{}
		}
		response.JSON(w, questionsResponse{Questions: questions})
	}
}
