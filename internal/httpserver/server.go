// Package httpserver exposes the consent submission pipeline over HTTP.
// One route accepts the browser form's JSON payload; everything else about
// the form UI stays client-side.
package httpserver

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/goliatone/go-consentform/internal/logger"
	"github.com/goliatone/go-consentform/pkg/form"
	"github.com/goliatone/go-consentform/pkg/submission"
)

// Server routes consent submissions to the orchestrator.
type Server struct {
	orchestrator *submission.Orchestrator
}

// New constructs a Server around the given orchestrator.
func New(orchestrator *submission.Orchestrator) *Server {
	return &Server{orchestrator: orchestrator}
}

// Routes builds the HTTP handler.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusOK) })
	r.Post("/api/submit-form", s.handleSubmit)
	return r
}

func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var payload form.Payload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{
			"success": false,
			"error":   "request body is not valid JSON",
		})
		return
	}

	result := s.orchestrator.Submit(r.Context(), payload)
	if !result.OK {
		body := map[string]any{
			"success": false,
			"error":   result.Message,
		}
		status := http.StatusBadRequest
		if result.Hint != "" {
			// Configuration and delivery failures are the server's fault,
			// not the submitter's. The hint targets the operator reading
			// logs, not the form.
			status = http.StatusInternalServerError
			body["hint"] = result.Hint
		}
		writeJSON(w, status, body)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"success": true,
		"message": result.Message,
		"id":      result.SubmissionID,
	})
}

func writeJSON(w http.ResponseWriter, status int, body map[string]any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger.Warn("httpserver: write response: %v", err)
	}
}
