package api

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/vsinha/filmplant/pkg/application/dto"
	"github.com/vsinha/filmplant/pkg/application/reference"
	"github.com/vsinha/filmplant/pkg/application/services"
)

// maxScenarioBytes bounds the evaluate request body
const maxScenarioBytes = 1 << 20

// ReferenceResponse pairs the built-in scenario with its evaluation
type ReferenceResponse struct {
	Scenario dto.Scenario          `json:"scenario"`
	Result   *dto.EvaluationResult `json:"result"`
}

// Server exposes the evaluation engine over HTTP. It holds no per-request state.
type Server struct {
	evaluator    *services.EvaluationService
	sweepMaxTons float64
}

// NewServer creates a server. A positive sweepMaxTons replaces the technology
// sweep bound of any scenario that leaves it unset.
func NewServer(evaluator *services.EvaluationService, sweepMaxTons float64) *Server {
	return &Server{evaluator: evaluator, sweepMaxTons: sweepMaxTons}
}

// Routes builds the chi router
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/reference", s.handleReference)
		r.Post("/evaluate", s.handleEvaluate)
	})
	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleReference(w http.ResponseWriter, r *http.Request) {
	scenario := s.withDefaults(reference.Scenario())
	writeJSON(w, http.StatusOK, ReferenceResponse{
		Scenario: scenario,
		Result:   s.evaluator.Evaluate(scenario),
	})
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var scenario dto.Scenario
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxScenarioBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&scenario); err != nil {
		http.Error(w, "invalid scenario: "+err.Error(), http.StatusBadRequest)
		return
	}

	result := s.evaluator.Evaluate(s.withDefaults(scenario))
	log.Printf("evaluated scenario %q: %d issues", scenario.Structure.Label, len(result.Issues))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) withDefaults(scenario dto.Scenario) dto.Scenario {
	if s.sweepMaxTons > 0 && scenario.Technology.SweepMaxTons == 0 {
		scenario.Technology.SweepMaxTons = s.sweepMaxTons
	}
	return scenario
}

// writeJSON encodes before writing the header so an encoding failure can
// still be reported as a 500.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		log.Printf("failed to encode response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(buf.Bytes()); err != nil {
		log.Printf("failed to write response: %v", err)
	}
}
