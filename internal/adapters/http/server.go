// Package http exposes validation and generation as a stateless JSON API.
package http

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/moorgen/moorgen"
	"github.com/moorgen/moorgen/internal/loader"
	"github.com/moorgen/moorgen/internal/metrics"
	"github.com/moorgen/moorgen/pkg/fsm"
)

// Server handles the JSON API requests.
type Server struct {
	gen    *moorgen.Generator
	logger *slog.Logger
}

// NewHandler creates the HTTP handler. Every endpoint is stateless: the
// machine definition travels in the request body and the VHDL text in
// the response.
func NewHandler(gen *moorgen.Generator, logger *slog.Logger) http.Handler {
	metrics.MustRegister()
	server := &Server{gen: gen, logger: logger}

	r := chi.NewRouter()
	r.Get("/health", server.GetHealth)
	r.Get("/info", server.GetInfo)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	r.Post("/validate", server.Validate)
	r.Post("/generate", server.Generate)
	r.Post("/testbench", server.Testbench)

	return enableCORS(r)
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// GenerateRequest carries a machine definition.
type GenerateRequest struct {
	Machine map[string]any `json:"machine"`
}

// GenerateResponse carries a generated artifact.
type GenerateResponse struct {
	Name string `json:"name"`
	VHDL string `json:"vhdl"`
}

// ValidateResponse reports validation outcome, findings included.
type ValidateResponse struct {
	Valid    bool          `json:"valid"`
	Error    string        `json:"error,omitempty"`
	Warnings []fsm.Warning `json:"warnings,omitempty"`
}

// Validate handles the POST /validate request.
func (s *Server) Validate(w http.ResponseWriter, r *http.Request) {
	machine, ok := s.decodeMachine(w, r)
	if !ok {
		return
	}

	resp := ValidateResponse{Valid: true}
	warnings, err := s.gen.Validate(machine)
	resp.Warnings = warnings
	if err != nil {
		metrics.ValidationFailures.Inc()
		resp.Valid = false
		resp.Error = err.Error()
		s.logger.Warn("validate: model rejected", "machine", machine.Name, "error", err)
	}

	writeJSON(w, s.logger, resp)
}

// Generate handles the POST /generate request.
func (s *Server) Generate(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "fsm", s.gen.Generate)
}

// Testbench handles the POST /testbench request.
func (s *Server) Testbench(w http.ResponseWriter, r *http.Request) {
	s.generate(w, r, "testbench", s.gen.Testbench)
}

func (s *Server) generate(w http.ResponseWriter, r *http.Request, artifact string, render func(*fsm.Machine) (string, error)) {
	machine, ok := s.decodeMachine(w, r)
	if !ok {
		return
	}

	start := time.Now()
	text, err := render(machine)
	metrics.GenerationDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.Generations.WithLabelValues(artifact, "invalid").Inc()
		http.Error(w, fmt.Sprintf("Generation error: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("generation rejected", "artifact", artifact, "machine", machine.Name, "error", err)
		return
	}
	metrics.Generations.WithLabelValues(artifact, "ok").Inc()

	name := machine.Name
	if artifact == "testbench" {
		name = "testbed_" + name
	}
	writeJSON(w, s.logger, GenerateResponse{Name: name, VHDL: text})
}

// GetHealth handles the GET /health request.
func (s *Server) GetHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{"status": "ok"})
}

// GetInfo handles the GET /info request.
func (s *Server) GetInfo(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, s.logger, map[string]string{
		"app":     "moorgen-http",
		"version": moorgen.Version,
	})
}

// decodeMachine reads the request body and builds the machine from its
// definition map. A false return means the response was already written.
func (s *Server) decodeMachine(w http.ResponseWriter, r *http.Request) (*fsm.Machine, bool) {
	var body GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		s.logger.Warn("invalid request body", "error", err)
		return nil, false
	}
	if body.Machine == nil {
		http.Error(w, "Missing machine definition", http.StatusBadRequest)
		return nil, false
	}

	machine, err := loader.FromMap(body.Machine)
	if err != nil {
		http.Error(w, fmt.Sprintf("Invalid machine definition: %v", err), http.StatusUnprocessableEntity)
		s.logger.Warn("invalid machine definition", "error", err)
		return nil, false
	}
	return machine, true
}

func writeJSON(w http.ResponseWriter, logger *slog.Logger, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Error("response encode failed", "error", err)
	}
}
