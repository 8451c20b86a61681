// Package server exposes the pipeline over HTTP: document processing,
// status, and a health check.
package server

import (
	"database/sql"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"reqsmith/internal/logging"
	"reqsmith/internal/pipeline"
	"reqsmith/internal/registry"
	"reqsmith/internal/store"
)

// RunRecorder persists pipeline runs. Satisfied by *store.RunStore;
// nil disables history.
type RunRecorder interface {
	Record(run store.Run) error
	LastRun() (store.Run, error)
	Count() (int, error)
}

// Server handles the HTTP surface.
type Server struct {
	registry *registry.Registry
	pipeline *pipeline.Pipeline
	runs     RunRecorder
	started  time.Time
}

// New builds a server over a populated registry and pipeline.
func New(r *registry.Registry, p *pipeline.Pipeline, runs RunRecorder) *Server {
	return &Server{
		registry: r,
		pipeline: p,
		runs:     runs,
		started:  time.Now(),
	}
}

// Router mounts all endpoints.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.handleHealth)
	r.Get("/api/status", s.handleStatus)
	r.Post("/api/process", s.handleProcess)

	return r
}

type processRequest struct {
	Text     string `json:"text"`
	Document string `json:"document"`
	Content  string `json:"content"`
}

func (p processRequest) document() string {
	for _, s := range []string{p.Text, p.Document, p.Content} {
		if strings.TrimSpace(s) != "" {
			return s
		}
	}
	return ""
}

// handleProcess runs a document through the pipeline. The body is
// either JSON carrying the document under text, document, or content,
// or the raw document itself. JSON responses carry the full run
// result; anything else gets the approval XML as plain text.
func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	timer := logging.StartTimer(logging.CategoryAPI, "process")
	defer timer.Stop()

	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<20))
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not read request body")
		return
	}

	document := extractDocument(r.Header.Get("Content-Type"), body)
	logging.APIDebug("process: %d bytes, content-type %q", len(body), r.Header.Get("Content-Type"))
	if strings.TrimSpace(document) == "" {
		writeError(w, http.StatusBadRequest, "no document content provided")
		return
	}

	result, err := s.pipeline.Run(r.Context(), document)
	if err != nil {
		logging.APIError("process: %v", err)
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	logging.API("run %s: domain=%q action=%s approved=%v",
		result.RunID, result.Domain, result.Decision.Action, result.Approval.Approved)
	s.recordRun(result)

	if wantsJSON(r) {
		writeJSON(w, http.StatusOK, result)
		return
	}

	xmlOut, err := result.ApprovalXML()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	io.WriteString(w, xmlOut)
}

func extractDocument(contentType string, body []byte) string {
	if strings.Contains(contentType, "application/json") || looksLikeJSON(body) {
		var req processRequest
		if err := json.Unmarshal(body, &req); err == nil {
			return req.document()
		}
		// Malformed JSON with a JSON content type is an empty document.
		if strings.Contains(contentType, "application/json") {
			return ""
		}
	}
	return string(body)
}

func looksLikeJSON(body []byte) bool {
	trimmed := strings.TrimSpace(string(body))
	return strings.HasPrefix(trimmed, "{")
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func (s *Server) recordRun(result *pipeline.Result) {
	if s.runs == nil {
		return
	}
	err := s.runs.Record(store.Run{
		ID:               result.RunID,
		Domain:           result.Domain,
		Confidence:       result.Confidence,
		Action:           string(result.Decision.Action),
		Approved:         result.Approval.Approved,
		RequirementCount: len(result.Requirements),
		DurationMS:       result.Metrics.TotalMS,
		CreatedAt:        result.CreatedAt,
	})
	if err != nil {
		logging.APIError("record run %s: %v", result.RunID, err)
	}
}

type statusResponse struct {
	Status            string     `json:"status"`
	RegisteredDomains []string   `json:"registered_domains"`
	DomainCount       int        `json:"domain_count"`
	UptimeSeconds     float64    `json:"uptime_seconds"`
	TotalRuns         int        `json:"total_runs,omitempty"`
	LastRun           *store.Run `json:"last_run,omitempty"`
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := statusResponse{
		Status:            "running",
		RegisteredDomains: s.registry.Domains(),
		DomainCount:       s.registry.Count(),
		UptimeSeconds:     time.Since(s.started).Seconds(),
	}

	if s.runs != nil {
		if n, err := s.runs.Count(); err == nil {
			resp.TotalRuns = n
		}
		last, err := s.runs.LastRun()
		switch {
		case err == nil:
			resp.LastRun = &last
		case !errors.Is(err, sql.ErrNoRows):
			logging.APIError("status: last run: %v", err)
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "reqsmith",
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logging.APIError("encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
