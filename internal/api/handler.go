// Package api implements the hosted diagnostic REST API.
// It provides assessment submission and recovery endpoints backed by
// Postgres and blob storage.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/diagnostica/diagnostica/internal/archive"
	"github.com/diagnostica/diagnostica/internal/session"
	"github.com/diagnostica/diagnostica/pkg/assessment"
	"github.com/diagnostica/diagnostica/pkg/recommend"
	"github.com/diagnostica/diagnostica/pkg/verdict"
)

// SessionStore is the persistence surface the handler needs. *session.Service
// satisfies it; tests use an in-memory fake.
type SessionStore interface {
	Upsert(ctx context.Context, rec session.Record) (*session.Record, error)
	FindByUUID(ctx context.Context, id string) (*session.Record, error)
	FindLatestByEmail(ctx context.Context, email string) (*session.Record, error)
	ListRecent(ctx context.Context, limit int) ([]session.Record, error)
}

// Handler is the top-level API handler for the hosted diagnostic service.
type Handler struct {
	sessions      SessionStore
	engine        *assessment.Engine
	ranker        *recommend.Ranker
	catalog       []recommend.BookEntry
	rules         []verdict.Rule
	questionnaire []assessment.Question
	archive       archive.StorageClient
}

// NewHandler creates a new API handler. The rule set is validated here so a
// misconfigured deployment fails at startup, not on the first submission.
// The archive client may be nil, in which case completed results are not
// mirrored to blob storage.
func NewHandler(sessions SessionStore, engine *assessment.Engine, ranker *recommend.Ranker, arch archive.StorageClient) (*Handler, error) {
	rules := verdict.DefaultRules()
	if err := verdict.ValidateRules(rules); err != nil {
		return nil, fmt.Errorf("verdict rules: %w", err)
	}
	return &Handler{
		sessions:      sessions,
		engine:        engine,
		ranker:        ranker,
		catalog:       recommend.DefaultCatalog(),
		rules:         rules,
		questionnaire: assessment.DefaultQuestionnaire(),
		archive:       arch,
	}, nil
}

// RegisterRoutes registers all API routes on the given ServeMux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Write endpoints (auth-protected)
	mux.HandleFunc("POST /api/v1/assessments", h.handleSubmit)

	// Read endpoints. The literal recover path takes precedence over the
	// {uuid} wildcard.
	mux.HandleFunc("GET /api/v1/assessments", h.handleListRecent)
	mux.HandleFunc("GET /api/v1/assessments/recover", h.handleRecover)
	mux.HandleFunc("GET /api/v1/assessments/{uuid}", h.handleGet)
	mux.HandleFunc("GET /api/v1/questionnaire", h.handleQuestionnaire)
	mux.HandleFunc("GET /api/v1/catalog", h.handleCatalog)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
