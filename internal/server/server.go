// Package server routes HTTP requests to the document store and the
// template merge operation.
package server

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/wagneradl/lexdraft/internal/config"
	"github.com/wagneradl/lexdraft/internal/storage"
)

// DocumentStore is the slice of the storage layer the handlers use.
type DocumentStore interface {
	Create(ctx context.Context, collection string, record map[string]any) (string, error)
	List(ctx context.Context, collection string, limit int) ([]map[string]any, error)
	Status(ctx context.Context) storage.Status
}

// Server holds the per-process dependencies shared by all handlers.
// Handlers are stateless beyond the store handle.
type Server struct {
	store  DocumentStore
	cfg    config.Config
	logger *log.Logger
}

// New builds the HTTP handler with all routes registered. The
// cross-origin policy is fully open; this service is not a security
// boundary.
func New(store DocumentStore, cfg config.Config, logger *log.Logger) http.Handler {
	s := &Server{store: store, cfg: cfg, logger: logger}

	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	r.Get("/", s.handleRoot)
	r.Get("/api/hello", s.handleHello)
	r.Get("/test", s.handleDiagnostics)
	r.Get("/schema", s.handleSchema)

	// Feature routes stay ahead of the generic collection routes.
	r.Get("/api/templates/defaults", s.handleDefaultTemplates)
	r.Post("/api/generate", s.handleGenerate)

	r.Post("/api/collections/{collection}", s.handleCreate)
	r.Get("/api/collections/{collection}", s.handleList)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// writeDetail reports a client-facing failure as a {detail} payload.
func writeDetail(w http.ResponseWriter, status int, detail string) {
	writeJSON(w, status, map[string]string{"detail": detail})
}
