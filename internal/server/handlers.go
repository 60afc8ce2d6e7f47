package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/wagneradl/lexdraft/internal/schema"
	"github.com/wagneradl/lexdraft/internal/storage"
	"github.com/wagneradl/lexdraft/internal/templates"
)

func (s *Server) handleRoot(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Lexdraft API is running"})
}

func (s *Server) handleHello(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Hello from the backend API!"})
}

// handleDiagnostics reports backend and store health. This is the one
// place failures are deliberately swallowed and downgraded to status
// text: the endpoint's job is to describe an unhealthy store, not to
// fail because of one.
func (s *Server) handleDiagnostics(w http.ResponseWriter, r *http.Request) {
	st := s.store.Status(r.Context())

	connection := "Not Connected"
	if st.Connected {
		connection = "Connected"
	}
	collections := st.Collections
	if collections == nil {
		collections = []string{}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"backend":           "Running",
		"database":          st.Detail,
		"database_url":      setOrUnset(s.cfg.DatabaseURL),
		"database_name":     setOrUnset(s.cfg.DatabaseName),
		"connection_status": connection,
		"collections":       collections,
	})
}

func setOrUnset(v string) string {
	if v == "" {
		return "Not Set"
	}
	return "Set"
}

func (s *Server) handleDefaultTemplates(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, templates.Defaults())
}

type generateRequest struct {
	Template  templates.Template `json:"template"`
	Variables map[string]any     `json:"variables"`
}

type generateResponse struct {
	ID      string `json:"id"`
	Content string `json:"content"`
}

// handleGenerate merges the supplied variables into the template body
// and persists the result as a document record. Nothing is persisted
// when the merge fails.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}

	filled, err := templates.Merge(req.Template.Body, req.Variables)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}

	title := req.Template.Name
	if title == "" {
		title = "Generated Document"
	}
	category := req.Template.Category
	if category == "" {
		category = "contract"
	}
	variables := req.Variables
	if variables == nil {
		variables = map[string]any{}
	}

	doc := map[string]any{
		"title":       title,
		"category":    category,
		"content":     filled,
		"template_id": nil,
		"variables":   variables,
	}
	id, err := s.store.Create(r.Context(), "document", doc)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, generateResponse{ID: id, Content: filled})
}

// handleCreate inserts a record into the named collection. Declared
// collections get their defaults filled and required fields checked;
// undeclared collections pass through untouched.
func (s *Server) handleCreate(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	var req struct {
		Data map[string]any `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	record := req.Data
	if record == nil {
		record = map[string]any{}
	}

	if decl, ok := schema.Lookup(collection); ok {
		decl.ApplyDefaults(record)
		if err := decl.Validate(record); err != nil {
			writeDetail(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	id, err := s.store.Create(r.Context(), collection, record)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": id})
}

func (s *Server) handleList(w http.ResponseWriter, r *http.Request) {
	collection := chi.URLParam(r, "collection")

	limit := storage.DefaultLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 {
			limit = n
		}
	}

	records, err := s.store.List(r.Context(), collection, limit)
	if err != nil {
		writeDetail(w, http.StatusBadRequest, err.Error())
		return
	}
	if records == nil {
		records = []map[string]any{}
	}
	writeJSON(w, http.StatusOK, records)
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"collections": schema.Describe()})
}
