// Package httpapi exposes the conversational pipeline over HTTP.
package httpapi

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/nithin218/mindmate/pkg/domain"
	"github.com/nithin218/mindmate/pkg/ports"
)

// Responder runs one user question through the full pipeline.
type Responder interface {
	Respond(ctx context.Context, question string) (*domain.State, error)
}

// Server wires the pipeline and the audit store into an HTTP surface.
type Server struct {
	responder Responder
	store     ports.RecordStore
	logger    *slog.Logger
}

// Option configures a Server.
type Option func(*Server)

// WithStore enables audit persistence of completed conversations.
func WithStore(store ports.RecordStore) Option {
	return func(s *Server) {
		s.store = store
	}
}

// WithLogger sets the server logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewHandler builds the HTTP handler for the given responder.
func NewHandler(responder Responder, opts ...Option) http.Handler {
	s := &Server{
		responder: responder,
		logger:    slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(enableCORS)

	r.Get("/health", s.health)
	r.Post("/query", s.query)
	r.Get("/records", s.listRecords)
	r.Get("/records/{id}", s.getRecord)

	return r
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

type queryRequest struct {
	Question string `json:"question"`
}

type queryResponse struct {
	ID         string `json:"id,omitempty"`
	Answer     string `json:"answer"`
	Emotion    string `json:"emotion"`
	RetryCount int    `json:"retry_count"`
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) query(w http.ResponseWriter, r *http.Request) {
	var req queryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Question == "" {
		writeError(w, http.StatusBadRequest, "question must not be empty")
		return
	}

	state, err := s.responder.Respond(r.Context(), req.Question)
	if err != nil {
		var capErr *domain.CapabilityError
		if errors.As(err, &capErr) {
			s.logger.Error("capability failure", "stage", capErr.Stage, "err", capErr.Err)
		} else {
			s.logger.Error("pipeline failure", "err", err)
		}
		writeError(w, http.StatusInternalServerError, "failed to process query")
		return
	}

	resp := queryResponse{
		Answer:     state.FinalOutput,
		Emotion:    state.Emotion,
		RetryCount: state.RetryCount,
	}

	if s.store != nil {
		record := &domain.Record{
			ID:         uuid.NewString(),
			Question:   req.Question,
			Answer:     state.FinalOutput,
			Emotion:    state.Emotion,
			RetryCount: state.RetryCount,
			Trace:      state.Trace,
			CreatedAt:  time.Now().UTC(),
		}
		if err := s.store.Save(r.Context(), record); err != nil {
			// Persistence is best effort; the answer still goes out.
			s.logger.Warn("failed to save record", "id", record.ID, "err", err)
		} else {
			resp.ID = record.ID
		}
	}

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) listRecords(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "record store not configured")
		return
	}

	ids, err := s.store.List(r.Context())
	if err != nil {
		s.logger.Error("failed to list records", "err", err)
		writeError(w, http.StatusInternalServerError, "failed to list records")
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"ids": ids})
}

func (s *Server) getRecord(w http.ResponseWriter, r *http.Request) {
	if s.store == nil {
		writeError(w, http.StatusNotFound, "record store not configured")
		return
	}

	id := chi.URLParam(r, "id")
	record, err := s.store.Load(r.Context(), id)
	if errors.Is(err, domain.ErrRecordNotFound) {
		writeError(w, http.StatusNotFound, "record not found")
		return
	}
	if err != nil {
		s.logger.Error("failed to load record", "id", id, "err", err)
		writeError(w, http.StatusInternalServerError, "failed to load record")
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
