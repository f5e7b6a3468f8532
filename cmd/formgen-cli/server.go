package main

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/goliatone/go-form/pkg/definition"
	"github.com/goliatone/go-form/pkg/form"
	"github.com/goliatone/go-form/pkg/render"
	"github.com/goliatone/go-form/pkg/session"
)

const (
	sessionCookie      = "formgen_session"
	sessionIdleTimeout = 30 * time.Minute
	maxSessions        = 10000
)

// Submission outcomes recorded by the submissions counter.
const (
	outcomeValid     = "valid"
	outcomeInvalid   = "invalid"
	outcomeMalformed = "malformed"
)

type server struct {
	store    *definition.Store
	sessions *session.Keyed
	page     render.Renderer
	logger   *zap.Logger

	registry    *prometheus.Registry
	submissions *prometheus.CounterVec
	renders     *prometheus.CounterVec
}

func newServer(store *definition.Store, page render.Renderer, logger *zap.Logger) *server {
	if logger == nil {
		logger = zap.NewNop()
	}
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)

	return &server{
		store:    store,
		sessions: session.NewKeyed(
			session.WithIdleTimeout(sessionIdleTimeout),
			session.WithMaxSessions(maxSessions),
		),
		page:     page,
		logger:   logger,
		registry: registry,
		submissions: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formgen",
				Name:      "submissions_total",
				Help:      "Form submissions by form and outcome.",
			},
			[]string{"form", "outcome"},
		),
		renders: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "formgen",
				Name:      "renders_total",
				Help:      "Form pages rendered by form.",
			},
			[]string{"form"},
		),
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/forms", s.handleList)
	r.Get("/forms/{id}", s.handleShow)
	r.Post("/forms/{id}", s.handleSubmit)
	r.Handle("/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))
	return r
}

type formSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	URL       string `json:"url"`
	Protected bool   `json:"protected"`
}

func (s *server) handleList(w http.ResponseWriter, _ *http.Request) {
	ids := s.store.IDs()
	out := make([]formSummary, 0, len(ids))
	for _, id := range ids {
		entry, _ := s.store.Entry(id)
		out = append(out, formSummary{
			ID:        id,
			Name:      entry.Definition.Name(),
			URL:       formURL(id),
			Protected: entry.Protected,
		})
	}
	writeJSON(w, http.StatusOK, out)
}

// handleShow renders the form. GET forms submitted through their query
// string are validated instead.
func (s *server) handleShow(w http.ResponseWriter, r *http.Request) {
	entry, f, ok := s.open(w, r)
	if !ok {
		return
	}
	if f.Method == http.MethodGet && r.URL.RawQuery != "" {
		s.submit(w, r, entry, f)
		return
	}
	s.renderPage(w, r, entry, f, http.StatusOK)
}

func (s *server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	entry, f, ok := s.open(w, r)
	if !ok {
		return
	}
	s.submit(w, r, entry, f)
}

func (s *server) open(w http.ResponseWriter, r *http.Request) (definition.Entry, *form.Form, bool) {
	id := chi.URLParam(r, "id")
	entry, ok := s.store.Entry(id)
	if !ok {
		http.NotFound(w, r)
		return definition.Entry{}, nil, false
	}

	store := s.sessions.Session(s.sessionID(w, r))
	f, err := entry.New(store, form.WithAction(formURL(id)), form.WithLogger(s.logger))
	if err != nil {
		s.logger.Error("form construction failed", zap.String("form", id), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return definition.Entry{}, nil, false
	}
	return entry, f, true
}

type submissionResponse struct {
	Form   string              `json:"form"`
	Valid  bool                `json:"valid"`
	Data   map[string]any      `json:"data,omitempty"`
	Errors map[string][]string `json:"errors,omitempty"`
}

func (s *server) submit(w http.ResponseWriter, r *http.Request, entry definition.Entry, f *form.Form) {
	logger := s.logger.With(
		zap.String("form", entry.ID),
		zap.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := f.SetHTTPRequest(r); err != nil {
		s.submissions.WithLabelValues(entry.ID, outcomeMalformed).Inc()
		logger.Warn("malformed submission", zap.Error(err))
		http.Error(w, "malformed submission", http.StatusBadRequest)
		return
	}
	if r.MultipartForm != nil {
		defer r.MultipartForm.RemoveAll() //nolint:errcheck
	}

	valid, err := f.IsValid()
	if err != nil {
		logger.Error("submission binding failed", zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !valid {
		s.submissions.WithLabelValues(entry.ID, outcomeInvalid).Inc()
		logger.Info("submission rejected", zap.Int("errors", len(f.Errors)))
		if wantsJSON(r) {
			writeJSON(w, http.StatusUnprocessableEntity, submissionResponse{
				Form:   entry.ID,
				Errors: f.ErrorMessages(),
			})
			return
		}
		s.renderPage(w, r, entry, f, http.StatusUnprocessableEntity)
		return
	}

	s.submissions.WithLabelValues(entry.ID, outcomeValid).Inc()
	logger.Info("submission accepted")

	data := f.Data()
	if key := f.CSRFKey(); key != "" {
		delete(data, key)
	}
	writeJSON(w, http.StatusOK, submissionResponse{Form: entry.ID, Valid: true, Data: data})
}

func (s *server) renderPage(w http.ResponseWriter, r *http.Request, entry definition.Entry, f *form.Form, status int) {
	out, err := s.page.Render(r.Context(), f, render.RenderOptions{})
	if err != nil {
		s.logger.Error("render failed", zap.String("form", entry.ID), zap.Error(err))
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	s.renders.WithLabelValues(entry.ID).Inc()
	w.Header().Set("Content-Type", s.page.ContentType())
	w.WriteHeader(status)
	_, _ = w.Write(out)
}

// sessionID returns the session cookie value, issuing a new identifier when
// the request carries none.
func (s *server) sessionID(w http.ResponseWriter, r *http.Request) string {
	if cookie, err := r.Cookie(sessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	id := uuid.NewString()
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}

func formURL(id string) string {
	return "/forms/" + id
}

func wantsJSON(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "application/json")
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
