package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/holodeck/frontend"
	"github.com/secmon-lab/holodeck/pkg/domain/model"
	"github.com/secmon-lab/holodeck/pkg/usecase"
	"github.com/secmon-lab/holodeck/pkg/utils/apperr"
)

// UseCases bundles the use cases served over HTTP
type UseCases struct {
	TopUtilizers usecase.TopUtilizers
	Explore      usecase.Explore
	Reports      usecase.Reports
	Workspace    usecase.WorkspaceReader
}

// Server represents the HTTP server
type Server struct {
	*http.Server
	router      chi.Router
	useCases    *UseCases
	validate    *validator.Validate
	frontendURL string
}

type serverOptions struct {
	frontendURL string
	frontendFS  http.FileSystem
	now         func() time.Time
}

// Option configures the server
type Option func(*serverOptions)

// WithFrontendURL sets the public URL of the SPA. It is the CORS origin of the API
// and the base of /go redirects.
func WithFrontendURL(url string) Option {
	return func(o *serverOptions) {
		o.frontendURL = url
	}
}

// WithFrontendFS serves the SPA from fs instead of the embedded build
func WithFrontendFS(fs http.FileSystem) Option {
	return func(o *serverOptions) {
		o.frontendFS = fs
	}
}

// WithClock replaces the clock used to check token expiry
func WithClock(now func() time.Time) Option {
	return func(o *serverOptions) {
		o.now = now
	}
}

// NewServer creates a new HTTP server
func NewServer(ctx context.Context, addr string, useCases *UseCases, opts ...Option) (*Server, error) {
	if useCases == nil {
		return nil, goerr.New("use cases are required")
	}

	options := &serverOptions{now: time.Now}
	for _, opt := range opts {
		opt(options)
	}

	router := chi.NewRouter()
	mw := NewMiddleware(options.frontendURL, options.now)

	s := &Server{
		Server: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 15 * time.Second,
		},
		router:      router,
		useCases:    useCases,
		validate:    validator.New(),
		frontendURL: options.frontendURL,
	}

	// Apply global middleware
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(LoggingMiddleware(ctx))
	router.Use(middleware.Recoverer)

	router.Get("/health", handleHealth)
	router.Get("/go", s.handleGo)

	router.Route("/api", func(r chi.Router) {
		r.Use(mw.CORS)
		r.Use(mw.RequireAuth)

		r.Route("/entity-sets", func(r chi.Router) {
			r.Get("/", s.handleSearchEntitySets)
			r.Get("/{esid}/neighbor-types", s.handleNeighborTypes)
			r.Post("/{esid}/search", s.handleSearchEntitySetData)
			r.Get("/{esid}/entities/{ekid}/neighbors", s.handleEntityNeighbors)
			r.Get("/{esid}/entities/{ekid}/timeline", s.handleTimeline)
		})

		r.Post("/top-utilizers", s.handleRunTopUtilizers)
		r.Post("/top-utilizers/options", s.handleTopUtilizerOptions)

		r.Route("/reports", func(r chi.Router) {
			r.Get("/", s.handleListReports)
			r.Get("/{id}", s.handleGetReport)
			r.Delete("/{id}", s.handleDeleteReport)
			r.Get("/{id}/dashboard", s.handleDashboard)
			r.Post("/{id}/resources", s.handleResources)
			r.Get("/{id}/export.csv", s.handleExportReport)
		})

		r.Post("/export", s.handleExport)
		r.Get("/workspace", s.handleWorkspace)
	})

	// Frontend routes (serve embedded or filesystem)
	fs := options.frontendFS
	if fs == nil {
		embedded, err := frontend.GetHTTPFS()
		if err != nil {
			ctxlog.From(ctx).Warn("Failed to get embedded frontend, using fallback",
				"error", err,
			)
		}
		fs = embedded
	}
	if fs != nil {
		spa, err := NewSPAHandler(fs)
		if err != nil {
			return nil, err
		}
		router.Handle("/*", spa)
	} else {
		router.Get("/*", handleFallbackHome)
	}

	return s, nil
}

// handleHealth handles health check requests
func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, r, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "holodeck",
	})
}

// handleFallbackHome handles the root path when frontend is not available
func handleFallbackHome(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(`<!DOCTYPE html>
<html>
<head>
    <title>Holodeck</title>
    <style>
        body {
            font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
            display: flex;
            justify-content: center;
            align-items: center;
            height: 100vh;
            margin: 0;
        }
    </style>
</head>
<body>
    <div>
        <h1>Holodeck</h1>
        <p>The frontend has not been built. The API is served under /api.</p>
    </div>
</body>
</html>`)); err != nil {
		ctxlog.From(r.Context()).Error("Failed to write fallback home page", "error", err)
	}
}

func writeJSON(w http.ResponseWriter, r *http.Request, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		ctxlog.From(r.Context()).Error("Failed to encode response", "error", err)
	}
}

const upstreamFailureMessage = "the data service could not complete the request, please try again"

// statusOf maps error tags to a response status
func statusOf(err error) int {
	switch {
	case goerr.HasTag(err, model.ErrTagAuth):
		return http.StatusUnauthorized
	case goerr.HasTag(err, model.ErrTagValidation):
		return http.StatusBadRequest
	case goerr.HasTag(err, model.ErrTagNotFound):
		return http.StatusNotFound
	case goerr.HasTag(err, model.ErrTagTransport):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// writeError writes an error response. Upstream and internal failures get a generic
// message; the details are only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusOf(err)

	message := err.Error()
	switch status {
	case http.StatusUnauthorized, http.StatusNotFound:
		ctxlog.From(r.Context()).Info("Request rejected", "status", status, "error", err)
	default:
		apperr.Handle(r.Context(), err)
	}
	switch status {
	case http.StatusBadGateway:
		message = upstreamFailureMessage
	case http.StatusInternalServerError:
		message = "internal server error"
	}

	writeJSON(w, r, status, map[string]string{
		"error": message,
	})
}

// decodeJSON reads the request body into v and validates it
func (s *Server) decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagValidation))
	}
	if err := s.validate.Struct(v); err != nil {
		var invalid *validator.InvalidValidationError
		if errors.As(err, &invalid) {
			return nil
		}
		return goerr.Wrap(err, "invalid request body", goerr.T(model.ErrTagValidation))
	}
	return nil
}
