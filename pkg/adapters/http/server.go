package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/gridwalk"
	"github.com/aretw0/gridwalk/internal/compiler"
	"github.com/aretw0/gridwalk/internal/logging"
	"github.com/aretw0/gridwalk/pkg/domain"
	"github.com/aretw0/gridwalk/pkg/ports"
	"github.com/aretw0/gridwalk/pkg/runner"
	"github.com/getkin/kin-openapi/routers"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/oapi-codegen/runtime"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// maxBodyBytes caps POST /walk payloads.
const maxBodyBytes = 1 << 20

// WalkRequest is the JSON body of POST /walk.
type WalkRequest struct {
	Name  string     `json:"name,omitempty"`
	Rows  [][]string `json:"rows"`
	Style string     `json:"style,omitempty"`
}

// Server serves walks over HTTP.
type Server struct {
	engine  *gridwalk.Engine
	loader  ports.GridLoader
	logger  *slog.Logger
	metrics prometheus.Gatherer
	version string
	router  routers.Router
}

// Option defines a functional option for configuring the Server.
type Option func(*Server)

// WithEngine sets the engine used for walks (and therefore its hooks).
func WithEngine(engine *gridwalk.Engine) Option {
	return func(s *Server) {
		s.engine = engine
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// WithMetrics exposes the gatherer on GET /metrics.
func WithMetrics(g prometheus.Gatherer) Option {
	return func(s *Server) {
		s.metrics = g
	}
}

// WithVersion sets the value reported by GET /version.
func WithVersion(v string) Option {
	return func(s *Server) {
		s.version = v
	}
}

// NewHandler creates a new HTTP handler serving fixtures from loader.
func NewHandler(loader ports.GridLoader, opts ...Option) (http.Handler, error) {
	router, err := loadRouter()
	if err != nil {
		return nil, err
	}

	s := &Server{
		loader:  loader,
		version: gridwalk.Version,
		router:  router,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.logger == nil {
		s.logger = logging.NewNop()
	}
	if s.engine == nil {
		s.engine = gridwalk.New(gridwalk.WithLogger(s.logger))
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(limitBody)
	r.Use(s.validateRequests)

	r.Get("/healthz", s.Health)
	r.Get("/version", s.Version)
	r.Get("/openapi.yaml", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/yaml")
		w.Write(openAPISpec)
	})
	r.Get("/grids", s.ListGrids)
	r.Get("/grids/{name}", s.WalkFixture)
	r.Post("/walk", s.WalkGrid)
	if s.metrics != nil {
		r.Handle("/metrics", promhttp.HandlerFor(s.metrics, promhttp.HandlerOpts{}))
	}

	return enableCORS(r), nil
}

func enableCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")
		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// Health handles GET /healthz.
func (s *Server) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Version handles GET /version.
func (s *Server) Version(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": strings.TrimSpace(s.version)})
}

// ListGrids handles GET /grids.
func (s *Server) ListGrids(w http.ResponseWriter, r *http.Request) {
	names, err := s.loader.ListGrids(r.Context())
	if err != nil {
		s.logger.Error("list grids failed", "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string][]string{"grids": names})
}

// WalkFixture handles GET /grids/{name}.
func (s *Server) WalkFixture(w http.ResponseWriter, r *http.Request) {
	var name string
	err := runtime.BindStyledParameterWithOptions("simple", "name", chi.URLParam(r, "name"), &name,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Required: true})
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid format for parameter name: %w", err))
		return
	}

	style, err := bindStyle(r, "")
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	fx, err := s.loader.GetFixture(r.Context(), name)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, domain.ErrGridNotFound) {
			status = http.StatusNotFound
		}
		writeError(w, status, err)
		return
	}

	s.walk(w, r, style, fx)
}

// WalkGrid handles POST /walk. The body is either a JSON WalkRequest or a
// plain-text grid (one row per line, whitespace-separated tokens).
func (s *Server) WalkGrid(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, bodyErrorStatus(err), err)
		return
	}

	var req WalkRequest
	var grid domain.Grid
	if strings.HasPrefix(r.Header.Get("Content-Type"), "text/plain") {
		grid, err = compiler.NewParser().Parse(body)
	} else {
		if err = json.Unmarshal(body, &req); err == nil {
			grid, err = domain.NewGrid(req.Rows)
		}
	}
	if err != nil {
		s.logger.Warn("walk: invalid grid", "err", err)
		writeError(w, http.StatusBadRequest, err)
		return
	}

	style, err := bindStyle(r, req.Style)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	s.walk(w, r, style, domain.Fixture{Name: req.Name, Grid: grid})
}

func (s *Server) walk(w http.ResponseWriter, r *http.Request, style gridwalk.Style, fx domain.Fixture) {
	rn := runner.NewRunner(
		runner.WithEngine(s.engine),
		runner.WithLogger(s.logger),
		runner.WithStyle(style),
		runner.WithHandler(runner.NewTextHandler(io.Discard)),
	)
	res, err := rn.Walk(r.Context(), fx)
	if err != nil {
		s.logger.Error("walk failed", "grid", fx.Name, "err", err)
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

// bindStyle reads the optional style query parameter; it overrides fallback.
func bindStyle(r *http.Request, fallback string) (gridwalk.Style, error) {
	raw := fallback
	if err := runtime.BindQueryParameter("form", true, false, "style", r.URL.Query(), &raw); err != nil {
		return "", fmt.Errorf("invalid format for parameter style: %w", err)
	}
	return gridwalk.ParseStyle(raw)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
