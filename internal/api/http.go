// Package api serves unit evaluation, conversion and point-mass simulation over HTTP.
package api

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"dimensional/internal/config"
	"dimensional/internal/expr"
	"dimensional/internal/logger"
	"dimensional/units"
)

type Server struct {
	reg      *units.Registry
	eval     *expr.Evaluator
	sim      config.SimConfig
	validate *validator.Validate
	log      *logrus.Entry
	metrics  *metrics
	router   chi.Router
}

// NewServer wires the routes. A nil registry means units.Default().
func NewServer(reg *units.Registry, simCfg config.SimConfig) *Server {
	if reg == nil {
		reg = units.Default()
	}
	s := &Server{
		reg:      reg,
		eval:     expr.New(reg),
		sim:      simCfg,
		validate: validator.New(),
		log:      logger.New("api"),
		metrics:  newMetrics(prometheus.NewRegistry()),
		router:   chi.NewRouter(),
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() {
	r := s.router
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(s.traceMiddleware)
	r.Use(s.logMiddleware)
	r.Use(middleware.Recoverer)

	r.Get("/health", s.health)
	r.Get("/units", s.listUnits)
	r.Post("/evaluate", s.evaluate)
	r.Post("/convert", s.convert)
	r.Post("/simulate", s.simulate)

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.metrics.gatherer, promhttp.HandlerOpts{}))
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok\n"))
}

// writeJSON encodes v before touching the response, so an encoding failure
// becomes a 500 rather than an empty 200.
func writeJSON(w http.ResponseWriter, status int, v any) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		logger.New("api").WithError(err).Error("encode response")
		status = http.StatusInternalServerError
		buf.Reset()
		_ = json.NewEncoder(&buf).Encode(errorResponse{Error: http.StatusText(status)})
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(buf.Bytes())
}
