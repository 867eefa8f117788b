package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/platinummonkey/aminoapi/pkg/aminoacid"
	"github.com/platinummonkey/aminoapi/pkg/httputil"
	"github.com/platinummonkey/aminoapi/pkg/observability"
)

// Lookup resolves a name to a record, ignoring case
type Lookup interface {
	Find(name string) (aminoacid.AminoAcid, bool)
}

// Server represents our API server
type Server struct {
	lookup  Lookup
	router  *mux.Router
	handler http.Handler
	logger  *observability.Logger
	metrics *observability.Metrics
}

// ServerOption configures a Server
type ServerOption func(*Server)

// WithMetrics records per-route HTTP metrics
func WithMetrics(metrics *observability.Metrics) ServerOption {
	return func(s *Server) {
		s.metrics = metrics
	}
}

// NewServer creates a new API server
func NewServer(lookup Lookup, logger *observability.Logger, opts ...ServerOption) *Server {
	if logger == nil {
		logger = observability.NewLogger(observability.InfoLevel, nil)
	}

	s := &Server{
		lookup: lookup,
		router: mux.NewRouter(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}

	s.setupRoutes()
	s.handler = httputil.Chain(
		httputil.RequestIDMiddleware,
		httputil.LoggingMiddleware(s.logger),
		httputil.RecoveryMiddleware(s.logger),
	)(s.router)
	return s
}

// setupRoutes configures all the API routes
func (s *Server) setupRoutes() {
	if s.metrics != nil {
		s.router.Use(observability.HTTPMetricsMiddleware(s.metrics))
	}

	s.router.HandleFunc("/", s.root).Methods("GET")

	s.router.HandleFunc("/{name}", s.getAminoAcid).Methods("GET")
	s.router.HandleFunc("/{name}/name", s.getName).Methods("GET")
	s.router.HandleFunc("/{name}/short_name", s.getShortName).Methods("GET")
	s.router.HandleFunc("/{name}/abbreviation", s.getAbbreviation).Methods("GET")
	s.router.HandleFunc("/{name}/side_chain", s.getSideChain).Methods("GET")
	s.router.HandleFunc("/{name}/molecular_weight", s.getMolecularWeight).Methods("GET")
	s.router.HandleFunc("/{name}/codon", s.getCodon).Methods("GET")
	s.router.HandleFunc("/{name}/codon_count", s.getCodonCount).Methods("GET")

	// Router middleware skips these, so they are instrumented directly
	s.router.NotFoundHandler = s.instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteNotFoundError(w, http.StatusText(http.StatusNotFound))
	}))
	s.router.MethodNotAllowedHandler = s.instrument(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		httputil.WriteMethodNotAllowed(w)
	}))
}

func (s *Server) instrument(h http.Handler) http.Handler {
	if s.metrics == nil {
		return h
	}
	return observability.HTTPMetricsMiddleware(s.metrics)(h)
}

// Router exposes the underlying router, mainly for route inspection
func (s *Server) Router() *mux.Router {
	return s.router
}

// ServeHTTP implements http.Handler
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.handler.ServeHTTP(w, r)
}
