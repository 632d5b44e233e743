package httpapi

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/aesthetic/pkg/history"
	"github.com/dmitrymomot/aesthetic/pkg/httpserver"
	"github.com/dmitrymomot/aesthetic/pkg/logger"
	"github.com/dmitrymomot/aesthetic/pkg/metrics"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// API serves a Generator over JSON.
type API struct {
	gen      *namegen.Generator
	history  *history.History
	metrics  *metrics.Collector
	defaults namegen.Params
	logger   *slog.Logger
	checks   []func(context.Context) error
}

// New builds an API for gen. Without WithHistory it keeps its own history of
// history.DefaultCapacity entries.
func New(gen *namegen.Generator, opts ...Option) *API {
	a := &API{
		gen:      gen,
		defaults: namegen.DefaultParams(),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.history == nil {
		a.history = history.New(history.DefaultCapacity)
	}
	if a.logger == nil {
		a.logger = logger.Discard()
	}
	a.logger = a.logger.With(logger.Component("httpapi"))
	return a
}

// History returns the list the API records generated names in.
func (a *API) History() *history.History { return a.history }

// Router returns the HTTP handler with every route mounted.
func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.Recoverer)
	r.Use(a.logRequests)

	r.Get("/healthz", httpserver.HealthCheckHandler(a.logger))
	r.Get("/readyz", httpserver.HealthCheckHandler(a.logger, a.readinessChecks()...))
	if a.metrics != nil {
		r.Method(http.MethodGet, "/metrics", a.metrics.Handler())
	}

	r.Route("/api", func(api chi.Router) {
		api.Route("/names", func(names chi.Router) {
			names.Post("/", a.generate)
			names.Get("/", a.listNames)
			names.Delete("/", a.clearNames)
			names.Get("/{id}", a.getName)
		})
		api.Get("/random", a.random)
		api.Post("/seed/reset", a.resetSeed)
		api.Get("/rules", a.rules)
	})

	return r
}

func (a *API) readinessChecks() []func(context.Context) error {
	corpus := func(context.Context) error { return a.gen.Corpus().Validate() }
	return append([]func(context.Context) error{corpus}, a.checks...)
}

func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.logger.InfoContext(r.Context(), "http request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", ww.Status()),
			logger.RequestID(RequestIDFromContext(r.Context())),
			logger.Duration(time.Since(start)),
		)
	})
}
