package httpapi

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/aesthetic/pkg/history"
	"github.com/dmitrymomot/aesthetic/pkg/metrics"
	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// Option configures the API.
type Option func(*API)

// WithHistory sets the list generated names are recorded in.
func WithHistory(h *history.History) Option {
	return func(a *API) {
		if h != nil {
			a.history = h
		}
	}
}

// WithMetrics mounts the collector on /metrics and counts request failures.
func WithMetrics(c *metrics.Collector) Option {
	return func(a *API) { a.metrics = c }
}

// WithDefaults sets the parameters used for fields a request leaves out.
func WithDefaults(p namegen.Params) Option {
	return func(a *API) { a.defaults = p }
}

// WithLogger sets the request logger.
func WithLogger(l *slog.Logger) Option {
	return func(a *API) {
		if l != nil {
			a.logger = l
		}
	}
}

// WithReadinessChecks adds checks served on /readyz.
func WithReadinessChecks(checks ...func(context.Context) error) Option {
	return func(a *API) { a.checks = append(a.checks, checks...) }
}
