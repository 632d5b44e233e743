package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/aesthetic/pkg/namegen"
)

// Collector records generation runs on its own registry.
type Collector struct {
	registry     *prometheus.Registry
	generations  *prometheus.CounterVec
	exhausted    prometheus.Counter
	poolSize     prometheus.Histogram
	ruleFiltered *prometheus.CounterVec
	errors       *prometheus.CounterVec
}

// New creates a Collector with its collectors registered.
func New() *Collector {
	c := &Collector{
		registry: prometheus.NewRegistry(),
		generations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aesthetic_generations_total",
			Help: "Generated names by outcome",
		}, []string{"result"}),
		exhausted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "aesthetic_pipeline_exhausted_total",
			Help: "Runs in which every candidate was filtered out and the full pool was restored",
		}),
		poolSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "aesthetic_candidate_pool_size",
			Help:    "Candidate pool size after filtering",
			Buckets: []float64{1, 2, 5, 10, 20, 50, 100, 500},
		}),
		ruleFiltered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aesthetic_rule_filtered_total",
			Help: "Candidates removed per rule",
		}, []string{"rule"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "aesthetic_generation_errors_total",
			Help: "Rejected generation requests by reason",
		}, []string{"reason"}),
	}
	c.registry.MustRegister(c.generations, c.exhausted, c.poolSize, c.ruleFiltered, c.errors)
	return c
}

// Observe records one successful run. It matches the namegen.WithObserver signature.
func (c *Collector) Observe(res namegen.Result) {
	outcome := "filtered"
	if res.Exhausted {
		outcome = "fallback"
		c.exhausted.Inc()
	}
	c.generations.WithLabelValues(outcome).Inc()
	c.poolSize.Observe(float64(res.PoolSize))
	for _, step := range res.Steps {
		if removed := step.Before - step.After; removed > 0 {
			c.ruleFiltered.WithLabelValues(step.Rule).Add(float64(removed))
		}
	}
}

// ObserveError records a rejected request.
func (c *Collector) ObserveError(reason string) {
	c.errors.WithLabelValues(reason).Inc()
}

// Registry exposes the underlying registry, mainly for tests.
func (c *Collector) Registry() *prometheus.Registry { return c.registry }

// Handler serves the registry in the Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
