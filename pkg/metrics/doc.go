// Package metrics exposes Prometheus counters for name generation.
//
// A Collector owns a private registry so tests and multiple servers in one
// process do not collide on the global one. Wire it into a generator with
//
//	m := metrics.New()
//	g, _ := namegen.New(namegen.WithObserver(m.Observe))
//	mux.Handle("/metrics", m.Handler())
package metrics
