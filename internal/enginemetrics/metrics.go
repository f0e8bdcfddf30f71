// Package enginemetrics provides optional Prometheus instrumentation
// for the engine orchestrator's per-tick bookkeeping, adapted from
// luxfi-consensus's metrics.Metrics wrapper around a caller-supplied
// prometheus.Registerer. It is purely observational: the physics loop
// never reads these counters back, so both a nil *Metrics and the
// registry-less value returned by New(nil) are valid, no-op defaults.
package enginemetrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the counters/histogram the engine orchestrator updates
// once per tick.
type Metrics struct {
	registry prometheus.Registerer

	ticksTotal      *prometheus.CounterVec
	collisionEvents prometheus.Counter
	mergeEvents     prometheus.Counter
	tickDuration    prometheus.Histogram
}

// New returns a Metrics instance registered against reg. If reg is nil,
// the returned Metrics records nothing and every Observe* call is a
// no-op.
func New(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		return &Metrics{}
	}

	m := &Metrics{
		registry: reg,
		ticksTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "nbody",
			Name:      "ticks_total",
			Help:      "Number of ticks applied, partitioned by solver mode used.",
		}, []string{"solver"}),
		collisionEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbody",
			Name:      "collision_events_total",
			Help:      "Number of colliding pairs resolved.",
		}),
		mergeEvents: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "nbody",
			Name:      "merge_events_total",
			Help:      "Number of inelastic merges performed.",
		}),
		tickDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "nbody",
			Name:      "tick_duration_seconds",
			Help:      "Wall-clock duration of a single orchestrator tick.",
		}),
	}

	// Registration errors (e.g. duplicate collector from a second
	// Engine sharing the same registry) are intentionally ignored: the
	// collectors still count locally, but only the set registered first
	// is exported through the registry; a duplicate set's observations
	// do not reach it.
	_ = m.registry.Register(m.ticksTotal)
	_ = m.registry.Register(m.collisionEvents)
	_ = m.registry.Register(m.mergeEvents)
	_ = m.registry.Register(m.tickDuration)

	return m
}

// ObserveTick records one completed tick: which solver mode ran, how
// many collision/merge events it produced, and how long it took.
func (m *Metrics) ObserveTick(solverMode string, collisionEvents, mergeEvents int, duration float64) {
	if m == nil || m.registry == nil {
		return
	}
	m.ticksTotal.WithLabelValues(solverMode).Inc()
	m.collisionEvents.Add(float64(collisionEvents))
	m.mergeEvents.Add(float64(mergeEvents))
	m.tickDuration.Observe(duration)
}
