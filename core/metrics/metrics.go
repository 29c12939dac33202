package metrics

import (
	"sync"
	"time"

	"foodfunk/core/matching"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	once     sync.Once
	registry *Registry
)

// Registry holds all table metrics.
type Registry struct {
	Lookups       *prometheus.CounterVec
	Reloads       *prometheus.CounterVec
	ReloadLatency *prometheus.HistogramVec
}

// Get returns the global metrics registry, creating it if necessary.
func Get() *Registry {
	once.Do(func() {
		registry = newRegistry()
	})
	return registry
}

func newRegistry() *Registry {
	r := &Registry{}

	r.Lookups = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodfunk",
		Name:      "table_lookups_total",
		Help:      "Subject resolutions by table and result",
	}, []string{"table", "result"})

	r.Reloads = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "foodfunk",
		Name:      "table_reloads_total",
		Help:      "Table reloads by table and outcome",
	}, []string{"table", "outcome"})

	r.ReloadLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "foodfunk",
		Name:      "table_reload_seconds",
		Help:      "Time spent loading, decoding and swapping a table",
		Buckets:   prometheus.DefBuckets,
	}, []string{"table"})

	return r
}

// ObserveLookup implements matching.Observer.
func (r *Registry) ObserveLookup(table string, kind matching.Kind) {
	r.Lookups.WithLabelValues(table, kind.String()).Inc()
}

// RecordReload implements source.Recorder.
func (r *Registry) RecordReload(table string, err error, elapsed time.Duration) {
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	r.Reloads.WithLabelValues(table, outcome).Inc()
	r.ReloadLatency.WithLabelValues(table).Observe(elapsed.Seconds())
}
