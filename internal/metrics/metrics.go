// Package metrics records pipeline cycles as Prometheus metrics.
//
// # Metrics
//
//   - netarea_validation_cycles_total{outcome, kind}: one per cycle;
//     outcome is accepted/rejected, kind is the rejection kind or "none".
//   - netarea_integration_duration_seconds{method}: integrator run time
//     of accepted cycles; method is monte_carlo or riemann_sum.
//
// # Thread Safety
//
// All operations are thread-safe via Prometheus's internal locking.
package metrics

import (
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/netarea/pipeline"
)

// Namespace for all metrics
const metricsNamespace = "netarea"

var _ pipeline.Recorder = (*Recorder)(nil)

// Recorder implements pipeline.Recorder.
type Recorder struct {
	// CyclesTotal counts validation cycles.
	// Labels: outcome (accepted, rejected), kind (none, input_range, ...)
	CyclesTotal *prometheus.CounterVec

	// IntegrationSeconds measures integrator run time.
	// Labels: method (monte_carlo, riemann_sum)
	IntegrationSeconds *prometheus.HistogramVec
}

// New registers the metrics with reg and returns the recorder. Registering
// twice on the same registry panics, as promauto does.
func New(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		CyclesTotal: f.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: metricsNamespace,
				Name:      "validation_cycles_total",
				Help:      "Validation cycles by outcome and rejection kind",
			},
			[]string{"outcome", "kind"},
		),
		IntegrationSeconds: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: metricsNamespace,
				Name:      "integration_duration_seconds",
				Help:      "Integrator run time of accepted cycles in seconds",
				Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"method"},
		),
	}
}

// RecordCycle implements pipeline.Recorder.
func (r *Recorder) RecordCycle(outcome, kind string) {
	r.CyclesTotal.WithLabelValues(outcome, kind).Inc()
}

// RecordIntegration implements pipeline.Recorder.
func (r *Recorder) RecordIntegration(method string, elapsed time.Duration) {
	r.IntegrationSeconds.WithLabelValues(methodLabel(method)).Observe(elapsed.Seconds())
}

// methodLabel turns "Monte Carlo" into "monte_carlo".
func methodLabel(method string) string {
	return strings.ToLower(strings.Join(strings.Fields(method), "_"))
}

// WriteTextfile writes everything g gathers to path in the text exposition
// format, for node_exporter's textfile collector.
func WriteTextfile(g prometheus.Gatherer, path string) error {
	return prometheus.WriteToTextfile(path, g)
}
