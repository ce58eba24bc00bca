package metrics

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netarea/pipeline"
)

// newTestRecorder uses an isolated registry so tests never touch the
// global one.
func newTestRecorder(t *testing.T) (*Recorder, *prometheus.Registry) {
	t.Helper()
	reg := prometheus.NewRegistry()
	return New(reg), reg
}

func TestRecordCycle(t *testing.T) {
	r, _ := newTestRecorder(t)

	r.RecordCycle("accepted", "none")
	r.RecordCycle("rejected", "input_range")
	r.RecordCycle("rejected", "input_range")

	assert.Equal(t, 1.0, testutil.ToFloat64(r.CyclesTotal.WithLabelValues("accepted", "none")))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.CyclesTotal.WithLabelValues("rejected", "input_range")))
}

func TestRecordIntegration(t *testing.T) {
	r, reg := newTestRecorder(t)

	r.RecordIntegration("Monte Carlo", 20*time.Millisecond)
	r.RecordIntegration("Riemann Sum", time.Millisecond)

	n, err := testutil.GatherAndCount(reg, "netarea_integration_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 2, n, "one series per method")
}

func TestMethodLabel(t *testing.T) {
	assert.Equal(t, "monte_carlo", methodLabel("Monte Carlo"))
	assert.Equal(t, "riemann_sum", methodLabel("Riemann  Sum"))
}

// The recorder observes real pipeline cycles.
func TestRecorder_WithPipeline(t *testing.T) {
	r, _ := newTestRecorder(t)
	p := pipeline.New(pipeline.WithRecorder(r))
	ctx := context.Background()

	p.Run(ctx, pipeline.Input{Equation: "x", Method: "Riemann Sum", Endpoint: "Left", Lower: "0", Upper: "1", Points: "10"})
	p.Run(ctx, pipeline.Input{Equation: "tan(x)", Method: "Monte Carlo", Lower: "0", Upper: "1", Points: "10"})

	assert.Equal(t, 1.0, testutil.ToFloat64(r.CyclesTotal.WithLabelValues("accepted", "none")))
	assert.Equal(t, 1.0, testutil.ToFloat64(r.CyclesTotal.WithLabelValues("rejected", "unsupported_function")))
}

func TestWriteTextfile(t *testing.T) {
	r, reg := newTestRecorder(t)
	r.RecordCycle("accepted", "none")

	path := filepath.Join(t.TempDir(), "netarea.prom")
	require.NoError(t, WriteTextfile(reg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `netarea_validation_cycles_total{kind="none",outcome="accepted"} 1`)
}
