package config_test

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netarea/internal/config"
	"github.com/katalvlaran/netarea/pipeline"
)

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "netarea.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 1000.0, cfg.Engine.BoundLimit)
	assert.Equal(t, 100000, cfg.Engine.MaxPoints)
	assert.Equal(t, "lexical", cfg.Engine.Restriction)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_PartialOverride(t *testing.T) {
	path := writeFile(t, `
engine:
  max_points: 500
  restriction: semantic
log:
  level: debug
`)
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 500, cfg.Engine.MaxPoints)
	assert.Equal(t, "semantic", cfg.Engine.Restriction)
	assert.Equal(t, 1000.0, cfg.Engine.BoundLimit, "untouched keys keep defaults")
	assert.Equal(t, 1e-3, cfg.Engine.ContinuityStep)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestParse_Empty(t *testing.T) {
	cfg, err := config.Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, config.Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := config.Parse([]byte("engine:\n  bound_limt: 10\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bound_limt")
}

func TestParse_InvalidValues(t *testing.T) {
	tests := map[string]string{
		"zero limit":      "engine:\n  bound_limit: 0\n",
		"zero points":     "engine:\n  max_points: 0\n",
		"negative step":   "engine:\n  extrema_step: -1\n",
		"bad restriction": "engine:\n  restriction: strict\n",
		"bad level":       "log:\n  level: loud\n",
		"zero continuity": "engine:\n  continuity_step: 0\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := config.Parse([]byte(body))
			require.Error(t, err)
			var verrs validator.ValidationErrors
			assert.ErrorAs(t, err, &verrs)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestPipelineOptions_Applied(t *testing.T) {
	cfg, err := config.Parse([]byte("engine:\n  bound_limit: 10\n  max_points: 50\n"))
	require.NoError(t, err)

	p := pipeline.New(cfg.PipelineOptions()...)
	res := p.Run(context.Background(), pipeline.Input{
		Equation: "x", Method: "Monte Carlo", Lower: "0", Upper: "11", Points: "10",
	})
	assert.Equal(t, "Bounds must be in between [-10 to 10]", res.ErrorMessage)

	res = p.Run(context.Background(), pipeline.Input{
		Equation: "x", Method: "Monte Carlo", Lower: "0", Upper: "1", Points: "51",
	})
	assert.Equal(t, "Number of points must be between 1 and 50", res.ErrorMessage)
}
