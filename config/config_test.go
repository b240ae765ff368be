package config_test

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/katalvlaran/tourlen/config"
	"github.com/stretchr/testify/require"
)

func TestDefault_IsValid(t *testing.T) {
	cfg := config.Default()
	require.NoError(t, cfg.Validate())
	require.Equal(t, config.AlgoBoth, cfg.Algorithm)
	require.Equal(t, 20, cfg.Exact.MaxPoints)
	require.Equal(t, "buckets", cfg.Heuristic.Strategy)
}

func TestParse_Full(t *testing.T) {
	cfg, err := config.Parse([]byte(`
input: cities.geojson
format: geojson
sort: true
algorithm: heuristic
exact:
  max-points: 16
  timeout: 1m30s
heuristic:
  strategy: rtree
  tour-out: out.geojson
log:
  level: debug
`))
	require.NoError(t, err)
	require.Equal(t, "cities.geojson", cfg.Input)
	require.Equal(t, config.FormatGeoJSON, cfg.Format)
	require.True(t, cfg.Sort)
	require.Equal(t, config.AlgoHeuristic, cfg.Algorithm)
	require.Equal(t, 16, cfg.Exact.MaxPoints)
	require.Equal(t, 90*time.Second, cfg.Exact.Timeout)
	require.Equal(t, "rtree", cfg.Heuristic.Strategy)
	require.Equal(t, "out.geojson", cfg.Heuristic.TourOut)

	lvl, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	require.Equal(t, slog.LevelDebug, lvl)
}

func TestParse_PartialKeepsDefaults(t *testing.T) {
	cfg, err := config.Parse([]byte("input: a.txt\n"))
	require.NoError(t, err)
	require.Equal(t, "a.txt", cfg.Input)
	require.Equal(t, config.FormatText, cfg.Format)
	require.Equal(t, 20, cfg.Exact.MaxPoints)

	cfg, err = config.Parse(nil)
	require.NoError(t, err)
	require.Equal(t, config.Default(), cfg)
}

func TestParse_Invalid(t *testing.T) {
	for name, doc := range map[string]string{
		"unknown key":     "colour: blue\n",
		"bad format":      "format: csv\n",
		"bad algorithm":   "algorithm: genetic\n",
		"max too small":   "exact:\n  max-points: 1\n",
		"max too large":   "exact:\n  max-points: 64\n",
		"negative budget": "exact:\n  timeout: -1s\n",
		"bad strategy":    "heuristic:\n  strategy: kdtree\n",
		"bad level":       "log:\n  level: chatty\n",
		"not yaml":        "input: [unterminated\n",
	} {
		_, err := config.Parse([]byte(doc))
		require.ErrorIs(t, err, config.ErrInvalidConfig, name)
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tourlen.yaml")
	require.NoError(t, os.WriteFile(path, []byte("algorithm: exact\n"), 0o600))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.AlgoExact, cfg.Algorithm)

	_, err = config.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
