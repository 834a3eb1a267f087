package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwbudde/algo-xps/dsp/smooth"
	"github.com/cwbudde/algo-xps/measure/dparam"
)

func mapLookup(m map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse(mapLookup(nil))
	require.NoError(t, err)

	assert.Equal(t, dparam.DefaultConfig(), cfg.Pipeline)
	assert.Empty(t, cfg.DBPath)
	assert.Empty(t, cfg.PlotDir)
	assert.Empty(t, cfg.HTMLDir)
	assert.Zero(t, cfg.Workers)
}

func TestParseAll(t *testing.T) {
	cfg, err := Parse(mapLookup(map[string]string{
		EnvSmoothWidth: "3.5",
		EnvPrePasses:   "0",
		EnvDiffWidth:   "0.8",
		EnvPostPasses:  "3",
		EnvAlgorithm:   "Savitsky-Golay",
		EnvDBPath:      "/tmp/results.db",
		EnvPlotDir:     "plots",
		EnvHTMLDir:     "html",
		EnvWorkers:     "4",
	}))
	require.NoError(t, err)

	assert.Equal(t, dparam.Config{
		SmoothWidth: 3.5,
		PrePasses:   0,
		DiffWidth:   0.8,
		PostPasses:  3,
		Algorithm:   smooth.SavitzkyGolay,
	}, cfg.Pipeline)
	assert.Equal(t, "/tmp/results.db", cfg.DBPath)
	assert.Equal(t, "plots", cfg.PlotDir)
	assert.Equal(t, "html", cfg.HTMLDir)
	assert.Equal(t, 4, cfg.Workers)
}

func TestParseEmptyKeepsDefault(t *testing.T) {
	cfg, err := Parse(mapLookup(map[string]string{EnvSmoothWidth: "", EnvAlgorithm: ""}))
	require.NoError(t, err)
	assert.Equal(t, 7.0, cfg.Pipeline.SmoothWidth)
	assert.Equal(t, smooth.Gaussian, cfg.Pipeline.Algorithm)
}

func TestParseInvalid(t *testing.T) {
	tests := map[string]string{
		EnvSmoothWidth: "wide",
		EnvDiffWidth:   "-1",
		EnvPrePasses:   "-2",
		EnvPostPasses:  "1.5",
		EnvAlgorithm:   "median",
		EnvWorkers:     "many",
	}

	for key, value := range tests {
		t.Run(key, func(t *testing.T) {
			_, err := Parse(mapLookup(map[string]string{key: value}))
			require.Error(t, err)
			assert.Contains(t, err.Error(), key)
		})
	}
}

func TestParseUnknownAlgorithmWrapsSentinel(t *testing.T) {
	_, err := Parse(mapLookup(map[string]string{EnvAlgorithm: "median"}))
	assert.ErrorIs(t, err, smooth.ErrUnsupportedAlgorithm)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv(EnvPrePasses, "5")
	t.Setenv(EnvAlgorithm, "moving average")

	cfg, err := Load(os.LookupEnv, filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, 5, cfg.Pipeline.PrePasses)
	assert.Equal(t, smooth.MovingAverage, cfg.Pipeline.Algorithm)
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "# dparam settings\nDPARAM_ALGORITHM=wiener\nDPARAM_DIFF_WIDTH=2.5\nDPARAM_DB_PATH=results.db\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, smooth.Wiener, cfg.Pipeline.Algorithm)
	assert.Equal(t, 2.5, cfg.Pipeline.DiffWidth)
	assert.Equal(t, "results.db", cfg.DBPath)

	_, err = ReadFile(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
