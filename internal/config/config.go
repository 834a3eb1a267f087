// Package config reads the dparam tool's settings from the environment,
// optionally seeded from a .env file.
package config

import (
	"fmt"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/cwbudde/algo-xps/dsp/smooth"
	"github.com/cwbudde/algo-xps/measure/dparam"
)

// Environment variable names.
const (
	EnvSmoothWidth = "DPARAM_SMOOTH_WIDTH"
	EnvPrePasses   = "DPARAM_PRE_PASSES"
	EnvDiffWidth   = "DPARAM_DIFF_WIDTH"
	EnvPostPasses  = "DPARAM_POST_PASSES"
	EnvAlgorithm   = "DPARAM_ALGORITHM"
	EnvDBPath      = "DPARAM_DB_PATH"
	EnvPlotDir     = "DPARAM_PLOT_DIR"
	EnvHTMLDir     = "DPARAM_HTML_DIR"
	EnvWorkers     = "DPARAM_WORKERS"
)

// Config holds the tool settings.
type Config struct {
	Pipeline dparam.Config
	// DBPath is the SQLite results database; empty keeps results in memory.
	DBPath string
	// PlotDir receives PNG plots when set.
	PlotDir string
	// HTMLDir receives interactive HTML plots when set.
	HTMLDir string
	// Workers bounds parallel runs; 0 means GOMAXPROCS.
	Workers int
}

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Load reads .env (or the given files) into the process environment,
// ignoring missing files, and then parses the environment.
func Load(lookup LookupFunc, files ...string) (Config, error) {
	_ = godotenv.Load(files...) // ignore missing file
	return Parse(lookup)
}

// ReadFile parses only the variables defined in the .env file at path,
// without touching the process environment.
func ReadFile(path string) (Config, error) {
	vars, err := godotenv.Read(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(func(key string) (string, bool) {
		v, ok := vars[key]
		return v, ok
	})
}

// Parse builds a Config from lookup, starting from the pipeline defaults.
// Unset or empty variables keep their defaults; malformed ones are errors.
func Parse(lookup LookupFunc) (Config, error) {
	cfg := Config{Pipeline: dparam.DefaultConfig()}

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		return v, ok && v != ""
	}

	if v, ok := get(EnvSmoothWidth); ok {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || !(w > 0) {
			return cfg, fmt.Errorf("invalid %s: %s", EnvSmoothWidth, v)
		}
		cfg.Pipeline.SmoothWidth = w
	}

	if v, ok := get(EnvDiffWidth); ok {
		w, err := strconv.ParseFloat(v, 64)
		if err != nil || !(w > 0) {
			return cfg, fmt.Errorf("invalid %s: %s", EnvDiffWidth, v)
		}
		cfg.Pipeline.DiffWidth = w
	}

	if v, ok := get(EnvPrePasses); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s: %s", EnvPrePasses, v)
		}
		cfg.Pipeline.PrePasses = n
	}

	if v, ok := get(EnvPostPasses); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s: %s", EnvPostPasses, v)
		}
		cfg.Pipeline.PostPasses = n
	}

	if v, ok := get(EnvAlgorithm); ok {
		alg, err := smooth.ParseAlgorithm(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid %s: %w", EnvAlgorithm, err)
		}
		cfg.Pipeline.Algorithm = alg
	}

	if v, ok := get(EnvWorkers); ok {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return cfg, fmt.Errorf("invalid %s: %s", EnvWorkers, v)
		}
		cfg.Workers = n
	}

	cfg.DBPath, _ = get(EnvDBPath)
	cfg.PlotDir, _ = get(EnvPlotDir)
	cfg.HTMLDir, _ = get(EnvHTMLDir)

	return cfg, nil
}
