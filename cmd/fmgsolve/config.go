package main

import (
	"fmt"
	"math"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvmg/multigrid"
)

// runConfig is everything one solve needs. Priority: flags > env > file > defaults.
type runConfig struct {
	multigrid.Config `yaml:",inline"`

	// Modes are the wave numbers of the initial sine field.
	Modes []int `yaml:"modes"`
	// Tolerance stops the loop early when > 0.
	Tolerance float64 `yaml:"tolerance"`
	// Monitor is "field" or "residual".
	Monitor string `yaml:"monitor"`
}

func defaultRunConfig() runConfig {
	return runConfig{
		Config:  multigrid.DefaultConfig(),
		Modes:   []int{16, 40},
		Monitor: multigrid.MonitorField.String(),
	}
}

// loadRunConfig merges defaults, the optional YAML file and MG_* variables.
func loadRunConfig(path string) (runConfig, error) {
	cfg := defaultRunConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("load config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := loadRunConfigFromEnv(&cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadRunConfigFromEnv(cfg *runConfig) error {
	ints := []struct {
		name string
		dst  *int
	}{
		{"MG_N", &cfg.N},
		{"MG_N_LEVEL", &cfg.NLevel},
		{"MG_N_COARSE", &cfg.NCoarse},
		{"MG_V_ITER", &cfg.VIter},
		{"MG_N_CYCLE", &cfg.NCycle},
	}
	for _, e := range ints {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		i, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("env %s: %w", e.name, err)
		}
		*e.dst = i
	}

	floats := []struct {
		name string
		dst  *float64
	}{
		{"MG_OMEGA", &cfg.Omega},
		{"MG_TOLERANCE", &cfg.Tolerance},
	}
	for _, e := range floats {
		v, ok := os.LookupEnv(e.name)
		if !ok || v == "" {
			continue
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("env %s: %w", e.name, err)
		}
		*e.dst = f
	}

	if v := os.Getenv("MG_MONITOR"); v != "" {
		cfg.Monitor = v
	}

	return nil
}

// solverOptions translates the loop knobs into multigrid options.
func (c runConfig) solverOptions() ([]multigrid.Option, error) {
	var opts []multigrid.Option

	switch c.Monitor {
	case "", multigrid.MonitorField.String():
	case multigrid.MonitorResidual.String():
		opts = append(opts, multigrid.WithMonitor(multigrid.MonitorResidual))
	default:
		return nil, fmt.Errorf("unknown monitor %q (want field or residual)", c.Monitor)
	}

	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return nil, fmt.Errorf("tolerance must be finite and >= 0, got %g", c.Tolerance)
	}
	if c.Tolerance > 0 {
		opts = append(opts, multigrid.WithTolerance(c.Tolerance))
	}

	return opts, nil
}
