package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/lo568los/HQEC-Tesseract/happy"
	"github.com/lo568los/HQEC-Tesseract/sweep"
)

// fileConfig mirrors sweep.Config for YAML with the variant as a string.
type fileConfig struct {
	Radii   []int   `yaml:"radii"`
	Variant string  `yaml:"variant"` // "zero-rate" (default) or "max-rate"
	PStart  float64 `yaml:"p_start"`
	PEnd    float64 `yaml:"p_end"`
	PStep   float64 `yaml:"p_step"`
	Trials  int     `yaml:"trials"`
	RX      float64 `yaml:"rx"`
	RZ      float64 `yaml:"rz"`
	Workers int     `yaml:"workers"`
	Seed    int64   `yaml:"seed"`
}

// sweepFlags are the per-command overrides layered on top of the config
// file (or defaults).
type sweepFlags struct {
	radii   []int
	maxRate bool
	pStart  float64
	pEnd    float64
	pStep   float64
	trials  int
	rx      float64
	rz      float64
	workers int
	seed    int64
}

// register binds the flag set to a command.
func (f *sweepFlags) register(cmd *cobra.Command) {
	d := sweep.DefaultConfig()
	cmd.Flags().IntSliceVar(&f.radii, "radii", d.Radii, "code radii to sweep")
	cmd.Flags().BoolVar(&f.maxRate, "max-rate", false, "use the max-rate construction")
	cmd.Flags().Float64Var(&f.pStart, "p-start", d.PStart, "first physical error rate")
	cmd.Flags().Float64Var(&f.pEnd, "p-end", d.PEnd, "last physical error rate")
	cmd.Flags().Float64Var(&f.pStep, "p-step", d.PStep, "grid step")
	cmd.Flags().IntVar(&f.trials, "trials", d.Trials, "Monte-Carlo trials per grid point")
	cmd.Flags().Float64Var(&f.rx, "rx", d.RX, "X share of the depolarizing channel")
	cmd.Flags().Float64Var(&f.rz, "rz", d.RZ, "Z share of the depolarizing channel")
	cmd.Flags().IntVar(&f.workers, "workers", d.Workers, "parallel trial workers per point")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "base RNG seed (0 = stable default)")
}

// buildConfig merges defaults, the optional YAML file and explicit flags,
// in that order of precedence (flags win when set).
func (f *sweepFlags) buildConfig(cmd *cobra.Command) (sweep.Config, error) {
	cfg := sweep.DefaultConfig()

	if configPath != "" {
		raw, err := os.ReadFile(configPath)
		if err != nil {
			return sweep.Config{}, fmt.Errorf("read config: %w", err)
		}
		var fc fileConfig
		if err = yaml.Unmarshal(raw, &fc); err != nil {
			return sweep.Config{}, fmt.Errorf("parse config: %w", err)
		}
		applyFile(&cfg, fc)
	}

	set := cmd.Flags().Changed
	if set("radii") {
		cfg.Radii = f.radii
	}
	if set("max-rate") {
		cfg.Variant = happy.ZeroRate
		if f.maxRate {
			cfg.Variant = happy.MaxRate
		}
	}
	if set("p-start") {
		cfg.PStart = f.pStart
	}
	if set("p-end") {
		cfg.PEnd = f.pEnd
	}
	if set("p-step") {
		cfg.PStep = f.pStep
	}
	if set("trials") {
		cfg.Trials = f.trials
	}
	if set("rx") {
		cfg.RX = f.rx
	}
	if set("rz") {
		cfg.RZ = f.rz
	}
	if set("workers") {
		cfg.Workers = f.workers
	}
	if set("seed") {
		cfg.Seed = f.seed
	}
	return cfg, cfg.Validate()
}

// applyFile copies the non-zero file fields onto the defaults.
func applyFile(cfg *sweep.Config, fc fileConfig) {
	if len(fc.Radii) > 0 {
		cfg.Radii = fc.Radii
	}
	if fc.Variant == "max-rate" {
		cfg.Variant = happy.MaxRate
	}
	if fc.PEnd > 0 || fc.PStart > 0 {
		cfg.PStart, cfg.PEnd = fc.PStart, fc.PEnd
	}
	if fc.PStep > 0 {
		cfg.PStep = fc.PStep
	}
	if fc.Trials > 0 {
		cfg.Trials = fc.Trials
	}
	if fc.RX > 0 || fc.RZ > 0 {
		cfg.RX, cfg.RZ = fc.RX, fc.RZ
	}
	if fc.Workers > 0 {
		cfg.Workers = fc.Workers
	}
	if fc.Seed != 0 {
		cfg.Seed = fc.Seed
	}
}
