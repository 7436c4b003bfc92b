package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"rind-tiling/rind"

	"github.com/pelletier/go-toml/v2"
)

// Config holds every setting of the shell. Values come from DefaultConfig,
// then an optional TOML file, then command line flags.
type Config struct {
	Position float64 `toml:"position"`
	Samples  int     `toml:"samples"`
	Scale    float64 `toml:"scale"`

	Format string `toml:"format"`
	Out    string `toml:"out"`
	Width  int    `toml:"width"`
	Height int    `toml:"height"`

	SliderMin  float64 `toml:"slider_min"`
	SliderMax  float64 `toml:"slider_max"`
	SliderStep float64 `toml:"slider_step"`

	Jobs      int  `toml:"jobs"`
	Verbose   bool `toml:"verbose"`
	NoConfirm bool `toml:"no_confirm"`
}

func DefaultConfig() Config {
	return Config{
		Samples:    rind.DEFAULT_SAMPLES,
		Scale:      rind.DEFAULT_SCALE,
		Format:     "svg",
		Out:        "output",
		Width:      1000,
		Height:     500,
		SliderMin:  -1,
		SliderMax:  1,
		SliderStep: 0.01,
		Jobs:       4,
	}
}

func newFlagSet(cfg *Config, configPath *string) *flag.FlagSet {
	fs := flag.NewFlagSet("rind", flag.ContinueOnError)
	fs.StringVar(configPath, "config", *configPath, "TOML config file")
	fs.Float64Var(&cfg.Position, "pos", cfg.Position, "chord position")
	fs.IntVar(&cfg.Samples, "samples", cfg.Samples, "number of circle samples")
	fs.Float64Var(&cfg.Scale, "scale", cfg.Scale, "scale factor of the rind piece")
	fs.StringVar(&cfg.Format, "format", cfg.Format, "output format: svg or png")
	fs.StringVar(&cfg.Out, "out", cfg.Out, "output directory")
	fs.IntVar(&cfg.Width, "width", cfg.Width, "png width")
	fs.IntVar(&cfg.Height, "height", cfg.Height, "png height")
	fs.Float64Var(&cfg.SliderMin, "min", cfg.SliderMin, "slider minimum")
	fs.Float64Var(&cfg.SliderMax, "max", cfg.SliderMax, "slider maximum")
	fs.Float64Var(&cfg.SliderStep, "step", cfg.SliderStep, "slider resolution")
	fs.IntVar(&cfg.Jobs, "jobs", cfg.Jobs, "frames rendered in parallel by sweep")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "debug logging")
	fs.BoolVar(&cfg.NoConfirm, "no-confirm", cfg.NoConfirm, "exit the slider without waiting for ENTER")
	return fs
}

// LoadConfig builds the configuration from command line arguments. When
// -config names a file, the file is read first and the flags are applied
// on top of it.
func LoadConfig(args []string) (Config, error) {
	cfg := DefaultConfig()
	path := ""
	if err := newFlagSet(&cfg, &path).Parse(args); err != nil {
		return cfg, err
	}
	if path != "" {
		cfg = DefaultConfig()
		if err := ReadConfigFile(path, &cfg); err != nil {
			return cfg, err
		}
		if err := newFlagSet(&cfg, &path).Parse(args); err != nil {
			return cfg, err
		}
	}
	return cfg, cfg.Validate()
}

// ReadConfigFile decodes a TOML file into cfg. Keys missing from the file
// keep their current values; unknown keys are an error.
func ReadConfigFile(path string, cfg *Config) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening config: %w", err)
	}
	defer f.Close()

	if err := toml.NewDecoder(f).DisallowUnknownFields().Decode(cfg); err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	return nil
}

func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Format != "svg" && cfg.Format != "png" {
		errs = append(errs, fmt.Errorf("unknown format %q", cfg.Format))
	}
	if cfg.Samples < 3 {
		errs = append(errs, fmt.Errorf("samples must be at least 3, got %d", cfg.Samples))
	}
	if cfg.Scale <= 0 {
		errs = append(errs, fmt.Errorf("scale must be positive, got %g", cfg.Scale))
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		errs = append(errs, fmt.Errorf("invalid image size %dx%d", cfg.Width, cfg.Height))
	}
	if cfg.SliderStep <= 0 || cfg.SliderMax <= cfg.SliderMin {
		errs = append(errs, fmt.Errorf("invalid slider range [%g, %g] step %g", cfg.SliderMin, cfg.SliderMax, cfg.SliderStep))
	}
	if cfg.Jobs < 1 {
		errs = append(errs, fmt.Errorf("jobs must be at least 1, got %d", cfg.Jobs))
	}
	if cfg.Out == "" {
		errs = append(errs, errors.New("empty output directory"))
	}
	return errors.Join(errs...)
}
