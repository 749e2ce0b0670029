package config

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/born-ml/backprop/internal/nn"
)

// Dataset sources understood by the CLI.
const (
	DatasetBlobs = "blobs"
	DatasetXOR   = "xor"
	DatasetCSV   = "csv"
)

// Config captures the runtime knobs for a training run.
type Config struct {
	Dataset     string  `yaml:"dataset"`
	DataPath    string  `yaml:"data_path"`
	Samples     int     `yaml:"samples"`
	Noise       float64 `yaml:"noise"`
	Standardize bool    `yaml:"standardize"`

	Hidden    int     `yaml:"hidden"`
	Init      string  `yaml:"init"`
	InitScale float64 `yaml:"init_scale"`
	Seed      uint64  `yaml:"seed"`

	Epochs   int     `yaml:"epochs"`
	LR       float64 `yaml:"lr"`
	LogEvery int     `yaml:"log_every"`

	SweepLRs []float64 `yaml:"sweep_lrs"`
	Workers  int       `yaml:"workers"`
}

// Overrides captures CLI supplied values. A nil field leaves the config
// value alone, so zero values such as epochs 0 or seed 0 can be selected.
type Overrides struct {
	Dataset     *string
	DataPath    *string
	Samples     *int
	Noise       *float64
	Standardize *bool
	Hidden      *int
	Init        *string
	InitScale   *float64
	Seed        *uint64
	Epochs      *int
	LR          *float64
	LogEvery    *int
	Workers     *int
	SweepLRs    []float64
}

// Default returns the configuration used when no file is given: the
// canonical 2-3-1 network on separable blobs.
func Default() *Config {
	return &Config{
		Dataset:   DatasetBlobs,
		Samples:   200,
		Noise:     0.5,
		Hidden:    nn.Canonical.Hidden,
		Init:      nn.InitNormal.String(),
		InitScale: 1,
		Seed:      1,
		Epochs:    1000,
		LR:        0.5,
		LogEvery:  100,
		SweepLRs:  []float64{0.01, 0.05, 0.1, 0.5, 1, 2},
	}
}

// Load reads a YAML file on top of Default and validates the result.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	cfg, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Parse decodes YAML from r on top of Default. Unknown keys are rejected.
func Parse(r io.Reader) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// ApplyOverrides updates cfg using every override that is set.
func (c *Config) ApplyOverrides(o Overrides) {
	set(&c.Dataset, o.Dataset)
	set(&c.DataPath, o.DataPath)
	set(&c.Samples, o.Samples)
	set(&c.Noise, o.Noise)
	set(&c.Standardize, o.Standardize)
	set(&c.Hidden, o.Hidden)
	set(&c.Init, o.Init)
	set(&c.InitScale, o.InitScale)
	set(&c.Seed, o.Seed)
	set(&c.Epochs, o.Epochs)
	set(&c.LR, o.LR)
	set(&c.LogEvery, o.LogEvery)
	set(&c.Workers, o.Workers)
	if len(o.SweepLRs) > 0 {
		c.SweepLRs = append([]float64(nil), o.SweepLRs...)
	}
}

func set[T any](dst *T, v *T) {
	if v != nil {
		*dst = *v
	}
}

// Validate verifies the config is runnable.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	switch c.Dataset {
	case DatasetBlobs, DatasetXOR:
		if c.Samples <= 0 {
			return fmt.Errorf("samples must be > 0 (got %d)", c.Samples)
		}
		if c.Noise < 0 || math.IsNaN(c.Noise) || math.IsInf(c.Noise, 0) {
			return fmt.Errorf("noise must be a finite value >= 0 (got %v)", c.Noise)
		}
	case DatasetCSV:
		if c.DataPath == "" {
			return errors.New("data_path is required for the csv dataset")
		}
	default:
		return fmt.Errorf("unknown dataset %q", c.Dataset)
	}
	if c.Hidden <= 0 {
		return fmt.Errorf("hidden must be > 0 (got %d)", c.Hidden)
	}
	if _, err := nn.ParseInitScheme(c.Init); err != nil {
		return err
	}
	if c.InitScale < 0 || math.IsNaN(c.InitScale) || math.IsInf(c.InitScale, 0) {
		return fmt.Errorf("init_scale must be a finite value >= 0 (got %v)", c.InitScale)
	}
	if c.Epochs < 0 {
		return fmt.Errorf("epochs must be >= 0 (got %d)", c.Epochs)
	}
	if !validLR(c.LR) {
		return fmt.Errorf("lr must be > 0 (got %v)", c.LR)
	}
	for _, lr := range c.SweepLRs {
		if !validLR(lr) {
			return fmt.Errorf("sweep_lrs must be > 0 (got %v)", lr)
		}
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be >= 0 (got %d)", c.Workers)
	}
	if c.LogEvery <= 0 {
		return fmt.Errorf("log_every must be > 0 (got %d)", c.LogEvery)
	}
	return nil
}

// InitConfig returns the parameter initialisation settings. Call Validate first.
func (c *Config) InitConfig() nn.InitConfig {
	scheme, _ := nn.ParseInitScheme(c.Init)
	return nn.InitConfig{Scheme: scheme, Scale: c.InitScale, Seed: c.Seed}
}

// Dims returns the network widths for a dataset with in features.
func (c *Config) Dims(in int) nn.Dims {
	return nn.Dims{In: in, Hidden: c.Hidden}
}

func validLR(lr float64) bool {
	return lr > 0 && !math.IsInf(lr, 0)
}
