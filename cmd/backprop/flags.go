package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/born-ml/backprop/internal/config"
)

// runFlags are shared by every subcommand that trains.
type runFlags struct {
	configPath string
	dataset    string
	dataPath   string
	samples    int
	noise      float64
	scale      bool
	hidden     int
	init       string
	initScale  float64
	seed       uint64
	epochs     int
	lr         float64
	logEvery   int
	workers    int
	lrs        floatList
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *runFlags) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)

	f := &runFlags{}
	fs.StringVar(&f.configPath, "config", "", "Path to YAML config (defaults apply when empty)")
	fs.StringVar(&f.dataset, "dataset", "", "Dataset: blobs, xor or csv")
	fs.StringVar(&f.dataPath, "data", "", "CSV file with x1,...,xd,label rows")
	fs.IntVar(&f.samples, "samples", 0, "Number of generated examples")
	fs.Float64Var(&f.noise, "noise", 0, "Noise of generated examples")
	fs.BoolVar(&f.scale, "standardize", false, "Standardize features before training")
	fs.IntVar(&f.hidden, "hidden", 0, "Number of hidden units")
	fs.StringVar(&f.init, "init", "", "Initialisation: normal, xavier or zeros")
	fs.Float64Var(&f.initScale, "init-scale", 0, "Standard deviation for normal initialisation")
	fs.Uint64Var(&f.seed, "seed", 0, "PRNG seed")
	fs.IntVar(&f.epochs, "epochs", 0, "Number of full-batch updates")
	fs.Float64Var(&f.lr, "lr", 0, "Learning rate")
	fs.IntVar(&f.logEvery, "log-every", 0, "Log every N epochs")
	fs.IntVar(&f.workers, "workers", 0, "Concurrent sweep runs (0 = one per learning rate)")
	fs.Var(&f.lrs, "lrs", "Comma separated learning rates for sweep")
	return fs, f
}

// load builds the effective config: file or defaults, then the flags that
// were set on the command line.
func (f *runFlags) load(fs *flag.FlagSet) (*config.Config, error) {
	cfg := config.Default()
	if f.configPath != "" {
		var err error
		if cfg, err = config.Load(f.configPath); err != nil {
			return nil, err
		}
	}

	var o config.Overrides
	fs.Visit(func(fl *flag.Flag) {
		switch fl.Name {
		case "dataset":
			o.Dataset = &f.dataset
		case "data":
			o.DataPath = &f.dataPath
		case "samples":
			o.Samples = &f.samples
		case "noise":
			o.Noise = &f.noise
		case "standardize":
			o.Standardize = &f.scale
		case "hidden":
			o.Hidden = &f.hidden
		case "init":
			o.Init = &f.init
		case "init-scale":
			o.InitScale = &f.initScale
		case "seed":
			o.Seed = &f.seed
		case "epochs":
			o.Epochs = &f.epochs
		case "lr":
			o.LR = &f.lr
		case "log-every":
			o.LogEvery = &f.logEvery
		case "workers":
			o.Workers = &f.workers
		case "lrs":
			o.SweepLRs = f.lrs
		}
	})
	cfg.ApplyOverrides(o)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newRunLogger returns a logger whose lines carry a fresh run identifier.
func newRunLogger(w io.Writer, cmd string) *log.Logger {
	return log.New(w, fmt.Sprintf("run=%s cmd=%s ", uuid.NewString()[:8], cmd), log.LstdFlags)
}

// floatList is a flag.Value for comma separated floats.
type floatList []float64

func (l *floatList) String() string {
	parts := make([]string, len(*l))
	for i, v := range *l {
		parts[i] = strconv.FormatFloat(v, 'g', -1, 64)
	}
	return strings.Join(parts, ",")
}

func (l *floatList) Set(s string) error {
	var out floatList
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		v, err := strconv.ParseFloat(part, 64)
		if err != nil {
			return err
		}
		out = append(out, v)
	}
	*l = out
	return nil
}
