package main

import (
	"errors"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/born-ml/backprop/internal/gradcheck"
	"github.com/born-ml/backprop/internal/nn"
)

var errGradcheck = errors.New("gradient check failed")

func runGradcheck(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("gradcheck", stderr)
	step := fs.Float64("step", gradcheck.DefaultStep, "Central difference step")
	tol := fs.Float64("tol", gradcheck.DefaultTolerance, "Maximum relative error")
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg, err := f.load(fs)
	if err != nil {
		return err
	}
	logger := newRunLogger(stderr, "gradcheck")

	data, _, err := loadData(cfg)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	p, err := nn.Init(cfg.Dims(data.Features()), cfg.InitConfig())
	if err != nil {
		return err
	}
	logger.Printf("samples=%d params=%d step=%g tol=%g", data.Len(), p.Dims().NumParams(), *step, *tol)

	report, err := gradcheck.Check(data.X, data.Labels, p, *step)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "param\tindex\tanalytic\tnumeric\trel_err")
	for _, e := range report.Entries {
		fmt.Fprintf(tw, "%s\t%d\t%.8g\t%.8g\t%.3e\n", e.Name, e.Index, e.Analytic, e.Numeric, e.RelErr)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if !report.OK(*tol) {
		return fmt.Errorf("max rel err %.3e > %.3e: %w", report.MaxRelErr(), *tol, errGradcheck)
	}
	fmt.Fprintf(stdout, "ok max_rel_err=%.3e\n", report.MaxRelErr())
	return nil
}
