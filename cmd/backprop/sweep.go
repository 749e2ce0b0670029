package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"

	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/backprop/internal/nn"
	"github.com/born-ml/backprop/internal/train"
)

func runSweep(args []string, stdout, stderr io.Writer) error {
	fs, f := newFlagSet("sweep", stderr)
	if err := parseFlags(fs, args); err != nil {
		return err
	}
	cfg, err := f.load(fs)
	if err != nil {
		return err
	}
	logger := newRunLogger(stderr, "sweep")

	data, _, err := loadData(cfg)
	if err != nil {
		return fmt.Errorf("load data: %w", err)
	}
	initial, err := nn.Init(cfg.Dims(data.Features()), cfg.InitConfig())
	if err != nil {
		return err
	}
	logger.Printf("samples=%d epochs=%d lrs=%v workers=%d", data.Len(), cfg.Epochs, cfg.SweepLRs, cfg.Workers)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	results, err := train.Sweep(ctx, data.X, data.Labels, initial, cfg.Epochs, cfg.SweepLRs, cfg.Workers)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "lr\tfirst_loss\tfinal_loss\tbest_epoch\taccuracy")
	for _, r := range results {
		first, _ := r.History.First()
		_, acc, err := evaluate(data.X, data.Labels, r.Params)
		if err != nil {
			return err
		}
		fmt.Fprintf(tw, "%g\t%.6f\t%.6f\t%d\t%.4f\n", r.LR, first, r.FinalLoss(), bestEpoch(r.History), acc)
	}
	return tw.Flush()
}

// bestEpoch returns the epoch with the lowest recorded loss, or -1 for an
// empty history.
func bestEpoch(h *train.History) int {
	if h.Len() == 0 {
		return -1
	}
	return floats.MinIdx(h.Values())
}
