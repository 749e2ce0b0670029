// Package main provides the backprop CLI: train, inspect and sweep the
// two-layer sigmoid network.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
)

const version = "v0.1.0-dev"

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Printf("error: %v", err)
		}
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	err := dispatch(args, stdout, stderr)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	return err
}

func dispatch(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stdout)
		return nil
	}

	cmd, rest := args[0], args[1:]
	switch cmd {
	case "version":
		fmt.Fprintf(stdout, "backprop %s\n", version)
		return nil
	case "train":
		return runTrain(rest, stdout, stderr)
	case "gradcheck":
		return runGradcheck(rest, stdout, stderr)
	case "sweep":
		return runSweep(rest, stdout, stderr)
	case "grid":
		return runGrid(rest, stdout, stderr)
	case "help", "-h", "--help":
		usage(stdout)
		return nil
	default:
		fmt.Fprintf(stderr, "unknown command %q\n\n", cmd)
		usage(stderr)
		return errUsage
	}
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "backprop - two-layer sigmoid network trained by gradient descent")
	fmt.Fprintf(w, "Version: %s\n\n", version)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  version      Show version")
	fmt.Fprintln(w, "  train        Train and report loss and accuracy")
	fmt.Fprintln(w, "  gradcheck    Compare backprop gradients with finite differences")
	fmt.Fprintln(w, "  sweep        Train once per learning rate, concurrently")
	fmt.Fprintln(w, "  grid         Train, then write x,y,p predictions over a grid as CSV")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "Run 'backprop <command> -h' for the flags of a command.")
}
