// Command heatloss reads a digit grid and prints the least heat a crucible
// loses travelling from the top-left to the bottom-right block.
//
// Usage:
//
//	heatloss [-max-run N] [-min-run N] [-max-passes N] [-census] [-v] FILE
//
// FILE "-" reads standard input. Exit status is 0 when a route exists, 2 when
// none does, and 1 on any other error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/heatpath/costgrid"
	"github.com/katalvlaran/heatpath/momentum"
	"github.com/katalvlaran/heatpath/wavefront"
)

const (
	exitOK     = 0
	exitError  = 1
	exitNoPath = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("heatloss", flag.ContinueOnError)
	fs.SetOutput(stderr)
	def := momentum.DefaultRules()
	maxRun := fs.Int("max-run", def.MaxRun, "maximum consecutive moves in one direction")
	minRun := fs.Int("min-run", def.MinRun, "consecutive moves required before turning or stopping")
	maxPasses := fs.Int("max-passes", 0, "stop after this many relaxation passes (0 = no limit)")
	census := fs.Bool("census", false, "print the number of frontier states per block")
	verbose := fs.Bool("v", false, "debug logging to stderr")
	if err := fs.Parse(args); err != nil {
		return exitError
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(stderr, "usage: heatloss [flags] FILE|-")
		fs.PrintDefaults()
		return exitError
	}

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := load(fs.Arg(0), stdin)
	if err != nil {
		logger.Error("loading grid", slog.Any("err", err))
		return exitError
	}
	logger.Debug("grid loaded", slog.Int("rows", g.Rows()), slog.Int("cols", g.Cols()))

	e, err := wavefront.New(g,
		wavefront.WithRules(momentum.Rules{MaxRun: *maxRun, MinRun: *minRun}),
		wavefront.WithMaxPasses(*maxPasses),
		wavefront.WithLogger(logger),
	)
	if err != nil {
		logger.Error("configuring search", slog.Any("err", err))
		return exitError
	}
	res, err := e.Run()
	if err != nil {
		logger.Error("search failed", slog.Any("err", err))
		return exitError
	}
	if *census {
		fmt.Fprint(stdout, e.Frontier())
	}
	if err := res.Err(); err != nil {
		if errors.Is(err, wavefront.ErrNoPath) {
			fmt.Fprintln(stdout, "no path")
			logger.Debug("no route", slog.Any("err", err))
			return exitNoPath
		}
		logger.Error("search failed", slog.Any("err", err))
		return exitError
	}
	fmt.Fprintln(stdout, res.Cost)
	return exitOK
}

func load(name string, stdin io.Reader) (*costgrid.Grid[uint8], error) {
	if name == "-" {
		return costgrid.Parse(stdin)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return costgrid.Parse(f)
}
