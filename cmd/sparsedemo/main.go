// SPDX-License-Identifier: MIT

// Command sparsedemo walks through every operation of the sparse package on
// a fixed 4×5 example: construction (inferred and explicit shape), copies,
// reads, writes on every insertion path, formatting, matrix-vector products,
// COO⇄CSR conversions, product identity checks, and a direct solve.
//
// Usage:
//
//	sparsedemo [-log-format text|json] [-log-level info] [-pad-rows 9] [-pad-cols 9]
//
// The process exits with status 1 if any check fails.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
)

// config holds the command-line configuration.
type config struct {
	logFormat string
	logLevel  string
	padRows   int
	padCols   int
}

// Minimum padded shape: the demo writes up to (9, 9).
const minPad = 9

func parseFlags(args []string, stderr io.Writer) (config, error) {
	var cfg config
	fs := flag.NewFlagSet("sparsedemo", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.logFormat, "log-format", "text", "log format: text or json")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	fs.IntVar(&cfg.padRows, "pad-rows", minPad, "rows of the explicitly shaped COO matrix")
	fs.IntVar(&cfg.padCols, "pad-cols", minPad, "columns of the explicitly shaped matrices")
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if cfg.padRows < minPad || cfg.padCols < minPad {
		return cfg, fmt.Errorf("pad-rows and pad-cols must be >= %d", minPad)
	}

	return cfg, nil
}

func main() {
	cfg, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lvl, err := parseLevel(cfg.logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	logger, err := newLogger(os.Stderr, cfg.logFormat, lvl)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if err = run(cfg, logger, os.Stdout); err != nil {
		logger.Error("demo failed", "err", err)
		os.Exit(1)
	}
	logger.Info("all checks passed")
}
