// samplesReport reports per-origin QC failure rates of a sample table and
// warns about origins whose failure rate exceeds a threshold.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"samplesReport/pkg/qc"
	"samplesReport/pkg/report"
	"samplesReport/pkg/sample"

	"github.com/liserjrqlxue/version"
	"github.com/spf13/pflag"
)

// exit codes
const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

func main() {
	version.LogVersion()
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the whole pipeline: config, load, aggregate, report.
// Flagged origins still exit 0.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseConfig(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	} else if err != nil {
		fmt.Fprintln(stderr, "samplesReport:", err)
		return exitUsage
	}

	var level = slog.LevelInfo
	if cfg.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	logger.Info("Launched samplesReport", "filename", cfg.Filename, "pct_failed", cfg.Threshold, "outfile", cfg.OutFile)

	records, err := sample.Load(cfg.Filename, sample.Options{Delimiter: cfg.Delimiter, IDColumn: cfg.IDColumn})
	if err != nil {
		logger.Error("Load failed", "err", err)
		return exitFatal
	}
	logger.Info("Loaded", "filename", cfg.Filename, "records", len(records))

	groups, err := qc.AggregateWith(records, qc.Options{MinCoverage: cfg.MinCoverage})
	if err != nil {
		logger.Error("Aggregate failed", "err", err)
		return exitFatal
	}

	rp := &report.Reporter{Out: stdout, Logger: logger, OutFile: cfg.OutFile}
	result, err := rp.Run(groups, cfg.Threshold)
	if err != nil {
		logger.Error("Report failed", "err", err)
		return exitFatal
	}
	if result.Written != "" {
		logger.Info("Done", "flagged", len(result.Flagged), "written", result.Written)
	} else {
		logger.Info("Done", "flagged", len(result.Flagged))
	}

	return exitOK
}
