package main

import (
	"errors"
	"fmt"
	"io"
	"samplesReport/pkg/qc"
	"samplesReport/pkg/report"
	"samplesReport/pkg/sample"
	"unicode/utf8"

	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes the environment variable of every flag,
// e.g. SAMPLES_REPORT_PCT_FAILED.
const EnvPrefix = "SAMPLES_REPORT"

type config struct {
	Filename    string
	Threshold   float64
	OutFile     string
	Delimiter   rune
	IDColumn    string
	MinCoverage float64
	Verbose     bool
}

func newFlagSet(stderr io.Writer) *pflag.FlagSet {
	fs := pflag.NewFlagSet("samplesReport", pflag.ContinueOnError)
	fs.SetOutput(stderr)

	fs.StringP("filename", "f", "", "input sample table (csv, tsv or xlsx), required")
	fs.Float64P("pct_failed", "p", report.DefaultThreshold, "flag origins with more than this percentage of failed samples")
	fs.StringP("outfile", "o", "samples_summary.csv", "output for flagged origins (.csv, .tsv or .xlsx), empty to skip")
	fs.StringP("delimiter", "d", "", "input delimiter, detected when empty; \"tab\" for tab")
	fs.String("id_column", "", fmt.Sprintf("sample ID column, e.g. %q; first column when empty", sample.ColSample))
	fs.Float64("min_coverage", qc.CoverageLimit, "pct_covered_bases below this fails QC")
	fs.BoolP("verbose", "v", false, "debug logging")

	return fs
}

// parseConfig reads flags from args, falling back to SAMPLES_REPORT_* env vars.
func parseConfig(args []string, stderr io.Writer) (cfg config, err error) {
	fs := newFlagSet(stderr)
	if err = fs.Parse(args); err != nil {
		return
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	if err = v.BindPFlags(fs); err != nil {
		return
	}

	cfg = config{
		Filename: v.GetString("filename"),
		OutFile:  v.GetString("outfile"),
		IDColumn: v.GetString("id_column"),
		Verbose:  v.GetBool("verbose"),
	}

	if cfg.Filename == "" {
		return cfg, errors.New("--filename/-f is required")
	}
	if cfg.Threshold, err = getThreshold(v, "pct_failed"); err != nil {
		return cfg, fmt.Errorf("--pct_failed: %w", err)
	}
	if cfg.MinCoverage, err = getThreshold(v, "min_coverage"); err != nil {
		return cfg, fmt.Errorf("--min_coverage: %w", err)
	}
	if cfg.Delimiter, err = parseDelimiter(v.GetString("delimiter")); err != nil {
		return cfg, fmt.Errorf("--delimiter: %w", err)
	}

	return cfg, nil
}

// getThreshold reads key as a finite float. viper.GetFloat64 would turn an
// unparsable env value into 0.
func getThreshold(v *viper.Viper, key string) (float64, error) {
	value, err := cast.ToFloat64E(v.GetString(key))
	if err != nil {
		return 0, err
	}
	return value, report.ValidateThreshold(value)
}

func parseDelimiter(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("want a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		return 0, fmt.Errorf("invalid delimiter %q", s)
	}
	return r, nil
}
