package report

import (
	"fmt"
	"io"
	"log/slog"
	"math"
	"samplesReport/pkg/qc"
	"strconv"

	"github.com/liserjrqlxue/goUtil/fmtUtil"
	"github.com/samber/lo"
)

// DefaultThreshold is the failure percentage above which an origin is flagged.
const DefaultThreshold = 10.0

// ValidateThreshold rejects thresholds that cannot be compared meaningfully.
// Negative values or values above 100 are accepted.
func ValidateThreshold(threshold float64) error {
	if math.IsNaN(threshold) || math.IsInf(threshold, 0) {
		return fmt.Errorf("threshold must be a finite number, got %v", threshold)
	}
	return nil
}

// Flagged returns the groups whose pct is strictly above threshold, in order.
func Flagged(groups []*qc.GroupSummary, threshold float64) []*qc.GroupSummary {
	return lo.Filter(groups, func(g *qc.GroupSummary, _ int) bool {
		return g.Pct > threshold
	})
}

// Reporter prints the QC summary and persists flagged origins.
type Reporter struct {
	// Out receives the summary table or the success line.
	Out io.Writer
	// Logger receives the threshold warning; slog.Default when nil.
	Logger *slog.Logger
	// OutFile receives the flagged rows; empty to skip writing.
	OutFile string
}

// Result is what a Reporter run decided.
type Result struct {
	Flagged []*qc.GroupSummary
	// Written is the path of the flagged-groups file, empty if none was written.
	Written string
}

// Run flags groups above threshold. Flagged origins are a warning, not an
// error; the returned error only reports a failure to write OutFile.
func (rp *Reporter) Run(groups []*qc.GroupSummary, threshold float64) (result Result, err error) {
	var logger = rp.Logger
	if logger == nil {
		logger = slog.Default()
	}

	result.Flagged = Flagged(groups, threshold)
	if len(result.Flagged) == 0 {
		fmtUtil.Fprintf(rp.Out, "all groups passed QC (threshold %s%%)\n", FormatPct(threshold))
		return
	}

	PrintSummary(rp.Out, groups)
	logger.Warn(
		fmt.Sprintf(
			"The following origins have more than %s%% failed samples: %s",
			FormatPct(threshold),
			qc.Origins(result.Flagged),
		),
		"flagged", len(result.Flagged),
		"groups", len(groups),
	)

	if rp.OutFile == "" {
		return
	}
	if err = WriteSummary(rp.OutFile, result.Flagged); err != nil {
		return result, fmt.Errorf("write flagged origins: %w", err)
	}
	result.Written = rp.OutFile
	logger.Info("WriteSummary", "path", rp.OutFile, "rows", len(result.Flagged))

	return
}

// PrintSummary writes every group as a tab separated table with a total line.
func PrintSummary(out io.Writer, groups []*qc.GroupSummary) {
	fmtUtil.FprintStringArray(out, qc.SummaryTitle, "\t")
	for _, g := range groups {
		fmtUtil.Fprintln(out, g)
	}
	fail, total := qc.Totals(groups)
	fmtUtil.Fprintf(out, "total\t%d\t%d\t%.2f\n", fail, total, qc.Percent(fail, total))
}

// FormatPct renders a percentage with the fewest digits that round-trip.
func FormatPct(pct float64) string {
	return strconv.FormatFloat(pct, 'f', -1, 64)
}
