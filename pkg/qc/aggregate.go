package qc

import (
	"fmt"
	"log/slog"
	"samplesReport/pkg/sample"

	"github.com/samber/lo"
)

// KeyExtractionError reports a sample ID too short to carry an origin.
type KeyExtractionError struct {
	Row      int
	SampleID string
}

func (e *KeyExtractionError) Error() string {
	if e.Row > 0 {
		return fmt.Sprintf("row %d: sample ID %q too short to derive origin", e.Row, e.SampleID)
	}
	return fmt.Sprintf("sample ID %q too short to derive origin", e.SampleID)
}

// Origin returns the character of sampleID at OriginIndex.
func Origin(sampleID string) (string, error) {
	runes := []rune(sampleID)
	if len(runes) <= OriginIndex {
		return "", &KeyExtractionError{SampleID: sampleID}
	}
	return string(runes[OriginIndex]), nil
}

// Options tunes the failure criterion.
type Options struct {
	// MinCoverage is the lowest pct_covered_bases that still passes.
	MinCoverage float64
}

// Failed reports whether a record fails QC: coverage strictly below
// minCoverage, or an explicit qc_pass of false.
func Failed(record *sample.Record, minCoverage float64) bool {
	return record.PctCoveredBases < minCoverage || !record.QCPass
}

// Aggregate tallies records per origin with the default CoverageLimit.
func Aggregate(records []*sample.Record) ([]*GroupSummary, error) {
	return AggregateWith(records, Options{MinCoverage: CoverageLimit})
}

// AggregateWith tallies records per origin. Groups are returned in order of
// first appearance and include origins without any failure.
func AggregateWith(records []*sample.Record, opts Options) ([]*GroupSummary, error) {
	var origins = make([]string, len(records))
	for i, record := range records {
		origin, err := Origin(record.SampleID)
		if err != nil {
			return nil, &KeyExtractionError{Row: record.Row, SampleID: record.SampleID}
		}
		origins[i] = origin
	}

	var (
		total = lo.CountValues(origins)
		fail  = make(map[string]int, len(total))
	)
	for i, record := range records {
		if Failed(record, opts.MinCoverage) {
			fail[origins[i]]++
		}
	}

	groups := lo.Map(lo.Uniq(origins), func(origin string, _ int) *GroupSummary {
		return newGroupSummary(origin, fail[origin], total[origin])
	})
	slog.Debug("Aggregate", "records", len(records), "groups", len(groups), "minCoverage", opts.MinCoverage)

	return groups, nil
}
