package qc

var (
	// CoverageLimit is the pct_covered_bases a sample must reach to pass QC.
	CoverageLimit = 95.0

	// OriginIndex is the position in the sample ID that encodes its origin.
	OriginIndex = 1
)

var SummaryTitle = []string{
	"origin",
	"n_fail_qc",
	"n_total_samples",
	"pct",
}
