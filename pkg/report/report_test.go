package report

import (
	"bytes"
	"log/slog"
	"math"
	"os"
	"path/filepath"
	"samplesReport/pkg/qc"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testGroups() []*qc.GroupSummary {
	return []*qc.GroupSummary{
		{Origin: "A", NFailQC: 1, NTotalSamples: 2, Pct: 50},
		{Origin: "B", NFailQC: 0, NTotalSamples: 2, Pct: 0},
	}
}

func newReporter(outFile string) (*Reporter, *bytes.Buffer, *bytes.Buffer) {
	var out, log bytes.Buffer
	return &Reporter{
		Out:     &out,
		Logger:  slog.New(slog.NewTextHandler(&log, nil)),
		OutFile: outFile,
	}, &out, &log
}

func TestFlagged(t *testing.T) {
	groups := []*qc.GroupSummary{
		{Origin: "A", Pct: 10},
		{Origin: "B", Pct: 10.000001},
		{Origin: "C", Pct: 0},
		{Origin: "D", Pct: 100},
	}

	assert.Equal(t, "B, D", qc.Origins(Flagged(groups, 10)))
	assert.Equal(t, "A, B, D", qc.Origins(Flagged(groups, 0)))
	assert.Equal(t, "A, B, C, D", qc.Origins(Flagged(groups, -1)))
	assert.Empty(t, Flagged(groups, 100))
}

func TestValidateThreshold(t *testing.T) {
	assert.NoError(t, ValidateThreshold(10))
	assert.NoError(t, ValidateThreshold(-5))
	assert.NoError(t, ValidateThreshold(250))
	assert.Error(t, ValidateThreshold(math.NaN()))
	assert.Error(t, ValidateThreshold(math.Inf(1)))
	assert.Error(t, ValidateThreshold(math.Inf(-1)))
}

func TestReporterFlagged(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "samples_summary.csv")
	rp, out, log := newReporter(outFile)

	result, err := rp.Run(testGroups(), 10)
	require.NoError(t, err)

	assert.Equal(t, "A", qc.Origins(result.Flagged))
	assert.Equal(t, outFile, result.Written)

	// the table lists every group, not only flagged ones
	assert.Contains(t, out.String(), "origin\tn_fail_qc\tn_total_samples\tpct")
	assert.Contains(t, out.String(), "A\t1\t2\t50.00")
	assert.Contains(t, out.String(), "B\t0\t2\t0.00")
	assert.Contains(t, out.String(), "total\t1\t4\t25.00")

	assert.Contains(t, log.String(), "level=WARN")
	assert.Contains(t, log.String(), "The following origins have more than 10% failed samples: A")

	data, err := os.ReadFile(outFile)
	require.NoError(t, err)
	assert.Equal(t, "origin,n_fail_qc,n_total_samples,pct\nA,1,2,50\n", string(data))
}

func TestReporterPassed(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "samples_summary.csv")
	rp, out, log := newReporter(outFile)

	result, err := rp.Run(testGroups(), 60)
	require.NoError(t, err)

	assert.Empty(t, result.Flagged)
	assert.Empty(t, result.Written)
	assert.Equal(t, "all groups passed QC (threshold 60%)\n", out.String())
	assert.NotContains(t, log.String(), "level=WARN")
	assert.NoFileExists(t, outFile)
}

func TestReporterThresholdBoundary(t *testing.T) {
	outFile := filepath.Join(t.TempDir(), "samples_summary.csv")
	rp, _, _ := newReporter(outFile)

	result, err := rp.Run(testGroups(), 50)
	require.NoError(t, err)
	assert.Empty(t, result.Flagged)
	assert.NoFileExists(t, outFile)

	result, err = rp.Run(testGroups(), 49.999)
	require.NoError(t, err)
	assert.Equal(t, "A", qc.Origins(result.Flagged))
	assert.FileExists(t, outFile)
}

func TestReporterNoOutFile(t *testing.T) {
	rp, out, log := newReporter("")

	result, err := rp.Run(testGroups(), 10)
	require.NoError(t, err)
	assert.Len(t, result.Flagged, 1)
	assert.Empty(t, result.Written)
	assert.Contains(t, out.String(), "A\t1\t2\t50.00")
	assert.Contains(t, log.String(), "failed samples: A")
}

func TestReporterWriteError(t *testing.T) {
	rp, _, _ := newReporter(filepath.Join(t.TempDir(), "missing", "samples_summary.csv"))

	result, err := rp.Run(testGroups(), 10)
	assert.Error(t, err)
	assert.Len(t, result.Flagged, 1)
	assert.Empty(t, result.Written)
}

func TestSummaryRoundTrip(t *testing.T) {
	flagged := []*qc.GroupSummary{
		{Origin: "A", NFailQC: 1, NTotalSamples: 3, Pct: qc.Percent(1, 3)},
		{Origin: "C", NFailQC: 7, NTotalSamples: 9, Pct: qc.Percent(7, 9)},
		{Origin: "D", NFailQC: 2, NTotalSamples: 2, Pct: 100},
	}

	for _, name := range []string{"flagged.csv", "flagged.tsv", "flagged.txt", "flagged.out"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, WriteSummary(path, flagged))

			got, err := ReadSummary(path)
			require.NoError(t, err)
			assert.Equal(t, flagged, got)
		})
	}
}

func TestSummaryXlsx(t *testing.T) {
	flagged := []*qc.GroupSummary{
		{Origin: "A", NFailQC: 1, NTotalSamples: 2, Pct: 50},
		{Origin: "C", NFailQC: 1, NTotalSamples: 3, Pct: qc.Percent(1, 3)},
	}

	path := filepath.Join(t.TempDir(), "flagged.xlsx")
	require.NoError(t, WriteSummary(path, flagged))

	got, err := ReadSummary(path)
	require.NoError(t, err)
	require.Len(t, got, 2)
	for i := range flagged {
		assert.Equal(t, flagged[i].Origin, got[i].Origin)
		assert.Equal(t, flagged[i].NFailQC, got[i].NFailQC)
		assert.Equal(t, flagged[i].NTotalSamples, got[i].NTotalSamples)
		assert.InDelta(t, flagged[i].Pct, got[i].Pct, 1e-9)
	}
}

func TestFormatPct(t *testing.T) {
	assert.Equal(t, "10", FormatPct(10))
	assert.Equal(t, "12.5", FormatPct(12.5))
	assert.Equal(t, "-1", FormatPct(-1))
}
