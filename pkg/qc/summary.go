package qc

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// GroupSummary holds the QC tally of one origin.
type GroupSummary struct {
	Origin        string  `csv:"origin"`
	NFailQC       int     `csv:"n_fail_qc"`
	NTotalSamples int     `csv:"n_total_samples"`
	Pct           float64 `csv:"pct"`
}

func newGroupSummary(origin string, fail, total int) *GroupSummary {
	return &GroupSummary{
		Origin:        origin,
		NFailQC:       fail,
		NTotalSamples: total,
		Pct:           Percent(fail, total),
	}
}

// Percent returns fail/total*100, or 0 for an empty group.
func Percent(fail, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(fail) / float64(total) * 100
}

func (g *GroupSummary) String() string {
	return fmt.Sprintf("%s\t%d\t%d\t%.2f", g.Origin, g.NFailQC, g.NTotalSamples, g.Pct)
}

// Row returns the summary as a spreadsheet row in SummaryTitle order.
func (g *GroupSummary) Row() []any {
	return []any{g.Origin, g.NFailQC, g.NTotalSamples, g.Pct}
}

// Origins joins the origins of groups with ", ".
func Origins(groups []*GroupSummary) string {
	return strings.Join(
		lo.Map(groups, func(g *GroupSummary, _ int) string { return g.Origin }),
		", ",
	)
}

// Totals sums the failing and total sample counts over groups.
func Totals(groups []*GroupSummary) (fail, total int) {
	fail = lo.SumBy(groups, func(g *GroupSummary) int { return g.NFailQC })
	total = lo.SumBy(groups, func(g *GroupSummary) int { return g.NTotalSamples })
	return
}
