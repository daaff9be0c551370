package tabulate

import (
	"github.com/nordstat/crosstab/dataset"
	"github.com/nordstat/crosstab/mapping"
)

// Indicator holds one dimension's per-label membership over a column:
// Match[i][r] reports whether row r belongs to label i (dimension label
// order). False is the no-match marker; a row may be true under several
// labels of the same dimension — that is what makes the classification
// non-exclusive.
type Indicator struct {
	Dim   mapping.Dimension
	Match [][]bool
}

// Expand builds the indicator series for one dimension over a raw column.
// Each label's spec is resolved independently (All() against this column,
// per call), so overlapping specs mark the same row under multiple labels
// and an empty spec yields an all-false series.
func Expand(column []dataset.Value, dim mapping.Dimension) Indicator {
	labels := dim.Labels()
	match := make([][]bool, len(labels))
	for i, l := range labels {
		set := l.Spec.Resolve(column)
		series := make([]bool, len(column))
		for r, v := range column {
			_, series[r] = set[v]
		}
		match[i] = series
	}

	return Indicator{Dim: dim, Match: match}
}

// matchedLabels appends to dst the label indices row r belongs to.
func (in Indicator) matchedLabels(dst []int, r int) []int {
	for i, series := range in.Match {
		if series[r] {
			dst = append(dst, i)
		}
	}

	return dst
}
