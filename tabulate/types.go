package tabulate

import (
	"math"
	"sort"
)

// Cell is one aggregated value. Valid=false marks a null aggregate — a
// combination materialized by WithKeepEmpty with no supporting records —
// which is deliberately distinct from a real aggregate of zero.
type Cell struct {
	Value float64
	Valid bool
}

// Row is one result row: label values for every key column, one Cell per
// value column, both aligned with the Table's KeyCols and ValueCols.
type Row struct {
	Keys  []string
	Cells []Cell
}

// Table is the tidy cross-tabulation result. KeyCols holds grouping columns
// first (caller order), then dimension names; ValueCols mirrors the
// valuecols argument. Key values are always label strings: mapped dimensions
// use their declared label names, identity dimensions the canonical string
// form of the raw value, total rows the configured total labels.
type Table struct {
	KeyCols   []string
	ValueCols []string
	Rows      []Row
}

// keyIndex returns the position of a key column, or -1.
func (t *Table) keyIndex(column string) int {
	for i, c := range t.KeyCols {
		if c == column {
			return i
		}
	}

	return -1
}

// Key returns row's value for one key column.
func (t *Table) Key(row Row, column string) (string, bool) {
	i := t.keyIndex(column)
	if i < 0 || i >= len(row.Keys) {
		return "", false
	}

	return row.Keys[i], true
}

// CellFor returns row's cell for one value column.
func (t *Table) CellFor(row Row, column string) (Cell, bool) {
	for i, c := range t.ValueCols {
		if c == column && i < len(row.Cells) {
			return row.Cells[i], true
		}
	}

	return Cell{}, false
}

// Where returns the rows whose key values match every entry of conds.
// Conditions on columns the table does not have match nothing.
func (t *Table) Where(conds map[string]string) []Row {
	var out []Row
	for _, r := range t.Rows {
		ok := true
		for col, want := range conds {
			got, found := t.Key(r, col)
			if !found || got != want {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, r)
		}
	}

	return out
}

// Sort orders rows lexicographically by their key tuple. Aggregate output is
// already deterministic (bucket creation order); Sort gives a presentation
// order independent of record order.
func (t *Table) Sort() {
	sort.Slice(t.Rows, func(i, j int) bool {
		a, b := t.Rows[i].Keys, t.Rows[j].Keys
		for k := range a {
			if k >= len(b) {
				return false
			}
			if a[k] != b[k] {
				return a[k] < b[k]
			}
		}

		return len(a) < len(b)
	})
}

// AggFunc reduces the multiset of values contributed to one bucket. The
// engine never calls an AggFunc with an empty slice.
type AggFunc func(values []float64) float64

// Aggs selects the aggregate function per value column. A nil map, or a
// missing or nil entry, defaults to Sum.
type Aggs map[string]AggFunc

// Sum totals the contributing values.
func Sum(values []float64) float64 {
	var s float64
	for _, v := range values {
		s += v
	}

	return s
}

// Count counts contributing records, ignoring their values.
func Count(values []float64) float64 { return float64(len(values)) }

// Mean averages the contributing values.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	return Sum(values) / float64(len(values))
}

// Min returns the smallest contributing value.
func Min(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v < m {
			m = v
		}
	}

	return m
}

// Max returns the largest contributing value.
func Max(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	m := values[0]
	for _, v := range values[1:] {
		if v > m {
			m = v
		}
	}

	return m
}

// aggFor resolves the effective function for one value column.
func (a Aggs) aggFor(column string) AggFunc {
	if a == nil {
		return Sum
	}
	if fn, ok := a[column]; ok && fn != nil {
		return fn
	}

	return Sum
}
