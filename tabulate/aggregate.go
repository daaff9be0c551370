package tabulate

import (
	"fmt"
	"strings"
	"sync"

	"github.com/nordstat/crosstab/dataset"
	"github.com/nordstat/crosstab/mapping"
)

// keySep joins label tuples into bucket keys. 0x1F (unit separator) cannot
// appear in sane label names.
const keySep = "\x1f"

// keyDim is one key column of the output: either a caller-supplied mapped
// dimension or an identity dimension synthesized from a plain groupcol.
type keyDim struct {
	col      string
	dim      mapping.Dimension
	identity bool
}

// bucket accumulates the contributions addressed by one label combination.
type bucket struct {
	keys []string
	vals [][]float64 // per value column, the contributing values
}

// Aggregate cross-tabulates ds over groupcols and dims, reducing valuecols
// with the per-column functions in aggs (missing entries default to Sum).
//
// Output key columns are groupcols in caller order, then the remaining
// dimensions in caller order. A groupcol whose name matches a dimension in
// dims uses that dimension; any other groupcol is grouped exclusively via an
// identity dimension (one label per observed value).
//
// Each record contributes once to every combination of labels it matches —
// independently under overlapping labels of one dimension, conjunctively
// across dimensions. A record that matches no label of some dimension
// contributes nothing. The result therefore equals, for every row, the
// aggregate over raw records satisfying all of that row's membership
// predicates simultaneously.
//
// Options: WithKeepEmpty materializes unobserved combinations with null
// cells (before totals); the grand-total row is on by default (see
// WithoutGrandTotal, WithTotalCode).
//
// Errors (all detected before any aggregation work):
//   - ErrNilDataset — ds is nil.
//   - ErrUnknownColumn — a groupcol, dimension name, value column or aggs
//     key is not a dataset column (aggs keys must also be valuecols).
//   - ErrDuplicateDimension — a key column is requested twice.
//   - mapping.ErrEmptyDimension / mapping.ErrEmptyName — a zero-value
//     Dimension slipped in.
//   - ErrNonNumeric — a value column holds a non-numeric value (detected
//     during column extraction, identifying the column and row).
//
// The input dataset is never mutated and no state survives the call.
func Aggregate(ds *dataset.Dataset, groupcols []string, dims []mapping.Dimension,
	valuecols []string, aggs Aggs, opts ...Option) (*Table, error) {
	if ds == nil {
		return nil, ErrNilDataset
	}
	o := gatherOptions(opts...)

	plan, err := buildPlan(ds, groupcols, dims)
	if err != nil {
		return nil, err
	}
	if err = checkValueCols(ds, valuecols, aggs); err != nil {
		return nil, err
	}

	keyCols := make([]string, len(plan))
	for i, kd := range plan {
		keyCols[i] = kd.col
	}
	tbl := &Table{KeyCols: keyCols, ValueCols: append([]string(nil), valuecols...)}
	if ds.Len() == 0 {
		return tbl, nil
	}

	// Synthesize identity dimensions now that the columns are validated.
	for i := range plan {
		if !plan[i].identity {
			continue
		}
		col, _ := ds.View(plan[i].col)
		plan[i].dim = mapping.Identity(plan[i].col, col)
	}

	values, err := extractValues(ds, valuecols)
	if err != nil {
		return nil, err
	}

	inds := expandAll(ds, plan)
	tbl.Rows = accumulate(plan, inds, values, valuecols, aggs, ds.Len())

	if o.keepEmpty {
		fillEmpty(tbl, vocabularies(tbl, plan, o))
	}
	if o.grandTotal {
		tbl.Rows = append(tbl.Rows, grandTotalRow(tbl, values, aggs, o))
	}

	return tbl, nil
}

// buildPlan validates names and lays out the output key columns.
func buildPlan(ds *dataset.Dataset, groupcols []string, dims []mapping.Dimension) ([]keyDim, error) {
	byName := make(map[string]mapping.Dimension, len(dims))
	for _, d := range dims {
		if d.Name() == "" {
			return nil, mapping.ErrEmptyName
		}
		if d.Len() == 0 {
			return nil, fmt.Errorf("dimension %q: %w", d.Name(), mapping.ErrEmptyDimension)
		}
		if !ds.Has(d.Name()) {
			return nil, fmt.Errorf("dimension %q: %w", d.Name(), ErrUnknownColumn)
		}
		if _, dup := byName[d.Name()]; dup {
			return nil, fmt.Errorf("dimension %q: %w", d.Name(), ErrDuplicateDimension)
		}
		byName[d.Name()] = d
	}

	plan := make([]keyDim, 0, len(groupcols)+len(dims))
	used := make(map[string]struct{}, len(groupcols)+len(dims))
	for _, c := range groupcols {
		if !ds.Has(c) {
			return nil, fmt.Errorf("groupcol %q: %w", c, ErrUnknownColumn)
		}
		if _, dup := used[c]; dup {
			return nil, fmt.Errorf("groupcol %q: %w", c, ErrDuplicateDimension)
		}
		used[c] = struct{}{}
		if d, ok := byName[c]; ok {
			plan = append(plan, keyDim{col: c, dim: d})
		} else {
			plan = append(plan, keyDim{col: c, identity: true})
		}
	}
	for _, d := range dims {
		if _, ok := used[d.Name()]; ok {
			continue
		}
		used[d.Name()] = struct{}{}
		plan = append(plan, keyDim{col: d.Name(), dim: d})
	}

	return plan, nil
}

// checkValueCols validates valuecols and aggs keys against the dataset.
func checkValueCols(ds *dataset.Dataset, valuecols []string, aggs Aggs) error {
	declared := make(map[string]struct{}, len(valuecols))
	for _, c := range valuecols {
		if !ds.Has(c) {
			return fmt.Errorf("value column %q: %w", c, ErrUnknownColumn)
		}
		declared[c] = struct{}{}
	}
	for c := range aggs {
		if _, ok := declared[c]; !ok {
			return fmt.Errorf("aggregate for column %q: %w", c, ErrUnknownColumn)
		}
	}

	return nil
}

// extractValues converts the value columns to float64 up front, so
// aggregate-function failures surface before accumulation starts.
func extractValues(ds *dataset.Dataset, valuecols []string) ([][]float64, error) {
	out := make([][]float64, len(valuecols))
	for j, c := range valuecols {
		col, _ := ds.View(c)
		fs := make([]float64, len(col))
		for i, v := range col {
			f, ok := toFloat(v)
			if !ok {
				return nil, fmt.Errorf("value column %q, row %d (%v): %w", c, i, v, ErrNonNumeric)
			}
			fs[i] = f
		}
		out[j] = fs
	}

	return out, nil
}

// expandAll builds every key column's indicator concurrently. Each goroutine
// writes a disjoint slot, so results are identical to the sequential order.
func expandAll(ds *dataset.Dataset, plan []keyDim) []Indicator {
	inds := make([]Indicator, len(plan))
	var wg sync.WaitGroup
	for i, kd := range plan {
		col, _ := ds.View(kd.col)
		wg.Add(1)
		go func(i int, col []dataset.Value, dim mapping.Dimension) {
			defer wg.Done()
			inds[i] = Expand(col, dim)
		}(i, col, kd.dim)
	}
	wg.Wait()

	return inds
}

// accumulate walks the records once, fanning each record out over the
// Cartesian product of its matched labels per dimension, and reduces the
// buckets in first-creation order.
func accumulate(plan []keyDim, inds []Indicator, values [][]float64,
	valuecols []string, aggs Aggs, n int) []Row {
	labelNames := make([][]string, len(plan))
	for i, kd := range plan {
		labels := kd.dim.Labels()
		labelNames[i] = make([]string, len(labels))
		for li, l := range labels {
			labelNames[i][li] = l.Name
		}
	}

	buckets := make(map[string]*bucket)
	var order []*bucket

	matched := make([][]int, len(plan))
	idx := make([]int, len(plan))
	var kb strings.Builder

	for r := 0; r < n; r++ {
		skip := false
		for di := range plan {
			matched[di] = inds[di].matchedLabels(matched[di][:0], r)
			if len(matched[di]) == 0 {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		// Odometer over one label choice per dimension.
		for di := range idx {
			idx[di] = 0
		}
		for {
			kb.Reset()
			for di := range plan {
				if di > 0 {
					kb.WriteString(keySep)
				}
				kb.WriteString(labelNames[di][matched[di][idx[di]]])
			}
			key := kb.String()

			b, ok := buckets[key]
			if !ok {
				b = &bucket{
					keys: make([]string, len(plan)),
					vals: make([][]float64, len(values)),
				}
				for di := range plan {
					b.keys[di] = labelNames[di][matched[di][idx[di]]]
				}
				buckets[key] = b
				order = append(order, b)
			}
			for j := range values {
				b.vals[j] = append(b.vals[j], values[j][r])
			}

			p := len(plan) - 1
			for p >= 0 {
				idx[p]++
				if idx[p] < len(matched[p]) {
					break
				}
				idx[p] = 0
				p--
			}
			if p < 0 {
				break
			}
		}
	}

	rows := make([]Row, len(order))
	for i, b := range order {
		cells := make([]Cell, len(valuecols))
		for j, c := range valuecols {
			cells[j] = Cell{Value: aggs.aggFor(c)(b.vals[j]), Valid: true}
		}
		rows[i] = Row{Keys: b.keys, Cells: cells}
	}

	return rows
}

// toFloat widens any numeric Value to float64.
func toFloat(v dataset.Value) (float64, bool) {
	switch x := v.(type) {
	case float64:
		return x, true
	case float32:
		return float64(x), true
	case int:
		return float64(x), true
	case int8:
		return float64(x), true
	case int16:
		return float64(x), true
	case int32:
		return float64(x), true
	case int64:
		return float64(x), true
	case uint:
		return float64(x), true
	case uint8:
		return float64(x), true
	case uint16:
		return float64(x), true
	case uint32:
		return float64(x), true
	case uint64:
		return float64(x), true
	default:
		return 0, false
	}
}
