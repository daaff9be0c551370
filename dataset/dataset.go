package dataset

import "fmt"

// Value is a single cell. Values must be comparable (they serve as map keys
// for membership sets and grouping); slices, maps and funcs are not valid.
type Value = any

// Record is one row, keyed by column name.
type Record map[string]Value

// Dataset is an immutable collection of equally sized named columns.
//
// The zero value is not usable; construct with New or FromColumns.
type Dataset struct {
	cols []string
	data map[string][]Value
	n    int
}

// New builds a Dataset from row-oriented records. Column order follows the
// columns argument. Every record must carry a value for every declared
// column (ErrMissingField otherwise).
func New(columns []string, records []Record) (*Dataset, error) {
	d, err := empty(columns)
	if err != nil {
		return nil, err
	}
	d.n = len(records)
	for _, c := range d.cols {
		col := make([]Value, len(records))
		for i, r := range records {
			v, ok := r[c]
			if !ok {
				return nil, fmt.Errorf("column %q, record %d: %w", c, i, ErrMissingField)
			}
			col[i] = v
		}
		d.data[c] = col
	}

	return d, nil
}

// FromColumns builds a Dataset from column-oriented data. Column order
// follows the columns argument; every declared column must be present in
// data and all columns must have equal length.
func FromColumns(columns []string, data map[string][]Value) (*Dataset, error) {
	d, err := empty(columns)
	if err != nil {
		return nil, err
	}
	d.n = -1
	for _, c := range d.cols {
		src, ok := data[c]
		if !ok {
			return nil, fmt.Errorf("column %q: %w", c, ErrUnknownColumn)
		}
		if d.n == -1 {
			d.n = len(src)
		} else if len(src) != d.n {
			return nil, fmt.Errorf("column %q has %d values, want %d: %w", c, len(src), d.n, ErrRagged)
		}
		col := make([]Value, len(src))
		copy(col, src)
		d.data[c] = col
	}

	return d, nil
}

// empty validates column names and allocates the shell.
func empty(columns []string) (*Dataset, error) {
	if len(columns) == 0 {
		return nil, ErrNoColumns
	}
	d := &Dataset{
		cols: make([]string, len(columns)),
		data: make(map[string][]Value, len(columns)),
	}
	copy(d.cols, columns)
	seen := make(map[string]struct{}, len(columns))
	for _, c := range d.cols {
		if _, dup := seen[c]; dup {
			return nil, fmt.Errorf("column %q: %w", c, ErrDuplicateColumn)
		}
		seen[c] = struct{}{}
	}

	return d, nil
}

// Len reports the number of rows.
func (d *Dataset) Len() int { return d.n }

// Columns returns the column names in declaration order (copy).
func (d *Dataset) Columns() []string {
	out := make([]string, len(d.cols))
	copy(out, d.cols)

	return out
}

// Has reports whether a column exists.
func (d *Dataset) Has(column string) bool {
	_, ok := d.data[column]

	return ok
}

// Column returns a copy of one column's values.
func (d *Dataset) Column(column string) ([]Value, error) {
	src, err := d.View(column)
	if err != nil {
		return nil, err
	}
	out := make([]Value, len(src))
	copy(out, src)

	return out, nil
}

// View returns one column's backing slice without copying. The returned
// slice is shared with the Dataset and must be treated as read-only;
// mutating it breaks the immutability contract. Prefer Column unless the
// copy is measurable.
func (d *Dataset) View(column string) ([]Value, error) {
	src, ok := d.data[column]
	if !ok {
		return nil, fmt.Errorf("column %q: %w", column, ErrUnknownColumn)
	}

	return src, nil
}

// Distinct returns the column's distinct values in first-appearance order.
func (d *Dataset) Distinct(column string) ([]Value, error) {
	src, err := d.View(column)
	if err != nil {
		return nil, err
	}

	return DistinctValues(src), nil
}

// Record returns row i as a fresh Record. Panics if i is out of range, as
// slice indexing would.
func (d *Dataset) Record(i int) Record {
	r := make(Record, len(d.cols))
	for _, c := range d.cols {
		r[c] = d.data[c][i]
	}

	return r
}

// DistinctValues returns the distinct elements of values in first-appearance
// order. Shared helper for Distinct and for "ALL" membership resolution.
func DistinctValues(values []Value) []Value {
	seen := make(map[Value]struct{}, len(values))
	out := make([]Value, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}
