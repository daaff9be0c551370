package tabulate

// grandTotalRow aggregates the entire input slice — every record, ignoring
// all label assignments — under the configured total labels. The row is
// appended by Aggregate as a set union: a total label colliding with an
// existing label leaves both rows in place.
func grandTotalRow(t *Table, values [][]float64, aggs Aggs, o options) Row {
	keys := make([]string, len(t.KeyCols))
	for i, c := range t.KeyCols {
		keys[i] = o.totalLabel(c)
	}
	cells := make([]Cell, len(t.ValueCols))
	for j, c := range t.ValueCols {
		cells[j] = Cell{Value: aggs.aggFor(c)(values[j]), Valid: true}
	}

	return Row{Keys: keys, Cells: cells}
}
