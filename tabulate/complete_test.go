package tabulate_test

import (
	"testing"

	"github.com/nordstat/crosstab/dataset"
	"github.com/nordstat/crosstab/mapping"
	"github.com/nordstat/crosstab/tabulate"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestKeepEmpty_ObservedVocabulary: by default the product spans labels
// observed in the result, so a declared-but-unmatched label stays invisible.
func TestKeepEmpty_ObservedVocabulary(t *testing.T) {
	ds, err := dataset.FromColumns([]string{"c", "n"}, map[string][]dataset.Value{
		"c": {1, 2},
		"n": {1, 1},
	})
	require.NoError(t, err)

	dim := mapping.MustDimension("c",
		mapping.Label{Name: "A", Spec: mapping.In(1)},
		mapping.Label{Name: "B", Spec: mapping.In(2)},
		mapping.Label{Name: "C", Spec: mapping.In(9)}, // never matches
	)
	tbl, err := tabulate.Aggregate(ds, nil, []mapping.Dimension{dim}, []string{"n"}, nil,
		tabulate.WithKeepEmpty(), tabulate.WithoutGrandTotal())
	require.NoError(t, err)

	assert.Len(t, tbl.Rows, 2)
	assert.Empty(t, tbl.Where(map[string]string{"c": "C"}))
}

// TestKeepEmpty_DeclaredVocabulary: WithDeclaredVocabulary materializes the
// unmatched label with a null cell, in declaration order.
func TestKeepEmpty_DeclaredVocabulary(t *testing.T) {
	ds, err := dataset.FromColumns([]string{"c", "n"}, map[string][]dataset.Value{
		"c": {2, 1},
		"n": {1, 1},
	})
	require.NoError(t, err)

	dim := mapping.MustDimension("c",
		mapping.Label{Name: "A", Spec: mapping.In(1)},
		mapping.Label{Name: "B", Spec: mapping.In(2)},
		mapping.Label{Name: "C", Spec: mapping.In(9)},
	)
	tbl, err := tabulate.Aggregate(ds, nil, []mapping.Dimension{dim}, []string{"n"}, nil,
		tabulate.WithKeepEmpty(), tabulate.WithDeclaredVocabulary(),
		tabulate.WithoutGrandTotal())
	require.NoError(t, err)

	require.Len(t, tbl.Rows, 3)
	// Declared order wins over observation order (B was observed first).
	assert.Equal(t, "A", tbl.Rows[0].Keys[0])
	assert.Equal(t, "B", tbl.Rows[1].Keys[0])
	assert.Equal(t, "C", tbl.Rows[2].Keys[0])

	c, ok := tbl.CellFor(tbl.Rows[2], "n")
	require.True(t, ok)
	assert.False(t, c.Valid)
}

// TestKeepEmpty_TwoDimensions verifies the cross-product join and that
// filled cells keep their aggregates.
func TestKeepEmpty_TwoDimensions(t *testing.T) {
	ds, err := dataset.FromColumns([]string{"a", "b", "n"}, map[string][]dataset.Value{
		"a": {"x", "y"},
		"b": {"p", "q"},
		"n": {1, 1},
	})
	require.NoError(t, err)

	tbl, err := tabulate.Aggregate(ds, []string{"a", "b"}, nil, []string{"n"}, nil,
		tabulate.WithKeepEmpty(), tabulate.WithoutGrandTotal())
	require.NoError(t, err)

	// Observed: (x,p) and (y,q); the product adds (x,q) and (y,p) as nulls.
	require.Len(t, tbl.Rows, 4)

	filled := cellOf(t, tbl, tbl.Where(map[string]string{"a": "x", "b": "p"}), "n")
	assert.True(t, filled.Valid)
	assert.Equal(t, 1.0, filled.Value)

	hole := cellOf(t, tbl, tbl.Where(map[string]string{"a": "x", "b": "q"}), "n")
	assert.False(t, hole.Valid)
	assert.Equal(t, 0.0, hole.Value, "a null cell carries no number")
}

// TestKeepEmpty_TotalLabelExcludedFromProduct: the completion pass runs
// before the totals pass, so the total label never multiplies the product.
func TestKeepEmpty_TotalLabelExcludedFromProduct(t *testing.T) {
	ds, err := dataset.FromColumns([]string{"a", "b", "n"}, map[string][]dataset.Value{
		"a": {"x", "y"},
		"b": {"p", "q"},
		"n": {1, 1},
	})
	require.NoError(t, err)

	tbl, err := tabulate.Aggregate(ds, []string{"a", "b"}, nil, []string{"n"}, nil,
		tabulate.WithKeepEmpty())
	require.NoError(t, err)

	// 2x2 product plus exactly one grand-total row; no (Total, p) hybrids.
	require.Len(t, tbl.Rows, 5)
	assert.Len(t, tbl.Where(map[string]string{"a": "Total"}), 1)
	assert.Empty(t, tbl.Where(map[string]string{"a": "Total", "b": "p"}))
}
