// Package crosstab computes multi-dimensional frequency and aggregate
// cross-tabulations over tabular data, where classification dimensions may
// define overlapping categories: one raw value can satisfy several labels of
// the same dimension at once.
//
// 🚀 What is crosstab?
//
//	A small, pure-Go library for building published-table style
//	cross-tabulations from officially defined, non-exclusive statistical
//	classifications — the generalization of classic exclusive group-by
//	aggregation (SAS PROC MEANS/TABULATE style) to label sets that need
//	not partition the raw value domain:
//		• Membership-driven labels: each label is a set of raw values,
//		  an integer band, or the dynamic "all observed values" rule
//		• Overlap-safe counting: a record contributes independently to
//		  every label it matches, never double-counted within one label
//		• Grand-total rows and null-filled empty combinations on demand
//
// ✨ Why choose crosstab?
//
//   - Deterministic — identical inputs always yield identical tables
//   - Pure Go — no cgo, no hidden deps; inputs are never mutated
//   - Explicit errors — configuration mistakes are rejected before any
//     aggregation work, via sentinel errors and errors.Is
//
// Everything is organized under three subpackages:
//
//	dataset/  — immutable named-column table the engine consumes
//	mapping/  — dimensions, labels and membership specs (incl. "ALL")
//	tabulate/ — the aggregation engine and its result Table
//
// Quick sketch:
//
//	age := mapping.MustDimension("Alder",
//	    mapping.Label{Name: "15-24", Spec: mapping.Range(15, 24)},
//	    mapping.Label{Name: "15-21", Spec: mapping.Range(15, 21)}, // overlaps
//	    mapping.Label{Name: "Total", Spec: mapping.All()},
//	)
//	tbl, err := tabulate.Aggregate(ds, nil, []mapping.Dimension{age},
//	    []string{"n"}, tabulate.Aggs{"n": tabulate.Sum})
//
// See examples/ for a full labour-force style walkthrough.
//
//	go get github.com/nordstat/crosstab
package crosstab
