// Package dataset provides the immutable, named-column table consumed by the
// tabulate engine.
//
// A Dataset is a fixed set of equally sized columns addressed by name. Values
// are untyped (dataset.Value = any) but must be comparable: they are used as
// membership-set elements and grouping keys downstream. Construction copies
// the caller's data; accessors either copy (Column, Record, Distinct) or hand
// out an explicitly read-only view (View), so a Dataset never changes after
// New or FromColumns returns.
//
// Distinct returns values in first-appearance order, which downstream code
// relies on for deterministic identity dimensions and "ALL" resolution.
package dataset
