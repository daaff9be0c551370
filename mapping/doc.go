// Package mapping defines classification dimensions for non-exclusive
// cross-tabulation: named, ordered sets of labels, where each label carries a
// membership spec over a raw column.
//
// A membership spec is one of:
//
//   - In(v1, v2, ...) — an explicit set of raw values;
//   - Range(lo, hi)   — the inclusive integer band lo..hi (a convenience for
//     age-band style classifications);
//   - All()           — every value observed in the column at resolution
//     time. "ALL" is resolved dynamically against the column passed to
//     Resolve, never cached.
//
// Labels within a dimension are independent predicates: their specs may
// overlap, so one raw value can belong to several labels at once. That is the
// defining idiom of this library, not an error. What *is* an error is
// declaring the same label name twice (ErrDuplicateLabel) or a dimension with
// no labels at all (ErrEmptyDimension) — both are rejected at construction
// so the engine never has to re-validate.
//
// Identity synthesizes the degenerate exclusive case: one label per observed
// raw value, used for plain grouping columns.
package mapping
