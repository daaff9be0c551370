// Package tabulate is the cross-tabulation engine: it aggregates a dataset
// over grouping columns and non-exclusive classification dimensions into one
// result row per realized label combination.
//
// 🚀 How it works
//
//	Aggregate runs a fixed pipeline:
//	  1. Validate — every referenced column must exist, every dimension must
//	     be well-formed; nothing is computed on invalid configuration.
//	  2. Plan — grouping columns without an explicit dimension become
//	     identity dimensions (one label per observed value).
//	  3. Expand — per dimension, one boolean indicator series per label
//	     (overlaps allowed; see Expand). Dimensions expand concurrently.
//	  4. Reduce — each record contributes once to every combination of
//	     labels it matches across dimensions; contributions accumulate in
//	     buckets keyed by the full label tuple. This is the hash-map
//	     equivalent of indicator group-by, per-dimension unpivot and final
//	     regroup, and guarantees no cross-dimension double counting: a
//	     bucket's aggregate equals the aggregate of raw records that satisfy
//	     every dimension's membership predicate simultaneously.
//	  5. Post-passes — optional empty-combination fill (WithKeepEmpty) and
//	     grand-total row (on by default), in that order.
//
// ✨ Guarantees
//
//   - Deterministic: identical inputs yield identical tables; result rows
//     appear in bucket first-creation order (record order × label order).
//   - Pure: the input Dataset is never mutated; no state survives a call.
//   - Fail-fast: configuration errors surface before aggregation work, as
//     sentinel errors matched with errors.Is.
//
// Aggregate functions are plain reductions over the contributing value
// multiset (Sum, Count, Mean, Min, Max, or any caller-supplied AggFunc).
package tabulate
