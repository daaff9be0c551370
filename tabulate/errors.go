package tabulate

import "errors"

// Sentinels are wrapped with the offending name via fmt.Errorf("...: %w")
// at the boundary; match with errors.Is.
var (
	// ErrNilDataset indicates Aggregate was called with a nil dataset.
	ErrNilDataset = errors.New("tabulate: dataset is nil")
	// ErrUnknownColumn indicates a groupcol, dimension, value column or
	// aggregate key that does not exist in the dataset.
	ErrUnknownColumn = errors.New("tabulate: column not found in dataset")
	// ErrDuplicateDimension indicates the same key column was requested
	// twice (repeated groupcol or repeated dimension name).
	ErrDuplicateDimension = errors.New("tabulate: duplicate key column")
	// ErrNonNumeric indicates a value column holds a value that cannot be
	// aggregated numerically.
	ErrNonNumeric = errors.New("tabulate: value column is not numeric")
)
