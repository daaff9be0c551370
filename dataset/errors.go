package dataset

import "errors"

var (
	// ErrNoColumns indicates a dataset was constructed without any columns.
	ErrNoColumns = errors.New("dataset: at least one column is required")
	// ErrDuplicateColumn indicates the same column name was given twice.
	ErrDuplicateColumn = errors.New("dataset: duplicate column name")
	// ErrUnknownColumn indicates a referenced column does not exist.
	ErrUnknownColumn = errors.New("dataset: unknown column")
	// ErrRagged indicates columns of differing lengths were supplied.
	ErrRagged = errors.New("dataset: all columns must have the same length")
	// ErrMissingField indicates a record lacks a value for a declared column.
	ErrMissingField = errors.New("dataset: record is missing a declared column")
)
