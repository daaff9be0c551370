package mapping

import "errors"

var (
	// ErrEmptyName indicates a dimension was declared without a name.
	ErrEmptyName = errors.New("mapping: dimension name must be non-empty")
	// ErrEmptyDimension indicates a dimension was declared with zero labels.
	ErrEmptyDimension = errors.New("mapping: dimension must declare at least one label")
	// ErrDuplicateLabel indicates the same label name appears twice in one
	// dimension. Letting the later declaration win would hide caller typos,
	// so the configuration is rejected outright.
	ErrDuplicateLabel = errors.New("mapping: duplicate label in dimension")
)
