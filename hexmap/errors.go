package hexmap

import "errors"

// Sentinel errors for hexmap operations.
var (
	// ErrKeyNotFound indicates a lookup or removal of an absent cell.
	ErrKeyNotFound = errors.New("hexmap: hex not present in map")
	// ErrEmptyMap indicates a bounds query on a map with no cells.
	ErrEmptyMap = errors.New("hexmap: map is empty")
	// ErrInvalidSize indicates a shape builder given a negative dimension.
	ErrInvalidSize = errors.New("hexmap: shape size must be non-negative")
	// ErrInvalidAxes indicates an axes selector outside the defined pairs.
	ErrInvalidAxes = errors.New("hexmap: invalid axes pair")
)
