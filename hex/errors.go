package hex

import "errors"

// Sentinel errors for hex operations.
var (
	// ErrInvalidCoordinate indicates cube coordinates that do not sum to zero.
	ErrInvalidCoordinate = errors.New("hex: cube coordinates must sum to zero")
	// ErrDivisionByZero indicates a scalar division by zero.
	ErrDivisionByZero = errors.New("hex: division by zero")
	// ErrInvalidDirection indicates a direction or diagonal index outside 0..5.
	ErrInvalidDirection = errors.New("hex: direction index out of range")
	// ErrInvalidRadius indicates a negative ring, range or spiral radius.
	ErrInvalidRadius = errors.New("hex: radius must be non-negative")
	// ErrLerpOutOfRange indicates a lerp parameter outside [0, 1].
	ErrLerpOutOfRange = errors.New("hex: lerp parameter must be within [0, 1]")
)
