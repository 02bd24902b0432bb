package layout

import "errors"

// Sentinel errors for layout operations.
var (
	// ErrDegenerateOrientation indicates a custom forward matrix with no inverse.
	ErrDegenerateOrientation = errors.New("layout: orientation forward matrix is not invertible")
	// ErrInvalidCorner indicates a corner index outside 0..5.
	ErrInvalidCorner = errors.New("layout: corner index out of range")
	// ErrCustomOrientation indicates a dimension query on a custom orientation.
	ErrCustomOrientation = errors.New("layout: dimension not defined for custom orientations")
	// ErrInvalidHour indicates a clock hour outside 1..12.
	ErrInvalidHour = errors.New("layout: clock hour out of range")
	// ErrInvalidCompass indicates a compass point unknown for the orientation.
	ErrInvalidCompass = errors.New("layout: unknown compass point")
	// ErrNoDefaultLayout indicates use of the default-layout conveniences before SetDefault.
	ErrNoDefaultLayout = errors.New("layout: no default layout configured")
)
