// Package hex defines the core value types of the hexagonal coordinate
// algebra: the exact integer Hex and the floating-point FracHex.
package hex

import (
	"fmt"
	"math"
)

// Epsilon is the tolerance used when validating and comparing fractional
// cube coordinates. Fractional hexes whose coordinate sum deviates from
// zero by more than Epsilon are rejected as invalid.
const Epsilon = 1e-6

// Hex is an integer cube coordinate on a hexagonal lattice.
// Only q and r are stored; s is derived as -q-r, so every Hex satisfies
// the invariant q + r + s = 0 by construction.
// Hex is an immutable value: compare with ==, copy freely.
type Hex struct {
	Q, R int
}

// Hexigo is the origin hex, the cell with all coordinates zero.
var Hexigo = Hex{}

// New constructs a Hex from axial coordinates (q, r); s is implied.
// Complexity: O(1).
func New(q, r int) Hex {
	return Hex{Q: q, R: r}
}

// NewCube constructs a Hex from full cube coordinates.
// Returns ErrInvalidCoordinate if q+r+s != 0; the redundant s makes cube
// input safer than axial input at the cost of the extra check.
// Complexity: O(1).
func NewCube(q, r, s int) (Hex, error) {
	if q+r+s != 0 {
		return Hex{}, fmt.Errorf("%w: q=%d r=%d s=%d sum to %d", ErrInvalidCoordinate, q, r, s, q+r+s)
	}

	return Hex{Q: q, R: r}, nil
}

// S returns the derived third cube coordinate, -q-r.
func (h Hex) S() int { return -h.Q - h.R }

// Frac widens h to a FracHex with the same coordinates.
func (h Hex) Frac() FracHex {
	return FracHex{Q: float64(h.Q), R: float64(h.R)}
}

// String renders the full cube form, e.g. "Hex(q=1, r=2, s=-3)".
func (h Hex) String() string {
	return fmt.Sprintf("Hex(q=%d, r=%d, s=%d)", h.Q, h.R, h.S())
}

// FracHex is a fractional cube coordinate: the same algebra as Hex over
// float64, produced by interpolation and pixel→hex conversion.
// s is derived as -q-r, so the zero-sum invariant holds up to float error.
type FracHex struct {
	Q, R float64
}

// NewFrac constructs a FracHex from axial coordinates (q, r); s is implied.
// Complexity: O(1).
func NewFrac(q, r float64) FracHex {
	return FracHex{Q: q, R: r}
}

// NewFracCube constructs a FracHex from full cube coordinates.
// Returns ErrInvalidCoordinate if |q+r+s| > Epsilon.
// Complexity: O(1).
func NewFracCube(q, r, s float64) (FracHex, error) {
	if sum := q + r + s; math.Abs(sum) > Epsilon {
		return FracHex{}, fmt.Errorf("%w: q=%v r=%v s=%v sum to %v", ErrInvalidCoordinate, q, r, s, sum)
	}

	return FracHex{Q: q, R: r}, nil
}

// S returns the derived third cube coordinate, -q-r.
func (f FracHex) S() float64 { return -f.Q - f.R }

// Equal reports whether f and other match on every axis within Epsilon.
func (f FracHex) Equal(other FracHex) bool {
	return math.Abs(f.Q-other.Q) <= Epsilon && math.Abs(f.R-other.R) <= Epsilon
}

// String renders the full cube form, e.g. "FracHex(q=0.5, r=1, s=-1.5)".
func (f FracHex) String() string {
	return fmt.Sprintf("FracHex(q=%v, r=%v, s=%v)", f.Q, f.R, f.S())
}
