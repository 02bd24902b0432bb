package hex

import (
	"fmt"
	"math"
)

//-----------------------------------------------------------------------------
// Hex arithmetic
//-----------------------------------------------------------------------------

// Add returns h + other componentwise. The sum of two zero-sum triples is
// zero-sum, so the invariant holds automatically.
// Complexity: O(1).
func (h Hex) Add(other Hex) Hex {
	return Hex{Q: h.Q + other.Q, R: h.R + other.R}
}

// Sub returns h - other componentwise.
// Complexity: O(1).
func (h Hex) Sub(other Hex) Hex {
	return Hex{Q: h.Q - other.Q, R: h.R - other.R}
}

// Neg returns h with every coordinate negated, i.e. h reflected through
// Hexigo.
func (h Hex) Neg() Hex {
	return Hex{Q: -h.Q, R: -h.R}
}

// NegAround returns h reflected through center.
func (h Hex) NegAround(center Hex) Hex {
	return h.Sub(center).Neg().Add(center)
}

// Scale returns h multiplied by the scalar k componentwise.
// Complexity: O(1).
func (h Hex) Scale(k int) Hex {
	return Hex{Q: h.Q * k, R: h.R * k}
}

// Div returns h divided by the scalar d as a fractional hex.
// Returns ErrDivisionByZero if d == 0.
// Complexity: O(1).
func (h Hex) Div(d float64) (FracHex, error) {
	if d == 0 {
		return FracHex{}, ErrDivisionByZero
	}

	return FracHex{Q: float64(h.Q) / d, R: float64(h.R) / d}, nil
}

// DivFloor divides h by the scalar d and snaps the result back onto the
// lattice with Round. Returns ErrDivisionByZero if d == 0.
// Complexity: O(1).
func (h Hex) DivFloor(d float64) (Hex, error) {
	f, err := h.Div(d)
	if err != nil {
		return Hex{}, err
	}

	return f.Round(), nil
}

// Length returns the hex-grid distance from Hexigo to h:
// (|q| + |r| + |s|) / 2, the least number of adjacent steps needed to
// walk there. Always a non-negative integer.
func (h Hex) Length() int {
	return (absInt(h.Q) + absInt(h.R) + absInt(h.S())) / 2
}

// Distance returns the hex-grid distance between h and other,
// Length(h - other).
func (h Hex) Distance(other Hex) int {
	return h.Sub(other).Length()
}

// Less reports whether h is closer to Hexigo than other. Hex has no total
// order; this is the derived distance-from-origin key used for sorting.
func (h Hex) Less(other Hex) bool {
	return h.Length() < other.Length()
}

//-----------------------------------------------------------------------------
// FracHex arithmetic and lattice rounding
//-----------------------------------------------------------------------------

// Add returns f + other componentwise.
func (f FracHex) Add(other FracHex) FracHex {
	return FracHex{Q: f.Q + other.Q, R: f.R + other.R}
}

// Sub returns f - other componentwise.
func (f FracHex) Sub(other FracHex) FracHex {
	return FracHex{Q: f.Q - other.Q, R: f.R - other.R}
}

// Neg returns f with every coordinate negated.
func (f FracHex) Neg() FracHex {
	return FracHex{Q: -f.Q, R: -f.R}
}

// Scale returns f multiplied by the scalar k componentwise.
func (f FracHex) Scale(k float64) FracHex {
	return FracHex{Q: f.Q * k, R: f.R * k}
}

// Div returns f divided by the scalar d.
// Returns ErrDivisionByZero if d == 0.
func (f FracHex) Div(d float64) (FracHex, error) {
	if d == 0 {
		return FracHex{}, ErrDivisionByZero
	}

	return FracHex{Q: f.Q / d, R: f.R / d}, nil
}

// Length returns the fractional hex-grid distance from Hexigo to f.
func (f FracHex) Length() float64 {
	return (math.Abs(f.Q) + math.Abs(f.R) + math.Abs(f.S())) / 2
}

// Round snaps f to the nearest valid lattice Hex.
//
// Each axis is rounded to the nearest integer independently, then the axis
// that accumulated the largest rounding error is recomputed from the other
// two so that q+r+s = 0 holds exactly. Naive independent rounding breaks
// the invariant roughly a third of the time; this is the correct snap.
// Complexity: O(1).
func (f FracHex) Round() Hex {
	q := math.Round(f.Q)
	r := math.Round(f.R)
	s := math.Round(f.S())

	dq := math.Abs(q - f.Q)
	dr := math.Abs(r - f.R)
	ds := math.Abs(s - f.S())

	switch {
	case dq > dr && dq > ds:
		q = -r - s
	case dr > ds:
		r = -q - s
	default:
		// s carries the largest error; q and r stand as rounded.
	}

	return Hex{Q: int(q), R: int(r)}
}

// lerp interpolates from f toward other at parameter t.
// t is not validated here; the exported Hex.Lerp guards the [0,1] domain.
func (f FracHex) lerp(other FracHex, t float64) FracHex {
	return FracHex{
		Q: f.Q*(1-t) + other.Q*t,
		R: f.R*(1-t) + other.R*t,
	}
}

// Lerp linearly interpolates from h toward other at parameter t in [0, 1],
// returning the fractional hex at that fraction of the segment.
// Returns ErrLerpOutOfRange if t lies outside [0, 1].
// Complexity: O(1).
func (h Hex) Lerp(other Hex, t float64) (FracHex, error) {
	if t < 0 || t > 1 {
		return FracHex{}, fmt.Errorf("%w: t=%v", ErrLerpOutOfRange, t)
	}

	return h.Frac().lerp(other.Frac(), t), nil
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
