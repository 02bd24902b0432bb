package layout

import "math"

// Kind distinguishes the two preset orientations from custom matrices.
type Kind int

const (
	// KindPointy is the pointy-top preset ⬢.
	KindPointy Kind = iota
	// KindFlat is the flat-top preset ⬣.
	KindFlat
	// KindCustom is any caller-supplied matrix pair.
	KindCustom
)

// Orientation encodes how cube coordinates project onto pixel space: a
// forward 2×2 matrix (hex→pixel), its inverse (pixel→hex) and the start
// angle used when computing corner offsets. Orientation is an immutable
// value; build custom ones with NewOrientation.
type Orientation struct {
	f0, f1, f2, f3 float64 // forward matrix, row-major
	b0, b1, b2, b3 float64 // backward (inverse) matrix, row-major
	startAngle     float64 // in units of 60° (multiples of 1/6 turn)
	kind           Kind
}

var (
	sqrt3 = math.Sqrt(3)

	pointyOrientation = Orientation{
		f0: sqrt3, f1: sqrt3 / 2, f2: 0, f3: 3.0 / 2,
		b0: sqrt3 / 3, b1: -1.0 / 3, b2: 0, b3: 2.0 / 3,
		startAngle: 0.5,
		kind:       KindPointy,
	}

	flatOrientation = Orientation{
		f0: 3.0 / 2, f1: 0, f2: sqrt3 / 2, f3: sqrt3,
		b0: 2.0 / 3, b1: 0, b2: -1.0 / 3, b3: sqrt3 / 3,
		startAngle: 0,
		kind:       KindFlat,
	}
)

// Pointy returns the pointy-top orientation preset ⬢.
func Pointy() Orientation { return pointyOrientation }

// Flat returns the flat-top orientation preset ⬣.
func Flat() Orientation { return flatOrientation }

// degenerateEps bounds how close to zero a determinant may be before the
// forward matrix is treated as non-invertible.
const degenerateEps = 1e-12

// NewOrientation builds a custom orientation from the forward matrix
// (f0 f1 / f2 f3) and a start angle in units of 60°; the backward matrix
// is the computed 2×2 inverse. Custom orientations use pointy clock and
// compass semantics, and have no defined width/height/spacing.
// Returns ErrDegenerateOrientation when |det| < 1e-12.
// Complexity: O(1).
func NewOrientation(f0, f1, f2, f3, startAngle float64) (Orientation, error) {
	det := f0*f3 - f1*f2
	if math.Abs(det) < degenerateEps {
		return Orientation{}, ErrDegenerateOrientation
	}

	return Orientation{
		f0: f0, f1: f1, f2: f2, f3: f3,
		b0: f3 / det, b1: -f1 / det, b2: -f2 / det, b3: f0 / det,
		startAngle: startAngle,
		kind:       KindCustom,
	}, nil
}

// Kind reports whether the orientation is the pointy preset, the flat
// preset or a custom matrix pair.
func (o Orientation) Kind() Kind { return o.kind }

// StartAngle returns the corner start angle in units of 60°.
func (o Orientation) StartAngle() float64 { return o.startAngle }
