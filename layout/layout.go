package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/hexlath/hex"
)

// Layout binds an orientation to a pixel size and origin. Size may be
// non-uniform to stretch hexes; Origin is the pixel at which Hexigo sits.
// Layout is immutable configuration: construct once, pass by value.
type Layout struct {
	orient Orientation
	size   Point
	origin Point
}

// New constructs a Layout with a possibly non-uniform pixel size.
func New(orient Orientation, size, origin Point) Layout {
	return Layout{orient: orient, size: size, origin: origin}
}

// NewUniform constructs a Layout whose hexes are regular: the same pixel
// size on both axes.
func NewUniform(orient Orientation, size float64, origin Point) Layout {
	return New(orient, Point{X: size, Y: size}, origin)
}

// Orientation returns the layout's orientation.
func (l Layout) Orientation() Orientation { return l.orient }

// Size returns the layout's pixel size.
func (l Layout) Size() Point { return l.size }

// Origin returns the pixel at which Hexigo is placed.
func (l Layout) Origin() Point { return l.origin }

//-----------------------------------------------------------------------------
// Hex ↔ pixel conversion
//-----------------------------------------------------------------------------

// ToPixel returns the pixel center of h: the forward matrix applied to
// (q, r), scaled by size and offset by origin.
// Complexity: O(1).
func (l Layout) ToPixel(h hex.Hex) Point {
	return l.ToPixelFrac(h.Frac())
}

// ToPixelFrac is ToPixel for fractional hexes, e.g. interpolated positions.
func (l Layout) ToPixelFrac(f hex.FracHex) Point {
	o := l.orient

	return Point{
		X: (o.f0*f.Q+o.f1*f.R)*l.size.X + l.origin.X,
		Y: (o.f2*f.Q+o.f3*f.R)*l.size.Y + l.origin.Y,
	}
}

// ToHex returns the fractional hex under the pixel p: the backward matrix
// applied to the de-offset, de-scaled point. Callers snap to a cell with
// hex.FracHex.Round.
// Complexity: O(1).
func (l Layout) ToHex(p Point) hex.FracHex {
	o := l.orient
	x := (p.X - l.origin.X) / l.size.X
	y := (p.Y - l.origin.Y) / l.size.Y

	return hex.NewFrac(o.b0*x+o.b1*y, o.b2*x+o.b3*y)
}

//-----------------------------------------------------------------------------
// Corners
//-----------------------------------------------------------------------------

// CornerOffset returns the offset from a hex center to its i-th corner
// (i in 0..5), derived from the orientation's start angle.
// Returns ErrInvalidCorner outside that range.
// Complexity: O(1).
func (l Layout) CornerOffset(i int) (Point, error) {
	if i < 0 || i > 5 {
		return Point{}, fmt.Errorf("%w: corner %d", ErrInvalidCorner, i)
	}

	angle := 2 * math.Pi * (l.orient.startAngle - float64(i)) / 6

	return Point{X: math.Cos(angle) * l.size.X, Y: math.Sin(angle) * l.size.Y}, nil
}

// PolygonCorners returns the six corner points of h in pixel space, in
// fixed angular order: the polygon outline of the cell.
// Complexity: O(1).
func (l Layout) PolygonCorners(h hex.Hex) [6]Point {
	return l.PolygonCornersScaled(h, 1)
}

// PolygonCornersScaled is PolygonCorners with the hexagon shrunk (or grown)
// around its center by factor, handy for drawing cell gaps.
func (l Layout) PolygonCornersScaled(h hex.Hex, factor float64) [6]Point {
	center := l.ToPixel(h)

	var corners [6]Point
	for i := 0; i < 6; i++ {
		off, _ := l.CornerOffset(i) // i is in range by construction
		corners[i] = center.Add(off.Scale(factor))
	}

	return corners
}

//-----------------------------------------------------------------------------
// Dimensions and spacings
//-----------------------------------------------------------------------------

// Width returns the pixel width of a single hex under the preset
// orientations. Returns ErrCustomOrientation for custom matrices.
func (l Layout) Width() (float64, error) {
	switch l.orient.kind {
	case KindPointy:
		return sqrt3 * l.size.X, nil
	case KindFlat:
		return 2 * l.size.X, nil
	default:
		return 0, ErrCustomOrientation
	}
}

// Height returns the pixel height of a single hex under the preset
// orientations. Returns ErrCustomOrientation for custom matrices.
func (l Layout) Height() (float64, error) {
	switch l.orient.kind {
	case KindPointy:
		return 2 * l.size.Y, nil
	case KindFlat:
		return sqrt3 * l.size.Y, nil
	default:
		return 0, ErrCustomOrientation
	}
}

// HorizontalSpacing returns the pixel distance between adjacent columns.
// Returns ErrCustomOrientation for custom matrices.
func (l Layout) HorizontalSpacing() (float64, error) {
	switch l.orient.kind {
	case KindPointy:
		return sqrt3 * l.size.X, nil
	case KindFlat:
		return 3.0 / 2 * l.size.X, nil
	default:
		return 0, ErrCustomOrientation
	}
}

// VerticalSpacing returns the pixel distance between adjacent rows.
// Returns ErrCustomOrientation for custom matrices.
func (l Layout) VerticalSpacing() (float64, error) {
	switch l.orient.kind {
	case KindPointy:
		return 3.0 / 2 * l.size.Y, nil
	case KindFlat:
		return sqrt3 * l.size.Y, nil
	default:
		return 0, ErrCustomOrientation
	}
}
