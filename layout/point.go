package layout

import (
	"fmt"
	"math"
)

// Point is a pixel-space coordinate. Like Hex it is an immutable value:
// every operation returns a fresh Point.
type Point struct {
	X, Y float64
}

// Pt is a shorthand constructor for a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns p + other componentwise.
func (p Point) Add(other Point) Point {
	return Point{X: p.X + other.X, Y: p.Y + other.Y}
}

// Sub returns p - other componentwise.
func (p Point) Sub(other Point) Point {
	return Point{X: p.X - other.X, Y: p.Y - other.Y}
}

// Scale returns p multiplied by the scalar k on both axes.
func (p Point) Scale(k float64) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// ScaleXY returns p scaled per-axis by other, used for non-uniform hex sizes.
func (p Point) ScaleXY(other Point) Point {
	return Point{X: p.X * other.X, Y: p.Y * other.Y}
}

// Round returns p snapped to whole pixels.
func (p Point) Round() Point {
	return Point{X: math.Round(p.X), Y: math.Round(p.Y)}
}

// String renders the point, e.g. "Point(x=3, y=-1.5)".
func (p Point) String() string {
	return fmt.Sprintf("Point(x=%v, y=%v)", p.X, p.Y)
}
