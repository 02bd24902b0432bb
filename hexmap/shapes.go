package hexmap

import (
	"fmt"

	"github.com/katalvlaran/hexlath/hex"
)

// Fill produces the initial value for a generated cell.
type Fill[V any] func(h hex.Hex) V

// Value returns a Fill that assigns the same value to every cell.
func Value[V any](v V) Fill[V] {
	return func(hex.Hex) V { return v }
}

// Axes selects which two cube axes a Parallelogram or Rhombus spans; the
// third coordinate is derived from the zero-sum identity.
type Axes int

const (
	// AxesQR spans the q and r axes.
	AxesQR Axes = iota
	// AxesQS spans the q and s axes.
	AxesQS
	// AxesRS spans the r and s axes.
	AxesRS
)

// buildConfig collects the knobs shared by all shape builders.
type buildConfig struct {
	origin hex.Hex
	hollow bool
}

// BuildOption configures a shape builder.
type BuildOption func(*buildConfig)

// WithOrigin centers the generated shape on h instead of Hexigo.
func WithOrigin(h hex.Hex) BuildOption {
	return func(c *buildConfig) { c.origin = h }
}

// WithHollow keeps only the shape's perimeter. Hexagon, Rectangle, Square,
// Parallelogram and Rhombus honor it; Triangle ignores it.
func WithHollow() BuildOption {
	return func(c *buildConfig) { c.hollow = true }
}

func newBuildConfig(opts []BuildOption) buildConfig {
	var c buildConfig
	for _, opt := range opts {
		opt(&c)
	}

	return c
}

//-----------------------------------------------------------------------------
// Shape builders
//-----------------------------------------------------------------------------

// Hexagon builds a hexagon ⬢ of the given radius around the origin in
// spiral order: 3·radius·(radius+1)+1 cells, 19 at radius 2. Hollow keeps
// only the outer ring.
// Returns hex.ErrInvalidRadius when radius < 0.
// Complexity: O(radius²).
func Hexagon[V any](radius int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	c := newBuildConfig(opts)

	gen := hex.Spiral
	if c.hollow {
		gen = hex.Ring
	}
	cells, err := gen(c.origin, radius)
	if err != nil {
		return nil, err
	}

	return FromHexes(cells, fill), nil
}

// Rectangle builds a rectangle ▬ with half-extents width and height: rows
// r in -height..height, each holding 2·width+1 cells with the pointy-top
// ⌊r/2⌋ column offset. Hollow keeps the perimeter.
// Returns ErrInvalidSize when either extent is negative.
// Complexity: O(width·height).
func Rectangle[V any](width, height int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, width, height)
	}
	c := newBuildConfig(opts)

	m := New[V]()
	for r := -height; r <= height; r++ {
		off := floorDiv2(r)
		q1, q2 := -width-off, width-off

		if !c.hollow || r == -height || r == height {
			for q := q1; q <= q2; q++ {
				insertAt(m, c, hex.New(q, r), fill)
			}
		} else {
			insertAt(m, c, hex.New(q1, r), fill)
			insertAt(m, c, hex.New(q2, r), fill)
		}
	}

	return m, nil
}

// Square builds a square ■: a Rectangle with equal half-extents.
func Square[V any](size int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	return Rectangle(size, size, fill, opts...)
}

// Parallelogram builds a parallelogram ▰ spanning the two selected axes
// with half-extents size1 and size2; the third coordinate is derived.
// Hollow keeps the perimeter.
// Returns ErrInvalidSize for negative extents and ErrInvalidAxes for an
// unknown axes pair.
// Complexity: O(size1·size2).
func Parallelogram[V any](axes Axes, size1, size2 int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	if size1 < 0 || size2 < 0 {
		return nil, fmt.Errorf("%w: %d×%d", ErrInvalidSize, size1, size2)
	}
	if axes != AxesQR && axes != AxesQS && axes != AxesRS {
		return nil, fmt.Errorf("%w: %d", ErrInvalidAxes, int(axes))
	}
	c := newBuildConfig(opts)

	m := New[V]()
	for c1 := -size1; c1 <= size1; c1++ {
		if !c.hollow || c1 == -size1 || c1 == size1 {
			for c2 := -size2; c2 <= size2; c2++ {
				insertAt(m, c, onAxes(axes, c1, c2), fill)
			}
		} else {
			insertAt(m, c, onAxes(axes, c1, -size2), fill)
			insertAt(m, c, onAxes(axes, c1, size2), fill)
		}
	}

	return m, nil
}

// Rhombus builds a rhombus ⬧: a Parallelogram with equal half-extents.
func Rhombus[V any](axes Axes, size int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	return Parallelogram(axes, size, size, fill, opts...)
}

// Triangle builds a triangle ▲ with side length size+1: cells q in
// 0..size, r in 0..size-q, shifted so WithOrigin lands on the corner cell.
// Returns ErrInvalidSize when size < 0.
// Complexity: O(size²).
func Triangle[V any](size int, fill Fill[V], opts ...BuildOption) (*Map[V], error) {
	if size < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	c := newBuildConfig(opts)

	m := New[V]()
	for q := 0; q <= size; q++ {
		for r := 0; r <= size-q; r++ {
			insertAt(m, c, hex.New(q, r), fill)
		}
	}

	return m, nil
}

// insertAt places h shifted by the configured origin.
func insertAt[V any](m *Map[V], c buildConfig, h hex.Hex, fill Fill[V]) {
	moved := h.Add(c.origin)
	m.Insert(moved, fill(moved))
}

// onAxes lifts a coordinate pair on the selected axes to a full cell.
func onAxes(axes Axes, c1, c2 int) hex.Hex {
	switch axes {
	case AxesQS:
		return hex.New(c1, -c1-c2)
	case AxesRS:
		return hex.New(-c1-c2, c1)
	default: // AxesQR
		return hex.New(c1, c2)
	}
}

// floorDiv2 divides by two rounding toward negative infinity, unlike Go's
// truncating integer division.
func floorDiv2(n int) int {
	if n < 0 {
		return (n - 1) / 2
	}

	return n / 2
}
