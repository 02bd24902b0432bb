package hexmap

import (
	"fmt"

	"github.com/katalvlaran/hexlath/hex"
	"github.com/katalvlaran/hexlath/layout"
)

// Map is a sparse container of per-cell values keyed by hex.Hex. Cells keep
// their first-insertion order, so Hexes and ForEach are deterministic. The
// zero Map is not usable; construct with New, FromHexes or a shape builder.
type Map[V any] struct {
	values map[hex.Hex]V
	order  []hex.Hex
}

// New returns an empty Map.
func New[V any]() *Map[V] {
	return &Map[V]{values: make(map[hex.Hex]V)}
}

// FromHexes builds a Map over the given cells, filling each via fill.
// Duplicate cells keep their first position and take the last fill value.
func FromHexes[V any](hexes []hex.Hex, fill Fill[V]) *Map[V] {
	m := &Map[V]{
		values: make(map[hex.Hex]V, len(hexes)),
		order:  make([]hex.Hex, 0, len(hexes)),
	}
	for _, h := range hexes {
		m.Insert(h, fill(h))
	}

	return m
}

// Insert sets the value of h, appending it to the iteration order if absent.
func (m *Map[V]) Insert(h hex.Hex, v V) {
	if _, ok := m.values[h]; !ok {
		m.order = append(m.order, h)
	}
	m.values[h] = v
}

// InsertAll inserts every cell in hexes, filling each via fill.
func (m *Map[V]) InsertAll(hexes []hex.Hex, fill Fill[V]) {
	for _, h := range hexes {
		m.Insert(h, fill(h))
	}
}

// Remove deletes h from the map.
// Returns ErrKeyNotFound if h is absent.
// Complexity: O(n) — the iteration order is compacted.
func (m *Map[V]) Remove(h hex.Hex) error {
	if _, ok := m.values[h]; !ok {
		return fmt.Errorf("%w: %v", ErrKeyNotFound, h)
	}
	delete(m.values, h)
	for i, k := range m.order {
		if k == h {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}

	return nil
}

// Get returns the value stored at h.
// Returns ErrKeyNotFound if h is absent.
func (m *Map[V]) Get(h hex.Hex) (V, error) {
	v, ok := m.values[h]
	if !ok {
		var zero V
		return zero, fmt.Errorf("%w: %v", ErrKeyNotFound, h)
	}

	return v, nil
}

// Contains reports whether h is present.
func (m *Map[V]) Contains(h hex.Hex) bool {
	_, ok := m.values[h]
	return ok
}

// Len returns the number of cells.
func (m *Map[V]) Len() int { return len(m.order) }

// SetAll assigns v to every cell, keeping the key set and order intact.
func (m *Map[V]) SetAll(v V) {
	for _, h := range m.order {
		m.values[h] = v
	}
}

// Hexes returns the cells in insertion order. The slice is a copy.
func (m *Map[V]) Hexes() []hex.Hex {
	out := make([]hex.Hex, len(m.order))
	copy(out, m.order)

	return out
}

// ForEach calls fn for every cell in insertion order.
func (m *Map[V]) ForEach(fn func(h hex.Hex, v V)) {
	for _, h := range m.order {
		fn(h, m.values[h])
	}
}

// HexesWhere returns the cells whose value satisfies pred, in insertion
// order.
func (m *Map[V]) HexesWhere(pred func(h hex.Hex, v V) bool) []hex.Hex {
	var out []hex.Hex
	for _, h := range m.order {
		if pred(h, m.values[h]) {
			out = append(out, h)
		}
	}

	return out
}

// Clone returns an independent copy with the same cells, values and order.
func (m *Map[V]) Clone() *Map[V] {
	c := &Map[V]{
		values: make(map[hex.Hex]V, len(m.values)),
		order:  make([]hex.Hex, len(m.order)),
	}
	copy(c.order, m.order)
	for h, v := range m.values {
		c.values[h] = v
	}

	return c
}

// Shift returns a new Map with every cell translated by the given offset.
// Values and iteration order are preserved.
func (m *Map[V]) Shift(by hex.Hex) *Map[V] {
	s := &Map[V]{
		values: make(map[hex.Hex]V, len(m.values)),
		order:  make([]hex.Hex, 0, len(m.order)),
	}
	for _, h := range m.order {
		moved := h.Add(by)
		s.order = append(s.order, moved)
		s.values[moved] = m.values[h]
	}

	return s
}

//-----------------------------------------------------------------------------
// Set algebra
//-----------------------------------------------------------------------------

// Merge resolves the value of a cell present in both operands of a set
// operation. A nil Merge keeps the receiver's value.
type Merge[V any] func(a, b V) V

// Union returns the cells of m and other. Overlapping cells resolve via
// merge. Order: m's cells first, then other's cells new to the union.
// Complexity: O(n+m).
func (m *Map[V]) Union(other *Map[V], merge Merge[V]) *Map[V] {
	u := m.Clone()
	for _, h := range other.order {
		ov := other.values[h]
		if mv, ok := u.values[h]; ok && merge != nil {
			u.values[h] = merge(mv, ov)
		} else if !ok {
			u.Insert(h, ov)
		}
	}

	return u
}

// Intersect returns the cells present in both m and other, in m's order,
// with values resolved via merge.
// Complexity: O(n).
func (m *Map[V]) Intersect(other *Map[V], merge Merge[V]) *Map[V] {
	i := New[V]()
	for _, h := range m.order {
		ov, ok := other.values[h]
		if !ok {
			continue
		}
		v := m.values[h]
		if merge != nil {
			v = merge(v, ov)
		}
		i.Insert(h, v)
	}

	return i
}

// Difference returns the cells of m absent from other, in m's order.
// Complexity: O(n).
func (m *Map[V]) Difference(other *Map[V]) *Map[V] {
	d := New[V]()
	for _, h := range m.order {
		if !other.Contains(h) {
			d.Insert(h, m.values[h])
		}
	}

	return d
}

// SymmetricDifference returns the cells present in exactly one of m and
// other: m's survivors first, then other's.
// Complexity: O(n+m).
func (m *Map[V]) SymmetricDifference(other *Map[V]) *Map[V] {
	d := m.Difference(other)
	for _, h := range other.order {
		if !m.Contains(h) {
			d.Insert(h, other.values[h])
		}
	}

	return d
}

//-----------------------------------------------------------------------------
// Bounds
//-----------------------------------------------------------------------------

// Bounds returns the inclusive axial bounding box of the map's cells.
// Returns ErrEmptyMap when the map has no cells.
// Complexity: O(n).
func (m *Map[V]) Bounds() (minQ, maxQ, minR, maxR int, err error) {
	if len(m.order) == 0 {
		return 0, 0, 0, 0, ErrEmptyMap
	}

	first := m.order[0]
	minQ, maxQ, minR, maxR = first.Q, first.Q, first.R, first.R
	for _, h := range m.order[1:] {
		minQ, maxQ = min(minQ, h.Q), max(maxQ, h.Q)
		minR, maxR = min(minR, h.R), max(maxR, h.R)
	}

	return minQ, maxQ, minR, maxR, nil
}

// PixelBounds returns the pixel-space bounding box of the map under lay,
// tight around every cell's polygon corners. Returns ErrEmptyMap when the
// map has no cells.
// Complexity: O(n).
func (m *Map[V]) PixelBounds(lay layout.Layout) (lo, hi layout.Point, err error) {
	if len(m.order) == 0 {
		return layout.Point{}, layout.Point{}, ErrEmptyMap
	}

	first := lay.ToPixel(m.order[0])
	lo, hi = first, first
	for _, h := range m.order {
		for _, c := range lay.PolygonCorners(h) {
			lo.X, hi.X = min(lo.X, c.X), max(hi.X, c.X)
			lo.Y, hi.Y = min(lo.Y, c.Y), max(hi.Y, c.Y)
		}
	}

	return lo, hi, nil
}
