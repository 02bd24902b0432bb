package hex

import "fmt"

// The six unit direction vectors and six diagonal vectors, indexed 0..5.
// The tables are layout-independent: a pointy or flat orientation changes
// which physical way an index points on screen, never which algebraic
// vector it maps to. Ordinal i corresponds to clock hour 2i+1 (directions)
// and hour 2i+2 (diagonals) on the pointy clock face; the layout package
// derives the on-screen clock labels from these same tables.
var (
	directions = [6]Hex{
		{Q: 1, R: -1}, // 0: 1 o'clock (pointy)
		{Q: 1, R: 0},  // 1: 3 o'clock
		{Q: 0, R: 1},  // 2: 5 o'clock
		{Q: -1, R: 1}, // 3: 7 o'clock
		{Q: -1, R: 0}, // 4: 9 o'clock
		{Q: 0, R: -1}, // 5: 11 o'clock
	}

	diagonals = [6]Hex{
		{Q: 2, R: -1},  // 0: 2 o'clock (pointy)
		{Q: 1, R: 1},   // 1: 4 o'clock
		{Q: -1, R: 2},  // 2: 6 o'clock
		{Q: -2, R: 1},  // 3: 8 o'clock
		{Q: -1, R: -1}, // 4: 10 o'clock
		{Q: 1, R: -2},  // 5: 12 o'clock
	}
)

// Named ordinals into the direction table, labeled by their pointy-top
// compass bearing. Under a flat-top layout the physical bearings shift one
// clock hour; the layout package translates.
const (
	DirNE = iota
	DirE
	DirSE
	DirSW
	DirW
	DirNW
)

// Named ordinals into the diagonal table, pointy-top bearings again: the
// diagonals due north and south exist only on the second ring.
const (
	DiagENE = iota
	DiagESE
	DiagS
	DiagWSW
	DiagWNW
	DiagN
)

// DirectionVector returns the unit direction vector at ordinal d in 0..5.
// Returns ErrInvalidDirection outside that range.
// Complexity: O(1).
func DirectionVector(d int) (Hex, error) {
	if d < 0 || d > 5 {
		return Hex{}, fmt.Errorf("%w: direction %d", ErrInvalidDirection, d)
	}

	return directions[d], nil
}

// DiagonalVector returns the second-ring diagonal vector at ordinal d in
// 0..5, the sum of two adjacent direction vectors.
// Returns ErrInvalidDirection outside that range.
// Complexity: O(1).
func DiagonalVector(d int) (Hex, error) {
	if d < 0 || d > 5 {
		return Hex{}, fmt.Errorf("%w: diagonal %d", ErrInvalidDirection, d)
	}

	return diagonals[d], nil
}

// Neighbor returns the adjacent hex one step from h in direction d (0..5).
// Returns ErrInvalidDirection outside that range.
func (h Hex) Neighbor(d int) (Hex, error) {
	dir, err := DirectionVector(d)
	if err != nil {
		return Hex{}, err
	}

	return h.Add(dir), nil
}

// DiagonalNeighbor returns the second-ring hex adjacent to h across the
// edge-pair at diagonal d (0..5).
// Returns ErrInvalidDirection outside that range.
func (h Hex) DiagonalNeighbor(d int) (Hex, error) {
	diag, err := DiagonalVector(d)
	if err != nil {
		return Hex{}, err
	}

	return h.Add(diag), nil
}

// Neighbors returns the six direct neighbors of h in ordinal order.
// Complexity: O(1).
func (h Hex) Neighbors() [6]Hex {
	var out [6]Hex
	for i, d := range directions {
		out[i] = h.Add(d)
	}

	return out
}

// DiagonalNeighbors returns the six diagonal neighbors of h in ordinal
// order. Complexity: O(1).
func (h Hex) DiagonalNeighbors() [6]Hex {
	var out [6]Hex
	for i, d := range diagonals {
		out[i] = h.Add(d)
	}

	return out
}
