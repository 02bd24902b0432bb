package hex

import "fmt"

// Ring returns the cells at exact hex-distance radius from center, in
// canonical angular order: the walk starts at center + direction[4]·radius
// and traverses the six sides in direction order, radius cells per side.
// Radius 0 yields just the center; radius k > 0 yields 6k cells.
// Returns ErrInvalidRadius for negative radius.
// Complexity: O(radius) time and memory.
func Ring(center Hex, radius int) ([]Hex, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}
	if radius == 0 {
		return []Hex{center}, nil
	}

	ring := make([]Hex, 0, 6*radius)
	cur := center.Add(directions[4].Scale(radius))
	for side := 0; side < 6; side++ {
		for step := 0; step < radius; step++ {
			ring = append(ring, cur)
			cur = cur.Add(directions[side])
		}
	}

	return ring, nil
}

// Range returns every cell within hex-distance radius of center — the
// filled disk, 3·radius·(radius+1)+1 cells — scanning q ascending and r
// ascending within q.
// Returns ErrInvalidRadius for negative radius.
// Complexity: O(radius²) time and memory.
func Range(center Hex, radius int) ([]Hex, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	disk := make([]Hex, 0, 3*radius*(radius+1)+1)
	for q := -radius; q <= radius; q++ {
		lo := max(-radius, -q-radius)
		hi := min(radius, -q+radius)
		for r := lo; r <= hi; r++ {
			disk = append(disk, center.Add(Hex{Q: q, R: r}))
		}
	}

	return disk, nil
}

// Spiral returns the same cells as Range but ordered as concatenated rings
// of increasing radius, each ring starting at its canonical offset. The
// resulting total order is deterministic, which makes Spiral the generator
// behind reproducible shape builders.
// Returns ErrInvalidRadius for negative radius.
// Complexity: O(radius²) time and memory.
func Spiral(center Hex, radius int) ([]Hex, error) {
	if radius < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidRadius, radius)
	}

	spiral := make([]Hex, 0, 3*radius*(radius+1)+1)
	for k := 0; k <= radius; k++ {
		ring, err := Ring(center, k)
		if err != nil {
			return nil, err
		}
		spiral = append(spiral, ring...)
	}

	return spiral, nil
}
