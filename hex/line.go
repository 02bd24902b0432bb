package hex

// lineNudge is the tiny, consistently-signed offset applied to both line
// endpoints before interpolating. When the true segment passes exactly
// through a lattice edge the nudge breaks the tie the same way every time,
// so a given (a, b) pair always produces one stable line instead of
// jittering between two adjacent valid ones.
const lineNudge = 1e-6

// nudged shifts f by lineNudge on q and r (and thus -2·lineNudge on s).
func (f FracHex) nudged() FracHex {
	return FracHex{Q: f.Q + lineNudge, R: f.R + lineNudge}
}

// LineTo returns the ordered cells of the straight segment from h to
// other: Distance(h, other)+1 lattice hexes, endpoints included. Each cell
// is the lattice rounding of an evenly spaced sample along the nudged
// segment. The result is deterministic: repeated calls with the same
// endpoints yield the identical slice.
// Complexity: O(distance) time and memory.
func (h Hex) LineTo(other Hex) []Hex {
	steps := h.Distance(other)

	a := h.Frac().nudged()
	b := other.Frac().nudged()

	// Guard against division by zero when h == other.
	stepSize := 1.0 / float64(max(steps, 1))

	line := make([]Hex, 0, steps+1)
	for i := 0; i <= steps; i++ {
		line = append(line, a.lerp(b, float64(i)*stepSize).Round())
	}

	return line
}
