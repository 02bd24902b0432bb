package hex

// Rotation by one 60° step is a cyclic permutation of (q, r, s) with a sign
// flip; n steps reduce to n mod 6, applied as a closed form rather than a
// loop of matrix products, so results stay exact for any step count.

// RotateLeft returns h rotated 60°·steps counter-clockwise around Hexigo.
// A single left step maps (q, r, s) to (-s, -q, -r). Negative steps rotate
// clockwise. Complexity: O(1).
func (h Hex) RotateLeft(steps int) Hex {
	q, r, s := h.Q, h.R, h.S()

	switch mod6(steps) {
	case 1:
		return Hex{Q: -s, R: -q}
	case 2:
		return Hex{Q: r, R: s}
	case 3:
		return Hex{Q: -q, R: -r}
	case 4:
		return Hex{Q: s, R: q}
	case 5:
		return Hex{Q: -r, R: -s}
	default:
		return h
	}
}

// RotateRight returns h rotated 60°·steps clockwise around Hexigo, the
// inverse of RotateLeft. Complexity: O(1).
func (h Hex) RotateRight(steps int) Hex {
	return h.RotateLeft(-steps)
}

// RotateLeftAround returns h rotated 60°·steps counter-clockwise around
// center: center + RotateLeft(h - center).
func (h Hex) RotateLeftAround(center Hex, steps int) Hex {
	return h.Sub(center).RotateLeft(steps).Add(center)
}

// RotateRightAround returns h rotated 60°·steps clockwise around center.
func (h Hex) RotateRightAround(center Hex, steps int) Hex {
	return h.Sub(center).RotateRight(steps).Add(center)
}

//-----------------------------------------------------------------------------
// Axis reflections
//-----------------------------------------------------------------------------

// ReflectQ returns h mirrored over the q-axis (r and s swap).
func (h Hex) ReflectQ() Hex {
	return Hex{Q: h.Q, R: h.S()}
}

// ReflectR returns h mirrored over the r-axis (q and s swap).
func (h Hex) ReflectR() Hex {
	return Hex{Q: h.S(), R: h.R}
}

// ReflectS returns h mirrored over the s-axis (q and r swap).
func (h Hex) ReflectS() Hex {
	return Hex{Q: h.R, R: h.Q}
}

// ReflectQAround returns h mirrored over the q-axis through center.
func (h Hex) ReflectQAround(center Hex) Hex {
	return h.Sub(center).ReflectQ().Add(center)
}

// ReflectRAround returns h mirrored over the r-axis through center.
func (h Hex) ReflectRAround(center Hex) Hex {
	return h.Sub(center).ReflectR().Add(center)
}

// ReflectSAround returns h mirrored over the s-axis through center.
func (h Hex) ReflectSAround(center Hex) Hex {
	return h.Sub(center).ReflectS().Add(center)
}

// mod6 reduces steps into 0..5 regardless of sign.
func mod6(steps int) int {
	return ((steps % 6) + 6) % 6
}
