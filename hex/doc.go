// Package hex implements cube-coordinate algebra for hexagonal grids.
//
// What:
//
//   - Hex is an exact integer cube coordinate (q, r, s) with q+r+s = 0;
//     s is derived, so the invariant can never drift.
//   - FracHex is the floating-point counterpart used by interpolation and
//     pixel conversion; Round snaps it back onto the lattice.
//   - Arithmetic: Add, Sub, Neg, Scale, Div, DivFloor, Length, Distance.
//   - Rotation and reflection: 60°-step rotations around the origin or an
//     arbitrary center, axis reflections over q, r and s.
//   - Enumeration: Lerp, LineTo, Ring, Range, Spiral, neighbor and
//     diagonal-neighbor tables.
//
// Why:
//
//   - Board games and tactical maps: distance, line of sight, movement.
//   - Cellular automata: neighbor enumeration over hexagonal tilings.
//   - Any code that must convert between hex cells and screen space.
//
// Complexity:
//
//   - All arithmetic, rounding and rotation: O(1).
//   - LineTo: O(distance). Ring: O(radius). Range, Spiral: O(radius²).
//
// Errors:
//
//   - ErrInvalidCoordinate: cube constructor given coordinates that do not
//     sum to zero (exactly for Hex, within Epsilon for FracHex).
//   - ErrDivisionByZero: Div or DivFloor by zero.
//   - ErrInvalidDirection: direction or diagonal index outside 0..5.
//   - ErrInvalidRadius: negative ring/range/spiral radius.
//   - ErrLerpOutOfRange: lerp parameter outside [0, 1].
//
// All operations are value-semantics: receivers are never mutated and every
// result is a fresh value, so Hex and FracHex are freely shareable.
package hex
