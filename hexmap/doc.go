// Package hexmap implements a sparse, insertion-ordered container keyed by
// hex cells, plus factory functions for common board shapes.
//
// What:
//
//   - Map[V] stores one value of type V per hex.Hex and remembers the order
//     cells were first inserted, so iteration is deterministic.
//   - Lookup and mutation: Insert, InsertAll, Get, Remove, Contains, SetAll.
//   - Iteration: Hexes, ForEach, HexesWhere.
//   - Whole-map transforms: Clone, Shift, Union, Intersect, Difference,
//     SymmetricDifference, Bounds, PixelBounds.
//   - Shape builders: Hexagon, Rectangle, Square, Parallelogram, Rhombus,
//     Triangle, FromHexes — each filling cells via a Fill function and
//     configurable with BuildOptions (WithOrigin, WithHollow).
//
// Why:
//
//   - Game boards: build the playable area once, attach per-cell state.
//   - Pathfinding and flood fills over irregular hex regions.
//   - Export: Bounds and PixelBounds size a canvas before drawing.
//
// Complexity:
//
//   - Insert, Get, Contains: O(1). Remove: O(n) (order compaction).
//   - Iteration and set operations: O(n). Shape builders: O(cells).
//
// Errors:
//
//   - ErrKeyNotFound: Get or Remove of an absent cell.
//   - ErrEmptyMap: Bounds or PixelBounds on an empty map.
//   - ErrInvalidSize: shape builder given a negative dimension
//     (hex.ErrInvalidRadius for Hexagon, matching the ring builders).
//   - ErrInvalidAxes: Parallelogram or Rhombus with an unknown axes pair.
//
// Map is not safe for concurrent mutation; guard shared maps externally.
package hexmap
