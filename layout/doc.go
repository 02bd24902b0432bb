// Package layout maps hexagonal cube coordinates to pixel space and back.
//
// What:
//
//   - Point is a pixel-space value type.
//   - Orientation holds a forward/backward 2×2 matrix pair plus the corner
//     start angle; Pointy() and Flat() are the two presets, and
//     NewOrientation builds a custom pair (the inverse is computed for you).
//   - Layout combines an orientation with a pixel size (possibly
//     non-uniform) and a pixel origin, and converts Hex↔pixel, computes
//     corner offsets and full polygon outlines, and reports hex dimensions
//     and grid spacings.
//   - The clock face and compass label the direction/diagonal tables by
//     hour (1..12) and compass point per the active orientation; the
//     underlying hour→vector table is layout-independent, only the labels
//     rotate between pointy and flat.
//   - A narrowly scoped, explicitly set process default layout backs the
//     package-level ToPixel/ToHex/PolygonCorners conveniences.
//
// Why:
//
//   - Rendering layers need cell centers and polygon corners in pixels.
//   - Input handling needs pixel→hex picking (convert, then hex.Round).
//
// Errors:
//
//   - ErrDegenerateOrientation: custom forward matrix is not invertible.
//   - ErrInvalidCorner: corner index outside 0..5.
//   - ErrCustomOrientation: width/height/spacing queried on a custom matrix.
//   - ErrInvalidHour: clock hour outside 1..12.
//   - ErrInvalidCompass: compass point unknown for the orientation.
//   - ErrNoDefaultLayout: package-level convenience used before SetDefault.
//
// The package draws nothing: it stops at pixel coordinates and corner
// points, which callers hand to whatever backend they use.
package layout
