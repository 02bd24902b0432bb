package layout

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/hexlath/hex"
)

// clockTable maps clock-face hours to hex offsets for the pointy
// orientation, indexed by hour mod 12 (so index 0 is 12 o'clock). Odd
// hours land on edge neighbors, even hours on diagonals. The flat
// orientation reads the same face shifted back one hour: a flat hex's
// 12 o'clock is the pointy hex's 11 o'clock.
var clockTable = [12]hex.Hex{
	{Q: 1, R: -2},  // 12
	{Q: 1, R: -1},  //  1
	{Q: 2, R: -1},  //  2
	{Q: 1, R: 0},   //  3
	{Q: 1, R: 1},   //  4
	{Q: 0, R: 1},   //  5
	{Q: -1, R: 2},  //  6
	{Q: -1, R: 1},  //  7
	{Q: -2, R: 1},  //  8
	{Q: -1, R: 0},  //  9
	{Q: -1, R: -1}, // 10
	{Q: 0, R: -1},  // 11
}

// Compass points per orientation, stored as clock hours (0 stands for 12).
// Pointy rows have no true north; flat columns have no true east.
var (
	pointyCompass = map[string]int{
		"NE": 1, "E": 3, "SE": 5, "SW": 7, "W": 9, "NW": 11,
	}
	flatCompass = map[string]int{
		"N": 0, "NE": 2, "SE": 4, "S": 6, "SW": 8, "NW": 10,
	}
)

// hourIndex resolves an hour on the layout's clock face to a clockTable
// index. Custom orientations read the face as pointy.
func (l Layout) hourIndex(hour int) (int, error) {
	if hour < 1 || hour > 12 {
		return 0, fmt.Errorf("%w: hour %d", ErrInvalidHour, hour)
	}
	i := hour % 12
	if l.orient.kind == KindFlat {
		i = (i + 11) % 12
	}

	return i, nil
}

// AtHour returns the offset to the cell sitting at the given clock hour
// (1..12) as seen from a cell's center under this layout's orientation.
// Returns ErrInvalidHour outside 1..12.
// Complexity: O(1).
func (l Layout) AtHour(hour int) (hex.Hex, error) {
	i, err := l.hourIndex(hour)
	if err != nil {
		return hex.Hexigo, err
	}

	return clockTable[i], nil
}

// HourNeighbor returns the cell at the given clock hour from h.
// Returns ErrInvalidHour outside 1..12.
func (l Layout) HourNeighbor(h hex.Hex, hour int) (hex.Hex, error) {
	off, err := l.AtHour(hour)
	if err != nil {
		return hex.Hexigo, err
	}

	return h.Add(off), nil
}

// Compass returns the offset for a compass point under this layout's
// orientation. Pointy layouts answer NE, E, SE, SW, W, NW; flat layouts
// answer N, NE, SE, S, SW, NW. The lookup is case-insensitive. Returns
// ErrInvalidCompass for points the orientation has no cell toward, and
// ErrCustomOrientation for custom matrices.
// Complexity: O(1).
func (l Layout) Compass(point string) (hex.Hex, error) {
	var face map[string]int
	switch l.orient.kind {
	case KindPointy:
		face = pointyCompass
	case KindFlat:
		face = flatCompass
	default:
		return hex.Hexigo, ErrCustomOrientation
	}

	hour, ok := face[strings.ToUpper(point)]
	if !ok {
		return hex.Hexigo, fmt.Errorf("%w: %q", ErrInvalidCompass, point)
	}
	if hour == 0 {
		hour = 12
	}

	return l.AtHour(hour)
}

// CompassNeighbor returns the cell toward the given compass point from h.
func (l Layout) CompassNeighbor(h hex.Hex, point string) (hex.Hex, error) {
	off, err := l.Compass(point)
	if err != nil {
		return hex.Hexigo, err
	}

	return h.Add(off), nil
}
