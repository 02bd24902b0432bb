package hexmap_test

import (
	"testing"

	"github.com/katalvlaran/hexlath/hex"
	"github.com/katalvlaran/hexlath/hexmap"
)

// BenchmarkHexagon measures building a radius-50 board (7651 cells).
// Complexity: O(radius²)
func BenchmarkHexagon(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hexmap.Hexagon(50, hexmap.Value(0))
	}
}

// BenchmarkUnion measures merging two overlapping radius-30 boards.
// Complexity: O(n+m)
func BenchmarkUnion(b *testing.B) {
	left, _ := hexmap.Hexagon(30, hexmap.Value(1))
	right, _ := hexmap.Hexagon(30, hexmap.Value(2), hexmap.WithOrigin(hex.New(30, 0)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = left.Union(right, nil)
	}
}

// BenchmarkShift measures translating a radius-30 board.
// Complexity: O(n)
func BenchmarkShift(b *testing.B) {
	m, _ := hexmap.Hexagon(30, hexmap.Value(0))
	by := hex.New(7, -3)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Shift(by)
	}
}
