package hex_test

import (
	"testing"

	"github.com/katalvlaran/hexlath/hex"
)

// BenchmarkRound measures lattice rounding of a fractional hex.
// Complexity: O(1)
func BenchmarkRound(b *testing.B) {
	f := hex.NewFrac(12.37, -41.52)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = f.Round()
	}
}

// BenchmarkLineTo measures drawing a 100-cell line.
// Complexity: O(distance)
func BenchmarkLineTo(b *testing.B) {
	a := hex.New(0, 0)
	z := hex.New(100, -50)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = a.LineTo(z)
	}
}

// BenchmarkSpiral measures enumerating a radius-50 spiral (7651 cells).
// Complexity: O(radius²)
func BenchmarkSpiral(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hex.Spiral(hex.Hexigo, 50)
	}
}
