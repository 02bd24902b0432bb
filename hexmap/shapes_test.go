package hexmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hexlath/hex"
	"github.com/katalvlaran/hexlath/hexmap"
)

func TestHexagon(t *testing.T) {
	t.Run("NegativeRadius", func(t *testing.T) {
		_, err := hexmap.Hexagon(-1, hexmap.Value(0))
		require.ErrorIs(t, err, hex.ErrInvalidRadius)
	})

	t.Run("RadiusTwo", func(t *testing.T) {
		m, err := hexmap.Hexagon(2, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, 19, m.Len())

		// Spiral order: the center comes first, then ring 1, then ring 2.
		require.Equal(t, hex.Hexigo, m.Hexes()[0])
		for _, h := range m.Hexes() {
			require.LessOrEqual(t, hex.Hexigo.Distance(h), 2)
		}
	})

	t.Run("Hollow", func(t *testing.T) {
		m, err := hexmap.Hexagon(2, hexmap.Value(0), hexmap.WithHollow())
		require.NoError(t, err)
		require.Equal(t, 12, m.Len())
		for _, h := range m.Hexes() {
			require.Equal(t, 2, hex.Hexigo.Distance(h))
		}
	})

	t.Run("Origin", func(t *testing.T) {
		center := hex.New(10, -4)
		m, err := hexmap.Hexagon(1, hexmap.Value(0), hexmap.WithOrigin(center))
		require.NoError(t, err)
		require.Equal(t, 7, m.Len())
		require.True(t, m.Contains(center))
		for _, h := range m.Hexes() {
			require.LessOrEqual(t, center.Distance(h), 1)
		}
	})
}

func TestRectangle(t *testing.T) {
	t.Run("NegativeSize", func(t *testing.T) {
		_, err := hexmap.Rectangle(-1, 2, hexmap.Value(0))
		require.ErrorIs(t, err, hexmap.ErrInvalidSize)

		_, err = hexmap.Rectangle(2, -1, hexmap.Value(0))
		require.ErrorIs(t, err, hexmap.ErrInvalidSize)
	})

	t.Run("HalfExtentsOne", func(t *testing.T) {
		m, err := hexmap.Rectangle(1, 1, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, 9, m.Len())

		// Row r=-1 is offset one column right by the pointy stagger.
		want := []hex.Hex{
			hex.New(0, -1), hex.New(1, -1), hex.New(2, -1),
			hex.New(-1, 0), hex.New(0, 0), hex.New(1, 0),
			hex.New(-1, 1), hex.New(0, 1), hex.New(1, 1),
		}
		require.Equal(t, want, m.Hexes())
	})

	t.Run("Hollow", func(t *testing.T) {
		m, err := hexmap.Rectangle(2, 2, hexmap.Value(0), hexmap.WithHollow())
		require.NoError(t, err)

		// Top and bottom rows are full (5 each), middle rows keep only
		// their two ends.
		require.Equal(t, 16, m.Len())

		full, err := hexmap.Rectangle(2, 2, hexmap.Value(0))
		require.NoError(t, err)
		for _, h := range m.Hexes() {
			require.True(t, full.Contains(h))
		}
	})

	t.Run("Square", func(t *testing.T) {
		sq, err := hexmap.Square(2, hexmap.Value(0))
		require.NoError(t, err)
		rect, err := hexmap.Rectangle(2, 2, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, rect.Hexes(), sq.Hexes())
	})
}

func TestParallelogram(t *testing.T) {
	t.Run("NegativeSize", func(t *testing.T) {
		_, err := hexmap.Parallelogram(hexmap.AxesQR, -1, 1, hexmap.Value(0))
		require.ErrorIs(t, err, hexmap.ErrInvalidSize)
	})

	t.Run("UnknownAxes", func(t *testing.T) {
		_, err := hexmap.Parallelogram(hexmap.Axes(99), 1, 1, hexmap.Value(0))
		require.ErrorIs(t, err, hexmap.ErrInvalidAxes)
	})

	t.Run("AxesQR", func(t *testing.T) {
		m, err := hexmap.Parallelogram(hexmap.AxesQR, 1, 2, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, 15, m.Len())
		for _, h := range m.Hexes() {
			require.LessOrEqual(t, abs(h.Q), 1)
			require.LessOrEqual(t, abs(h.R), 2)
		}
	})

	t.Run("AxesQS", func(t *testing.T) {
		m, err := hexmap.Parallelogram(hexmap.AxesQS, 1, 1, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, 9, m.Len())
		for _, h := range m.Hexes() {
			require.LessOrEqual(t, abs(h.Q), 1)
			require.LessOrEqual(t, abs(h.S()), 1)
		}
	})

	t.Run("AxesRS", func(t *testing.T) {
		m, err := hexmap.Parallelogram(hexmap.AxesRS, 1, 1, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, 9, m.Len())
		for _, h := range m.Hexes() {
			require.LessOrEqual(t, abs(h.R), 1)
			require.LessOrEqual(t, abs(h.S()), 1)
		}
	})

	t.Run("Hollow", func(t *testing.T) {
		m, err := hexmap.Parallelogram(hexmap.AxesQR, 1, 1, hexmap.Value(0), hexmap.WithHollow())
		require.NoError(t, err)
		require.Equal(t, 8, m.Len())
		require.False(t, m.Contains(hex.Hexigo))
	})

	t.Run("Rhombus", func(t *testing.T) {
		rh, err := hexmap.Rhombus(hexmap.AxesQS, 2, hexmap.Value(0))
		require.NoError(t, err)
		pa, err := hexmap.Parallelogram(hexmap.AxesQS, 2, 2, hexmap.Value(0))
		require.NoError(t, err)
		require.Equal(t, pa.Hexes(), rh.Hexes())
	})
}

func TestTriangle(t *testing.T) {
	t.Run("NegativeSize", func(t *testing.T) {
		_, err := hexmap.Triangle(-1, hexmap.Value(0))
		require.ErrorIs(t, err, hexmap.ErrInvalidSize)
	})

	t.Run("SizeTwo", func(t *testing.T) {
		m, err := hexmap.Triangle(2, hexmap.Value(0))
		require.NoError(t, err)

		want := []hex.Hex{
			hex.New(0, 0), hex.New(0, 1), hex.New(0, 2),
			hex.New(1, 0), hex.New(1, 1),
			hex.New(2, 0),
		}
		require.Equal(t, want, m.Hexes())
	})

	t.Run("Origin", func(t *testing.T) {
		corner := hex.New(-5, 3)
		m, err := hexmap.Triangle(1, hexmap.Value(0), hexmap.WithOrigin(corner))
		require.NoError(t, err)
		require.Equal(t, 3, m.Len())
		require.True(t, m.Contains(corner))
	})
}

func TestFill(t *testing.T) {
	m, err := hexmap.Hexagon(1, func(h hex.Hex) int { return hex.Hexigo.Distance(h) })
	require.NoError(t, err)

	center, err := m.Get(hex.Hexigo)
	require.NoError(t, err)
	require.Equal(t, 0, center)

	rim := m.HexesWhere(func(_ hex.Hex, v int) bool { return v == 1 })
	require.Len(t, rim, 6)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}

	return n
}
