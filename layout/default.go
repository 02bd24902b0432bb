package layout

import "github.com/katalvlaran/hexlath/hex"

// defaultLayout is the process-wide layout used by the package-level
// conveniences. Callers that share a single grid geometry set it once at
// startup; concurrent mutation is the caller's concern.
var (
	defaultLayout    Layout
	defaultLayoutSet bool
)

// SetDefault installs l as the package-wide default layout.
func SetDefault(l Layout) {
	defaultLayout = l
	defaultLayoutSet = true
}

// ClearDefault removes the package-wide default layout.
func ClearDefault() {
	defaultLayout = Layout{}
	defaultLayoutSet = false
}

// Default returns the package-wide default layout, or ErrNoDefaultLayout
// if none has been set.
func Default() (Layout, error) {
	if !defaultLayoutSet {
		return Layout{}, ErrNoDefaultLayout
	}

	return defaultLayout, nil
}

// ToPixel converts h through the default layout.
// Returns ErrNoDefaultLayout if none has been set.
func ToPixel(h hex.Hex) (Point, error) {
	l, err := Default()
	if err != nil {
		return Point{}, err
	}

	return l.ToPixel(h), nil
}

// ToHex converts p through the default layout.
// Returns ErrNoDefaultLayout if none has been set.
func ToHex(p Point) (hex.FracHex, error) {
	l, err := Default()
	if err != nil {
		return hex.FracHex{}, err
	}

	return l.ToHex(p), nil
}

// PolygonCorners returns the corner points of h under the default layout.
// Returns ErrNoDefaultLayout if none has been set.
func PolygonCorners(h hex.Hex) ([6]Point, error) {
	l, err := Default()
	if err != nil {
		return [6]Point{}, err
	}

	return l.PolygonCorners(h), nil
}
