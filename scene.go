package view3d

import "image/color"

// Stock colors, matching raylib's palette where the demo scene uses them.
var (
	Red       = color.RGBA{R: 230, G: 41, B: 55, A: 255}
	Gray      = color.RGBA{R: 130, G: 130, B: 130, A: 255}
	LightGray = color.RGBA{R: 200, G: 200, B: 200, A: 255}
	DarkGray  = color.RGBA{R: 80, G: 80, B: 80, A: 255}
	White     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black     = color.RGBA{A: 255}
)

// Cube is a solid axis-aligned box drawn inside the 3D scope.
// It is constructed once and never mutated.
type Cube struct {
	Center Vector3
	Size   Vector3
	Color  color.RGBA
}

// Grid is a square ground grid on the XZ plane, centered at the origin.
// Slices is the number of cells along each axis, Spacing the cell size in
// world units.
type Grid struct {
	Slices  int
	Spacing float64
}

// OverlayLabel is a 2D screen-space text label drawn after the 3D scope,
// so it is never depth-occluded. X and Y are pixels from the top-left,
// Size is the font height in pixels.
type OverlayLabel struct {
	Text  string
	X, Y  int
	Size  int
	Color color.RGBA
}

// Scene describes everything the viewer draws each frame. All fields are
// fixed for the lifetime of the loop; only the camera changes over time.
type Scene struct {
	Background color.RGBA
	Cube       Cube
	Grid       Grid
	Label      OverlayLabel
}

// DefaultScene returns the stock demo scene: a red 2x2x2 cube at the
// origin over a 10-slice grid with 1-unit cells, on a gray background,
// with a white "Test" label at (10,10) in a 16px font.
func DefaultScene() Scene {
	return Scene{
		Background: Gray,
		Cube: Cube{
			Center: V3(0, 0, 0),
			Size:   V3(2, 2, 2),
			Color:  Red,
		},
		Grid: Grid{
			Slices:  10,
			Spacing: 1.0,
		},
		Label: OverlayLabel{
			Text:  "Test",
			X:     10,
			Y:     10,
			Size:  16,
			Color: White,
		},
	}
}
