package sheet

import "fmt"

// Point is a pixel position on a sheet
type Point struct {
	X int // Horizontal coordinate, growing rightwards
	Y int // Vertical coordinate, growing downwards
}

// Rectangle is an area on a sheet, described by two opposite corners.
// The corners may be given in any orientation; Normalized returns the
// top-left/bottom-right form.
type Rectangle struct {
	A Point // First corner
	B Point // Opposite corner
}

// NewRectangle creates a rectangle from two corner coordinates
func NewRectangle(x1, y1, x2, y2 int) Rectangle {
	return Rectangle{
		A: Point{X: x1, Y: y1},
		B: Point{X: x2, Y: y2},
	}
}

// Width returns the horizontal extent of the rectangle in pixels
func (r Rectangle) Width() int {
	return abs(r.B.X - r.A.X)
}

// Height returns the vertical extent of the rectangle in pixels
func (r Rectangle) Height() int {
	return abs(r.B.Y - r.A.Y)
}

// Area returns the number of pixels the rectangle covers
func (r Rectangle) Area() int {
	return r.Width() * r.Height()
}

// Normalized returns the rectangle with A as its top-left and B as its
// bottom-right corner
func (r Rectangle) Normalized() Rectangle {
	if r.A.X > r.B.X {
		r.A.X, r.B.X = r.B.X, r.A.X
	}
	if r.A.Y > r.B.Y {
		r.A.Y, r.B.Y = r.B.Y, r.A.Y
	}
	return r
}

// String formats the rectangle as [x1,y1,x2,y2]
func (r Rectangle) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", r.A.X, r.A.Y, r.B.X, r.B.Y)
}

// Size is a width and height pair in pixels
type Size struct {
	Width  int
	Height int
}

// UnsetSize marks a dimension pair that was never configured
var UnsetSize = Size{Width: -1, Height: -1}

// IsSet reports whether the size holds an actual measurement
func (s Size) IsSet() bool {
	return s != UnsetSize
}

// String formats the size as [width,height]
func (s Size) String() string {
	return fmt.Sprintf("[%d,%d]", s.Width, s.Height)
}

// Delta is a signed offset pair, one value per axis
type Delta struct {
	Horizontal int
	Vertical   int
}

// String formats the delta as [horizontal,vertical]
func (d Delta) String() string {
	return fmt.Sprintf("[%d,%d]", d.Horizontal, d.Vertical)
}

// Border is a set of four edge widths in pixels
type Border struct {
	Left   int
	Top    int
	Right  int
	Bottom int
}

// String formats the border as [left,top,right,bottom]
func (b Border) String() string {
	return fmt.Sprintf("[%d,%d,%d,%d]", b.Left, b.Top, b.Right, b.Bottom)
}

// Direction selects the axes an operation applies to
type Direction struct {
	Horizontal bool
	Vertical   bool
}

// String formats the direction as [horizontal], [vertical],
// [horizontal,vertical] or [none]
func (d Direction) String() string {
	switch {
	case d.Horizontal && d.Vertical:
		return "[horizontal,vertical]"
	case d.Horizontal:
		return "[horizontal]"
	case d.Vertical:
		return "[vertical]"
	}
	return "[none]"
}

// Pixel is an RGB color value with 8 bits per channel
type Pixel struct {
	R uint8 // Red channel
	G uint8 // Green channel
	B uint8 // Blue channel
}

// The two colors sheets are usually made of
var (
	Black = Pixel{R: 0x00, G: 0x00, B: 0x00}
	White = Pixel{R: 0xff, G: 0xff, B: 0xff}
)

// PixelFromValue unpacks a packed RGB value, one byte per channel: red
// from bits 16-23, green from bits 8-15, blue from bits 0-7. The top
// byte is ignored.
func PixelFromValue(v uint32) Pixel {
	return Pixel{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
	}
}

// Value packs the pixel back into a single RGB value
func (p Pixel) Value() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// String formats the pixel as "black", "white" or a #rrggbb hex triple
func (p Pixel) String() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
