// Package editor provides the plugin editor surface: a component with a
// size, a paint callback and the drawing primitives it paints with.
package editor

import "fmt"

// Colour is a 32-bit ARGB colour.
type Colour uint32

// Common colours
const (
	ColourTransparent Colour = 0x00000000
	ColourBlack       Colour = 0xff000000
	ColourWhite       Colour = 0xffffffff
)

// Alpha returns the alpha component.
func (c Colour) Alpha() uint8 { return uint8(c >> 24) }

// Red returns the red component.
func (c Colour) Red() uint8 { return uint8(c >> 16) }

// Green returns the green component.
func (c Colour) Green() uint8 { return uint8(c >> 8) }

// Blue returns the blue component.
func (c Colour) Blue() uint8 { return uint8(c) }

// Hex formats the colour as #rrggbb, dropping alpha.
func (c Colour) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.Red(), c.Green(), c.Blue())
}

func (c Colour) String() string {
	return fmt.Sprintf("0x%08x", uint32(c))
}

// Rectangle is an integer area in editor pixels.
type Rectangle struct {
	X, Y, Width, Height int
}

// IsEmpty reports whether the rectangle has no area.
func (r Rectangle) IsEmpty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Justification places text inside a rectangle.
type Justification int

const (
	JustifyLeft Justification = 1 << iota
	JustifyRight
	JustifyHorizontallyCentred
	JustifyTop
	JustifyBottom
	JustifyVerticallyCentred

	JustifyCentred = JustifyHorizontallyCentred | JustifyVerticallyCentred
)

func (j Justification) String() string {
	switch j {
	case JustifyCentred:
		return "centred"
	case JustifyLeft:
		return "left"
	case JustifyRight:
		return "right"
	default:
		return fmt.Sprintf("justification(%d)", int(j))
	}
}

// Graphics is the drawing context handed to Editor.Paint.
type Graphics interface {
	// FillAll fills the whole clip area with a colour.
	FillAll(c Colour)
	// SetColour sets the colour for subsequent text drawing.
	SetColour(c Colour)
	// SetFont sets the font height in points.
	SetFont(height float32)
	// DrawFittedText draws text inside area, squeezing or truncating it so it
	// fits in at most maxLines lines.
	DrawFittedText(text string, area Rectangle, justification Justification, maxLines int)
}
