package editor

// Editor is the visual surface a processor hands to the host.
type Editor interface {
	// Size returns the editor size in pixels.
	Size() (width, height int)
	// SetSize resizes the editor and triggers Resized when the size changes.
	SetSize(width, height int)
	// Bounds returns the local bounds, always anchored at the origin.
	Bounds() Rectangle
	// Paint draws the editor.
	Paint(g Graphics)
	// Resized lays out child components after a size change.
	Resized()
}

// Component carries the size bookkeeping shared by editors. Embedders set
// OnResized to receive size changes.
type Component struct {
	width, height int
	lookAndFeel   *LookAndFeel

	OnResized func()
}

// Size returns the component size.
func (c *Component) Size() (int, int) {
	return c.width, c.height
}

// SetSize changes the component size. Negative sizes are clamped to zero.
func (c *Component) SetSize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == c.width && height == c.height {
		return
	}
	c.width, c.height = width, height
	if c.OnResized != nil {
		c.OnResized()
	}
}

// Bounds returns the local bounds.
func (c *Component) Bounds() Rectangle {
	return Rectangle{Width: c.width, Height: c.height}
}

// LookAndFeel returns the component's look and feel, creating the default one lazily.
func (c *Component) LookAndFeel() *LookAndFeel {
	if c.lookAndFeel == nil {
		c.lookAndFeel = DefaultLookAndFeel()
	}
	return c.lookAndFeel
}

// SetLookAndFeel replaces the look and feel.
func (c *Component) SetLookAndFeel(l *LookAndFeel) {
	c.lookAndFeel = l
}
