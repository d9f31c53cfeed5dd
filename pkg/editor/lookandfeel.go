package editor

// ColourID names a themable colour.
type ColourID int

const (
	// WindowBackgroundColourID is the background of resizable windows.
	WindowBackgroundColourID ColourID = iota
	// TextColourID is the default text colour.
	TextColourID
)

// LookAndFeel maps colour ids to colours.
type LookAndFeel struct {
	colours map[ColourID]Colour
}

// DefaultLookAndFeel returns the stock dark scheme.
func DefaultLookAndFeel() *LookAndFeel {
	return &LookAndFeel{
		colours: map[ColourID]Colour{
			WindowBackgroundColourID: 0xff323e44,
			TextColourID:             ColourWhite,
		},
	}
}

// FindColour returns the colour for id, or black when unset.
func (l *LookAndFeel) FindColour(id ColourID) Colour {
	if c, ok := l.colours[id]; ok {
		return c
	}
	return ColourBlack
}

// SetColour overrides the colour for id.
func (l *LookAndFeel) SetColour(id ColourID, c Colour) {
	l.colours[id] = c
}
