package scaffold

import (
	"github.com/vst3go/plugintemplate/pkg/editor"
)

// Editor dimensions in pixels.
const (
	EditorWidth  = 400
	EditorHeight = 300
)

// Greeting is the text the editor paints.
const Greeting = "Hello World!"

// Editor is the template's editor window.
type Editor struct {
	editor.Component

	processor *Processor
}

var _ editor.Editor = (*Editor)(nil)

// NewEditor creates an editor for p at its fixed size.
func NewEditor(p *Processor) *Editor {
	e := &Editor{processor: p}
	e.OnResized = e.Resized
	e.SetSize(EditorWidth, EditorHeight)
	return e
}

// Processor returns the processor this editor belongs to.
func (e *Editor) Processor() *Processor {
	return e.processor
}

// Paint fills the background and draws the greeting in the centre.
func (e *Editor) Paint(g editor.Graphics) {
	g.FillAll(e.LookAndFeel().FindColour(editor.WindowBackgroundColourID))

	g.SetColour(editor.ColourWhite)
	g.SetFont(15)
	g.DrawFittedText(Greeting, e.Bounds(), editor.JustifyCentred, 1)
}

// Resized would lay out subcomponents; the template has none.
func (e *Editor) Resized() {}
