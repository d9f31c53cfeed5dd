package editor

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type labelEditor struct {
	Component
	label   string
	resizes int
}

func newLabelEditor(label string) *labelEditor {
	e := &labelEditor{label: label}
	e.OnResized = e.Resized
	e.SetSize(160, 48)
	return e
}

func (e *labelEditor) Paint(g Graphics) {
	g.FillAll(e.LookAndFeel().FindColour(WindowBackgroundColourID))
	g.SetColour(ColourWhite)
	g.SetFont(15)
	g.DrawFittedText(e.label, e.Bounds(), JustifyCentred, 1)
}

func (e *labelEditor) Resized() {
	e.resizes++
}

func TestComponentSize(t *testing.T) {
	e := newLabelEditor("x")
	assert.Equal(t, 1, e.resizes)

	w, h := e.Size()
	assert.Equal(t, 160, w)
	assert.Equal(t, 48, h)
	assert.Equal(t, Rectangle{Width: 160, Height: 48}, e.Bounds())

	e.SetSize(160, 48)
	assert.Equal(t, 1, e.resizes, "same size must not trigger Resized")

	e.SetSize(-5, 10)
	w, h = e.Size()
	assert.Equal(t, 0, w)
	assert.Equal(t, 10, h)
	assert.True(t, e.Bounds().IsEmpty())
}

func TestLookAndFeel(t *testing.T) {
	lf := DefaultLookAndFeel()
	assert.Equal(t, Colour(0xff323e44), lf.FindColour(WindowBackgroundColourID))
	assert.Equal(t, ColourBlack, lf.FindColour(ColourID(99)))

	lf.SetColour(WindowBackgroundColourID, 0xff102030)
	assert.Equal(t, "#102030", lf.FindColour(WindowBackgroundColourID).Hex())
}

func TestRecorder(t *testing.T) {
	e := newLabelEditor("Hi")
	rec := &Recorder{}
	e.Paint(rec)

	require.Len(t, rec.Ops, 4)
	assert.Equal(t, OpFillAll, rec.Ops[0].Kind)
	assert.Equal(t, OpSetColour, rec.Ops[1].Kind)
	assert.Equal(t, float32(15), rec.Ops[2].Font)
	assert.Equal(t, "Hi", rec.Ops[3].Text)
	assert.Equal(t, JustifyCentred, rec.Ops[3].Justification)

	dump := rec.String()
	assert.Contains(t, dump, "fillAll(0xff323e44)")
	assert.Contains(t, dump, `drawFittedText("Hi", {0 0 160 48}, centred, 1)`)
}

func TestCanvasCentresText(t *testing.T) {
	e := newLabelEditor("Hello")
	canvas := NewCanvas(160, 48, 8, 16)
	e.Paint(canvas)

	cols, rows := canvas.Dimensions()
	assert.Equal(t, 20, cols)
	assert.Equal(t, 3, rows)

	lines := strings.Split(canvas.Plain(), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, strings.Repeat(" ", 20), lines[0])
	assert.Equal(t, "       Hello        ", lines[1])
	assert.Equal(t, Colour(0xff323e44), canvas.Background())
	assert.Equal(t, float32(15), canvas.Font())

	assert.Contains(t, canvas.Render(), "Hello")
}

func TestCanvasTruncates(t *testing.T) {
	canvas := NewCanvas(48, 16, 8, 16)
	canvas.DrawFittedText("Hello World!", Rectangle{Width: 48, Height: 16}, JustifyCentred, 1)
	assert.Equal(t, "Hello…", canvas.Plain())

	canvas.FillAll(ColourBlack)
	assert.Equal(t, "      ", canvas.Plain())

	canvas.DrawFittedText("ignored", Rectangle{}, JustifyCentred, 1)
	canvas.DrawFittedText("ignored", Rectangle{Width: 48, Height: 16}, JustifyCentred, 0)
	assert.Equal(t, "      ", canvas.Plain())
}

func TestCanvasWrapsLines(t *testing.T) {
	canvas := NewCanvas(64, 32, 8, 16)
	canvas.DrawFittedText("one two three", Rectangle{Width: 64, Height: 32}, JustifyLeft|JustifyTop, 2)
	assert.Equal(t, "one two \nthree   ", canvas.Plain())

	canvas.FillAll(ColourBlack)
	canvas.DrawFittedText("one two three four", Rectangle{Width: 64, Height: 32}, JustifyRight|JustifyTop, 2)
	assert.Equal(t, " one two\nthree f…", canvas.Plain())
}

func TestViewLifecycle(t *testing.T) {
	e := newLabelEditor("Hi")
	v := NewView(e, 0, 0)

	assert.Nil(t, v.Init())

	_, cmd := v.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	assert.Nil(t, cmd)
	w, _ := e.Size()
	assert.Equal(t, 160, w, "fixed size editor ignores terminal resize")
	assert.Contains(t, v.View(), "Hi")

	v.Resizable = true
	v.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	w, h := e.Size()
	assert.Equal(t, 40*DefaultCellWidth, w)
	assert.Equal(t, 10*DefaultCellHeight, h)

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
