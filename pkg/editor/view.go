package editor

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// View hosts an Editor inside a bubbletea program.
type View struct {
	editor                Editor
	cellWidth, cellHeight int

	// Resizable makes terminal resizes resize the editor. Otherwise the
	// editor keeps its own size and is centred in the terminal.
	Resizable bool

	termWidth, termHeight int
}

var _ tea.Model = (*View)(nil)

// NewView creates a view for e. Non-positive cell sizes use the defaults.
func NewView(e Editor, cellWidth, cellHeight int) *View {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	return &View{editor: e, cellWidth: cellWidth, cellHeight: cellHeight}
}

// Init implements tea.Model.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (v *View) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.termWidth, v.termHeight = msg.Width, msg.Height
		if v.Resizable {
			v.editor.SetSize(msg.Width*v.cellWidth, msg.Height*v.cellHeight)
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "esc", "ctrl+c":
			return v, tea.Quit
		}
	}
	return v, nil
}

// View implements tea.Model.
func (v *View) View() string {
	w, h := v.editor.Size()
	canvas := NewCanvas(w, h, v.cellWidth, v.cellHeight)
	v.editor.Paint(canvas)
	out := canvas.Render()

	if v.termWidth > 0 && v.termHeight > 0 {
		out = lipgloss.Place(v.termWidth, v.termHeight, lipgloss.Center, lipgloss.Center, out)
	}
	return out
}
