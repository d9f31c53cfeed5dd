package editor

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Default terminal cell size in editor pixels.
const (
	DefaultCellWidth  = 8
	DefaultCellHeight = 16
)

// Canvas is a Graphics that rasterises an editor onto a grid of terminal
// cells. Each cell covers cellWidth x cellHeight editor pixels.
type Canvas struct {
	cols, rows            int
	cellWidth, cellHeight int

	background Colour
	colour     Colour
	font       float32

	cells [][]rune
	ink   [][]Colour
}

// NewCanvas creates a canvas for an editor of width x height pixels.
// Non-positive cell sizes fall back to the defaults.
func NewCanvas(width, height, cellWidth, cellHeight int) *Canvas {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	if cellHeight <= 0 {
		cellHeight = DefaultCellHeight
	}
	c := &Canvas{
		cols:       ceilDiv(width, cellWidth),
		rows:       ceilDiv(height, cellHeight),
		cellWidth:  cellWidth,
		cellHeight: cellHeight,
		background: ColourBlack,
		colour:     ColourBlack,
	}
	c.cells = make([][]rune, c.rows)
	c.ink = make([][]Colour, c.rows)
	for y := range c.cells {
		c.cells[y] = []rune(strings.Repeat(" ", c.cols))
		c.ink[y] = make([]Colour, c.cols)
	}
	return c
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// Dimensions returns the canvas size in cells.
func (c *Canvas) Dimensions() (cols, rows int) {
	return c.cols, c.rows
}

// Background returns the last fill colour.
func (c *Canvas) Background() Colour {
	return c.background
}

// Font returns the current font height.
func (c *Canvas) Font() float32 {
	return c.font
}

// FillAll implements Graphics. It clears every cell.
func (c *Canvas) FillAll(col Colour) {
	c.background = col
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
			c.ink[y][x] = 0
		}
	}
}

// SetColour implements Graphics.
func (c *Canvas) SetColour(col Colour) {
	c.colour = col
}

// SetFont implements Graphics. Cells have a fixed height; the font is only
// kept for inspection.
func (c *Canvas) SetFont(height float32) {
	c.font = height
}

// DrawFittedText implements Graphics. Text that does not fit in the area's
// cell width is truncated with an ellipsis; at most maxLines rows are used.
func (c *Canvas) DrawFittedText(text string, area Rectangle, justification Justification, maxLines int) {
	if area.IsEmpty() || maxLines <= 0 {
		return
	}

	x0 := area.X / c.cellWidth
	y0 := area.Y / c.cellHeight
	cols := ceilDiv(area.Width, c.cellWidth)
	rows := ceilDiv(area.Height, c.cellHeight)
	if cols <= 0 || rows <= 0 {
		return
	}

	lines := fitLines(text, cols, min(maxLines, rows))

	top := y0
	switch {
	case justification&JustifyBottom != 0:
		top = y0 + rows - len(lines)
	case justification&JustifyVerticallyCentred != 0:
		top = y0 + (rows-len(lines))/2
	}

	for i, line := range lines {
		runes := []rune(line)
		left := x0
		switch {
		case justification&JustifyRight != 0:
			left = x0 + cols - len(runes)
		case justification&JustifyHorizontallyCentred != 0:
			left = x0 + (cols-len(runes))/2
		}
		c.put(left, top+i, runes)
	}
}

func (c *Canvas) put(x, y int, runes []rune) {
	if y < 0 || y >= c.rows {
		return
	}
	for i, r := range runes {
		if x+i < 0 || x+i >= c.cols {
			continue
		}
		c.cells[y][x+i] = r
		c.ink[y][x+i] = c.colour
	}
}

// fitLines wraps text on spaces into at most maxLines lines of width cols,
// truncating the final line with an ellipsis when text remains.
func fitLines(text string, cols, maxLines int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	current := ""
	for i, w := range words {
		candidate := w
		if current != "" {
			candidate = current + " " + w
		}
		if len([]rune(candidate)) <= cols || current == "" {
			current = candidate
			continue
		}
		lines = append(lines, current)
		current = w
		if len(lines) == maxLines {
			// Remaining words do not fit
			rest := strings.Join(words[i:], " ")
			lines[maxLines-1] = truncate(lines[maxLines-1]+" "+rest, cols)
			return lines
		}
	}
	lines = append(lines, current)
	if len(lines) > maxLines {
		lines = lines[:maxLines]
	}
	for i := range lines {
		lines[i] = truncate(lines[i], cols)
	}
	return lines
}

func truncate(s string, cols int) string {
	runes := []rune(s)
	if len(runes) <= cols {
		return s
	}
	if cols <= 1 {
		return string(runes[:cols])
	}
	return string(runes[:cols-1]) + "…"
}

// Plain returns the canvas text without colour, one line per row.
func (c *Canvas) Plain() string {
	lines := make([]string, c.rows)
	for y := range c.cells {
		lines[y] = string(c.cells[y])
	}
	return strings.Join(lines, "\n")
}

// Render returns the canvas styled for a terminal.
func (c *Canvas) Render() string {
	base := lipgloss.NewStyle().Background(lipgloss.Color(c.background.Hex()))

	lines := make([]string, c.rows)
	for y := range c.cells {
		var sb strings.Builder
		start := 0
		for x := 1; x <= c.cols; x++ {
			if x < c.cols && c.ink[y][x] == c.ink[y][start] {
				continue
			}
			run := string(c.cells[y][start:x])
			style := base
			if fg := c.ink[y][start]; fg != 0 {
				style = style.Foreground(lipgloss.Color(fg.Hex()))
			}
			sb.WriteString(style.Render(run))
			start = x
		}
		lines[y] = sb.String()
	}
	return strings.Join(lines, "\n")
}
