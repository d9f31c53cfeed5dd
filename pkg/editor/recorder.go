package editor

import (
	"fmt"
	"strings"
)

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpFillAll OpKind = iota
	OpSetColour
	OpSetFont
	OpDrawFittedText
)

func (k OpKind) String() string {
	switch k {
	case OpFillAll:
		return "fillAll"
	case OpSetColour:
		return "setColour"
	case OpSetFont:
		return "setFont"
	case OpDrawFittedText:
		return "drawFittedText"
	default:
		return fmt.Sprintf("op(%d)", int(k))
	}
}

// Op is one recorded drawing call.
type Op struct {
	Kind          OpKind
	Colour        Colour
	Font          float32
	Text          string
	Area          Rectangle
	Justification Justification
	MaxLines      int
}

func (o Op) String() string {
	switch o.Kind {
	case OpFillAll, OpSetColour:
		return fmt.Sprintf("%s(%s)", o.Kind, o.Colour)
	case OpSetFont:
		return fmt.Sprintf("%s(%g)", o.Kind, o.Font)
	default:
		return fmt.Sprintf("%s(%q, {%d %d %d %d}, %s, %d)", o.Kind, o.Text,
			o.Area.X, o.Area.Y, o.Area.Width, o.Area.Height, o.Justification, o.MaxLines)
	}
}

// Recorder is a Graphics that remembers every call instead of drawing.
type Recorder struct {
	Ops []Op
}

// FillAll implements Graphics.
func (r *Recorder) FillAll(c Colour) {
	r.Ops = append(r.Ops, Op{Kind: OpFillAll, Colour: c})
}

// SetColour implements Graphics.
func (r *Recorder) SetColour(c Colour) {
	r.Ops = append(r.Ops, Op{Kind: OpSetColour, Colour: c})
}

// SetFont implements Graphics.
func (r *Recorder) SetFont(height float32) {
	r.Ops = append(r.Ops, Op{Kind: OpSetFont, Font: height})
}

// DrawFittedText implements Graphics.
func (r *Recorder) DrawFittedText(text string, area Rectangle, justification Justification, maxLines int) {
	r.Ops = append(r.Ops, Op{
		Kind:          OpDrawFittedText,
		Text:          text,
		Area:          area,
		Justification: justification,
		MaxLines:      maxLines,
	})
}

// String lists the recorded calls, one per line.
func (r *Recorder) String() string {
	var sb strings.Builder
	for _, op := range r.Ops {
		sb.WriteString(op.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
