package bus

import "strings"

// Layout is a set of speaker arrangements proposed by the host, one per
// audio bus. The first entry in each direction is the main bus.
type Layout struct {
	Inputs  []SpeakerArrangement
	Outputs []SpeakerArrangement
}

// NewLayout creates a layout with a single main input and main output bus.
func NewLayout(in, out SpeakerArrangement) Layout {
	return Layout{
		Inputs:  []SpeakerArrangement{in},
		Outputs: []SpeakerArrangement{out},
	}
}

// MainInput returns the main input arrangement, or Empty if there is none.
func (l Layout) MainInput() SpeakerArrangement {
	if len(l.Inputs) == 0 {
		return Empty
	}
	return l.Inputs[0]
}

// MainOutput returns the main output arrangement, or Empty if there is none.
func (l Layout) MainOutput() SpeakerArrangement {
	if len(l.Outputs) == 0 {
		return Empty
	}
	return l.Outputs[0]
}

// TotalInputChannels sums the channels over every input bus.
func (l Layout) TotalInputChannels() int32 {
	return sumChannels(l.Inputs)
}

// TotalOutputChannels sums the channels over every output bus.
func (l Layout) TotalOutputChannels() int32 {
	return sumChannels(l.Outputs)
}

// Equal reports whether both layouts carry the same arrangements in order.
func (l Layout) Equal(other Layout) bool {
	return equalArrangements(l.Inputs, other.Inputs) && equalArrangements(l.Outputs, other.Outputs)
}

func (l Layout) String() string {
	return joinArrangements(l.Inputs) + " -> " + joinArrangements(l.Outputs)
}

func sumChannels(arrs []SpeakerArrangement) int32 {
	var total int32
	for _, a := range arrs {
		total += a.ChannelCount()
	}
	return total
}

func equalArrangements(a, b []SpeakerArrangement) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func joinArrangements(arrs []SpeakerArrangement) string {
	if len(arrs) == 0 {
		return "none"
	}
	names := make([]string, len(arrs))
	for i, a := range arrs {
		names[i] = a.String()
	}
	return strings.Join(names, "+")
}
