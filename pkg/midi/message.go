// Package midi holds the MIDI messages a host delivers alongside each audio block.
package midi

import "fmt"

// Status is the high nibble of a channel voice message.
type Status uint8

const (
	StatusNoteOff         Status = 0x80
	StatusNoteOn          Status = 0x90
	StatusPolyPressure    Status = 0xA0
	StatusControlChange   Status = 0xB0
	StatusProgramChange   Status = 0xC0
	StatusChannelPressure Status = 0xD0
	StatusPitchBend       Status = 0xE0
)

func (s Status) String() string {
	switch s {
	case StatusNoteOff:
		return "NoteOff"
	case StatusNoteOn:
		return "NoteOn"
	case StatusPolyPressure:
		return "PolyPressure"
	case StatusControlChange:
		return "CC"
	case StatusProgramChange:
		return "ProgramChange"
	case StatusChannelPressure:
		return "ChannelPressure"
	case StatusPitchBend:
		return "PitchBend"
	default:
		return fmt.Sprintf("Status(0x%02X)", uint8(s))
	}
}

// Message is a short MIDI channel message positioned within a block.
type Message struct {
	// Offset is the sample position inside the current block.
	Offset int32
	Data   [3]byte
	Size   uint8
}

func channelMessage(status Status, channel, d1, d2 uint8, offset int32) Message {
	return Message{
		Offset: offset,
		Data:   [3]byte{uint8(status) | channel&0x0F, d1 & 0x7F, d2 & 0x7F},
		Size:   3,
	}
}

// NoteOn creates a note-on message.
func NoteOn(channel, note, velocity uint8, offset int32) Message {
	return channelMessage(StatusNoteOn, channel, note, velocity, offset)
}

// NoteOff creates a note-off message.
func NoteOff(channel, note, velocity uint8, offset int32) Message {
	return channelMessage(StatusNoteOff, channel, note, velocity, offset)
}

// ControlChange creates a controller message.
func ControlChange(channel, controller, value uint8, offset int32) Message {
	return channelMessage(StatusControlChange, channel, controller, value, offset)
}

// PitchBend creates a pitch bend message. value is in [-8192, 8191], 0 is centre.
func PitchBend(channel uint8, value int16, offset int32) Message {
	v := int32(value) + 8192
	if v < 0 {
		v = 0
	}
	if v > 16383 {
		v = 16383
	}
	return channelMessage(StatusPitchBend, channel, uint8(v&0x7F), uint8(v>>7), offset)
}

// Status returns the message type without the channel.
func (m Message) Status() Status {
	return Status(m.Data[0] & 0xF0)
}

// Channel returns the zero-based MIDI channel.
func (m Message) Channel() uint8 {
	return m.Data[0] & 0x0F
}

// IsNoteOn reports a note-on with non-zero velocity.
func (m Message) IsNoteOn() bool {
	return m.Status() == StatusNoteOn && m.Data[2] > 0
}

// IsNoteOff reports a note-off, including note-on with zero velocity.
func (m Message) IsNoteOff() bool {
	return m.Status() == StatusNoteOff || (m.Status() == StatusNoteOn && m.Data[2] == 0)
}

// PitchBendValue decodes a pitch bend message into [-8192, 8191].
func (m Message) PitchBendValue() int16 {
	return int16(int32(m.Data[1])|int32(m.Data[2])<<7) - 8192
}

func (m Message) String() string {
	return fmt.Sprintf("%s{ch:%d, %d, %d, offset:%d}", m.Status(), m.Channel(), m.Data[1], m.Data[2], m.Offset)
}
