package bus

import (
	"fmt"
	"math/bits"
)

// SpeakerArrangement is a VST3 speaker bitmask. Each set bit is one channel.
type SpeakerArrangement uint64

// Speaker bits, in VST3 order.
const (
	SpeakerL   SpeakerArrangement = 1 << 0
	SpeakerR   SpeakerArrangement = 1 << 1
	SpeakerC   SpeakerArrangement = 1 << 2
	SpeakerLfe SpeakerArrangement = 1 << 3
	SpeakerLs  SpeakerArrangement = 1 << 4
	SpeakerRs  SpeakerArrangement = 1 << 5
	SpeakerLc  SpeakerArrangement = 1 << 6
	SpeakerRc  SpeakerArrangement = 1 << 7
	SpeakerS   SpeakerArrangement = 1 << 8
	SpeakerSl  SpeakerArrangement = 1 << 9
	SpeakerSr  SpeakerArrangement = 1 << 10
	SpeakerM   SpeakerArrangement = 1 << 19
)

// Common arrangements
const (
	// Empty is a disabled bus with no channels.
	Empty      SpeakerArrangement = 0
	Mono       = SpeakerM
	Stereo     = SpeakerL | SpeakerR
	LCR        = SpeakerL | SpeakerR | SpeakerC
	Quad       = SpeakerL | SpeakerR | SpeakerLs | SpeakerRs
	Surround51 = SpeakerL | SpeakerR | SpeakerC | SpeakerLfe | SpeakerLs | SpeakerRs
	Surround71 = Surround51 | SpeakerSl | SpeakerSr
)

// NamedArrangements lists the arrangements the framework knows by name,
// in ascending channel count.
var NamedArrangements = []SpeakerArrangement{Empty, Mono, Stereo, LCR, Quad, Surround51, Surround71}

// ChannelCount returns the number of channels in the arrangement.
func (a SpeakerArrangement) ChannelCount() int32 {
	return int32(bits.OnesCount64(uint64(a)))
}

// IsDisabled reports whether the arrangement carries no channels.
func (a SpeakerArrangement) IsDisabled() bool {
	return a == Empty
}

func (a SpeakerArrangement) String() string {
	switch a {
	case Empty:
		return "disabled"
	case Mono:
		return "mono"
	case Stereo:
		return "stereo"
	case LCR:
		return "lcr"
	case Quad:
		return "quad"
	case Surround51:
		return "5.1"
	case Surround71:
		return "7.1"
	default:
		return fmt.Sprintf("discrete(%d)", a.ChannelCount())
	}
}

// ParseArrangement maps a name produced by String back to an arrangement.
func ParseArrangement(name string) (SpeakerArrangement, error) {
	for _, a := range NamedArrangements {
		if a.String() == name {
			return a, nil
		}
	}
	return Empty, fmt.Errorf("unknown speaker arrangement %q", name)
}

// ArrangementForChannels returns the default arrangement for a channel count.
// Counts without a named arrangement get a discrete bitmask.
func ArrangementForChannels(channels int32) SpeakerArrangement {
	switch channels {
	case 0:
		return Empty
	case 1:
		return Mono
	case 2:
		return Stereo
	case 3:
		return LCR
	case 4:
		return Quad
	case 6:
		return Surround51
	case 8:
		return Surround71
	}
	if channels < 0 || channels > 64 {
		return Empty
	}
	if channels == 64 {
		return SpeakerArrangement(^uint64(0))
	}
	return SpeakerArrangement(uint64(1)<<uint(channels) - 1)
}
