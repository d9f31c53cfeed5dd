// Package bus provides VST3 audio bus configuration and layout negotiation.
package bus

import "fmt"

// MediaType represents the type of bus
type MediaType int32

const (
	// MediaTypeAudio represents audio bus type
	MediaTypeAudio MediaType = 0
	// MediaTypeEvent represents event/MIDI bus type
	MediaTypeEvent MediaType = 1
)

// Direction represents the bus direction
type Direction int32

const (
	// DirectionInput represents input bus
	DirectionInput Direction = 0
	// DirectionOutput represents output bus
	DirectionOutput Direction = 1
)

// Type represents the bus type
type Type int32

const (
	// TypeMain represents main bus
	TypeMain Type = 0
	// TypeAux represents auxiliary bus
	TypeAux Type = 1
)

// MaxChannels is the largest channel count a single bus may carry.
const MaxChannels = 32

// Info contains bus configuration
type Info struct {
	MediaType    MediaType
	Direction    Direction
	Arrangement  SpeakerArrangement
	ChannelCount int32
	Name         string
	BusType      Type
	IsActive     bool
}

// Configuration manages audio and event buses
type Configuration struct {
	audioBuses []Info
	eventBuses []Info
}

// NewStereoConfiguration creates a standard stereo I/O configuration
func NewStereoConfiguration() *Configuration {
	return NewBuilder().
		WithStereoInput("Stereo In").
		WithStereoOutput("Stereo Out").
		MustBuild()
}

// NewMonoConfiguration creates a mono I/O configuration
func NewMonoConfiguration() *Configuration {
	return NewBuilder().
		WithMonoInput("Mono In").
		WithMonoOutput("Mono Out").
		MustBuild()
}

func (c *Configuration) buses(mediaType MediaType) []Info {
	if mediaType == MediaTypeEvent {
		return c.eventBuses
	}
	return c.audioBuses
}

// GetBusCount returns the number of buses for a given type and direction
func (c *Configuration) GetBusCount(mediaType MediaType, direction Direction) int32 {
	count := int32(0)
	for _, bus := range c.buses(mediaType) {
		if bus.Direction == direction {
			count++
		}
	}
	return count
}

// GetBusInfo returns information about a specific bus
func (c *Configuration) GetBusInfo(mediaType MediaType, direction Direction, index int32) *Info {
	buses := c.buses(mediaType)

	busIndex := int32(0)
	for i := range buses {
		if buses[i].Direction == direction {
			if busIndex == index {
				return &buses[i]
			}
			busIndex++
		}
	}

	return nil
}

// SetBusActive activates or deactivates a bus. Inactive audio buses report
// an empty arrangement in Layout.
func (c *Configuration) SetBusActive(mediaType MediaType, direction Direction, index int32, active bool) error {
	info := c.GetBusInfo(mediaType, direction, index)
	if info == nil {
		return fmt.Errorf("bus not found: mediaType=%d, direction=%d, index=%d", mediaType, direction, index)
	}
	info.IsActive = active
	return nil
}

// AddEventBus adds an event bus (for MIDI input)
func (c *Configuration) AddEventBus(direction Direction, name string) {
	c.eventBuses = append(c.eventBuses, Info{
		MediaType:    MediaTypeEvent,
		Direction:    direction,
		ChannelCount: 1,
		Name:         name,
		BusType:      TypeMain,
		IsActive:     true,
	})
}

// Layout reports the arrangements of the audio buses as the host sees them.
func (c *Configuration) Layout() Layout {
	var l Layout
	for _, bus := range c.audioBuses {
		arr := bus.Arrangement
		if !bus.IsActive {
			arr = Empty
		}
		if bus.Direction == DirectionInput {
			l.Inputs = append(l.Inputs, arr)
		} else {
			l.Outputs = append(l.Outputs, arr)
		}
	}
	return l
}

// ApplyLayout rewrites the arrangement of every audio bus. The layout must
// name exactly one arrangement per existing bus in each direction.
func (c *Configuration) ApplyLayout(l Layout) error {
	numIn := c.GetBusCount(MediaTypeAudio, DirectionInput)
	numOut := c.GetBusCount(MediaTypeAudio, DirectionOutput)
	if int32(len(l.Inputs)) != numIn || int32(len(l.Outputs)) != numOut {
		return fmt.Errorf("layout %s has %d/%d buses, configuration has %d/%d",
			l, len(l.Inputs), len(l.Outputs), numIn, numOut)
	}

	for _, arr := range append(append([]SpeakerArrangement{}, l.Inputs...), l.Outputs...) {
		if arr.ChannelCount() > MaxChannels {
			return fmt.Errorf("arrangement %s exceeds maximum of %d channels", arr, MaxChannels)
		}
	}

	in, out := 0, 0
	for i := range c.audioBuses {
		var arr SpeakerArrangement
		if c.audioBuses[i].Direction == DirectionInput {
			arr = l.Inputs[in]
			in++
		} else {
			arr = l.Outputs[out]
			out++
		}
		c.audioBuses[i].Arrangement = arr
		c.audioBuses[i].ChannelCount = arr.ChannelCount()
	}
	return nil
}
