package bus

import (
	"errors"
	"fmt"
)

// Builder provides a fluent API for building bus configurations
type Builder struct {
	config *Configuration
	errors []error
}

// NewBuilder creates a new bus configuration builder
func NewBuilder() *Builder {
	return &Builder{
		config: &Configuration{},
	}
}

func (b *Builder) addAudio(direction Direction, busType Type, name string, arr SpeakerArrangement) *Builder {
	b.config.audioBuses = append(b.config.audioBuses, Info{
		MediaType:    MediaTypeAudio,
		Direction:    direction,
		Arrangement:  arr,
		ChannelCount: arr.ChannelCount(),
		Name:         name,
		BusType:      busType,
		// Aux buses start inactive
		IsActive: busType == TypeMain,
	})
	return b
}

// WithInput adds a main audio input bus with the given arrangement
func (b *Builder) WithInput(name string, arr SpeakerArrangement) *Builder {
	return b.addAudio(DirectionInput, TypeMain, name, arr)
}

// WithOutput adds a main audio output bus with the given arrangement
func (b *Builder) WithOutput(name string, arr SpeakerArrangement) *Builder {
	return b.addAudio(DirectionOutput, TypeMain, name, arr)
}

// WithAudioInput adds an audio input bus with a channel count
func (b *Builder) WithAudioInput(name string, channels int32) *Builder {
	if channels <= 0 || channels > MaxChannels {
		b.errors = append(b.errors, fmt.Errorf("invalid channel count %d for bus %s", channels, name))
		return b
	}
	return b.WithInput(name, ArrangementForChannels(channels))
}

// WithAudioOutput adds an audio output bus with a channel count
func (b *Builder) WithAudioOutput(name string, channels int32) *Builder {
	if channels <= 0 || channels > MaxChannels {
		b.errors = append(b.errors, fmt.Errorf("invalid channel count %d for bus %s", channels, name))
		return b
	}
	return b.WithOutput(name, ArrangementForChannels(channels))
}

// WithAuxInput adds an auxiliary audio input bus (e.g., sidechain)
func (b *Builder) WithAuxInput(name string, arr SpeakerArrangement) *Builder {
	return b.addAudio(DirectionInput, TypeAux, name, arr)
}

// WithStereoInput is a convenience method for adding stereo input
func (b *Builder) WithStereoInput(name string) *Builder {
	return b.WithInput(name, Stereo)
}

// WithStereoOutput is a convenience method for adding stereo output
func (b *Builder) WithStereoOutput(name string) *Builder {
	return b.WithOutput(name, Stereo)
}

// WithMonoInput is a convenience method for adding mono input
func (b *Builder) WithMonoInput(name string) *Builder {
	return b.WithInput(name, Mono)
}

// WithMonoOutput is a convenience method for adding mono output
func (b *Builder) WithMonoOutput(name string) *Builder {
	return b.WithOutput(name, Mono)
}

// WithEventInput adds an event (MIDI) input bus
func (b *Builder) WithEventInput(name string) *Builder {
	b.config.AddEventBus(DirectionInput, name)
	return b
}

// WithEventOutput adds an event (MIDI) output bus
func (b *Builder) WithEventOutput(name string) *Builder {
	b.config.AddEventBus(DirectionOutput, name)
	return b
}

// Validate checks if the configuration is valid
func (b *Builder) Validate() error {
	if len(b.errors) > 0 {
		return fmt.Errorf("builder errors: %w", errors.Join(b.errors...))
	}

	hasMainOutput := false
	for _, bus := range b.config.audioBuses {
		if bus.Direction == DirectionOutput && bus.BusType == TypeMain {
			hasMainOutput = true
			break
		}
	}

	// MIDI effects might only have event buses
	if !hasMainOutput {
		for _, bus := range b.config.eventBuses {
			if bus.Direction == DirectionOutput {
				hasMainOutput = true
				break
			}
		}
	}

	if !hasMainOutput {
		return fmt.Errorf("configuration must have at least one main output bus (audio or event)")
	}

	for _, bus := range b.config.audioBuses {
		if bus.ChannelCount > MaxChannels {
			return fmt.Errorf("channel count %d exceeds maximum of %d for bus %s", bus.ChannelCount, MaxChannels, bus.Name)
		}
	}

	return nil
}

// Build returns the built configuration or an error
func (b *Builder) Build() (*Configuration, error) {
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b.config, nil
}

// MustBuild returns the built configuration or panics on error
func (b *Builder) MustBuild() *Configuration {
	config, err := b.Build()
	if err != nil {
		panic(err)
	}
	return config
}
