// Package plugin defines the processor contract a host drives and a base
// implementation that supplies the template defaults.
package plugin

import (
	"io"

	"github.com/vst3go/plugintemplate/pkg/editor"
	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/process"
)

// Processor is the surface a host drives: metadata, programs, lifecycle,
// bus negotiation, audio processing, editor creation and state.
type Processor interface {
	Info() Info
	Name() string
	AcceptsMidi() bool
	ProducesMidi() bool
	IsMidiEffect() bool
	TailLengthSeconds() float64

	NumPrograms() int
	CurrentProgram() int
	SetCurrentProgram(index int)
	ProgramName(index int) string
	ChangeProgramName(index int, name string)

	// PrepareToPlay is called before playback starts.
	PrepareToPlay(sampleRate float64, samplesPerBlock int)
	// ReleaseResources is called when playback stops.
	ReleaseResources()

	IsBusesLayoutSupported(layout bus.Layout) bool
	Buses() *bus.Configuration

	// ProcessBlock processes one block of audio - ZERO ALLOCATIONS!
	ProcessBlock(ctx *process.Context)

	HasEditor() bool
	CreateEditor() editor.Editor

	GetStateInformation(w io.Writer) error
	SetStateInformation(data []byte) error
}

// Factory creates a fresh processor instance.
type Factory func() Processor

// Base provides the defaults every processor starts from
type Base struct {
	info  Info
	buses *bus.Configuration

	sampleRate      float64
	samplesPerBlock int
	prepared        bool
}

// NewBase creates a new plugin base with the given bus configuration
func NewBase(info Info, buses *bus.Configuration) *Base {
	if buses == nil {
		buses = bus.NewStereoConfiguration()
	}
	return &Base{
		info:  info,
		buses: buses,
	}
}

// Info returns the plugin metadata
func (b *Base) Info() Info {
	return b.info
}

// Name returns the display name
func (b *Base) Name() string {
	return b.info.Name
}

// AcceptsMidi reports whether the plugin wants MIDI input
func (b *Base) AcceptsMidi() bool {
	return b.info.WantsMidiInput
}

// ProducesMidi reports whether the plugin emits MIDI
func (b *Base) ProducesMidi() bool {
	return b.info.ProducesMidiOutput
}

// IsMidiEffect reports whether the plugin is a pure MIDI effect
func (b *Base) IsMidiEffect() bool {
	return b.info.IsMidiEffect
}

// TailLengthSeconds - default no tail
func (b *Base) TailLengthSeconds() float64 {
	return 0
}

// NumPrograms returns 1; some hosts misbehave when a plugin reports 0 programs.
func (b *Base) NumPrograms() int {
	return 1
}

// CurrentProgram always returns 0
func (b *Base) CurrentProgram() int {
	return 0
}

// SetCurrentProgram ignores the request
func (b *Base) SetCurrentProgram(int) {}

// ProgramName returns an empty name
func (b *Base) ProgramName(int) string {
	return ""
}

// ChangeProgramName ignores the request
func (b *Base) ChangeProgramName(int, string) {}

// PrepareToPlay records the playback configuration
func (b *Base) PrepareToPlay(sampleRate float64, samplesPerBlock int) {
	b.sampleRate = sampleRate
	b.samplesPerBlock = samplesPerBlock
	b.prepared = true
}

// ReleaseResources marks the processor as stopped
func (b *Base) ReleaseResources() {
	b.prepared = false
}

// SampleRate returns the sample rate from the last PrepareToPlay
func (b *Base) SampleRate() float64 {
	return b.sampleRate
}

// SamplesPerBlock returns the block size from the last PrepareToPlay
func (b *Base) SamplesPerBlock() int {
	return b.samplesPerBlock
}

// IsPrepared reports whether PrepareToPlay ran without a later ReleaseResources
func (b *Base) IsPrepared() bool {
	return b.prepared
}

// IsBusesLayoutSupported accepts only the configuration's current layout
func (b *Base) IsBusesLayoutSupported(layout bus.Layout) bool {
	return layout.Equal(b.buses.Layout())
}

// Buses returns the bus configuration
func (b *Base) Buses() *bus.Configuration {
	return b.buses
}

// TotalNumInputChannels sums the channels of the active input buses
func (b *Base) TotalNumInputChannels() int {
	return int(b.buses.Layout().TotalInputChannels())
}

// TotalNumOutputChannels sums the channels of the active output buses
func (b *Base) TotalNumOutputChannels() int {
	return int(b.buses.Layout().TotalOutputChannels())
}

// HasEditor - default no editor
func (b *Base) HasEditor() bool {
	return false
}

// CreateEditor - default no editor
func (b *Base) CreateEditor() editor.Editor {
	return nil
}

// GetStateInformation writes nothing
func (b *Base) GetStateInformation(io.Writer) error {
	return nil
}

// SetStateInformation ignores the data
func (b *Base) SetStateInformation([]byte) error {
	return nil
}
