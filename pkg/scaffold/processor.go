// Package scaffold is the template plugin: a processor that passes audio
// through untouched and an editor that paints a greeting.
package scaffold

import (
	"io"

	"github.com/vst3go/plugintemplate/internal/version"
	"github.com/vst3go/plugintemplate/pkg/editor"
	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/plugin"
	"github.com/vst3go/plugintemplate/pkg/framework/process"
)

// PluginInfo describes the template plugin.
var PluginInfo = plugin.Info{
	ID:       "com.vst3go.plugintemplate",
	Name:     "Plugin Template",
	Version:  version.Release().String(),
	Vendor:   "VST3Go",
	Category: "Fx",
}

// Processor is the template's audio processor.
type Processor struct {
	*plugin.Base
}

var _ plugin.Processor = (*Processor)(nil)

// NewProcessor creates a processor with one stereo input and one stereo output.
func NewProcessor() *Processor {
	buses := bus.NewBuilder().
		WithStereoInput("Input").
		WithStereoOutput("Output").
		MustBuild()

	return &Processor{
		Base: plugin.NewBase(PluginInfo, buses),
	}
}

// CreatePlugin is the factory hosts call to instantiate the plugin.
func CreatePlugin() plugin.Processor {
	return NewProcessor()
}

// Factory is CreatePlugin as a plugin.Factory.
var Factory plugin.Factory = CreatePlugin

// PrepareToPlay is where playback initialisation would go.
func (p *Processor) PrepareToPlay(sampleRate float64, samplesPerBlock int) {
	p.Base.PrepareToPlay(sampleRate, samplesPerBlock)
}

// ReleaseResources is where spare memory would be freed when playback stops.
func (p *Processor) ReleaseResources() {
	p.Base.ReleaseResources()
}

// IsBusesLayoutSupported accepts mono or stereo output with a matching input.
func (p *Processor) IsBusesLayoutSupported(layout bus.Layout) bool {
	out := layout.MainOutput()
	if out != bus.Mono && out != bus.Stereo {
		return false
	}
	// Effects need the input layout to match the output layout
	return out == layout.MainInput()
}

// ProcessBlock clears output channels that have no input and leaves the
// rest as the host handed them over. The MIDI buffer is not read.
func (p *Processor) ProcessBlock(ctx *process.Context) {
	ctx.ClearUnusedOutputs()

	// Per-channel processing goes here; output already aliases or mirrors input.
	ctx.PassThrough()
}

// HasEditor reports that the template supplies an editor.
func (p *Processor) HasEditor() bool {
	return true
}

// CreateEditor returns a new editor bound to this processor.
func (p *Processor) CreateEditor() editor.Editor {
	return NewEditor(p)
}

// GetStateInformation writes no state.
func (p *Processor) GetStateInformation(io.Writer) error {
	return nil
}

// SetStateInformation accepts and ignores any data.
func (p *Processor) SetStateInformation([]byte) error {
	return nil
}
