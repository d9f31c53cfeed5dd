// Package process provides audio processing context and utilities for VST3 audio processing.
package process

import (
	"github.com/vst3go/plugintemplate/pkg/midi"
)

// Context carries one block of audio between the host and a processor.
// Input and Output may share backing arrays when the host processes in place.
type Context struct {
	Input      [][]float32
	Output     [][]float32
	SampleRate float64

	// MIDI messages for this block; never nil for contexts from NewContext
	MIDI *midi.Buffer

	// Pre-allocated work buffer
	workBuffer []float32
}

// NewContext creates a new process context with pre-allocated buffers
func NewContext(maxBlockSize int, sampleRate float64) *Context {
	return &Context{
		SampleRate: sampleRate,
		MIDI:       midi.NewBuffer(64),
		workBuffer: make([]float32, maxBlockSize),
	}
}

// NumSamples returns the number of samples to process
func (c *Context) NumSamples() int {
	if len(c.Input) > 0 && len(c.Input[0]) > 0 {
		return len(c.Input[0])
	}
	if len(c.Output) > 0 && len(c.Output[0]) > 0 {
		return len(c.Output[0])
	}
	return 0
}

// NumInputChannels returns the number of input channels
func (c *Context) NumInputChannels() int {
	return len(c.Input)
}

// NumOutputChannels returns the number of output channels
func (c *Context) NumOutputChannels() int {
	return len(c.Output)
}

// WorkBuffer returns a slice of the pre-allocated work buffer
// sized to the current block size - no allocation!
func (c *Context) WorkBuffer() []float32 {
	n := c.NumSamples()
	if n > len(c.workBuffer) {
		n = len(c.workBuffer)
	}
	return c.workBuffer[:n]
}

// PassThrough copies input to output (for bypass). Aliased channels are left alone.
func (c *Context) PassThrough() {
	numChannels := c.GetNumChannels()
	for ch := 0; ch < numChannels; ch++ {
		if sameBuffer(c.Input[ch], c.Output[ch]) {
			continue
		}
		copy(c.Output[ch], c.Input[ch])
	}
}

// Clear zeros the output buffers
func (c *Context) Clear() {
	for ch := range c.Output {
		clear(c.Output[ch])
	}
}

// ClearChannel zeros numSamples output samples of channel ch starting at start.
// Out of range requests are clipped to the channel.
func (c *Context) ClearChannel(ch, start, numSamples int) {
	if ch < 0 || ch >= len(c.Output) || start < 0 || numSamples <= 0 {
		return
	}
	out := c.Output[ch]
	if start >= len(out) {
		return
	}
	end := start + numSamples
	if end > len(out) {
		end = len(out)
	}
	clear(out[start:end])
}

// ClearUnusedOutputs zeros every output channel that has no matching input
// channel. It returns the number of channels cleared.
func (c *Context) ClearUnusedOutputs() int {
	cleared := 0
	n := c.NumSamples()
	for ch := c.NumInputChannels(); ch < c.NumOutputChannels(); ch++ {
		c.ClearChannel(ch, 0, n)
		cleared++
	}
	return cleared
}

func sameBuffer(a, b []float32) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}
