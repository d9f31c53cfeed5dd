package scaffold

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/process"
	"github.com/vst3go/plugintemplate/pkg/midi"
)

func TestProcessorInfo(t *testing.T) {
	p := NewProcessor()

	assert.Equal(t, "Plugin Template", p.Name())
	assert.NoError(t, p.Info().ValidateUID())
	assert.False(t, p.AcceptsMidi())
	assert.False(t, p.ProducesMidi())
	assert.False(t, p.IsMidiEffect())
	assert.Zero(t, p.TailLengthSeconds())
	assert.Equal(t, 1, p.NumPrograms())
	assert.Equal(t, 0, p.CurrentProgram())
	assert.Empty(t, p.ProgramName(0))

	layout := p.Buses().Layout()
	assert.True(t, layout.Equal(bus.NewLayout(bus.Stereo, bus.Stereo)), "got %s", layout)

	in := p.Buses().GetBusInfo(bus.MediaTypeAudio, bus.DirectionInput, 0)
	require.NotNil(t, in)
	assert.Equal(t, "Input", in.Name)
	assert.True(t, in.IsActive)
}

func TestFactory(t *testing.T) {
	a, b := Factory(), CreatePlugin()
	assert.NotSame(t, a, b)
	assert.Equal(t, a.Info().UID(), b.Info().UID())
}

func TestIsBusesLayoutSupported(t *testing.T) {
	p := NewProcessor()

	for _, in := range bus.NamedArrangements {
		for _, out := range bus.NamedArrangements {
			want := in == out && (out == bus.Mono || out == bus.Stereo)
			layout := bus.NewLayout(in, out)
			assert.Equal(t, want, p.IsBusesLayoutSupported(layout), "layout %s", layout)
		}
	}

	assert.False(t, p.IsBusesLayoutSupported(bus.Layout{}), "no buses")
	assert.True(t, p.IsBusesLayoutSupported(bus.Layout{
		Inputs:  []bus.SpeakerArrangement{bus.Stereo, bus.Mono},
		Outputs: []bus.SpeakerArrangement{bus.Stereo},
	}), "only the main buses are considered")
}

func ramp(channels [][]float32) {
	for ch := range channels {
		for i := range channels[ch] {
			channels[ch][i] = float32(ch+1) + float32(i)/100
		}
	}
}

func TestProcessBlock(t *testing.T) {
	const n = 64

	tests := []struct {
		in, out int
	}{
		{1, 1},
		{2, 2},
		{1, 2},
		{2, 6},
		{0, 2},
		{2, 1},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%din_%dout", tt.in, tt.out), func(t *testing.T) {
			p := NewProcessor()
			p.PrepareToPlay(48000, n)

			input := process.AllocateChannels(tt.in, n)
			ramp(input)
			snapshot := process.AllocateChannels(tt.in, n)
			for ch := range input {
				copy(snapshot[ch], input[ch])
			}

			output := process.AllocateChannels(tt.out, n)
			for ch := range output {
				for i := range output[ch] {
					output[ch][i] = 9
				}
			}

			ctx := process.NewContext(n, 48000)
			ctx.Input, ctx.Output = input, output
			ctx.MIDI.Add(midi.NoteOn(0, 60, 100, 0))
			p.ProcessBlock(ctx)

			assert.Equal(t, snapshot, input, "input must not change")
			for ch := range output {
				if ch >= tt.in {
					assert.Equal(t, make([]float32, n), output[ch], "channel %d should be cleared", ch)
				} else {
					assert.Equal(t, input[ch], output[ch], "channel %d should pass through", ch)
				}
			}
			assert.Equal(t, 1, ctx.MIDI.Len(), "MIDI is left alone")
		})
	}
}

func TestProcessBlockInPlace(t *testing.T) {
	const n = 32
	p := NewProcessor()

	buffers := process.AllocateChannels(2, n)
	ramp(buffers)
	want := process.AllocateChannels(2, n)
	ramp(want)

	ctx := process.NewContext(n, 44100)
	ctx.Input = buffers
	ctx.Output = buffers
	p.ProcessBlock(ctx)

	assert.Equal(t, want, buffers)
}

func TestState(t *testing.T) {
	p := NewProcessor()

	var buf bytes.Buffer
	require.NoError(t, p.GetStateInformation(&buf))
	assert.Zero(t, buf.Len())
	assert.NoError(t, p.SetStateInformation([]byte("anything")))
	assert.NoError(t, p.SetStateInformation(nil))
}

func TestLifecycle(t *testing.T) {
	p := NewProcessor()
	p.PrepareToPlay(96000, 256)
	assert.True(t, p.IsPrepared())
	assert.Equal(t, 96000.0, p.SampleRate())
	assert.Equal(t, 256, p.SamplesPerBlock())

	p.ReleaseResources()
	assert.False(t, p.IsPrepared())
}
