package process

import (
	"testing"

	"github.com/vst3go/plugintemplate/pkg/midi"
)

func fill(ch []float32, v float32) {
	for i := range ch {
		ch[i] = v
	}
}

func TestNewContext(t *testing.T) {
	ctx := NewContext(512, 48000)

	if ctx.SampleRate != 48000 {
		t.Errorf("Expected sample rate 48000, got %f", ctx.SampleRate)
	}
	if ctx.MIDI == nil || !ctx.MIDI.IsEmpty() {
		t.Error("Expected empty MIDI buffer")
	}
	if ctx.NumSamples() != 0 {
		t.Errorf("Expected 0 samples without buffers, got %d", ctx.NumSamples())
	}

	ctx.Output = AllocateChannels(2, 256)
	if ctx.NumSamples() != 256 {
		t.Errorf("Expected sample count from output, got %d", ctx.NumSamples())
	}
	if len(ctx.WorkBuffer()) != 256 {
		t.Errorf("Expected work buffer of 256, got %d", len(ctx.WorkBuffer()))
	}
}

func TestPassThrough(t *testing.T) {
	ctx := NewContext(64, 44100)
	ctx.Input = AllocateChannels(2, 64)
	ctx.Output = AllocateChannels(2, 64)
	fill(ctx.Input[0], 0.5)
	fill(ctx.Input[1], -0.25)

	ctx.PassThrough()

	for i := range ctx.Output[0] {
		if ctx.Output[0][i] != 0.5 || ctx.Output[1][i] != -0.25 {
			t.Fatalf("Sample %d not passed through", i)
		}
	}
}

func TestPassThroughInPlace(t *testing.T) {
	ctx := NewContext(16, 44100)
	shared := AllocateChannels(1, 16)
	fill(shared[0], 0.75)
	ctx.Input = shared
	ctx.Output = shared

	ctx.PassThrough()

	for i, s := range ctx.Input[0] {
		if s != 0.75 {
			t.Fatalf("In-place pass through modified sample %d: %f", i, s)
		}
	}
}

func TestClearChannel(t *testing.T) {
	ctx := NewContext(8, 44100)
	ctx.Output = AllocateChannels(1, 8)
	fill(ctx.Output[0], 1)

	ctx.ClearChannel(0, 2, 3)
	want := []float32{1, 1, 0, 0, 0, 1, 1, 1}
	for i := range want {
		if ctx.Output[0][i] != want[i] {
			t.Errorf("Sample %d: want %f, got %f", i, want[i], ctx.Output[0][i])
		}
	}

	// Out of range requests are ignored or clipped
	ctx.ClearChannel(5, 0, 8)
	ctx.ClearChannel(0, 100, 8)
	ctx.ClearChannel(0, -1, 8)
	ctx.ClearChannel(0, 6, 100)
	if ctx.Output[0][5] != 1 || ctx.Output[0][6] != 0 || ctx.Output[0][7] != 0 {
		t.Errorf("Unexpected clip behaviour: %v", ctx.Output[0])
	}

	fill(ctx.Output[0], 1)
	ctx.Clear()
	for i, s := range ctx.Output[0] {
		if s != 0 {
			t.Fatalf("Clear left sample %d at %f", i, s)
		}
	}
}

func TestClearUnusedOutputs(t *testing.T) {
	tests := []struct {
		name        string
		inChannels  int
		outChannels int
		wantCleared int
	}{
		{"Stereo", 2, 2, 0},
		{"MonoToStereo", 1, 2, 1},
		{"NoInput", 0, 2, 2},
		{"MoreInputs", 4, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := NewContext(32, 44100)
			ctx.Input = AllocateChannels(tt.inChannels, 32)
			ctx.Output = AllocateChannels(tt.outChannels, 32)
			for _, ch := range ctx.Input {
				fill(ch, 0.1)
			}
			for _, ch := range ctx.Output {
				fill(ch, 0.9)
			}

			if got := ctx.ClearUnusedOutputs(); got != tt.wantCleared {
				t.Errorf("Expected %d cleared channels, got %d", tt.wantCleared, got)
			}

			for ch, out := range ctx.Output {
				want := float32(0.9)
				if ch >= tt.inChannels {
					want = 0
				}
				for i, s := range out {
					if s != want {
						t.Fatalf("Channel %d sample %d: want %f, got %f", ch, i, want, s)
					}
				}
			}
			for ch, in := range ctx.Input {
				for i, s := range in {
					if s != 0.1 {
						t.Fatalf("Input channel %d sample %d modified: %f", ch, i, s)
					}
				}
			}
		})
	}
}

func TestHelpers(t *testing.T) {
	ctx := NewContext(16, 44100)
	ctx.Input = AllocateChannels(3, 16)
	ctx.Output = AllocateChannels(2, 16)
	ctx.MIDI.Add(midi.NoteOn(0, 60, 1, 0))

	if ctx.GetNumChannels() != 2 {
		t.Errorf("Expected 2 shared channels, got %d", ctx.GetNumChannels())
	}

	visited := 0
	ctx.ProcessChannels(func(ch int, input, output []float32) {
		visited++
	})
	if visited != 2 {
		t.Errorf("Expected 2 channels visited, got %d", visited)
	}

	mono := 0
	ctx.ProcessMono(func(input, output []float32) { mono++ })
	if mono != 1 {
		t.Error("ProcessMono should visit the first channel once")
	}

	views := Slice(nil, ctx.Input, 4)
	if len(views) != 3 || len(views[0]) != 4 {
		t.Errorf("Unexpected slice views: %d channels, %d samples", len(views), len(views[0]))
	}
	views = Slice(views, ctx.Input, 100)
	if len(views[0]) != 16 {
		t.Errorf("Slice should clip to channel length, got %d", len(views[0]))
	}
}
