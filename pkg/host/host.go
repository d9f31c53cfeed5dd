// Package host drives a plugin.Processor offline: it negotiates a bus
// layout, prepares the processor and renders PCM audio through it block
// by block.
package host

import (
	"context"
	"math"

	"github.com/go-audio/audio"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/vst3go/plugintemplate/pkg/framework/bus"
	"github.com/vst3go/plugintemplate/pkg/framework/debug"
	"github.com/vst3go/plugintemplate/pkg/framework/plugin"
	"github.com/vst3go/plugintemplate/pkg/framework/process"
)

// Defaults used when no option overrides them.
const (
	DefaultSampleRate = 48000
	DefaultBlockSize  = 512
)

// Host runs a single processor instance.
type Host struct {
	processor  plugin.Processor
	sampleRate float64
	blockSize  int
	logger     *debug.Logger
	profiler   *debug.BlockProfiler

	layout     bus.Layout
	negotiated bool
	prepared   bool

	// Channel storage shared by input and output, as hosts process in place
	channels [][]float32
	views    struct{ in, out [][]float32 }
	ctx      *process.Context
}

// Option configures a Host.
type Option func(*Host)

// WithSampleRate sets the rate passed to PrepareToPlay.
func WithSampleRate(rate float64) Option {
	return func(h *Host) { h.sampleRate = rate }
}

// WithBlockSize sets the maximum block size passed to PrepareToPlay.
func WithBlockSize(size int) Option {
	return func(h *Host) { h.blockSize = size }
}

// WithLogger sets the logger. The default is debug.Default().
func WithLogger(l *debug.Logger) Option {
	return func(h *Host) { h.logger = l }
}

// WithProfiler sets the profiler that times each ProcessBlock call.
func WithProfiler(p *debug.BlockProfiler) Option {
	return func(h *Host) { h.profiler = p }
}

// New creates a host for p.
func New(p plugin.Processor, opts ...Option) (*Host, error) {
	if p == nil {
		return nil, errors.New("nil processor")
	}

	h := &Host{
		processor:  p,
		sampleRate: DefaultSampleRate,
		blockSize:  DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.sampleRate <= 0 {
		return nil, errors.Errorf("invalid sample rate %v", h.sampleRate)
	}
	if h.blockSize <= 0 {
		return nil, errors.Errorf("invalid block size %v", h.blockSize)
	}
	if h.logger == nil {
		h.logger = debug.Default()
	}
	if h.profiler == nil {
		h.profiler = debug.NewBlockProfiler(h.sampleRate)
	}
	h.logger = h.logger.WithPrefix("host")
	return h, nil
}

// Processor returns the hosted processor.
func (h *Host) Processor() plugin.Processor {
	return h.processor
}

// SampleRate returns the configured sample rate.
func (h *Host) SampleRate() float64 {
	return h.sampleRate
}

// BlockSize returns the configured maximum block size.
func (h *Host) BlockSize() int {
	return h.blockSize
}

// Layout returns the negotiated layout.
func (h *Host) Layout() bus.Layout {
	return h.layout
}

// Profiler returns the block profiler.
func (h *Host) Profiler() *debug.BlockProfiler {
	return h.profiler
}

// Negotiate offers candidate layouts in order and applies the first one the
// processor supports to its bus configuration. Without candidates the
// processor's current layout is offered.
func (h *Host) Negotiate(candidates ...bus.Layout) (bus.Layout, error) {
	if h.prepared {
		return bus.Layout{}, errors.New("cannot change layout while prepared")
	}
	if len(candidates) == 0 {
		candidates = []bus.Layout{h.processor.Buses().Layout()}
	}

	for _, c := range candidates {
		if !h.processor.IsBusesLayoutSupported(c) {
			h.logger.Debug("layout %s rejected", c)
			continue
		}
		if err := h.processor.Buses().ApplyLayout(c); err != nil {
			h.logger.Warn("layout %s accepted but not applicable: %v", c, err)
			continue
		}
		h.layout = c
		h.negotiated = true
		h.logger.Info("negotiated layout %s", c)
		return c, nil
	}

	return bus.Layout{}, errors.Errorf("no supported layout among %d candidates", len(candidates))
}

// Prepare negotiates a layout if none was, allocates buffers and calls
// PrepareToPlay.
func (h *Host) Prepare() error {
	if h.prepared {
		return nil
	}
	if !h.negotiated {
		if _, err := h.Negotiate(); err != nil {
			return errors.Wrapf(err, "negotiate")
		}
	}

	numChannels := max(int(h.layout.TotalInputChannels()), int(h.layout.TotalOutputChannels()))
	h.channels = process.AllocateChannels(numChannels, h.blockSize)
	h.ctx = process.NewContext(h.blockSize, h.sampleRate)

	h.processor.PrepareToPlay(h.sampleRate, h.blockSize)
	h.prepared = true
	h.logger.Info("prepared %s at %.0f Hz, %d samples per block", h.processor.Name(), h.sampleRate, h.blockSize)
	return nil
}

// Release calls ReleaseResources. It is safe to call when not prepared.
func (h *Host) Release() {
	if !h.prepared {
		return
	}
	h.processor.ReleaseResources()
	h.prepared = false
	h.logger.Info("released %s", h.processor.Name())
}

// Render processes in through the processor and returns a buffer with the
// negotiated output channel count at the same bit depth. The context is
// checked between blocks.
func (h *Host) Render(ctx context.Context, in *audio.IntBuffer) (*audio.IntBuffer, error) {
	if !h.prepared {
		return nil, errors.New("host is not prepared")
	}
	if in == nil || in.Format == nil {
		return nil, errors.New("input buffer has no format")
	}

	numIn := int(h.layout.TotalInputChannels())
	numOut := int(h.layout.TotalOutputChannels())
	if in.Format.NumChannels != numIn {
		return nil, errors.Errorf("input has %d channels, layout %s expects %d", in.Format.NumChannels, h.layout, numIn)
	}
	bits := in.SourceBitDepth
	if bits == 0 {
		bits = 16
	}
	if !SupportedBitDepth(bits) {
		return nil, errors.Errorf("unsupported bit depth %d", bits)
	}
	if bits == 32 {
		h.logger.Warn("32 bit samples pass through float32 and keep only 24 bits of precision")
	}
	if rate := float64(in.Format.SampleRate); rate > 0 && rate != h.sampleRate {
		h.logger.Warn("input sample rate %.0f differs from prepared rate %.0f", rate, h.sampleRate)
	}

	frames := 0
	if numIn > 0 {
		frames = len(in.Data) / numIn
	}
	out := &audio.IntBuffer{
		Format:         &audio.Format{NumChannels: numOut, SampleRate: in.Format.SampleRate},
		Data:           make([]int, frames*numOut),
		SourceBitDepth: bits,
	}
	scale := fullScale(bits)

	blocks := 0
	for pos := 0; pos < frames; pos += h.blockSize {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "render cancelled at frame %d", pos)
		}
		n := min(h.blockSize, frames-pos)

		for ch := 0; ch < numIn; ch++ {
			dst := h.channels[ch]
			for i := 0; i < n; i++ {
				dst[i] = float32(float64(in.Data[(pos+i)*numIn+ch]) / scale)
			}
		}

		h.processBlock(numIn, numOut, n)

		for ch := 0; ch < numOut; ch++ {
			src := h.channels[ch]
			for i := 0; i < n; i++ {
				out.Data[(pos+i)*numOut+ch] = toInt(src[i], scale)
			}
		}
		blocks++
	}

	h.logger.Debug("rendered %d frames in %d blocks", frames, blocks)
	return out, nil
}

func (h *Host) processBlock(numIn, numOut, n int) {
	h.views.in = process.Slice(h.views.in, h.channels[:numIn], n)
	h.views.out = process.Slice(h.views.out, h.channels[:numOut], n)

	h.ctx.Input = h.views.in
	h.ctx.Output = h.views.out
	h.ctx.MIDI.Clear()

	stop := h.profiler.Start(debug.BlockSection)
	h.processor.ProcessBlock(h.ctx)
	stop()
}

// SupportedBitDepth reports whether Render can convert PCM of the given depth.
func SupportedBitDepth(bits int) bool {
	switch bits {
	case 16, 24, 32:
		return true
	}
	return false
}

func fullScale(bits int) float64 {
	return float64(int64(1) << (bits - 1))
}

func toInt(v float32, scale float64) int {
	s := math.Round(float64(v) * scale)
	if math.IsNaN(s) {
		return 0
	}
	return int(max(-scale, min(scale-1, s)))
}

// Channels converts an interleaved PCM buffer to float channels in [-1, 1).
func Channels(buf *audio.IntBuffer) [][]float32 {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels <= 0 {
		return nil
	}
	bits := buf.SourceBitDepth
	if bits == 0 {
		bits = 16
	}
	scale := fullScale(bits)

	numCh := buf.Format.NumChannels
	channels := process.AllocateChannels(numCh, len(buf.Data)/numCh)
	for i, v := range buf.Data[:len(channels[0])*numCh] {
		channels[i%numCh][i/numCh] = float32(float64(v) / scale)
	}
	return channels
}
