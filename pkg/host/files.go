package host

import (
	"os"

	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
	"github.com/ossrs/go-oryx-lib/errors"

	"github.com/vst3go/plugintemplate/pkg/framework/state"
)

// ReadWAV decodes a PCM wav file.
func ReadWAV(path string) (*audio.IntBuffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	dec := wav.NewDecoder(f)
	if !dec.IsValidFile() {
		return nil, errors.Errorf("%v is not a valid wav file", path)
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, errors.Wrapf(err, "decode %v", path)
	}
	buf.SourceBitDepth = int(dec.BitDepth)
	return buf, nil
}

// WriteWAV encodes buf as a PCM wav file at the given bit depth. A zero
// depth keeps the buffer's own depth.
func WriteWAV(path string, buf *audio.IntBuffer, bitDepth int) error {
	if buf == nil || buf.Format == nil {
		return errors.New("buffer has no format")
	}
	if bitDepth == 0 {
		bitDepth = buf.SourceBitDepth
	}
	if !SupportedBitDepth(bitDepth) {
		return errors.Errorf("unsupported bit depth %d", bitDepth)
	}
	buf = Requantize(buf, bitDepth)

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %v", path)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, buf.Format.SampleRate, bitDepth, buf.Format.NumChannels, 1)
	if err := enc.Write(buf); err != nil {
		return errors.Wrapf(err, "write %v", path)
	}
	if err := enc.Close(); err != nil {
		return errors.Wrapf(err, "close encoder %v", path)
	}
	return f.Close()
}

// Requantize returns buf converted to another bit depth by shifting. The
// input is returned as is when the depth already matches.
func Requantize(buf *audio.IntBuffer, bitDepth int) *audio.IntBuffer {
	from := buf.SourceBitDepth
	if from == 0 {
		from = 16
	}
	if from == bitDepth {
		return buf
	}

	out := &audio.IntBuffer{
		Format:         buf.Format,
		Data:           make([]int, len(buf.Data)),
		SourceBitDepth: bitDepth,
	}
	for i, v := range buf.Data {
		if bitDepth > from {
			out.Data[i] = v << (bitDepth - from)
		} else {
			out.Data[i] = v >> (from - bitDepth)
		}
	}
	return out
}

// SaveState writes the processor state container to path.
func (h *Host) SaveState(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %v", path)
	}
	defer f.Close()

	if err := state.NewManager().Save(f, h.processor); err != nil {
		return errors.Wrapf(err, "save state")
	}
	h.logger.Info("saved state to %v", path)
	return f.Close()
}

// LoadState reads a state container from path into the processor.
func (h *Host) LoadState(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return errors.Wrapf(err, "open %v", path)
	}
	defer f.Close()

	if err := state.NewManager().Load(f, h.processor); err != nil {
		return errors.Wrapf(err, "load state %v", path)
	}
	h.logger.Info("loaded state from %v", path)
	return nil
}
