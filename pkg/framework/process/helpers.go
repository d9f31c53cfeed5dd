package process

// ProcessChannels processes all available channels with the given function
func (ctx *Context) ProcessChannels(fn func(ch int, input, output []float32)) {
	numChannels := ctx.GetNumChannels()
	for ch := 0; ch < numChannels; ch++ {
		fn(ch, ctx.Input[ch], ctx.Output[ch])
	}
}

// ProcessMono processes only the first channel
func (ctx *Context) ProcessMono(fn func(input, output []float32)) {
	if ctx.NumInputChannels() > 0 && ctx.NumOutputChannels() > 0 {
		fn(ctx.Input[0], ctx.Output[0])
	}
}

// GetNumChannels returns the minimum of input and output channels
func (ctx *Context) GetNumChannels() int {
	numChannels := ctx.NumInputChannels()
	if ctx.NumOutputChannels() < numChannels {
		numChannels = ctx.NumOutputChannels()
	}
	return numChannels
}

// AllocateChannels creates numChannels zeroed channels of numSamples each.
func AllocateChannels(numChannels, numSamples int) [][]float32 {
	channels := make([][]float32, numChannels)
	backing := make([]float32, numChannels*numSamples)
	for ch := range channels {
		channels[ch] = backing[ch*numSamples : (ch+1)*numSamples : (ch+1)*numSamples]
	}
	return channels
}

// Slice returns views of the first numSamples samples of each channel,
// reusing dst when it has room.
func Slice(dst, channels [][]float32, numSamples int) [][]float32 {
	dst = dst[:0]
	for _, ch := range channels {
		n := numSamples
		if n > len(ch) {
			n = len(ch)
		}
		dst = append(dst, ch[:n])
	}
	return dst
}
