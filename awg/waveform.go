package awg

import "math"

// waveform defaults matching the device's waveform memory: buffers are
// allocated in blocks of 16 samples with a 32-sample minimum.
const (
	defaultGranularity = 16
	minBufferLength    = 32
	fullScale          = 1<<15 - 1
)

// Waveform holds one I/Q sample pair in the interleaved int16 layout the
// waveform memory expects. Channel data is normalized to the DAC range when
// it exceeds full scale, zero-padded to the buffer length, and aligned to the
// start or the end of the buffer.
type Waveform struct {
	granularity int
	alignStart  bool
	waves       [2][]float64

	bufferLength int
	data         []int16
}

// WaveformOption configures a Waveform.
type WaveformOption func(*Waveform)

// WithGranularity overrides the buffer allocation granularity.
func WithGranularity(n int) WaveformOption {
	return func(w *Waveform) { w.granularity = n }
}

// WithEndAlignment aligns channel data to the end of the buffer instead of
// the start.
func WithEndAlignment() WaveformOption {
	return func(w *Waveform) { w.alignStart = false }
}

// NewWaveform creates a waveform from the given I and Q channel samples.
// Channels may have different lengths; the shorter one is zero-padded.
func NewWaveform(i, q []float64, opts ...WaveformOption) *Waveform {
	w := &Waveform{
		granularity: defaultGranularity,
		alignStart:  true,
		waves:       [2][]float64{i, q},
	}
	for _, opt := range opts {
		opt(w)
	}
	w.update()
	return w
}

// Data returns the interleaved int16 sample buffer.
func (w *Waveform) Data() []int16 { return w.data }

// BufferLength returns the per-channel buffer length in samples.
func (w *Waveform) BufferLength() int { return w.bufferLength }

// SetChannel replaces the data of a single channel (0 for I, 1 for Q) and
// re-interleaves the buffer.
func (w *Waveform) SetChannel(ch int, samples []float64) error {
	if ch != 0 && ch != 1 {
		return ErrInvalidChannel
	}
	w.waves[ch] = samples
	w.update()
	return nil
}

// ReplaceData swaps both channels. The new data must fit the existing buffer
// length, so an already-declared waveform slot on the device stays valid.
func (w *Waveform) ReplaceData(i, q []float64) error {
	if w.roundUp(max(len(i), len(q), minBufferLength)) != w.bufferLength {
		return ErrBufferLengthMismatch
	}
	w.waves = [2][]float64{i, q}
	w.update()
	return nil
}

func (w *Waveform) update() {
	w.bufferLength = w.roundUp(max(len(w.waves[0]), len(w.waves[1]), minBufferLength))
	w.data = w.interleave()
}

func (w *Waveform) interleave() []int16 {
	data := make([]int16, 2*w.bufferLength)
	for ch := 0; ch < 2; ch++ {
		samples := w.waves[ch]
		if len(samples) > w.bufferLength {
			samples = samples[:w.bufferLength]
		}
		norm := 1.0
		if m := maxAbs(samples); m >= 1 {
			norm = m
		}
		offset := 0
		if !w.alignStart {
			offset = w.bufferLength - len(samples)
		}
		for i, s := range samples {
			data[2*(offset+i)+ch] = int16(s / norm * fullScale)
		}
	}
	return data
}

func (w *Waveform) roundUp(n int) int {
	if rest := n % w.granularity; rest != 0 {
		return n + w.granularity - rest
	}
	return n
}

func maxAbs(samples []float64) float64 {
	m := 0.0
	for _, s := range samples {
		if a := math.Abs(s); a > m {
			m = a
		}
	}
	return m
}
