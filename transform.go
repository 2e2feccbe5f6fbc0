package bufwav

import "math"

// DefaultNormaliseLevel is the peak level Normalise is usually asked for.
const DefaultNormaliseLevel = 0.9999

// silenceFloor is the starting peak when scaling up is allowed, so any
// non-silent buffer gets scaled.
const silenceFloor = 1e-30

// MakeMono replaces the samples with the per-frame mean of all channels.
//
// Every stored frame is mixed down, including the ones before the frame
// window, and the window offset is kept as is.
func (b *Buffer) MakeMono() {
	frames := b.StoredFrames()
	mono := make([]float64, frames)

	for c := range b.channels {
		for i := range frames {
			mono[i] += b.samples[i*b.channels+c]
		}
	}

	for i := range mono {
		mono[i] /= float64(b.channels)
	}

	b.channels = 1
	b.samples = mono
}

// Normalise scales the buffer so the peak absolute sample in the window is
// absLevel. Buffers whose peak is already at or below absLevel are left
// alone. With reduceOnly set, quiet buffers are never scaled up.
//
// The gain applies to every stored sample, including the ones before the
// frame window.
func (b *Buffer) Normalise(reduceOnly bool, absLevel float64) {
	peak := silenceFloor
	if reduceOnly {
		peak = absLevel
	}

	for _, v := range b.Samples() {
		if a := math.Abs(v); a > peak {
			peak = a
		}
	}

	if peak <= absLevel {
		return
	}

	gain := absLevel / peak
	for i := range b.samples {
		b.samples[i] *= gain
	}
}

// Peak returns the largest absolute sample in the window.
func (b *Buffer) Peak() float64 {
	var peak float64

	for _, v := range b.Samples() {
		peak = max(peak, math.Abs(v))
	}

	return peak
}
