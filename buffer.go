package bufwav

import (
	"fmt"
	"time"
)

// DefaultSampleRate is the sample rate of a buffer built without one.
const DefaultSampleRate = 48000

// Buffer holds interleaved audio samples in memory.
//
// Samples are stored frame by frame, cycling through every channel before
// moving to the next frame. A frame window hides the first Offset() stored
// frames from Len, Samples, Channel and encoding, without discarding them.
type Buffer struct {
	SampleRate int

	channels int
	offset   int
	samples  []float64
}

// NewBuffer returns an empty buffer.
func NewBuffer(sampleRate, channels int) *Buffer {
	return &Buffer{
		SampleRate: sampleRate,
		channels:   channels,
	}
}

// NewBufferFromSamples returns a buffer holding a copy of the interleaved
// samples, zero padded to a whole number of frames.
func NewBufferFromSamples(sampleRate, channels int, samples []float64) *Buffer {
	buf := NewBuffer(sampleRate, channels)
	buf.setSamples(append([]float64(nil), samples...))

	return buf
}

// setSamples takes ownership of samples and resets the frame window.
func (b *Buffer) setSamples(samples []float64) {
	if b.channels > 0 {
		for len(samples)%b.channels != 0 {
			samples = append(samples, 0)
		}
	}

	b.samples = samples
	b.offset = 0
}

// Channels returns the number of interleaved channels.
func (b *Buffer) Channels() int {
	if b == nil {
		return 0
	}

	return b.channels
}

// StoredFrames returns the number of frames held, including the ones hidden
// before the frame window.
func (b *Buffer) StoredFrames() int {
	if b == nil || b.channels < 1 {
		return 0
	}

	return len(b.samples) / b.channels
}

// Len returns the number of frames in the window.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}

	return max(b.StoredFrames()-b.offset, 0)
}

// Offset returns the first stored frame of the window.
func (b *Buffer) Offset() int {
	if b == nil {
		return 0
	}

	return b.offset
}

// SetOffset moves the start of the frame window.
func (b *Buffer) SetOffset(frames int) error {
	if frames < 0 || frames > b.StoredFrames() {
		return newError(FormatError, fmt.Sprintf("frame offset %d outside [0, %d]", frames, b.StoredFrames()))
	}

	b.offset = frames

	return nil
}

// Resize grows or truncates the window to the given number of frames. New
// samples are zero.
func (b *Buffer) Resize(frames int) {
	frames = max(frames, 0)
	n := (b.offset + frames) * b.channels

	if n <= cap(b.samples) {
		oldLen := len(b.samples)
		b.samples = b.samples[:n]

		for i := oldLen; i < n; i++ {
			b.samples[i] = 0
		}

		return
	}

	grown := make([]float64, n)
	copy(grown, b.samples)
	b.samples = grown
}

// Samples returns the interleaved samples of the window. The slice aliases
// the buffer's storage.
func (b *Buffer) Samples() []float64 {
	if b == nil || b.channels < 1 {
		return nil
	}

	start := b.offset * b.channels
	if start > len(b.samples) {
		return nil
	}

	return b.samples[start:]
}

// Frame returns the samples of frame i of the window, one per channel. The
// slice aliases the buffer's storage.
func (b *Buffer) Frame(i int) []float64 {
	if i < 0 || i >= b.Len() {
		panic(fmt.Sprintf("bufwav: frame %d out of range [0, %d)", i, b.Len()))
	}

	start := (b.offset + i) * b.channels

	return b.samples[start : start+b.channels]
}

// Channel returns a view over channel c of the window.
func (b *Buffer) Channel(c int) Channel {
	if c < 0 || c >= b.Channels() {
		panic(fmt.Sprintf("bufwav: channel %d out of range [0, %d)", c, b.Channels()))
	}

	return Channel{buf: b, channel: c}
}

// Clone returns a deep copy.
func (b *Buffer) Clone() *Buffer {
	if b == nil {
		return nil
	}

	out := *b
	out.samples = append([]float64(nil), b.samples...)

	return &out
}

// Duration returns the playback length of the window.
func (b *Buffer) Duration() time.Duration {
	if b == nil {
		return 0
	}

	return framesDuration(b.Len(), b.SampleRate)
}

// Channel is a strided view over one channel of a Buffer's window. It does
// not own any samples and becomes invalid once the buffer is resized or
// changes its channel count.
type Channel struct {
	buf     *Buffer
	channel int
}

// Len returns the number of frames in the window.
func (c Channel) Len() int {
	return c.buf.Len()
}

// At returns the sample of frame i.
func (c Channel) At(i int) float64 {
	return c.buf.samples[c.index(i)]
}

// Set stores v as the sample of frame i.
func (c Channel) Set(i int, v float64) {
	c.buf.samples[c.index(i)] = v
}

func (c Channel) index(i int) int {
	if i < 0 || i >= c.buf.Len() {
		panic(fmt.Sprintf("bufwav: frame %d out of range [0, %d)", i, c.buf.Len()))
	}

	return (c.buf.offset+i)*c.buf.channels + c.channel
}
