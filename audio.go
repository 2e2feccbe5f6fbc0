package bufwav

import (
	"math"

	"github.com/go-audio/audio"
)

// PCMFormat describes the buffer with go-audio's format type.
func (b *Buffer) PCMFormat() *audio.Format {
	return &audio.Format{
		NumChannels: b.Channels(),
		SampleRate:  b.SampleRate,
	}
}

// FloatBuffer copies the frame window into a go-audio float buffer.
func (b *Buffer) FloatBuffer() *audio.FloatBuffer {
	return &audio.FloatBuffer{
		Format: b.PCMFormat(),
		Data:   append([]float64(nil), b.Samples()...),
	}
}

// IntBuffer quantizes the frame window to the integer grid of format, the
// same way the encoder does. Float32 is quantized to 24 bits.
func (b *Buffer) IntBuffer(format Format) *audio.IntBuffer {
	if format == Float32 || !format.Valid() {
		format = PCM24
	}

	scale := math.Ldexp(1, format.BitDepth()-1)
	maxValue := int32(scale - 1)

	samples := b.Samples()
	data := make([]int, len(samples))

	for i, v := range samples {
		data[i] = int(quantize(v, scale, maxValue))
	}

	return &audio.IntBuffer{
		Format:         b.PCMFormat(),
		Data:           data,
		SourceBitDepth: format.BitDepth(),
	}
}

// FromFloatBuffer copies a go-audio float buffer into a new Buffer.
func FromFloatBuffer(fb *audio.FloatBuffer) *Buffer {
	if fb == nil {
		return nil
	}

	sampleRate, channels := DefaultSampleRate, 1
	if fb.Format != nil {
		sampleRate, channels = fb.Format.SampleRate, fb.Format.NumChannels
	}

	return NewBufferFromSamples(sampleRate, channels, fb.Data)
}
