package bufwav

import (
	"fmt"

	"github.com/go-audio/riff"
)

// fmtChunkSize is the size of a plain (non-extensible) fmt chunk.
const fmtChunkSize = 16

// FmtChunk stores the fields of a plain WAVE fmt chunk.
type FmtChunk struct {
	FormatTag      uint16
	NumChannels    uint16
	SampleRate     uint32
	AvgBytesPerSec uint32
	BlockAlign     uint16
	BitsPerSample  uint16
}

// Clone returns a copy of the chunk.
func (f *FmtChunk) Clone() *FmtChunk {
	if f == nil {
		return nil
	}

	out := *f

	return &out
}

// Format resolves the sample encoding described by the chunk.
func (f *FmtChunk) Format() (Format, bool) {
	if f == nil {
		return 0, false
	}

	return formatFor(f.FormatTag, f.BitsPerSample)
}

// validate checks the fields in the order a reader reports them: channel
// count, sample rate, supported encoding, then the size fields, which must
// agree with each other in a plain WAVE file.
func (f *FmtChunk) validate() error {
	if f.NumChannels < 1 {
		return newError(FormatError, "Cannot have zero channels")
	}

	if f.SampleRate < 1 {
		return newError(FormatError, "Cannot have zero sampleRate")
	}

	if _, ok := f.Format(); !ok {
		return newError(Unsupported, fmt.Sprintf("Unsupported format:bits: %d:%d", f.FormatTag, f.BitsPerSample))
	}

	if uint32(f.BitsPerSample)*uint32(f.NumChannels) != uint32(f.BlockAlign)*8 {
		return newError(FormatError, "Format sizes don't add up")
	}

	if f.AvgBytesPerSec != f.SampleRate*uint32(f.BlockAlign) {
		return newError(FormatError, "Format sizes don't add up")
	}

	return nil
}

func newFmtChunk(format Format, channels int, sampleRate uint32) *FmtChunk {
	blockAlign := uint16(channels * format.BytesPerSample())

	return &FmtChunk{
		FormatTag:      format.Tag(),
		NumChannels:    uint16(channels),
		SampleRate:     sampleRate,
		AvgBytesPerSec: sampleRate * uint32(channels*format.BytesPerSample()),
		BlockAlign:     blockAlign,
		BitsPerSample:  uint16(format.BitDepth()),
	}
}

func decodeFmtChunk(chunk *riff.Chunk) (*FmtChunk, error) {
	fmtChunk := &FmtChunk{}

	err := chunk.ReadLE(&fmtChunk.FormatTag)
	if err != nil {
		return nil, fmt.Errorf("failed to read wav format: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.NumChannels)
	if err != nil {
		return nil, fmt.Errorf("failed to read channels: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.SampleRate)
	if err != nil {
		return nil, fmt.Errorf("failed to read sample rate: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.AvgBytesPerSec)
	if err != nil {
		return nil, fmt.Errorf("failed to read avg bytes/sec: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BlockAlign)
	if err != nil {
		return nil, fmt.Errorf("failed to read block align: %w", err)
	}

	err = chunk.ReadLE(&fmtChunk.BitsPerSample)
	if err != nil {
		return nil, fmt.Errorf("failed to read bit depth: %w", err)
	}

	return fmtChunk, nil
}
