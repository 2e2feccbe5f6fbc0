package bufwav

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/go-audio/riff"
)

const (
	// riffHeaderSize covers "RIFF", the RIFF length and "WAVE".
	riffHeaderSize = 12
	// wavHeaderSize is everything ahead of the samples in an encoded file.
	wavHeaderSize = riffHeaderSize + chunkHeaderSize + fmtChunkSize + chunkHeaderSize
	maxChannels   = math.MaxUint16
	maxSampleRate = math.MaxUint32
)

// Encoder encodes a Buffer into a plain WAVE file.
type Encoder struct {
	w   io.Writer
	buf *bytes.Buffer

	// Format is the sample encoding written to the data chunk.
	Format Format

	WrittenBytes int
}

// NewEncoder creates an encoder writing format samples to w.
func NewEncoder(w io.Writer, format Format) *Encoder {
	return &Encoder{
		w:      w,
		buf:    &bytes.Buffer{},
		Format: format,
	}
}

// WriteFile encodes buf into a new file at path. The file is only created
// once the buffer and format have been validated.
func WriteFile(path string, buf *Buffer, format Format) (err error) {
	_, err = validateForEncode(buf, format)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return wrapError(IOError, "Failed to open file: "+path, err)
	}

	defer func() {
		closeErr := file.Close()
		if closeErr != nil && err == nil {
			err = wrapError(IOError, "failed to close "+path, closeErr)
		}
	}()

	return NewEncoder(file, format).Encode(buf)
}

// AddLE serializes and stages the passed value using little endian.
func (e *Encoder) AddLE(src any) error {
	err := binary.Write(e.buf, binary.LittleEndian, src)
	if err != nil {
		return fmt.Errorf("failed to write little endian: %w", err)
	}

	return nil
}

// Encode writes the frame window of buf as one complete WAVE file.
func (e *Encoder) Encode(buf *Buffer) error {
	if e == nil || e.w == nil {
		return newError(IOError, "can't write to a nil writer")
	}

	dataLen, err := validateForEncode(buf, e.Format)
	if err != nil {
		return err
	}

	if e.buf == nil {
		e.buf = &bytes.Buffer{}
	}

	e.buf.Reset()
	e.buf.Grow(wavHeaderSize + int(dataLen))

	err = e.writeHeader(buf, dataLen)
	if err != nil {
		return wrapError(IOError, "failed to encode header", err)
	}

	sampleBuf := make([]byte, e.Format.BytesPerSample())
	for _, v := range buf.Samples() {
		e.Format.EncodeSample(sampleBuf, v)
		e.buf.Write(sampleBuf)
	}

	n, err := e.w.Write(e.buf.Bytes())
	e.WrittenBytes += n

	e.buf.Reset()

	if err != nil {
		return wrapError(IOError, "failed to write wav data", err)
	}

	return nil
}

func (e *Encoder) writeHeader(buf *Buffer, dataLen uint32) error {
	chunk := newFmtChunk(e.Format, buf.Channels(), uint32(buf.SampleRate))

	fields := []any{
		riff.RiffID,
		uint32(wavHeaderSize - 8 + dataLen),
		riff.WavFormatID,
		riff.FmtID,
		uint32(fmtChunkSize),
		chunk.FormatTag,
		chunk.NumChannels,
		chunk.SampleRate,
		chunk.AvgBytesPerSec,
		chunk.BlockAlign,
		chunk.BitsPerSample,
		riff.DataFormatID,
		dataLen,
	}

	for _, field := range fields {
		err := e.AddLE(field)
		if err != nil {
			return err
		}
	}

	return nil
}

// validateForEncode checks that buf can be written as format and returns
// the byte length of the data chunk.
func validateForEncode(buf *Buffer, format Format) (uint32, error) {
	if buf == nil {
		return 0, newError(FormatError, "can't encode a nil buffer")
	}

	channels := buf.Channels()
	if channels < 1 || channels > maxChannels {
		return 0, newError(WeirdConfig, "Invalid channel count")
	}

	if buf.SampleRate <= 0 || int64(buf.SampleRate) > maxSampleRate {
		return 0, newError(WeirdConfig, "Invalid sample rate")
	}

	if !format.Valid() {
		return 0, newError(FormatError, "Unsupported output format: "+format.String())
	}

	if channels*format.BytesPerSample() > math.MaxUint16 {
		return 0, newError(WeirdConfig, "Frame size does not fit the fmt block")
	}

	dataLen := uint64(len(buf.Samples())) * uint64(format.BytesPerSample())
	if dataLen > math.MaxUint32-(wavHeaderSize-8) {
		return 0, newError(FormatError, "Sample data too large for a RIFF file")
	}

	return uint32(dataLen), nil
}
