package bufwav

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/riff"
)

// chunkHeaderSize is the size of a chunk ID plus its length field.
const chunkHeaderSize = 8

// Decoder decodes a RIFF/WAVE stream into a Buffer.
//
// The whole data chunk is held in memory; there is no streaming access.
type Decoder struct {
	r      io.ReadSeeker
	parser *riff.Parser

	fmtChunk *FmtChunk
	format   Format
	chunks   []ChunkInfo
}

// NewDecoder creates a decoder reading from r. Decoding starts at the
// current position of r.
func NewDecoder(r io.ReadSeeker) *Decoder {
	return &Decoder{r: r}
}

// DecodeBytes decodes an in-memory WAVE file.
func DecodeBytes(data []byte) (*Buffer, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// ReadFile loads and decodes the WAVE file at path.
func ReadFile(path string) (*Buffer, error) {
	data, err := readWholeFile(path)
	if err != nil {
		return nil, err
	}

	return DecodeBytes(data)
}

func readWholeFile(path string) ([]byte, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, wrapError(IOError, "Failed to open file: "+path, err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return nil, wrapError(IOError, "Failed to read file: "+path, err)
	}

	return data, nil
}

// Decode parses the stream and returns its samples.
//
// Chunks are visited in order. The first fmt chunk is validated and then
// the scan restarts right after the RIFF header, so a data chunk placed
// before the fmt chunk is decoded on the second pass. Unknown chunks are
// skipped by their declared length. A data chunk cut short by the end of
// the stream keeps every whole sample that is present.
func (d *Decoder) Decode() (*Buffer, error) {
	if d == nil || d.r == nil {
		return nil, newError(IOError, "can't decode from a nil reader")
	}

	err := d.readHeader()
	if err != nil {
		return nil, err
	}

	blockStart, err := d.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapError(IOError, "failed to locate the first chunk", err)
	}

	buf := NewBuffer(DefaultSampleRate, 1)

	var hasFormat, hasData bool

	d.fmtChunk = nil
	d.format = 0
	d.chunks = nil

	for {
		chunk, err := d.nextChunk()
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			break
		}

		if err != nil {
			return nil, err
		}

		switch {
		case !hasFormat && chunk.ID == riff.FmtID:
			err = d.processFmtChunk(chunk, buf)
			if err != nil {
				return nil, err
			}

			hasFormat = true
			d.chunks = nil

			_, err = d.r.Seek(blockStart, io.SeekStart)
			if err != nil {
				return nil, wrapError(IOError, "failed to seek back to the first chunk", err)
			}
		case hasFormat && chunk.ID == riff.DataFormatID:
			samples, err := d.decodeSamples(chunk)
			if err != nil {
				return nil, err
			}

			buf.setSamples(samples)

			hasData = true
		default:
			chunk.Drain()
		}
	}

	if !hasFormat {
		return nil, newError(FormatError, "missing `fmt ` block")
	}

	if !hasData {
		return nil, newError(FormatError, "missing `data` block")
	}

	return buf, nil
}

func (d *Decoder) readHeader() error {
	d.parser = riff.New(d.r)

	err := d.parser.ParseHeaders()
	if d.parser.ID != riff.RiffID {
		return wrapError(FormatError, "Input is not a RIFF file", err)
	}

	if err != nil || d.parser.Format != riff.WavFormatID {
		return wrapError(FormatError, "Input is not a plain WAVE file", err)
	}

	return nil
}

// nextChunk reads the next chunk header. A header cut short by the end of
// the stream is reported as io.EOF or io.ErrUnexpectedEOF.
func (d *Decoder) nextChunk() (*riff.Chunk, error) {
	pos, err := d.r.Seek(0, io.SeekCurrent)
	if err != nil {
		return nil, wrapError(IOError, "failed to locate the next chunk", err)
	}

	var hdr [chunkHeaderSize]byte

	_, err = io.ReadFull(d.r, hdr[:])
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, err
	}

	if err != nil {
		return nil, wrapError(IOError, "failed to read chunk header", err)
	}

	info := ChunkInfo{Size: binary.LittleEndian.Uint32(hdr[4:]), Offset: pos}
	copy(info.ID[:], hdr[:4])
	d.chunks = append(d.chunks, info)

	return &riff.Chunk{
		ID:   info.ID,
		Size: int(info.Size),
		R:    d.r,
	}, nil
}

func (d *Decoder) processFmtChunk(chunk *riff.Chunk, buf *Buffer) error {
	fmtChunk, err := decodeFmtChunk(chunk)
	if err != nil {
		return wrapError(FormatError, "truncated `fmt ` block", err)
	}

	err = fmtChunk.validate()
	if err != nil {
		return err
	}

	d.fmtChunk = fmtChunk
	d.format, _ = fmtChunk.Format()

	buf.SampleRate = int(fmtChunk.SampleRate)
	buf.channels = int(fmtChunk.NumChannels)

	return nil
}

func (d *Decoder) decodeSamples(chunk *riff.Chunk) ([]float64, error) {
	payload, err := io.ReadAll(io.LimitReader(chunk, int64(chunk.Size)))
	if err != nil {
		return nil, wrapError(IOError, "failed to read `data` block", err)
	}

	bPerSample := d.format.BytesPerSample()
	samples := make([]float64, len(payload)/bPerSample)

	for i := range samples {
		samples[i] = d.format.DecodeSample(payload[i*bPerSample:])
	}

	return samples, nil
}

// String implements the Stringer interface.
func (d *Decoder) String() string {
	if d == nil || d.fmtChunk == nil {
		return "Format: unknown"
	}

	return fmt.Sprintf("Format: %s - %d channels @ %d / %d bits",
		d.format, d.fmtChunk.NumChannels, d.fmtChunk.SampleRate, d.fmtChunk.BitsPerSample)
}
