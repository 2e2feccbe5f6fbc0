package bufwav

import (
	"encoding/binary"
	"errors"
	"fmt"
	"testing"
)

type testChunk struct {
	id   string
	size uint32
	data []byte
}

var (
	errFileTooSmall         = errors.New("file too small")
	errInvalidRiffWaveHdr   = errors.New("invalid riff/wave header")
	errChunkExceedsFileSize = errors.New("chunk exceeds file size")
)

// parseWavChunks splits an encoded file into its chunks, without padding.
func parseWavChunks(data []byte) ([]testChunk, error) {
	if len(data) < riffHeaderSize {
		return nil, errFileTooSmall
	}

	if string(data[0:4]) != "RIFF" || string(data[8:12]) != "WAVE" {
		return nil, errInvalidRiffWaveHdr
	}

	chunks := make([]testChunk, 0)

	offset := riffHeaderSize
	for offset+chunkHeaderSize <= len(data) {
		id := string(data[offset : offset+4])
		size := binary.LittleEndian.Uint32(data[offset+4 : offset+8])
		offset += chunkHeaderSize

		end := offset + int(size)
		if end > len(data) {
			return nil, fmt.Errorf("%w: %q", errChunkExceedsFileSize, id)
		}

		chunks = append(chunks, testChunk{id: id, size: size, data: append([]byte(nil), data[offset:end]...)})
		offset = end
	}

	return chunks, nil
}

// chunk returns a raw chunk whose declared size is len(payload).
func chunk(id string, payload []byte) testChunk {
	return testChunk{id: id, size: uint32(len(payload)), data: payload}
}

// fmtPayload encodes the 16 bytes of a fmt chunk.
func fmtPayload(tag, channels uint16, rate, bytesPerSec uint32, blockAlign, bits uint16) []byte {
	p := make([]byte, fmtChunkSize)
	binary.LittleEndian.PutUint16(p[0:], tag)
	binary.LittleEndian.PutUint16(p[2:], channels)
	binary.LittleEndian.PutUint32(p[4:], rate)
	binary.LittleEndian.PutUint32(p[8:], bytesPerSec)
	binary.LittleEndian.PutUint16(p[12:], blockAlign)
	binary.LittleEndian.PutUint16(p[14:], bits)

	return p
}

// pcmFmt returns a consistent fmt chunk for format.
func pcmFmt(format Format, channels uint16, rate uint32) testChunk {
	blockAlign := channels * uint16(format.BytesPerSample())

	return chunk("fmt ", fmtPayload(format.Tag(), channels, rate, rate*uint32(blockAlign), blockAlign,
		uint16(format.BitDepth())))
}

func pcm16Data(values ...int16) testChunk {
	p := make([]byte, 2*len(values))
	for i, v := range values {
		binary.LittleEndian.PutUint16(p[2*i:], uint16(v))
	}

	return chunk("data", p)
}

// buildWav assembles a RIFF/WAVE file from chunks. The data of a chunk may
// be shorter than its declared size, which produces a truncated file.
func buildWav(t *testing.T, chunks ...testChunk) []byte {
	t.Helper()

	body := []byte("WAVE")
	for _, c := range chunks {
		body = append(body, c.id...)
		body = binary.LittleEndian.AppendUint32(body, c.size)
		body = append(body, c.data...)
	}

	out := []byte("RIFF")
	out = binary.LittleEndian.AppendUint32(out, uint32(len(body)))

	return append(out, body...)
}

func assertSamples(t *testing.T, got, want []float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("got %d samples %v, want %d %v", len(got), got, len(want), want)
	}

	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sample[%d]=%v, want %v", i, got[i], want[i])
		}
	}
}

func assertCode(t *testing.T, err error, want Code) {
	t.Helper()

	if got := CodeOf(err); got != want {
		t.Fatalf("code=%s (%v), want %s", got, err, want)
	}
}
