package bufwav

import (
	"encoding/binary"
	"fmt"
	"math"
	"strings"

	"github.com/go-audio/audio"
)

const (
	wavFormatPCM       = 1
	wavFormatIEEEFloat = 3
	scalePCMInt16      = 32768.0
	scalePCMInt24      = 8388608.0
	maxPCMInt16        = 32767
	maxPCMInt24        = 8388607
)

// Format is one of the supported sample encodings of a WAVE data chunk.
type Format uint8

const (
	// PCM16 is 16-bit signed little-endian integer PCM.
	PCM16 Format = iota + 1
	// PCM24 is 24-bit signed little-endian integer PCM.
	PCM24
	// Float32 is 32-bit little-endian IEEE-754 float.
	Float32
)

// DefaultFormat is the encoding used when none is requested.
const DefaultFormat = PCM16

type sampleCodec struct {
	name   string
	tag    uint16
	bits   int
	decode func(b []byte) float64
	encode func(dst []byte, v float64)
}

// codecs is indexed by Format; the zero entry is the invalid format.
var codecs = [...]sampleCodec{
	PCM16: {
		name:   "pcm16",
		tag:    wavFormatPCM,
		bits:   16,
		decode: decodePCM16,
		encode: encodePCM16,
	},
	PCM24: {
		name:   "pcm24",
		tag:    wavFormatPCM,
		bits:   24,
		decode: decodePCM24,
		encode: encodePCM24,
	},
	Float32: {
		name:   "float32",
		tag:    wavFormatIEEEFloat,
		bits:   32,
		decode: decodeFloat32,
		encode: encodeFloat32,
	},
}

// Valid reports whether f is one of the supported formats.
func (f Format) Valid() bool {
	return f >= PCM16 && int(f) < len(codecs)
}

// Tag returns the WAVE format code written in the fmt chunk.
func (f Format) Tag() uint16 {
	if !f.Valid() {
		return 0
	}

	return codecs[f].tag
}

// BitDepth returns the number of bits per sample.
func (f Format) BitDepth() int {
	if !f.Valid() {
		return 0
	}

	return codecs[f].bits
}

// BytesPerSample returns the number of bytes one sample occupies on the wire.
func (f Format) BytesPerSample() int {
	return f.BitDepth() / 8
}

func (f Format) String() string {
	if !f.Valid() {
		return fmt.Sprintf("format(%d)", uint8(f))
	}

	return codecs[f].name
}

// DecodeSample converts the first BytesPerSample bytes of b into a sample.
func (f Format) DecodeSample(b []byte) float64 {
	return codecs[f].decode(b)
}

// EncodeSample writes v into the first BytesPerSample bytes of dst.
func (f Format) EncodeSample(dst []byte, v float64) {
	codecs[f].encode(dst, v)
}

// ParseFormat resolves a format name such as "pcm16", "pcm24" or "float32".
func ParseFormat(name string) (Format, error) {
	for f := PCM16; f.Valid(); f++ {
		if strings.EqualFold(name, codecs[f].name) {
			return f, nil
		}
	}

	return 0, newError(FormatError, "unknown format name: "+name)
}

// formatFor maps a fmt chunk's (format code, bits per sample) pair.
func formatFor(tag, bits uint16) (Format, bool) {
	for f := PCM16; f.Valid(); f++ {
		if codecs[f].tag == tag && codecs[f].bits == int(bits) {
			return f, true
		}
	}

	return 0, false
}

func decodePCM16(b []byte) float64 {
	return float64(int16(binary.LittleEndian.Uint16(b))) / scalePCMInt16
}

func decodePCM24(b []byte) float64 {
	return float64(audio.Int24LETo32(b[:3])) / scalePCMInt24
}

func decodeFloat32(b []byte) float64 {
	return float64(math.Float32frombits(binary.LittleEndian.Uint32(b)))
}

func encodePCM16(dst []byte, v float64) {
	binary.LittleEndian.PutUint16(dst, uint16(int16(quantize(v, scalePCMInt16, maxPCMInt16))))
}

func encodePCM24(dst []byte, v float64) {
	copy(dst[:3], audio.Int32toInt24LEBytes(quantize(v, scalePCMInt24, maxPCMInt24)))
}

func encodeFloat32(dst []byte, v float64) {
	binary.LittleEndian.PutUint32(dst, math.Float32bits(float32(v)))
}

// quantize scales v onto the integer grid and saturates at [-scale, maxValue].
// Non-integral values round towards negative infinity.
func quantize(v, scale float64, maxValue int32) int32 {
	if math.IsNaN(v) {
		return 0
	}

	scaled := v * scale
	if scaled > float64(maxValue) {
		return maxValue
	}

	if scaled <= -scale {
		return int32(-scale)
	}

	return int32(math.Floor(scaled))
}
