package bufwav

import (
	"testing"
	"time"
)

func TestNewBufferFromSamples(t *testing.T) {
	src := []float64{0.1, 0.2, 0.3}

	buf := NewBufferFromSamples(8000, 2, src)
	if buf.Len() != 2 || buf.StoredFrames() != 2 {
		t.Fatalf("len=%d stored=%d, want 2", buf.Len(), buf.StoredFrames())
	}

	assertSamples(t, buf.Samples(), []float64{0.1, 0.2, 0.3, 0})

	src[0] = 9
	if buf.Samples()[0] != 0.1 {
		t.Fatal("buffer must not alias the caller's slice")
	}
}

func TestResize(t *testing.T) {
	buf := NewBufferFromSamples(8000, 2, []float64{1, 2, 3, 4, 5, 6})

	err := buf.SetOffset(1)
	if err != nil {
		t.Fatal(err)
	}

	buf.Resize(1)

	if buf.StoredFrames() != 2 || buf.Len() != 1 {
		t.Fatalf("stored=%d len=%d", buf.StoredFrames(), buf.Len())
	}

	assertSamples(t, buf.Samples(), []float64{3, 4})

	buf.Resize(3)
	assertSamples(t, buf.Samples(), []float64{3, 4, 0, 0, 0, 0})

	// Shrinking and growing again must not resurrect old samples.
	buf.Resize(0)
	buf.Resize(1)
	assertSamples(t, buf.Samples(), []float64{0, 0})

	buf.Resize(-5)
	if buf.Len() != 0 || buf.StoredFrames() != 1 {
		t.Fatalf("negative resize: len=%d stored=%d", buf.Len(), buf.StoredFrames())
	}
}

func TestSetOffset(t *testing.T) {
	buf := NewBufferFromSamples(8000, 1, []float64{1, 2, 3})

	tests := []struct {
		offset int
		ok     bool
		want   []float64
	}{
		{offset: 0, ok: true, want: []float64{1, 2, 3}},
		{offset: 2, ok: true, want: []float64{3}},
		{offset: 3, ok: true, want: []float64{}},
		{offset: 4},
		{offset: -1},
	}

	for _, tt := range tests {
		err := buf.SetOffset(tt.offset)
		if !tt.ok {
			assertCode(t, err, FormatError)

			continue
		}

		if err != nil {
			t.Fatalf("SetOffset(%d): %v", tt.offset, err)
		}

		if buf.Offset() != tt.offset || buf.Len() != 3-tt.offset {
			t.Fatalf("offset=%d len=%d", buf.Offset(), buf.Len())
		}

		assertSamples(t, buf.Samples(), tt.want)
	}
}

func TestFrameAndChannel(t *testing.T) {
	buf := NewBufferFromSamples(8000, 2, []float64{
		0.1, -0.1,
		0.2, -0.2,
		0.3, -0.3,
	})

	err := buf.SetOffset(1)
	if err != nil {
		t.Fatal(err)
	}

	assertSamples(t, buf.Frame(0), []float64{0.2, -0.2})

	right := buf.Channel(1)
	if right.Len() != 2 || right.At(0) != -0.2 || right.At(1) != -0.3 {
		t.Fatalf("unexpected right channel view")
	}

	right.Set(1, 0.5)
	buf.Frame(0)[0] = 0.7

	err = buf.SetOffset(0)
	if err != nil {
		t.Fatal(err)
	}

	assertSamples(t, buf.Samples(), []float64{0.1, -0.1, 0.7, -0.2, 0.3, 0.5})
}

func TestOutOfWindowAccessPanics(t *testing.T) {
	buf := NewBufferFromSamples(8000, 2, []float64{1, 2, 3, 4})

	err := buf.SetOffset(1)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		fn   func()
	}{
		{name: "frame past window", fn: func() { buf.Frame(1) }},
		{name: "negative frame", fn: func() { buf.Frame(-1) }},
		{name: "channel out of range", fn: func() { buf.Channel(2) }},
		{name: "channel at past window", fn: func() { buf.Channel(0).At(1) }},
		{name: "channel set before window", fn: func() { buf.Channel(1).Set(-1, 0) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatal("expected panic")
				}
			}()

			tt.fn()
		})
	}
}

func TestClone(t *testing.T) {
	buf := NewBufferFromSamples(8000, 1, []float64{1, 2})

	err := buf.SetOffset(1)
	if err != nil {
		t.Fatal(err)
	}

	cp := buf.Clone()
	cp.Channel(0).Set(0, 5)

	if buf.Samples()[0] != 2 || cp.Offset() != 1 || cp.SampleRate != 8000 {
		t.Fatalf("clone shares storage or lost state")
	}

	var nilBuf *Buffer
	if nilBuf.Clone() != nil || nilBuf.Len() != 0 || nilBuf.Samples() != nil {
		t.Fatal("nil buffer accessors must return zero values")
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		rate, frames int
		want         time.Duration
	}{
		{rate: 48000, frames: 48000, want: time.Second},
		{rate: 44100, frames: 441, want: 10 * time.Millisecond},
		{rate: 8000, frames: 1, want: 125 * time.Microsecond},
		{rate: 0, frames: 10, want: 0},
	}

	for _, tt := range tests {
		buf := NewBuffer(tt.rate, 1)
		buf.Resize(tt.frames)

		if got := buf.Duration(); got != tt.want {
			t.Fatalf("%d frames @ %d Hz: %s, want %s", tt.frames, tt.rate, got, tt.want)
		}
	}
}

func TestFramesForDuration(t *testing.T) {
	tests := []struct {
		dur  time.Duration
		rate int
		want int
	}{
		{dur: 5 * time.Millisecond, rate: 48000, want: 240},
		{dur: time.Second, rate: 44100, want: 44100},
		{dur: 10 * time.Microsecond, rate: 44100, want: 0},
		{dur: -time.Second, rate: 44100, want: 0},
		{dur: time.Second, rate: 0, want: 0},
	}

	for _, tt := range tests {
		if got := FramesForDuration(tt.dur, tt.rate); got != tt.want {
			t.Fatalf("FramesForDuration(%s, %d)=%d, want %d", tt.dur, tt.rate, got, tt.want)
		}
	}
}
