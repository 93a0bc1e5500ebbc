package stft

import (
	"errors"
	"testing"

	"github.com/cwbudde/algo-spectrogram/internal/testutil"
)

func TestFrameCount(t *testing.T) {
	cases := []struct {
		samples, shift, want int
	}{
		{6, 4, 2},
		{8, 4, 2},
		{9, 4, 3},
		{1, 1, 1},
		{1, 512, 1},
		{1024, 512, 2},
		{1025, 512, 3},
		{0, 4, 0},
		{4, 0, 0},
	}

	for _, c := range cases {
		if got := FrameCount(c.samples, c.shift); got != c.want {
			t.Fatalf("FrameCount(%d,%d)=%d, want %d", c.samples, c.shift, got, c.want)
		}
	}
}

func TestFramesScenario(t *testing.T) {
	// W=8, S=4, N=6: two frames drawing from the zero-padded tail.
	frames, err := Frames([]float64{1, 2, 3, 4, 5, 6}, 8, 4)
	if err != nil {
		t.Fatal(err)
	}

	if len(frames) != 2 {
		t.Fatalf("frame count=%d, want 2", len(frames))
	}

	testutil.RequireSliceNearlyEqual(t, frames[0], []float64{1, 2, 3, 4, 5, 6, 0, 0}, 0)
	testutil.RequireSliceNearlyEqual(t, frames[1], []float64{5, 6, 0, 0, 0, 0, 0, 0}, 0)
}

func TestFramesMatchSignalAtOffsets(t *testing.T) {
	samples := testutil.Ramp(23)
	windowLength := 8
	shiftLength := 3

	frames, err := Frames(samples, windowLength, shiftLength)
	if err != nil {
		t.Fatal(err)
	}

	if want := FrameCount(len(samples), shiftLength); len(frames) != want {
		t.Fatalf("frame count=%d, want %d", len(frames), want)
	}

	for f, frame := range frames {
		if len(frame) != windowLength {
			t.Fatalf("frame %d length=%d, want %d", f, len(frame), windowLength)
		}

		for i, v := range frame {
			idx := f*shiftLength + i
			want := 0.0
			if idx < len(samples) {
				want = samples[idx]
			}

			if v != want {
				t.Fatalf("frame %d sample %d: got %v, want %v", f, i, v, want)
			}
		}
	}
}

func TestFramesAreCopies(t *testing.T) {
	samples := []float64{1, 2, 3, 4}

	frames, err := Frames(samples, 4, 2)
	if err != nil {
		t.Fatal(err)
	}

	frames[0][0] = 99
	if samples[0] != 1 {
		t.Fatal("frames must not alias the input signal")
	}
}

func TestFramesValidation(t *testing.T) {
	cases := []struct {
		name          string
		samples       []float64
		window, shift int
	}{
		{"zero window", []float64{1}, 0, 1},
		{"negative window", []float64{1}, -4, 1},
		{"zero shift", []float64{1}, 4, 0},
		{"empty signal", nil, 4, 2},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			frames, err := Frames(c.samples, c.window, c.shift)
			if frames != nil {
				t.Fatal("expected no partial output")
			}
			if !errors.Is(err, ErrInvalidArgument) {
				t.Fatalf("expected ErrInvalidArgument, got %v", err)
			}
		})
	}
}
