// Package wavio decodes WAV audio into per-channel float64 sample slices.
//
// Samples are normalized to [-1, 1] based on the source bit depth, so the
// output can feed directly into the analysis packages without further
// scaling.
package wavio

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/go-audio/wav"
)

// ErrInvalidWAV indicates the input is not a decodable WAV stream.
var ErrInvalidWAV = errors.New("wavio: invalid WAV data")

// Clip holds decoded audio as one float64 slice per channel.
// All channel slices have equal length.
type Clip struct {
	Channels   [][]float64
	SampleRate float64
}

// Frames returns the number of sample frames per channel.
func (c *Clip) Frames() int {
	if len(c.Channels) == 0 {
		return 0
	}

	return len(c.Channels[0])
}

// Duration returns the clip length in seconds.
func (c *Clip) Duration() float64 {
	if c.SampleRate <= 0 {
		return 0
	}

	return float64(c.Frames()) / c.SampleRate
}

// ReadFile decodes the WAV file at path.
func ReadFile(path string) (*Clip, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wavio: open %q: %w", path, err)
	}
	defer f.Close()

	clip, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("wavio: decode %q: %w", path, err)
	}

	return clip, nil
}

// Read decodes a WAV stream into a Clip. The reader must support seeking
// because the RIFF chunk layout is not strictly ordered.
func Read(r io.ReadSeeker) (*Clip, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrInvalidWAV
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, fmt.Errorf("wavio: read PCM data: %w", err)
	}

	numChans := int(dec.NumChans)
	if numChans < 1 {
		return nil, fmt.Errorf("wavio: channel count %d: %w", numChans, ErrInvalidWAV)
	}

	bitDepth := int(dec.BitDepth)
	if bitDepth < 1 || bitDepth > 32 {
		return nil, fmt.Errorf("wavio: bit depth %d: %w", bitDepth, ErrInvalidWAV)
	}

	frames := len(buf.Data) / numChans
	scale := 1.0 / float64(int64(1)<<uint(bitDepth-1))

	channels := make([][]float64, numChans)
	backing := make([]float64, numChans*frames)

	for ch := range channels {
		channels[ch] = backing[ch*frames : (ch+1)*frames]
	}

	for i := 0; i < frames; i++ {
		for ch := 0; ch < numChans; ch++ {
			channels[ch][i] = float64(buf.Data[i*numChans+ch]) * scale
		}
	}

	return &Clip{
		Channels:   channels,
		SampleRate: float64(dec.SampleRate),
	}, nil
}
