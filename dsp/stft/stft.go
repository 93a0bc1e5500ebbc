// Package stft computes short-time Fourier transform spectrograms.
//
// The pipeline has three pure stages: framing (overlapping, zero-padded
// frame extraction), windowing plus per-frame DFT, and axis computation
// with optional one-sided truncation. Compute orchestrates the stages and
// hands the result to an optional plotting collaborator; it holds no state
// across calls and performs no I/O.
package stft

import (
	"fmt"

	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

// Result holds the spectrogram and its axes.
type Result struct {
	// Spectrogram holds complex DFT bins indexed [channel][frame][bin].
	// Bin counts are one-sided (floor(W/2)+1) unless FullSpectrum was set.
	Spectrogram [][][]complex128
	// Frequencies spans 0..SampleRate over the window length, endpoint
	// inclusive, truncated alongside the spectrogram for one-sided output.
	Frequencies []float64
	// Times spans 0..duration over the frame count, endpoint inclusive.
	Times []float64
	// Figure is the rendered plot, or nil when no plotter was configured.
	Figure Figure
	// Channels, FrameCount and BinCount describe the spectrogram shape.
	Channels   int
	FrameCount int
	BinCount   int
}

// Compute runs the full framing/window/transform pipeline over a
// multi-channel signal. Each signal element is one channel's samples; all
// channels must have the same length of at least one sample.
//
// All option validation happens here, before any allocation, and failures
// wrap ErrInvalidArgument.
func Compute(signal [][]float64, opts ...Option) (*Result, error) {
	cfg := ApplyOptions(opts...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if err := validateSignal(signal); err != nil {
		return nil, err
	}

	channels := len(signal)
	sampleCount := len(signal[0])
	frameCount := FrameCount(sampleCount, cfg.ShiftLength)

	coeffs := window.Generate(cfg.WindowType, cfg.WindowLength, window.WithPeriodic())

	tr, err := newDFTTransform(cfg.WindowLength)
	if err != nil {
		return nil, err
	}

	spec := make([][][]complex128, channels)
	for c, samples := range signal {
		frames, err := Frames(samples, cfg.WindowLength, cfg.ShiftLength)
		if err != nil {
			return nil, err
		}

		spec[c] = make([][]complex128, len(frames))
		for f, frame := range frames {
			if err := window.ApplyCoefficientsInPlace(frame, coeffs); err != nil {
				return nil, fmt.Errorf("stft: windowing frame %d: %w", f, err)
			}

			bins := make([]complex128, cfg.WindowLength)
			if err := tr.Transform(bins, frame); err != nil {
				return nil, fmt.Errorf("stft: transforming frame %d: %w", f, err)
			}

			spec[c][f] = bins
		}
	}

	// Endpoint-inclusive axes: bin W-1 labels SampleRate itself and the last
	// frame labels the full duration. This mirrors a linspace(0, x, n)
	// convention and is part of the output contract.
	freqs := span(make([]float64, cfg.WindowLength), 0, cfg.SampleRate)
	times := span(make([]float64, frameCount), 0, float64(sampleCount)/cfg.SampleRate)

	binCount := cfg.WindowLength
	if !cfg.FullSpectrum {
		// The spectrogram keeps floor(W/2)+1 bins; the axis keeps
		// floor(len)/2+1 entries derived from its own length. The two
		// derivations coincide here but are kept separate deliberately.
		binCount = cfg.WindowLength/2 + 1
		for c := range spec {
			for f := range spec[c] {
				spec[c][f] = spec[c][f][:binCount]
			}
		}

		freqs = freqs[:len(freqs)/2+1]
	}

	res := &Result{
		Spectrogram: spec,
		Frequencies: freqs,
		Times:       times,
		Channels:    channels,
		FrameCount:  frameCount,
		BinCount:    binCount,
	}

	if cfg.Plotter != nil {
		fig, err := cfg.Plotter.Plot(PlotRequest{
			Spectrogram:    spec,
			Frequencies:    freqs,
			Times:          times,
			MinColorDB:     cfg.MinColorDB,
			FrequencyRange: cfg.FrequencyRange,
		})
		if err != nil {
			return nil, fmt.Errorf("stft: plotting failed: %w", err)
		}

		res.Figure = fig
	}

	return res, nil
}

func validateSignal(signal [][]float64) error {
	if len(signal) == 0 {
		return invalidArgf("signal must hold at least one channel")
	}

	sampleCount := len(signal[0])
	if sampleCount == 0 {
		return invalidArgf("signal must hold at least one sample")
	}

	for c, samples := range signal {
		if len(samples) != sampleCount {
			return invalidArgf("channel %d length %d differs from channel 0 length %d", c, len(samples), sampleCount)
		}
	}

	return nil
}

// span fills dst with len(dst) evenly spaced values from lo to hi, both
// endpoints included. A single-point span collapses to the upper bound.
func span(dst []float64, lo, hi float64) []float64 {
	switch len(dst) {
	case 0:
		return dst
	case 1:
		dst[0] = hi
		return dst
	}

	return floats.Span(dst, lo, hi)
}
