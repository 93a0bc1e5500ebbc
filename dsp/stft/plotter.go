package stft

import "io"

// PlotRequest carries the artifacts the plotting collaborator consumes.
type PlotRequest struct {
	// Spectrogram holds complex DFT bins indexed [channel][frame][bin].
	Spectrogram [][][]complex128
	// Frequencies and Times label the bin and frame axes.
	Frequencies []float64
	Times       []float64
	// MinColorDB is the lower bound of the color scale in dB; the upper
	// bound is the maximum dB value across the whole spectrogram.
	MinColorDB float64
	// FrequencyRange optionally zooms the displayed frequency axis.
	// Empty means full axis.
	FrequencyRange []float64
}

// Figure is an opaque handle to a rendered plot. The export collaborator
// writes it out as a vector document.
type Figure interface {
	io.WriterTo
}

// Plotter renders a spectrogram into a figure. Implementations live outside
// the core; see the render package. The core treats a nil Figure on the
// result as "no plot requested".
type Plotter interface {
	Plot(req PlotRequest) (Figure, error)
}
