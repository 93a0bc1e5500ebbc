package render

import "errors"

var (
	// ErrNoFigure indicates an export was requested without a rendered
	// figure, typically because the pipeline ran with plotting disabled.
	ErrNoFigure = errors.New("render: no figure to export")

	// ErrEmptyName indicates an empty output file base name.
	ErrEmptyName = errors.New("render: file name must not be empty")

	// ErrEmptySpectrogram indicates a plot request without any bins.
	ErrEmptySpectrogram = errors.New("render: spectrogram holds no data")
)
