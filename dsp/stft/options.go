package stft

import (
	"math"

	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

// Config defines spectrogram computation parameters.
//
// Options record values as given; validation happens once at the Compute
// boundary, before any allocation, so that invalid values fail fast instead
// of being silently replaced.
type Config struct {
	// WindowLength is the frame length W in samples.
	WindowLength int
	// ShiftLength is the hop size S in samples between frame starts.
	ShiftLength int
	// WindowType selects the analysis window taper.
	WindowType window.Type
	// SampleRate is used only for axis scaling and plot labeling.
	SampleRate float64
	// MinColorDB is the color floor handed to the plotting collaborator.
	MinColorDB float64
	// FrequencyRange optionally zooms the plotted frequency axis. It must be
	// empty or hold two non-decreasing, non-negative values. Display only.
	FrequencyRange []float64
	// FullSpectrum skips the one-sided (Nyquist) truncation when true.
	FullSpectrum bool
	// Plotter, when non-nil, renders the result into Result.Figure.
	Plotter Plotter
}

// Option mutates a Config.
type Option func(*Config)

// DefaultConfig returns the documented defaults.
func DefaultConfig() Config {
	return Config{
		WindowLength: 1024,
		ShiftLength:  512,
		WindowType:   window.TypeHann,
		SampleRate:   44100,
		MinColorDB:   -30,
	}
}

// WithWindowLength sets the frame length W.
func WithWindowLength(samples int) Option {
	return func(cfg *Config) {
		cfg.WindowLength = samples
	}
}

// WithShiftLength sets the hop size S.
func WithShiftLength(samples int) Option {
	return func(cfg *Config) {
		cfg.ShiftLength = samples
	}
}

// WithWindowType sets the analysis window taper.
func WithWindowType(t window.Type) Option {
	return func(cfg *Config) {
		cfg.WindowType = t
	}
}

// WithSampleRate sets the sampling frequency used for axis scaling.
func WithSampleRate(sampleRate float64) Option {
	return func(cfg *Config) {
		cfg.SampleRate = sampleRate
	}
}

// WithMinColorDB sets the color floor passed to the plotting collaborator.
func WithMinColorDB(db float64) Option {
	return func(cfg *Config) {
		cfg.MinColorDB = db
	}
}

// WithFrequencyRange sets a display-only frequency zoom for plotting.
func WithFrequencyRange(lo, hi float64) Option {
	return func(cfg *Config) {
		cfg.FrequencyRange = []float64{lo, hi}
	}
}

// WithFullSpectrum disables the one-sided truncation, returning all W bins.
func WithFullSpectrum() Option {
	return func(cfg *Config) {
		cfg.FullSpectrum = true
	}
}

// WithPlotter sets the rendering collaborator. A nil plotter disables
// plotting, which is the default.
func WithPlotter(p Plotter) Option {
	return func(cfg *Config) {
		cfg.Plotter = p
	}
}

// ApplyOptions applies zero or more options to the default config.
func ApplyOptions(opts ...Option) Config {
	cfg := DefaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return cfg
}

// Validate checks the configuration against the documented contract.
func (cfg Config) Validate() error {
	if cfg.WindowLength < 1 {
		return invalidArgf("window length must be >= 1: %d", cfg.WindowLength)
	}

	if cfg.ShiftLength < 1 {
		return invalidArgf("shift length must be >= 1: %d", cfg.ShiftLength)
	}

	if !window.Valid(cfg.WindowType) {
		return invalidArgf("unknown window type: %d", int(cfg.WindowType))
	}

	if math.IsNaN(cfg.SampleRate) || cfg.SampleRate < 0 {
		return invalidArgf("sample rate must be >= 0: %f", cfg.SampleRate)
	}

	if math.IsNaN(cfg.MinColorDB) {
		return invalidArgf("min color floor must be a number")
	}

	switch len(cfg.FrequencyRange) {
	case 0:
	case 2:
		lo, hi := cfg.FrequencyRange[0], cfg.FrequencyRange[1]
		if math.IsNaN(lo) || math.IsNaN(hi) || lo < 0 || hi < 0 {
			return invalidArgf("frequency range values must be >= 0: [%f, %f]", lo, hi)
		}
		if lo > hi {
			return invalidArgf("frequency range must be non-decreasing: [%f, %f]", lo, hi)
		}
	default:
		return invalidArgf("frequency range must be empty or hold two values: %d", len(cfg.FrequencyRange))
	}

	return nil
}
