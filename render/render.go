package render

import (
	"fmt"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgpdf"

	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/stft"
)

// Option mutates a renderer configuration.
type Option func(*config)

type config struct {
	tileWidth  vg.Length
	tileHeight vg.Length
	colors     int
	title      string
}

func defaultConfig() config {
	return config{
		tileWidth:  8 * vg.Inch,
		tileHeight: 4 * vg.Inch,
		colors:     256,
	}
}

// WithTileSize sets the drawing size of each per-channel heat map.
func WithTileSize(width, height vg.Length) Option {
	return func(cfg *config) {
		cfg.tileWidth = width
		cfg.tileHeight = height
	}
}

// WithPaletteColors sets the number of discrete heat palette colors.
func WithPaletteColors(n int) Option {
	return func(cfg *config) {
		cfg.colors = n
	}
}

// WithTitle sets a title drawn above the first channel's heat map.
func WithTitle(title string) Option {
	return func(cfg *config) {
		cfg.title = title
	}
}

// PDFRenderer renders spectrograms onto a vector PDF canvas, one heat map
// per channel, tiled vertically. It implements stft.Plotter.
type PDFRenderer struct {
	cfg config
}

// NewPDFRenderer returns a renderer with the given options applied over the
// defaults (8x4 inch tiles, 256 heat colors, no title).
func NewPDFRenderer(opts ...Option) *PDFRenderer {
	cfg := defaultConfig()

	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	return &PDFRenderer{cfg: cfg}
}

// Plot converts the spectrogram to log magnitude in dB, renders one heat map
// per channel and returns the backing PDF canvas as the figure.
//
// The color scale spans [req.MinColorDB, maxDB] where maxDB is the largest
// dB value across all channels, frames and bins; values below the floor are
// clamped to it. A non-empty req.FrequencyRange zooms the vertical axis
// without touching the data.
func (r *PDFRenderer) Plot(req stft.PlotRequest) (stft.Figure, error) {
	grids, maxDB, err := buildGrids(req)
	if err != nil {
		return nil, err
	}

	// A flat spectrogram (silence) would collapse the color scale to a
	// single value; widen it so the palette lookup stays well defined.
	if maxDB <= req.MinColorDB {
		maxDB = req.MinColorDB + 1
	}

	heat := palette.Heat(r.cfg.colors, 1)
	plots := make([][]*plot.Plot, len(grids))

	for c, grid := range grids {
		p := plot.New()

		if c == 0 && r.cfg.title != "" {
			p.Title.Text = r.cfg.title
		}

		if len(grids) > 1 {
			p.Y.Label.Text = fmt.Sprintf("Frequency [Hz], channel %d", c)
		} else {
			p.Y.Label.Text = "Frequency [Hz]"
		}

		p.X.Label.Text = "Time [s]"

		hm := plotter.NewHeatMap(grid, heat)
		hm.Min = req.MinColorDB
		hm.Max = maxDB
		p.Add(hm)

		if len(req.FrequencyRange) == 2 {
			p.Y.Min = req.FrequencyRange[0]
			p.Y.Max = req.FrequencyRange[1]
		}

		plots[c] = []*plot.Plot{p}
	}

	canvas := vgpdf.New(r.cfg.tileWidth, r.cfg.tileHeight*vg.Length(len(grids)))

	tiles := draw.Tiles{
		Rows: len(grids),
		Cols: 1,
		PadX: vg.Millimeter * 2,
		PadY: vg.Millimeter * 2,
	}

	canvases := plot.Align(plots, tiles, draw.New(canvas))
	for c := range plots {
		plots[c][0].Draw(canvases[c][0])
	}

	return canvas, nil
}

// buildGrids converts each channel's complex bins into a dB grid and tracks
// the global maximum dB value for the shared color ceiling.
func buildGrids(req stft.PlotRequest) ([]*dbGrid, float64, error) {
	if len(req.Spectrogram) == 0 || len(req.Frequencies) == 0 || len(req.Times) == 0 {
		return nil, 0, ErrEmptySpectrogram
	}

	grids := make([]*dbGrid, len(req.Spectrogram))
	maxDB := req.MinColorDB

	for c, frames := range req.Spectrogram {
		if len(frames) != len(req.Times) {
			return nil, 0, fmt.Errorf("render: channel %d has %d frames, time axis has %d entries", c, len(frames), len(req.Times))
		}

		db := make([][]float64, len(frames))
		for f, bins := range frames {
			if len(bins) != len(req.Frequencies) {
				return nil, 0, fmt.Errorf("render: channel %d frame %d has %d bins, frequency axis has %d entries", c, f, len(bins), len(req.Frequencies))
			}

			row := spectrum.MagnitudeDB(bins, req.MinColorDB)
			for _, v := range row {
				if v > maxDB {
					maxDB = v
				}
			}

			db[f] = row
		}

		grids[c] = &dbGrid{
			db:    db,
			times: req.Times,
			freqs: req.Frequencies,
		}
	}

	return grids, maxDB, nil
}

// dbGrid adapts one channel's dB values to plotter.GridXYZ. Columns are
// frames (time), rows are bins (frequency).
type dbGrid struct {
	db    [][]float64
	times []float64
	freqs []float64
}

func (g *dbGrid) Dims() (c, r int)   { return len(g.times), len(g.freqs) }
func (g *dbGrid) Z(c, r int) float64 { return g.db[c][r] }
func (g *dbGrid) X(c int) float64    { return g.times[c] }
func (g *dbGrid) Y(r int) float64    { return g.freqs[r] }
