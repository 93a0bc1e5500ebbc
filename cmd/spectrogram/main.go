// Command spectrogram computes the STFT power spectrogram of a WAV file
// and optionally exports it as a vector PDF.
//
// Usage:
//
//	spectrogram [flags] input.wav
//	spectrogram -demo [flags]
//
// Examples:
//
//	spectrogram voice.wav
//	spectrogram -window 2048 -shift 512 -type blackman voice.wav
//	spectrogram -pdf voice -freq-range 0:8000 voice.wav
//	spectrogram -demo -pdf sweep -dir /tmp
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-spectrogram/dsp/signal"
	"github.com/cwbudde/algo-spectrogram/dsp/spectrum"
	"github.com/cwbudde/algo-spectrogram/dsp/stft"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
	"github.com/cwbudde/algo-spectrogram/render"
	"github.com/cwbudde/algo-spectrogram/wavio"
)

func main() {
	winLen := flag.Int("window", 1024, "window length in samples")
	shift := flag.Int("shift", 512, "hop size in samples")
	winName := flag.String("type", "hann", "window type (rectangular, hann, blackman, flattop)")
	full := flag.Bool("full", false, "keep the full spectrum instead of one-sided bins")
	pdfName := flag.String("pdf", "", "render a heat map and export it as <dir>/<name>.pdf")
	dir := flag.String("dir", "", "output directory for -pdf (default: the user's desktop)")
	minColor := flag.Float64("min-color", -30, "color floor in dB for the rendered heat map")
	freqRange := flag.String("freq-range", "", "display-only frequency zoom as lo:hi in Hz")
	demo := flag.Bool("demo", false, "analyze a generated sine sweep instead of a WAV file")
	demoRate := flag.Float64("demo-rate", 44100, "sample rate of the -demo sweep in Hz")
	demoSeconds := flag.Float64("demo-seconds", 2, "duration of the -demo sweep in seconds")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: spectrogram [flags] input.wav\n\n")
		fmt.Fprintf(os.Stderr, "Computes an STFT power spectrogram and optionally exports a PDF plot.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  spectrogram voice.wav\n")
		fmt.Fprintf(os.Stderr, "  spectrogram -window 2048 -type blackman -pdf voice voice.wav\n")
		fmt.Fprintf(os.Stderr, "  spectrogram -demo -pdf sweep -dir /tmp\n")
	}
	flag.Parse()

	if err := run(params{
		winLen:      *winLen,
		shift:       *shift,
		winName:     *winName,
		full:        *full,
		pdfName:     *pdfName,
		dir:         *dir,
		minColor:    *minColor,
		freqRange:   *freqRange,
		demo:        *demo,
		demoRate:    *demoRate,
		demoSeconds: *demoSeconds,
		args:        flag.Args(),
	}); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

type params struct {
	winLen      int
	shift       int
	winName     string
	full        bool
	pdfName     string
	dir         string
	minColor    float64
	freqRange   string
	demo        bool
	demoRate    float64
	demoSeconds float64
	args        []string
}

func run(p params) error {
	winType, err := window.ParseType(p.winName)
	if err != nil {
		return err
	}

	channels, sampleRate, source, err := loadInput(p)
	if err != nil {
		return err
	}

	opts := []stft.Option{
		stft.WithWindowLength(p.winLen),
		stft.WithShiftLength(p.shift),
		stft.WithWindowType(winType),
		stft.WithSampleRate(sampleRate),
		stft.WithMinColorDB(p.minColor),
	}

	if p.full {
		opts = append(opts, stft.WithFullSpectrum())
	}

	if p.freqRange != "" {
		lo, hi, err := parseRange(p.freqRange)
		if err != nil {
			return err
		}

		opts = append(opts, stft.WithFrequencyRange(lo, hi))
	}

	if p.pdfName != "" {
		opts = append(opts, stft.WithPlotter(render.NewPDFRenderer(render.WithTitle(source))))
	}

	res, err := stft.Compute(channels, opts...)
	if err != nil {
		return err
	}

	printSummary(source, sampleRate, res)

	if p.pdfName == "" {
		return nil
	}

	dir := p.dir
	if dir == "" {
		if dir, err = render.DesktopDir(); err != nil {
			return err
		}
	}

	path, err := render.ExportPDF(res.Figure, dir, p.pdfName)
	if err != nil {
		return err
	}

	fmt.Printf("wrote %s\n", path)

	return nil
}

// loadInput returns the per-channel samples, their sample rate and a short
// label for the summary and plot title.
func loadInput(p params) ([][]float64, float64, string, error) {
	if p.demo {
		gen := signal.NewGenerator(signal.WithSampleRate(p.demoRate))

		sweep, err := gen.Sweep(20, p.demoRate/2, 0.5, int(p.demoSeconds*p.demoRate))
		if err != nil {
			return nil, 0, "", err
		}

		return [][]float64{sweep}, p.demoRate, "sine sweep", nil
	}

	if len(p.args) != 1 {
		return nil, 0, "", fmt.Errorf("expected exactly one input WAV file, got %d arguments", len(p.args))
	}

	clip, err := wavio.ReadFile(p.args[0])
	if err != nil {
		return nil, 0, "", err
	}

	return clip.Channels, clip.SampleRate, p.args[0], nil
}

func parseRange(s string) (lo, hi float64, err error) {
	loStr, hiStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("frequency range must be lo:hi, got %q", s)
	}

	if lo, err = strconv.ParseFloat(loStr, 64); err != nil {
		return 0, 0, fmt.Errorf("bad frequency range lower bound %q: %w", loStr, err)
	}

	if hi, err = strconv.ParseFloat(hiStr, 64); err != nil {
		return 0, 0, fmt.Errorf("bad frequency range upper bound %q: %w", hiStr, err)
	}

	return lo, hi, nil
}

func printSummary(source string, sampleRate float64, res *stft.Result) {
	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)

	fmt.Fprintf(tw, "Input\t%s\n", source)
	fmt.Fprintf(tw, "Sample rate\t%.0f Hz\n", sampleRate)
	fmt.Fprintf(tw, "Channels\t%d\n", res.Channels)
	fmt.Fprintf(tw, "Frames\t%d\n", res.FrameCount)
	fmt.Fprintf(tw, "Bins\t%d\n", res.BinCount)

	if len(res.Times) > 0 {
		fmt.Fprintf(tw, "Duration\t%.3f s\n", res.Times[len(res.Times)-1])
	}

	for c, frames := range res.Spectrogram {
		bin, db := peak(frames)
		if bin >= 0 && bin < len(res.Frequencies) {
			fmt.Fprintf(tw, "Peak ch %d\t%.1f Hz (%.1f dB)\n", c, res.Frequencies[bin], db)
		}
	}

	tw.Flush()
}

// peak returns the bin index and dB level of the strongest bin across all
// frames of one channel.
func peak(frames [][]complex128) (int, float64) {
	bestBin := -1
	bestMag := 0.0

	for _, bins := range frames {
		bin, mag := spectrum.PeakBin(bins)
		if bin >= 0 && (bestBin < 0 || mag > bestMag) {
			bestBin, bestMag = bin, mag
		}
	}

	if bestBin < 0 {
		return -1, 0
	}

	db := spectrum.MagnitudeDB([]complex128{complex(bestMag, 0)}, -300)

	return bestBin, db[0]
}
