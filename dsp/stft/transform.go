package stft

import (
	"fmt"

	algofft "github.com/cwbudde/algo-fft"
	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/algo-spectrogram/dsp/core"
)

// dftTransform computes the unnormalized length-n forward DFT of real
// frames, producing all n complex bins.
//
// Power-of-two lengths go through an algo-fft plan; other lengths use
// gonum's FFTPACK-based complex transform, which accepts any n.
type dftTransform struct {
	n       int
	forward func(dst, src []complex128) error
	cfft    *fourier.CmplxFFT
	in      []complex128
}

func newDFTTransform(n int) (*dftTransform, error) {
	if n < 1 {
		return nil, invalidArgf("transform length must be >= 1: %d", n)
	}

	t := &dftTransform{n: n}
	t.in = core.EnsureComplexLen(nil, n)

	if isPowerOfTwo(n) {
		plan, err := algofft.NewPlan64(n)
		if err != nil {
			return nil, fmt.Errorf("stft: failed to create FFT plan: %w", err)
		}

		t.forward = plan.Forward

		return t, nil
	}

	t.cfft = fourier.NewCmplxFFT(n)

	return t, nil
}

// Transform writes the DFT of frame into dst. Both must have length n.
func (t *dftTransform) Transform(dst []complex128, frame []float64) error {
	if len(frame) != t.n || len(dst) != t.n {
		return invalidArgf("transform length mismatch: frame=%d dst=%d want=%d", len(frame), len(dst), t.n)
	}

	for i, v := range frame {
		t.in[i] = complex(v, 0)
	}

	if t.forward != nil {
		return t.forward(dst, t.in)
	}

	t.cfft.Coefficients(dst, t.in)

	return nil
}

func isPowerOfTwo(n int) bool {
	return n > 0 && n&(n-1) == 0
}
