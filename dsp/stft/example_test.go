package stft_test

import (
	"fmt"

	"github.com/cwbudde/algo-spectrogram/dsp/stft"
	"github.com/cwbudde/algo-spectrogram/dsp/window"
)

func ExampleCompute() {
	signal := [][]float64{{1, 2, 3, 4, 5, 6}}

	res, err := stft.Compute(signal,
		stft.WithWindowLength(8),
		stft.WithShiftLength(4),
		stft.WithWindowType(window.TypeRectangular),
		stft.WithSampleRate(8000),
	)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("frames=%d bins=%d\n", res.FrameCount, res.BinCount)
	fmt.Printf("f[0]=%.0f Hz, last t=%.4f s\n", res.Frequencies[0], res.Times[len(res.Times)-1])
	// Output:
	// frames=2 bins=5
	// f[0]=0 Hz, last t=0.0008 s
}

func ExampleFrames() {
	frames, _ := stft.Frames([]float64{1, 2, 3, 4, 5, 6}, 8, 4)
	fmt.Println(frames[0])
	fmt.Println(frames[1])
	// Output:
	// [1 2 3 4 5 6 0 0]
	// [5 6 0 0 0 0 0 0]
}
