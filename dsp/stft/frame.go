package stft

// FrameCount returns the number of analysis frames for a signal of
// sampleCount samples at the given hop size: ceil(sampleCount/shiftLength).
func FrameCount(sampleCount, shiftLength int) int {
	if sampleCount <= 0 || shiftLength <= 0 {
		return 0
	}

	return (sampleCount + shiftLength - 1) / shiftLength
}

// Frames slices samples into overlapping frames of windowLength samples
// whose starts are spaced shiftLength apart. The signal is zero-padded at
// the end by windowLength-1 samples, so the trailing frames read from the
// padded tail instead of truncating the signal or dropping a frame.
//
// Frame f covers padded indices [f*shiftLength, f*shiftLength+windowLength).
func Frames(samples []float64, windowLength, shiftLength int) ([][]float64, error) {
	if windowLength < 1 {
		return nil, invalidArgf("window length must be >= 1: %d", windowLength)
	}

	if shiftLength < 1 {
		return nil, invalidArgf("shift length must be >= 1: %d", shiftLength)
	}

	if len(samples) == 0 {
		return nil, invalidArgf("signal must hold at least one sample")
	}

	padded := make([]float64, len(samples)+windowLength-1)
	copy(padded, samples)

	count := FrameCount(len(samples), shiftLength)
	frames := make([][]float64, count)

	// One backing array for all frames; each frame is a copy, not a view,
	// because the window taper is applied in place.
	backing := make([]float64, count*windowLength)
	for f := range frames {
		frame := backing[f*windowLength : (f+1)*windowLength]
		start := f * shiftLength
		copy(frame, padded[start:start+windowLength])
		frames[f] = frame
	}

	return frames, nil
}
