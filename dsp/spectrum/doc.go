// Package spectrum provides spectrum-domain utilities for complex DFT bins.
//
// The package intentionally does not implement a transform itself. It
// operates on complex bins produced by the stft package (or any other FFT
// backend) and provides magnitude, power and decibel extraction helpers.
package spectrum
