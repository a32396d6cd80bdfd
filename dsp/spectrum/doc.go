// Package spectrum turns complex FFT bins into the curves used to judge a
// smoothing filter: magnitude, phase and group delay (the filter's lag).
//
// The package does not implement an FFT. It operates on bins produced by
// an FFT backend such as algo-fft.
package spectrum
