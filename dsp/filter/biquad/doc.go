// Package biquad provides second-order section coefficients and their design.
//
// [Coefficients] holds a normalized transfer function
//
//	H(z) = (B0 + B1 z^-1 + B2 z^-2) / (1 + A1 z^-1 + A2 z^-2)
//
// and [Lowpass] derives it from a cutoff frequency, sample rate and quality
// factor with the RBJ bilinear-transform equations. The sample-by-sample
// runtime over scalars and vectors lives in dsp/filter/iir; this package
// only designs and analyzes the transfer function.
package biquad
