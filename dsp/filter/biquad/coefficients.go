package biquad

import (
	"errors"
	"fmt"
	"math"
)

// DefaultQ is the quality factor of a maximally flat (Butterworth)
// second-order low-pass.
const DefaultQ = 1 / math.Sqrt2

// ErrInvalidDesign is returned when design parameters cannot produce a
// stable filter.
var ErrInvalidDesign = errors.New("biquad: invalid design parameters")

// Coefficients holds the transfer function coefficients for a single
// second-order section (biquad). a0 is normalized to 1 and not stored.
//
// In direct form I:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Passthrough returns the identity section H(z) = 1.
func Passthrough() Coefficients {
	return Coefficients{B0: 1}
}

// DCGain returns H(1), the gain for a constant input.
func (c Coefficients) DCGain() float64 {
	return (c.B0 + c.B1 + c.B2) / (1 + c.A1 + c.A2)
}

// Stable reports whether both poles lie strictly inside the unit circle.
func (c Coefficients) Stable() bool {
	return math.Abs(c.A2) < 1 && math.Abs(c.A1) < 1+c.A2
}

// Lowpass designs a low-pass biquad at cutoffHz with quality factor q.
//
// It uses the RBJ cookbook form: w0 = 2*pi*fc/fs, alpha = sin(w0)/(2q),
// normalized by a0 = 1 + alpha. The cutoff must lie in (0, fs/2) and q
// must be positive; otherwise an error wrapping [ErrInvalidDesign] is
// returned.
func Lowpass(cutoffHz, q, sampleRate float64) (Coefficients, error) {
	w0, err := normalizedW0(cutoffHz, sampleRate)
	if err != nil {
		return Coefficients{}, err
	}

	if q <= 0 || math.IsNaN(q) || math.IsInf(q, 0) {
		return Coefficients{}, fmt.Errorf("%w: q must be > 0 and finite: %f", ErrInvalidDesign, q)
	}

	sw, cw := math.Sincos(w0)
	alpha := sw / (2 * q)

	b1 := 1 - cw
	b0 := b1 / 2
	b2 := b0
	a0 := 1 + alpha
	a1 := -2 * cw
	a2 := 1 - alpha

	return normalize(b0, b1, b2, a0, a1, a2), nil
}

func normalizedW0(freq, sampleRate float64) (float64, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return 0, fmt.Errorf("%w: sample rate must be > 0 and finite: %f", ErrInvalidDesign, sampleRate)
	}

	nyquist := sampleRate / 2
	if freq <= 0 || freq >= nyquist || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return 0, fmt.Errorf("%w: cutoff must be in (0, %f): %f", ErrInvalidDesign, nyquist, freq)
	}

	return 2 * math.Pi * freq / sampleRate, nil
}

func normalize(b0, b1, b2, a0, a1, a2 float64) Coefficients {
	return Coefficients{
		B0: b0 / a0,
		B1: b1 / a0,
		B2: b2 / a0,
		A1: a1 / a0,
		A2: a2 / a0,
	}
}
