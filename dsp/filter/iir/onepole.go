package iir

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-smooth/dsp/vec"
)

// OnePole is a first-order low-pass filter:
//
//	y[n] = a0*x[n] + b1*y[n-1],  b1 = 1 - a0
//
// Larger a0 means less smoothing; a0 = 1 passes samples through.
type OnePole[T any] struct {
	space vec.Space[T]

	a0, b1 float64
	value  T
}

// OnePoleVector3 is a one-pole filter over float64 3-vectors.
type OnePoleVector3 = OnePole[vec.Vector3d]

// NewOnePole returns a one-pole filter over a floating-point scalar.
func NewOnePole[T vec.Float](opts ...Option) (*OnePole[T], error) {
	return NewOnePoleWithSpace[T](vec.ScalarSpace[T]{}, opts...)
}

// NewOnePoleVector3 returns a one-pole filter over float64 3-vectors.
func NewOnePoleVector3(opts ...Option) (*OnePoleVector3, error) {
	return NewOnePoleWithSpace[vec.Vector3d](vec.Vec3Space[float64]{}, opts...)
}

// NewOnePoleWithSpace returns a one-pole filter using the arithmetic of s.
func NewOnePoleWithSpace[T any](s vec.Space[T], opts ...Option) (*OnePole[T], error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	f := &OnePole[T]{space: s, a0: 1}
	if cfg.tuned {
		if err := f.Fc(cfg.cutoffHz, cfg.sampleRate); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Fc recomputes the coefficients for cutoffHz at sampleRate. The current
// output is kept. On error the previous coefficients stay in effect.
func (f *OnePole[T]) Fc(cutoffHz, sampleRate float64) error {
	a0, err := onePoleCoefficient(cutoffHz, sampleRate)
	if err != nil {
		return err
	}

	f.a0 = a0
	f.b1 = 1 - a0

	return nil
}

// Set overwrites the output, seeding the next Process call.
func (f *OnePole[T]) Set(v T) { f.value = v }

// Value returns the most recent output.
func (f *OnePole[T]) Value() T { return f.value }

// Process filters x and returns the new output.
func (f *OnePole[T]) Process(x T) T {
	f.value = f.space.Add(f.space.Scale(x, f.a0), f.space.Scale(f.value, f.b1))
	return f.value
}

// ProcessInPlace filters buf sample by sample, replacing each input with
// its output.
func (f *OnePole[T]) ProcessInPlace(buf []T) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// Coefficients returns the input weight a0 and feedback weight b1.
func (f *OnePole[T]) Coefficients() (a0, b1 float64) { return f.a0, f.b1 }

// Reset clears the output to the zero value of T.
func (f *OnePole[T]) Reset() {
	var zero T
	f.value = zero
}

// Response returns the complex frequency response a0/(1 - b1*z^-1) at
// freqHz for the given sample rate.
func (f *OnePole[T]) Response(freqHz, sampleRate float64) complex128 {
	w := 2 * math.Pi * freqHz / sampleRate
	return complex(f.a0, 0) / (1 - complex(f.b1, 0)*cmplx.Exp(complex(0, -w)))
}

// MagnitudeDB returns 20*log10(|H(f)|).
func (f *OnePole[T]) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(f.Response(freqHz, sampleRate)))
}
