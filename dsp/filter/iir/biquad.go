package iir

import (
	"fmt"

	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
	"github.com/cwbudde/algo-smooth/dsp/vec"
)

// BiQuad is a second-order low-pass filter in direct form I:
//
//	y[n] = B0*x[n] + B1*x[n-1] + B2*x[n-2] - A1*y[n-1] - A2*y[n-2]
//
// Keeping input and output history (rather than the transposed state of
// direct form II) lets [BiQuad.Set] seed a steady state for any element
// type.
type BiQuad[T any] struct {
	space vec.Space[T]

	coeffs biquad.Coefficients
	q      float64

	x1, x2 T
	y1, y2 T
}

// BiQuadVector3 is a biquad filter over float64 3-vectors.
type BiQuadVector3 = BiQuad[vec.Vector3d]

// NewBiQuad returns a biquad low-pass over a floating-point scalar.
func NewBiQuad[T vec.Float](opts ...Option) (*BiQuad[T], error) {
	return NewBiQuadWithSpace[T](vec.ScalarSpace[T]{}, opts...)
}

// NewBiQuadVector3 returns a biquad low-pass over float64 3-vectors.
func NewBiQuadVector3(opts ...Option) (*BiQuadVector3, error) {
	return NewBiQuadWithSpace[vec.Vector3d](vec.Vec3Space[float64]{}, opts...)
}

// NewBiQuadWithSpace returns a biquad low-pass using the arithmetic of s.
func NewBiQuadWithSpace[T any](s vec.Space[T], opts ...Option) (*BiQuad[T], error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	f := &BiQuad[T]{
		space:  s,
		coeffs: biquad.Passthrough(),
		q:      cfg.q,
	}
	if cfg.tuned {
		if err := f.FcQ(cfg.cutoffHz, cfg.sampleRate, cfg.q); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Fc tunes the filter with the default quality factor [biquad.DefaultQ]
// (Butterworth), whatever Q was used before. Use [BiQuad.FcQ] to keep a
// different Q.
func (f *BiQuad[T]) Fc(cutoffHz, sampleRate float64) error {
	return f.FcQ(cutoffHz, sampleRate, biquad.DefaultQ)
}

// FcQ tunes the filter to cutoffHz at sampleRate with quality factor q.
// History is kept. On error the previous coefficients stay in effect.
func (f *BiQuad[T]) FcQ(cutoffHz, sampleRate, q float64) error {
	if err := validateRates(cutoffHz, sampleRate); err != nil {
		return err
	}

	if err := validateQ(q); err != nil {
		return err
	}

	c, err := biquad.Lowpass(cutoffHz, q, sampleRate)
	if err != nil {
		return fmt.Errorf("iir: %w", err)
	}

	f.coeffs = c
	f.q = q

	return nil
}

// Set fills the whole history with v, as if v had been the input and
// output forever.
func (f *BiQuad[T]) Set(v T) {
	f.x1, f.x2 = v, v
	f.y1, f.y2 = v, v
}

// Value returns the most recent output.
func (f *BiQuad[T]) Value() T { return f.y1 }

// Process filters x and returns the new output.
func (f *BiQuad[T]) Process(x T) T {
	s, c := f.space, f.coeffs

	y := s.Add(s.Scale(x, c.B0), s.Scale(f.x1, c.B1))
	y = s.Add(y, s.Scale(f.x2, c.B2))
	y = s.Sub(y, s.Scale(f.y1, c.A1))
	y = s.Sub(y, s.Scale(f.y2, c.A2))

	f.x2, f.x1 = f.x1, x
	f.y2, f.y1 = f.y1, y

	return y
}

// ProcessInPlace filters buf sample by sample, replacing each input with
// its output.
func (f *BiQuad[T]) ProcessInPlace(buf []T) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// Coefficients returns the active transfer function.
func (f *BiQuad[T]) Coefficients() biquad.Coefficients { return f.coeffs }

// Q returns the quality factor of the active tuning.
func (f *BiQuad[T]) Q() float64 { return f.q }

// Reset clears the input and output history to the zero value of T.
func (f *BiQuad[T]) Reset() {
	var zero T
	f.x1, f.x2 = zero, zero
	f.y1, f.y2 = zero, zero
}
