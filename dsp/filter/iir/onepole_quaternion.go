package iir

import (
	"github.com/cwbudde/algo-smooth/dsp/quat"
)

// OnePoleQuaternion is a first-order low-pass filter over orientations.
//
// Unit quaternions cannot be blended linearly, so each step moves the
// output a fraction a0 of the way toward the new sample along the shortest
// great-circle arc:
//
//	y[n] = slerp(y[n-1], x[n], a0)
//
// The output is always a unit quaternion.
type OnePoleQuaternion struct {
	a0, b1 float64
	value  quat.Quaternion
}

// NewOnePoleQuaternion returns an orientation filter starting at the
// identity rotation.
func NewOnePoleQuaternion(opts ...Option) (*OnePoleQuaternion, error) {
	cfg, err := applyOptions(opts)
	if err != nil {
		return nil, err
	}

	f := &OnePoleQuaternion{a0: 1, value: quat.Identity()}
	if cfg.tuned {
		if err := f.Fc(cfg.cutoffHz, cfg.sampleRate); err != nil {
			return nil, err
		}
	}

	return f, nil
}

// Fc recomputes the interpolation weight for cutoffHz at sampleRate.
func (f *OnePoleQuaternion) Fc(cutoffHz, sampleRate float64) error {
	a0, err := onePoleCoefficient(cutoffHz, sampleRate)
	if err != nil {
		return err
	}

	f.a0 = a0
	f.b1 = 1 - a0

	return nil
}

// Set overwrites the output with v. v is normalized if its norm is not
// within [quat.DefaultTolerance] of 1; a zero quaternion resets the output
// to the identity.
func (f *OnePoleQuaternion) Set(v quat.Quaternion) {
	if !v.IsUnit(quat.DefaultTolerance) {
		v = v.Normalized()
	}

	f.value = v
}

// Value returns the most recent output.
func (f *OnePoleQuaternion) Value() quat.Quaternion { return f.value }

// Process moves the output toward x and returns it. A zero quaternion
// carries no orientation and leaves the output unchanged.
func (f *OnePoleQuaternion) Process(x quat.Quaternion) quat.Quaternion {
	if x.IsZero() {
		return f.value
	}

	f.value = quat.Slerp(f.value, x, f.a0)

	return f.value
}

// ProcessInPlace filters buf sample by sample, replacing each input with
// its output.
func (f *OnePoleQuaternion) ProcessInPlace(buf []quat.Quaternion) {
	for i, x := range buf {
		buf[i] = f.Process(x)
	}
}

// Coefficients returns the interpolation weight a0 and its complement b1.
func (f *OnePoleQuaternion) Coefficients() (a0, b1 float64) { return f.a0, f.b1 }

// Reset returns the output to the identity rotation.
func (f *OnePoleQuaternion) Reset() { f.value = quat.Identity() }
