package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/quat"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestOnePoleQuaternionDefaultIsPassthrough(t *testing.T) {
	f, err := NewOnePoleQuaternion()
	if err != nil {
		t.Fatal(err)
	}
	if f.Value() != quat.Identity() {
		t.Fatalf("initial value = %v, want identity", f.Value())
	}

	for _, q := range []quat.Quaternion{
		quat.FromAxisAngle(0, 0, 1, 0.3),
		quat.FromAxisAngle(1, 1, 0, -2),
		quat.FromEuler(0.1, 0.2, 0.3),
	} {
		if got := f.Process(q); !got.SameRotation(q, 1e-12) {
			t.Fatalf("Process(%v) = %v, want pass-through", q, got)
		}
	}
}

func TestOnePoleQuaternionStaysUnit(t *testing.T) {
	f, err := NewOnePoleQuaternion(WithCutoff(2, 100))
	if err != nil {
		t.Fatal(err)
	}

	ax := testutil.DeterministicNoise(31, 1, 1000)
	ay := testutil.DeterministicNoise(32, 1, 1000)
	az := testutil.DeterministicNoise(33, 1, 1000)
	angle := testutil.DeterministicNoise(34, math.Pi, 1000)

	for i := range ax {
		x := quat.FromAxisAngle(ax[i], ay[i], az[i], angle[i])
		if i%7 == 0 {
			// Non-unit samples are accepted too.
			x = quat.New(3*x.W, 3*x.X, 3*x.Y, 3*x.Z)
		}

		y := f.Process(x)
		if math.Abs(y.Norm()-1) > 1e-12 {
			t.Fatalf("sample %d: |y| = %.15f", i, y.Norm())
		}
	}
}

func TestOnePoleQuaternionConverges(t *testing.T) {
	f, err := NewOnePoleQuaternion(WithCutoff(1, 50))
	if err != nil {
		t.Fatal(err)
	}
	target := quat.FromAxisAngle(0.2, -1, 0.5, 2.5)
	a0, b1 := f.Coefficients()
	if a0 <= 0 || a0 >= 1 || math.Abs(a0+b1-1) > 1e-15 {
		t.Fatalf("coefficients = (%v, %v)", a0, b1)
	}

	prev := f.Value().Angle(target)
	for i := range 500 {
		y := f.Process(target)
		d := y.Angle(target)
		if d > prev+1e-7 {
			t.Fatalf("step %d: angle to target grew from %v to %v", i, prev, d)
		}
		prev = d
	}
	if prev > 1e-6 {
		t.Fatalf("final angle to target = %v", prev)
	}
}

func TestOnePoleQuaternionStepFraction(t *testing.T) {
	f, _ := NewOnePoleQuaternion(WithCutoff(1, 50))
	a0, _ := f.Coefficients()

	// Each step covers a fraction a0 of the remaining arc.
	target := quat.FromAxisAngle(0, 0, 1, 1)
	f.Process(target)
	want := quat.FromAxisAngle(0, 0, 1, a0)
	if !f.Value().SameRotation(want, 1e-12) {
		t.Fatalf("after one step = %v, want %v", f.Value(), want)
	}
}

func TestOnePoleQuaternionSet(t *testing.T) {
	f, _ := NewOnePoleQuaternion(WithCutoff(1, 50))

	f.Set(quat.New(0, 0, 0, 2))
	if want := quat.New(0, 0, 0, 1); !f.Value().Equal(want, 1e-15) {
		t.Fatalf("Set normalized to %v, want %v", f.Value(), want)
	}

	f.Set(quat.Quaternion{})
	if f.Value() != quat.Identity() {
		t.Fatalf("Set(zero) = %v, want identity", f.Value())
	}

	unit := quat.FromEuler(0.4, -0.2, 1.1)
	f.Set(unit)
	if f.Value() != unit {
		t.Fatalf("Set(unit) changed the value to %v", f.Value())
	}
}

func TestOnePoleQuaternionIgnoresZeroSample(t *testing.T) {
	f, _ := NewOnePoleQuaternion(WithCutoff(5, 100))
	f.Set(quat.FromAxisAngle(1, 0, 0, 0.7))
	before := f.Value()

	if got := f.Process(quat.Quaternion{}); got != before {
		t.Fatalf("zero sample moved output to %v", got)
	}
}

func TestOnePoleQuaternionShortestPath(t *testing.T) {
	f, _ := NewOnePoleQuaternion(WithCutoff(5, 100))
	start := quat.FromAxisAngle(0, 1, 0, 0.5)
	f.Set(start)

	// -target is the same rotation; the output must not swing the long way.
	target := quat.FromAxisAngle(0, 1, 0, 0.6).Neg()
	y := f.Process(target)
	if d := y.Angle(start); d > 0.1 {
		t.Fatalf("moved %v rad for a 0.1 rad error", d)
	}
}

func TestOnePoleQuaternionFcRejectsInvalid(t *testing.T) {
	f, _ := NewOnePoleQuaternion(WithCutoff(5, 100))
	a0, b1 := f.Coefficients()

	if err := f.Fc(60, 100); !errors.Is(err, ErrCutoffAboveNyquist) {
		t.Fatalf("error = %v, want ErrCutoffAboveNyquist", err)
	}
	if err := f.Fc(5, 0); !errors.Is(err, ErrInvalidSampleRate) {
		t.Fatalf("error = %v, want ErrInvalidSampleRate", err)
	}
	if ga0, gb1 := f.Coefficients(); ga0 != a0 || gb1 != b1 {
		t.Fatalf("coefficients changed to (%v, %v)", ga0, gb1)
	}

	if _, err := NewOnePoleQuaternion(WithCutoff(0, 100)); !errors.Is(err, ErrInvalidCutoff) {
		t.Fatalf("constructor error = %v, want ErrInvalidCutoff", err)
	}
}

func TestOnePoleQuaternionReset(t *testing.T) {
	f, _ := NewOnePoleQuaternion()
	f.Process(quat.FromAxisAngle(1, 0, 0, 1))
	f.Reset()
	if f.Value() != quat.Identity() {
		t.Fatalf("Value after Reset = %v", f.Value())
	}
}
