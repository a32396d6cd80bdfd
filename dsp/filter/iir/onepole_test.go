package iir

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-smooth/dsp/vec"
	"github.com/cwbudde/algo-smooth/internal/testutil"
)

func TestOnePoleDefaultIsPassthrough(t *testing.T) {
	f, err := NewOnePole[float64]()
	if err != nil {
		t.Fatal(err)
	}

	for _, x := range []float64{1, -2.5, 0, 7} {
		if got := f.Process(x); got != x {
			t.Fatalf("Process(%v) = %v, want pass-through", x, got)
		}
	}
	if a0, b1 := f.Coefficients(); a0 != 1 || b1 != 0 {
		t.Fatalf("coefficients = (%v, %v), want (1, 0)", a0, b1)
	}
}

func TestOnePoleCoefficients(t *testing.T) {
	tests := []struct{ fc, fs float64 }{
		{1, 100},
		{10, 1000},
		{5, 48000},
		{20, 50},
	}
	for _, tt := range tests {
		f, err := NewOnePole[float64](WithCutoff(tt.fc, tt.fs))
		if err != nil {
			t.Fatalf("fc=%v fs=%v: %v", tt.fc, tt.fs, err)
		}

		dt := 1 / tt.fs
		want := 2 * math.Pi * tt.fc * dt / (2*math.Pi*tt.fc*dt + 1)

		a0, b1 := f.Coefficients()
		if !testutil.NearlyEqual(a0, want, 1e-15) {
			t.Errorf("fc=%v fs=%v: a0 = %.17f, want %.17f", tt.fc, tt.fs, a0, want)
		}
		if a0 <= 0 || a0 >= 1 {
			t.Errorf("fc=%v fs=%v: a0 = %v outside (0, 1)", tt.fc, tt.fs, a0)
		}
		if b1 != 1-a0 {
			t.Errorf("b1 = %v, want 1-a0 = %v", b1, 1-a0)
		}
	}
}

func TestOnePoleRecursion(t *testing.T) {
	f, err := NewOnePole[float64](WithCutoff(10, 1000))
	if err != nil {
		t.Fatal(err)
	}
	a0, b1 := f.Coefficients()

	in := testutil.DeterministicNoise(11, 1, 64)
	y := 0.0
	for i, x := range in {
		y = a0*x + b1*y
		if got := f.Process(x); got != y {
			t.Fatalf("sample %d: got %v, want %v", i, got, y)
		}
		if f.Value() != y {
			t.Fatalf("sample %d: Value = %v, want %v", i, f.Value(), y)
		}
	}
}

func TestOnePoleConvergesWithoutOvershoot(t *testing.T) {
	for _, tt := range []struct{ start, target float64 }{
		{0, 5},
		{10, -3},
		{-1, -1.5},
	} {
		f, err := NewOnePole[float64](WithCutoff(2, 100))
		if err != nil {
			t.Fatal(err)
		}
		f.Set(tt.start)

		out := make([]float64, 2000)
		for i := range out {
			out[i] = f.Process(tt.target)
		}

		testutil.RequireMonotoneApproach(t, out, tt.start, tt.target, 1e-12)
		if d := math.Abs(out[len(out)-1] - tt.target); d > 1e-9 {
			t.Errorf("start=%v: final distance %v", tt.start, d)
		}
	}
}

func TestOnePoleSetSeedsRecursion(t *testing.T) {
	f, err := NewOnePole[float64](WithCutoff(10, 1000))
	if err != nil {
		t.Fatal(err)
	}

	f.Set(4)
	if f.Value() != 4 {
		t.Fatalf("Value after Set = %v, want 4", f.Value())
	}

	_, b1 := f.Coefficients()
	if got, want := f.Process(0), b1*4; got != want {
		t.Fatalf("Process after Set = %v, want %v", got, want)
	}
}

func TestOnePoleFcKeepsState(t *testing.T) {
	f, err := NewOnePole[float64](WithCutoff(10, 1000))
	if err != nil {
		t.Fatal(err)
	}
	for range 50 {
		f.Process(1)
	}
	before := f.Value()

	if err := f.Fc(100, 1000); err != nil {
		t.Fatal(err)
	}
	if f.Value() != before {
		t.Fatalf("Fc changed output from %v to %v", before, f.Value())
	}

	a0, _ := f.Coefficients()
	if want, _ := onePoleCoefficient(100, 1000); a0 != want {
		t.Fatalf("a0 = %v, want %v", a0, want)
	}
}

func TestOnePoleFcRejectsInvalid(t *testing.T) {
	tests := []struct {
		name    string
		fc, fs  float64
		wantErr error
	}{
		{"zero sample rate", 10, 0, ErrInvalidSampleRate},
		{"negative sample rate", 10, -1, ErrInvalidSampleRate},
		{"nan sample rate", 10, math.NaN(), ErrInvalidSampleRate},
		{"inf sample rate", 10, math.Inf(1), ErrInvalidSampleRate},
		{"zero cutoff", 0, 100, ErrInvalidCutoff},
		{"negative cutoff", -3, 100, ErrInvalidCutoff},
		{"nan cutoff", math.NaN(), 100, ErrInvalidCutoff},
		{"cutoff at nyquist", 50, 100, ErrCutoffAboveNyquist},
		{"cutoff above nyquist", 80, 100, ErrCutoffAboveNyquist},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := NewOnePole[float64](WithCutoff(5, 100))
			if err != nil {
				t.Fatal(err)
			}
			a0, b1 := f.Coefficients()

			if err := f.Fc(tt.fc, tt.fs); !errors.Is(err, tt.wantErr) {
				t.Fatalf("Fc error = %v, want %v", err, tt.wantErr)
			}
			if ga0, gb1 := f.Coefficients(); ga0 != a0 || gb1 != b1 {
				t.Fatalf("coefficients changed to (%v, %v)", ga0, gb1)
			}

			if _, err := NewOnePole[float64](WithCutoff(tt.fc, tt.fs)); !errors.Is(err, tt.wantErr) {
				t.Fatalf("constructor error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestOnePoleVector3MatchesScalar(t *testing.T) {
	fv, err := NewOnePoleVector3(WithCutoff(3, 200))
	if err != nil {
		t.Fatal(err)
	}
	fx, _ := NewOnePole[float64](WithCutoff(3, 200))
	fy, _ := NewOnePole[float64](WithCutoff(3, 200))
	fz, _ := NewOnePole[float64](WithCutoff(3, 200))

	xs := testutil.DeterministicNoise(1, 1, 100)
	ys := testutil.DeterministicNoise(2, 2, 100)
	zs := testutil.DeterministicNoise(3, 9.8, 100)

	for i := range xs {
		got := fv.Process(vec.New(xs[i], ys[i], zs[i]))
		want := vec.New(fx.Process(xs[i]), fy.Process(ys[i]), fz.Process(zs[i]))
		if got != want {
			t.Fatalf("sample %d: vector %v, scalar %v", i, got, want)
		}
	}
}

func TestOnePoleFloat32(t *testing.T) {
	f, err := NewOnePole[float32](WithCutoff(1, 10))
	if err != nil {
		t.Fatal(err)
	}
	var y float32
	for range 200 {
		y = f.Process(2)
	}
	if math.Abs(float64(y)-2) > 1e-5 {
		t.Fatalf("float32 filter settled at %v, want 2", y)
	}
}

func TestOnePoleReset(t *testing.T) {
	f, _ := NewOnePoleVector3(WithCutoff(1, 10))
	f.Process(vec.New(1.0, 2.0, 3.0))
	f.Reset()
	if f.Value() != (vec.Vector3d{}) {
		t.Fatalf("Value after Reset = %v", f.Value())
	}
}

func TestOnePoleProcessInPlace(t *testing.T) {
	in := testutil.DeterministicSine(5, 100, 1, 50)

	ref, _ := NewOnePole[float64](WithCutoff(2, 100))
	want := make([]float64, len(in))
	for i, x := range in {
		want[i] = ref.Process(x)
	}

	f, _ := NewOnePole[float64](WithCutoff(2, 100))
	got := append([]float64(nil), in...)
	f.ProcessInPlace(got)

	testutil.RequireSliceNearlyEqual(t, got, want, 0)
}

func TestOnePoleResponse(t *testing.T) {
	const fs = 1000.0

	f, err := NewOnePole[float64](WithCutoff(10, fs))
	if err != nil {
		t.Fatal(err)
	}

	if db := f.MagnitudeDB(0, fs); math.Abs(db) > 1e-9 {
		t.Fatalf("DC gain = %v dB, want 0", db)
	}

	// Steady-state RMS of a sine (an integer number of periods) agrees
	// with |H(f)|.
	const freq = 50.0
	in := testutil.DeterministicSine(freq, fs, 1, 4000)
	sumSq := 0.0
	for i, x := range in {
		y := f.Process(x)
		if i >= 2000 {
			sumSq += y * y
		}
	}
	amplitude := math.Sqrt(2 * sumSq / 2000)
	want := math.Pow(10, f.MagnitudeDB(freq, fs)/20)
	if math.Abs(amplitude-want) > 1e-3*want {
		t.Fatalf("steady-state amplitude %v, want %v", amplitude, want)
	}

	// First order: about 6 dB per octave well above cutoff.
	slope := f.MagnitudeDB(100, fs) - f.MagnitudeDB(200, fs)
	if slope < 4.5 || slope > 6.5 {
		t.Fatalf("roll-off = %.2f dB/octave, want about 6", slope)
	}
}
