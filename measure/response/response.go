package response

import (
	"errors"
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-smooth/dsp/core"
	"github.com/cwbudde/algo-smooth/dsp/spectrum"
)

var (
	// ErrInvalidLength reports a response length that is not usable.
	ErrInvalidLength = errors.New("response: invalid length")
	// ErrInvalidSampleRate reports a sample rate that is not > 0.
	ErrInvalidSampleRate = errors.New("response: sample rate must be > 0")
	// ErrNilFactory reports a missing filter factory.
	ErrNilFactory = errors.New("response: nil factory")
)

// halfPowerDB is the gain at which the cutoff is read, 20*log10(1/sqrt(2)).
var halfPowerDB = core.LinearToDB(1 / math.Sqrt2)

// Processor is a single-channel filter.
type Processor interface {
	Process(x float64) float64
}

// Factory constructs a new filter in its initial state.
type Factory func() (Processor, error)

func probe(newFilter Factory, input []float64) ([]float64, error) {
	if newFilter == nil {
		return nil, ErrNilFactory
	}
	p, err := newFilter()
	if err != nil {
		return nil, fmt.Errorf("response: construct filter: %w", err)
	}

	out := make([]float64, len(input))
	for i, x := range input {
		out[i] = p.Process(x)
	}
	return out, nil
}

// ImpulseResponse returns the first n output samples for a unit impulse.
func ImpulseResponse(newFilter Factory, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	in := make([]float64, n)
	in[0] = 1
	return probe(newFilter, in)
}

// StepResponse returns the first n output samples for a unit step.
func StepResponse(newFilter Factory, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLength, n)
	}
	in := make([]float64, n)
	for i := range in {
		in[i] = 1
	}
	return probe(newFilter, in)
}

// Curve is a frequency response on the bins 0..FFTSize/2 of an FFT.
type Curve struct {
	FFTSize     int
	SampleRate  float64
	Freqs       []float64 // Hz
	MagnitudeDB []float64
	Phase       []float64 // unwrapped, radians
	GroupDelay  []float64 // samples
}

// FrequencyResponse measures the response of the filter from the FFT of
// its first n impulse response samples. n must be a power of two and long
// enough for the impulse response to decay.
func FrequencyResponse(newFilter Factory, n int, sampleRate float64) (Curve, error) {
	if n < 4 || n&(n-1) != 0 {
		return Curve{}, fmt.Errorf("%w: fft size %d is not a power of two >= 4", ErrInvalidLength, n)
	}
	if !(sampleRate > 0) || math.IsInf(sampleRate, 0) {
		return Curve{}, fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	h, err := ImpulseResponse(newFilter, n)
	if err != nil {
		return Curve{}, err
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return Curve{}, fmt.Errorf("response: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, n)
	for i, v := range h {
		in[i] = complex(v, 0)
	}
	out := make([]complex128, n)
	if err := plan.Forward(out, in); err != nil {
		return Curve{}, fmt.Errorf("response: forward FFT failed: %w", err)
	}

	bins := out[:n/2+1]
	mag := spectrum.Magnitude(bins)
	phase := spectrum.UnwrapPhase(spectrum.Phase(bins))
	gd, err := spectrum.GroupDelay(phase, n)
	if err != nil {
		return Curve{}, err
	}

	c := Curve{
		FFTSize:     n,
		SampleRate:  sampleRate,
		Freqs:       make([]float64, len(bins)),
		MagnitudeDB: make([]float64, len(bins)),
		Phase:       phase,
		GroupDelay:  gd,
	}
	for k := range bins {
		c.Freqs[k] = float64(k) * sampleRate / float64(n)
		c.MagnitudeDB[k] = core.LinearToDB(mag[k])
	}
	return c, nil
}

// MagnitudeAt returns the magnitude in dB at freqHz, interpolated linearly
// between the neighbouring bins.
func (c Curve) MagnitudeAt(freqHz float64) float64 {
	if len(c.Freqs) == 0 {
		return math.NaN()
	}
	df := c.SampleRate / float64(c.FFTSize)
	pos := core.Clamp(freqHz/df, 0, float64(len(c.Freqs)-1))
	k := int(pos)
	if k == len(c.Freqs)-1 {
		return c.MagnitudeDB[k]
	}
	t := pos - float64(k)
	return c.MagnitudeDB[k] + t*(c.MagnitudeDB[k+1]-c.MagnitudeDB[k])
}

// Cutoff returns the first frequency at which the gain has dropped 3 dB
// below the DC gain. ok is false if it never does within the curve.
func (c Curve) Cutoff() (freqHz float64, ok bool) {
	if len(c.MagnitudeDB) < 2 {
		return 0, false
	}
	level := c.MagnitudeDB[0] + halfPowerDB
	for k := 1; k < len(c.MagnitudeDB); k++ {
		cur, prev := c.MagnitudeDB[k], c.MagnitudeDB[k-1]
		if cur > level {
			continue
		}
		t := (prev - level) / (prev - cur)
		return c.Freqs[k-1] + t*(c.Freqs[k]-c.Freqs[k-1]), true
	}
	return 0, false
}

// Lag returns the low-frequency group delay in seconds, the time by which
// a slowly varying input trails behind the filtered output.
func (c Curve) Lag() float64 {
	if len(c.GroupDelay) == 0 || c.SampleRate <= 0 {
		return 0
	}
	return c.GroupDelay[0] / c.SampleRate
}

// Settling returns the number of samples after which resp stays within tol
// of target. ok is false if the last sample is still outside the band.
func Settling(resp []float64, target, tol float64) (samples int, ok bool) {
	if len(resp) == 0 {
		return 0, false
	}
	for i := len(resp) - 1; i >= 0; i-- {
		if math.Abs(resp[i]-target) > tol {
			return i + 1, i+1 < len(resp)
		}
	}
	return 0, true
}

// Overshoot returns how far a step response exceeds final, as a fraction
// of final. A response that never exceeds final returns 0.
func Overshoot(step []float64, final float64) float64 {
	if final == 0 {
		return 0
	}
	peak := 0.0
	for _, v := range step {
		if d := (v - final) / final; d > peak {
			peak = d
		}
	}
	return peak
}
