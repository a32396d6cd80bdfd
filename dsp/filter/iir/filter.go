package iir

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-smooth/dsp/filter/biquad"
)

var (
	// ErrInvalidSampleRate reports a sample rate that is not finite and > 0.
	ErrInvalidSampleRate = errors.New("iir: sample rate must be > 0 and finite")
	// ErrInvalidCutoff reports a cutoff that is not finite and > 0.
	ErrInvalidCutoff = errors.New("iir: cutoff must be > 0 and finite")
	// ErrCutoffAboveNyquist reports a cutoff at or above fs/2.
	ErrCutoffAboveNyquist = errors.New("iir: cutoff must be below the Nyquist frequency")
	// ErrInvalidQ reports a quality factor that is not finite and > 0.
	ErrInvalidQ = errors.New("iir: q must be > 0 and finite")
)

// Filter is the behavior shared by all filters in this package.
type Filter[T any] interface {
	// Set overwrites the filter output (and history) with v.
	Set(v T)
	// Fc tunes the filter to cutoffHz for samples arriving at sampleRate.
	Fc(cutoffHz, sampleRate float64) error
	// Value returns the most recent output.
	Value() T
}

// Processor is a [Filter] that consumes samples.
type Processor[T any] interface {
	Filter[T]
	// Process filters x and returns the new output.
	Process(x T) T
}

// Option configures a filter at construction.
type Option func(*config) error

type config struct {
	cutoffHz   float64
	sampleRate float64
	q          float64
	tuned      bool
}

func defaultConfig() config {
	return config{q: biquad.DefaultQ}
}

func applyOptions(opts []Option) (config, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return config{}, err
		}
	}

	return cfg, nil
}

// WithCutoff tunes the filter to cutoffHz at sampleRate. Without it the
// filter starts as a pass-through.
func WithCutoff(cutoffHz, sampleRate float64) Option {
	return func(cfg *config) error {
		if err := validateRates(cutoffHz, sampleRate); err != nil {
			return err
		}

		cfg.cutoffHz = cutoffHz
		cfg.sampleRate = sampleRate
		cfg.tuned = true

		return nil
	}
}

// WithQ sets the quality factor a [BiQuad] is tuned with by [WithCutoff]
// at construction. The default is 1/sqrt(2) (Butterworth). A later
// [BiQuad.Fc] call uses the default again. One-pole filters ignore it.
func WithQ(q float64) Option {
	return func(cfg *config) error {
		if err := validateQ(q); err != nil {
			return err
		}

		cfg.q = q

		return nil
	}
}

func validateRates(cutoffHz, sampleRate float64) error {
	if !isFinite(sampleRate) || sampleRate <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidSampleRate, sampleRate)
	}

	if !isFinite(cutoffHz) || cutoffHz <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidCutoff, cutoffHz)
	}

	if nyquist := sampleRate / 2; cutoffHz >= nyquist {
		return fmt.Errorf("%w: %f >= %f", ErrCutoffAboveNyquist, cutoffHz, nyquist)
	}

	return nil
}

func validateQ(q float64) error {
	if !isFinite(q) || q <= 0 {
		return fmt.Errorf("%w: %f", ErrInvalidQ, q)
	}

	return nil
}

func isFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// onePoleCoefficient returns a0 = w/(w+1) with w = 2*pi*fc/fs.
func onePoleCoefficient(cutoffHz, sampleRate float64) (float64, error) {
	if err := validateRates(cutoffHz, sampleRate); err != nil {
		return 0, err
	}

	w := 2 * math.Pi * cutoffHz / sampleRate

	return w / (w + 1), nil
}
