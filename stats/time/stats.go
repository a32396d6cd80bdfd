// Package time computes time-domain statistics for judging a smoothing
// filter: the level of a stream and how far a filtered stream strays from
// a clean reference.
package time

import (
	"errors"
	"fmt"
	"math"

	"github.com/montanaflynn/stats"

	"github.com/cwbudde/algo-smooth/dsp/core"
)

var (
	// ErrEmpty reports an empty input.
	ErrEmpty = errors.New("stats: input must not be empty")
	// ErrLengthMismatch reports reference and signal of different length.
	ErrLengthMismatch = errors.New("stats: reference and signal lengths differ")
)

// RMS returns the root-mean-square of the signal.
func RMS(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}

	var sumSq float64
	for _, x := range signal {
		sumSq += x * x
	}

	return math.Sqrt(sumSq / float64(len(signal)))
}

// DC returns the mean (DC offset) of the signal.
func DC(signal []float64) float64 {
	if len(signal) == 0 {
		return 0
	}
	// Kahan summation.
	var sum, c float64
	for _, x := range signal {
		y := x - c
		t := sum + y
		c = (t - sum) - y
		sum = t
	}

	return sum / float64(len(signal))
}

// Peak returns the peak absolute amplitude of the signal.
func Peak(signal []float64) float64 {
	peak := 0.0
	for _, x := range signal {
		peak = math.Max(peak, math.Abs(x))
	}

	return peak
}

// ErrorStats summarizes signal - reference.
type ErrorStats struct {
	Length    int
	Bias      float64 // mean error
	RMSE      float64
	StdDev    float64 // population standard deviation of the error
	MedianAbs float64 // median absolute error
	P95Abs    float64 // 95th percentile of the absolute error
	MaxAbs    float64
}

// Compare returns error statistics of signal against reference, sample by
// sample. Drop the filter's warm-up from both slices before calling.
func Compare(reference, signal []float64) (ErrorStats, error) {
	if len(reference) != len(signal) {
		return ErrorStats{}, fmt.Errorf("%w: %d != %d", ErrLengthMismatch, len(reference), len(signal))
	}
	if len(signal) == 0 {
		return ErrorStats{}, ErrEmpty
	}

	diff := make([]float64, len(signal))
	absDiff := make([]float64, len(signal))
	for i := range signal {
		diff[i] = signal[i] - reference[i]
		absDiff[i] = math.Abs(diff[i])
	}

	std, err := stats.StandardDeviationPopulation(diff)
	if err != nil {
		return ErrorStats{}, fmt.Errorf("stats: standard deviation: %w", err)
	}
	median, err := stats.Median(absDiff)
	if err != nil {
		return ErrorStats{}, fmt.Errorf("stats: median: %w", err)
	}
	p95, err := stats.Percentile(absDiff, 95)
	if err != nil {
		return ErrorStats{}, fmt.Errorf("stats: percentile: %w", err)
	}
	maxAbs, err := stats.Max(absDiff)
	if err != nil {
		return ErrorStats{}, fmt.Errorf("stats: max: %w", err)
	}

	return ErrorStats{
		Length:    len(signal),
		Bias:      DC(diff),
		RMSE:      RMS(diff),
		StdDev:    std,
		MedianAbs: median,
		P95Abs:    p95,
		MaxAbs:    maxAbs,
	}, nil
}

// NoiseReduction returns how much filtering lowered the RMS error against
// reference, in dB. Positive values mean filtered is closer to reference
// than raw.
func NoiseReduction(reference, raw, filtered []float64) (float64, error) {
	before, err := Compare(reference, raw)
	if err != nil {
		return 0, err
	}
	after, err := Compare(reference, filtered)
	if err != nil {
		return 0, err
	}

	return core.RatioToDB(before.RMSE, after.RMSE), nil
}
