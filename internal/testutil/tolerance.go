package testutil

import (
	"fmt"
	"math"
	"testing"
)

// NearlyEqual reports whether a and b agree within eps, either absolutely
// or relative to the larger magnitude.
func NearlyEqual(a, b, eps float64) bool {
	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	return diff <= eps*math.Max(math.Abs(a), math.Abs(b))
}

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// RequireMonotoneApproach fails t unless data moves toward target without
// crossing it: each sample is at least as close to target as the one
// before and stays on the side start is on. Deviations up to tol are
// tolerated to absorb rounding.
func RequireMonotoneApproach(t *testing.T, data []float64, start, target, tol float64) {
	t.Helper()
	prev := math.Abs(target - start)
	below := start <= target
	for i, v := range data {
		if below && v > target+tol || !below && v < target-tol {
			t.Fatalf("index %d: %v overshoots target %v", i, v, target)
		}
		d := math.Abs(target - v)
		if d > prev+tol {
			t.Fatalf("index %d: distance to target grew from %v to %v", i, prev, d)
		}
		prev = d
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}
