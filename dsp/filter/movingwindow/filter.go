package movingwindow

import (
	"errors"
	"fmt"

	"github.com/gammazero/deque"

	"github.com/cwbudde/algo-smooth/dsp/vec"
)

// DefaultWindowSize is the window size of a newly constructed filter.
const DefaultWindowSize = 4

// ErrInvalidWindowSize is returned by [Filter.SetWindowSize] for sizes < 1.
var ErrInvalidWindowSize = errors.New("movingwindow: window size must be >= 1")

// Filter is a moving-average filter over the last WindowSize samples of T.
//
// The zero value is not usable; construct with [New], [NewVector3] or
// [NewWithSpace]. A Filter is not safe for concurrent use.
type Filter[T any] struct {
	space vec.Space[T]

	windowSize int
	samples    *deque.Deque[T]
	sum        T
	filled     bool
}

// New returns a moving-average filter over a built-in numeric type with the
// default window size.
func New[T vec.Scalar]() *Filter[T] {
	return NewWithSpace[T](vec.ScalarSpace[T]{})
}

// NewVector3 returns a moving-average filter over 3-vectors with the default
// window size.
func NewVector3[T vec.Scalar]() *Filter[vec.Vec3[T]] {
	return NewWithSpace[vec.Vec3[T]](vec.Vec3Space[T]{})
}

// NewWithSpace returns a moving-average filter using the arithmetic of s.
func NewWithSpace[T any](s vec.Space[T]) *Filter[T] {
	return &Filter[T]{
		space:      s,
		windowSize: DefaultWindowSize,
		samples:    deque.New[T](DefaultWindowSize),
	}
}

// SetWindowSize changes the window size and discards all buffered samples.
// Sizes below 1 are rejected and leave the filter unchanged.
func (f *Filter[T]) SetWindowSize(n int) error {
	if n < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWindowSize, n)
	}

	f.windowSize = n
	f.samples = deque.New[T](n)
	f.clear()

	return nil
}

// WindowSize returns the configured window size.
func (f *Filter[T]) WindowSize() int { return f.windowSize }

// WindowFilled reports whether the window has been completely filled since
// the last resize or reset.
func (f *Filter[T]) WindowFilled() bool { return f.filled }

// SampleCount returns the number of samples currently contributing to the
// average, at most WindowSize.
func (f *Filter[T]) SampleCount() int { return f.samples.Len() }

// Update pushes sample into the window, evicting the oldest sample once the
// window is full.
func (f *Filter[T]) Update(sample T) {
	if f.samples.Len() == f.windowSize {
		f.sum = f.space.Sub(f.sum, f.samples.PopFront())
	}

	f.samples.PushBack(sample)
	f.sum = f.space.Add(f.sum, sample)

	if f.samples.Len() == f.windowSize {
		f.filled = true
	}
}

// Value returns the mean of the buffered samples, or the zero value of T if
// no sample has been added yet.
func (f *Filter[T]) Value() T {
	n := f.samples.Len()
	if n == 0 {
		var zero T
		return zero
	}

	return f.space.Div(f.sum, n)
}

// Process adds x to the window and returns the new mean, matching the
// Process method of the IIR filters.
func (f *Filter[T]) Process(x T) T {
	f.Update(x)
	return f.Value()
}

// Reset discards all buffered samples and keeps the window size.
func (f *Filter[T]) Reset() {
	f.clear()
}

func (f *Filter[T]) clear() {
	f.samples.Clear()

	var zero T
	f.sum = zero
	f.filled = false
}
