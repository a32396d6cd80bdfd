package vec

// Space describes the arithmetic a filter performs on its element type T.
//
// Implementations must be pure: they never modify their arguments.
type Space[T any] interface {
	// Add returns a + b.
	Add(a, b T) T
	// Sub returns a - b.
	Sub(a, b T) T
	// Scale returns a multiplied by the real weight k.
	Scale(a T, k float64) T
	// Div returns a divided by the positive count n.
	Div(a T, n int) T
}

// ScalarSpace is the [Space] of a built-in numeric type.
type ScalarSpace[T Scalar] struct{}

// Add returns a + b.
func (ScalarSpace[T]) Add(a, b T) T { return a + b }

// Sub returns a - b.
func (ScalarSpace[T]) Sub(a, b T) T { return a - b }

// Scale returns a*k converted back to T.
func (ScalarSpace[T]) Scale(a T, k float64) T { return T(float64(a) * k) }

// Div returns a/n with T's division semantics.
func (ScalarSpace[T]) Div(a T, n int) T { return a / T(n) }

// Vec3Space is the [Space] of [Vec3] with component type T.
type Vec3Space[T Scalar] struct{}

// Add returns a + b.
func (Vec3Space[T]) Add(a, b Vec3[T]) Vec3[T] { return a.Add(b) }

// Sub returns a - b.
func (Vec3Space[T]) Sub(a, b Vec3[T]) Vec3[T] { return a.Sub(b) }

// Scale returns a scaled by k.
func (Vec3Space[T]) Scale(a Vec3[T], k float64) Vec3[T] { return a.Scale(k) }

// Div returns a divided component-wise by n.
func (Vec3Space[T]) Div(a Vec3[T], n int) Vec3[T] { return a.Div(n) }
