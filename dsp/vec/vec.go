// Package vec provides the element types and arithmetic the smoothing
// filters operate on.
//
// [Vec3] is a small generic 3-component vector. [Space] abstracts the
// handful of vector-space operations (addition, subtraction, scaling and
// division by a sample count) a filter needs, so the same recursion can
// run over plain scalars and vectors alike.
package vec

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Scalar is any built-in integer or floating-point type.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Float is any built-in floating-point type.
type Float interface {
	constraints.Float
}

// Vec3 is a 3-component vector.
type Vec3[T Scalar] struct {
	X, Y, Z T
}

// Common instantiations.
type (
	Vector3i = Vec3[int]
	Vector3f = Vec3[float32]
	Vector3d = Vec3[float64]
)

// New returns the vector (x, y, z).
func New[T Scalar](x, y, z T) Vec3[T] {
	return Vec3[T]{X: x, Y: y, Z: z}
}

// Add returns v + o.
func (v Vec3[T]) Add(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X + o.X, Y: v.Y + o.Y, Z: v.Z + o.Z}
}

// Sub returns v - o.
func (v Vec3[T]) Sub(o Vec3[T]) Vec3[T] {
	return Vec3[T]{X: v.X - o.X, Y: v.Y - o.Y, Z: v.Z - o.Z}
}

// Scale returns v multiplied component-wise by k. Integer components are
// truncated toward zero.
func (v Vec3[T]) Scale(k float64) Vec3[T] {
	return Vec3[T]{
		X: T(float64(v.X) * k),
		Y: T(float64(v.Y) * k),
		Z: T(float64(v.Z) * k),
	}
}

// Div divides every component by n using the element type's division, so
// integer components truncate toward zero.
func (v Vec3[T]) Div(n int) Vec3[T] {
	d := T(n)
	return Vec3[T]{X: v.X / d, Y: v.Y / d, Z: v.Z / d}
}

// Dot returns the dot product of v and o as float64.
func (v Vec3[T]) Dot(o Vec3[T]) float64 {
	return float64(v.X)*float64(o.X) + float64(v.Y)*float64(o.Y) + float64(v.Z)*float64(o.Z)
}

// Length returns the Euclidean norm of v.
func (v Vec3[T]) Length() float64 {
	return math.Sqrt(v.Dot(v))
}

// NearlyEqual reports whether every component of v and o differs by at
// most tol.
func (v Vec3[T]) NearlyEqual(o Vec3[T], tol float64) bool {
	return math.Abs(float64(v.X)-float64(o.X)) <= tol &&
		math.Abs(float64(v.Y)-float64(o.Y)) <= tol &&
		math.Abs(float64(v.Z)-float64(o.Z)) <= tol
}
