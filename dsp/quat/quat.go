// Package quat provides unit quaternions for representing orientations.
//
// [Quaternion] is a thin value wrapper over gonum's [quat.Number] that adds
// the orientation operations the smoothing filters need, most importantly
// spherical linear interpolation ([Slerp]). The scalar part is W and the
// vector part is (X, Y, Z).
package quat

import (
	"math"

	"gonum.org/v1/gonum/num/quat"
)

// DefaultTolerance is the norm deviation accepted by [Quaternion.IsUnit]
// when callers pass tol <= 0.
const DefaultTolerance = 1e-9

// slerpLinearThreshold is the |cos θ| above which Slerp falls back to
// normalised linear interpolation to avoid dividing by sin θ ≈ 0.
const slerpLinearThreshold = 0.9995

// Quaternion is a quaternion W + Xi + Yj + Zk.
type Quaternion struct {
	W, X, Y, Z float64
}

// Identity returns the identity rotation.
func Identity() Quaternion {
	return Quaternion{W: 1}
}

// New returns the quaternion w + xi + yj + zk.
func New(w, x, y, z float64) Quaternion {
	return Quaternion{W: w, X: x, Y: y, Z: z}
}

// FromAxisAngle returns the unit quaternion rotating by angle radians about
// axis. A zero axis yields the identity.
func FromAxisAngle(ax, ay, az, angle float64) Quaternion {
	n := math.Sqrt(ax*ax + ay*ay + az*az)
	if n == 0 {
		return Identity()
	}

	s := math.Sin(angle/2) / n

	return Quaternion{W: math.Cos(angle / 2), X: ax * s, Y: ay * s, Z: az * s}
}

// FromEuler returns the unit quaternion for the given roll (about X),
// pitch (about Y) and yaw (about Z) in radians, applied in Z-Y-X order.
func FromEuler(roll, pitch, yaw float64) Quaternion {
	sr, cr := math.Sincos(roll / 2)
	sp, cp := math.Sincos(pitch / 2)
	sy, cy := math.Sincos(yaw / 2)

	return Quaternion{
		W: cr*cp*cy + sr*sp*sy,
		X: sr*cp*cy - cr*sp*sy,
		Y: cr*sp*cy + sr*cp*sy,
		Z: cr*cp*sy - sr*sp*cy,
	}
}

// Euler returns roll, pitch and yaw in radians (Z-Y-X convention).
// q is expected to be a unit quaternion.
func (q Quaternion) Euler() (roll, pitch, yaw float64) {
	roll = math.Atan2(2*(q.W*q.X+q.Y*q.Z), 1-2*(q.X*q.X+q.Y*q.Y))

	sinp := 2 * (q.W*q.Y - q.Z*q.X)
	switch {
	case sinp >= 1:
		pitch = math.Pi / 2
	case sinp <= -1:
		pitch = -math.Pi / 2
	default:
		pitch = math.Asin(sinp)
	}

	yaw = math.Atan2(2*(q.W*q.Z+q.X*q.Y), 1-2*(q.Y*q.Y+q.Z*q.Z))

	return roll, pitch, yaw
}

func (q Quaternion) number() quat.Number {
	return quat.Number{Real: q.W, Imag: q.X, Jmag: q.Y, Kmag: q.Z}
}

func fromNumber(n quat.Number) Quaternion {
	return Quaternion{W: n.Real, X: n.Imag, Y: n.Jmag, Z: n.Kmag}
}

// Norm returns the Euclidean norm |q|.
func (q Quaternion) Norm() float64 {
	return quat.Abs(q.number())
}

// Normalized returns q/|q|, or the identity when |q| is zero or not finite.
func (q Quaternion) Normalized() Quaternion {
	n := q.Norm()
	if n == 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return Identity()
	}

	return fromNumber(quat.Scale(1/n, q.number()))
}

// IsUnit reports whether |q| is within tol of 1.
func (q Quaternion) IsUnit(tol float64) bool {
	if tol <= 0 {
		tol = DefaultTolerance
	}

	return math.Abs(q.Norm()-1) <= tol
}

// IsZero reports whether all components are zero.
func (q Quaternion) IsZero() bool {
	return q == Quaternion{}
}

// Dot returns the 4D dot product of q and o.
func (q Quaternion) Dot(o Quaternion) float64 {
	return q.W*o.W + q.X*o.X + q.Y*o.Y + q.Z*o.Z
}

// Conj returns the conjugate of q.
func (q Quaternion) Conj() Quaternion {
	return fromNumber(quat.Conj(q.number()))
}

// Mul returns the Hamilton product q*o.
func (q Quaternion) Mul(o Quaternion) Quaternion {
	return fromNumber(quat.Mul(q.number(), o.number()))
}

// Neg returns -q, which represents the same rotation as q.
func (q Quaternion) Neg() Quaternion {
	return fromNumber(quat.Scale(-1, q.number()))
}

// Equal reports whether q and o are component-wise within tol.
func (q Quaternion) Equal(o Quaternion, tol float64) bool {
	return math.Abs(q.W-o.W) <= tol &&
		math.Abs(q.X-o.X) <= tol &&
		math.Abs(q.Y-o.Y) <= tol &&
		math.Abs(q.Z-o.Z) <= tol
}

// SameRotation reports whether q and o describe the same rotation within
// tol, treating q and -q as equivalent.
func (q Quaternion) SameRotation(o Quaternion, tol float64) bool {
	return q.Equal(o, tol) || q.Equal(o.Neg(), tol)
}

// Angle returns the rotation angle in radians between the unit quaternions
// q and o, in [0, π].
func (q Quaternion) Angle(o Quaternion) float64 {
	d := math.Abs(q.Dot(o))
	if d > 1 {
		d = 1
	}

	return 2 * math.Acos(d)
}

// Slerp interpolates from a toward b by t along the shortest great-circle
// arc and returns a unit quaternion. t is clamped to [0, 1]; both inputs
// are normalised first.
func Slerp(a, b Quaternion, t float64) Quaternion {
	switch {
	case t <= 0 || math.IsNaN(t):
		return a.Normalized()
	case t >= 1:
		t = 1
	}

	qa := a.Normalized().number()
	qb := b.Normalized().number()

	cosTheta := qa.Real*qb.Real + qa.Imag*qb.Imag + qa.Jmag*qb.Jmag + qa.Kmag*qb.Kmag
	if cosTheta < 0 {
		qb = quat.Scale(-1, qb)
		cosTheta = -cosTheta
	}

	var wa, wb float64
	if cosTheta > slerpLinearThreshold {
		wa, wb = 1-t, t
	} else {
		theta := math.Acos(cosTheta)
		sinTheta := math.Sin(theta)
		wa = math.Sin((1-t)*theta) / sinTheta
		wb = math.Sin(t*theta) / sinTheta
	}

	out := quat.Add(quat.Scale(wa, qa), quat.Scale(wb, qb))

	return fromNumber(out).Normalized()
}
