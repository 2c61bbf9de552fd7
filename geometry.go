package scribe

import "math"

// --- Vec3 ---

// Vec3 is a 3D vector used for positions, offsets, and directions
// throughout the API.
type Vec3 struct {
	X, Y, Z float64
}

// Add returns v + o.
func (v Vec3) Add(o Vec3) Vec3 { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vec3) Sub(o Vec3) Vec3 { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// Scale returns v scaled by k.
func (v Vec3) Scale(k float64) Vec3 { return Vec3{v.X * k, v.Y * k, v.Z * k} }

// Dot returns the dot product of v and o.
func (v Vec3) Dot(o Vec3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the cross product of v and o.
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean norm of v.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// Distance returns the Euclidean distance between v and o.
func (v Vec3) Distance(o Vec3) float64 {
	return v.Sub(o).Length()
}

// Normalize returns a unit vector in the direction of v.
// Returns the zero vector when v has zero length.
func (v Vec3) Normalize() Vec3 {
	ln := v.Length()
	if ln < 1e-12 {
		return Vec3{}
	}
	return v.Scale(1 / ln)
}

// IsFinite reports whether all components are finite (no NaN or Inf).
func (v Vec3) IsFinite() bool {
	return finite(v.X) && finite(v.Y) && finite(v.Z)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// --- Quat ---

// Quat is a rotation quaternion (W + Xi + Yj + Zk). Operations assume unit
// quaternions; use Normalize after accumulating error.
type Quat struct {
	W, X, Y, Z float64
}

// QuatIdentity is the no-rotation quaternion.
var QuatIdentity = Quat{W: 1}

// Mul returns the Hamilton product q * o (apply o first, then q).
func (q Quat) Mul(o Quat) Quat {
	return Quat{
		W: q.W*o.W - q.X*o.X - q.Y*o.Y - q.Z*o.Z,
		X: q.W*o.X + q.X*o.W + q.Y*o.Z - q.Z*o.Y,
		Y: q.W*o.Y - q.X*o.Z + q.Y*o.W + q.Z*o.X,
		Z: q.W*o.Z + q.X*o.Y - q.Y*o.X + q.Z*o.W,
	}
}

// Inverse returns the inverse rotation. For unit quaternions this is the
// conjugate.
func (q Quat) Inverse() Quat {
	return Quat{W: q.W, X: -q.X, Y: -q.Y, Z: -q.Z}
}

// Rotate applies the rotation to v using the expanded sandwich product
// q * v * q⁻¹ (no temporary quaternions).
func (q Quat) Rotate(v Vec3) Vec3 {
	// t = 2 * (q.xyz × v); v' = v + q.w*t + q.xyz × t
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// Normalize returns a unit quaternion. Returns identity when the magnitude
// is degenerate.
func (q Quat) Normalize() Quat {
	mag := math.Sqrt(q.W*q.W + q.X*q.X + q.Y*q.Y + q.Z*q.Z)
	if mag < 1e-12 {
		return QuatIdentity
	}
	inv := 1 / mag
	return Quat{W: q.W * inv, X: q.X * inv, Y: q.Y * inv, Z: q.Z * inv}
}

// AxisAngle builds a quaternion rotating angle radians about the given axis.
// The axis need not be normalized.
func AxisAngle(axis Vec3, angle float64) Quat {
	a := axis.Normalize()
	sin, cos := math.Sincos(angle / 2)
	return Quat{W: cos, X: a.X * sin, Y: a.Y * sin, Z: a.Z * sin}
}

// --- Segment queries ---

// closestOnSegment returns the point on segment [a, b] closest to p.
// Degenerate (zero-length) segments collapse to a.
func closestOnSegment(p, a, b Vec3) Vec3 {
	ab := b.Sub(a)
	lenSq := ab.Dot(ab)
	if lenSq < 1e-24 {
		return a
	}
	t := p.Sub(a).Dot(ab) / lenSq
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Add(ab.Scale(t))
}

// distanceToSegment returns the distance from p to segment [a, b].
func distanceToSegment(p, a, b Vec3) float64 {
	return p.Distance(closestOnSegment(p, a, b))
}

// clamp01 clamps f into [0, 1]. NaN clamps to 0.
func clamp01(f float64) float64 {
	if !(f > 0) { // catches NaN
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
