package inks

import "math"

// Vec2 is a 2D vector used for positions, velocities, sizes and directions.
// Arithmetic returns new values; the Set* methods mutate in place so motion
// integration can update node fields directly.
type Vec2 struct {
	X, Y float64
}

// FromPolar builds a vector from an angle in radians and a length.
func FromPolar(angle, length float64) Vec2 {
	sin, cos := math.Sincos(angle)
	return Vec2{cos * length, sin * length}
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// Mul multiplies componentwise.
func (v Vec2) Mul(o Vec2) Vec2 {
	return Vec2{v.X * o.X, v.Y * o.Y}
}

// Div divides both components by s. Division by zero follows IEEE rules.
func (v Vec2) Div(s float64) Vec2 {
	return Vec2{v.X / s, v.Y / s}
}

func (v Vec2) Neg() Vec2 {
	return Vec2{-v.X, -v.Y}
}

func (v Vec2) Dot(o Vec2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length.
func (v Vec2) Len() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y)
}

// LenSq returns the squared length.
func (v Vec2) LenSq() float64 {
	return v.X*v.X + v.Y*v.Y
}

// Angle returns atan2(Y, X).
func (v Vec2) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Normalize returns the unit vector in the direction of v, or the zero
// vector when v has no length.
func (v Vec2) Normalize() Vec2 {
	l := v.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{v.X / l, v.Y / l}
}

// IsNormalized reports whether v has unit length within 1e-9.
func (v Vec2) IsNormalized() bool {
	return math.Abs(v.LenSq()-1) < 1e-9
}

// Truncate clamps the length of v to max, keeping its direction.
func (v Vec2) Truncate(max float64) Vec2 {
	if v.LenSq() <= max*max {
		return v
	}
	return v.Normalize().Scale(max)
}

func (v Vec2) Dist(o Vec2) float64 {
	return o.Sub(v).Len()
}

func (v Vec2) DistSq(o Vec2) float64 {
	return o.Sub(v).LenSq()
}

func (v Vec2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Equals is exact floating point equality. Round first when a tolerance is
// needed.
func (v Vec2) Equals(o Vec2) bool {
	return v.X == o.X && v.Y == o.Y
}

// Round rounds both components half up, matching the renderer's pixel snap.
func (v Vec2) Round() Vec2 {
	return Vec2{Round(v.X), Round(v.Y)}
}

// Set assigns both components.
func (v *Vec2) Set(x, y float64) {
	v.X = x
	v.Y = y
}

// SetLen rescales v to length l, keeping its angle.
func (v *Vec2) SetLen(l float64) {
	*v = FromPolar(v.Angle(), l)
}

// SetAngle rotates v to angle a in radians, keeping its length.
func (v *Vec2) SetAngle(a float64) {
	*v = FromPolar(a, v.Len())
}

// Zero resets both components.
func (v *Vec2) Zero() {
	v.X = 0
	v.Y = 0
}
