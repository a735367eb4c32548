package inks

import "math"

// minSegmentLength is returned by Length for zero-length segments so that
// normalization and projection stay finite.
const minSegmentLength = 0.001

// Segment is a directed vector from A to B. A segment may also carry explicit
// components that override B-A, which turns it into a free vector anchored
// at A. Collision math builds everything on top of this type.
type Segment struct {
	A, B Vec2

	comps    Vec2
	override bool
}

// NewSegment returns the directed segment a→b.
func NewSegment(a, b Vec2) Segment {
	return Segment{A: a, B: b}
}

// FreeVector returns a vector anchored at origin whose components are fixed
// to comps regardless of its B endpoint.
func FreeVector(origin, comps Vec2) Segment {
	return Segment{A: origin, B: origin.Add(comps), comps: comps, override: true}
}

// VX returns the x component.
func (s Segment) VX() float64 {
	if s.override {
		return s.comps.X
	}
	return s.B.X - s.A.X
}

// VY returns the y component.
func (s Segment) VY() float64 {
	if s.override {
		return s.comps.Y
	}
	return s.B.Y - s.A.Y
}

// Components returns (VX, VY).
func (s Segment) Components() Vec2 {
	return Vec2{s.VX(), s.VY()}
}

// Angle returns the direction of the segment in radians.
func (s Segment) Angle() float64 {
	return math.Atan2(s.VY(), s.VX())
}

// LengthSq returns the squared length. Unlike Length it may be zero.
func (s Segment) LengthSq() float64 {
	return s.Components().LenSq()
}

// Length returns the segment length, never less than 0.001 for a
// degenerate segment.
func (s Segment) Length() float64 {
	if s.VX() != 0 || s.VY() != 0 {
		return math.Sqrt(s.LengthSq())
	}
	return minSegmentLength
}

// Normalized returns the unit direction. A degenerate segment normalizes to
// the zero vector.
func (s Segment) Normalized() Vec2 {
	return s.Components().Div(s.Length())
}

// LeftNormal returns the segment rotated -90° around A: (vy, -vx).
func (s Segment) LeftNormal() Segment {
	return NewSegment(s.A, s.A.Add(Vec2{s.VY(), -s.VX()}))
}

// RightNormal returns the segment rotated +90° around A: (-vy, vx).
func (s Segment) RightNormal() Segment {
	return NewSegment(s.A, s.A.Add(Vec2{-s.VY(), s.VX()}))
}

// Perp is the right normal expressed as a free vector at A.
func (s Segment) Perp() Segment {
	return FreeVector(s.A, Vec2{-s.VY(), s.VX()})
}

// Dot projects s onto the direction of o: s · ô.
func (s Segment) Dot(o Segment) float64 {
	return s.Components().Dot(o.Normalized())
}

// PerpDot returns the dot product of s's left normal with ô. Its sign tells
// which side of o the segment points to.
func (s Segment) PerpDot(o Segment) float64 {
	ln := Vec2{s.VY(), -s.VX()}
	return ln.Dot(o.Normalized())
}

// Projection returns the projection of s onto o, anchored at o.A.
func (s Segment) Projection(o Segment) Segment {
	d := s.Dot(o)
	return NewSegment(o.A, o.A.Add(o.Normalized().Scale(d)))
}

// Sign returns -1 when o lies clockwise of s and 1 otherwise.
func (s Segment) Sign(o Segment) int {
	if s.Perp().Dot(o) < 0 {
		return -1
	}
	return 1
}

// Reverse returns the segment pointing the opposite way from the same origin.
func (s Segment) Reverse() Segment {
	if s.override {
		return FreeVector(s.A, s.comps.Neg())
	}
	return NewSegment(s.A, s.A.Sub(s.Components()))
}

// SetAngle rotates B around A, keeping the length.
func (s *Segment) SetAngle(a float64) {
	l := s.Length()
	s.B = s.A.Add(FromPolar(a, l))
	if s.override {
		s.comps = s.B.Sub(s.A)
	}
}

// SetLength moves B along the current direction so the segment has length l.
func (s *Segment) SetLength(l float64) {
	s.B = s.A.Add(s.Normalized().Scale(l))
	if s.override {
		s.comps = s.B.Sub(s.A)
	}
}
