package inks

import (
	"fmt"
	"math"
)

// HitOptions gates the side effects of a hit test. With every flag false a
// test only detects contact.
type HitOptions struct {
	// Global compares global centers instead of local ones.
	Global bool
	// Solid pushes the first shape out of the second.
	Solid bool
	// Bounce reflects velocity off the contact surface.
	Bounce bool
	// Slope slides the shape along a line after separation.
	Slope bool
	// Reactive shares circle-circle correction and exchanges velocities.
	Reactive bool
	// Strict makes HitTest report unsupported pairs as errors.
	Strict bool
}

// Hit is the result of a hit test.
type Hit struct {
	HasContact bool
	// Overlap is the correction vector for line tests, the per-axis overlap
	// for box tests, or the intersection point for line-line tests.
	Overlap Vec2
	// Depth is the penetration distance for circle-circle tests.
	Depth float64
	Side  Side
}

// HitTest runs the test matching the types of a and b. Pairs given in the
// reverse of a supported order are swapped, so the corrected shape is always
// the first of the supported order. Unsupported pairs report no contact, and
// an error wrapping ErrUnsupportedPair when opts.Strict is set.
func HitTest(a, b *Node, opts HitOptions) (Hit, error) {
	ka, kb := shapeKind(a.Type), shapeKind(b.Type)
	switch {
	case ka == NodeTypeCircle && kb == NodeTypeCircle:
		return HitTestCircle(a, b, opts), nil
	case ka == NodeTypeRectangle && kb == NodeTypeRectangle:
		return HitTestRectangle(a, b, opts), nil
	case ka == NodeTypeCircle && kb == NodeTypeRectangle:
		return HitTestCircleRectangle(a, b, opts), nil
	case ka == NodeTypeRectangle && kb == NodeTypeCircle:
		return HitTestCircleRectangle(b, a, opts), nil
	case ka == NodeTypeLine && kb == NodeTypeLine:
		return HitTestLine(a, b), nil
	case ka == NodeTypeLine && kb == NodeTypeCircle:
		return HitTestLineCircle(a, b, opts), nil
	case ka == NodeTypeCircle && kb == NodeTypeLine:
		return HitTestLineCircle(b, a, opts), nil
	case ka == NodeTypeLine && kb == NodeTypeRectangle:
		return HitTestLineRectangle(a, b, opts), nil
	case ka == NodeTypeRectangle && kb == NodeTypeLine:
		return HitTestLineRectangle(b, a, opts), nil
	case ka == NodeTypeCircle && kb == NodeTypeTriangle:
		return HitTestCircleTriangle(a, b, opts), nil
	case ka == NodeTypeTriangle && kb == NodeTypeCircle:
		return HitTestCircleTriangle(b, a, opts), nil
	case ka == NodeTypeRectangle && kb == NodeTypeTriangle:
		return HitTestRectangleTriangle(a, b, opts), nil
	case ka == NodeTypeTriangle && kb == NodeTypeRectangle:
		return HitTestRectangleTriangle(b, a, opts), nil
	}
	if opts.Strict {
		return Hit{}, fmt.Errorf("hit test %s vs %s: %w", a.Type, b.Type, ErrUnsupportedPair)
	}
	return Hit{}, nil
}

// shapeKind maps node types onto the shapes collision understands. Sprites
// and text collide as boxes.
func shapeKind(t NodeType) NodeType {
	if t == NodeTypeSprite || t == NodeTypeText {
		return NodeTypeRectangle
	}
	return t
}

// --- Point ---

// HitTestPoint reports whether p lies inside n. Circles test the distance
// from the center against the radius; every other node tests its box with
// strict inequalities, so a point on an edge is outside.
func HitTestPoint(p Vec2, n *Node, global bool) bool {
	if n.Type == NodeTypeCircle {
		center := n.LocalCenter()
		if global {
			center = n.GlobalCenter()
		}
		return NewSegment(center, p).Length() < n.Radius()
	}
	b := n.LocalBounds()
	if global {
		b = n.GlobalBounds()
	}
	left := b.X - n.Width*n.Pivot.X
	top := b.Y - n.Height*n.Pivot.Y
	return p.X > left && p.X < left+b.Width && p.Y > top && p.Y < top+b.Height
}

// --- Lines ---

// HitTestLinePoint reports whether p lies on the line: the line must be
// longer than both segments from its endpoints to p.
func HitTestLinePoint(line *Node, p Vec2) bool {
	return segmentHasPoint(line.Segment(), p)
}

func segmentHasPoint(s Segment, p Vec2) bool {
	full := s.Length()
	return full > NewSegment(s.A, p).Length() && full > NewSegment(p, s.B).Length()
}

// HitTestLine intersects two lines through their slope and intercept. On
// contact Overlap holds the intersection point.
func HitTestLine(l1, l2 *Node) Hit {
	m1, m2 := l1.Slope(), l2.Slope()
	b1, b2 := l1.YIntercept(), l2.YIntercept()
	x := (b2 - b1) / (m1 - m2)
	p := Vec2{x, m1*x + b1}
	if HitTestLinePoint(l1, p) && HitTestLinePoint(l2, p) {
		return Hit{HasContact: true, Overlap: p}
	}
	return Hit{}
}

// HitTestLineCircle tests circle c against line, both in the same parent
// space. Side reports which side of the line the circle's center is on.
func HitTestLineCircle(line, c *Node, opts HitOptions) Hit {
	return lineCircle(line.Segment(), c, opts)
}

func lineCircle(v0 Segment, c *Node, opts HitOptions) Hit {
	v1 := NewSegment(c.Position, v0.A)
	side := SideNone
	switch pdp := Round(v1.PerpDot(v0)); {
	case pdp > 0:
		side = SideLeft
	case pdp < 0:
		side = SideRight
	}

	// Closest point of the circle toward the line.
	normal := v0.RightNormal()
	if side == SideRight {
		normal = v0.LeftNormal()
	}
	edge := c.Position.Add(normal.Normalized().Scale(c.Radius()))

	v3 := NewSegment(edge, edge.Add(c.Velocity))
	v4 := NewSegment(v3.A, v0.A)
	dp := v4.Dot(v0.LeftNormal())
	if !(dp > 0 && side == SideLeft) && !(dp < 0 && side == SideRight) {
		return Hit{}
	}
	if !segmentHasPoint(v0, v3.A) {
		return Hit{}
	}
	overlap := v3.Normalized().Scale(math.Abs(dp))
	if opts.Solid {
		c.Position = c.Position.Sub(overlap)
	}
	if opts.Slope {
		c.Position = c.Position.Add(bounceOff(c, v0))
	}
	if opts.Bounce {
		c.Velocity = bounceOff(c, v0)
	}
	return Hit{HasContact: true, Overlap: overlap, Side: side}
}

// HitTestLineRectangle tests rectangle r against line by projecting the
// rectangle's half extents onto the line's normal.
func HitTestLineRectangle(line, r *Node, opts HitOptions) Hit {
	return lineRectangle(line.Segment(), r, opts)
}

func lineRectangle(v0 Segment, r *Node, opts HitOptions) Hit {
	v1 := NewSegment(v0.A, r.Position)
	side := SideNone
	switch pdp := Round(v1.PerpDot(v0)); {
	case pdp > 0:
		side = SideRight
	case pdp < 0:
		side = SideLeft
	}

	ln := v0.LeftNormal()
	v1p := v1.Projection(ln).Components()
	wp := NewSegment(Vec2{}, Vec2{r.HalfWidth(), 0}).Projection(ln)
	hp := NewSegment(Vec2{}, Vec2{0, r.HalfHeight()}).Projection(ln)
	if side == SideLeft {
		wp = wp.Reverse()
	}
	extent := NewSegment(ln.A.Add(v1p), ln.A.Add(v1p).Sub(wp.Components().Sub(hp.Components())))
	distance := NewSegment(ln.A, ln.A.Sub(v1p).Sub(extent.Components()))

	dp := distance.Dot(ln)
	if !(dp > 0 && side == SideLeft) && !(dp < 0 && side == SideRight) {
		return Hit{}
	}
	correction := distance.Components()
	if !segmentHasPoint(v0, r.Position.Add(correction)) {
		return Hit{}
	}
	if opts.Solid {
		r.Position = r.Position.Add(correction)
	}
	if opts.Slope {
		r.Position = r.Position.Add(bounceOff(r, v0))
	}
	if opts.Bounce {
		r.Velocity = bounceOff(r, v0)
	}
	return Hit{HasContact: true, Overlap: correction, Side: side}
}

// --- Circles and boxes ---

// HitTestCircle tests two circles by center distance. With Solid set the
// first circle is pushed out along the center line, or with Reactive both
// circles move half the overlap apart. Bounce reflects the first circle's
// velocity, or with Reactive exchanges the normal components of both
// velocities weighted by mass.
func HitTestCircle(c1, c2 *Node, opts HitOptions) Hit {
	vec := NewSegment(c1.LocalCenter(), c2.LocalCenter())
	if opts.Global {
		vec = NewSegment(c1.GlobalCenter(), c2.GlobalCenter())
	}
	combined := c1.box().Width/2 + c2.box().Width/2
	hit := vec.Length() < combined
	if !hit || !opts.Solid {
		return Hit{HasContact: hit}
	}

	depth := combined - vec.Length()
	n := vec.Normalized()
	if !opts.Reactive {
		c1.Position = c1.Position.Sub(n.Scale(depth))
	} else {
		half := Vec2{math.Abs(n.X * depth / 2), math.Abs(n.Y * depth / 2)}
		xSide, ySide := -1.0, -1.0
		if c1.Position.X > c2.Position.X {
			xSide = 1
		}
		if c1.Position.Y > c2.Position.Y {
			ySide = 1
		}
		c1.Position = c1.Position.Add(Vec2{half.X * xSide, half.Y * ySide})
		c2.Position = c2.Position.Add(Vec2{half.X * -xSide, half.Y * -ySide})
	}

	if opts.Bounce {
		if !opts.Reactive {
			c1.Velocity = bounceOff(c1, vec.LeftNormal())
		} else {
			exchangeVelocities(c1, c2, vec)
		}
	}
	return Hit{HasContact: true, Depth: depth}
}

// exchangeVelocities swaps the components of both velocities along the
// collision normal and keeps the tangential ones.
func exchangeVelocities(c1, c2 *Node, normal Segment) {
	tangent := normal.LeftNormal()
	v1 := NewSegment(c1.Position, c1.Position.Add(c1.Velocity))
	v2 := NewSegment(c2.Position, c2.Position.Add(c2.Velocity))
	p1a, p1b := v1.Projection(normal).Components(), v1.Projection(tangent).Components()
	p2a, p2b := v2.Projection(normal).Components(), v2.Projection(tangent).Components()
	c1.Velocity = p1b.Add(p2a).Div(c1.Mass)
	c2.Velocity = p1a.Add(p2b).Div(c2.Mass)
}

// HitTestRectangle tests two boxes and resolves along the axis of least
// overlap, preferring the vertical axis on ties. Side names the face of r1
// that was hit. Solid moves only r1; Bounce flips r1's velocity on the
// resolved axis.
func HitTestRectangle(r1, r2 *Node, opts HitOptions) Hit {
	vec := r1.LocalCenter().Sub(r2.LocalCenter())
	if opts.Global {
		vec = r1.GlobalCenter().Sub(r2.GlobalCenter())
	}
	b1, b2 := r1.box(), r2.box()
	halfW := b1.Width/2 + b2.Width/2
	halfH := b1.Height/2 + b2.Height/2
	if math.Abs(vec.X) >= halfW || math.Abs(vec.Y) >= halfH {
		return Hit{}
	}

	overlap := Vec2{halfW - math.Abs(vec.X), halfH - math.Abs(vec.Y)}
	var side Side
	if overlap.X >= overlap.Y {
		if vec.Y > 0 {
			side = SideTop
			if opts.Solid {
				r1.Position.Y += overlap.Y
			}
		} else {
			side = SideBottom
			if opts.Solid {
				r1.Position.Y -= overlap.Y
			}
		}
		if opts.Solid && opts.Bounce {
			r1.Velocity.Y = -r1.Velocity.Y
		}
	} else {
		if vec.X > 0 {
			side = SideLeft
			if opts.Solid {
				r1.Position.X += overlap.X
			}
		} else {
			side = SideRight
			if opts.Solid {
				r1.Position.X -= overlap.X
			}
		}
		if opts.Solid && opts.Bounce {
			r1.Velocity.X = -r1.Velocity.X
		}
	}
	return Hit{HasContact: true, Overlap: overlap, Side: side}
}

// HitTestCircleRectangle classifies the circle's position into one of nine
// regions around r. Edge and inside regions use the box test; corner regions
// test the circle against the corner point. The corner columns start one
// pixel outside the box.
func HitTestCircleRectangle(c, r *Node, opts HitOptions) Hit {
	cp := c.Position
	rc := r.LocalCenter()
	if opts.Global {
		cp = c.GlobalPosition()
		rc = r.GlobalCenter()
	}
	hw, hh := r.HalfWidth(), r.HalfHeight()

	origin := r.Position
	if opts.Global {
		origin = r.GlobalPosition()
	}
	var corner Vec2
	x, y := origin.X-r.Width*r.Pivot.X, origin.Y-r.Height*r.Pivot.Y
	switch {
	case cp.Y < rc.Y-hh && cp.X < rc.X-1-hw:
		corner = Vec2{x, y}
	case cp.Y < rc.Y-hh && cp.X > rc.X+1+hw:
		corner = Vec2{x + r.Width, y}
	case cp.Y > rc.Y+hh && cp.X < rc.X-1-hw:
		corner = Vec2{x, y + r.Height}
	case cp.Y > rc.Y+hh && cp.X > rc.X+1+hw:
		corner = Vec2{x + r.Width, y + r.Height}
	default:
		return HitTestRectangle(c, r, opts)
	}

	point := NewCircle("corner", 0.1)
	point.Position = corner
	return HitTestCircle(c, point, HitOptions{Global: opts.Global, Solid: opts.Solid, Bounce: opts.Bounce})
}

// --- Triangles ---

// HitTestCircleTriangle runs the box test against t first. Contacts on the
// legs resolve as a box; contacts on the hypotenuse resolve as a line test
// and report SideHypotenuse. Triangles are tested in the parent's space.
func HitTestCircleTriangle(c, t *Node, opts HitOptions) Hit {
	box := HitTestCircleRectangle(c, t, HitOptions{})
	if !box.HasContact {
		return box
	}
	local := opts
	local.Global = false

	hyp := t.Hypotenuse()
	hypSide := hyp.PerpDot(NewSegment(c.LocalCenter(), hyp.A))
	leg := SideRight
	if t.Inclination == InclinationLeft {
		leg = SideLeft
	}
	if box.Side == leg || (box.Side == SideTop && hypSide > 0) {
		return HitTestCircleRectangle(c, t, local)
	}
	hit := lineCircle(hyp, c, local)
	if hit.HasContact {
		hit.Side = SideHypotenuse
	}
	return hit
}

// HitTestRectangleTriangle runs the box test against t first. Contacts on
// the legs resolve as a box; contacts on the hypotenuse resolve as a line
// test and report SideHypotenuse.
func HitTestRectangleTriangle(r, t *Node, opts HitOptions) Hit {
	box := HitTestRectangle(r, t, HitOptions{})
	if !box.HasContact {
		return box
	}
	local := opts
	local.Global = false

	hyp := t.Hypotenuse()
	leg := SideLeft
	if t.Inclination == InclinationRight {
		hyp = NewSegment(hyp.B, hyp.A)
		leg = SideRight
	}
	if box.Side == leg || box.Side == SideTop {
		return HitTestRectangle(r, t, local)
	}
	hit := lineRectangle(hyp, r, local)
	if hit.HasContact {
		hit.Side = SideHypotenuse
	}
	return hit
}

// --- Response ---

// bounceOff reflects n's velocity off surface: the tangential part of the
// velocity is kept, the normal part reversed, and the sum divided by mass.
func bounceOff(n *Node, surface Segment) Vec2 {
	v := NewSegment(n.Position, n.Position.Add(n.Velocity))
	along := v.Projection(surface).Components()
	across := v.Projection(surface.LeftNormal()).Reverse().Components()
	return along.Add(across).Div(n.Mass)
}
