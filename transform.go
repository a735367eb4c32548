package inks

import "math"

const fullTurn = 2 * math.Pi

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
//
//	Matrix layout: [a, b, c, d, tx, ty]
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

func translateMatrix(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

func scaleMatrix(x, y float64) [6]float64 {
	return [6]float64{x, 0, 0, y, 0, 0}
}

func rotateMatrix(theta float64) [6]float64 {
	sin, cos := math.Sincos(theta)
	return [6]float64{cos, sin, -sin, cos, 0, 0}
}

// --- Transform properties ---

// SetPosition sets the node's local position.
func (n *Node) SetPosition(x, y float64) {
	n.Position = Vec2{x, y}
}

// Rotation returns the node's rotation in radians, in [0, 2π).
func (n *Node) Rotation() float64 {
	return n.rotation
}

// SetRotation sets the rotation, wrapping it into [0, 2π).
func (n *Node) SetRotation(r float64) {
	r = math.Mod(r, fullTurn)
	if r < 0 {
		r += fullTurn
	}
	n.rotation = r
}

// Visible reports whether the node and all of its ancestors are visible.
func (n *Node) Visible() bool {
	for p := n; p != nil; p = p.Parent {
		if !p.visible {
			return false
		}
	}
	return true
}

// SetVisible sets the node's own visibility flag.
func (n *Node) SetVisible(v bool) {
	n.visible = v
}

// OnViewport reports whether the node overlapped the viewport in the last
// rendered frame.
func (n *Node) OnViewport() bool {
	return n.onViewport
}

// HalfWidth returns Width/2.
func (n *Node) HalfWidth() float64 {
	return n.Width / 2
}

// HalfHeight returns Height/2.
func (n *Node) HalfHeight() float64 {
	return n.Height / 2
}

// box returns Bounds with a zero width or height replaced by the node's size.
func (n *Node) box() Rect {
	b := n.Bounds
	if b.Width == 0 {
		b.Width = n.Width
	}
	if b.Height == 0 {
		b.Height = n.Height
	}
	return b
}

// --- Coordinate queries ---

// GlobalPosition returns the sum of the positions of n and its ancestors.
func (n *Node) GlobalPosition() Vec2 {
	var g Vec2
	for p := n; p != nil; p = p.Parent {
		g = g.Add(p.Position)
	}
	return g
}

// LocalCenter returns the center of the hit box in the parent's space.
func (n *Node) LocalCenter() Vec2 {
	return n.centerFrom(n.Position)
}

// GlobalCenter returns the center of the hit box in world space.
func (n *Node) GlobalCenter() Vec2 {
	return n.centerFrom(n.GlobalPosition())
}

func (n *Node) centerFrom(pos Vec2) Vec2 {
	b := n.box()
	return Vec2{
		pos.X - n.Width*n.Pivot.X + b.X + b.Width/2,
		pos.Y - n.Height*n.Pivot.Y + b.Y + b.Height/2,
	}
}

// LocalBounds returns the hit box offset by the node's position.
func (n *Node) LocalBounds() Rect {
	b := n.box()
	return Rect{n.Position.X + b.X, n.Position.Y + b.Y, b.Width, b.Height}
}

// GlobalBounds returns the hit box offset by the node's global position.
func (n *Node) GlobalBounds() Rect {
	b := n.box()
	g := n.GlobalPosition()
	return Rect{g.X + b.X, g.Y + b.Y, b.Width, b.Height}
}

// LocalToGlobal converts a point in n's parent space to world space.
func (n *Node) LocalToGlobal(p Vec2) Vec2 {
	if n.Parent == nil {
		return p
	}
	return p.Add(n.Parent.GlobalPosition())
}

// GlobalToLocal converts a world point to n's parent space.
func (n *Node) GlobalToLocal(p Vec2) Vec2 {
	if n.Parent == nil {
		return p
	}
	return p.Sub(n.Parent.GlobalPosition())
}

// --- Motion ---

// Move integrates one tick of motion: acceleration, then friction, then
// gravity. Gravity is applied after friction so it is never damped.
// Acceleration is cleared once the velocity settles below 0.05 on both axes.
func (n *Node) Move() {
	n.Velocity = n.Velocity.Add(n.Acceleration)
	n.Velocity = n.Velocity.Mul(n.Friction)
	if math.Abs(n.Velocity.X) < 0.05 && math.Abs(n.Velocity.Y) < 0.05 {
		n.Acceleration.Zero()
	}
	n.Velocity = n.Velocity.Add(n.Gravity)
	n.Position = n.Position.Add(n.Velocity)
}
