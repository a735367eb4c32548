package inks

import (
	"math"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// scrollAnim holds active scroll-to tweens for the viewport's X and Y.
type scrollAnim struct {
	tweenX *gween.Tween
	tweenY *gween.Tween
	doneX  bool
	doneY  bool
}

// Viewport is the visible window into the world. X and Y are the world
// coordinates of the top-left corner; Width and Height are the screen size
// in pixels and Scale maps world units to screen pixels.
type Viewport struct {
	X, Y          float64
	Width, Height float64
	Scale         Vec2

	followTarget *Node
	followOffset Vec2
	followLerp   float64

	// BoundsEnabled clamps the viewport so the visible area stays within
	// Bounds.
	BoundsEnabled bool
	Bounds        Rect

	scrollTween *scrollAnim
}

// NewViewport creates an unscaled viewport of the given screen size.
func NewViewport(width, height float64) *Viewport {
	return &Viewport{Width: width, Height: height, Scale: Vec2{1, 1}}
}

// Follow makes the viewport keep node centered, shifted by offset. A lerp
// of 1 snaps immediately; lower values give smoother following.
func (v *Viewport) Follow(node *Node, offset Vec2, lerp float64) {
	v.followTarget = node
	v.followOffset = offset
	v.followLerp = lerp
}

// Unfollow stops tracking the current target node.
func (v *Viewport) Unfollow() {
	v.followTarget = nil
}

// ScrollTo animates the top-left corner to (x, y) over duration seconds.
func (v *Viewport) ScrollTo(x, y float64, duration float32, easeFn ease.TweenFunc) {
	v.scrollTween = &scrollAnim{
		tweenX: gween.New(float32(v.X), float32(x), duration, easeFn),
		tweenY: gween.New(float32(v.Y), float32(y), duration, easeFn),
	}
}

// Scrolling reports whether a ScrollTo animation is running.
func (v *Viewport) Scrolling() bool {
	return v.scrollTween != nil
}

// SetBounds enables bounds clamping.
func (v *Viewport) SetBounds(bounds Rect) {
	v.BoundsEnabled = true
	v.Bounds = bounds
}

// ClearBounds disables bounds clamping.
func (v *Viewport) ClearBounds() {
	v.BoundsEnabled = false
}

// ClampToBounds immediately clamps the position so the visible area stays
// within Bounds. No-op if BoundsEnabled is false.
func (v *Viewport) ClampToBounds() {
	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// update advances follow, scroll, and bounds clamping by dt seconds.
func (v *Viewport) update(dt float32) {
	if t := v.followTarget; t != nil {
		if t.IsDestroyed() {
			v.followTarget = nil
		} else {
			vis := v.VisibleBounds()
			c := t.GlobalCenter().Add(v.followOffset)
			v.X += (c.X - vis.Width/2 - v.X) * v.followLerp
			v.Y += (c.Y - vis.Height/2 - v.Y) * v.followLerp
		}
	}

	if v.scrollTween != nil {
		if !v.scrollTween.doneX {
			val, done := v.scrollTween.tweenX.Update(dt)
			v.X = float64(val)
			v.scrollTween.doneX = done
		}
		if !v.scrollTween.doneY {
			val, done := v.scrollTween.tweenY.Update(dt)
			v.Y = float64(val)
			v.scrollTween.doneY = done
		}
		if v.scrollTween.doneX && v.scrollTween.doneY {
			v.scrollTween = nil
		}
	}

	if v.BoundsEnabled {
		v.clampToBounds()
	}
}

// clampToBounds restricts the position so the visible area stays within
// Bounds, centering when the bounds are smaller than the visible area.
func (v *Viewport) clampToBounds() {
	vis := v.VisibleBounds()
	maxX := v.Bounds.X + v.Bounds.Width - vis.Width
	maxY := v.Bounds.Y + v.Bounds.Height - vis.Height
	if maxX < v.Bounds.X {
		v.X = v.Bounds.X + (v.Bounds.Width-vis.Width)/2
	} else {
		v.X = math.Max(v.Bounds.X, math.Min(v.X, maxX))
	}
	if maxY < v.Bounds.Y {
		v.Y = v.Bounds.Y + (v.Bounds.Height-vis.Height)/2
	} else {
		v.Y = math.Max(v.Bounds.Y, math.Min(v.Y, maxY))
	}
}

func (v *Viewport) scale() Vec2 {
	s := v.Scale
	if s.X == 0 {
		s.X = 1
	}
	if s.Y == 0 {
		s.Y = 1
	}
	return s
}

// VisibleBounds returns the visible area in world coordinates.
func (v *Viewport) VisibleBounds() Rect {
	s := v.scale()
	return Rect{v.X, v.Y, v.Width / s.X, v.Height / s.Y}
}

// ScreenToWorld converts screen pixels to world coordinates.
func (v *Viewport) ScreenToWorld(p Vec2) Vec2 {
	s := v.scale()
	return Vec2{p.X/s.X + v.X, p.Y/s.Y + v.Y}
}

// WorldToScreen converts world coordinates to screen pixels.
func (v *Viewport) WorldToScreen(p Vec2) Vec2 {
	s := v.scale()
	return Vec2{(p.X - v.X) * s.X, (p.Y - v.Y) * s.Y}
}

// Contains reports whether n's box overlaps the visible area, comparing
// center distance against the combined half extents. Lines and containers
// always pass.
func (v *Viewport) Contains(n *Node) bool {
	if n.Type == NodeTypeLine || n.Type == NodeTypeContainer {
		return true
	}
	vis := v.VisibleBounds()
	g := n.GlobalPosition()
	d := Vec2{
		g.X - n.Width*n.Pivot.X + n.HalfWidth() - (vis.X + vis.Width/2),
		g.Y - n.Height*n.Pivot.Y + n.HalfHeight() - (vis.Y + vis.Height/2),
	}
	return math.Abs(d.X) < n.HalfWidth()+vis.Width/2 &&
		math.Abs(d.Y) < n.HalfHeight()+vis.Height/2
}
