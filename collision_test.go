package inks

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- Points ---

func TestHitTestPointBox(t *testing.T) {
	box := NewRectangle("box", 10, 10)

	assert.True(t, HitTestPoint(Vec2{0, 0}, box, false))
	assert.True(t, HitTestPoint(Vec2{4.9, -4.9}, box, false))
	assert.False(t, HitTestPoint(Vec2{5, 0}, box, false), "a point on an edge is outside")
	assert.False(t, HitTestPoint(Vec2{0, -5}, box, false), "a point on an edge is outside")
}

func TestHitTestPointCircle(t *testing.T) {
	c := NewCircle("c", 20)
	c.Position = Vec2{50, 50}
	assert.True(t, HitTestPoint(Vec2{55, 55}, c, false))
	assert.False(t, HitTestPoint(Vec2{60, 50}, c, false))
}

func TestHitTestPointGlobal(t *testing.T) {
	parent := NewContainer("parent")
	parent.Position = Vec2{100, 0}
	box := NewRectangle("box", 10, 10)
	parent.AddChild(box)

	assert.False(t, HitTestPoint(Vec2{100, 0}, box, false))
	assert.True(t, HitTestPoint(Vec2{100, 0}, box, true))
}

// --- Lines ---

func TestHitTestLinePoint(t *testing.T) {
	line := NewLine("l", Vec2{0, 0}, Vec2{10, 0})
	assert.True(t, HitTestLinePoint(line, Vec2{5, 0}))
	assert.False(t, HitTestLinePoint(line, Vec2{15, 0}))
}

func TestHitTestLineIntersection(t *testing.T) {
	a := NewLine("a", Vec2{0, 0}, Vec2{10, 10})
	b := NewLine("b", Vec2{0, 10}, Vec2{10, 0})
	hit := HitTestLine(a, b)
	require.True(t, hit.HasContact)
	assert.InDelta(t, 5, hit.Overlap.X, 1e-9)
	assert.InDelta(t, 5, hit.Overlap.Y, 1e-9)

	c := NewLine("c", Vec2{20, 0}, Vec2{30, 10})
	assert.False(t, HitTestLine(a, c).HasContact, "parallel lines never meet")
}

func TestHitTestLineCircleSolidBounce(t *testing.T) {
	floor := NewLine("floor", Vec2{0, 100}, Vec2{200, 100})
	ball := NewCircle("ball", 20)
	ball.Position = Vec2{100, 95}
	ball.Velocity = Vec2{0, 2}

	hit := HitTestLineCircle(floor, ball, HitOptions{Solid: true, Bounce: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideLeft, hit.Side)
	assert.InDelta(t, 100, ball.Position.X, 1e-9)
	assert.InDelta(t, 90, ball.Position.Y, 1e-9)
	assert.InDelta(t, 0, ball.Velocity.X, 1e-9)
	assert.InDelta(t, -2, ball.Velocity.Y, 1e-9)
}

func TestHitTestLineCircleMiss(t *testing.T) {
	floor := NewLine("floor", Vec2{0, 100}, Vec2{200, 100})
	ball := NewCircle("ball", 20)
	ball.Position = Vec2{100, 50}
	assert.False(t, HitTestLineCircle(floor, ball, HitOptions{Solid: true}).HasContact)
	assert.Equal(t, Vec2{100, 50}, ball.Position)

	ball.Position = Vec2{300, 95}
	assert.False(t, HitTestLineCircle(floor, ball, HitOptions{}).HasContact, "beyond the endpoints")
}

func TestHitTestDegenerateLine(t *testing.T) {
	dot := NewLine("dot", Vec2{50, 50}, Vec2{50, 50})
	ball := NewCircle("ball", 20)
	ball.Position = Vec2{50, 50}
	ball.Velocity = Vec2{1, 1}

	assert.NotPanics(t, func() {
		HitTestLineCircle(dot, ball, HitOptions{Solid: true, Bounce: true, Slope: true})
	})
	assert.False(t, math.IsNaN(ball.Position.X) || math.IsNaN(ball.Position.Y))
	assert.False(t, math.IsNaN(ball.Velocity.X) || math.IsNaN(ball.Velocity.Y))
}

func TestHitTestLineRectangleResting(t *testing.T) {
	floor := NewLine("floor", Vec2{0, 100}, Vec2{200, 100})
	box := NewRectangle("box", 20, 20)
	box.Position = Vec2{100, 95}
	box.Velocity = Vec2{0, 2}

	hit := HitTestLineRectangle(floor, box, HitOptions{Solid: true, Bounce: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideLeft, hit.Side)
	assert.InDelta(t, 0, hit.Overlap.X, 1e-9)
	assert.InDelta(t, -5, hit.Overlap.Y, 1e-9)
	assert.InDelta(t, 100, box.Position.X, 1e-9)
	assert.InDelta(t, 90, box.Position.Y, 1e-9)
	assert.InDelta(t, -2, box.Velocity.Y, 1e-9)

	clear := NewRectangle("clear", 20, 20)
	clear.Position = Vec2{100, 80}
	assert.False(t, HitTestLineRectangle(floor, clear, HitOptions{Solid: true}).HasContact)
	assert.Equal(t, Vec2{100, 80}, clear.Position)
}

func TestHitTestLineRectangleRightSide(t *testing.T) {
	floor := NewLine("floor", Vec2{200, 100}, Vec2{0, 100})
	box := NewRectangle("box", 20, 20)
	box.Position = Vec2{100, 95}

	hit := HitTestLineRectangle(floor, box, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideRight, hit.Side, "a reversed line puts the box on its right")
	assert.InDelta(t, 90, box.Position.Y, 1e-9)
}

func TestHitTestLineCircleSlope(t *testing.T) {
	ramp := NewLine("ramp", Vec2{0, 0}, Vec2{100, 100})
	ball := NewCircle("ball", 20)
	ball.Position = Vec2{50, 40}
	ball.Velocity = Vec2{0, 2}

	hit := HitTestLineCircle(ramp, ball, HitOptions{Solid: true, Slope: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideLeft, hit.Side)
	assert.InDelta(t, 52, ball.Position.X, 1e-6, "the reflected velocity carries the ball along the ramp")
	assert.InDelta(t, 30+5*math.Sqrt2, ball.Position.Y, 1e-6)
	assert.Equal(t, Vec2{0, 2}, ball.Velocity, "slope alone keeps the velocity")

	still := NewCircle("still", 20)
	still.Position = Vec2{50, 40}
	still.Velocity = Vec2{0, 2}
	HitTestLineCircle(ramp, still, HitOptions{Solid: true})
	assert.InDelta(t, 50, still.Position.X, 1e-6)
}

// --- Circles ---

func TestHitTestCircleSolid(t *testing.T) {
	a := NewCircle("a", 20)
	b := NewCircle("b", 20)
	b.Position = Vec2{15, 0}

	hit := HitTestCircle(a, b, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	assert.InDelta(t, 5, hit.Depth, 1e-9)
	assert.InDelta(t, -5, a.Position.X, 1e-9)
	assert.InDelta(t, 0, a.Position.Y, 1e-9)
	assert.Equal(t, Vec2{15, 0}, b.Position, "only the first circle moves")
}

func TestHitTestCircleDetectOnly(t *testing.T) {
	a := NewCircle("a", 20)
	b := NewCircle("b", 20)
	b.Position = Vec2{15, 0}
	hit := HitTestCircle(a, b, HitOptions{})
	assert.True(t, hit.HasContact)
	assert.Equal(t, Vec2{}, a.Position)

	b.Position = Vec2{20, 0}
	assert.False(t, HitTestCircle(a, b, HitOptions{}).HasContact, "touching is not overlapping")
}

func TestHitTestCircleReactive(t *testing.T) {
	a := NewCircle("a", 20)
	a.Velocity = Vec2{2, 0}
	b := NewCircle("b", 20)
	b.Position = Vec2{16, 0}

	hit := HitTestCircle(a, b, HitOptions{Solid: true, Bounce: true, Reactive: true})

	require.True(t, hit.HasContact)
	assert.InDelta(t, -2, a.Position.X, 1e-9)
	assert.InDelta(t, 18, b.Position.X, 1e-9)
	assert.InDelta(t, 0, a.Velocity.X, 1e-9)
	assert.InDelta(t, 2, b.Velocity.X, 1e-9)
}

func TestHitTestCircleGlobal(t *testing.T) {
	left := NewContainer("left")
	right := NewContainer("right")
	right.Position = Vec2{100, 0}
	a := NewCircle("a", 20)
	b := NewCircle("b", 20)
	left.AddChild(a)
	right.AddChild(b)
	b.Position = Vec2{5, 0}

	assert.True(t, HitTestCircle(a, b, HitOptions{}).HasContact, "local positions overlap")
	assert.False(t, HitTestCircle(a, b, HitOptions{Global: true}).HasContact, "global positions apart")
}

// --- Rectangles ---

func TestHitTestRectangleSolid(t *testing.T) {
	r1 := NewRectangle("r1", 40, 40)
	r1.Position = Vec2{200, 200}
	r2 := NewRectangle("r2", 40, 40)
	r2.Position = Vec2{210, 200}

	hit := HitTestRectangle(r1, r2, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideRight, hit.Side)
	assert.Equal(t, Vec2{30, 40}, hit.Overlap)
	assert.Equal(t, Vec2{170, 200}, r1.Position)
	assert.Equal(t, Vec2{210, 200}, r2.Position)
}

func TestHitTestRectangleVerticalBounce(t *testing.T) {
	r1 := NewRectangle("r1", 20, 20)
	r1.Position = Vec2{0, -15}
	r1.Velocity = Vec2{1, 3}
	r2 := NewRectangle("r2", 20, 20)

	hit := HitTestRectangle(r1, r2, HitOptions{Solid: true, Bounce: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideBottom, hit.Side)
	assert.Equal(t, -20.0, r1.Position.Y)
	assert.Equal(t, Vec2{1, -3}, r1.Velocity)
}

func TestHitTestRectangleMiss(t *testing.T) {
	r1 := NewRectangle("r1", 10, 10)
	r2 := NewRectangle("r2", 10, 10)
	r2.Position = Vec2{10, 0}
	assert.False(t, HitTestRectangle(r1, r2, HitOptions{}).HasContact, "touching edges do not collide")
}

func TestHitTestCircleRectangleEdge(t *testing.T) {
	ball := NewCircle("ball", 10)
	ball.Position = Vec2{0, -13}
	box := NewRectangle("box", 20, 20)

	hit := HitTestCircleRectangle(ball, box, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideBottom, hit.Side)
	assert.Equal(t, -15.0, ball.Position.Y)
}

func TestHitTestCircleRectangleCorner(t *testing.T) {
	ball := NewCircle("ball", 10)
	ball.Position = Vec2{13, 13}
	box := NewRectangle("box", 20, 20)

	hit := HitTestCircleRectangle(ball, box, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	before := math.Hypot(3, 3)
	after := ball.Position.Dist(Vec2{10, 10})
	assert.Greater(t, after, before, "the ball is pushed away from the corner")

	far := NewCircle("far", 10)
	far.Position = Vec2{20, 20}
	assert.False(t, HitTestCircleRectangle(far, box, HitOptions{}).HasContact)
}

// --- Triangles ---

func TestHitTestCircleTriangleHypotenuse(t *testing.T) {
	tri := NewTriangle("ramp", 100, 100, InclinationRight)
	tri.Position = Vec2{50, 50}

	near := NewCircle("near", 10)
	near.Position = Vec2{53, 47}
	hit := HitTestCircleTriangle(near, tri, HitOptions{})
	require.True(t, hit.HasContact)
	assert.Equal(t, SideHypotenuse, hit.Side)

	above := NewCircle("above", 10)
	above.Position = Vec2{60, 40}
	assert.False(t, HitTestCircleTriangle(above, tri, HitOptions{}).HasContact,
		"inside the box but clear of the hypotenuse")

	outside := NewCircle("outside", 10)
	outside.Position = Vec2{300, 300}
	assert.False(t, HitTestCircleTriangle(outside, tri, HitOptions{}).HasContact)
}

func TestHitTestRectangleTriangleBase(t *testing.T) {
	tri := NewTriangle("wedge", 40, 40, InclinationRight)
	box := NewRectangle("box", 10, 10)
	box.Position = Vec2{-10, 22}

	hit := HitTestRectangleTriangle(box, tri, HitOptions{Solid: true})
	require.True(t, hit.HasContact)
	assert.Equal(t, SideTop, hit.Side, "the box's top face meets the base")
	assert.Equal(t, 25.0, box.Position.Y)
}

func TestHitTestRectangleTriangleHypotenuse(t *testing.T) {
	tri := NewTriangle("ramp", 100, 100, InclinationRight)
	tri.Position = Vec2{50, 50}
	box := NewRectangle("box", 20, 20)
	box.Position = Vec2{50, 40}

	hit := HitTestRectangleTriangle(box, tri, HitOptions{Solid: true})

	require.True(t, hit.HasContact)
	assert.Equal(t, SideHypotenuse, hit.Side)
	assert.InDelta(t, 5, hit.Overlap.X, 1e-9)
	assert.InDelta(t, -5, hit.Overlap.Y, 1e-9)
	assert.InDelta(t, 55, box.Position.X, 1e-9)
	assert.InDelta(t, 35, box.Position.Y, 1e-9)
}

func TestHitTestCircleRectangleCornerUsesPivot(t *testing.T) {
	box := NewRectangle("box", 20, 20)
	box.Bounds = Rect{X: 30, Y: 0, Width: 20, Height: 20}
	ball := NewCircle("ball", 10)
	ball.Position = Vec2{-13, 13}

	hit := HitTestCircleRectangle(ball, box, HitOptions{Solid: true})

	require.True(t, hit.HasContact, "the corner comes from position and pivot, not the hit box")
	assert.Greater(t, ball.Position.Dist(Vec2{-10, 10}), math.Hypot(3, 3))
}

// --- Dispatch ---

func TestHitTestDispatch(t *testing.T) {
	ball := NewCircle("ball", 20)
	box := NewRectangle("box", 20, 20)
	box.Position = Vec2{15, 0}

	hit, err := HitTest(box, ball, HitOptions{Solid: true})
	require.NoError(t, err)
	assert.True(t, hit.HasContact)
	assert.Equal(t, Vec2{15, 0}, box.Position, "reversed pair corrects the circle")
	assert.NotEqual(t, Vec2{}, ball.Position)
}

func TestHitTestSpriteAsBox(t *testing.T) {
	s := NewSprite("s", "img", 20, 20)
	r := NewRectangle("r", 20, 20)
	r.Position = Vec2{10, 0}
	hit, err := HitTest(s, r, HitOptions{})
	require.NoError(t, err)
	assert.True(t, hit.HasContact)
}

func TestHitTestUnsupported(t *testing.T) {
	line := NewLine("l", Vec2{}, Vec2{10, 0})
	tri := NewTriangle("t", 10, 10, InclinationLeft)

	hit, err := HitTest(line, tri, HitOptions{})
	assert.NoError(t, err)
	assert.False(t, hit.HasContact)

	_, err = HitTest(line, tri, HitOptions{Strict: true})
	assert.ErrorIs(t, err, ErrUnsupportedPair)
}

// --- Response ---

func TestBounceOffDividesByMass(t *testing.T) {
	n := NewCircle("n", 10)
	n.Velocity = Vec2{3, 4}
	n.Mass = 2
	v := bounceOff(n, NewSegment(Vec2{}, Vec2{10, 0}))
	assert.InDelta(t, 1.5, v.X, 1e-9)
	assert.InDelta(t, -2, v.Y, 1e-9)
}
