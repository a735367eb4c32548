package inks

import (
	"image"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/colorm"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// canvasState is the part of EbitenCanvas saved by Save.
type canvasState struct {
	matrix [6]float64
	alpha  float64
	blend  BlendMode
	shadow *Shadow
	target *ebiten.Image
}

// subpath is a flattened polyline in screen space.
type subpath struct {
	points []Vec2
	closed bool
}

// EbitenCanvas implements Canvas on an *ebiten.Image. Paths are flattened
// in screen space, filled and stroked through the vector package and drawn
// with DrawTriangles. Clip narrows the target to the path's bounding box;
// shadows are drawn as an offset pass without blur.
type EbitenCanvas struct {
	dst   *ebiten.Image
	state canvasState
	stack []canvasState
	path  []subpath

	white    *ebiten.Image
	vertices []ebiten.Vertex
	indices  []uint16
}

// NewEbitenCanvas creates a canvas drawing into dst.
func NewEbitenCanvas(dst *ebiten.Image) *EbitenCanvas {
	c := &EbitenCanvas{}
	c.Reset(dst)
	return c
}

// Reset retargets the canvas at dst and clears all saved state.
func (c *EbitenCanvas) Reset(dst *ebiten.Image) {
	c.dst = dst
	c.state = canvasState{matrix: identityTransform, alpha: 1, target: dst}
	c.stack = c.stack[:0]
	c.path = c.path[:0]
}

// Target returns the image being drawn into.
func (c *EbitenCanvas) Target() *ebiten.Image {
	return c.dst
}

func (c *EbitenCanvas) Clear(col Color) {
	if col.IsNone() {
		c.dst.Clear()
		return
	}
	c.dst.Fill(col.toRGBA())
}

func (c *EbitenCanvas) Save() {
	c.stack = append(c.stack, c.state)
}

func (c *EbitenCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
}

func (c *EbitenCanvas) Translate(x, y float64) {
	c.state.matrix = multiplyAffine(c.state.matrix, translateMatrix(x, y))
}

func (c *EbitenCanvas) Rotate(theta float64) {
	c.state.matrix = multiplyAffine(c.state.matrix, rotateMatrix(theta))
}

func (c *EbitenCanvas) Scale(x, y float64) {
	c.state.matrix = multiplyAffine(c.state.matrix, scaleMatrix(x, y))
}

func (c *EbitenCanvas) SetAlpha(a float64) {
	c.state.alpha = clamp01(a)
}

func (c *EbitenCanvas) SetBlendMode(b BlendMode) {
	c.state.blend = b
}

func (c *EbitenCanvas) SetShadow(s *Shadow) {
	c.state.shadow = s
}

// --- Path building ---

func (c *EbitenCanvas) BeginPath() {
	c.path = c.path[:0]
}

func (c *EbitenCanvas) MoveTo(x, y float64) {
	c.path = append(c.path, subpath{points: []Vec2{c.apply(x, y)}})
}

func (c *EbitenCanvas) LineTo(x, y float64) {
	c.lineToScreen(c.apply(x, y))
}

func (c *EbitenCanvas) QuadTo(cx, cy, x, y float64) {
	sp := c.current()
	if sp == nil {
		c.MoveTo(cx, cy)
		sp = c.current()
	}
	p0 := sp.points[len(sp.points)-1]
	p1 := c.apply(cx, cy)
	p2 := c.apply(x, y)
	const steps = 8
	for i := 1; i <= steps; i++ {
		t := float64(i) / steps
		u := 1 - t
		sp.points = append(sp.points, p0.Scale(u*u).Add(p1.Scale(2*u*t)).Add(p2.Scale(t*t)))
	}
}

func (c *EbitenCanvas) Arc(cx, cy, r, start, end float64) {
	sweep := end - start
	if sweep >= fullTurn {
		sweep = fullTurn
	} else {
		sweep = math.Mod(sweep, fullTurn)
		if sweep < 0 {
			sweep += fullTurn
		}
	}
	steps := int(math.Ceil(sweep / fullTurn * arcSegments(r*c.scaleFactor())))
	if steps < 1 {
		steps = 1
	}
	for i := 0; i <= steps; i++ {
		a := start + sweep*float64(i)/float64(steps)
		p := c.apply(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if i == 0 && c.current() == nil {
			c.path = append(c.path, subpath{points: []Vec2{p}})
			continue
		}
		c.lineToScreen(p)
	}
}

func (c *EbitenCanvas) Rect(x, y, w, h float64) {
	c.MoveTo(x, y)
	c.LineTo(x+w, y)
	c.LineTo(x+w, y+h)
	c.LineTo(x, y+h)
	c.ClosePath()
}

func (c *EbitenCanvas) ClosePath() {
	if sp := c.current(); sp != nil {
		sp.closed = true
	}
}

// --- Painting ---

func (c *EbitenCanvas) Fill(col Color) {
	if col.IsNone() || len(c.path) == 0 {
		return
	}
	c.drawShadowed(col, func(offset Vec2) {
		var p vector.Path
		c.buildPath(&p, offset)
		c.vertices, c.indices = p.AppendVerticesAndIndicesForFilling(c.vertices[:0], c.indices[:0])
	})
}

func (c *EbitenCanvas) Stroke(col Color, style StrokeStyle) {
	if col.IsNone() || style.Width <= 0 || len(c.path) == 0 {
		return
	}
	opts := &vector.StrokeOptions{
		Width:      float32(style.Width * c.scaleFactor()),
		LineJoin:   ebitenJoin(style.Join),
		LineCap:    ebitenCap(style.Cap),
		MiterLimit: 10,
	}
	c.drawShadowed(col, func(offset Vec2) {
		var p vector.Path
		c.buildPath(&p, offset)
		c.vertices, c.indices = p.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], opts)
	})
}

// drawShadowed draws the shadow pass, if any, then the main pass. build
// fills c.vertices and c.indices for a path shifted by offset.
func (c *EbitenCanvas) drawShadowed(col Color, build func(offset Vec2)) {
	if s := c.state.shadow; s != nil && !s.Color.IsNone() && (s.OffsetX != 0 || s.OffsetY != 0) {
		build(Vec2{s.OffsetX, s.OffsetY})
		c.drawTriangles(s.Color)
	}
	build(Vec2{})
	c.drawTriangles(col)
}

func (c *EbitenCanvas) drawTriangles(col Color) {
	if len(c.indices) == 0 {
		return
	}
	a := float32(col.A * c.state.alpha)
	for i := range c.vertices {
		v := &c.vertices[i]
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(col.R)
		v.ColorG = float32(col.G)
		v.ColorB = float32(col.B)
		v.ColorA = a
	}
	op := &ebiten.DrawTrianglesOptions{AntiAlias: true}
	op.Blend = c.state.blend.EbitenBlend()
	c.state.target.DrawTriangles(c.vertices, c.indices, c.whiteImage(), op)
}

// Clip narrows subsequent draws to the bounding box of the current path.
func (c *EbitenCanvas) Clip() {
	if len(c.path) == 0 {
		return
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, sp := range c.path {
		for _, p := range sp.points {
			minX, minY = math.Min(minX, p.X), math.Min(minY, p.Y)
			maxX, maxY = math.Max(maxX, p.X), math.Max(maxY, p.Y)
		}
	}
	r := image.Rect(int(math.Floor(minX)), int(math.Floor(minY)), int(math.Ceil(maxX)), int(math.Ceil(maxY)))
	r = r.Intersect(c.state.target.Bounds())
	c.state.target = c.state.target.SubImage(r).(*ebiten.Image)
}

// DrawImage draws the src region of img, which must be an *ebiten.Image,
// scaled into dst.
func (c *EbitenCanvas) DrawImage(img Image, src, dst Rect) {
	eimg, ok := img.(*ebiten.Image)
	if !ok || src.Width <= 0 || src.Height <= 0 {
		return
	}
	sub := eimg.SubImage(image.Rect(
		int(src.X), int(src.Y),
		int(src.X+src.Width), int(src.Y+src.Height),
	)).(*ebiten.Image)

	local := multiplyAffine(translateMatrix(dst.X, dst.Y), scaleMatrix(dst.Width/src.Width, dst.Height/src.Height))
	m := multiplyAffine(c.state.matrix, local)
	if s := c.state.shadow; s != nil && !s.Color.IsNone() && (s.OffsetX != 0 || s.OffsetY != 0) {
		var cm colorm.ColorM
		cm.Scale(0, 0, 0, s.Color.A*c.state.alpha)
		cm.Translate(s.Color.R, s.Color.G, s.Color.B, 0)
		op := &colorm.DrawImageOptions{}
		op.GeoM = toGeoM(multiplyAffine(translateMatrix(s.OffsetX, s.OffsetY), m))
		op.Blend = c.state.blend.EbitenBlend()
		op.Filter = ebiten.FilterLinear
		colorm.DrawImage(c.state.target, sub, cm, op)
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM = toGeoM(m)
	op.Blend = c.state.blend.EbitenBlend()
	op.Filter = ebiten.FilterLinear
	op.ColorScale.ScaleAlpha(float32(c.state.alpha))
	c.state.target.DrawImage(sub, op)
}

// toGeoM converts an affine matrix to an ebiten.GeoM.
func toGeoM(m [6]float64) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}

// FillText draws s with a TTFFont through text/v2, or with the debug font
// when font is nil or of another kind.
func (c *EbitenCanvas) FillText(s string, x, y float64, font Font, col Color) {
	if s == "" || col.IsNone() {
		return
	}
	ttf, ok := font.(*TTFFont)
	if !ok {
		c.DebugPrint(s, x, y)
		return
	}
	op := &text.DrawOptions{}
	op.GeoM = toGeoM(multiplyAffine(c.state.matrix, translateMatrix(x, y)))
	op.ColorScale.ScaleWithColor(col.toRGBA())
	op.ColorScale.ScaleAlpha(float32(c.state.alpha))
	op.Blend = c.state.blend.EbitenBlend()
	op.LineSpacing = ttf.lh
	text.Draw(c.state.target, s, ttf.face, op)
}

// DebugPrint draws msg with ebiten's debug font at the transformed point.
func (c *EbitenCanvas) DebugPrint(msg string, x, y float64) {
	if msg == "" {
		return
	}
	px, py := transformPoint(c.state.matrix, x, y)
	ebitenutil.DebugPrintAt(c.state.target, msg, int(px), int(py))
}

// --- Helpers ---

func (c *EbitenCanvas) apply(x, y float64) Vec2 {
	px, py := transformPoint(c.state.matrix, x, y)
	return Vec2{px, py}
}

func (c *EbitenCanvas) current() *subpath {
	if len(c.path) == 0 {
		return nil
	}
	return &c.path[len(c.path)-1]
}

func (c *EbitenCanvas) lineToScreen(p Vec2) {
	sp := c.current()
	if sp == nil || sp.closed {
		c.path = append(c.path, subpath{points: []Vec2{p}})
		return
	}
	sp.points = append(sp.points, p)
}

// scaleFactor is the geometric mean of the current x and y scales.
func (c *EbitenCanvas) scaleFactor() float64 {
	m := c.state.matrix
	return math.Sqrt(math.Abs(m[0]*m[3] - m[2]*m[1]))
}

func (c *EbitenCanvas) buildPath(p *vector.Path, offset Vec2) {
	for _, sp := range c.path {
		if len(sp.points) == 0 {
			continue
		}
		p.MoveTo(float32(sp.points[0].X+offset.X), float32(sp.points[0].Y+offset.Y))
		for _, pt := range sp.points[1:] {
			p.LineTo(float32(pt.X+offset.X), float32(pt.Y+offset.Y))
		}
		if sp.closed {
			p.Close()
		}
	}
}

func (c *EbitenCanvas) whiteImage() *ebiten.Image {
	if c.white == nil {
		c.white = ebiten.NewImage(3, 3)
		c.white.Fill(color.White)
	}
	return c.white
}

// arcSegments returns the number of segments used for a full circle of
// screen radius r.
func arcSegments(r float64) float64 {
	return math.Max(16, math.Min(128, math.Ceil(r)))
}

func ebitenJoin(j LineJoin) vector.LineJoin {
	switch j {
	case JoinBevel:
		return vector.LineJoinBevel
	case JoinMiter:
		return vector.LineJoinMiter
	default:
		return vector.LineJoinRound
	}
}

func ebitenCap(cp LineCap) vector.LineCap {
	switch cp {
	case CapRound:
		return vector.LineCapRound
	case CapSquare:
		return vector.LineCapSquare
	default:
		return vector.LineCapButt
	}
}
