package inks

import "strconv"

var (
	debugOverlayFill = Color{0.5, 0.5, 0.5, 0.5}
	debugBoundsStyle = StrokeStyle{Width: 3}
)

// Render draws the active scene into c: the canvas is cleared, the
// viewport scale and offset are applied, then every stage child is drawn
// depth-first. In debug mode node bounds and the stats overlay are drawn
// too.
func (e *Engine) Render(c Canvas) {
	e.stats = frameStats{}
	c.Clear(e.Background)

	vp := e.viewport
	s := vp.scale()
	c.Save()
	c.Scale(s.X, s.Y)

	c.Save()
	c.Translate(-vp.X, -vp.Y)
	if stage := e.Stage(); stage != nil {
		for _, child := range stage.children {
			e.renderNode(c, child, stage.Alpha)
		}
	}
	c.Restore()

	if e.Debug {
		e.drawOverlay(c)
	}
	c.Restore()
}

// Stats returns the object and draw counts of the last Render.
func (e *Engine) Stats() (objects, draws int) {
	return e.stats.objects, e.stats.draws
}

// renderNode draws n and its subtree. parentAlpha is the effective alpha of
// n's parent.
func (e *Engine) renderNode(c Canvas, n *Node, parentAlpha float64) {
	e.stats.objects++
	n.onViewport = e.viewport.Contains(n)
	if !(n.Visible() && n.onViewport) && !n.RenderOutside {
		return
	}

	c.Save()
	p := n.Position.Round()
	c.Translate(p.X, p.Y)
	if n.rotation != 0 {
		c.Rotate(n.rotation)
	}
	alpha := n.Alpha * parentAlpha
	c.SetAlpha(alpha)
	c.Scale(n.Scale.X, n.Scale.Y)
	if n.Shadow != nil {
		c.SetShadow(n.Shadow)
	}
	c.SetBlendMode(n.BlendMode)

	if n.Type != NodeTypeContainer {
		n.drawShape(c, e.assets)
		e.stats.draws++
	}
	if n.OnRender != nil {
		n.OnRender(n, c)
	}
	if e.Debug {
		drawDebugBounds(c, n)
	}

	for _, child := range n.children {
		e.renderNode(c, child, alpha)
	}
	c.Restore()
}

// drawDebugBounds outlines the hit box in red and marks the position with
// a small black square, both unrotated.
func drawDebugBounds(c Canvas, n *Node) {
	c.Save()
	if n.rotation != 0 {
		c.Rotate(-n.rotation)
	}
	c.SetShadow(nil)
	b := n.box()
	ox, oy := n.origin()
	c.BeginPath()
	c.Rect(b.X+ox, b.Y+oy, b.Width, b.Height)
	c.Stroke(ColorRed, debugBoundsStyle)
	c.BeginPath()
	c.Rect(-2.5, -2.5, 5, 5)
	c.Fill(ColorBlack)
	c.Restore()
}

// drawOverlay dims the screen and prints the frame stats.
func (e *Engine) drawOverlay(c Canvas) {
	c.Save()
	c.SetAlpha(1)
	c.SetShadow(nil)
	c.BeginPath()
	c.Rect(0, 0, float64(e.cfg.Width), float64(e.cfg.Height))
	c.Fill(debugOverlayFill)
	c.Restore()

	c.Save()
	c.DebugPrint("FPS:", 15, 15)
	c.DebugPrint("Objects:", 15, 32)
	c.DebugPrint("Drawing:", 15, 49)
	c.DebugPrint("Debug:", 15, 66)
	c.DebugPrint(strconv.Itoa(e.fps), 80, 15)
	c.DebugPrint(strconv.Itoa(e.stats.objects), 80, 32)
	c.DebugPrint(strconv.Itoa(e.stats.draws), 80, 49)
	c.DebugPrint(e.debugText, 80, 66)
	c.Restore()
}
