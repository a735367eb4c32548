package inks

// --- Circle ---

// Radius returns Width/2.
func (n *Node) Radius() float64 {
	return n.Width / 2
}

// SetRadius sets Width and Height to twice r.
func (n *Node) SetRadius(r float64) {
	n.Width = r * 2
	n.Height = r * 2
}

// Diameter returns Width.
func (n *Node) Diameter() float64 {
	return n.Width
}

// SetDiameter sets Width and Height to d.
func (n *Node) SetDiameter(d float64) {
	n.Width = d
	n.Height = d
}

// --- Triangle ---

// Hypotenuse returns the triangle's long side in the parent's space. A right
// inclined triangle runs top-left to bottom-right; a left inclined one runs
// bottom-left to top-right.
func (n *Node) Hypotenuse() Segment {
	x := n.Position.X - n.Width*n.Pivot.X
	y := n.Position.Y - n.Height*n.Pivot.Y
	if n.Inclination == InclinationLeft {
		return NewSegment(Vec2{x, y + n.Height}, Vec2{x + n.Width, y})
	}
	return NewSegment(Vec2{x, y}, Vec2{x + n.Width, y + n.Height})
}

// --- Line ---

// Segment returns the line from A to B.
func (n *Node) Segment() Segment {
	return NewSegment(n.A, n.B)
}

// Slope returns dy/dx of the line. A vertical line uses dx = 1.
func (n *Node) Slope() float64 {
	dx := n.B.X - n.A.X
	if dx == 0 {
		dx = 1
	}
	return (n.B.Y - n.A.Y) / dx
}

// YIntercept returns the y value where the line's extension crosses x = 0.
func (n *Node) YIntercept() float64 {
	return -n.Slope()*n.B.X + n.B.Y
}

// --- Drawing ---

// origin returns the top-left corner of the node's box relative to its
// position.
func (n *Node) origin() (float64, float64) {
	return -n.Width * n.Pivot.X, -n.Height * n.Pivot.Y
}

// drawShape issues the node's own geometry in local coordinates.
func (n *Node) drawShape(c Canvas, assets AssetStore) {
	switch n.Type {
	case NodeTypeCircle:
		n.drawCircle(c)
	case NodeTypeRectangle:
		n.drawRectangle(c)
	case NodeTypeTriangle:
		n.drawTriangle(c)
	case NodeTypeLine:
		n.drawLine(c)
	case NodeTypeSprite:
		n.drawSprite(c, assets)
	case NodeTypeText:
		n.drawText(c)
	}
}

func (n *Node) drawCircle(c Canvas) {
	r := n.Radius()
	cx := r - n.Width*n.Pivot.X
	cy := r - n.Height*n.Pivot.Y
	c.BeginPath()
	if n.Pie {
		c.MoveTo(cx, cy)
	}
	c.Arc(cx, cy, r, n.StartAngle, n.EndAngle)
	if n.Pie {
		c.ClosePath()
	}
	n.paint(c)
}

func (n *Node) drawRectangle(c Canvas) {
	x, y := n.origin()
	c.BeginPath()
	if n.Corners.IsZero() {
		c.Rect(x, y, n.Width, n.Height)
		n.paint(c)
		return
	}
	r, b := x+n.Width, y+n.Height
	k := n.Corners
	c.MoveTo(x+k.TopLeft, y)
	c.LineTo(r-k.TopRight, y)
	c.QuadTo(r, y, r, y+k.TopRight)
	c.LineTo(r, b-k.BottomRight)
	c.QuadTo(r, b, r-k.BottomRight, b)
	c.LineTo(x+k.BottomLeft, b)
	c.QuadTo(x, b, x, b-k.BottomLeft)
	c.LineTo(x, y+k.TopLeft)
	c.QuadTo(x, y, x+k.TopLeft, y)
	c.ClosePath()
	n.paint(c)
}

func (n *Node) drawTriangle(c Canvas) {
	x, y := n.origin()
	w, h := n.Width, n.Height
	c.BeginPath()
	if n.Inclination == InclinationLeft {
		c.MoveTo(x+w, y)
		c.LineTo(x, y+h)
		c.LineTo(x+w, y+h)
	} else {
		c.MoveTo(x, y)
		c.LineTo(x, y+h)
		c.LineTo(x+w, y+h)
	}
	c.ClosePath()
	n.paint(c)
}

// drawLine strokes A to B. Lines are translated to their Position like any
// node, so A and B are offsets from it.
func (n *Node) drawLine(c Canvas) {
	if n.Stroke.IsNone() || n.LineWidth <= 0 {
		return
	}
	c.BeginPath()
	c.MoveTo(n.A.X, n.A.Y)
	c.LineTo(n.B.X, n.B.Y)
	c.Stroke(n.Stroke, n.strokeStyle())
}

func (n *Node) drawSprite(c Canvas, assets AssetStore) {
	if assets == nil || n.Image == "" {
		return
	}
	img, ok := assets.Image(n.Image)
	if !ok {
		return
	}
	var src Rect
	if n.frame < len(n.Frames) {
		src = n.Frames[n.frame]
	} else {
		b := img.Bounds()
		src = Rect{float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy())}
	}
	x, y := n.origin()
	c.DrawImage(img, src, Rect{x, y, n.Width, n.Height})
}

// paint strokes, then fills, then clips the current path.
func (n *Node) paint(c Canvas) {
	if !n.Stroke.IsNone() && n.LineWidth > 0 {
		c.Stroke(n.Stroke, n.strokeStyle())
	}
	if !n.Fill.IsNone() {
		c.Fill(n.Fill)
	}
	if n.Mask {
		c.Clip()
	}
}

func (n *Node) strokeStyle() StrokeStyle {
	return StrokeStyle{Width: n.LineWidth, Join: n.LineJoin, Cap: n.LineCap}
}
