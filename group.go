package inks

// NewGroup creates a container holding nodes. A group's Width and Height
// track the extent of its children when dynamic sizing is on.
func NewGroup(name string, nodes ...*Node) *Node {
	g := NewContainer(name)
	g.Add(nodes...)
	return g
}

// DynamicSize reports whether the node resizes to fit its children.
func (n *Node) DynamicSize() bool {
	return n.dynamicSize
}

// SetDynamicSize turns child-extent sizing on or off. Turning it on resizes
// immediately.
func (n *Node) SetDynamicSize(on bool) {
	n.dynamicSize = on
	n.refreshSize()
}

// refreshSize recomputes Width/Height from the children's far edges.
func (n *Node) refreshSize() {
	if !n.dynamicSize || len(n.children) == 0 {
		return
	}
	var w, h float64
	for _, c := range n.children {
		w = max(w, c.Position.X+c.Width)
		h = max(h, c.Position.Y+c.Height)
	}
	n.Width = w
	n.Height = h
}

// GridConfig lays out cells for NewGrid.
type GridConfig struct {
	Columns, Rows         int
	CellWidth, CellHeight float64
	CenterCell            bool
	OffsetX, OffsetY      float64
}

// NewGrid creates a group with Columns*Rows nodes produced by newCell, placed
// row by row. each, when non-nil, is called with every placed node.
func NewGrid(name string, cfg GridConfig, newCell func() *Node, each func(*Node)) *Node {
	g := NewContainer(name)
	if cfg.CellWidth == 0 {
		cfg.CellWidth = 32
	}
	if cfg.CellHeight == 0 {
		cfg.CellHeight = 32
	}
	for i := 0; i < cfg.Columns*cfg.Rows; i++ {
		x := float64(i%cfg.Columns) * cfg.CellWidth
		y := float64(i/cfg.Columns) * cfg.CellHeight
		cell := newCell()
		g.AddChild(cell)
		if cfg.CenterCell {
			x += cfg.CellWidth / 2
			y += cfg.CellHeight / 2
		}
		cell.Position = Vec2{x + cfg.OffsetX, y + cfg.OffsetY}
		if each != nil {
			each(cell)
		}
	}
	return g
}
