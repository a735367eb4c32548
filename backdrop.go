package inks

import "math"

// Backdrop is a clipped rectangle covered by a repeating sprite tile that
// can scroll forever in either direction.
type Backdrop struct {
	*Node
	grid *Node
}

// NewBackdrop creates a width x height backdrop tiled with the tile region
// of the image stored under key. A zero tile size uses the whole
// width x height as one tile.
func NewBackdrop(name, key string, tile Rect, width, height float64) *Backdrop {
	n := NewRectangle(name, width, height)
	n.Fill = ColorNone
	n.Stroke = ColorNone
	n.Pivot = Vec2{}
	n.RenderOutside = true
	n.Mask = true

	tw, th := tile.Width, tile.Height
	if tw <= 0 || th <= 0 {
		tw, th = width, height
	}
	cols, rows := 2, 2
	if width >= tw {
		cols = int(math.Round(width/tw)) + 1
	}
	if height >= th {
		rows = int(math.Round(height/th)) + 1
	}

	var frames []Rect
	if tile.Width > 0 && tile.Height > 0 {
		frames = []Rect{tile}
	}
	grid := NewGrid(name+"_tiles", GridConfig{
		Columns: cols, Rows: rows, CellWidth: tw, CellHeight: th,
	}, func() *Node {
		t := NewSprite(name+"_tile", key, tw, th, frames...)
		t.Pivot = Vec2{}
		return t
	}, nil)
	grid.Pivot = Vec2{}
	grid.SetDynamicSize(true)
	grid.RenderOutside = true
	grid.Position = Vec2{-(grid.Width - width), -(grid.Height - height)}
	n.AddChild(grid)

	return &Backdrop{Node: n, grid: grid}
}

// Tiles returns the container holding the tile sprites.
func (b *Backdrop) Tiles() *Node {
	return b.grid
}

// ScrollX shifts the tiles horizontally by dx, wrapping around so the
// backdrop stays covered.
func (b *Backdrop) ScrollX(dx float64) {
	g := b.grid
	g.Position.X += dx
	span := g.Width - b.Width
	if g.Position.X >= dx {
		g.Position.X = -(span - dx)
		return
	}
	if g.Position.X < -span {
		g.Position.X = dx
	}
}

// ScrollY shifts the tiles vertically by dy, wrapping around so the
// backdrop stays covered.
func (b *Backdrop) ScrollY(dy float64) {
	g := b.grid
	g.Position.Y += dy
	span := g.Height - b.Height
	if g.Position.Y >= dy {
		g.Position.Y = -(span - dy)
		return
	}
	if g.Position.Y < -span {
		g.Position.Y = dy
	}
}
