package inks

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strings"
	"time"
)

// Round rounds x half up, matching the renderer's pixel snapping.
func Round(x float64) float64 {
	return math.Floor(x + 0.5)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ToRadians converts degrees to radians.
func ToRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// ToDegrees converts radians to degrees.
func ToDegrees(rad float64) float64 {
	return rad * 180 / math.Pi
}

// AngleBetween returns the angle from a's local center to b's.
func AngleBetween(a, b *Node) float64 {
	return b.LocalCenter().Sub(a.LocalCenter()).Angle()
}

// Distance returns the distance between the local centers of a and b.
func Distance(a, b *Node) float64 {
	return a.LocalCenter().Dist(b.LocalCenter())
}

// RandomInt returns an integer in [lo, hi]. A nil r uses the global source.
func RandomInt(r *rand.Rand, lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	if r == nil {
		return lo + rand.IntN(hi-lo+1)
	}
	return lo + r.IntN(hi-lo+1)
}

// RandomFloat returns a float in [lo, hi). A nil r uses the global source.
func RandomFloat(r *rand.Rand, lo, hi float64) float64 {
	if r == nil {
		return lo + rand.Float64()*(hi-lo)
	}
	return lo + r.Float64()*(hi-lo)
}

// Contain keeps n's position inside bounds, where Width and Height are the
// far edges rather than extents. Velocity on a clamped axis is reversed when
// bounce is set and divided by the node's mass. The last clamped side is
// returned, or SideNone.
func Contain(n *Node, bounds Rect, bounce bool) Side {
	side := SideNone
	hitX := func() {
		if bounce {
			n.Velocity.X = -n.Velocity.X
		}
		if n.Mass != 0 {
			n.Velocity.X /= n.Mass
		}
	}
	hitY := func() {
		if bounce {
			n.Velocity.Y = -n.Velocity.Y
		}
		if n.Mass != 0 {
			n.Velocity.Y /= n.Mass
		}
	}
	if n.Position.X < bounds.X {
		hitX()
		n.Position.X = bounds.X
		side = SideLeft
	}
	if n.Position.Y < bounds.Y {
		hitY()
		n.Position.Y = bounds.Y
		side = SideTop
	}
	if n.Position.X > bounds.Width {
		hitX()
		n.Position.X = bounds.Width
		side = SideRight
	}
	if n.Position.Y > bounds.Height {
		hitY()
		n.Position.Y = bounds.Height
		side = SideBottom
	}
	return side
}

// GridIndex returns the row-major cell index containing p.
func GridIndex(p Vec2, cellWidth, cellHeight float64, columns int) int {
	x := int(math.Floor(p.X / cellWidth))
	y := int(math.Floor(p.Y / cellHeight))
	return x + y*columns
}

// SpatialGrid buckets nodes by the cell containing their position. Nodes
// outside the grid are dropped. Zero cell sizes default to 32.
func SpatialGrid(nodes []*Node, columns, rows int, cellWidth, cellHeight float64) [][]*Node {
	if cellWidth == 0 {
		cellWidth = 32
	}
	if cellHeight == 0 {
		cellHeight = 32
	}
	grid := make([][]*Node, columns*rows)
	for _, n := range nodes {
		if n.Position.X < 0 || n.Position.Y < 0 {
			continue
		}
		i := GridIndex(n.Position, cellWidth, cellHeight, columns)
		if i < 0 || i >= len(grid) || int(n.Position.X/cellWidth) >= columns {
			continue
		}
		grid[i] = append(grid[i], n)
	}
	return grid
}

// MoveAll adds each node's velocity to its position without friction or
// gravity.
func MoveAll(nodes ...*Node) {
	for _, n := range nodes {
		n.Position = n.Position.Add(n.Velocity)
	}
}

// FormatTimer formats d as "MM : SS", or "HH : MM : SS" with hours.
// compact drops the spaces.
func FormatTimer(d time.Duration, hours, compact bool) string {
	s := int64(d / time.Second)
	var h int64
	if hours {
		h = s / 3600
		s %= 3600
	}
	m := s / 60
	s %= 60
	out := fmt.Sprintf("%02d : %02d", m, s)
	if hours {
		out = fmt.Sprintf("%02d : %s", h, out)
	}
	if compact {
		out = strings.ReplaceAll(out, " ", "")
	}
	return out
}
