package inks

import (
	"math"
	"time"
)

// SwipeDirection is the dominant direction of a press-to-release gesture.
type SwipeDirection uint8

const (
	SwipeNone SwipeDirection = iota
	SwipeLeft
	SwipeRight
	SwipeUp
	SwipeDown
)

var swipeNames = [...]string{"none", "left", "right", "up", "down"}

func (d SwipeDirection) String() string {
	if int(d) < len(swipeNames) {
		return swipeNames[d]
	}
	return "unknown"
}

const (
	defaultSwipeTolerance = 10
	defaultTapThreshold   = 200 * time.Millisecond
)

// Cursor is one pointing device contact in world coordinates. The mouse is
// cursor 0; touches are numbered from 1.
type Cursor struct {
	ID       int
	Position Vec2
	IsDown   bool
	IsUp     bool
	Primary  bool
	// Tapped is set on release when the press lasted no longer than the
	// pointer's tap threshold.
	Tapped bool
	// Held is how long the cursor was down, set on release.
	Held time.Duration

	downAt     time.Duration
	clear      bool
	drag       *Node
	dragOffset Vec2
}

// Dragging returns the node the cursor is dragging, or nil.
func (c *Cursor) Dragging() *Node {
	return c.drag
}

// Pointer tracks every cursor, fires press, release, tap, move and swipe
// callbacks, and drives drag-and-drop for the registry's draggable nodes.
// Positions are world coordinates; device polling converts from screen
// space through the viewport before calling Press, Move and Release.
type Pointer struct {
	// Position is the primary cursor's last position.
	Position Vec2
	IsDown   bool
	IsUp     bool
	Tapped   bool

	SwipeTolerance float64
	TapThreshold   time.Duration

	OnPress   func(c *Cursor)
	OnRelease func(c *Cursor)
	OnTap     func(c *Cursor)
	OnMove    func(c *Cursor)
	OnSwipe   func(dir SwipeDirection)

	cursors    []*Cursor
	start, end Vec2
	now        time.Duration
	hovering   bool
}

// NewPointer creates a pointer with no cursors.
func NewPointer() *Pointer {
	return &Pointer{
		IsUp:           true,
		SwipeTolerance: defaultSwipeTolerance,
		TapThreshold:   defaultTapThreshold,
	}
}

// Cursors returns the known cursors in creation order.
// The returned slice MUST NOT be mutated by the caller.
func (p *Pointer) Cursors() []*Cursor {
	return p.cursors
}

// Cursor returns the cursor with the given ID.
func (p *Pointer) Cursor(id int) (*Cursor, bool) {
	for _, c := range p.cursors {
		if c.ID == id {
			return c, true
		}
	}
	return nil, false
}

// Hovering reports whether the primary cursor is over a visible draggable
// node after the last drag update.
func (p *Pointer) Hovering() bool {
	return p.hovering
}

// setTime sets the clock used to measure taps.
func (p *Pointer) setTime(now time.Duration) {
	p.now = now
}

func (p *Pointer) cursor(id int) *Cursor {
	if c, ok := p.Cursor(id); ok {
		return c
	}
	c := &Cursor{ID: id, IsUp: true}
	p.cursors = append(p.cursors, c)
	return c
}

func (p *Pointer) anyDown() bool {
	for _, c := range p.cursors {
		if c.IsDown {
			return true
		}
	}
	return false
}

// Press starts a contact for cursor id at pos. A press while no other
// cursor is down makes the cursor primary.
func (p *Pointer) Press(id int, pos Vec2) {
	primary := !p.anyDown()
	c := p.cursor(id)
	c.Position = pos
	c.IsDown = true
	c.IsUp = false
	c.Tapped = false
	c.clear = false
	c.downAt = p.now
	c.Primary = primary || c.Primary
	if c.Primary {
		p.Position = pos
		p.IsDown = true
		p.IsUp = false
		p.Tapped = false
	}
	if p.OnPress != nil {
		p.OnPress(c)
	}
	p.start = p.Position
}

// Release ends cursor id's contact at pos. The cursor is dropped at the end
// of the tick.
func (p *Pointer) Release(id int, pos Vec2) {
	c, ok := p.Cursor(id)
	if !ok {
		return
	}
	c.Position = pos
	c.IsDown = false
	c.IsUp = true
	c.Held = p.now - c.downAt
	if c.Held <= p.TapThreshold && !c.Tapped {
		c.Tapped = true
		if p.OnTap != nil {
			p.OnTap(c)
		}
	}
	if c.Primary {
		p.Position = pos
		p.IsDown = false
		p.IsUp = true
		p.Tapped = c.Tapped
	}
	if p.OnRelease != nil {
		p.OnRelease(c)
	}
	p.end = p.Position
	p.detectSwipe()
	c.clear = true
}

// Move updates cursor id's position, creating a hovering cursor when the
// id is unknown.
func (p *Pointer) Move(id int, pos Vec2) {
	c := p.cursor(id)
	c.Position = pos
	if c.Primary || len(p.cursors) == 1 {
		p.Position = pos
	}
	if p.OnMove != nil {
		p.OnMove(c)
	}
}

// feed drives cursor id from a polled device state: press on a down edge,
// release on an up edge, move otherwise when the position changed.
func (p *Pointer) feed(id int, pos Vec2, pressed bool) {
	c, known := p.Cursor(id)
	switch {
	case pressed && (!known || !c.IsDown):
		p.Press(id, pos)
	case !pressed && known && c.IsDown:
		p.Release(id, pos)
	case !known || !c.Position.Equals(pos):
		p.Move(id, pos)
	}
}

func (p *Pointer) detectSwipe() {
	d := p.start.Sub(p.end)
	if math.Abs(d.X)+math.Abs(d.Y) <= p.SwipeTolerance || p.OnSwipe == nil {
		return
	}
	switch {
	case math.Abs(d.X) > math.Abs(d.Y) && d.X > 0:
		p.OnSwipe(SwipeLeft)
	case math.Abs(d.X) > math.Abs(d.Y):
		p.OnSwipe(SwipeRight)
	case d.Y > 0:
		p.OnSwipe(SwipeUp)
	default:
		p.OnSwipe(SwipeDown)
	}
}

// clearCache drops cursors released during this tick.
func (p *Pointer) clearCache() {
	kept := p.cursors[:0]
	for _, c := range p.cursors {
		if !c.clear {
			kept = append(kept, c)
		}
	}
	for i := len(kept); i < len(p.cursors); i++ {
		p.cursors[i] = nil
	}
	p.cursors = kept
}

// updateDrag picks up, moves and drops draggable nodes. A pressed cursor
// with nothing in hand grabs the topmost visible draggable under it, moves
// it to the front of its layer when Focus is set, and makes it the last
// draggable so it wins the next pick.
func (p *Pointer) updateDrag(r *Registry) {
	for _, c := range p.cursors {
		if c.drag != nil && !c.drag.Draggable() {
			c.drag = nil
		}
		if c.IsDown {
			if c.drag == nil {
				p.pick(c, r)
			} else {
				d := c.drag
				if d.Drag.Horizontal {
					d.Position.X = c.Position.X - c.dragOffset.X
				}
				if d.Drag.Vertical {
					d.Position.Y = c.Position.Y - c.dragOffset.Y
				}
			}
		}
		if c.IsUp {
			c.drag = nil
		}
	}

	p.hovering = false
	for _, n := range r.draggables {
		if HitTestPoint(p.Position, n, true) && n.Visible() {
			p.hovering = true
			break
		}
	}
}

func (p *Pointer) pick(c *Cursor, r *Registry) {
	for i := len(r.draggables) - 1; i >= 0; i-- {
		n := r.draggables[i]
		if !HitTestPoint(c.Position, n, true) || !n.Visible() {
			continue
		}
		if n.Drag.Horizontal {
			c.dragOffset.X = c.Position.X - n.Position.X
		}
		if n.Drag.Vertical {
			c.dragOffset.Y = c.Position.Y - n.Position.Y
		}
		c.drag = n
		if n.Drag.Focus && n.Parent != nil {
			n.Parent.bringToFront(n)
		}
		r.draggables = removeNode(r.draggables, n)
		r.draggables = append(r.draggables, n)
		return
	}
}

// DragState holds per-node drag options.
type DragState struct {
	Horizontal bool
	Vertical   bool
	// Focus raises the node above its same-layer siblings when picked up.
	Focus bool
}
