package inks

import (
	"errors"
	"fmt"
)

// --- ID counter ---

// nodeIDCounter is a plain counter (no atomic; the engine is single-threaded).
var nodeIDCounter uint32

func nextNodeID() uint32 {
	nodeIDCounter++
	return nodeIDCounter
}

// --- Node ---

// Node is the fundamental scene graph element. A single flat struct is used for
// every shape so that rendering and collision dispatch switch on Type rather
// than going through interfaces.
//
// Only translation composes across the hierarchy: a node's global position is
// the sum of its ancestors' positions. Rotation and Scale are local rendering
// effects and do not affect hit testing.
type Node struct {
	// Identity
	ID   uint32
	Name string
	Type NodeType

	// Hierarchy
	Parent   *Node
	children []*Node

	// Motion
	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	Friction     Vec2
	Gravity      Vec2
	Mass         float64

	// Local rendering transform
	Scale    Vec2
	Pivot    Vec2
	rotation float64

	// Size and hit box. Bounds is relative to the pivot-adjusted origin; a zero
	// size falls back to Width/Height.
	Width, Height float64
	Bounds        Rect

	// Visibility & ordering
	Alpha         float64
	visible       bool
	layer         int
	RenderOutside bool
	onViewport    bool

	// Paint
	Fill      Color
	Stroke    Color
	LineWidth float64
	LineJoin  LineJoin
	LineCap   LineCap
	BlendMode BlendMode
	Shadow    *Shadow
	Mask      bool

	// Circle fields (NodeTypeCircle)
	StartAngle, EndAngle float64
	Pie                  bool

	// Rectangle fields (NodeTypeRectangle)
	Corners Corners

	// Triangle fields (NodeTypeTriangle)
	Inclination Inclination

	// Line fields (NodeTypeLine), in the parent's coordinate space
	A, B Vec2

	// Sprite fields (NodeTypeSprite)
	Image  string
	Frames []Rect
	frame  int

	// Text fields (NodeTypeText)
	Text      string
	Font      Font
	TextAlign TextAlign
	Leading   float64

	// Metadata
	Props map[string]any

	// Behaviors (nil by default; assigned by the Registry)
	Drag     *DragState
	Button   *ButtonState
	Shake    *ShakeState
	Particle *ParticleState

	registry    *Registry
	memberships membership

	// Hooks (nil by default; zero cost when unused)
	OnAdded   func(n *Node)
	OnUpdate  func(n *Node)
	OnDestroy func(n *Node)
	OnRender  func(n *Node, c Canvas)

	// Internal
	dynamicSize bool
	destroyed   bool
}

// nodeDefaults sets the common default field values shared by all constructors.
func nodeDefaults(n *Node) {
	n.ID = nextNodeID()
	n.Friction = Vec2{0.96, 0.96}
	n.Mass = 1
	n.Scale = Vec2{1, 1}
	n.Pivot = Vec2{0.5, 0.5}
	n.Alpha = 1
	n.visible = true
	n.onViewport = true
	n.Fill = ColorGray
}

// NewContainer creates a container node with no visual representation.
func NewContainer(name string) *Node {
	n := &Node{Name: name, Type: NodeTypeContainer}
	nodeDefaults(n)
	return n
}

// NewCircle creates a circle with the given diameter.
func NewCircle(name string, diameter float64) *Node {
	n := &Node{Name: name, Type: NodeTypeCircle}
	nodeDefaults(n)
	n.SetDiameter(diameter)
	n.EndAngle = fullTurn
	return n
}

// NewRectangle creates a rectangle of the given size.
func NewRectangle(name string, width, height float64) *Node {
	n := &Node{Name: name, Type: NodeTypeRectangle, Width: width, Height: height}
	nodeDefaults(n)
	return n
}

// NewTriangle creates a right triangle of the given size.
func NewTriangle(name string, width, height float64, inc Inclination) *Node {
	n := &Node{Name: name, Type: NodeTypeTriangle, Width: width, Height: height, Inclination: inc}
	nodeDefaults(n)
	return n
}

// NewLine creates a line from a to b.
func NewLine(name string, a, b Vec2) *Node {
	n := &Node{Name: name, Type: NodeTypeLine, A: a, B: b}
	nodeDefaults(n)
	n.Fill = ColorNone
	n.Stroke = ColorGray
	n.LineWidth = 1
	return n
}

// NewSprite creates a sprite that draws the image stored under key. When
// frames are given they select source rectangles within the image.
func NewSprite(name, key string, width, height float64, frames ...Rect) *Node {
	n := &Node{Name: name, Type: NodeTypeSprite, Image: key, Width: width, Height: height, Frames: frames}
	nodeDefaults(n)
	n.Fill = ColorNone
	return n
}

// --- Tree manipulation ---

// AddChild appends child to this node's children.
// If child already has a parent, it is detached from that parent first
// without being destroyed. Panics if child is nil or child is an ancestor of
// this node (cycle).
func (n *Node) AddChild(child *Node) {
	if child == nil {
		panic("inks: cannot add nil child")
	}
	if isAncestor(child, n) {
		panic("inks: adding child would create a cycle")
	}
	if child.Parent != nil {
		prev := child.Parent
		prev.removeChildByPtr(child)
		prev.refreshSize()
	}
	child.Parent = n
	child.destroyed = false
	if child.Bounds.Width == 0 {
		child.Bounds.Width = child.Width
	}
	if child.Bounds.Height == 0 {
		child.Bounds.Height = child.Height
	}
	n.children = append(n.children, child)
	if child.OnAdded != nil {
		child.OnAdded(child)
	}
	n.sortChildren()
	n.refreshSize()
	if log := debugLogger(n); log != nil {
		debugCheckTreeDepth(log, child)
		debugCheckChildCount(log, n)
	}
}

// Add appends every node in order.
func (n *Node) Add(nodes ...*Node) {
	for _, c := range nodes {
		n.AddChild(c)
	}
}

// RemoveChild unregisters child from every registry it belongs to, detaches
// it and destroys its subtree. Returns ErrNotChild if child's parent is not n.
func (n *Node) RemoveChild(child *Node) error {
	if child == nil || child.Parent != n {
		return fmt.Errorf("remove %s from %q: %w", nodeLabel(child), n.Name, ErrNotChild)
	}
	child.forget()
	n.removeChildByPtr(child)
	child.destroy()
	child.Parent = nil
	n.refreshSize()
	return nil
}

// Remove removes every node in order. Failures do not stop the remaining
// removals and are joined into the returned error.
func (n *Node) Remove(nodes ...*Node) error {
	var errs []error
	for _, c := range nodes {
		if err := n.RemoveChild(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RemoveFromParent removes this node from its parent.
// No-op if this node has no parent.
func (n *Node) RemoveFromParent() {
	if n.Parent == nil {
		return
	}
	_ = n.Parent.RemoveChild(n)
}

// SwapChildren exchanges the positions of a and b. Children with different
// layers remain ordered by layer.
func (n *Node) SwapChildren(a, b *Node) error {
	ia, ib := n.indexOf(a), n.indexOf(b)
	if ia < 0 || ib < 0 {
		return fmt.Errorf("swap %s and %s in %q: %w", nodeLabel(a), nodeLabel(b), n.Name, ErrNotChild)
	}
	n.children[ia], n.children[ib] = n.children[ib], n.children[ia]
	n.sortChildren()
	return nil
}

// Children returns the child list. The returned slice MUST NOT be mutated by the caller.
func (n *Node) Children() []*Node {
	return n.children
}

// NumChildren returns the number of children.
func (n *Node) NumChildren() int {
	return len(n.children)
}

// ChildAt returns the child at the given index.
func (n *Node) ChildAt(index int) *Node {
	return n.children[index]
}

// Empty reports whether the node has no children.
func (n *Node) Empty() bool {
	return len(n.children) == 0
}

// Layer returns the node's z-order key among its siblings.
func (n *Node) Layer() int {
	return n.layer
}

// SetLayer sets the node's layer and re-sorts its parent's children.
func (n *Node) SetLayer(layer int) {
	n.layer = layer
	if n.Parent != nil {
		n.Parent.sortChildren()
	}
}

// IsDestroyed reports whether the node was removed from its parent and has
// not been added anywhere since.
func (n *Node) IsDestroyed() bool {
	return n.destroyed
}

// Draggable reports whether the node is in its registry's drag list.
func (n *Node) Draggable() bool {
	return n.memberships&memberDrag != 0
}

// Frame returns the current sprite frame index.
func (n *Node) Frame() int {
	return n.frame
}

// GotoFrame selects a sprite frame. Out of range indexes are ignored.
func (n *Node) GotoFrame(i int) {
	if i >= 0 && i < len(n.Frames) {
		n.frame = i
	}
}

// SetProp stores a value in the node's property bag.
func (n *Node) SetProp(key string, v any) {
	if n.Props == nil {
		n.Props = make(map[string]any)
	}
	n.Props[key] = v
}

// Prop returns a value from the node's property bag.
func (n *Node) Prop(key string) (any, bool) {
	v, ok := n.Props[key]
	return v, ok
}

// --- Layout helpers ---

// PutTop positions other centered above n.
func (n *Node) PutTop(other *Node, xOffset, yOffset float64) {
	other.Position.X = n.Position.X + n.HalfWidth() - other.HalfWidth() + xOffset
	other.Position.Y = n.Position.Y - other.Height - yOffset
}

// PutRight positions other centered to the right of n.
func (n *Node) PutRight(other *Node, xOffset, yOffset float64) {
	other.Position.X = n.Position.X + n.Width + xOffset
	other.Position.Y = n.Position.Y + n.HalfHeight() - other.HalfHeight() + yOffset
}

// PutBottom positions other centered below n.
func (n *Node) PutBottom(other *Node, xOffset, yOffset float64) {
	other.Position.X = n.Position.X + n.HalfWidth() - other.HalfWidth() + xOffset
	other.Position.Y = n.Position.Y + n.Height + yOffset
}

// PutLeft positions other centered to the left of n.
func (n *Node) PutLeft(other *Node, xOffset, yOffset float64) {
	other.Position.X = n.Position.X - other.Width - xOffset
	other.Position.Y = n.Position.Y + n.HalfHeight() - other.HalfHeight() + yOffset
}

// PutCenter positions other at the center of n's box.
func (n *Node) PutCenter(other *Node, xOffset, yOffset float64) {
	other.Position.X = n.Position.X - n.Width*n.Pivot.X + n.HalfWidth() + xOffset
	other.Position.Y = n.Position.Y - n.Height*n.Pivot.Y + n.HalfHeight() + yOffset
}

// --- Helpers ---

// destroy removes the node's own children last-to-first, then runs OnDestroy.
func (n *Node) destroy() {
	for i := len(n.children) - 1; i >= 0; i-- {
		if i >= len(n.children) {
			continue
		}
		_ = n.RemoveChild(n.children[i])
	}
	n.destroyed = true
	if n.OnDestroy != nil {
		n.OnDestroy(n)
	}
}

// forget drops the node from every registry list it belongs to.
func (n *Node) forget() {
	if n.registry != nil {
		n.registry.forget(n)
	}
}

// sortChildren orders children by layer with a stable insertion sort.
func (n *Node) sortChildren() {
	c := n.children
	for i := 1; i < len(c); i++ {
		key := c[i]
		j := i - 1
		for j >= 0 && c[j].layer > key.layer {
			c[j+1] = c[j]
			j--
		}
		c[j+1] = key
	}
}

// bringToFront moves child behind every sibling of the same layer so it
// renders on top of them.
func (n *Node) bringToFront(child *Node) {
	if n.indexOf(child) < 0 {
		return
	}
	n.removeChildByPtr(child)
	n.children = append(n.children, child)
	n.sortChildren()
}

func (n *Node) indexOf(child *Node) int {
	if child == nil {
		return -1
	}
	for i, c := range n.children {
		if c == child {
			return i
		}
	}
	return -1
}

// isAncestor reports whether candidate is an ancestor of node.
func isAncestor(candidate, node *Node) bool {
	for p := node; p != nil; p = p.Parent {
		if p == candidate {
			return true
		}
	}
	return false
}

// removeChildByPtr removes child from n.children without clearing child.Parent.
// Uses copy+nil to avoid retaining a dangling pointer in the backing array.
func (n *Node) removeChildByPtr(child *Node) {
	for i, c := range n.children {
		if c == child {
			copy(n.children[i:], n.children[i+1:])
			n.children[len(n.children)-1] = nil
			n.children = n.children[:len(n.children)-1]
			return
		}
	}
}

func nodeLabel(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return fmt.Sprintf("%s %q", n.Type, n.Name)
}
