package inks

import (
	"testing"
	"time"
)

// --- Press / release ---

func TestPointerPressRelease(t *testing.T) {
	p := NewPointer()
	var pressed, released *Cursor
	p.OnPress = func(c *Cursor) { pressed = c }
	p.OnRelease = func(c *Cursor) { released = c }

	p.Press(0, Vec2{10, 20})
	if pressed == nil || pressed.ID != 0 {
		t.Fatal("OnPress should fire for cursor 0")
	}
	if !p.IsDown || p.IsUp {
		t.Error("pointer should be down")
	}
	if p.Position != (Vec2{10, 20}) {
		t.Errorf("Position = %v, want {10 20}", p.Position)
	}
	if !pressed.Primary {
		t.Error("first cursor should be primary")
	}

	p.Release(0, Vec2{12, 20})
	if released != pressed {
		t.Error("OnRelease should fire for the same cursor")
	}
	if p.IsDown || !p.IsUp {
		t.Error("pointer should be up")
	}
}

func TestPointerReleaseUnknownIgnored(t *testing.T) {
	p := NewPointer()
	fired := false
	p.OnRelease = func(*Cursor) { fired = true }
	p.Release(3, Vec2{})
	if fired {
		t.Error("release of an unknown cursor should be ignored")
	}
}

func TestPointerSecondCursorNotPrimary(t *testing.T) {
	p := NewPointer()
	p.Press(1, Vec2{0, 0})
	p.Press(2, Vec2{50, 50})
	c2, _ := p.Cursor(2)
	if c2.Primary {
		t.Error("second cursor should not be primary")
	}
	if p.Position != (Vec2{0, 0}) {
		t.Errorf("Position = %v, want primary's {0 0}", p.Position)
	}
}

// --- Taps ---

func TestPointerTapWithinThreshold(t *testing.T) {
	p := NewPointer()
	taps := 0
	p.OnTap = func(*Cursor) { taps++ }

	p.setTime(0)
	p.Press(0, Vec2{})
	p.setTime(100 * time.Millisecond)
	p.Release(0, Vec2{})

	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
	if !p.Tapped {
		t.Error("Tapped should be set")
	}
	c, _ := p.Cursor(0)
	if c.Held != 100*time.Millisecond {
		t.Errorf("Held = %v, want 100ms", c.Held)
	}
}

func TestPointerLongPressNoTap(t *testing.T) {
	p := NewPointer()
	taps := 0
	p.OnTap = func(*Cursor) { taps++ }

	p.setTime(0)
	p.Press(0, Vec2{})
	p.setTime(time.Second)
	p.Release(0, Vec2{})

	if taps != 0 {
		t.Errorf("taps = %d, want 0", taps)
	}
}

// --- Swipes ---

func TestPointerSwipeDirections(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		want     SwipeDirection
	}{
		{"left", Vec2{100, 100}, Vec2{50, 100}, SwipeLeft},
		{"right", Vec2{100, 100}, Vec2{150, 110}, SwipeRight},
		{"up", Vec2{100, 100}, Vec2{100, 40}, SwipeUp},
		{"down", Vec2{100, 100}, Vec2{95, 160}, SwipeDown},
		{"tiny", Vec2{100, 100}, Vec2{104, 104}, SwipeNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPointer()
			got := SwipeNone
			p.OnSwipe = func(d SwipeDirection) { got = d }
			p.Press(0, tt.from)
			p.Move(0, tt.to)
			p.Release(0, tt.to)
			if got != tt.want {
				t.Errorf("swipe = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSwipeDirectionString(t *testing.T) {
	if SwipeUp.String() != "up" {
		t.Errorf("String = %q, want up", SwipeUp.String())
	}
	if SwipeDirection(42).String() != "unknown" {
		t.Error("out of range should be unknown")
	}
}

// --- feed / clearCache ---

func TestPointerFeedEdges(t *testing.T) {
	p := NewPointer()
	var events []string
	p.OnPress = func(*Cursor) { events = append(events, "press") }
	p.OnMove = func(*Cursor) { events = append(events, "move") }
	p.OnRelease = func(*Cursor) { events = append(events, "release") }

	p.feed(0, Vec2{1, 1}, false) // hover
	p.feed(0, Vec2{1, 1}, false) // unchanged
	p.feed(0, Vec2{1, 1}, true)  // press
	p.feed(0, Vec2{2, 2}, true)  // drag move
	p.feed(0, Vec2{2, 2}, false) // release

	want := []string{"move", "press", "move", "release"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Errorf("events[%d] = %q, want %q", i, events[i], want[i])
		}
	}
}

func TestPointerClearCacheDropsReleased(t *testing.T) {
	p := NewPointer()
	p.Press(1, Vec2{})
	p.Press(2, Vec2{})
	p.Release(1, Vec2{})
	p.clearCache()
	if len(p.Cursors()) != 1 {
		t.Fatalf("cursors = %d, want 1", len(p.Cursors()))
	}
	if p.Cursors()[0].ID != 2 {
		t.Errorf("remaining cursor = %d, want 2", p.Cursors()[0].ID)
	}
}

// --- Drag ---

func dragFixture() (*Registry, *Node, *Node, *Node) {
	r := NewRegistry(1)
	stage := NewContainer("stage")
	stage.Pivot = Vec2{}
	a := NewRectangle("a", 40, 40)
	a.Position = Vec2{100, 100}
	b := NewRectangle("b", 40, 40)
	b.Position = Vec2{110, 100}
	stage.Add(a, b)
	r.SetDraggable(a, true)
	r.SetDraggable(b, true)
	return r, stage, a, b
}

func TestDragPicksTopmost(t *testing.T) {
	r, stage, a, b := dragFixture()
	p := NewPointer()
	p.Press(0, Vec2{105, 100})
	p.updateDrag(r)

	c, _ := p.Cursor(0)
	if c.Dragging() != b {
		t.Fatalf("dragging %v, want b", c.Dragging())
	}

	p.Move(0, Vec2{125, 130})
	p.updateDrag(r)
	if b.Position != (Vec2{130, 130}) {
		t.Errorf("b.Position = %v, want {130 130}", b.Position)
	}
	if a.Position != (Vec2{100, 100}) {
		t.Errorf("a should not move, got %v", a.Position)
	}
	if stage.ChildAt(1) != b {
		t.Error("b should stay in front")
	}
}

func TestDragFocusBringsToFront(t *testing.T) {
	r, stage, a, _ := dragFixture()
	p := NewPointer()
	p.Press(0, Vec2{85, 100})
	p.updateDrag(r)

	if stage.ChildAt(1) != a {
		t.Error("picked node should move to the front")
	}
	ds := r.Draggables()
	if ds[len(ds)-1] != a {
		t.Error("picked node should become the last draggable")
	}
}

func TestDragAxisLock(t *testing.T) {
	r, _, a, b := dragFixture()
	b.RemoveFromParent()
	a.Drag.Vertical = false
	p := NewPointer()
	p.Press(0, Vec2{100, 100})
	p.updateDrag(r)
	p.Move(0, Vec2{130, 150})
	p.updateDrag(r)
	if a.Position != (Vec2{130, 100}) {
		t.Errorf("Position = %v, want {130 100}", a.Position)
	}
}

func TestDragReleaseDrops(t *testing.T) {
	r, _, _, _ := dragFixture()
	p := NewPointer()
	p.Press(0, Vec2{105, 100})
	p.updateDrag(r)
	p.Release(0, Vec2{105, 100})
	p.updateDrag(r)
	c, _ := p.Cursor(0)
	if c.Dragging() != nil {
		t.Error("release should drop the node")
	}
}

func TestDragAbandonedWhenNodeRemoved(t *testing.T) {
	r, stage, _, b := dragFixture()
	p := NewPointer()
	p.Press(0, Vec2{105, 100})
	p.updateDrag(r)
	c, _ := p.Cursor(0)
	if c.Dragging() != b {
		t.Fatalf("dragging %v, want b", c.Dragging())
	}

	if err := stage.RemoveChild(b); err != nil {
		t.Fatal(err)
	}
	p.Move(0, Vec2{125, 130})
	p.updateDrag(r)

	if c.Dragging() != nil {
		t.Errorf("dragging %v after removal, want nil", c.Dragging())
	}
	if b.Position != (Vec2{110, 100}) {
		t.Errorf("removed node moved to %v", b.Position)
	}
}

func TestDragHiddenNodeIgnored(t *testing.T) {
	r, _, a, b := dragFixture()
	b.SetVisible(false)
	p := NewPointer()
	p.Press(0, Vec2{105, 100})
	p.updateDrag(r)
	c, _ := p.Cursor(0)
	if c.Dragging() != a {
		t.Error("hidden node should be skipped")
	}
}

func TestHovering(t *testing.T) {
	r, _, _, _ := dragFixture()
	p := NewPointer()
	p.Move(0, Vec2{100, 100})
	p.updateDrag(r)
	if !p.Hovering() {
		t.Error("should hover over a draggable")
	}
	p.Move(0, Vec2{0, 0})
	p.updateDrag(r)
	if p.Hovering() {
		t.Error("should not hover over empty space")
	}
}
