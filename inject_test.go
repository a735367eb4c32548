package inks

import "testing"

func TestInjectClickConsumesTwoTicks(t *testing.T) {
	e := startedEngine(t, NewScene("inject"))
	taps := 0
	e.Pointer().OnTap = func(*Cursor) { taps++ }

	e.InjectClick(40, 40)
	if e.PendingInput() != 2 {
		t.Fatalf("PendingInput = %d, want 2", e.PendingInput())
	}

	e.Step(e.Interval())
	if e.PendingInput() != 1 {
		t.Errorf("PendingInput after one tick = %d, want 1", e.PendingInput())
	}
	if !e.Pointer().IsDown {
		t.Error("pointer should be down after the press tick")
	}

	e.Step(2 * e.Interval())
	if e.PendingInput() != 0 {
		t.Errorf("PendingInput = %d, want 0", e.PendingInput())
	}
	if e.Pointer().IsDown {
		t.Error("pointer should be up after the release tick")
	}
	if taps != 1 {
		t.Errorf("taps = %d, want 1", taps)
	}
}

func TestInjectDragFrameCount(t *testing.T) {
	e := newTestEngine(t, DefaultConfig())
	e.InjectDrag(0, 0, 100, 0, 5)
	if e.PendingInput() != 5 {
		t.Fatalf("PendingInput = %d, want 5", e.PendingInput())
	}
	moves := e.injectQueue[1:4]
	for i, want := range []float64{25, 50, 75} {
		if moves[i].screen.X != want {
			t.Errorf("move %d X = %v, want %v", i, moves[i].screen.X, want)
		}
		if !moves[i].pressed {
			t.Errorf("move %d should be pressed", i)
		}
	}
	if last := e.injectQueue[4]; last.pressed || last.screen.X != 100 {
		t.Errorf("last event = %+v, want release at 100", last)
	}

	e2 := newTestEngine(t, DefaultConfig())
	e2.InjectDrag(0, 0, 10, 10, 0)
	if e2.PendingInput() != 2 {
		t.Errorf("PendingInput with frames<2 = %d, want 2", e2.PendingInput())
	}
}

func TestInjectDragMovesDraggable(t *testing.T) {
	var card *Node
	s := NewScene("drag")
	s.OnStart = func(s *Scene) {
		card = NewRectangle("card", 20, 20)
		card.Position = Vec2{50, 50}
		s.Stage().AddChild(card)
		s.Registry().SetDraggable(card, true)
	}
	e := startedEngine(t, s)

	e.InjectDrag(50, 50, 150, 90, 5)
	now := e.Interval()
	for e.PendingInput() > 0 {
		e.Step(now)
		now += e.Interval()
	}

	if card.Position != (Vec2{125, 80}) {
		t.Errorf("card.Position = %v, want {125 80}", card.Position)
	}
}

func TestInjectUsesViewport(t *testing.T) {
	e := startedEngine(t, NewScene("viewport"))
	e.Viewport().X = 100
	e.Viewport().Scale = Vec2{2, 2}

	e.InjectPress(20, 20)
	e.Step(e.Interval())

	if got := e.Pointer().Position; got != (Vec2{110, 10}) {
		t.Errorf("Position = %v, want {110 10}", got)
	}
}
