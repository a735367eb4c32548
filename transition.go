package inks

import "time"

// Transition is a rectangle covering the stage that fades in, runs
// OnBetween while fully opaque and fades out again. It hides a scene swap
// or a container swap on the same stage.
type Transition struct {
	*Node

	// OnBetween runs once the cover is opaque. It may call Engine.SetScene;
	// the cover then moves to the new stage and fades out there.
	OnBetween func()
	// OnComplete runs after the fade out.
	OnComplete func()

	engine    *Engine
	duration  float32
	fade      *TweenGroup
	fadingOut bool
	remove    bool
}

// NewTransition creates a cover the size of e's viewport filled with fill.
// Each fade takes duration seconds.
func NewTransition(e *Engine, duration float32, fill Color) *Transition {
	n := NewRectangle("transition", e.viewport.Width, e.viewport.Height)
	n.Pivot = Vec2{}
	n.Fill = fill
	n.Stroke = ColorNone
	n.Alpha = 0
	return &Transition{Node: n, engine: e, duration: duration}
}

// Start adds the cover to the active stage if it has no parent and begins
// the fade in. With remove set the cover leaves its parent once it is
// transparent again.
func (t *Transition) Start(remove bool) {
	if t.Parent == nil {
		if stage := t.engine.Stage(); stage != nil {
			stage.AddChild(t.Node)
		}
	}
	t.remove = remove
	t.fadingOut = false
	t.Alpha = 0
	t.fade = FadeIn(t.Node, t.duration)
	t.engine.registry.AddTween(t)
}

// FadingOut reports whether OnBetween has run.
func (t *Transition) FadingOut() bool { return t.fadingOut }

// Tick implements Ticker. A cover removed by someone else stops without
// running its callbacks.
func (t *Transition) Tick(dt time.Duration) bool {
	if t.fade == nil || t.IsDestroyed() {
		return true
	}
	if !t.fade.Tick(dt) {
		return false
	}
	if t.fadingOut {
		if t.remove {
			t.RemoveFromParent()
		}
		if t.OnComplete != nil {
			t.OnComplete()
		}
		return true
	}

	t.fadingOut = true
	stage := t.engine.Stage()
	if t.OnBetween != nil {
		t.OnBetween()
	}
	t.fade = FadeOut(t.Node, t.duration)
	if next := t.engine.Stage(); next != stage {
		if next == nil {
			return true
		}
		next.AddChild(t.Node)
		t.engine.registry.AddTween(t)
		return true
	}
	return false
}
