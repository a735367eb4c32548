package inks

import (
	"reflect"
	"testing"
	"time"
)

func newAnimatedSprite() *Node {
	return NewSprite("hero", "hero.png", 8, 8, GridFrames(32, 8, 8, 8)...)
}

func TestAnimatorPlaysOnce(t *testing.T) {
	s := newAnimatedSprite()
	a := NewAnimator(s)
	a.AddRange("walk", 1, 3, 100*time.Millisecond, false)

	var started, shown []int
	var completed []string
	a.OnStart = func(_ string, f int) { started = append(started, f) }
	a.OnUpdate = func(_ string, f int) { shown = append(shown, f) }
	a.OnComplete = func(name string, _ int) { completed = append(completed, name) }

	a.Play("walk")
	if s.Frame() != 1 || !a.Playing() || a.Current() != "walk" {
		t.Fatalf("after Play: frame = %d playing = %v current = %q", s.Frame(), a.Playing(), a.Current())
	}

	a.Tick(50 * time.Millisecond)
	if len(shown) != 0 {
		t.Errorf("frame advanced before Speed elapsed: %v", shown)
	}
	for i := 0; i < 4; i++ {
		a.Tick(50 * time.Millisecond)
		a.Tick(50 * time.Millisecond)
	}

	if !reflect.DeepEqual(started, []int{1}) {
		t.Errorf("OnStart frames = %v, want [1]", started)
	}
	if !reflect.DeepEqual(shown, []int{1, 2, 3}) {
		t.Errorf("shown frames = %v, want [1 2 3]", shown)
	}
	if !reflect.DeepEqual(completed, []string{"walk"}) {
		t.Errorf("completed = %v, want [walk]", completed)
	}
	if !a.Complete() || a.Playing() {
		t.Errorf("Complete = %v Playing = %v, want true false", a.Complete(), a.Playing())
	}

	a.Resume()
	if a.Playing() {
		t.Error("Resume should not restart a completed animation")
	}
}

func TestAnimatorLoops(t *testing.T) {
	s := newAnimatedSprite()
	a := NewAnimator(s)
	a.Add("spin", []int{0, 2}, 100*time.Millisecond, true)
	var shown []int
	a.OnUpdate = func(_ string, f int) { shown = append(shown, f) }

	a.Play("spin")
	for i := 0; i < 5; i++ {
		a.Tick(100 * time.Millisecond)
	}
	if !reflect.DeepEqual(shown, []int{0, 2, 0, 2, 0}) {
		t.Errorf("shown frames = %v, want [0 2 0 2 0]", shown)
	}
	if a.Complete() {
		t.Error("looping animation should never complete")
	}
}

func TestAnimatorPauseResume(t *testing.T) {
	s := newAnimatedSprite()
	a := NewAnimator(s)
	a.Add("blink", []int{3, 0}, 10*time.Millisecond, true)
	a.Play("blink")
	a.Tick(10 * time.Millisecond)
	a.Tick(10 * time.Millisecond)
	if s.Frame() != 0 {
		t.Fatalf("frame = %d, want 0", s.Frame())
	}

	a.Pause()
	a.Tick(time.Second)
	if s.Frame() != 0 || a.Playing() {
		t.Errorf("paused: frame = %d playing = %v, want 0 false", s.Frame(), a.Playing())
	}

	a.Resume()
	a.Tick(10 * time.Millisecond)
	if s.Frame() != 3 {
		t.Errorf("resumed frame = %d, want 3", s.Frame())
	}
}

func TestAnimatorUnknownName(t *testing.T) {
	s := newAnimatedSprite()
	a := NewAnimator(s)
	a.Play("missing")
	if a.Playing() || a.Current() != "" {
		t.Errorf("Play of an unknown name: playing = %v current = %q", a.Playing(), a.Current())
	}
	a.Add("empty", nil, time.Millisecond, false)
	a.Play("empty")
	if a.Playing() {
		t.Error("an animation without frames should not play")
	}
}

func TestAnimatorStopsWithNode(t *testing.T) {
	root := NewContainer("root")
	s := newAnimatedSprite()
	root.AddChild(s)
	r := NewRegistry(1)
	a := NewAnimator(s)
	a.AddRange("walk", 0, 3, time.Millisecond, true)
	a.Play("walk")
	r.AddTween(a)

	r.tickTweens(time.Millisecond)
	if r.NumTweens() != 1 {
		t.Fatalf("tweens = %d, want 1", r.NumTweens())
	}
	s.RemoveFromParent()
	r.tickTweens(time.Millisecond)
	if r.NumTweens() != 0 {
		t.Errorf("animator should drop once its node is destroyed, tweens = %d", r.NumTweens())
	}
}
