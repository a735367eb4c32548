package inks

import "time"

// Animation is a named run of sprite frame indexes.
type Animation struct {
	Frames []int
	// Speed is the time each frame stays on screen.
	Speed time.Duration
	Loop  bool
}

// Animator plays named frame animations on a sprite node. Hand it to
// Registry.AddTween, or call Tick yourself. It stops once the node is
// destroyed.
type Animator struct {
	node  *Node
	anims map[string]Animation

	current  string
	anim     Animation
	index    int
	elapsed  time.Duration
	playing  bool
	complete bool

	OnStart    func(name string, frame int)
	OnUpdate   func(name string, frame int)
	OnComplete func(name string, frame int)
}

// NewAnimator creates an animator for n with no animations.
func NewAnimator(n *Node) *Animator {
	return &Animator{node: n, anims: make(map[string]Animation)}
}

// Add registers an animation under name, replacing any previous one.
func (a *Animator) Add(name string, frames []int, speed time.Duration, loop bool) {
	a.anims[name] = Animation{Frames: append([]int(nil), frames...), Speed: speed, Loop: loop}
}

// AddRange registers an animation over frames first..last inclusive.
func (a *Animator) AddRange(name string, first, last int, speed time.Duration, loop bool) {
	var frames []int
	for i := first; i <= last; i++ {
		frames = append(frames, i)
	}
	a.Add(name, frames, speed, loop)
}

// Play starts the named animation from its first frame. Unknown names are
// ignored.
func (a *Animator) Play(name string) {
	anim, ok := a.anims[name]
	if !ok || len(anim.Frames) == 0 {
		return
	}
	a.current = name
	a.anim = anim
	a.index = 0
	a.elapsed = 0
	a.complete = false
	a.playing = true
	a.node.GotoFrame(anim.Frames[0])
	if a.OnStart != nil {
		a.OnStart(name, a.node.Frame())
	}
}

// Pause freezes the current frame.
func (a *Animator) Pause() { a.playing = false }

// Resume continues a paused animation.
func (a *Animator) Resume() {
	if a.current != "" && !a.complete {
		a.playing = true
	}
}

// Playing reports whether an animation is advancing.
func (a *Animator) Playing() bool { return a.playing }

// Complete reports whether a non-looping animation reached its last frame.
func (a *Animator) Complete() bool { return a.complete }

// Current returns the name of the last played animation.
func (a *Animator) Current() string { return a.current }

// Tick implements Ticker. Each time Speed has elapsed the next frame is
// shown; a looping animation wraps, any other completes on its last frame.
func (a *Animator) Tick(dt time.Duration) bool {
	if a.node.destroyed {
		return true
	}
	if !a.playing || a.complete || len(a.anim.Frames) == 0 {
		return false
	}
	a.elapsed += dt
	if a.elapsed < a.anim.Speed {
		return false
	}
	a.elapsed = 0
	a.node.GotoFrame(a.anim.Frames[a.index])
	a.index++
	if a.OnUpdate != nil {
		a.OnUpdate(a.current, a.node.Frame())
	}
	if a.index >= len(a.anim.Frames) {
		if a.anim.Loop {
			a.index = 0
		} else {
			a.complete = true
			a.playing = false
			if a.OnComplete != nil {
				a.OnComplete(a.current, a.node.Frame())
			}
		}
	}
	return false
}
