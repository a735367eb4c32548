package inks

import (
	"math/rand/v2"
	"time"

	"go.uber.org/zap"
)

// membership records which registry lists a node is in.
type membership uint8

const (
	memberDrag membership = 1 << iota
	memberButton
	memberParticle
	memberShake
)

// Ticker is a per-tick task such as a tween or a particle emitter. Tick
// reports true once the task is finished and can be dropped.
type Ticker interface {
	Tick(dt time.Duration) bool
}

// Registry holds the active behaviors of one engine: draggable nodes,
// buttons, particles, shaking nodes, tweens, emitters and keyboards. Nodes
// remember their registry so RemoveChild can unregister them before they
// are destroyed.
type Registry struct {
	draggables []*Node
	buttons    []*Node
	particles  []*Node
	shakers    []*Node
	tweens     []Ticker
	emitters   []Ticker
	keyboards  []*Keyboard

	// generation counts Clear calls so a tick can tell its task list was
	// dropped under it.
	generation uint64

	rng      *rand.Rand
	debugLog *zap.Logger
}

// NewRegistry creates an empty registry whose random source is seeded with
// seed.
func NewRegistry(seed uint64) *Registry {
	return &Registry{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

// Rand returns the registry's random source.
func (r *Registry) Rand() *rand.Rand {
	return r.rng
}

// Draggables returns the draggable nodes, last-focused last.
// The returned slice MUST NOT be mutated by the caller.
func (r *Registry) Draggables() []*Node { return r.draggables }

// Buttons returns the interactive nodes.
func (r *Registry) Buttons() []*Node { return r.buttons }

// Particles returns the live particles.
func (r *Registry) Particles() []*Node { return r.particles }

// Shakers returns the nodes currently shaking.
func (r *Registry) Shakers() []*Node { return r.shakers }

// NumTweens returns the number of running tweens.
func (r *Registry) NumTweens() int { return len(r.tweens) }

// NumEmitters returns the number of registered emitters.
func (r *Registry) NumEmitters() int { return len(r.emitters) }

// SetDraggable adds n to or removes it from the drag list. A node made
// draggable without a DragState gets one that allows both axes and focus.
func (r *Registry) SetDraggable(n *Node, on bool) {
	if !on {
		if n.memberships&memberDrag != 0 {
			r.draggables = removeNode(r.draggables, n)
			n.memberships &^= memberDrag
		}
		return
	}
	if n.Drag == nil {
		n.Drag = &DragState{Horizontal: true, Vertical: true, Focus: true}
	}
	if n.memberships&memberDrag != 0 {
		return
	}
	r.bind(n)
	n.memberships |= memberDrag
	r.draggables = append(r.draggables, n)
}

// AddTween starts ticking t every engine tick until it reports done.
func (r *Registry) AddTween(t Ticker) {
	r.tweens = append(r.tweens, t)
}

// AddEmitter starts ticking e every engine tick until it reports done.
func (r *Registry) AddEmitter(e Ticker) {
	r.emitters = append(r.emitters, e)
}

// Clear drops every registration.
func (r *Registry) Clear() {
	for _, list := range [][]*Node{r.draggables, r.buttons, r.particles, r.shakers} {
		for _, n := range list {
			n.memberships = 0
			n.registry = nil
		}
	}
	r.draggables = nil
	r.buttons = nil
	r.particles = nil
	r.shakers = nil
	r.tweens = nil
	r.emitters = nil
	r.keyboards = nil
	r.generation++
}

func (r *Registry) bind(n *Node) {
	if n.registry != nil && n.registry != r {
		n.registry.forget(n)
	}
	n.registry = r
}

// forget removes n from every list it belongs to. Safe to call repeatedly.
func (r *Registry) forget(n *Node) {
	if n.memberships&memberDrag != 0 {
		r.draggables = removeNode(r.draggables, n)
	}
	if n.memberships&memberButton != 0 {
		r.buttons = removeNode(r.buttons, n)
	}
	if n.memberships&memberParticle != 0 {
		r.particles = removeNode(r.particles, n)
	}
	if n.memberships&memberShake != 0 {
		r.shakers = removeNode(r.shakers, n)
	}
	n.memberships = 0
	n.registry = nil
}

// tickTasks ticks every Ticker in list and returns the ones still running.
func tickTasks(list []Ticker, dt time.Duration) []Ticker {
	kept := list[:0]
	for _, t := range list {
		if !t.Tick(dt) {
			kept = append(kept, t)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}

// removeNode removes n from list, keeping order. Uses copy+nil to avoid
// retaining a dangling pointer in the backing array.
func removeNode(list []*Node, n *Node) []*Node {
	for i, c := range list {
		if c == n {
			copy(list[i:], list[i+1:])
			list[len(list)-1] = nil
			return list[:len(list)-1]
		}
	}
	return list
}

// tickEmitters and tickTweens keep tasks added during the tick. When a task
// clears the registry, only the tasks added after the Clear survive.
func (r *Registry) tickEmitters(dt time.Duration) {
	running, gen := r.emitters, r.generation
	r.emitters = nil
	running = tickTasks(running, dt)
	if r.generation != gen {
		return
	}
	r.emitters = append(running, r.emitters...)
}

func (r *Registry) tickTweens(dt time.Duration) {
	running, gen := r.tweens, r.generation
	r.tweens = nil
	running = tickTasks(running, dt)
	if r.generation != gen {
		return
	}
	r.tweens = append(running, r.tweens...)
}
