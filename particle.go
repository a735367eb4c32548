package inks

import (
	"math"
	"math/rand/v2"
	"time"
)

// Range is a closed interval sampled uniformly.
type Range struct {
	Min, Max float64
}

// Random returns a random float64 in [Min, Max]. A nil r uses the global
// source.
func (r Range) Random(rng *rand.Rand) float64 {
	if r.Min == r.Max {
		return r.Min
	}
	return RandomFloat(rng, r.Min, r.Max)
}

// ParticleState is the per-tick decay applied to a live particle.
type ParticleState struct {
	Gravity       Vec2
	ScaleSpeed    float64
	AlphaSpeed    float64
	RotationSpeed float64
	// Lives is the number of ticks left; zero or less means unlimited.
	Lives int
}

// ParticleConfig controls how a ParticleSystem spawns particles.
type ParticleConfig struct {
	// Count is the number of particles per Emit.
	Count int
	// RandomSpacing picks random angles; otherwise angles are spread evenly
	// across Angle.
	RandomSpacing bool
	// Angle is the range of emission angles in degrees.
	Angle Range
	// Size is the range of particle sizes in pixels, rounded to integers.
	Size Range
	// Speed is the range of initial speeds in pixels per tick.
	Speed Range
	// ScaleSpeed is the range of per-tick scale shrink.
	ScaleSpeed Range
	// AlphaSpeed is the range of per-tick alpha fade.
	AlphaSpeed Range
	// RotationSpeed is the range of per-tick rotation in radians.
	RotationSpeed Range
	// Gravity is added to every particle's velocity each tick.
	Gravity Vec2
	// Lives caps each particle's lifetime in ticks; zero means until it
	// fades out.
	Lives int
}

// DefaultParticleConfig returns a burst of 10 particles in every direction.
func DefaultParticleConfig() ParticleConfig {
	return ParticleConfig{
		Count:         10,
		RandomSpacing: true,
		Angle:         Range{0, 360},
		Size:          Range{4, 16},
		Speed:         Range{0.1, 1},
		ScaleSpeed:    Range{0.01, 0.05},
		AlphaSpeed:    Range{0.02, 0.02},
		RotationSpeed: Range{0.01, 0.03},
	}
}

// ParticleSystem spawns particle nodes made by Source at Position under
// Parent and registers them so the engine animates them.
type ParticleSystem struct {
	Config   ParticleConfig
	Position Vec2
	Parent   *Node
	Source   func() *Node

	registry *Registry
}

// NewParticleSystem creates a particle system that registers its particles
// with r.
func NewParticleSystem(r *Registry, parent *Node, source func() *Node, cfg ParticleConfig) *ParticleSystem {
	return &ParticleSystem{Config: cfg, Parent: parent, Source: source, registry: r}
}

// Emit spawns Config.Count particles and returns them.
func (ps *ParticleSystem) Emit() []*Node {
	cfg := ps.Config
	rng := ps.registry.rng
	out := make([]*Node, 0, cfg.Count)
	spacing := 0.0
	if cfg.Count > 1 {
		spacing = (cfg.Angle.Max - cfg.Angle.Min) / float64(cfg.Count-1)
	}
	for i := 0; i < cfg.Count; i++ {
		deg := cfg.Angle.Min + spacing*float64(i)
		if cfg.RandomSpacing {
			deg = cfg.Angle.Random(rng)
		}
		out = append(out, ps.spawn(ToRadians(deg)))
	}
	return out
}

func (ps *ParticleSystem) spawn(angle float64) *Node {
	cfg := ps.Config
	rng := ps.registry.rng
	n := ps.Source()
	if len(n.Frames) > 0 {
		n.GotoFrame(RandomInt(rng, 0, len(n.Frames)-1))
	}
	n.Position = ps.Position
	size := float64(RandomInt(rng, int(cfg.Size.Min), int(cfg.Size.Max)))
	n.Width, n.Height = size, size
	n.Bounds.Width, n.Bounds.Height = size, size
	speed := cfg.Speed.Random(rng)
	n.Velocity = Vec2{speed * math.Cos(angle), speed * math.Sin(angle)}
	if ps.Parent != nil && n.Parent == nil {
		ps.Parent.AddChild(n)
	}
	ps.registry.AddParticle(n, ParticleState{
		Gravity:       cfg.Gravity,
		ScaleSpeed:    cfg.ScaleSpeed.Random(rng),
		AlphaSpeed:    cfg.AlphaSpeed.Random(rng),
		RotationSpeed: cfg.RotationSpeed.Random(rng),
		Lives:         cfg.Lives,
	})
	return n
}

// AddParticle registers n as a live particle with the given decay.
func (r *Registry) AddParticle(n *Node, st ParticleState) {
	n.Particle = &st
	if n.memberships&memberParticle != 0 {
		return
	}
	r.bind(n)
	n.memberships |= memberParticle
	r.particles = append(r.particles, n)
}

func (r *Registry) tickParticles() {
	for i := len(r.particles) - 1; i >= 0; i-- {
		if i >= len(r.particles) {
			continue
		}
		n := r.particles[i]
		if n.Particle.step(n) {
			r.particles = removeNode(r.particles, n)
			n.memberships &^= memberParticle
			n.RemoveFromParent()
		}
	}
}

// step advances the particle and reports whether it died.
func (st *ParticleState) step(n *Node) bool {
	n.Velocity = n.Velocity.Add(st.Gravity)
	n.Position = n.Position.Add(n.Velocity)
	if n.Scale.X-st.ScaleSpeed > 0 {
		n.Scale.X -= st.ScaleSpeed
	}
	if n.Scale.Y-st.ScaleSpeed > 0 {
		n.Scale.Y -= st.ScaleSpeed
	}
	n.SetRotation(n.rotation + st.RotationSpeed)
	n.Alpha -= st.AlphaSpeed
	if n.Alpha <= 0 {
		return true
	}
	if st.Lives > 0 {
		st.Lives--
		return st.Lives <= 0
	}
	return false
}

// --- Emitter ---

type emitterEntry struct {
	system   *ParticleSystem
	interval time.Duration
	elapsed  time.Duration
	playing  bool
}

// ParticleEmitter fires named particle systems on fixed intervals while they
// are playing. Register it with Registry.AddEmitter.
type ParticleEmitter struct {
	entries map[string]*emitterEntry
	order   []string
	closed  bool
}

// NewParticleEmitter creates an emitter with no systems.
func NewParticleEmitter() *ParticleEmitter {
	return &ParticleEmitter{entries: make(map[string]*emitterEntry)}
}

// Add registers sys under name, emitting every interval once played.
// Re-adding a name replaces its system and stops it.
func (e *ParticleEmitter) Add(name string, sys *ParticleSystem, interval time.Duration) {
	if _, ok := e.entries[name]; !ok {
		e.order = append(e.order, name)
	}
	e.entries[name] = &emitterEntry{system: sys, interval: interval}
}

// Play starts the named system. Unknown names are ignored.
func (e *ParticleEmitter) Play(name string) {
	if ent, ok := e.entries[name]; ok {
		ent.playing = true
	}
}

// Stop stops the named system and resets its interval timer.
func (e *ParticleEmitter) Stop(name string) {
	if ent, ok := e.entries[name]; ok {
		ent.playing = false
		ent.elapsed = 0
	}
}

// Playing reports whether the named system is playing.
func (e *ParticleEmitter) Playing(name string) bool {
	ent, ok := e.entries[name]
	return ok && ent.playing
}

// PlayAll starts every system.
func (e *ParticleEmitter) PlayAll() {
	for _, name := range e.order {
		e.Play(name)
	}
}

// StopAll stops every system.
func (e *ParticleEmitter) StopAll() {
	for _, name := range e.order {
		e.Stop(name)
	}
}

// Close stops every system and drops the emitter from its registry on the
// next tick.
func (e *ParticleEmitter) Close() {
	e.StopAll()
	e.closed = true
}

// Tick implements Ticker.
func (e *ParticleEmitter) Tick(dt time.Duration) bool {
	if e.closed {
		return true
	}
	for _, name := range e.order {
		ent := e.entries[name]
		if !ent.playing {
			continue
		}
		ent.elapsed += dt
		if ent.elapsed >= ent.interval {
			ent.system.Emit()
			ent.elapsed = 0
		}
	}
	return false
}
