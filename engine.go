package inks

import (
	"time"

	"go.uber.org/zap"
)

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine logger. The default discards everything.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.log = l
		}
	}
}

// WithAssets sets the store sprites resolve their images from.
func WithAssets(a AssetStore) Option {
	return func(e *Engine) { e.assets = a }
}

// WithInput sets the function that polls real devices at the start of each
// tick. Run installs an ebiten poller when none is set.
func WithInput(poll func(e *Engine)) Option {
	return func(e *Engine) { e.poll = poll }
}

// frameStats are the render counters shown by the debug overlay.
type frameStats struct {
	objects int
	draws   int
}

// Engine owns the active scene, the behavior registry, the pointer and the
// viewport, and drives them from a fixed or variable timestep loop. It is
// not safe for concurrent use.
type Engine struct {
	cfg      Config
	log      *zap.Logger
	assets   AssetStore
	poll     func(e *Engine)
	scene    *Scene
	registry *Registry
	pointer  *Pointer
	viewport *Viewport

	// Debug draws node bounds and the stats overlay.
	Debug bool
	// Background clears the canvas before each render unless it is none.
	Background Color

	interval time.Duration
	started  bool
	paused   bool
	then     time.Duration
	lag      time.Duration
	delta    time.Duration
	elapsed  time.Duration
	ticks    uint64

	fps        int
	fpsFrames  int
	fpsElapsed time.Duration

	stats       frameStats
	debugText   string
	cursorHover bool

	injectQueue     []syntheticPointerEvent
	testRunner      *TestRunner
	screenshotQueue []string
}

// New creates an engine from cfg. The config is validated first.
func New(cfg Config, opts ...Option) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	e := &Engine{
		cfg:        cfg,
		log:        zap.NewNop(),
		assets:     MapAssets{},
		registry:   NewRegistry(cfg.Seed),
		pointer:    NewPointer(),
		viewport:   NewViewport(float64(cfg.Width), float64(cfg.Height)),
		Debug:      cfg.Debug,
		Background: cfg.Background,
		interval:   time.Second / time.Duration(cfg.Framerate),
	}
	for _, opt := range opts {
		opt(e)
	}
	if cfg.Debug {
		e.registry.SetDebug(e.log)
	}
	return e, nil
}

// Config returns the configuration the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Logger returns the engine logger.
func (e *Engine) Logger() *zap.Logger { return e.log }

// Assets returns the asset store.
func (e *Engine) Assets() AssetStore { return e.assets }

// Registry returns the behavior registry.
func (e *Engine) Registry() *Registry { return e.registry }

// Pointer returns the pointer state.
func (e *Engine) Pointer() *Pointer { return e.pointer }

// Viewport returns the viewport.
func (e *Engine) Viewport() *Viewport { return e.viewport }

// Scene returns the active scene, or nil.
func (e *Engine) Scene() *Scene { return e.scene }

// Stage returns the active scene's stage, or nil.
func (e *Engine) Stage() *Node {
	if e.scene == nil {
		return nil
	}
	return e.scene.stage
}

// SetScene destroys the current scene, clears every registry and starts s.
func (e *Engine) SetScene(s *Scene) {
	if e.scene != nil {
		e.log.Debug("scene destroyed", zap.String("scene", e.scene.Name))
		e.scene.destroy()
		e.registry.Clear()
	}
	e.scene = s
	if s != nil {
		s.start(e)
		e.log.Debug("scene started", zap.String("scene", s.Name))
	}
}

// Start arms the loop. Returns ErrNoScene when no scene is set.
func (e *Engine) Start(now time.Duration) error {
	if e.scene == nil {
		return ErrNoScene
	}
	e.started = true
	e.then = now
	e.lag = 0
	e.log.Info("engine started",
		zap.String("title", e.cfg.Title),
		zap.Int("width", e.cfg.Width),
		zap.Int("height", e.cfg.Height),
		zap.Int("framerate", e.cfg.Framerate),
		zap.String("timestep", string(e.cfg.Timestep)))
	return nil
}

// Started reports whether Start succeeded.
func (e *Engine) Started() bool { return e.started }

// Pause stops scene updates. Registries, input and rendering keep running.
func (e *Engine) Pause() { e.paused = true }

// Resume restarts scene updates. The lag accumulator is kept.
func (e *Engine) Resume() { e.paused = false }

// Paused reports whether scene updates are paused.
func (e *Engine) Paused() bool { return e.paused }

// FPS returns the number of frames rendered in the last full second.
func (e *Engine) FPS() int { return e.fps }

// Delta returns the wall time between the last two Step calls.
func (e *Engine) Delta() time.Duration { return e.delta }

// Elapsed returns the total simulated time.
func (e *Engine) Elapsed() time.Duration { return e.elapsed }

// Ticks returns the number of ticks run so far.
func (e *Engine) Ticks() uint64 { return e.ticks }

// Print sets the extra line shown by the debug overlay.
func (e *Engine) Print(s string) { e.debugText = s }

// Interval returns the fixed tick interval.
func (e *Engine) Interval() time.Duration { return e.interval }

// Step advances the loop to now, a monotonic clock reading, and returns the
// number of ticks run. In fixed mode it drains the lag in interval steps, at
// most MaxCatchUpTicks; older lag is dropped. In variable mode it runs one
// tick of the measured delta.
func (e *Engine) Step(now time.Duration) int {
	if !e.started {
		return 0
	}
	e.delta = now - e.then
	if e.delta < 0 {
		e.delta = 0
	}
	e.then = now
	e.countFrame(e.delta)

	if e.cfg.Timestep == TimestepVariable {
		e.tick(e.delta)
		return 1
	}

	e.lag += e.delta
	n := 0
	for e.lag >= e.interval {
		if n == e.cfg.MaxCatchUpTicks {
			dropped := e.lag / e.interval
			e.lag %= e.interval
			e.log.Warn("dropped catch-up ticks",
				zap.Int64("dropped", int64(dropped)),
				zap.Int("ran", n))
			break
		}
		e.lag -= e.interval
		e.tick(e.interval)
		n++
	}
	return n
}

// countFrame updates the once-per-second FPS reading.
func (e *Engine) countFrame(dt time.Duration) {
	e.fpsFrames++
	e.fpsElapsed += dt
	if e.fpsElapsed < time.Second {
		return
	}
	e.fps = e.fpsFrames
	e.fpsFrames = 0
	e.fpsElapsed = 0
	if e.Debug {
		e.log.Debug("frame stats",
			zap.Int("fps", e.fps),
			zap.Int("objects", e.stats.objects),
			zap.Int("draws", e.stats.draws))
	}
}

// tick runs one simulation step: input, registries, viewport, then the
// scene unless paused.
func (e *Engine) tick(dt time.Duration) {
	if e.testRunner != nil {
		e.testRunner.step(e)
	}
	e.pointer.setTime(e.elapsed)
	if !e.processInjectedInput() && e.poll != nil {
		e.poll(e)
	}

	r := e.registry
	if len(r.draggables) > 0 {
		e.pointer.updateDrag(r)
	}
	if len(r.buttons) > 0 {
		r.tickButtons(e.pointer)
	}
	e.cursorHover = e.pointer.Hovering() || r.buttonActive()
	r.tickEmitters(dt)
	r.tickParticles()
	r.tickTweens(dt)
	r.tickShakes()
	e.viewport.update(float32(dt.Seconds()))

	if !e.paused && e.scene != nil {
		e.scene.update()
	}
	e.pointer.clearCache()
	e.elapsed += dt
	e.ticks++
}

// CursorHover reports whether the pointer is over a draggable node or an
// active button after the last tick.
func (e *Engine) CursorHover() bool { return e.cursorHover }
