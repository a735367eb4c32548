package inks

// Scene is one screen of a game: a stage container sized to the viewport
// plus lifecycle hooks. Only one scene is active on an Engine at a time.
type Scene struct {
	Name string

	// OnStart runs when the scene becomes active, after the stage exists.
	OnStart func(s *Scene)
	// OnUpdate runs once per tick after every node's OnUpdate, unless the
	// engine is paused. Game logic and collision tests go here.
	OnUpdate func(s *Scene)
	// OnDestroy runs when the scene is replaced.
	OnDestroy func(s *Scene)

	engine *Engine
	stage  *Node
}

// NewScene creates an inactive scene. Its stage is created when the scene
// is passed to Engine.SetScene.
func NewScene(name string) *Scene {
	return &Scene{Name: name}
}

// Stage returns the scene's root container, or nil before activation.
func (s *Scene) Stage() *Node {
	return s.stage
}

// Engine returns the engine running this scene, or nil before activation.
func (s *Scene) Engine() *Engine {
	return s.engine
}

// Registry is shorthand for s.Engine().Registry().
func (s *Scene) Registry() *Registry {
	if s.engine == nil {
		return nil
	}
	return s.engine.registry
}

// start builds the stage and runs OnStart.
func (s *Scene) start(e *Engine) {
	s.engine = e
	s.stage = NewContainer("stage")
	s.stage.Width = e.viewport.Width
	s.stage.Height = e.viewport.Height
	s.stage.Bounds = Rect{Width: s.stage.Width, Height: s.stage.Height}
	s.stage.Pivot = Vec2{}
	s.stage.registry = e.registry
	if s.OnStart != nil {
		s.OnStart(s)
	}
}

// update walks the stage depth-first and then runs OnUpdate.
func (s *Scene) update() {
	if s.stage == nil {
		return
	}
	updateTree(s.stage)
	if s.OnUpdate != nil {
		s.OnUpdate(s)
	}
}

// destroy removes every stage child and runs OnDestroy. The caller clears
// the registries.
func (s *Scene) destroy() {
	if s.stage != nil {
		s.stage.destroy()
	}
	if s.OnDestroy != nil {
		s.OnDestroy(s)
	}
	s.stage = nil
	s.engine = nil
}

// updateTree runs OnUpdate on every descendant of n, children in reverse
// index order, each before its own children. The walk covers the children n
// had when it started; any an update removes are skipped.
func updateTree(n *Node) {
	if len(n.children) == 0 {
		return
	}
	children := append([]*Node(nil), n.children...)
	for i := len(children) - 1; i >= 0; i-- {
		child := children[i]
		if child.destroyed || child.Parent != n {
			continue
		}
		if child.OnUpdate != nil {
			child.OnUpdate(child)
		}
		if child.destroyed || child.Parent != n {
			continue
		}
		if len(child.children) > 0 {
			updateTree(child)
		}
	}
}
