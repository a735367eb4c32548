package inks

// syntheticPointerEvent is a single injected pointer event in screen
// coordinates, converted to world coordinates through the viewport exactly
// like polled input.
type syntheticPointerEvent struct {
	screen  Vec2
	pressed bool
}

// InjectPress queues a press at the given screen coordinates. The event is
// consumed by the next tick.
func (e *Engine) InjectPress(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}, pressed: true})
}

// InjectMove queues a move with the button held down. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (e *Engine) InjectMove(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}, pressed: true})
}

// InjectRelease queues a release at the given screen coordinates.
func (e *Engine) InjectRelease(x, y float64) {
	e.injectQueue = append(e.injectQueue, syntheticPointerEvent{screen: Vec2{x, y}})
}

// InjectClick queues a press followed by a release at the same point.
// Consumes two ticks.
func (e *Engine) InjectClick(x, y float64) {
	e.InjectPress(x, y)
	e.InjectRelease(x, y)
}

// InjectDrag queues a press at from, frames-2 interpolated moves and a
// release at to. The sequence consumes frames ticks, at least two.
func (e *Engine) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	e.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		e.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	e.InjectRelease(toX, toY)
}

// PendingInput returns the number of injected events not yet consumed.
func (e *Engine) PendingInput() int {
	return len(e.injectQueue)
}

// processInjectedInput pops one event and feeds it to cursor 0. Returns
// true if an event was consumed, in which case device polling is skipped.
func (e *Engine) processInjectedInput() bool {
	if len(e.injectQueue) == 0 {
		return false
	}
	evt := e.injectQueue[0]
	copy(e.injectQueue, e.injectQueue[1:])
	e.injectQueue = e.injectQueue[:len(e.injectQueue)-1]

	e.pointer.feed(0, e.viewport.ScreenToWorld(evt.screen), evt.pressed)
	return true
}
