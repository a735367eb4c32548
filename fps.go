package inks

import "strconv"

// NewFPSWidget creates a node that prints the engine's FPS and tick count.
// The text is refreshed every half second of simulated time.
func NewFPSWidget(e *Engine) *Node {
	n := NewContainer("fps_widget")
	n.Pivot = Vec2{}
	n.SetLayer(255)
	n.RenderOutside = true

	text := "FPS: 0"
	var last uint64
	n.OnUpdate = func(*Node) {
		every := uint64(e.cfg.Framerate / 2)
		if every == 0 || e.ticks-last < every {
			return
		}
		last = e.ticks
		text = "FPS: " + strconv.Itoa(e.fps) + "\nTicks: " + strconv.FormatUint(e.ticks, 10)
	}
	n.OnRender = func(_ *Node, c Canvas) {
		c.DebugPrint(text, 0, 0)
	}
	return n
}
