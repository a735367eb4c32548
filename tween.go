package inks

import (
	"math"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 4 float64 fields on a Node simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenAlpha, TweenRotation, TweenFill) and either call Update(dt) each
// frame or hand it to Registry.AddTween, which ticks it with the engine. If
// the target node is destroyed, the group stops immediately.
type TweenGroup struct {
	seqs   [4]*gween.Sequence
	apply  [4]func(float64)
	count  int
	target *Node
	Done   bool

	// OnComplete runs once when every field has finished.
	OnComplete func()
}

func newTweenGroup(target *Node) *TweenGroup {
	return &TweenGroup{target: target}
}

// add registers one animated field.
func (g *TweenGroup) add(from, to float64, duration float32, fn ease.TweenFunc, apply func(float64)) {
	g.seqs[g.count] = gween.NewSequence(gween.New(float32(from), float32(to), duration, fn))
	g.apply[g.count] = apply
	g.count++
}

// Yoyo makes every field play forward then back. loops is the number of
// round trips; a negative count repeats forever.
func (g *TweenGroup) Yoyo(loops int) *TweenGroup {
	for i := 0; i < g.count; i++ {
		g.seqs[i].SetYoyo(true)
		g.seqs[i].SetLoop(loops)
	}
	return g
}

// Loop restarts every field from the beginning loops times; a negative count
// repeats forever.
func (g *TweenGroup) Loop(loops int) *TweenGroup {
	for i := 0; i < g.count; i++ {
		g.seqs[i].SetLoop(loops)
	}
	return g
}

// Update advances all tweens by dt seconds and writes values to the target
// fields. If the target node has been destroyed, Done is set to true and no
// writes occur.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}
	if g.target != nil && g.target.IsDestroyed() {
		g.Done = true
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, _, finished := g.seqs[i].Update(dt)
		g.apply[i](float64(val))
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
	if g.Done && g.OnComplete != nil {
		g.OnComplete()
	}
}

// Tick implements Ticker.
func (g *TweenGroup) Tick(dt time.Duration) bool {
	g.Update(float32(dt.Seconds()))
	return g.Done
}

// TweenPosition animates node.Position to (toX, toY).
func TweenPosition(node *Node, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(node.Position.X, toX, duration, fn, func(v float64) { node.Position.X = v })
	g.add(node.Position.Y, toY, duration, fn, func(v float64) { node.Position.Y = v })
	return g
}

// TweenScale animates node.Scale to (toSX, toSY).
func TweenScale(node *Node, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(node.Scale.X, toSX, duration, fn, func(v float64) { node.Scale.X = v })
	g.add(node.Scale.Y, toSY, duration, fn, func(v float64) { node.Scale.Y = v })
	return g
}

// TweenFill animates all four components of node.Fill to the target color.
func TweenFill(node *Node, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(node.Fill.R, to.R, duration, fn, func(v float64) { node.Fill.R = v })
	g.add(node.Fill.G, to.G, duration, fn, func(v float64) { node.Fill.G = v })
	g.add(node.Fill.B, to.B, duration, fn, func(v float64) { node.Fill.B = v })
	g.add(node.Fill.A, to.A, duration, fn, func(v float64) { node.Fill.A = v })
	return g
}

// TweenAlpha animates node.Alpha.
func TweenAlpha(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(node.Alpha, to, duration, fn, func(v float64) { node.Alpha = v })
	return g
}

// TweenRotation animates the node's rotation in radians.
func TweenRotation(node *Node, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := newTweenGroup(node)
	g.add(node.rotation, to, duration, fn, node.SetRotation)
	return g
}

// --- Effects ---

// FadeIn animates alpha to 1.
func FadeIn(node *Node, duration float32) *TweenGroup {
	return TweenAlpha(node, 1, duration, ease.Linear)
}

// FadeOut animates alpha to 0.
func FadeOut(node *Node, duration float32) *TweenGroup {
	return TweenAlpha(node, 0, duration, ease.Linear)
}

// Pulse fades alpha down to minAlpha and back, forever.
func Pulse(node *Node, minAlpha float64, duration float32) *TweenGroup {
	return TweenAlpha(node, minAlpha, duration, ease.Linear).Yoyo(-1)
}

// Slide moves the node to (x, y).
func Slide(node *Node, x, y float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	return TweenPosition(node, x, y, duration, fn)
}

// Blink toggles visibility on and off, forever.
func Blink(node *Node, duration float32) *TweenGroup {
	g := newTweenGroup(node)
	g.add(0, 1, duration, ease.Linear, func(v float64) { node.SetVisible(math.Round(v) != 0) })
	return g.Yoyo(-1)
}
