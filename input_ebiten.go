package inks

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// maxTouches bounds the number of touch cursors tracked at once.
const maxTouches = 10

// ebitenInput polls the mouse as cursor 0 and touches as cursors 1 and up,
// converting screen pixels to world coordinates through the viewport. Key
// transitions go to the registry's keyboards.
type ebitenInput struct {
	touchIDs  []ebiten.TouchID
	touchSlot map[ebiten.TouchID]int
	touchPos  map[ebiten.TouchID]Vec2

	pressedKeys  []ebiten.Key
	releasedKeys []ebiten.Key
}

func newEbitenInput() *ebitenInput {
	return &ebitenInput{
		touchSlot: make(map[ebiten.TouchID]int),
		touchPos:  make(map[ebiten.TouchID]Vec2),
	}
}

// poll feeds the current device state into the engine's pointer.
func (in *ebitenInput) poll(e *Engine) {
	vp, p := e.viewport, e.pointer

	mx, my := ebiten.CursorPosition()
	p.feed(0, vp.ScreenToWorld(Vec2{float64(mx), float64(my)}), ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft))

	in.touchIDs = inpututil.AppendJustPressedTouchIDs(in.touchIDs[:0])
	for _, id := range in.touchIDs {
		slot := in.freeSlot()
		if slot < 0 {
			continue
		}
		in.touchSlot[id] = slot
		x, y := ebiten.TouchPosition(id)
		pos := vp.ScreenToWorld(Vec2{float64(x), float64(y)})
		in.touchPos[id] = pos
		p.Press(slot, pos)
	}
	for id, slot := range in.touchSlot {
		if inpututil.IsTouchJustReleased(id) {
			p.Release(slot, in.touchPos[id])
			delete(in.touchSlot, id)
			delete(in.touchPos, id)
			continue
		}
		x, y := ebiten.TouchPosition(id)
		pos := vp.ScreenToWorld(Vec2{float64(x), float64(y)})
		if !pos.Equals(in.touchPos[id]) {
			in.touchPos[id] = pos
			p.Move(slot, pos)
		}
	}

	if len(e.registry.keyboards) > 0 {
		in.pressedKeys = inpututil.AppendJustPressedKeys(in.pressedKeys[:0])
		in.releasedKeys = inpututil.AppendJustReleasedKeys(in.releasedKeys[:0])
		e.registry.feedKeys(in.pressedKeys, in.releasedKeys)
	}
}

// freeSlot returns the lowest unused touch cursor ID, or -1.
func (in *ebitenInput) freeSlot() int {
	for slot := 1; slot <= maxTouches; slot++ {
		used := false
		for _, s := range in.touchSlot {
			if s == slot {
				used = true
				break
			}
		}
		if !used {
			return slot
		}
	}
	return -1
}

// updateCursorShape shows a pointer cursor while hovering something
// interactive.
func updateCursorShape(hover bool) {
	if hover {
		ebiten.SetCursorShape(ebiten.CursorShapePointer)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}
