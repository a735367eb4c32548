package inks

// ButtonStatus is the visual state of an interactive node.
type ButtonStatus uint8

const (
	ButtonUp ButtonStatus = iota
	ButtonOver
	ButtonDown
)

var buttonStatusNames = [...]string{"up", "over", "down"}

func (s ButtonStatus) String() string {
	if int(s) < len(buttonStatusNames) {
		return buttonStatusNames[s]
	}
	return "unknown"
}

// ButtonAction is the last completed press or release.
type ButtonAction uint8

const (
	ActionNone ButtonAction = iota
	ActionPressed
	ActionReleased
)

// ButtonState turns a node into a button driven by the pointer. Sprites
// with frames show frame 0 when up and frame 1 when pressed; with three
// frames, frame 1 is the hover frame and frame 2 the pressed one.
type ButtonState struct {
	Enabled bool
	Status  ButtonStatus
	Action  ButtonAction

	OnPress   func(n *Node)
	OnRelease func(n *Node)
	OnOver    func(n *Node)
	OnOut     func(n *Node)
	OnTap     func(n *Node)

	pressed   bool
	hoverOver bool
	pointerID int
	owned     bool
}

// Pressed reports whether the button is held down.
func (b *ButtonState) Pressed() bool {
	return b.pressed
}

// Hovered reports whether a cursor is over the button.
func (b *ButtonState) Hovered() bool {
	return b.hoverOver
}

// MakeInteractive registers n as a button and returns its state for
// attaching callbacks.
func (r *Registry) MakeInteractive(n *Node) *ButtonState {
	if n.Button == nil {
		n.Button = &ButtonState{Enabled: true}
	}
	if n.memberships&memberButton == 0 {
		r.bind(n)
		n.memberships |= memberButton
		r.buttons = append(r.buttons, n)
	}
	return n.Button
}

// RemoveInteractive unregisters n as a button. Its state is kept.
func (r *Registry) RemoveInteractive(n *Node) {
	if n.memberships&memberButton != 0 {
		r.buttons = removeNode(r.buttons, n)
		n.memberships &^= memberButton
	}
}

// buttonActive reports whether any visible button is hovered or pressed.
func (r *Registry) buttonActive() bool {
	for _, n := range r.buttons {
		if n.Parent != nil && n.Visible() && n.Button.Status != ButtonUp {
			return true
		}
	}
	return false
}

func (r *Registry) tickButtons(p *Pointer) {
	for i := len(r.buttons) - 1; i >= 0; i-- {
		if i >= len(r.buttons) {
			continue
		}
		n := r.buttons[i]
		n.Button.update(n, p.Cursors())
	}
}

// update runs the button state machine against every cursor, newest first.
// A cursor that leaves or releases only resets the button when it is the
// cursor that pressed it or the only cursor.
func (b *ButtonState) update(n *Node, cursors []*Cursor) {
	if !n.Visible() || !b.Enabled {
		b.Status = ButtonUp
		b.Action = ActionNone
		return
	}
	frames := len(n.Frames)
	for i := len(cursors) - 1; i >= 0; i-- {
		c := cursors[i]
		owns := (b.owned && b.pointerID == c.ID) || len(cursors) == 1
		hit := HitTestPoint(c.Position, n, true)

		if c.IsUp && owns {
			b.Status = ButtonUp
			n.GotoFrame(0)
			b.owned = false
		}
		if hit {
			b.Status = ButtonOver
			if frames == 3 {
				n.GotoFrame(1)
			}
			if c.IsDown {
				b.Status = ButtonDown
				b.pointerID = c.ID
				b.owned = true
				if frames == 3 {
					n.GotoFrame(2)
				} else {
					n.GotoFrame(1)
				}
			}
		} else if owns {
			b.Status = ButtonUp
			b.pressed = false
			n.GotoFrame(0)
			b.owned = false
		}

		switch b.Status {
		case ButtonDown:
			if !b.pressed {
				if b.OnPress != nil {
					b.OnPress(n)
				}
				b.pressed = true
				b.Action = ActionPressed
			}
		case ButtonOver:
			if b.pressed {
				if b.OnRelease != nil {
					b.OnRelease(n)
				}
				b.pressed = false
				b.Action = ActionReleased
				if c.Tapped && b.OnTap != nil {
					b.OnTap(n)
				}
			}
			if !b.hoverOver {
				if b.OnOver != nil {
					b.OnOver(n)
				}
				b.hoverOver = true
			}
		case ButtonUp:
			if b.pressed {
				if b.OnRelease != nil {
					b.OnRelease(n)
				}
				b.pressed = false
				b.Action = ActionReleased
			}
			if b.hoverOver {
				if b.OnOut != nil {
					b.OnOut(n)
				}
				b.hoverOver = false
			}
		}
	}
}
