package inks

import "github.com/hajimehoshi/ebiten/v2"

// Keyboard watches a set of keys as one logical key. It goes down when any
// of them is pressed and up when one is released. An empty set matches
// every key. Register it with Registry.AddKeyboard to have the engine feed
// it from the device each tick.
type Keyboard struct {
	Keys []ebiten.Key

	// OnPress runs when a matching key goes down while the keyboard is up.
	OnPress func(key ebiten.Key)
	// OnRelease runs on every matching key release.
	OnRelease func(key ebiten.Key)

	down bool
}

// NewKeyboard creates a keyboard for keys.
func NewKeyboard(keys ...ebiten.Key) *Keyboard {
	return &Keyboard{Keys: keys}
}

// IsDown reports whether a matching key is held.
func (k *Keyboard) IsDown() bool { return k.down }

// IsUp reports whether no matching key is held.
func (k *Keyboard) IsUp() bool { return !k.down }

// Matches reports whether key belongs to the keyboard's set.
func (k *Keyboard) Matches(key ebiten.Key) bool {
	if len(k.Keys) == 0 {
		return true
	}
	for _, want := range k.Keys {
		if want == key {
			return true
		}
	}
	return false
}

// Press records key going down.
func (k *Keyboard) Press(key ebiten.Key) {
	if !k.Matches(key) {
		return
	}
	if !k.down && k.OnPress != nil {
		k.OnPress(key)
	}
	k.down = true
}

// Release records key going up.
func (k *Keyboard) Release(key ebiten.Key) {
	if !k.Matches(key) {
		return
	}
	if k.OnRelease != nil {
		k.OnRelease(key)
	}
	k.down = false
}

// AddKeyboard registers k for device key events. Keyboards are dropped with
// the rest of the registry when the scene changes.
func (r *Registry) AddKeyboard(k *Keyboard) {
	for _, have := range r.keyboards {
		if have == k {
			return
		}
	}
	r.keyboards = append(r.keyboards, k)
}

// RemoveKeyboard stops feeding k. Unknown keyboards are ignored.
func (r *Registry) RemoveKeyboard(k *Keyboard) {
	for i, have := range r.keyboards {
		if have == k {
			copy(r.keyboards[i:], r.keyboards[i+1:])
			r.keyboards[len(r.keyboards)-1] = nil
			r.keyboards = r.keyboards[:len(r.keyboards)-1]
			return
		}
	}
}

// Keyboards returns the registered keyboards.
func (r *Registry) Keyboards() []*Keyboard { return r.keyboards }

// feedKeys hands one tick's key transitions to every registered keyboard,
// presses first.
func (r *Registry) feedKeys(pressed, released []ebiten.Key) {
	for _, key := range pressed {
		for _, k := range r.keyboards {
			k.Press(key)
		}
	}
	for _, key := range released {
		for _, k := range r.keyboards {
			k.Release(key)
		}
	}
}
