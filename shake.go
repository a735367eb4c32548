package inks

// ShakeState is a decaying shake applied to a node. A linear shake jitters
// the position; an angular shake tilts the rotation back and forth. The
// node returns to its starting position and rotation when done.
type ShakeState struct {
	Shakes    int
	Magnitude float64
	Angular   bool

	counter    int
	unit       float64
	tilt       float64
	start      Vec2
	startAngle float64
}

// Shake starts shaking n for shakes ticks with the given starting
// magnitude, in pixels for a linear shake or radians for an angular one.
// A node already shaking keeps its current shake.
func (r *Registry) Shake(n *Node, shakes int, magnitude float64, angular bool) *ShakeState {
	if n.memberships&memberShake != 0 {
		return n.Shake
	}
	if shakes <= 0 {
		shakes = 1
	}
	n.Shake = &ShakeState{
		Shakes:     shakes,
		Magnitude:  magnitude,
		Angular:    angular,
		counter:    1,
		unit:       magnitude / float64(shakes),
		tilt:       1,
		start:      n.Position,
		startAngle: n.rotation,
	}
	r.bind(n)
	n.memberships |= memberShake
	r.shakers = append(r.shakers, n)
	return n.Shake
}

// Shaking reports whether the node has a shake in progress.
func (n *Node) Shaking() bool {
	return n.memberships&memberShake != 0
}

func (r *Registry) tickShakes() {
	for i := len(r.shakers) - 1; i >= 0; i-- {
		if i >= len(r.shakers) {
			continue
		}
		n := r.shakers[i]
		if n.Shake.step(n, r) {
			r.shakers = removeNode(r.shakers, n)
			n.memberships &^= memberShake
		}
	}
}

// step advances the shake by one tick and reports whether it finished.
func (s *ShakeState) step(n *Node, r *Registry) bool {
	if s.counter < s.Shakes {
		s.Magnitude -= s.unit
		if s.Angular {
			n.SetRotation(s.Magnitude * s.tilt)
			s.tilt = -s.tilt
		} else {
			m := int(s.Magnitude)
			n.Position = s.start.Add(Vec2{
				float64(RandomInt(r.rng, -m, m)),
				float64(RandomInt(r.rng, -m, m)),
			})
		}
		s.counter++
	}
	if s.counter < s.Shakes {
		return false
	}
	if s.Angular {
		n.SetRotation(s.startAngle)
	} else {
		n.Position = s.start
	}
	return true
}
