package inks

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDraggableToggle(t *testing.T) {
	r := NewRegistry(1)
	n := NewRectangle("card", 10, 10)

	r.SetDraggable(n, true)
	require.NotNil(t, n.Drag)
	assert.True(t, n.Drag.Horizontal)
	assert.True(t, n.Drag.Vertical)
	assert.True(t, n.Drag.Focus)
	assert.Equal(t, []*Node{n}, r.Draggables())

	r.SetDraggable(n, true)
	assert.Len(t, r.Draggables(), 1, "registering twice is a no-op")

	r.SetDraggable(n, false)
	assert.Empty(t, r.Draggables())
	assert.NotNil(t, n.Drag, "drag settings survive")

	n.Drag.Vertical = false
	r.SetDraggable(n, true)
	assert.False(t, n.Drag.Vertical, "existing settings are reused")
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry(1)
	a := NewRectangle("a", 10, 10)
	b := NewRectangle("b", 10, 10)
	r.SetDraggable(a, true)
	r.MakeInteractive(b)
	r.Shake(b, 4, 2, false)
	r.AddTween(tickerFunc(func(time.Duration) bool { return false }))
	r.AddEmitter(tickerFunc(func(time.Duration) bool { return false }))

	r.Clear()

	assert.Empty(t, r.Draggables())
	assert.Empty(t, r.Buttons())
	assert.Empty(t, r.Shakers())
	assert.Zero(t, r.NumTweens())
	assert.Zero(t, r.NumEmitters())
	assert.False(t, b.Shaking())
	assert.Nil(t, a.registry)
}

func TestRegistryRebindMovesNode(t *testing.T) {
	r1, r2 := NewRegistry(1), NewRegistry(2)
	n := NewRectangle("n", 10, 10)

	r1.SetDraggable(n, true)
	r2.MakeInteractive(n)

	assert.Empty(t, r1.Draggables(), "old registry forgets the node")
	assert.Equal(t, []*Node{n}, r2.Buttons())
	assert.Same(t, r2, n.registry)
}

func TestRemoveChildUnregistersEverywhere(t *testing.T) {
	r := NewRegistry(1)
	root := NewContainer("root")
	n := NewRectangle("n", 10, 10)
	root.AddChild(n)
	r.SetDraggable(n, true)
	r.MakeInteractive(n)
	r.AddParticle(n, ParticleState{AlphaSpeed: 0.9})
	r.Shake(n, 10, 4, false)
	require.True(t, n.Shaking())

	require.NoError(t, root.RemoveChild(n))

	assert.Empty(t, r.Draggables())
	assert.Empty(t, r.Buttons())
	assert.Empty(t, r.Particles())
	assert.Empty(t, r.Shakers())
	assert.False(t, n.Shaking())
}

func TestTickTasksDropsFinished(t *testing.T) {
	var ticks []int
	mk := func(id, life int) Ticker {
		left := life
		return tickerFunc(func(time.Duration) bool {
			ticks = append(ticks, id)
			left--
			return left <= 0
		})
	}
	r := NewRegistry(1)
	r.AddTween(mk(1, 1))
	r.AddTween(mk(2, 2))

	r.tickTweens(time.Millisecond)
	assert.Equal(t, 1, r.NumTweens())
	r.tickTweens(time.Millisecond)
	assert.Zero(t, r.NumTweens())
	assert.Equal(t, []int{1, 2, 2}, ticks)
}

func TestTasksAddedDuringTickAreKept(t *testing.T) {
	r := NewRegistry(1)
	var child bool
	r.AddTween(tickerFunc(func(time.Duration) bool {
		r.AddTween(tickerFunc(func(time.Duration) bool {
			child = true
			return true
		}))
		return true
	}))
	r.AddEmitter(tickerFunc(func(time.Duration) bool {
		r.AddEmitter(tickerFunc(func(time.Duration) bool { return false }))
		return true
	}))

	r.tickTweens(time.Millisecond)
	r.tickEmitters(time.Millisecond)
	assert.Equal(t, 1, r.NumTweens())
	assert.Equal(t, 1, r.NumEmitters())
	assert.False(t, child, "new tasks start on the next tick")

	r.tickTweens(time.Millisecond)
	assert.True(t, child)
	assert.Zero(t, r.NumTweens())
}

func TestRemoveNodeKeepsOrder(t *testing.T) {
	a, b, c := NewContainer("a"), NewContainer("b"), NewContainer("c")
	list := []*Node{a, b, c}
	backing := list

	list = removeNode(list, b)
	assert.Equal(t, []*Node{a, c}, list)
	assert.Nil(t, backing[2], "tail slot is cleared")
	assert.Equal(t, list, removeNode(list, b), "missing node is ignored")
}

func TestRegistrySeedIsDeterministic(t *testing.T) {
	a, b := NewRegistry(42), NewRegistry(42)
	for i := 0; i < 5; i++ {
		assert.Equal(t, a.Rand().Uint64(), b.Rand().Uint64())
	}
}

func TestClearDuringTickDropsRunningTasks(t *testing.T) {
	r := NewRegistry(1)
	ticks := 0
	r.AddTween(tickerFunc(func(time.Duration) bool { ticks++; return false }))
	var late Ticker = tickerFunc(func(time.Duration) bool { return false })
	r.AddTween(tickerFunc(func(time.Duration) bool {
		r.Clear()
		r.AddTween(late)
		return false
	}))

	r.tickTweens(time.Millisecond)

	assert.Equal(t, 1, ticks)
	assert.Equal(t, 1, r.NumTweens(), "only the task added after Clear survives")
	r.tickTweens(time.Millisecond)
	assert.Equal(t, 1, ticks, "cleared tasks are not ticked again")
}
