package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInputLevelTriggeredMovement(t *testing.T) {
	in := NewInput(nil)

	in.Press("left")
	assert.True(t, in.Snapshot().Left)
	assert.False(t, in.Snapshot().Right)

	// Held keys survive the per-tick clear
	in.ClearJustPressed()
	assert.True(t, in.Snapshot().Left)

	in.Release("left")
	assert.False(t, in.Snapshot().Left)

	in.Press("D")
	assert.True(t, in.Snapshot().Right, "bindings should be case-insensitive")
	in.Press(" ")
	assert.True(t, in.Snapshot().Shoot)
}

func TestInputEdgeTriggeredPause(t *testing.T) {
	in := NewInput(nil)

	in.Press("p")
	assert.True(t, in.Snapshot().Pause)
	assert.True(t, in.WasJustPressed("p"))

	in.ClearJustPressed()
	assert.False(t, in.Snapshot().Pause, "pause must only last one tick")
	assert.True(t, in.IsPressed("p"))

	// Key repeat while held is not a new edge
	in.Press("p")
	assert.False(t, in.Snapshot().Pause)

	in.Release("p")
	in.Press("p")
	assert.True(t, in.Snapshot().Pause)
}

func TestInputEdgePersistsWithoutClear(t *testing.T) {
	in := NewInput(nil)
	in.Press("m")

	// Without ClearJustPressed the edge remains visible on later ticks
	for range 3 {
		assert.True(t, in.Snapshot().Mute)
	}
}

func TestInputSetInputOverride(t *testing.T) {
	in := NewInput(nil)
	in.Press("a")

	in.SetInput(IntentPatch{Shoot: Bool(true), Left: Bool(false)})
	snap := in.Snapshot()
	assert.True(t, snap.Shoot)
	assert.False(t, snap.Left)
	assert.False(t, snap.Right, "unset fields are untouched")

	// Next key event recomputes from the keyboard
	in.Press("d")
	snap = in.Snapshot()
	assert.True(t, snap.Left)
	assert.True(t, snap.Right)
	assert.False(t, snap.Shoot)
}

func TestInputClear(t *testing.T) {
	in := NewInput(nil)
	in.Press("a")
	in.Press("p")
	in.Clear()

	assert.Equal(t, Intent{}, in.Snapshot())
	assert.False(t, in.IsPressed("a"))
	assert.False(t, in.WasJustPressed("p"))
}

func TestInputCustomBindings(t *testing.T) {
	in := NewInput(Bindings{ActionShoot: {"k"}})
	in.Press(" ")
	assert.False(t, in.Snapshot().Shoot)
	in.Press("k")
	assert.True(t, in.Snapshot().Shoot)
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "Shoot", ActionShoot.String())
	assert.Equal(t, "Unknown", Action(99).String())
}
