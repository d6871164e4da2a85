package input

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotEdges(t *testing.T) {
	var s Snapshot
	s.Set(ActionShoot, 0, true)
	assert.True(t, s.IsPressed(ActionShoot, 0))
	assert.True(t, s.IsJustPressed(ActionShoot, 0))
	assert.False(t, s.IsPressed(ActionShoot, 1))

	s.Advance()
	assert.True(t, s.IsPressed(ActionShoot, 0))
	assert.False(t, s.IsJustPressed(ActionShoot, 0))

	s.Advance()
	s.Set(ActionShoot, 0, false)
	assert.True(t, s.IsJustReleased(ActionShoot, 0))
}

func TestSnapshotIgnoresInvalid(t *testing.T) {
	var s Snapshot
	s.Set(ActionUp, 5, true)
	s.Set(Action(99), 0, true)
	assert.False(t, s.IsPressed(ActionUp, 5))
	assert.False(t, s.IsPressed(Action(99), 0))
	assert.False(t, s.IsJustPressed(Action(-1), 0))
}

func TestScriptFramesAndHold(t *testing.T) {
	s := NewScript(Tap(ActionStart, 0), nil, Tap(ActionShoot, 1))
	s.Hold(ActionUp, 0)

	s.Poll()
	assert.True(t, s.IsJustPressed(ActionStart, 0))
	assert.True(t, s.IsPressed(ActionUp, 0))
	assert.True(t, AnyJustPressed(s, ActionStart))

	s.Poll()
	assert.True(t, s.IsJustReleased(ActionStart, 0))
	assert.True(t, s.IsPressed(ActionUp, 0))
	assert.False(t, s.IsJustPressed(ActionUp, 0))

	s.Release(ActionUp, 0)
	s.Poll()
	assert.True(t, s.IsJustPressed(ActionShoot, 1))
	assert.True(t, s.IsJustReleased(ActionUp, 0))
	assert.True(t, s.Done())

	s.Queue(Idle(2)...)
	assert.False(t, s.Done())
}

func TestActionString(t *testing.T) {
	assert.Equal(t, "SHOOT", ActionShoot.String())
	assert.Equal(t, "UNKNOWN", Action(42).String())
}
