package input

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
)

func TestTerminalHoldWindow(t *testing.T) {
	now := time.Unix(1000, 0)
	term := NewTerminal()
	term.SetClock(func() time.Time { return now })

	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyUp, 0, tcell.ModNone)))
	term.Poll()
	assert.True(t, term.IsJustPressed(ActionUp, 0))

	now = now.Add(100 * time.Millisecond)
	term.Poll()
	assert.True(t, term.IsPressed(ActionUp, 0))
	assert.False(t, term.IsJustPressed(ActionUp, 0))

	now = now.Add(100 * time.Millisecond)
	term.Poll()
	assert.True(t, term.IsJustReleased(ActionUp, 0))
}

func TestTerminalMapping(t *testing.T) {
	term := NewTerminal()
	assert.True(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'f', tcell.ModNone)))
	term.Poll()
	assert.True(t, term.IsPressed(ActionShoot, 1))

	assert.False(t, term.HandleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	assert.False(t, term.HandleEvent(tcell.NewEventResize(80, 24)))
}
