package main

import (
	"testing"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runQuiet(seed uint32, ticks, players int) runStats {
	return runGame(1, seed, ticks, players, config.Default().Rules, app.Deps{Logger: zerolog.Nop()})
}

func TestRunGameIsDeterministic(t *testing.T) {
	a := runQuiet(7, 2000, 1)
	b := runQuiet(7, 2000, 1)
	assert.Equal(t, a.stats, b.stats)
	assert.Equal(t, a.scores, b.scores)
	assert.Equal(t, a.outcome, b.outcome)
}

func TestRunGameRespectsTickBudget(t *testing.T) {
	rs := runQuiet(config.DefaultSeed, 300, 2)
	assert.LessOrEqual(t, rs.ticks, uint64(300))
	require.Len(t, rs.scores, 2)
	assert.Equal(t, 1, rs.events[event.LevelStarted])
	assert.Greater(t, rs.stats.Shots, 0)
	if rs.outcome == outcomeTimeout {
		assert.Equal(t, uint64(300), rs.ticks)
	}
}

func TestFormatEvents(t *testing.T) {
	assert.Equal(t, "none", formatEvents(nil))
	got := formatEvents(map[event.EventType]int{event.GameOver: 1, event.BulletFired: 12})
	assert.Equal(t, "BulletFired=12 GameOver=1", got)
}

func TestBotHoldsOneHeading(t *testing.T) {
	b := newBot(1, 1)
	for tick := 0; tick < botTurnEvery*3; tick++ {
		b.step(tick)
		held := 0
		for _, a := range []input.Action{input.ActionUp, input.ActionDown, input.ActionLeft, input.ActionRight} {
			if b.script.IsPressed(a, 0) {
				held++
			}
		}
		require.Equal(t, 1, held, "tick %d", tick)
	}
	assert.False(t, b.script.IsPressed(input.ActionUp, 1), "второй игрок не управляется")
}
