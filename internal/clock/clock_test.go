package clock

import (
	"testing"
	"time"

	"go-battle-city/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestAdvanceWholeTicks(t *testing.T) {
	s := NewStepper()
	ticks, alpha := s.Advance(FrameTime * 2)
	assert.Equal(t, 2, ticks)
	assert.Equal(t, 0.0, alpha)

	ticks, alpha = s.Advance(FrameTime / 2)
	assert.Equal(t, 0, ticks)
	assert.InDelta(t, 0.5, alpha, 1e-6)

	ticks, _ = s.Advance(FrameTime / 2)
	assert.Equal(t, 1, ticks)
}

func TestAdvanceCapsFrameSkip(t *testing.T) {
	s := NewStepper()
	ticks, alpha := s.Advance(time.Second)
	assert.Equal(t, config.MaxFrameSkip, ticks)
	assert.Less(t, s.Pending(), FrameTime, "хвост сверх лимита отброшен")
	assert.GreaterOrEqual(t, alpha, 0.0)
	assert.Less(t, alpha, 1.0)
}

func TestAdvanceIgnoresNegative(t *testing.T) {
	s := NewStepper()
	ticks, _ := s.Advance(-time.Second)
	assert.Equal(t, 0, ticks)
	assert.Equal(t, time.Duration(0), s.Pending())
}

func TestStepUsesClock(t *testing.T) {
	s := NewStepper()
	now := time.Unix(100, 0)
	s.SetClock(func() time.Time { return now })

	ticks, _ := s.Step()
	assert.Equal(t, 0, ticks, "первый вызов только запоминает время")

	now = now.Add(FrameTime * 3)
	ticks, _ = s.Step()
	assert.Equal(t, 3, ticks)
}
