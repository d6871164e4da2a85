package utils

import (
	"testing"

	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"

	"github.com/stretchr/testify/assert"
)

func TestNextGoldenValues(t *testing.T) {
	rng := NewPRNGService(0x12345678)
	assert.Equal(t, 2929, rng.Next())
	assert.Equal(t, uint32(0x0B719151), rng.Seed())
	assert.Equal(t, 28487, rng.Next())
	assert.Equal(t, 11805, rng.Next())

	zero := NewPRNGService(0)
	assert.Equal(t, 0, zero.Next())
}

func TestSameSeedSameSequence(t *testing.T) {
	a := NewPRNGService(777)
	b := NewPRNGService(777)
	for i := 0; i < 1000; i++ {
		assert.Equal(t, a.Range(-50, 50), b.Range(-50, 50))
	}

	b.SetSeed(777)
	a.SetSeed(777)
	assert.Equal(t, a.Next(), b.Next())
}

func TestRangeBounds(t *testing.T) {
	rng := NewPRNGService(1)
	for i := 0; i < 5000; i++ {
		v := rng.Range(-10, 10)
		assert.GreaterOrEqual(t, v, -10)
		assert.LessOrEqual(t, v, 10)
	}
	assert.Equal(t, 5, rng.Range(5, 5))
	assert.Equal(t, 5, rng.Range(5, 1))
	assert.Equal(t, 0, rng.Intn(0))
}

func TestChanceExtremes(t *testing.T) {
	rng := NewPRNGService(99)
	for i := 0; i < 200; i++ {
		assert.False(t, rng.Chance(0))
		assert.True(t, rng.Chance(100))
	}
}

func TestFloat64Range(t *testing.T) {
	rng := NewPRNGService(3)
	for i := 0; i < 1000; i++ {
		f := rng.Float64()
		assert.GreaterOrEqual(t, f, 0.0)
		assert.Less(t, f, 1.0)
	}
}

func TestDirectionCoversCardinals(t *testing.T) {
	rng := NewPRNGService(0x12345678)
	seen := map[types.Direction]bool{}
	for i := 0; i < 200; i++ {
		seen[rng.Direction()] = true
	}
	assert.Len(t, seen, 4)
	assert.False(t, seen[types.DirNone])
}

func TestChooseWeighted(t *testing.T) {
	rng := NewPRNGService(5)
	assert.Equal(t, defs.PowerUpTankUpgrade, rng.ChooseWeighted(nil))

	only := []defs.LootEntry{{PowerUp: defs.PowerUpShield, Weight: 0}, {PowerUp: defs.PowerUpExtraLife, Weight: 10}}
	for i := 0; i < 50; i++ {
		assert.Equal(t, defs.PowerUpExtraLife, rng.ChooseWeighted(only))
	}

	counts := map[defs.PowerUpType]int{}
	for i := 0; i < 10000; i++ {
		counts[rng.ChooseWeighted(defs.PowerUpLoot)]++
	}
	assert.Len(t, counts, 5)
	assert.Greater(t, counts[defs.PowerUpTankUpgrade], counts[defs.PowerUpTimerBomb])
}
