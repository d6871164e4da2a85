package defs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlayerStatsByLevel(t *testing.T) {
	cases := []struct {
		level    int
		cooldown int
		power    int
		speed    int32
	}{
		{0, 15, 1, 384},
		{1, 12, 2, 448},
		{2, 9, 3, 512},
		{3, 6, 3, 512},
		{9, 6, 3, 512},
	}
	for _, c := range cases {
		s := PlayerStats(c.level)
		assert.Equal(t, c.cooldown, s.Cooldown, "level %d", c.level)
		assert.Equal(t, c.power, s.BulletPower, "level %d", c.level)
		assert.Equal(t, c.speed, s.BulletSpeed, "level %d", c.level)
		assert.Equal(t, int32(PlayerMoveSpeed), s.MoveSpeed)
	}
}

func TestEnemyStats(t *testing.T) {
	assert.Equal(t, 1, Enemy(EnemyBasic).Health)
	assert.Equal(t, int32(384), Enemy(EnemyFast).MoveSpeed)
	assert.Equal(t, 2, Enemy(EnemyHeavy).Health)
	assert.Equal(t, 60, Enemy(EnemyElite).Cooldown)
	assert.Equal(t, 96, Enemy(EnemyElite).AI.SightRange)
	assert.Equal(t, 400, Enemy(EnemyElite).BaseScore)
	assert.Equal(t, "BASIC", Enemy(EnemyType(42)).ID)
}

func TestBulletSpeedForPower(t *testing.T) {
	assert.Equal(t, int32(384), BulletSpeedForPower(0))
	assert.Equal(t, int32(384), BulletSpeedForPower(1))
	assert.Equal(t, int32(448), BulletSpeedForPower(2))
	assert.Equal(t, int32(512), BulletSpeedForPower(7))
}

func TestPatternForLevel(t *testing.T) {
	assert.Equal(t, SpawnPattern{EnemyBasic, EnemyBasic, EnemyBasic, EnemyFast}, PatternForLevel(1))
	assert.Equal(t, SpawnPattern{EnemyBasic, EnemyBasic, EnemyBasic, EnemyFast}, PatternForLevel(9))
	assert.Equal(t, SpawnPattern{EnemyBasic, EnemyBasic, EnemyFast, EnemyHeavy}, PatternForLevel(10))
	assert.Equal(t, SpawnPattern{EnemyBasic, EnemyBasic, EnemyFast, EnemyHeavy}, PatternForLevel(19))
	assert.Equal(t, SpawnPattern{EnemyBasic, EnemyFast, EnemyHeavy, EnemyElite}, PatternForLevel(20))
	assert.Equal(t, EnemyFast, EnemyForSpawn(1, 3))
	assert.Equal(t, EnemyBasic, EnemyForSpawn(1, 4))
	assert.Equal(t, EnemyElite, EnemyForSpawn(35, 7))
}

func TestLootWeights(t *testing.T) {
	total := 0
	for _, e := range PowerUpLoot {
		total += e.Weight
	}
	assert.Equal(t, 100, total)
}

func TestLoadEnemyDefinitions(t *testing.T) {
	t.Cleanup(func() { EnemyLibrary = DefaultEnemyLibrary() })

	path := filepath.Join(t.TempDir(), "enemies.json")
	data := `[{"id": "FAST", "health": 3, "move_speed": 500, "cooldown": 30, "bullet_power": 9, "base_score": 250,
		"ai": {"sight_range": 80, "direction_interval": 100, "chase_timeout": 200, "evade_duration": 10, "fire_chance": 50}}]`
	require.NoError(t, os.WriteFile(path, []byte(data), 0644))

	n, err := LoadEnemyDefinitions(path)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	fast := Enemy(EnemyFast)
	assert.Equal(t, 3, fast.Health)
	assert.Equal(t, 3, fast.BulletPower)
	assert.Equal(t, 80, fast.AI.SightRange)
	assert.Equal(t, 1, Enemy(EnemyBasic).Health)
}

func TestLoadEnemyDefinitionsErrors(t *testing.T) {
	t.Cleanup(func() { EnemyLibrary = DefaultEnemyLibrary() })
	dir := t.TempDir()

	_, err := LoadEnemyDefinitions(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`[{"id": "BOSS", "health": 1, "cooldown": 1}]`), 0644))
	_, err = LoadEnemyDefinitions(bad)
	assert.Error(t, err)
	assert.Equal(t, "BASIC", Enemy(EnemyBasic).ID)
}

func TestParseEnemyType(t *testing.T) {
	et, err := ParseEnemyType("HEAVY")
	require.NoError(t, err)
	assert.Equal(t, EnemyHeavy, et)
	_, err = ParseEnemyType("heavy")
	assert.Error(t, err)
}
