package entity

import (
	"testing"

	"go-battle-city/internal/ai"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/input"
	"go-battle-city/internal/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type openField struct{ blocked bool }

func (f openField) CanOccupy(*Tank, types.Rect) bool { return !f.blocked }

type shotLog struct {
	shots  []types.Vector2
	owners []types.Owner
	powers []int
	refuse bool
}

func (s *shotLog) SpawnBullet(pos types.Vector2, _ types.Direction, owner types.Owner, power int) bool {
	if s.refuse {
		return false
	}
	s.shots = append(s.shots, pos)
	s.owners = append(s.owners, owner)
	s.powers = append(s.powers, power)
	return true
}

type worldStub struct {
	frozen  int
	cleared int
}

func (w *worldStub) FreezeEnemies(frames int) { w.frozen = frames }
func (w *worldStub) DestroyAllEnemies() int   { w.cleared++; return 0 }

func newPlayer() *PlayerTank {
	p := NewPlayerTank(0, types.FromPixels(80, 184), config.PlayerLives)
	p.Shield = false
	p.ShieldTimer = 0
	return p
}

func TestTankMoveAppliesVelocityOnlyWhenAllowed(t *testing.T) {
	p := newPlayer()
	p.SetDirection(types.DirLeft)
	start := p.Position

	assert.False(t, p.Move(openField{blocked: true}))
	assert.Equal(t, start, p.Position)

	assert.True(t, p.Move(openField{}))
	assert.Equal(t, start.X-defs.PlayerMoveSpeed, p.Position.X)
	assert.Equal(t, types.DirLeft, p.LastMoved)

	p.Stop()
	assert.False(t, p.Move(openField{}))
}

func TestWalkAnimationFlips(t *testing.T) {
	p := newPlayer()
	p.SetDirection(types.DirUp)
	for i := 0; i < config.WalkAnimFrames; i++ {
		p.Move(openField{})
	}
	assert.Equal(t, 1, p.AnimFrame)
}

func TestTakeDamageInvincibilityWindow(t *testing.T) {
	e := NewEnemyTank(defs.EnemyHeavy, types.FromPixels(20, 20))
	require.Equal(t, 2, e.Health)

	assert.True(t, e.TakeDamage(1))
	assert.True(t, e.Active)
	assert.True(t, e.Invincible)
	assert.Equal(t, config.InvincibilityFrames, e.InvincibleTimer)

	assert.False(t, e.TakeDamage(1), "неуязвим")
	assert.Equal(t, 1, e.Health)

	for i := 0; i < config.InvincibilityFrames; i++ {
		e.Tick()
	}
	assert.False(t, e.Invincible)
	assert.True(t, e.TakeDamage(1))
	assert.False(t, e.Active)
	assert.False(t, e.TakeDamage(1), "неактивный танк урон не получает")
}

func TestEnemySurvivingDamageSignalsEvade(t *testing.T) {
	e := NewEnemyTank(defs.EnemyHeavy, types.FromPixels(20, 20))
	e.TakeDamage(1)
	assert.True(t, e.evadeSignal)
}

func TestUpgradeCapsAtThree(t *testing.T) {
	p := newPlayer()
	for i := 0; i < 5; i++ {
		p.Upgrade()
	}
	assert.Equal(t, config.MaxUpgradeLevel, p.Level)
	assert.Equal(t, 6, p.Cooldown)
	assert.Equal(t, 3, p.BulletPower)
	assert.False(t, p.Upgrade())
}

func TestUpgradeRecomputesVelocityWhileMoving(t *testing.T) {
	e := NewEnemyTank(defs.EnemyFast, types.FromPixels(20, 20))
	e.SetDirection(types.DirRight)
	assert.Equal(t, types.Vector2{X: 384}, e.Velocity)
	e.Upgrade()
	assert.Equal(t, types.Vector2{X: 384}, e.Velocity, "статы врага не зависят от уровня")
}

func TestShootCooldownAndOffset(t *testing.T) {
	p := newPlayer()
	log := &shotLog{}

	assert.True(t, p.Shoot(log))
	require.Len(t, log.shots, 1)
	cx, _ := p.Center()
	assert.Equal(t, cx, log.shots[0].PixelX())
	assert.Equal(t, p.Bounds().Y-config.TankSize/2, log.shots[0].PixelY())
	assert.Equal(t, types.OwnerPlayer1, log.owners[0])
	assert.Equal(t, 1, log.powers[0])

	assert.False(t, p.Shoot(log), "перезарядка")
	for i := 0; i < p.Cooldown; i++ {
		p.Tick()
	}
	assert.True(t, p.Shoot(log))
	assert.Len(t, log.shots, 2)
}

func TestShootDeclinedStillCoolsDown(t *testing.T) {
	p := newPlayer()
	assert.False(t, p.Shoot(&shotLog{refuse: true}))
	assert.Equal(t, p.Cooldown, p.CooldownTimer)
}

func TestShootNotPermitted(t *testing.T) {
	p := newPlayer()
	p.CanShoot = false
	assert.False(t, p.Shoot(&shotLog{}))
	p.CanShoot = true
	p.Active = false
	assert.False(t, p.Shoot(&shotLog{}))
	p.Active = true
	assert.False(t, p.Shoot(nil))
	assert.Equal(t, 0, p.CooldownTimer)
}

func TestPlayerHandleInput(t *testing.T) {
	p := newPlayer()
	src := input.NewScript()
	src.Hold(input.ActionRight, 0)
	src.Hold(input.ActionShoot, 0)
	src.Hold(input.ActionUp, 1)
	src.Poll()

	log := &shotLog{}
	start := p.Position
	assert.True(t, p.HandleInput(src, openField{}, log))
	assert.Equal(t, types.DirRight, p.Direction)
	assert.Greater(t, p.Position.X, start.X)
	assert.Len(t, log.shots, 1)

	src.ReleaseAll()
	src.Poll()
	assert.False(t, p.HandleInput(src, openField{}, log))
	assert.True(t, p.Velocity.IsZero())
}

func TestShieldBlocksDamageAndExpires(t *testing.T) {
	p := newPlayer()
	p.ActivateShield(3)
	assert.False(t, p.TakeDamage(1))
	for i := 0; i < 3; i++ {
		p.Update()
	}
	assert.False(t, p.Shield)
	assert.True(t, p.TakeDamage(1))
	assert.False(t, p.Active)
}

func TestLoseLifeRespawns(t *testing.T) {
	p := newPlayer()
	p.Upgrade()
	p.Upgrade()
	p.Position = types.FromPixels(50, 50)
	p.AddScore(500)
	p.TakeDamage(1)

	assert.True(t, p.LoseLife())
	assert.Equal(t, 2, p.Lives)
	assert.True(t, p.Active)
	assert.Equal(t, 0, p.Level)
	assert.Equal(t, p.SpawnPoint, p.Position)
	assert.Equal(t, 500, p.Score)
	assert.True(t, p.Shield)
}

func TestLastLifeExhausts(t *testing.T) {
	p := NewPlayerTank(1, types.FromPixels(144, 184), 1)
	p.Shield = false
	p.TakeDamage(1)
	assert.False(t, p.LoseLife())
	assert.True(t, p.IsExhausted())
	assert.Equal(t, types.OwnerPlayer2, p.Owner)
}

func TestCalculateEnemyScore(t *testing.T) {
	p := newPlayer()
	assert.Equal(t, 100, p.CalculateEnemyScore(defs.EnemyBasic))
	assert.Equal(t, 400, p.CalculateEnemyScore(defs.EnemyElite))
	p.Upgrade()
	p.Upgrade()
	assert.Equal(t, 900, p.CalculateEnemyScore(defs.EnemyHeavy))
}

func TestBulletInitClampsPower(t *testing.T) {
	var b Bullet
	b.Init(types.FromPixels(10, 10), types.DirUp, types.OwnerEnemy, 0)
	assert.Equal(t, 1, b.Power)
	assert.Equal(t, int32(384), b.Speed)
	assert.Equal(t, config.BulletLifetime, b.Lifetime)

	b.Init(types.FromPixels(10, 10), types.DirUp, types.OwnerEnemy, 9)
	assert.Equal(t, 3, b.Power)
	assert.Equal(t, int32(512), b.Speed)
}

func TestBulletLifetimeExpires(t *testing.T) {
	var b Bullet
	b.Init(types.FromPixels(100, 100), types.DirDown, types.OwnerPlayer1, 1)
	b.SetLifetime(2)
	b.Update()
	assert.True(t, b.Active)
	assert.Equal(t, 101, b.Position.PixelY())
	b.Update()
	assert.False(t, b.Active)
}

func TestPowerUpLifetimeAndAnimation(t *testing.T) {
	u := NewPowerUp(types.FromPixels(60, 60), defs.PowerUpShield)
	for i := 0; i < config.PowerUpAnimFrames; i++ {
		u.Update()
	}
	assert.Equal(t, 1, u.AnimFrame)
	for u.Active {
		u.Update()
	}
	assert.Equal(t, 0, u.Lifetime)
	assert.Equal(t, types.Rect{X: 56, Y: 56, W: 8, H: 8}, u.Bounds())
}

func TestPowerUpEffects(t *testing.T) {
	w := &worldStub{}

	p := newPlayer()
	NewPowerUp(types.Vector2{}, defs.PowerUpTankUpgrade).Activate(w, p)
	assert.Equal(t, 1, p.Level)

	NewPowerUp(types.Vector2{}, defs.PowerUpExtraLife).Activate(w, p)
	assert.Equal(t, config.PlayerLives+1, p.Lives)

	NewPowerUp(types.Vector2{}, defs.PowerUpShield).Activate(w, p)
	assert.True(t, p.Shield)
	assert.Equal(t, config.ShieldFrames, p.ShieldTimer)

	NewPowerUp(types.Vector2{}, defs.PowerUpTimerBomb).Activate(w, p)
	assert.Equal(t, config.FreezeFrames, w.frozen)

	u := NewPowerUp(types.Vector2{}, defs.PowerUpClearEnemies)
	u.Activate(w, p)
	assert.Equal(t, 1, w.cleared)
	assert.False(t, u.Active)
	assert.NotNil(t, u.Icon())
}

func TestEnemyThinkUsesAI(t *testing.T) {
	e := NewEnemyTank(defs.EnemyBasic, types.FromPixels(100, 100))
	rng := fixedRNG{}
	e.Think(openField{}, &shotLog{}, ai.Target{}, rng)
	assert.Equal(t, ai.StateIdle, e.AI.State())
	assert.NotEqual(t, types.FromPixels(100, 100), e.Position)

	e.Freeze(10)
	assert.True(t, e.Frozen())
	pos := e.Position
	e.Think(openField{}, &shotLog{}, ai.Target{}, rng)
	assert.Equal(t, pos, e.Position)

	e.Destroy()
	assert.False(t, e.Active)
}

type fixedRNG struct{}

func (fixedRNG) Range(min, _ int) int       { return min }
func (fixedRNG) Chance(int) bool            { return false }
func (fixedRNG) Direction() types.Direction { return types.DirRight }
