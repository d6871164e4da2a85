package entity

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/input"
	"go-battle-city/internal/types"
)

// PlayerTank танк игрока
type PlayerTank struct {
	Tank
	Index       int
	Lives       int
	Score       int
	Shield      bool
	ShieldTimer int
	SpawnPoint  types.Vector2
}

// NewPlayerTank создаёт танк игрока index в точке spawn со щитом появления
func NewPlayerTank(index int, spawn types.Vector2, lives int) *PlayerTank {
	p := &PlayerTank{
		Tank:       newTank(spawn, types.DirUp, types.OwnerForPlayer(index), defs.PlayerStats),
		Index:      index,
		Lives:      lives,
		SpawnPoint: spawn,
	}
	p.ActivateShield(config.SpawnShieldFrames)
	return p
}

// HandleInput переводит состояние действий в движение и выстрел.
// При нескольких нажатых направлениях приоритет вверх, вниз, влево, вправо.
func (p *PlayerTank) HandleInput(src input.Source, checker MoveChecker, spawner BulletSpawner) bool {
	if !p.Active || src == nil {
		return false
	}
	dir := types.DirNone
	switch {
	case src.IsPressed(input.ActionUp, p.Index):
		dir = types.DirUp
	case src.IsPressed(input.ActionDown, p.Index):
		dir = types.DirDown
	case src.IsPressed(input.ActionLeft, p.Index):
		dir = types.DirLeft
	case src.IsPressed(input.ActionRight, p.Index):
		dir = types.DirRight
	}

	moved := false
	if dir != types.DirNone {
		p.SetDirection(dir)
		moved = p.Move(checker)
	} else {
		p.Stop()
	}
	if src.IsPressed(input.ActionShoot, p.Index) {
		p.Shoot(spawner)
	}
	return moved
}

// Update счётчики танка и щита
func (p *PlayerTank) Update() {
	p.Tick()
	if p.Shield {
		p.ShieldTimer--
		if p.ShieldTimer <= 0 {
			p.ShieldTimer = 0
			p.Shield = false
		}
	}
}

// TakeDamage щит поглощает любой урон
func (p *PlayerTank) TakeDamage(n int) bool {
	if p.Shield {
		return false
	}
	return p.Tank.TakeDamage(n)
}

// ActivateShield неуязвимость на frames тиков
func (p *PlayerTank) ActivateShield(frames int) {
	p.Shield = true
	if frames > p.ShieldTimer {
		p.ShieldTimer = frames
	}
}

func (p *PlayerTank) AddScore(points int) {
	p.Score += points
}

func (p *PlayerTank) GainLife() {
	p.Lives++
}

// LoseLife снимает жизнь; если жизни остались, возрождает танк в точке
// появления с нулевым уровнем. Возвращает true при возрождении.
func (p *PlayerTank) LoseLife() bool {
	if p.Lives > 0 {
		p.Lives--
	}
	if p.Lives <= 0 {
		p.Active = false
		return false
	}
	p.Respawn()
	return true
}

// Respawn возвращает танк в исходное состояние без изменения жизней и очков
func (p *PlayerTank) Respawn() {
	p.Position = p.SpawnPoint
	p.Direction = types.DirUp
	p.LastMoved = types.DirUp
	p.Velocity = types.Vector2{}
	p.Level = 0
	p.applyStats()
	p.Health = p.MaxHealth
	p.Active = true
	p.Invincible = false
	p.InvincibleTimer = 0
	p.CooldownTimer = 0
	p.ActivateShield(config.SpawnShieldFrames)
}

// IsExhausted true, когда жизней не осталось
func (p *PlayerTank) IsExhausted() bool {
	return p.Lives <= 0 && !p.Active
}

// CalculateEnemyScore очки за врага: базовые очки вида × (уровень + 1)
func (p *PlayerTank) CalculateEnemyScore(t defs.EnemyType) int {
	return defs.Enemy(t).BaseScore * (p.Level + 1)
}
