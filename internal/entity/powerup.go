package entity

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/interfaces"
	"go-battle-city/internal/types"
)

// PowerUp бонус на поле; Position хранит центр
type PowerUp struct {
	Position  types.Vector2
	Kind      defs.PowerUpType
	Active    bool
	Lifetime  int
	AnimFrame int
	animTimer int
}

type powerUpEffect func(ctx interfaces.GameContext, p *PlayerTank)

// powerUpEffects действие каждого вида бонуса
var powerUpEffects = map[defs.PowerUpType]powerUpEffect{
	defs.PowerUpTankUpgrade: func(_ interfaces.GameContext, p *PlayerTank) {
		p.Upgrade()
	},
	defs.PowerUpExtraLife: func(_ interfaces.GameContext, p *PlayerTank) {
		p.GainLife()
	},
	defs.PowerUpShield: func(_ interfaces.GameContext, p *PlayerTank) {
		p.ActivateShield(config.ShieldFrames)
	},
	defs.PowerUpTimerBomb: func(ctx interfaces.GameContext, _ *PlayerTank) {
		if ctx != nil {
			ctx.FreezeEnemies(config.FreezeFrames)
		}
	},
	defs.PowerUpClearEnemies: func(ctx interfaces.GameContext, _ *PlayerTank) {
		if ctx != nil {
			ctx.DestroyAllEnemies()
		}
	},
}

// NewPowerUp создаёт активный бонус с центром в pos
func NewPowerUp(pos types.Vector2, kind defs.PowerUpType) *PowerUp {
	return &PowerUp{
		Position: pos,
		Kind:     kind,
		Active:   true,
		Lifetime: config.PowerUpLifetime,
	}
}

// Update время жизни и анимация
func (u *PowerUp) Update() {
	if !u.Active {
		return
	}
	u.animTimer++
	if u.animTimer >= config.PowerUpAnimFrames {
		u.animTimer = 0
		u.AnimFrame = (u.AnimFrame + 1) % config.PowerUpAnimPhases
	}
	u.Lifetime--
	if u.Lifetime <= 0 {
		u.Active = false
	}
}

func (u *PowerUp) Center() (int, int) {
	return u.Position.PixelX(), u.Position.PixelY()
}

func (u *PowerUp) Bounds() types.Rect {
	cx, cy := u.Center()
	return types.CenteredRect(cx, cy, config.PowerUpSize, config.PowerUpSize)
}

// Activate применяет эффект к игроку и деактивирует бонус
func (u *PowerUp) Activate(ctx interfaces.GameContext, p *PlayerTank) {
	if effect, ok := powerUpEffects[u.Kind]; ok && p != nil {
		effect(ctx, p)
	}
	u.Active = false
}

// Icon картинка 8×8 для вида бонуса
func (u *PowerUp) Icon() *[64]uint8 {
	return PowerUpIcon(u.Kind)
}
