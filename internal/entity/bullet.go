package entity

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

// Bullet снаряд; Position хранит центр
type Bullet struct {
	Position  types.Vector2
	Direction types.Direction
	Owner     types.Owner
	Speed     int32
	Power     int
	Active    bool
	Lifetime  int
	AnimFrame int
	animTimer int
}

// Init переиспользует снаряд: мощность ограничивается [1, 3],
// скорость выводится из мощности
func (b *Bullet) Init(pos types.Vector2, dir types.Direction, owner types.Owner, power int) {
	b.Position = pos
	b.Direction = dir
	b.Owner = owner
	b.Power = defs.ClampBulletPower(power)
	b.Speed = defs.BulletSpeedForPower(b.Power)
	b.Active = true
	b.Lifetime = config.BulletLifetime
	b.AnimFrame = 0
	b.animTimer = 0
}

// SetLifetime переопределяет оставшееся время жизни
func (b *Bullet) SetLifetime(frames int) {
	b.Lifetime = frames
}

// Update движение, анимация, время жизни
func (b *Bullet) Update() {
	if !b.Active {
		return
	}
	b.Position = b.Position.Add(b.Direction.Velocity(b.Speed))
	b.animTimer++
	if b.animTimer >= config.BulletAnimFrames {
		b.animTimer = 0
		b.AnimFrame ^= 1
	}
	b.Lifetime--
	if b.Lifetime <= 0 {
		b.Active = false
	}
}

func (b *Bullet) Center() (int, int) {
	return b.Position.PixelX(), b.Position.PixelY()
}

// Bounds квадрат 4×4 с центром в позиции
func (b *Bullet) Bounds() types.Rect {
	cx, cy := b.Center()
	return types.CenteredRect(cx, cy, config.BulletSize, config.BulletSize)
}

func (b *Bullet) Deactivate() {
	b.Active = false
}
