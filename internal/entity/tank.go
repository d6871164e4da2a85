package entity

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

// MoveChecker проверяет, может ли танк занять прямоугольник
type MoveChecker interface {
	CanOccupy(t *Tank, box types.Rect) bool
}

// BulletSpawner создаёт снаряды; false, если лимит исчерпан
type BulletSpawner interface {
	SpawnBullet(pos types.Vector2, dir types.Direction, owner types.Owner, power int) bool
}

// Tank общая часть танков игрока и врага
type Tank struct {
	Position  types.Vector2 // Левый верхний угол
	Velocity  types.Vector2
	Direction types.Direction
	LastMoved types.Direction

	Health    int
	MaxHealth int
	Level     int

	Invincible      bool
	InvincibleTimer int

	Cooldown      int
	CooldownTimer int

	MoveSpeed   int32
	BulletSpeed int32
	BulletPower int

	AnimFrame int
	animTimer int

	Active   bool
	CanMove  bool
	CanShoot bool
	Owner    types.Owner

	stats defs.StatsFunc
}

func newTank(pos types.Vector2, dir types.Direction, owner types.Owner, stats defs.StatsFunc) Tank {
	t := Tank{
		Position:  pos,
		Direction: dir,
		LastMoved: dir,
		Active:    true,
		CanMove:   true,
		CanShoot:  true,
		Owner:     owner,
		stats:     stats,
	}
	t.applyStats()
	t.Health = t.MaxHealth
	return t
}

// applyStats выводит характеристики из текущего уровня
func (t *Tank) applyStats() {
	s := t.stats(t.Level)
	t.MaxHealth = s.MaxHealth
	t.MoveSpeed = s.MoveSpeed
	t.Cooldown = s.Cooldown
	t.BulletPower = s.BulletPower
	t.BulletSpeed = s.BulletSpeed
	if !t.Velocity.IsZero() {
		t.Velocity = t.Direction.Velocity(t.MoveSpeed)
	}
}

// Bounds прямоугольник танка в пикселях
func (t *Tank) Bounds() types.Rect {
	return BoundsAt(t.Position)
}

// BoundsAt прямоугольник танка с левым верхним углом в pos
func BoundsAt(pos types.Vector2) types.Rect {
	return types.Rect{X: pos.PixelX(), Y: pos.PixelY(), W: config.TankSize, H: config.TankSize}
}

func (t *Tank) Center() (int, int) {
	return t.Bounds().Center()
}

// SetDirection поворачивает танк и пересчитывает скорость
func (t *Tank) SetDirection(d types.Direction) {
	if d == types.DirNone {
		t.Stop()
		return
	}
	t.Direction = d
	t.Velocity = d.Velocity(t.MoveSpeed)
}

// Stop обнуляет скорость, направление сохраняется
func (t *Tank) Stop() {
	t.Velocity = types.Vector2{}
}

// Move сдвигает танк на скорость, если checker разрешает новую позицию
func (t *Tank) Move(checker MoveChecker) bool {
	if !t.Active || !t.CanMove || t.Velocity.IsZero() {
		return false
	}
	next := t.Position.Add(t.Velocity)
	if checker != nil && !checker.CanOccupy(t, BoundsAt(next)) {
		return false
	}
	t.Position = next
	t.LastMoved = t.Direction
	t.animTimer++
	if t.animTimer >= config.WalkAnimFrames {
		t.animTimer = 0
		t.AnimFrame ^= 1
	}
	return true
}

// TakeDamage наносит урон. Возвращает true, если урон прошёл.
func (t *Tank) TakeDamage(n int) bool {
	if !t.Active || t.Invincible {
		return false
	}
	t.Health -= n
	if t.Health <= 0 {
		t.Health = 0
		t.Active = false
		return true
	}
	t.SetInvincible(config.InvincibilityFrames)
	return true
}

// SetInvincible неуязвимость на frames тиков (не укорачивает текущую)
func (t *Tank) SetInvincible(frames int) {
	t.Invincible = true
	if frames > t.InvincibleTimer {
		t.InvincibleTimer = frames
	}
}

// Upgrade повышает уровень до максимума 3
func (t *Tank) Upgrade() bool {
	if t.Level >= config.MaxUpgradeLevel {
		return false
	}
	t.Level++
	t.applyStats()
	return true
}

// Muzzle центр снаряда: клетка размером с танк сразу за передней гранью
func (t *Tank) Muzzle() types.Vector2 {
	b := t.Bounds()
	cx, cy := b.Center()
	half := config.TankSize / 2
	switch t.Direction {
	case types.DirUp:
		cy = b.Y - half
	case types.DirDown:
		cy = b.Y + b.H + half
	case types.DirLeft:
		cx = b.X - half
	case types.DirRight:
		cx = b.X + b.W + half
	}
	return types.FromPixels(cx, cy)
}

// Shoot запрашивает снаряд. Перезарядка начинается даже если лимит
// снарядов исчерпан.
func (t *Tank) Shoot(spawner BulletSpawner) bool {
	if !t.Active || !t.CanShoot || t.CooldownTimer > 0 || spawner == nil {
		return false
	}
	t.CooldownTimer = t.Cooldown
	return spawner.SpawnBullet(t.Muzzle(), t.Direction, t.Owner, t.BulletPower)
}

// Tick счётчики неуязвимости и перезарядки
func (t *Tank) Tick() {
	if t.Invincible {
		t.InvincibleTimer--
		if t.InvincibleTimer <= 0 {
			t.InvincibleTimer = 0
			t.Invincible = false
		}
	}
	if t.CooldownTimer > 0 {
		t.CooldownTimer--
	}
}
