// internal/defs/types.go
package defs

import "fmt"

// EnemyType вид вражеского танка
type EnemyType int

const (
	EnemyBasic EnemyType = iota
	EnemyFast
	EnemyHeavy
	EnemyElite
)

// EnemyTypes все виды врагов по порядку
var EnemyTypes = [4]EnemyType{EnemyBasic, EnemyFast, EnemyHeavy, EnemyElite}

func (t EnemyType) String() string {
	switch t {
	case EnemyBasic:
		return "BASIC"
	case EnemyFast:
		return "FAST"
	case EnemyHeavy:
		return "HEAVY"
	case EnemyElite:
		return "ELITE"
	}
	return "UNKNOWN"
}

// ParseEnemyType разбирает идентификатор из файла определений
func ParseEnemyType(id string) (EnemyType, error) {
	for _, t := range EnemyTypes {
		if t.String() == id {
			return t, nil
		}
	}
	return EnemyBasic, fmt.Errorf("unknown enemy id %q", id)
}

// PowerUpType вид бонуса
type PowerUpType int

const (
	PowerUpTankUpgrade PowerUpType = iota
	PowerUpExtraLife
	PowerUpTimerBomb
	PowerUpShield
	PowerUpClearEnemies
)

func (t PowerUpType) String() string {
	switch t {
	case PowerUpTankUpgrade:
		return "TANK_UPGRADE"
	case PowerUpExtraLife:
		return "EXTRA_LIFE"
	case PowerUpTimerBomb:
		return "TIMER_BOMB"
	case PowerUpShield:
		return "SHIELD"
	case PowerUpClearEnemies:
		return "CLEAR_ENEMIES"
	}
	return "UNKNOWN"
}

// TankStats характеристики танка, выводимые из уровня улучшения
type TankStats struct {
	MaxHealth   int
	MoveSpeed   int32 // Суб-пикселей за тик
	Cooldown    int   // Тиков между выстрелами
	BulletPower int
	BulletSpeed int32
}

// StatsFunc чистая функция уровня улучшения в характеристики
type StatsFunc func(level int) TankStats
