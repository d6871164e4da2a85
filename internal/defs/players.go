package defs

import "go-battle-city/internal/config"

var playerCooldowns = [config.MaxUpgradeLevel + 1]int{15, 12, 9, 6}

// PlayerMoveSpeed скорость игрока, суб-пикселей за тик
const PlayerMoveSpeed = 256

// PlayerStats характеристики танка игрока на уровне улучшения 0..3
func PlayerStats(level int) TankStats {
	if level < 0 {
		level = 0
	}
	if level > config.MaxUpgradeLevel {
		level = config.MaxUpgradeLevel
	}
	power := ClampBulletPower(level + 1)
	return TankStats{
		MaxHealth:   1,
		MoveSpeed:   PlayerMoveSpeed,
		Cooldown:    playerCooldowns[level],
		BulletPower: power,
		BulletSpeed: BulletSpeedForPower(power),
	}
}

// ClampBulletPower ограничивает мощность снаряда диапазоном [1, 3]
func ClampBulletPower(power int) int {
	if power < 1 {
		return 1
	}
	if power > config.MaxBulletPower {
		return config.MaxBulletPower
	}
	return power
}

// BulletSpeedForPower скорость снаряда по мощности
func BulletSpeedForPower(power int) int32 {
	power = ClampBulletPower(power)
	return int32(config.BulletBaseSpeed + (power-1)*config.BulletSpeedStep)
}
