package entity

import "go-battle-city/internal/defs"

// Палитра спрайтов 8×8: 0 прозрачный, 1 основной цвет, 2 тень, 3 блик

// TankSprites кадры гусениц танка, смотрящего вверх
var TankSprites = [2][64]uint8{
	{
		0, 0, 0, 3, 3, 0, 0, 0,
		2, 1, 0, 3, 3, 0, 1, 2,
		1, 2, 1, 1, 1, 1, 2, 1,
		2, 1, 1, 3, 3, 1, 1, 2,
		1, 2, 1, 3, 3, 1, 2, 1,
		2, 1, 1, 1, 1, 1, 1, 2,
		1, 2, 1, 1, 1, 1, 2, 1,
		2, 1, 0, 0, 0, 0, 1, 2,
	},
	{
		0, 0, 0, 3, 3, 0, 0, 0,
		1, 2, 0, 3, 3, 0, 2, 1,
		2, 1, 1, 1, 1, 1, 1, 2,
		1, 2, 1, 3, 3, 1, 2, 1,
		2, 1, 1, 3, 3, 1, 1, 2,
		1, 2, 1, 1, 1, 1, 2, 1,
		2, 1, 1, 1, 1, 1, 1, 2,
		1, 2, 0, 0, 0, 0, 2, 1,
	},
}

// BaseSprite штаб (орёл), масштабируется до 16×16
var BaseSprite = [64]uint8{
	1, 0, 0, 3, 3, 0, 0, 1,
	1, 1, 0, 3, 3, 0, 1, 1,
	0, 1, 1, 1, 1, 1, 1, 0,
	0, 0, 1, 3, 3, 1, 0, 0,
	0, 0, 1, 1, 1, 1, 0, 0,
	0, 1, 1, 0, 0, 1, 1, 0,
	0, 1, 0, 1, 1, 0, 1, 0,
	1, 1, 1, 1, 1, 1, 1, 1,
}

var powerUpIcons = map[defs.PowerUpType]*[64]uint8{
	defs.PowerUpTankUpgrade: { // звезда
		0, 0, 0, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 0, 0, 0,
		1, 1, 1, 3, 3, 1, 1, 1,
		0, 1, 1, 3, 3, 1, 1, 0,
		0, 0, 1, 1, 1, 1, 0, 0,
		0, 1, 1, 0, 0, 1, 1, 0,
		0, 1, 0, 0, 0, 0, 1, 0,
		1, 0, 0, 0, 0, 0, 0, 1,
	},
	defs.PowerUpExtraLife: { // танк
		0, 0, 0, 1, 1, 0, 0, 0,
		0, 0, 0, 1, 1, 0, 0, 0,
		1, 1, 3, 3, 3, 3, 1, 1,
		1, 2, 3, 1, 1, 3, 2, 1,
		1, 2, 3, 1, 1, 3, 2, 1,
		1, 1, 3, 3, 3, 3, 1, 1,
		1, 2, 0, 0, 0, 0, 2, 1,
		1, 1, 0, 0, 0, 0, 1, 1,
	},
	defs.PowerUpShield: { // каска
		0, 0, 1, 1, 1, 1, 0, 0,
		0, 1, 3, 3, 1, 1, 1, 0,
		1, 3, 3, 1, 1, 1, 1, 1,
		1, 3, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
		2, 2, 2, 2, 2, 2, 2, 2,
		0, 0, 0, 0, 0, 0, 0, 0,
		0, 0, 0, 0, 0, 0, 0, 0,
	},
	defs.PowerUpTimerBomb: { // часы
		0, 0, 1, 1, 1, 1, 0, 0,
		0, 1, 3, 3, 3, 3, 1, 0,
		1, 3, 3, 2, 3, 3, 3, 1,
		1, 3, 3, 2, 3, 3, 3, 1,
		1, 3, 3, 2, 2, 2, 3, 1,
		1, 3, 3, 3, 3, 3, 3, 1,
		0, 1, 3, 3, 3, 3, 1, 0,
		0, 0, 1, 1, 1, 1, 0, 0,
	},
	defs.PowerUpClearEnemies: { // граната
		0, 0, 0, 2, 2, 0, 0, 0,
		0, 0, 2, 0, 0, 0, 0, 0,
		0, 1, 1, 1, 1, 1, 0, 0,
		1, 3, 1, 2, 1, 2, 1, 0,
		1, 3, 1, 1, 1, 1, 1, 0,
		1, 1, 2, 1, 2, 1, 1, 0,
		1, 1, 1, 1, 1, 1, 1, 0,
		0, 1, 1, 1, 1, 1, 0, 0,
	},
}

// PowerUpIcon картинка вида бонуса; неизвестный вид даёт звезду
func PowerUpIcon(kind defs.PowerUpType) *[64]uint8 {
	if icon, ok := powerUpIcons[kind]; ok {
		return icon
	}
	return powerUpIcons[defs.PowerUpTankUpgrade]
}
