// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 256
	ScreenHeight = 224
	WindowScale  = 3

	TileSize = 16
	GridSize = 13
	FieldX   = 16 // Левый верхний угол игрового поля на холсте
	FieldY   = 8

	TankSize    = 8
	BulletSize  = 4
	PowerUpSize = 8
	BaseSize    = 16

	TickRate     = 60
	MaxFrameSkip = 5

	BaseTileX = 6
	BaseTileY = 11

	EnemiesPerLevel      = 20
	MaxLevels            = 35
	FirstSpawnDelay      = 80
	BaseSpawnInterval    = 120
	MinSpawnInterval     = 60
	SpawnIntervalPerStep = 2
	SpawnJitter          = 8

	MaxActiveEnemies  = 4
	MaxActivePowerUps = 1

	InvincibilityFrames = 20
	MaxUpgradeLevel     = 3
	PlayerLives         = 3
	SpawnShieldFrames   = 180
	ShieldFrames        = 180
	FreezeFrames        = 600

	BulletLifetime  = 180
	BulletBaseSpeed = 384
	BulletSpeedStep = 64
	MaxBulletPower  = 3

	PowerUpLifetime   = 600
	PowerUpDropChance = 15

	LevelCompleteDelay = 180

	WalkAnimFrames    = 10 // Кадров на шаг анимации гусениц
	BulletAnimFrames  = 3
	PowerUpAnimFrames = 10
	PowerUpAnimPhases = 4

	DefaultSeed = 0x12345678

	HUDX = FieldX + GridSize*TileSize + 4
)

var (
	BackgroundColor = color.RGBA{0, 0, 0, 255}
	FieldColor      = color.RGBA{10, 10, 14, 255}
	HUDColor        = color.RGBA{99, 99, 99, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}
	TextAccentColor = color.RGBA{252, 116, 96, 255}

	BrickColor     = color.RGBA{156, 74, 0, 255}
	BrickLineColor = color.RGBA{99, 48, 0, 255}
	SteelColor     = color.RGBA{188, 188, 188, 255}
	SteelEdgeColor = color.RGBA{255, 255, 255, 255}
	WaterColor     = color.RGBA{60, 120, 248, 255}
	BaseColor      = color.RGBA{200, 200, 200, 255}
	BaseDeadColor  = color.RGBA{120, 40, 40, 255}

	PlayerColors = []color.RGBA{
		{232, 208, 32, 255}, // Жёлтый
		{0, 168, 68, 255},   // Зелёный
	}
	EnemyColors = []color.RGBA{
		{188, 188, 188, 255}, // Basic
		{252, 152, 56, 255},  // Fast
		{168, 16, 0, 255},    // Heavy
		{216, 0, 204, 255},   // Elite
	}
	BulletColor  = color.RGBA{255, 255, 255, 255}
	PowerUpColor = color.RGBA{255, 80, 80, 255}
	ShieldColor  = color.RGBA{120, 220, 255, 255}
	FrozenColor  = color.RGBA{140, 200, 255, 255}
	OverlayColor = color.RGBA{0, 0, 0, 160}
)
