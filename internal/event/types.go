// internal/event/types.go
package event

import (
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

const (
	BulletFired     EventType = "BulletFired"     // Танк выстрелил
	BulletHit       EventType = "BulletHit"       // Снаряд попал без разрушения
	BrickDestroyed  EventType = "BrickDestroyed"  // Кирпич превращён в траву
	BaseDestroyed   EventType = "BaseDestroyed"   // Штаб уничтожен
	EnemyDestroyed  EventType = "EnemyDestroyed"  // Враг уничтожен
	PlayerDestroyed EventType = "PlayerDestroyed" // Игрок потерял жизнь
	PowerUpSpawned  EventType = "PowerUpSpawned"
	PowerUpPicked   EventType = "PowerUpPicked"
	LevelStarted    EventType = "LevelStarted"
	LevelCompleted  EventType = "LevelCompleted"
	GameOver        EventType = "GameOver"
)

// ShotData нагрузка BulletFired и BulletHit
type ShotData struct {
	Owner types.Owner
	X, Y  int
}

// TerrainData нагрузка BrickDestroyed
type TerrainData struct {
	TileX, TileY int
}

// EnemyDestroyedData нагрузка EnemyDestroyed
type EnemyDestroyedData struct {
	Enemy  defs.EnemyType
	By     types.Owner
	Score  int  // 0, если враг уничтожен бонусом
	ByBomb bool // Уничтожен бонусом ClearEnemies
}

// PlayerData нагрузка PlayerDestroyed
type PlayerData struct {
	Player    int
	LivesLeft int
}

// PowerUpData нагрузка PowerUpSpawned и PowerUpPicked
type PowerUpData struct {
	Kind   defs.PowerUpType
	Player int
}

// LevelData нагрузка событий уровня
type LevelData struct {
	Level int
}
