// internal/interfaces/game_context.go
package interfaces

// GameContext действия мира, доступные эффектам бонусов
type GameContext interface {
	FreezeEnemies(frames int)
	DestroyAllEnemies() int
}
