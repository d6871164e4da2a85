// internal/defs/enemies.go
package defs

// AIDefinition параметры поведения ИИ для вида врага
type AIDefinition struct {
	SightRange        int `json:"sight_range"`        // Пикселей
	DirectionInterval int `json:"direction_interval"` // Середина интервала смены направления, тиков
	ChaseTimeout      int `json:"chase_timeout"`
	EvadeDuration     int `json:"evade_duration"`
	FireChance        int `json:"fire_chance"` // Процентов за тик
}

// EnemyDefinition статические данные вида врага
type EnemyDefinition struct {
	ID          string       `json:"id"`
	Health      int          `json:"health"`
	MoveSpeed   int32        `json:"move_speed"`
	Cooldown    int          `json:"cooldown"`
	BulletPower int          `json:"bullet_power"`
	BaseScore   int          `json:"base_score"`
	AI          AIDefinition `json:"ai"`
}

// Stats характеристики врага; уровень улучшения врагам не меняет статы
func (d EnemyDefinition) Stats(int) TankStats {
	return TankStats{
		MaxHealth:   d.Health,
		MoveSpeed:   d.MoveSpeed,
		Cooldown:    d.Cooldown,
		BulletPower: d.BulletPower,
		BulletSpeed: BulletSpeedForPower(d.BulletPower),
	}
}

// EnemyLibrary определения врагов по виду
var EnemyLibrary = DefaultEnemyLibrary()

// DefaultEnemyLibrary встроенные определения
func DefaultEnemyLibrary() map[EnemyType]EnemyDefinition {
	return map[EnemyType]EnemyDefinition{
		EnemyBasic: {
			ID: "BASIC", Health: 1, MoveSpeed: 256, Cooldown: 120, BulletPower: 1, BaseScore: 100,
			AI: AIDefinition{SightRange: 64, DirectionInterval: 250, ChaseTimeout: 300, EvadeDuration: 20, FireChance: 30},
		},
		EnemyFast: {
			ID: "FAST", Health: 1, MoveSpeed: 384, Cooldown: 90, BulletPower: 1, BaseScore: 200,
			AI: AIDefinition{SightRange: 64, DirectionInterval: 200, ChaseTimeout: 250, EvadeDuration: 20, FireChance: 30},
		},
		EnemyHeavy: {
			ID: "HEAVY", Health: 2, MoveSpeed: 179, Cooldown: 110, BulletPower: 1, BaseScore: 300,
			AI: AIDefinition{SightRange: 64, DirectionInterval: 400, ChaseTimeout: 350, EvadeDuration: 20, FireChance: 30},
		},
		EnemyElite: {
			ID: "ELITE", Health: 2, MoveSpeed: 307, Cooldown: 60, BulletPower: 1, BaseScore: 400,
			AI: AIDefinition{SightRange: 96, DirectionInterval: 250, ChaseTimeout: 400, EvadeDuration: 25, FireChance: 30},
		},
	}
}

// Enemy определение вида; неизвестный вид даёт BASIC
func Enemy(t EnemyType) EnemyDefinition {
	if def, ok := EnemyLibrary[t]; ok {
		return def
	}
	return EnemyLibrary[EnemyBasic]
}
