package defs

// SpawnPattern порядок видов врагов внутри цикла из четырёх появлений
type SpawnPattern [4]EnemyType

var (
	earlyPattern = SpawnPattern{EnemyBasic, EnemyBasic, EnemyBasic, EnemyFast}
	midPattern   = SpawnPattern{EnemyBasic, EnemyBasic, EnemyFast, EnemyHeavy}
	latePattern  = SpawnPattern{EnemyBasic, EnemyFast, EnemyHeavy, EnemyElite}
)

// PatternForLevel узор появления врагов для уровня
func PatternForLevel(level int) SpawnPattern {
	switch {
	case level <= 9:
		return earlyPattern
	case level <= 19:
		return midPattern
	default:
		return latePattern
	}
}

// EnemyForSpawn вид врага для порядкового номера появления на уровне
func EnemyForSpawn(level, spawned int) EnemyType {
	if spawned < 0 {
		spawned = 0
	}
	return PatternForLevel(level)[spawned%4]
}
