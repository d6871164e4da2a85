package entity

import (
	"go-battle-city/internal/ai"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
)

// EnemyTank вражеский танк под управлением ИИ
type EnemyTank struct {
	Tank
	Kind        defs.EnemyType
	AI          *ai.Controller
	evadeSignal bool
}

// NewEnemyTank создаёт врага вида kind в точке pos, лицом вниз
func NewEnemyTank(kind defs.EnemyType, pos types.Vector2) *EnemyTank {
	def := defs.Enemy(kind)
	return &EnemyTank{
		Tank: newTank(pos, types.DirDown, types.OwnerEnemy, def.Stats),
		Kind: kind,
		AI:   ai.NewController(def.AI),
	}
}

// SignalEvade просит ИИ отойти на следующем тике
func (e *EnemyTank) SignalEvade() {
	e.evadeSignal = true
}

// TakeDamage урон; выживший враг получает сигнал отхода
func (e *EnemyTank) TakeDamage(n int) bool {
	if !e.Tank.TakeDamage(n) {
		return false
	}
	if e.Active {
		e.SignalEvade()
	}
	return true
}

// Freeze замораживает врага
func (e *EnemyTank) Freeze(frames int) {
	e.AI.Freeze(frames)
	e.Stop()
}

// Frozen true, пока действует заморозка
func (e *EnemyTank) Frozen() bool {
	return e.AI.State() == ai.StateFrozen
}

// Destroy уничтожает врага без учёта неуязвимости
func (e *EnemyTank) Destroy() {
	e.Health = 0
	e.Active = false
}

// Think один тик врага: счётчики, затем решение ИИ
func (e *EnemyTank) Think(checker MoveChecker, spawner BulletSpawner, target ai.Target, rng ai.RNG) {
	if !e.Active {
		return
	}
	e.Tick()
	e.AI.Update(enemyActor{e: e, checker: checker, spawner: spawner}, target, rng)
}

// enemyActor связывает танк с проверкой движения и созданием снарядов
type enemyActor struct {
	e       *EnemyTank
	checker MoveChecker
	spawner BulletSpawner
}

func (a enemyActor) Center() (int, int)       { return a.e.Center() }
func (a enemyActor) Heading() types.Direction { return a.e.Direction }
func (a enemyActor) Steer(d types.Direction)  { a.e.SetDirection(d) }
func (a enemyActor) Advance() bool            { return a.e.Move(a.checker) }
func (a enemyActor) Fire() bool               { return a.e.Shoot(a.spawner) }
func (a enemyActor) Halt()                    { a.e.Stop() }

func (a enemyActor) ConsumeEvadeSignal() bool {
	s := a.e.evadeSignal
	a.e.evadeSignal = false
	return s
}
