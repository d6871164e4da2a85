package ai

import (
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/utils"
)

// State состояние поведения вражеского танка
type State int

const (
	StateIdle   State = iota // Блуждание
	StateChase               // Преследование цели
	StateEvade               // Отход после удара или столкновения
	StateFrozen              // Заморожен бонусом
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "IDLE"
	case StateChase:
		return "CHASE"
	case StateEvade:
		return "EVADE"
	case StateFrozen:
		return "FROZEN"
	}
	return "UNKNOWN"
}

// directionJitter разброс интервала смены направления, тиков
const directionJitter = 50

// RNG источник случайности, которым пользуется ИИ
type RNG interface {
	Range(min, max int) int
	Chance(percent int) bool
	Direction() types.Direction
}

// Actor танк, которым управляет контроллер
type Actor interface {
	Center() (int, int)
	Heading() types.Direction
	Steer(d types.Direction)
	Advance() bool // Попытка сдвинуться; false, если путь закрыт
	Fire() bool
	Halt()
	ConsumeEvadeSignal() bool // Читает и сбрасывает сигнал отхода
}

// Target точка преследования; Valid=false, если живых игроков нет
type Target struct {
	X, Y  int
	Valid bool
}

// Controller конечный автомат поведения одного врага
type Controller struct {
	def         defs.AIDefinition
	state       State
	stateTimer  int
	chaseTimer  int
	frozenTimer int
	moveDir     types.Direction
	dirTimer    int
}

// NewController создаёт контроллер в состоянии IDLE. Первое обновление
// выберет направление.
func NewController(def defs.AIDefinition) *Controller {
	return &Controller{
		def:     def,
		state:   StateIdle,
		moveDir: types.DirDown,
	}
}

func (c *Controller) State() State                   { return c.state }
func (c *Controller) StateTimer() int                { return c.stateTimer }
func (c *Controller) ChaseTimer() int                { return c.chaseTimer }
func (c *Controller) FrozenTimer() int               { return c.frozenTimer }
func (c *Controller) MoveDirection() types.Direction { return c.moveDir }

// ChangeState переключает состояние; повторный вход в текущее ничего не делает
func (c *Controller) ChangeState(s State) {
	if s == c.state {
		return
	}
	c.state = s
	c.stateTimer = 0
	if s == StateChase {
		c.chaseTimer = c.def.ChaseTimeout
	}
}

// Freeze обездвиживает танк на frames тиков
func (c *Controller) Freeze(frames int) {
	c.ChangeState(StateFrozen)
	if frames > c.frozenTimer {
		c.frozenTimer = frames
	}
}

// Update один тик поведения: сначала действие состояния, затем переходы
func (c *Controller) Update(a Actor, target Target, rng RNG) {
	c.stateTimer++

	switch c.state {
	case StateIdle:
		c.idle(a, rng)
	case StateChase:
		c.chase(a, target, rng)
	case StateEvade:
		c.evade(a)
	case StateFrozen:
		c.frozen(a)
		return
	}

	c.transition(a, target)
}

func (c *Controller) idle(a Actor, rng RNG) {
	c.dirTimer--
	if c.dirTimer <= 0 {
		c.moveDir = rng.Direction()
		c.dirTimer = c.def.DirectionInterval + rng.Range(-directionJitter, directionJitter)
		if c.dirTimer < 1 {
			c.dirTimer = 1
		}
	}
	a.Steer(c.moveDir)
	if !a.Advance() {
		c.dirTimer = 0 // упёрлись: новое направление на следующем тике
	}
	if rng.Chance(c.def.FireChance) {
		a.Fire()
	}
}

func (c *Controller) chase(a Actor, target Target, rng RNG) {
	if target.Valid {
		cx, cy := a.Center()
		if d := towards(target.X-cx, target.Y-cy); d != types.DirNone {
			c.moveDir = d
		}
	}
	a.Steer(c.moveDir)
	a.Advance()
	if rng.Chance(c.def.FireChance) {
		a.Fire()
	}
	c.chaseTimer--
}

func (c *Controller) evade(a Actor) {
	if c.stateTimer == 1 {
		c.moveDir = a.Heading().Opposite()
	}
	a.Steer(c.moveDir)
	a.Advance()
	if c.stateTimer >= c.def.EvadeDuration {
		c.ChangeState(StateIdle)
	}
}

func (c *Controller) frozen(a Actor) {
	a.Halt()
	a.ConsumeEvadeSignal()
	c.frozenTimer--
	if c.frozenTimer <= 0 {
		c.frozenTimer = 0
		c.ChangeState(StateIdle)
	}
}

func (c *Controller) transition(a Actor, target Target) {
	if a.ConsumeEvadeSignal() {
		c.ChangeState(StateEvade)
		return
	}
	switch c.state {
	case StateIdle:
		if c.inSight(a, target) {
			c.ChangeState(StateChase)
		}
	case StateChase:
		// цель пропала: живых игроков нет
		if c.chaseTimer <= 0 || !target.Valid {
			c.ChangeState(StateIdle)
		}
	}
}

func (c *Controller) inSight(a Actor, target Target) bool {
	if !target.Valid {
		return false
	}
	cx, cy := a.Center()
	r := c.def.SightRange
	return utils.DistSq(cx, cy, target.X, target.Y) <= r*r
}

// towards направление по большей по модулю оси; при равенстве вертикаль
func towards(dx, dy int) types.Direction {
	if dx == 0 && dy == 0 {
		return types.DirNone
	}
	if utils.Abs(dx) > utils.Abs(dy) {
		if dx > 0 {
			return types.DirRight
		}
		return types.DirLeft
	}
	if dy > 0 {
		return types.DirDown
	}
	return types.DirUp
}

