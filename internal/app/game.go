// internal/app/game.go
package app

import (
	"go-battle-city/internal/ai"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/level"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"

	"github.com/rs/zerolog"
)

// Stats счётчики за партию (для отчётов и HUD)
type Stats struct {
	Ticks           uint64
	Shots           int
	EnemiesKilled   int
	BricksDestroyed int
	PowerUpsTaken   int
	PlayerDeaths    int
}

// Deps зависимости мира
type Deps struct {
	Rng    *utils.PRNGService
	Events *event.Dispatcher
	Rules  config.RulesSettings
	Logger zerolog.Logger
}

// Game мир симуляции: владеет всеми сущностями и выполняет тик
type Game struct {
	Level    *level.Manager
	Players  []*entity.PlayerTank
	Enemies  []*entity.EnemyTank
	Bullets  []entity.Bullet
	PowerUps []*entity.PowerUp
	Stats    Stats

	Rng             *utils.PRNGService
	EventDispatcher *event.Dispatcher
	rules           config.RulesSettings
	logger          zerolog.Logger
	baseDestroyed   bool
}

// NewGame создаёт мир на первом уровне без игроков
func NewGame(deps Deps) *Game {
	if deps.Rng == nil {
		deps.Rng = utils.NewPRNGService(config.DefaultSeed)
	}
	if deps.Rules.MaxEnemies <= 0 {
		deps.Rules = config.Default().Rules
	}
	deps.Rules.MaxEnemies = min(deps.Rules.MaxEnemies, config.MaxActiveEnemies)
	g := &Game{
		Rng:             deps.Rng,
		EventDispatcher: deps.Events,
		rules:           deps.Rules,
		logger:          deps.Logger.With().Str("component", "game").Logger(),
	}
	g.Level = level.NewManager(g.Rng, deps.Logger)
	g.Level.SetSpawnCallback(g.SpawnEnemy)
	return g
}

// Rules действующие ограничения
func (g *Game) Rules() config.RulesSettings {
	return g.rules
}

// Reset сбрасывает партию: игроки удаляются, уровень стартовый.
// LevelStarted не рассылается, уровень начнётся с StartLevel.
func (g *Game) Reset() {
	g.Players = nil
	g.Stats = Stats{}
	g.Level.LoadLevel(g.rules.StartLevel)
	g.clearWorld()
}

func (g *Game) clearWorld() {
	clear(g.Enemies)
	g.Enemies = g.Enemies[:0]
	g.Bullets = g.Bullets[:0]
	clear(g.PowerUps)
	g.PowerUps = g.PowerUps[:0]
	g.baseDestroyed = false
}

// EnsurePlayers создаёт недостающих игроков (1 или 2)
func (g *Game) EnsurePlayers(count int) {
	if count < 1 {
		count = 1
	}
	if count > len(g.Level.Data().PlayerSpawns) {
		count = len(g.Level.Data().PlayerSpawns)
	}
	for i := len(g.Players); i < count; i++ {
		spawn := g.Level.Data().PlayerSpawns[i]
		g.Players = append(g.Players, entity.NewPlayerTank(i, spawn, g.rules.StartLives))
	}
}

// StartLevel загружает уровень n и расставляет игроков по точкам появления
func (g *Game) StartLevel(n int) {
	g.Level.LoadLevel(n)
	g.clearWorld()

	for _, p := range g.Players {
		p.SpawnPoint = g.Level.Data().PlayerSpawns[p.Index]
		if p.Lives <= 0 {
			continue
		}
		keep := p.Level
		p.Respawn()
		for p.Level < keep {
			p.Upgrade()
		}
	}
	g.EventDispatcher.Dispatch(event.Event{Type: event.LevelStarted, Data: event.LevelData{Level: g.Level.Level()}})
	g.logger.Info().Int("level", g.Level.Level()).Int("players", len(g.Players)).Msg("Level started")
}

// Tick один шаг симуляции в фиксированном порядке
func (g *Game) Tick(src input.Source) {
	g.Stats.Ticks++
	g.updatePlayers(src)
	g.updateEnemies()
	g.updateBullets()
	g.updatePowerUps()
	g.handlePlayerDeaths()
	g.compact()
	g.Level.Update()
}

func (g *Game) updatePlayers(src input.Source) {
	for _, p := range g.Players {
		if !p.Active {
			continue
		}
		p.Update()
		p.HandleInput(src, g, g)
	}
}

func (g *Game) updateEnemies() {
	for _, e := range g.Enemies {
		if !e.Active {
			continue
		}
		cx, cy := e.Center()
		e.Think(g, g, g.nearestPlayer(cx, cy), g.Rng)
	}
}

func (g *Game) handlePlayerDeaths() {
	for _, p := range g.Players {
		if p.Active || p.Lives <= 0 {
			continue
		}
		g.Stats.PlayerDeaths++
		p.LoseLife()
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.PlayerDestroyed,
			Data: event.PlayerData{Player: p.Index, LivesLeft: p.Lives},
		})
		g.logger.Debug().Int("player", p.Index).Int("lives", p.Lives).Msg("Player destroyed")
	}
}

// compact удаляет неактивные снаряды, врагов и бонусы
func (g *Game) compact() {
	bullets := g.Bullets[:0]
	for _, b := range g.Bullets {
		if b.Active {
			bullets = append(bullets, b)
		}
	}
	g.Bullets = bullets

	enemies := g.Enemies[:0]
	for _, e := range g.Enemies {
		if e.Active {
			enemies = append(enemies, e)
		}
	}
	clear(g.Enemies[len(enemies):])
	g.Enemies = enemies

	powerUps := g.PowerUps[:0]
	for _, u := range g.PowerUps {
		if u.Active {
			powerUps = append(powerUps, u)
		}
	}
	clear(g.PowerUps[len(powerUps):])
	g.PowerUps = powerUps
}

// nearestPlayer цель ИИ: ближайший живой игрок, при равенстве меньший индекс
func (g *Game) nearestPlayer(x, y int) ai.Target {
	best := ai.Target{}
	bestDist := 0
	for _, p := range g.Players {
		if !p.Active {
			continue
		}
		px, py := p.Center()
		d := (px-x)*(px-x) + (py-y)*(py-y)
		if !best.Valid || d < bestDist {
			best = ai.Target{X: px, Y: py, Valid: true}
			bestDist = d
		}
	}
	return best
}

// SpawnEnemy обработчик планировщика уровня
func (g *Game) SpawnEnemy(kind defs.EnemyType, pos types.Vector2) bool {
	if g.ActiveEnemies() >= g.rules.MaxEnemies {
		return false
	}
	box := entity.BoundsAt(pos)
	if g.tankAt(box, nil) != nil {
		return false
	}
	g.Enemies = append(g.Enemies, entity.NewEnemyTank(kind, pos))
	return true
}

// SpawnBullet создаёт снаряд с учётом лимитов на владельца
func (g *Game) SpawnBullet(pos types.Vector2, dir types.Direction, owner types.Owner, power int) bool {
	limit := g.rules.EnemyBullets
	if owner.IsPlayer() {
		limit = g.rules.PlayerBullets
	}
	if g.ActiveBullets(owner) >= limit {
		return false
	}
	var b entity.Bullet
	b.Init(pos, dir, owner, power)
	g.Bullets = append(g.Bullets, b)
	g.Stats.Shots++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.BulletFired,
		Data: event.ShotData{Owner: owner, X: pos.PixelX(), Y: pos.PixelY()},
	})
	return true
}

// ActiveBullets живые снаряды владельца
func (g *Game) ActiveBullets(owner types.Owner) int {
	n := 0
	for i := range g.Bullets {
		if g.Bullets[i].Active && g.Bullets[i].Owner == owner {
			n++
		}
	}
	return n
}

func (g *Game) ActiveEnemies() int {
	n := 0
	for _, e := range g.Enemies {
		if e.Active {
			n++
		}
	}
	return n
}

func (g *Game) ActivePowerUps() int {
	n := 0
	for _, u := range g.PowerUps {
		if u.Active {
			n++
		}
	}
	return n
}

// BaseDestroyed штаб уничтожен
func (g *Game) BaseDestroyed() bool {
	return g.baseDestroyed
}

// IsGameOver штаб уничтожен или у кого-то из игроков кончились жизни
func (g *Game) IsGameOver() bool {
	if g.baseDestroyed {
		return true
	}
	for _, p := range g.Players {
		if p.IsExhausted() {
			return true
		}
	}
	return false
}

// IsLevelComplete все враги уровня уничтожены
func (g *Game) IsLevelComplete() bool {
	return g.Level.IsLevelComplete()
}

// TotalScore сумма очков игроков
func (g *Game) TotalScore() int {
	total := 0
	for _, p := range g.Players {
		total += p.Score
	}
	return total
}

func (g *Game) playerByOwner(owner types.Owner) *entity.PlayerTank {
	idx := owner.PlayerIndex()
	for _, p := range g.Players {
		if p.Index == idx {
			return p
		}
	}
	return nil
}
