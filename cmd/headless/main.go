package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/event"
	"go-battle-city/internal/input"
	"go-battle-city/internal/logging"
	"go-battle-city/internal/utils"
)

// Исход прогона
const (
	outcomeGameOver = "game_over"
	outcomeFinished = "finished"
	outcomeTimeout  = "timeout"
)

// botTurnEvery как часто бот меняет направление
const botTurnEvery = 45

type runStats struct {
	runIndex int
	seed     uint32
	outcome  string

	ticks         uint64
	levelsCleared int
	finalLevel    int
	scores        []int
	stats         app.Stats
	events        map[event.EventType]int
}

// counter считает события по типу
type counter map[event.EventType]int

func (c counter) OnEvent(e event.Event) { c[e.Type]++ }

func main() {
	var runs int
	var ticks int
	var seedBase uint
	var seedStep uint
	var players int
	var logLevel string

	flag.IntVar(&runs, "runs", 5, "number of headless simulation runs")
	flag.IntVar(&ticks, "ticks", 36000, "tick budget per run")
	flag.UintVar(&seedBase, "seed-base", uint(config.DefaultSeed), "RNG seed for run 1")
	flag.UintVar(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.IntVar(&players, "players", 1, "number of bot players (1 or 2)")
	flag.StringVar(&logLevel, "log", "disabled", "log level for simulation logs on stderr")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if ticks <= 0 {
		fmt.Println("error: -ticks must be > 0")
		return
	}
	if players < 1 || players > input.MaxPlayers {
		fmt.Printf("error: -players must be 1..%d\n", input.MaxPlayers)
		return
	}

	rules := config.Default().Rules
	logger := logging.New(logLevel, os.Stderr, nil)

	fmt.Printf("=== Headless Battle Report ===\n")
	fmt.Printf("players=%d runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", players, runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := uint32(seedBase + uint(i)*seedStep)
		rs := runGame(i+1, seed, ticks, players, rules, app.Deps{Logger: logger})
		all = append(all, rs)
		printRun(rs)
	}
	printAggregate(all)
}

// runGame играет ботами до конца партии или исчерпания тиков
func runGame(runIndex int, seed uint32, ticks, players int, rules config.RulesSettings, deps app.Deps) runStats {
	events := counter{}
	dispatcher := event.NewDispatcher()
	dispatcher.SubscribeAll(events,
		event.BulletFired, event.BulletHit, event.BrickDestroyed, event.BaseDestroyed,
		event.EnemyDestroyed, event.PlayerDestroyed, event.PowerUpSpawned, event.PowerUpPicked,
		event.LevelStarted, event.LevelCompleted, event.GameOver,
	)

	deps.Rng = utils.NewPRNGService(seed)
	deps.Events = dispatcher
	deps.Rules = rules
	g := app.NewGame(deps)
	g.Reset()
	g.EnsurePlayers(players)
	g.StartLevel(rules.StartLevel)

	// бот ходит своим генератором, чтобы не сдвигать последовательность мира
	b := newBot(seed^0x9e3779b9, players)
	rs := runStats{runIndex: runIndex, seed: seed, outcome: outcomeTimeout}
	for t := 0; t < ticks; t++ {
		b.step(t)
		g.Tick(b.script)

		if g.IsGameOver() {
			dispatcher.Dispatch(event.Event{Type: event.GameOver})
			rs.outcome = outcomeGameOver
			break
		}
		if g.IsLevelComplete() {
			dispatcher.Dispatch(event.Event{Type: event.LevelCompleted, Data: event.LevelData{Level: g.Level.Level()}})
			rs.levelsCleared++
			next := g.Level.Level() + 1
			if next > rules.FinalLevel {
				rs.outcome = outcomeFinished
				break
			}
			g.StartLevel(next)
		}
	}

	rs.ticks = g.Stats.Ticks
	rs.finalLevel = g.Level.Level()
	rs.stats = g.Stats
	rs.events = events
	for _, p := range g.Players {
		rs.scores = append(rs.scores, p.Score)
	}
	return rs
}

// bot случайно бродит и стреляет почти без перерыва
type bot struct {
	rng     *utils.PRNGService
	script  *input.Script
	players int
	heading [input.MaxPlayers]input.Action
}

func newBot(seed uint32, players int) *bot {
	return &bot{rng: utils.NewPRNGService(seed), script: input.NewScript(), players: players}
}

func (b *bot) step(tick int) {
	for p := 0; p < b.players; p++ {
		if tick%botTurnEvery == 0 {
			b.script.Release(b.heading[p], p)
			b.heading[p] = input.ActionUp + input.Action(b.rng.Intn(4))
			b.script.Hold(b.heading[p], p)
		}
		if b.rng.Chance(60) {
			b.script.Hold(input.ActionShoot, p)
		} else {
			b.script.Release(input.ActionShoot, p)
		}
	}
	b.script.Poll()
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("outcome=%s ticks=%d final_level=%d levels_cleared=%d scores=%v\n",
		rs.outcome, rs.ticks, rs.finalLevel, rs.levelsCleared, rs.scores)
	fmt.Printf("stats: shots=%d enemies_killed=%d bricks_destroyed=%d powerups_taken=%d player_deaths=%d\n",
		rs.stats.Shots, rs.stats.EnemiesKilled, rs.stats.BricksDestroyed, rs.stats.PowerUpsTaken, rs.stats.PlayerDeaths)
	fmt.Printf("events: %s\n", formatEvents(rs.events))
	fmt.Println()
}

func printAggregate(all []runStats) {
	outcomes := map[string]int{}
	var ticks uint64
	kills, deaths, cleared := 0, 0, 0
	best := 0
	for _, rs := range all {
		outcomes[rs.outcome]++
		ticks += rs.ticks
		kills += rs.stats.EnemiesKilled
		deaths += rs.stats.PlayerDeaths
		cleared += rs.levelsCleared
		for _, s := range rs.scores {
			best = max(best, s)
		}
	}
	n := float64(len(all))
	fmt.Printf("=== Aggregate (%d runs) ===\n", len(all))
	fmt.Printf("outcomes: %s=%d %s=%d %s=%d\n",
		outcomeGameOver, outcomes[outcomeGameOver], outcomeFinished, outcomes[outcomeFinished], outcomeTimeout, outcomes[outcomeTimeout])
	fmt.Printf("avg: ticks=%.1f kills=%.1f deaths=%.1f levels_cleared=%.2f\n",
		float64(ticks)/n, float64(kills)/n, float64(deaths)/n, float64(cleared)/n)
	fmt.Printf("best_score=%d\n", best)
}

// formatEvents "тип=число" по алфавиту
func formatEvents(events map[event.EventType]int) string {
	keys := make([]string, 0, len(events))
	for k := range events {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%d", k, events[event.EventType(k)]))
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, " ")
}
