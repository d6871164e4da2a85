package app

import (
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/types"
)

// SpawnPowerUp выбирает вид бонуса и ставит его в pos, если на поле
// нет другого бонуса
func (g *Game) SpawnPowerUp(pos types.Vector2) bool {
	kind := g.Rng.ChooseWeighted(defs.PowerUpLoot)
	return g.PlacePowerUp(pos, kind)
}

// PlacePowerUp ставит бонус заданного вида с учётом лимита
func (g *Game) PlacePowerUp(pos types.Vector2, kind defs.PowerUpType) bool {
	if g.ActivePowerUps() >= config.MaxActivePowerUps {
		return false
	}
	g.PowerUps = append(g.PowerUps, entity.NewPowerUp(pos, kind))
	g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpSpawned, Data: event.PowerUpData{Kind: kind, Player: -1}})
	return true
}

func (g *Game) updatePowerUps() {
	for _, u := range g.PowerUps {
		if !u.Active {
			continue
		}
		u.Update()
		if !u.Active {
			continue
		}
		box := u.Bounds()
		for _, p := range g.Players {
			if !p.Active || !p.Bounds().Intersects(box) {
				continue
			}
			kind := u.Kind
			u.Activate(g, p)
			g.Stats.PowerUpsTaken++
			g.EventDispatcher.Dispatch(event.Event{Type: event.PowerUpPicked, Data: event.PowerUpData{Kind: kind, Player: p.Index}})
			break
		}
	}
}

// FreezeEnemies замораживает всех живых врагов
func (g *Game) FreezeEnemies(frames int) {
	for _, e := range g.Enemies {
		if e.Active {
			e.Freeze(frames)
		}
	}
}

// DestroyAllEnemies уничтожает всех живых врагов без очков и бонусов
func (g *Game) DestroyAllEnemies() int {
	n := 0
	for _, e := range g.Enemies {
		if !e.Active {
			continue
		}
		e.Destroy()
		g.Level.EnemyDestroyed()
		g.Stats.EnemiesKilled++
		g.EventDispatcher.Dispatch(event.Event{
			Type: event.EnemyDestroyed,
			Data: event.EnemyDestroyedData{Enemy: e.Kind, By: types.OwnerEnemy, ByBomb: true},
		})
		n++
	}
	return n
}
