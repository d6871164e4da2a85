package app

import (
	"go-battle-city/internal/entity"
	"go-battle-city/internal/event"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/tilemap"
)

// CanOccupy проверка позиции танка: поле, непроходимые клетки, штаб,
// другие танки. Упершийся в танк враг получает сигнал отхода.
func (g *Game) CanOccupy(t *entity.Tank, box types.Rect) bool {
	if !g.Level.FieldBounds().ContainsRect(box) {
		return false
	}
	corners := [4][2]int{
		{box.X, box.Y},
		{box.X + box.W - 1, box.Y},
		{box.X, box.Y + box.H - 1},
		{box.X + box.W - 1, box.Y + box.H - 1},
	}
	for _, c := range corners {
		if g.Level.IsBlocked(c[0], c[1], false) {
			return false
		}
	}
	if box.Intersects(g.Level.BaseBounds()) {
		return false
	}
	if other := g.tankAt(box, t); other != nil {
		g.signalCollision(t)
		g.signalCollision(other)
		return false
	}
	return true
}

// tankAt активный танк, который box задел бы заново; self исключается,
// уже существующее перекрытие с self не считается
func (g *Game) tankAt(box types.Rect, self *entity.Tank) *entity.Tank {
	blocks := func(other *entity.Tank) bool {
		if other == self || !other.Active {
			return false
		}
		ob := other.Bounds()
		if !ob.Intersects(box) {
			return false
		}
		return self == nil || !ob.Intersects(self.Bounds())
	}
	for _, p := range g.Players {
		if blocks(&p.Tank) {
			return &p.Tank
		}
	}
	for _, e := range g.Enemies {
		if blocks(&e.Tank) {
			return &e.Tank
		}
	}
	return nil
}

func (g *Game) signalCollision(t *entity.Tank) {
	for _, e := range g.Enemies {
		if &e.Tank == t {
			e.SignalEvade()
			return
		}
	}
}

// updateBullets движение и разрешение столкновений: поле, штаб, танки.
// Снаряд гасится первым же столкновением.
func (g *Game) updateBullets() {
	for i := range g.Bullets {
		b := &g.Bullets[i]
		if !b.Active {
			continue
		}
		b.Update()
		if !b.Active {
			continue
		}
		if g.hitTerrain(b) || g.hitBase(b) || g.hitTank(b) {
			b.Deactivate()
		}
	}
}

func (g *Game) hitTerrain(b *entity.Bullet) bool {
	cx, cy := b.Center()
	if !g.Level.FieldBounds().Contains(cx, cy) {
		return true
	}
	switch g.Level.TerrainAtPixel(cx, cy) {
	case tilemap.Brick, tilemap.BaseBrick:
		tx, ty := g.Level.Grid().PixelToTile(cx, cy)
		g.Level.DestroyTerrainAt(cx, cy)
		g.Stats.BricksDestroyed++
		g.EventDispatcher.Dispatch(event.Event{Type: event.BrickDestroyed, Data: event.TerrainData{TileX: tx, TileY: ty}})
		return true
	case tilemap.Steel:
		if b.Power >= 2 {
			return false
		}
		g.EventDispatcher.Dispatch(event.Event{Type: event.BulletHit, Data: event.ShotData{Owner: b.Owner, X: cx, Y: cy}})
		return true
	}
	return false
}

func (g *Game) hitBase(b *entity.Bullet) bool {
	if g.baseDestroyed || !b.Bounds().Intersects(g.Level.BaseBounds()) {
		return false
	}
	g.baseDestroyed = true
	g.EventDispatcher.Dispatch(event.Event{Type: event.BaseDestroyed})
	g.logger.Info().Str("by", b.Owner.String()).Msg("Base destroyed")
	return true
}

func (g *Game) hitTank(b *entity.Bullet) bool {
	box := b.Bounds()
	if b.Owner.IsPlayer() {
		for _, e := range g.Enemies {
			if !e.Active || !e.Bounds().Intersects(box) {
				continue
			}
			if e.TakeDamage(1) && !e.Active {
				g.onEnemyKilled(e, b.Owner)
			} else {
				cx, cy := b.Center()
				g.EventDispatcher.Dispatch(event.Event{Type: event.BulletHit, Data: event.ShotData{Owner: b.Owner, X: cx, Y: cy}})
			}
			return true
		}
		return false
	}
	for _, p := range g.Players {
		if !p.Active || !p.Bounds().Intersects(box) {
			continue
		}
		if !p.TakeDamage(1) || p.Active {
			cx, cy := b.Center()
			g.EventDispatcher.Dispatch(event.Event{Type: event.BulletHit, Data: event.ShotData{Owner: b.Owner, X: cx, Y: cy}})
		}
		return true
	}
	return false
}

// onEnemyKilled очки стрелявшему, учёт уровня, бросок на бонус
func (g *Game) onEnemyKilled(e *entity.EnemyTank, by types.Owner) {
	score := 0
	if p := g.playerByOwner(by); p != nil {
		score = p.CalculateEnemyScore(e.Kind)
		p.AddScore(score)
	}
	g.Level.EnemyDestroyed()
	g.Stats.EnemiesKilled++
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.EnemyDestroyed,
		Data: event.EnemyDestroyedData{Enemy: e.Kind, By: by, Score: score},
	})
	if g.Level.ShouldSpawnPowerUp() {
		cx, cy := e.Center()
		g.SpawnPowerUp(types.FromPixels(cx, cy))
	}
}
