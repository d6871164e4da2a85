// internal/system/render.go
package system

import (
	"image/color"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/entity"
	"go-battle-city/internal/types"
	"go-battle-city/pkg/render"
	"go-battle-city/pkg/tilemap"
)

// RenderSystem рисует поле и сущности мира
type RenderSystem struct {
	game *app.Game
}

func NewRenderSystem(game *app.Game) *RenderSystem {
	return &RenderSystem{game: game}
}

// Draw один кадр поля; фаза мигания берётся из счётчика тиков мира
func (s *RenderSystem) Draw(dst render.Sink) {
	ticks := int(s.game.Stats.Ticks)
	field := s.game.Level.FieldBounds()
	dst.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.HUDColor)
	dst.FillRect(field.X, field.Y, field.W, field.H, config.FieldColor)

	s.drawTerrain(dst, ticks)
	s.drawBase(dst)
	for _, p := range s.game.Players {
		if p.Active {
			s.drawPlayer(dst, p, ticks)
		}
	}
	for _, e := range s.game.Enemies {
		if e.Active {
			s.drawEnemy(dst, e, ticks)
		}
	}
	for i := range s.game.Bullets {
		b := &s.game.Bullets[i]
		if b.Active {
			box := b.Bounds()
			dst.FillRect(box.X, box.Y, box.W, box.H, config.BulletColor)
		}
	}
	// бонус мигает последние две секунды жизни
	for _, u := range s.game.PowerUps {
		if u.Active && (u.Lifetime > 120 || (ticks/8)%2 == 0) {
			s.drawPowerUp(dst, u)
		}
	}
}

func (s *RenderSystem) drawTerrain(dst render.Sink, ticks int) {
	grid := s.game.Level.Grid()
	for ty := 0; ty < tilemap.Size; ty++ {
		for tx := 0; tx < tilemap.Size; tx++ {
			x, y := grid.TileToPixel(tx, ty)
			drawTile(dst, grid.At(tx, ty), x, y, grid.TileSize, ticks)
		}
	}
}

func drawTile(dst render.Sink, t tilemap.TerrainType, x, y, size, ticks int) {
	half := size / 2
	switch t {
	case tilemap.Brick, tilemap.BaseBrick:
		dst.FillRect(x, y, size, size, config.BrickColor)
		for row := 0; row < size; row += 4 {
			dst.FillRect(x, y+row+3, size, 1, config.BrickLineColor)
			shift := 0
			if (row/4)%2 == 1 {
				shift = half / 2
			}
			for col := shift; col < size; col += half {
				dst.FillRect(x+col, y+row, 1, 3, config.BrickLineColor)
			}
		}
	case tilemap.Steel:
		for _, q := range [4][2]int{{0, 0}, {half, 0}, {0, half}, {half, half}} {
			dst.FillRect(x+q[0], y+q[1], half, half, render.DarkenColor(config.SteelColor))
			dst.FillRect(x+q[0]+1, y+q[1]+1, half-2, half-2, config.SteelColor)
			dst.FillRect(x+q[0]+2, y+q[1]+2, half/2, half/2, config.SteelEdgeColor)
		}
	case tilemap.Water:
		dst.FillRect(x, y, size, size, config.WaterColor)
		phase := (ticks / 30) % 2
		for row := 2 + phase*2; row < size; row += 4 {
			dst.FillRect(x+2, y+row, size-4, 1, render.LightenColor(config.WaterColor))
		}
	}
}

func (s *RenderSystem) drawBase(dst render.Sink) {
	box := s.game.Level.BaseBounds()
	c := config.BaseColor
	if s.game.BaseDestroyed() {
		c = config.BaseDeadColor
	}
	render.DrawSprite(dst, box.X, box.Y, box.W/render.SpriteSize, &entity.BaseSprite, render.RotateNone, c)
}

func (s *RenderSystem) drawPlayer(dst render.Sink, p *entity.PlayerTank, ticks int) {
	c := config.PlayerColors[p.Index%len(config.PlayerColors)]
	// с ростом уровня танк светлеет
	for i := 0; i < p.Level; i++ {
		c = render.MixColor(c, config.TextLightColor, 0.2)
	}
	drawTank(dst, &p.Tank, c, ticks)
	if p.Shield && (ticks/2)%2 == 0 {
		box := p.Bounds()
		dst.StrokeRect(box.X-1, box.Y-1, box.W+2, box.H+2, config.ShieldColor)
	}
}

func (s *RenderSystem) drawEnemy(dst render.Sink, e *entity.EnemyTank, ticks int) {
	c := config.EnemyColors[int(e.Kind)%len(config.EnemyColors)]
	if e.Health < e.MaxHealth {
		c = render.DarkenColor(c)
	}
	if e.Frozen() {
		c = config.FrozenColor
	}
	drawTank(dst, &e.Tank, c, ticks)
}

func drawTank(dst render.Sink, t *entity.Tank, c color.RGBA, ticks int) {
	if t.Invincible && (ticks/2)%2 == 1 {
		return
	}
	box := t.Bounds()
	frame := &entity.TankSprites[t.AnimFrame%len(entity.TankSprites)]
	render.DrawSprite(dst, box.X, box.Y, box.W/render.SpriteSize, frame, rotationFor(t.Direction), c)
}

func (s *RenderSystem) drawPowerUp(dst render.Sink, u *entity.PowerUp) {
	box := u.Bounds()
	c := config.PowerUpColor
	if u.AnimFrame%config.PowerUpAnimPhases >= config.PowerUpAnimPhases/2 {
		c = config.TextLightColor
	}
	dst.FillRect(box.X-1, box.Y-1, box.W+2, box.H+2, config.TextDarkColor)
	render.DrawSprite(dst, box.X, box.Y, box.W/render.SpriteSize, u.Icon(), render.RotateNone, c)
}

// rotationFor спрайты танков нарисованы дулом вверх
func rotationFor(d types.Direction) render.Rotation {
	switch d {
	case types.DirRight:
		return render.Rotate90
	case types.DirDown:
		return render.Rotate180
	case types.DirLeft:
		return render.Rotate270
	}
	return render.RotateNone
}
