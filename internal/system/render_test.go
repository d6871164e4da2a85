package system

import (
	"testing"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/defs"
	"go-battle-city/internal/types"
	"go-battle-city/internal/utils"
	"go-battle-city/pkg/render"
	"go-battle-city/pkg/tilemap"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newWorld() *app.Game {
	return app.NewGame(app.Deps{Rng: utils.NewPRNGService(config.DefaultSeed), Logger: zerolog.Nop()})
}

func TestRenderTerrainColors(t *testing.T) {
	g := newWorld()
	grid := g.Level.Grid()
	grid.Set(2, 2, tilemap.Water)
	grid.Set(3, 2, tilemap.Grass)
	f := render.NewFrame(config.ScreenWidth, config.ScreenHeight)

	NewRenderSystem(g).Draw(f)

	x, y := grid.TileToPixel(2, 2)
	assert.Equal(t, config.WaterColor, f.At(x, y))
	x, y = grid.TileToPixel(3, 2)
	assert.Equal(t, config.FieldColor, f.At(x+5, y+5))
	assert.Equal(t, config.HUDColor, f.At(2, 2), "рамка вокруг поля")
	assert.Equal(t, render.DarkenColor(config.SteelColor), f.At(config.FieldX, config.FieldY))
}

func TestRenderBaseState(t *testing.T) {
	g := newWorld()
	f := render.NewFrame(config.ScreenWidth, config.ScreenHeight)
	NewRenderSystem(g).Draw(f)
	// нижний ряд спрайта штаба сплошной
	box := g.Level.BaseBounds()
	assert.Equal(t, config.BaseColor, f.At(box.X, box.Y+box.H-1))
}

func TestRenderEntities(t *testing.T) {
	g := newWorld()
	g.EnsurePlayers(1)
	g.SpawnEnemy(defs.EnemyFast, types.FromPixels(100, 100))
	g.FreezeEnemies(10)
	g.SpawnBullet(types.FromPixels(60, 60), types.DirUp, types.OwnerEnemy, 1)
	f := render.NewFrame(config.ScreenWidth, config.ScreenHeight)

	NewRenderSystem(g).Draw(f)

	// гусеница левого нижнего угла танка врага
	assert.Equal(t, config.FrozenColor, f.At(101, 106))
	assert.Equal(t, config.BulletColor, f.At(60, 60))
}

func TestRotationFor(t *testing.T) {
	assert.Equal(t, render.RotateNone, rotationFor(types.DirUp))
	assert.Equal(t, render.Rotate90, rotationFor(types.DirRight))
	assert.Equal(t, render.Rotate180, rotationFor(types.DirDown))
	assert.Equal(t, render.Rotate270, rotationFor(types.DirLeft))
}
