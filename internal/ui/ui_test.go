package ui

import (
	"testing"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/internal/utils"
	"go-battle-city/pkg/render"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func newFrame() *render.Frame {
	return render.NewFrame(config.ScreenWidth, config.ScreenHeight)
}

func TestHUDShowsReserveLivesAndStage(t *testing.T) {
	g := app.NewGame(app.Deps{Rng: utils.NewPRNGService(1), Logger: zerolog.Nop()})
	g.EnsurePlayers(1)
	g.StartLevel(7)
	f := newFrame()
	f.Clear(config.HUDColor)

	h := NewHUD()
	h.Draw(f, g)

	assert.True(t, f.HasText("1P"))
	assert.False(t, f.HasText("2P"))
	assert.True(t, f.HasText("2"), "запас жизней без текущей")
	assert.True(t, f.HasText("7"))

	// все двадцать значков на месте
	step := ReserveIcon + ReserveSpacing
	last := config.EnemiesPerLevel - 1
	assert.Equal(t, config.TextDarkColor, f.At(h.X+(last%ReserveCols)*step, h.Y+(last/ReserveCols)*step))
}

func TestHUDReserveShrinks(t *testing.T) {
	f := newFrame()
	f.Clear(config.HUDColor)
	h := NewHUD()
	h.drawReserve(f, 3)

	assert.Equal(t, config.TextDarkColor, f.At(h.X, h.Y+ReserveIcon+ReserveSpacing))
	assert.Equal(t, config.HUDColor, f.At(h.X+ReserveIcon+ReserveSpacing, h.Y+ReserveIcon+ReserveSpacing))
}

func TestScreens(t *testing.T) {
	f := newFrame()
	DrawMenu(f, 1, 12300)
	assert.True(t, f.HasText("HI- 12300"))
	assert.True(t, f.HasText("2 PLAYERS"))
	x := centerX(MenuItems[1])
	assert.Equal(t, config.PlayerColors[0], f.At(x-12, 135))

	f = newFrame()
	DrawPause(f, true)
	assert.True(t, f.HasText("PAUSE"))
	f = newFrame()
	DrawPause(f, false)
	assert.False(t, f.HasText("PAUSE"))

	f = newFrame()
	DrawGameOver(f, []int{100, 200}, 500)
	assert.True(t, f.HasText("GAME OVER"))
	assert.True(t, f.HasText("2P     200"))
	assert.True(t, f.HasText("HI     500"))

	f = newFrame()
	DrawStageClear(f, 4, []int{700}, 700)
	assert.True(t, f.HasText("STAGE 4"))
}
