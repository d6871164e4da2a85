// internal/ui/hud.go
package ui

import (
	"image/color"
	"strconv"

	"go-battle-city/internal/app"
	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"
)

const (
	ReserveCols    = 2
	ReserveIcon    = 4
	ReserveSpacing = 2
)

// HUD правая колонка: запас врагов, жизни игроков, номер уровня
type HUD struct {
	X, Y int
}

func NewHUD() *HUD {
	return &HUD{X: config.HUDX, Y: config.FieldY + 8}
}

// Draw рисует колонку по состоянию мира
func (h *HUD) Draw(dst render.Sink, g *app.Game) {
	y := h.drawReserve(dst, g.Level.EnemiesToSpawn())
	y += 16
	for i := 0; i < 2; i++ {
		lives := -1
		if i < len(g.Players) {
			lives = g.Players[i].Lives
		}
		y = h.drawLives(dst, y, i, lives)
	}
	h.drawStage(dst, config.ScreenHeight-48, g.Level.Level())
}

// drawReserve сетка значков ещё не появившихся врагов; возвращает низ сетки
func (h *HUD) drawReserve(dst render.Sink, left int) int {
	step := ReserveIcon + ReserveSpacing
	for j := 0; j < config.EnemiesPerLevel; j++ {
		x := h.X + (j%ReserveCols)*step
		y := h.Y + (j/ReserveCols)*step
		if j < left {
			dst.FillRect(x, y, ReserveIcon, ReserveIcon, config.TextDarkColor)
		}
	}
	rows := (config.EnemiesPerLevel + ReserveCols - 1) / ReserveCols
	return h.Y + rows*step
}

// drawLives "1P" и запас жизней; lives < 0 значит игрока нет
func (h *HUD) drawLives(dst render.Sink, y, index, lives int) int {
	if lives < 0 {
		return y
	}
	dst.DrawText(h.X, y, strconv.Itoa(index+1)+"P", config.TextDarkColor)
	y += render.GlyphHeight
	dst.FillRect(h.X, y+3, 6, 6, config.PlayerColors[index%len(config.PlayerColors)])
	dst.DrawText(h.X+8, y, strconv.Itoa(max(lives-1, 0)), config.TextDarkColor)
	return y + render.GlyphHeight + 4
}

// drawStage флажок и номер уровня с обводкой
func (h *HUD) drawStage(dst render.Sink, y, level int) {
	dst.FillRect(h.X, y, 1, 12, config.TextDarkColor)
	dst.FillRect(h.X+1, y, 7, 5, config.TextAccentColor)
	drawOutlined(dst, h.X, y+14, strconv.Itoa(level), config.TextDarkColor, config.TextLightColor)
}

// drawOutlined текст с однопиксельной обводкой
func drawOutlined(dst render.Sink, x, y int, s string, fg, outline color.RGBA) {
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			dst.DrawText(x+dx, y+dy, s, outline)
		}
	}
	dst.DrawText(x, y, s, fg)
}

// centerX левый край строки s, выровненной по центру холста
func centerX(s string) int {
	return (config.ScreenWidth - render.TextWidth(s)) / 2
}
