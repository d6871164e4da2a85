package ui

import (
	"fmt"

	"go-battle-city/internal/config"
	"go-battle-city/pkg/render"
)

// MenuItems пункты главного меню
var MenuItems = []string{"1 PLAYER", "2 PLAYERS"}

// DrawMenu заставка с выбором числа игроков и рекордом
func DrawMenu(dst render.Sink, selected, highScore int) {
	dst.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
	title := "BATTLE CITY"
	drawOutlined(dst, centerX(title), 40, title, config.BrickColor, config.TextAccentColor)

	hi := fmt.Sprintf("HI- %d", highScore)
	dst.DrawText(centerX(hi), 16, hi, config.TextLightColor)

	for i, item := range MenuItems {
		y := 110 + i*20
		x := centerX(MenuItems[1])
		dst.DrawText(x, y, item, config.TextLightColor)
		if i == selected {
			dst.FillRect(x-14, y+3, 7, 7, config.PlayerColors[0])
		}
	}
	hint := "ENTER TO START"
	dst.DrawText(centerX(hint), 190, hint, config.HUDColor)
}

// DrawPause затемнение поля и надпись
func DrawPause(dst render.Sink, blink bool) {
	dst.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
	if blink {
		msg := "PAUSE"
		dst.DrawText(centerX(msg), config.ScreenHeight/2-render.GlyphHeight/2, msg, config.TextAccentColor)
	}
}

// DrawGameOver итоговый экран партии
func DrawGameOver(dst render.Sink, scores []int, highScore int) {
	dst.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor)
	msg := "GAME OVER"
	drawOutlined(dst, centerX(msg), 70, msg, config.TextAccentColor, config.TextDarkColor)
	drawScores(dst, 110, scores, highScore)
}

// DrawStageClear таблица очков между уровнями
func DrawStageClear(dst render.Sink, level int, scores []int, highScore int) {
	dst.FillRect(0, 0, config.ScreenWidth, config.ScreenHeight, config.BackgroundColor)
	msg := fmt.Sprintf("STAGE %d", level)
	dst.DrawText(centerX(msg), 60, msg, config.TextLightColor)
	drawScores(dst, 100, scores, highScore)
}

func drawScores(dst render.Sink, y int, scores []int, highScore int) {
	for i, s := range scores {
		line := fmt.Sprintf("%dP %7d", i+1, s)
		dst.DrawText(centerX(line), y+i*16, line, config.PlayerColors[i%len(config.PlayerColors)])
	}
	hi := fmt.Sprintf("HI %7d", highScore)
	dst.DrawText(centerX(hi), y+len(scores)*16+8, hi, config.TextLightColor)
}
