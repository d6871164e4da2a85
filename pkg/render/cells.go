package render

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
)

// Размер клетки терминала в пикселях холста. Клетка делится на верхнюю
// и нижнюю половину символом '▀'.
const (
	CellWidth  = 4
	CellHeight = 8
)

// CellGrid размер терминальной картинки для кадра w×h
func CellGrid(w, h int) (cols, rows int) {
	return (w + CellWidth - 1) / CellWidth, (h + CellHeight - 1) / CellHeight
}

// BlitCells переносит кадр в tcell.Screen: каждая клетка берёт цвет
// центров своих половин, строки текста ложатся поверх по клеткам
func BlitCells(screen tcell.Screen, f *Frame, offX, offY int) {
	cols, rows := CellGrid(f.W, f.H)
	for cy := 0; cy < rows; cy++ {
		for cx := 0; cx < cols; cx++ {
			px := cx*CellWidth + CellWidth/2
			top := f.At(px, cy*CellHeight+CellHeight/4)
			bottom := f.At(px, cy*CellHeight+3*CellHeight/4)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			screen.SetContent(offX+cx, offY+cy, '▀', nil, style)
		}
	}
	for _, t := range f.Texts {
		cx, cy := t.X/CellWidth, (t.Y+GlyphHeight/2)/CellHeight
		bg := f.At(t.X, t.Y+GlyphHeight/2)
		style := tcell.StyleDefault.Foreground(toTcell(t.Color)).Background(toTcell(bg)).Bold(true)
		for i, r := range []rune(t.Text) {
			if cx+i >= cols {
				break
			}
			screen.SetContent(offX+cx+i, offY+cy, r, nil, style)
		}
	}
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
