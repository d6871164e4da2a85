package render

import "image/color"

// Sink поверхность для отрисовки в координатах логического холста
type Sink interface {
	FillRect(x, y, w, h int, c color.RGBA)
	StrokeRect(x, y, w, h int, c color.RGBA)
	DrawText(x, y int, s string, c color.RGBA)
}

// Rotation поворот спрайта по часовой стрелке на четверть оборота
type Rotation int

const (
	RotateNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

// SpriteSize сторона спрайта в пикселях
const SpriteSize = 8

// spriteIndex индекс исходного пикселя для пикселя (x, y) повёрнутого спрайта
func spriteIndex(x, y int, rot Rotation) int {
	const n = SpriteSize - 1
	switch rot {
	case Rotate90:
		return (n-x)*SpriteSize + y
	case Rotate180:
		return (n-y)*SpriteSize + (n - x)
	case Rotate270:
		return x*SpriteSize + (n - y)
	}
	return y*SpriteSize + x
}

// DrawSprite рисует спрайт 8×8 с увеличением scale, объединяя
// одинаковые пиксели строки в один прямоугольник
func DrawSprite(s Sink, x, y, scale int, bitmap *[64]uint8, rot Rotation, base color.RGBA) {
	if bitmap == nil {
		return
	}
	if scale < 1 {
		scale = 1
	}
	for row := 0; row < SpriteSize; row++ {
		col := 0
		for col < SpriteSize {
			v := bitmap[spriteIndex(col, row, rot)]
			run := 1
			for col+run < SpriteSize && bitmap[spriteIndex(col+run, row, rot)] == v {
				run++
			}
			if c, ok := ShadeFor(v, base); ok {
				s.FillRect(x+col*scale, y+row*scale, run*scale, scale, c)
			}
			col += run
		}
	}
}

// TextWidth ширина строки моноширинным шрифтом 7×13
func TextWidth(s string) int {
	return len([]rune(s)) * GlyphWidth
}

// Метрики basicfont.Face7x13
const (
	GlyphWidth  = 7
	GlyphHeight = 13
	GlyphAscent = 11
)
