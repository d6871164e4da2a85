package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// EbitenSink рисует прямо в ebiten.Image логического размера
type EbitenSink struct {
	Screen *ebiten.Image
	Face   font.Face
}

func NewEbitenSink(screen *ebiten.Image) *EbitenSink {
	return &EbitenSink{Screen: screen, Face: basicfont.Face7x13}
}

func (s *EbitenSink) FillRect(x, y, w, h int, c color.RGBA) {
	vector.DrawFilledRect(s.Screen, float32(x), float32(y), float32(w), float32(h), c, false)
}

func (s *EbitenSink) StrokeRect(x, y, w, h int, c color.RGBA) {
	vector.StrokeRect(s.Screen, float32(x)+0.5, float32(y)+0.5, float32(w-1), float32(h-1), 1, c, false)
}

// DrawText y задаёт верх строки, а не базовую линию
func (s *EbitenSink) DrawText(x, y int, str string, c color.RGBA) {
	text.Draw(s.Screen, str, s.Face, x, y+GlyphAscent, c)
}
