package render

import "image/color"

// TextSpan строка текста, записанная в кадр
type TextSpan struct {
	X, Y  int
	Text  string
	Color color.RGBA
}

// Frame программный кадр: пиксели холста и список строк текста.
// Используется терминальным выводом и тестами.
type Frame struct {
	W, H  int
	Pix   []color.RGBA
	Texts []TextSpan
}

func NewFrame(w, h int) *Frame {
	return &Frame{W: w, H: h, Pix: make([]color.RGBA, w*h)}
}

// Clear заливает кадр цветом c и удаляет текст
func (f *Frame) Clear(c color.RGBA) {
	for i := range f.Pix {
		f.Pix[i] = c
	}
	f.Texts = f.Texts[:0]
}

// At цвет пикселя; вне кадра нулевой цвет
func (f *Frame) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= f.W || y >= f.H {
		return color.RGBA{}
	}
	return f.Pix[y*f.W+x]
}

func (f *Frame) FillRect(x, y, w, h int, c color.RGBA) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, f.W), min(y+h, f.H)
	for py := y0; py < y1; py++ {
		row := f.Pix[py*f.W : (py+1)*f.W]
		for px := x0; px < x1; px++ {
			row[px] = blend(row[px], c)
		}
	}
}

func (f *Frame) StrokeRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	f.FillRect(x, y, w, 1, c)
	f.FillRect(x, y+h-1, w, 1, c)
	f.FillRect(x, y+1, 1, h-2, c)
	f.FillRect(x+w-1, y+1, 1, h-2, c)
}

func (f *Frame) DrawText(x, y int, s string, c color.RGBA) {
	f.Texts = append(f.Texts, TextSpan{X: x, Y: y, Text: s, Color: c})
}

// HasText true, если в кадре есть строка s
func (f *Frame) HasText(s string) bool {
	for _, t := range f.Texts {
		if t.Text == s {
			return true
		}
	}
	return false
}

// blend наложение src поверх dst по альфе src
func blend(dst, src color.RGBA) color.RGBA {
	if src.A == 255 {
		return src
	}
	a := float64(src.A) / 255
	return color.RGBA{
		R: uint8(float64(src.R)*a + float64(dst.R)*(1-a)),
		G: uint8(float64(src.G)*a + float64(dst.G)*(1-a)),
		B: uint8(float64(src.B)*a + float64(dst.B)*(1-a)),
		A: 255,
	}
}
