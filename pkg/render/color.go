// pkg/render/color.go
package render

import "image/color"

// Значения пикселей спрайта
const (
	PixelClear     uint8 = 0
	PixelMain      uint8 = 1
	PixelShade     uint8 = 2
	PixelHighlight uint8 = 3
)

// DarkenColor reduces the brightness of a color.
func DarkenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: uint8(float64(c.R) * 0.5),
		G: uint8(float64(c.G) * 0.5),
		B: uint8(float64(c.B) * 0.5),
		A: c.A,
	}
}

// LightenColor сдвигает цвет на половину пути к белому
func LightenColor(c color.RGBA) color.RGBA {
	return color.RGBA{
		R: c.R + (255-c.R)/2,
		G: c.G + (255-c.G)/2,
		B: c.B + (255-c.B)/2,
		A: c.A,
	}
}

// MixColor линейная смесь a и b, t в [0,1]
func MixColor(a, b color.RGBA, t float64) color.RGBA {
	if t <= 0 {
		return a
	}
	if t >= 1 {
		return b
	}
	mix := func(x, y uint8) uint8 {
		return uint8(float64(x) + (float64(y)-float64(x))*t)
	}
	return color.RGBA{R: mix(a.R, b.R), G: mix(a.G, b.G), B: mix(a.B, b.B), A: mix(a.A, b.A)}
}

// ShadeFor цвет пикселя спрайта по его значению; ok=false для прозрачного
func ShadeFor(v uint8, base color.RGBA) (color.RGBA, bool) {
	switch v {
	case PixelMain:
		return base, true
	case PixelShade:
		return DarkenColor(base), true
	case PixelHighlight:
		return LightenColor(base), true
	}
	return color.RGBA{}, false
}
