package render

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"body-measure/internal/domain/entity"
)

// Annotate рисует на копии изображения четыре маркера и две надписи
func Annotate(img image.Image, m *entity.Measurement, palette Palette) *image.NRGBA {
	dst := imaging.Clone(img)

	colors := palette.markerColors()
	for i, p := range m.Markers() {
		fillCircle(dst, p.Image(), MarkerRadius, colors[i])
	}

	drawLabel(dst, ShoulderLabel(m), shoulderTextOrigin, palette.ShoulderText)
	drawLabel(dst, EdgeLabel(m), edgeTextOrigin, palette.EdgeText)

	return dst
}

// fillCircle закрашивает круг; точки за пределами изображения пропускаются
func fillCircle(dst *image.NRGBA, center image.Point, radius int, c color.RGBA) {
	b := dst.Bounds()
	r2 := radius * radius
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			if dx*dx+dy*dy > r2 {
				continue
			}
			p := image.Pt(center.X+dx, center.Y+dy)
			if p.In(b) {
				dst.Set(p.X, p.Y, c)
			}
		}
	}
}

func drawLabel(dst *image.NRGBA, text string, origin image.Point, c color.RGBA) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(origin.X, origin.Y),
	}
	d.DrawString(text)
}
