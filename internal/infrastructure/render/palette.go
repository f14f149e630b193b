package render

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// DefaultMarkerColors цвета маркеров: левое плечо, правое плечо, левая граница, правая граница
const DefaultMarkerColors = "#0000ff,#00ffff,#00ff00,#ff0000"

// Palette цвета разметки результата
type Palette struct {
	LeftShoulder  color.RGBA
	RightShoulder color.RGBA
	Leftmost      color.RGBA
	Rightmost     color.RGBA
	ShoulderText  color.RGBA
	EdgeText      color.RGBA
}

// DefaultPalette синий и голубой для плеч, зелёный и красный для границ
func DefaultPalette() Palette {
	p, err := ParsePalette(DefaultMarkerColors)
	if err != nil {
		panic(err)
	}
	return p
}

// ParsePalette разбирает четыре hex-цвета через запятую в порядке маркеров.
// Надписи берут цвет маркеров границ: длина плеч зелёным, расстояние между границами синим.
func ParsePalette(spec string) (Palette, error) {
	parts := strings.Split(spec, ",")
	if len(parts) != 4 {
		return Palette{}, fmt.Errorf("marker colors: want 4 hex colors, got %d", len(parts))
	}

	var cols [4]color.RGBA
	for i, part := range parts {
		c, err := colorful.Hex(strings.TrimSpace(part))
		if err != nil {
			return Palette{}, fmt.Errorf("marker colors: %w", err)
		}
		r, g, b := c.RGB255()
		cols[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}

	return Palette{
		LeftShoulder:  cols[0],
		RightShoulder: cols[1],
		Leftmost:      cols[2],
		Rightmost:     cols[3],
		ShoulderText:  cols[2],
		EdgeText:      cols[0],
	}, nil
}

// markerColors цвета в порядке entity.Measurement.Markers
func (p Palette) markerColors() [4]color.RGBA {
	return [4]color.RGBA{p.LeftShoulder, p.RightShoulder, p.Leftmost, p.Rightmost}
}
