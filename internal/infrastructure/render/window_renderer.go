//go:build gocv
// +build gocv

package render

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

// WindowRenderer показывает размеченное изображение в окне OpenCV до нажатия любой клавиши
type WindowRenderer struct {
	palette Palette
}

// NewWindowRenderer создаёт рендерер в окно
func NewWindowRenderer(palette Palette) *WindowRenderer {
	return &WindowRenderer{palette: palette}
}

// Render рисует маркеры средствами OpenCV и блокируется до закрытия окна
func (r *WindowRenderer) Render(ctx context.Context, img image.Image, m *entity.Measurement) error {
	_ = ctx
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	colors := r.palette.markerColors()
	for i, p := range m.Markers() {
		gocv.Circle(&mat, p.Image(), MarkerRadius, colors[i], -1)
	}
	gocv.PutText(&mat, ShoulderLabel(m), shoulderTextOrigin, gocv.FontHersheySimplex, 1, r.palette.ShoulderText, 2)
	gocv.PutText(&mat, EdgeLabel(m), edgeTextOrigin, gocv.FontHersheySimplex, 1, r.palette.EdgeText, 2)

	window := gocv.NewWindow(windowTitle)
	defer window.Close()

	window.IMShow(mat)
	window.WaitKey(0)
	return nil
}

var _ port.ResultRenderer = (*WindowRenderer)(nil)
