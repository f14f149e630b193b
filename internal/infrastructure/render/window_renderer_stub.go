//go:build !gocv
// +build !gocv

package render

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

type WindowRenderer struct {
	palette Palette
}

// NewWindowRenderer создаёт рендерер-заглушку (без OpenCV).
func NewWindowRenderer(palette Palette) *WindowRenderer {
	return &WindowRenderer{palette: palette}
}

// Render возвращает ошибку, если сборка без тега gocv.
func (r *WindowRenderer) Render(ctx context.Context, img image.Image, m *entity.Measurement) error {
	_ = ctx
	_ = img
	_ = m
	return ErrWindowUnavailable
}
