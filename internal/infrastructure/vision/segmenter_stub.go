//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

type Segmenter struct {
	InputSize     image.Point
	MaskThreshold float32
	CannyLow      float32
	CannyHigh     float32
}

// NewSegmenter возвращает ошибку, если сборка без тега gocv.
func NewSegmenter(modelPath string) (*Segmenter, error) {
	_ = modelPath
	return nil, ErrGoCVDisabled
}

// Segment возвращает ошибку, если сборка без тега gocv.
func (s *Segmenter) Segment(ctx context.Context, img image.Image) (*entity.Outline, error) {
	_ = ctx
	_ = img
	return nil, ErrGoCVDisabled
}

func (s *Segmenter) Close() error {
	return nil
}
