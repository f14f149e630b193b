//go:build !gocv
// +build !gocv

package vision

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

type PoseDetector struct {
	InputSize     image.Point
	MinConfidence float32
}

// NewPoseDetector возвращает ошибку, если сборка без тега gocv.
func NewPoseDetector(modelPath, configPath string) (*PoseDetector, error) {
	_ = modelPath
	_ = configPath
	return nil, ErrGoCVDisabled
}

// Detect возвращает ошибку, если сборка без тега gocv.
func (d *PoseDetector) Detect(ctx context.Context, img image.Image) (*entity.LandmarkSet, error) {
	_ = ctx
	_ = img
	return nil, ErrGoCVDisabled
}

func (d *PoseDetector) Close() error {
	return nil
}
