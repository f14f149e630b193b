//go:build gocv
// +build gocv

package vision

import (
	"context"
	"fmt"
	"image"

	"gocv.io/x/gocv"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

// PoseDetector ищет точки позы сетью OpenPose BODY_25 через OpenCV DNN
type PoseDetector struct {
	net           gocv.Net
	InputSize     image.Point
	MinConfidence float32
}

// NewPoseDetector загружает модель позы. Модель нужно закрыть через Close.
func NewPoseDetector(modelPath, configPath string) (*PoseDetector, error) {
	net := gocv.ReadNet(modelPath, configPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to load pose model %s", modelPath)
	}

	return &PoseDetector{
		net:           net,
		InputSize:     image.Pt(368, 368),
		MinConfidence: 0.1,
	}, nil
}

// Detect прогоняет сеть и берёт максимум тепловой карты для каждой нужной точки
func (d *PoseDetector) Detect(ctx context.Context, img image.Image) (*entity.LandmarkSet, error) {
	_ = ctx
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("%w: empty image", entity.ErrLandmarkNotFound)
	}

	blob := gocv.BlobFromImage(mat, 1.0/255.0, d.InputSize, gocv.NewScalar(0, 0, 0, 0), false, false)
	defer blob.Close()

	d.net.SetInput(blob, "")
	prob := d.net.Forward("")
	defer prob.Close()

	dims := prob.Size()
	if len(dims) != 4 || dims[1] <= body25LeftHeel {
		return nil, fmt.Errorf("unexpected pose output shape %v", dims)
	}
	h, w := dims[2], dims[3]

	parts := [3]int{body25LeftShoulder, body25RightShoulder, body25LeftHeel}
	var found [3]entity.NormalizedLandmark
	for i, part := range parts {
		heatmap, err := prob.FromPtr(h, w, gocv.MatTypeCV32F, 0, part)
		if err != nil {
			return nil, fmt.Errorf("read heatmap %d: %w", part, err)
		}
		_, maxVal, _, maxLoc := gocv.MinMaxLoc(heatmap)
		heatmap.Close()

		if maxVal < d.MinConfidence {
			return nil, fmt.Errorf("%w: part %d confidence %.2f", entity.ErrLandmarkNotFound, part, maxVal)
		}
		found[i] = entity.NormalizedLandmark{
			X: float64(maxLoc.X) / float64(w),
			Y: float64(maxLoc.Y) / float64(h),
		}
	}

	return entity.NewLandmarkSet(found[0], found[1], found[2], mat.Cols(), mat.Rows()), nil
}

// Close освобождает модель
func (d *PoseDetector) Close() error {
	return d.net.Close()
}

var _ port.LandmarkDetector = (*PoseDetector)(nil)
