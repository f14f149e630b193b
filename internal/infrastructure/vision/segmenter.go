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

// Segmenter выделяет человека сетью сегментации через OpenCV DNN.
// Сеть должна выдавать одну карту вероятностей переднего плана.
type Segmenter struct {
	net           gocv.Net
	InputSize     image.Point
	MaskThreshold float32
	CannyLow      float32
	CannyHigh     float32
}

// NewSegmenter загружает модель сегментации (ONNX, Caffe, TF — всё, что читает ReadNet).
func NewSegmenter(modelPath string) (*Segmenter, error) {
	net := gocv.ReadNet(modelPath, "")
	if net.Empty() {
		return nil, fmt.Errorf("failed to load segmentation model %s", modelPath)
	}

	return &Segmenter{
		net:           net,
		InputSize:     image.Pt(256, 256),
		MaskThreshold: 0.5,
		CannyLow:      50,
		CannyHigh:     150,
	}, nil
}

// Segment строит маску 0/255 размера исходного изображения и находит её границы детектором Canny
func (s *Segmenter) Segment(ctx context.Context, img image.Image) (*entity.Outline, error) {
	_ = ctx
	mat, err := gocv.ImageToMatRGB(img)
	if err != nil {
		return nil, fmt.Errorf("convert image: %w", err)
	}
	defer mat.Close()

	if mat.Empty() {
		return nil, fmt.Errorf("%w: empty image", entity.ErrSegmentationFailed)
	}

	blob := gocv.BlobFromImage(mat, 1.0/255.0, s.InputSize, gocv.NewScalar(0, 0, 0, 0), true, false)
	defer blob.Close()

	s.net.SetInput(blob, "")
	prob := s.net.Forward("")
	defer prob.Close()

	h, w, err := maskShape(prob.Size())
	if err != nil {
		return nil, err
	}

	probMap, err := prob.FromPtr(h, w, gocv.MatTypeCV32F, 0, 0)
	if err != nil {
		return nil, fmt.Errorf("read probability map: %w", err)
	}
	defer probMap.Close()

	full := gocv.NewMat()
	defer full.Close()
	gocv.Resize(probMap, &full, image.Pt(mat.Cols(), mat.Rows()), 0, 0, gocv.InterpolationLinear)

	thresh := gocv.NewMat()
	defer thresh.Close()
	gocv.Threshold(full, &thresh, s.MaskThreshold, 255, gocv.ThresholdBinary)

	mask := gocv.NewMat()
	defer mask.Close()
	thresh.ConvertTo(&mask, gocv.MatTypeCV8U)

	if gocv.CountNonZero(mask) == 0 {
		return nil, fmt.Errorf("%w: empty mask", entity.ErrSegmentationFailed)
	}

	edges := gocv.NewMat()
	defer edges.Close()
	gocv.Canny(mask, &edges, s.CannyLow, s.CannyHigh)

	edgeMap, err := entity.NewEdgeMap(edges.Cols(), edges.Rows(), edges.ToBytes())
	if err != nil {
		return nil, err
	}
	return entity.NewOutline(edgeMap)
}

// Close освобождает модель
func (s *Segmenter) Close() error {
	return s.net.Close()
}

// maskShape достаёт высоту и ширину карты из форм [1,1,H,W], [1,H,W,1] или [1,H,W]
func maskShape(dims []int) (h, w int, err error) {
	switch {
	case len(dims) == 4 && dims[1] == 1:
		return dims[2], dims[3], nil
	case len(dims) == 4 && dims[3] == 1:
		return dims[1], dims[2], nil
	case len(dims) == 3:
		return dims[1], dims[2], nil
	default:
		return 0, 0, fmt.Errorf("unexpected segmentation output shape %v", dims)
	}
}

var _ port.OutlineSegmenter = (*Segmenter)(nil)
