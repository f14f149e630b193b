package app

import (
	"context"
	"errors"
	"fmt"
	"image"

	"go.uber.org/zap"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
	"body-measure/internal/logging"
)

// Этапы конвейера, попадают в логи и OperationError
const (
	OpLoadImage       = "load_image"
	OpSegmentOutline  = "segment_outline"
	OpDetectLandmarks = "detect_landmarks"
	OpScanEdges       = "scan_edges"
	OpCompute         = "compute_measurement"
	OpRender          = "render"
)

// MeasurementService проводит одно изображение через весь конвейер измерения
type MeasurementService struct {
	loader       port.ImageLoader
	detector     port.LandmarkDetector
	segmenter    port.OutlineSegmenter
	renderer     port.ResultRenderer
	heightInches float64
	logger       *zap.Logger
}

// MeasurementOutput содержит исходное изображение, контур и результат измерения.
type MeasurementOutput struct {
	Image   image.Image
	Outline *entity.Outline
	Result  *entity.Measurement
}

// NewMeasurementService создаёт сервис. renderer может быть nil, тогда Run только считает.
func NewMeasurementService(
	loader port.ImageLoader,
	detector port.LandmarkDetector,
	segmenter port.OutlineSegmenter,
	renderer port.ResultRenderer,
	heightInches float64,
	logger *zap.Logger,
) *MeasurementService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &MeasurementService{
		loader:       loader,
		detector:     detector,
		segmenter:    segmenter,
		renderer:     renderer,
		heightInches: heightInches,
		logger:       logger,
	}
}

// Measure загружает изображение, строит контур, находит точки позы и считает размеры.
// Любой сбой завершает обработку изображения; частичного результата нет.
func (s *MeasurementService) Measure(ctx context.Context, imagePath string) (*MeasurementOutput, error) {
	if s.loader == nil || s.detector == nil || s.segmenter == nil {
		return nil, errors.New("measurement service is not configured")
	}

	img, err := s.loader.Load(ctx, imagePath)
	if err != nil {
		return nil, logging.NewOperationError(OpLoadImage, imagePath, asKind(entity.ErrImageLoad, err))
	}
	bounds := img.Bounds()
	s.logger.Debug("image loaded",
		zap.String("image", imagePath),
		zap.Int("width", bounds.Dx()),
		zap.Int("height", bounds.Dy()))

	if err := ctx.Err(); err != nil {
		return nil, logging.NewOperationError(OpSegmentOutline, imagePath, err)
	}
	outline, err := s.segmenter.Segment(ctx, img)
	if err != nil {
		return nil, logging.NewOperationError(OpSegmentOutline, imagePath, asKind(entity.ErrSegmentationFailed, err))
	}
	s.logger.Debug("outline extracted",
		zap.Stringer("top", outline.Top),
		zap.Stringer("bottom", outline.Bottom),
		zap.Int("edge_pixels", outline.Edges.Count()))

	if err := ctx.Err(); err != nil {
		return nil, logging.NewOperationError(OpDetectLandmarks, imagePath, err)
	}
	landmarks, err := s.detector.Detect(ctx, img)
	if err != nil {
		return nil, logging.NewOperationError(OpDetectLandmarks, imagePath, asKind(entity.ErrLandmarkNotFound, err))
	}
	s.logger.Debug("landmarks detected",
		zap.Stringer("left_shoulder", landmarks.LeftShoulder),
		zap.Stringer("right_shoulder", landmarks.RightShoulder),
		zap.Stringer("left_heel", landmarks.LeftHeel))

	edges := outline.Edges
	if edges.Width() != bounds.Dx() || edges.Height() != bounds.Dy() {
		err := fmt.Errorf("edge map is %dx%d, image is %dx%d",
			edges.Width(), edges.Height(), bounds.Dx(), bounds.Dy())
		return nil, logging.NewOperationError(OpScanEdges, imagePath, err)
	}
	leftmost := edges.Scan(landmarks.LeftShoulder, entity.ScanLeft)
	rightmost := edges.Scan(landmarks.RightShoulder, entity.ScanRight)

	result, err := ComputeMeasurement(MeasureInput{
		Landmarks: *landmarks,
		Top:       outline.Top,
		Bottom:    outline.Bottom,
		Leftmost:  leftmost,
		Rightmost: rightmost,
	}, s.heightInches)
	if err != nil {
		return nil, logging.NewOperationError(OpCompute, imagePath, err)
	}

	logging.WithOperation(s.logger, OpCompute, imagePath).Info("measurement computed",
		zap.Float64("pixels_per_inch", result.PixelsPerInch),
		zap.Float64("shoulder_inches", result.ShoulderInches),
		zap.Float64("outline_inches", result.OutlineInches))

	return &MeasurementOutput{Image: img, Outline: outline, Result: result}, nil
}

// Run измеряет изображение и передаёт результат рендереру
func (s *MeasurementService) Run(ctx context.Context, imagePath string) (*MeasurementOutput, error) {
	out, err := s.Measure(ctx, imagePath)
	if err != nil {
		return nil, err
	}
	return out, s.Present(ctx, imagePath, out)
}

// Present выводит готовый результат через рендерер, если он задан
func (s *MeasurementService) Present(ctx context.Context, imagePath string, out *MeasurementOutput) error {
	if s.renderer == nil || out == nil {
		return nil
	}
	if err := s.renderer.Render(ctx, out.Image, out.Result); err != nil {
		return logging.NewOperationError(OpRender, imagePath, err)
	}
	return nil
}

// asKind гарантирует, что ошибка распознаётся через errors.Is(err, kind).
// Ошибки отмены контекста не перекрашиваются.
func asKind(kind, err error) error {
	if errors.Is(err, kind) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	return fmt.Errorf("%w: %w", kind, err)
}
