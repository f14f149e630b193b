package container

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"body-measure/config"
	app "body-measure/internal/application"
	"body-measure/internal/domain/port"
	"body-measure/internal/infrastructure/imageio"
	"body-measure/internal/infrastructure/render"
	"body-measure/internal/infrastructure/vision"
)

// Container держит сервисы и ресурсы моделей одного запуска.
// Модели освобождаются через Close.
type Container struct {
	MeasurementService *app.MeasurementService
	closers            []io.Closer
}

// New собирает сервис из готовых зависимостей
func New(loader port.ImageLoader, detector port.LandmarkDetector, segmenter port.OutlineSegmenter,
	renderer port.ResultRenderer, heightInches float64, logger *zap.Logger) *Container {
	c := &Container{
		MeasurementService: app.NewMeasurementService(loader, detector, segmenter, renderer, heightInches, logger),
	}
	for _, dep := range []any{detector, segmenter, renderer} {
		if closer, ok := dep.(io.Closer); ok {
			c.closers = append(c.closers, closer)
		}
	}
	return c
}

// FromConfig создаёт реализации по конфигурации и собирает контейнер
func FromConfig(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	palette := render.DefaultPalette()
	if cfg.MarkerColors != "" {
		p, err := render.ParsePalette(cfg.MarkerColors)
		if err != nil {
			return nil, err
		}
		palette = p
	}

	renderer, err := newRenderer(cfg, palette, logger)
	if err != nil {
		return nil, err
	}

	segmenter, err := newSegmenter(cfg)
	if err != nil {
		return nil, err
	}

	detector, err := newDetector(cfg)
	if err != nil {
		closeAll(segmenter)
		return nil, err
	}

	return New(imageio.NewLoader(), detector, segmenter, renderer, cfg.HeightInches, logger), nil
}

// Close освобождает модели; возвращает все ошибки закрытия
func (c *Container) Close() error {
	var errs []error
	for _, closer := range c.closers {
		if err := closer.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

func newDetector(cfg *config.Config) (port.LandmarkDetector, error) {
	switch cfg.LandmarkSource {
	case config.SourceFile:
		return vision.NewLandmarkFile(cfg.LandmarksFile), nil
	case config.SourceDNN:
		d, err := vision.NewPoseDetector(cfg.PoseModelPath, cfg.PoseConfigPath)
		if err != nil {
			return nil, fmt.Errorf("pose detector: %w", err)
		}
		return d, nil
	default:
		return nil, fmt.Errorf("unknown landmark source %q", cfg.LandmarkSource)
	}
}

func newSegmenter(cfg *config.Config) (port.OutlineSegmenter, error) {
	switch cfg.OutlineSource {
	case config.SourceMask:
		return vision.NewMaskSegmenter(cfg.MaskFile), nil
	case config.SourceDNN:
		s, err := vision.NewSegmenter(cfg.SegmentationModelPath)
		if err != nil {
			return nil, fmt.Errorf("segmenter: %w", err)
		}
		return s, nil
	default:
		return nil, fmt.Errorf("unknown outline source %q", cfg.OutlineSource)
	}
}

func newRenderer(cfg *config.Config, palette render.Palette, logger *zap.Logger) (port.ResultRenderer, error) {
	switch cfg.OutputMode {
	case config.OutputWindow:
		return render.NewWindowRenderer(palette), nil
	case config.OutputFile:
		return render.NewFileRenderer(cfg.OutputPath, palette, logger), nil
	case config.OutputNone:
		return nil, nil
	default:
		return nil, fmt.Errorf("unknown output mode %q", cfg.OutputMode)
	}
}

func closeAll(deps ...any) {
	for _, dep := range deps {
		if closer, ok := dep.(io.Closer); ok {
			_ = closer.Close()
		}
	}
}
