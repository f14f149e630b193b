package render

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"
	"go.uber.org/zap"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

// FileRenderer сохраняет размеченное изображение; формат по расширению файла
type FileRenderer struct {
	path    string
	palette Palette
	logger  *zap.Logger
}

// NewFileRenderer создаёт рендерер в файл
func NewFileRenderer(path string, palette Palette, logger *zap.Logger) *FileRenderer {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileRenderer{path: path, palette: palette, logger: logger}
}

func (r *FileRenderer) Render(ctx context.Context, img image.Image, m *entity.Measurement) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := imaging.Save(Annotate(img, m, r.palette), r.path); err != nil {
		return fmt.Errorf("save annotated image: %w", err)
	}

	r.logger.Info("annotated image saved", zap.String("path", r.path))
	return nil
}

var _ port.ResultRenderer = (*FileRenderer)(nil)
