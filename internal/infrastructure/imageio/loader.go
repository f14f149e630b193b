package imageio

import (
	"context"
	"fmt"
	"image"

	"github.com/disintegration/imaging"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

// Loader читает фото с диска с учётом EXIF-ориентации
type Loader struct{}

// NewLoader создаёт загрузчик изображений
func NewLoader() *Loader {
	return &Loader{}
}

// Load открывает и декодирует изображение. Поддерживаются JPEG, PNG, GIF, BMP, TIFF.
func (l *Loader) Load(ctx context.Context, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", entity.ErrImageLoad, err)
	}

	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("%w: empty image %s", entity.ErrImageLoad, path)
	}

	// Дальше все координаты считаются от (0,0).
	if b.Min != (image.Point{}) {
		img = imaging.Clone(img)
	}

	return img, nil
}

var _ port.ImageLoader = (*Loader)(nil)
