package port

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

// OutlineSegmenter интерфейс сегментатора силуэта
type OutlineSegmenter interface {
	// Segment строит маску человека и карту её границ.
	// Если маска пуста, возвращает entity.ErrSegmentationFailed
	Segment(ctx context.Context, img image.Image) (*entity.Outline, error)
}
