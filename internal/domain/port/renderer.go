package port

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

// ResultRenderer выводит результат измерения: окно, файл и т.п.
type ResultRenderer interface {
	Render(ctx context.Context, img image.Image, m *entity.Measurement) error
}
