package port

import (
	"context"
	"image"

	"body-measure/internal/domain/entity"
)

// LandmarkDetector интерфейс детектора ключевых точек позы
type LandmarkDetector interface {
	// Detect находит плечи и левую пятку. Если точек нет, возвращает entity.ErrLandmarkNotFound
	Detect(ctx context.Context, img image.Image) (*entity.LandmarkSet, error)
}
