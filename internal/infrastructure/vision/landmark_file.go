package vision

import (
	"context"
	"fmt"
	"image"
	"os"

	jsoniter "github.com/json-iterator/go"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// landmarkDoc формат файла с точками позы, выгруженного внешним детектором.
// Координаты нормализованы к размеру изображения.
type landmarkDoc struct {
	LeftShoulder  *landmarkJSON `json:"left_shoulder"`
	RightShoulder *landmarkJSON `json:"right_shoulder"`
	LeftHeel      *landmarkJSON `json:"left_heel"`
}

type landmarkJSON struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// LandmarkFile детектор, который берёт точки из JSON-файла
type LandmarkFile struct {
	path string
}

// NewLandmarkFile создаёт детектор поверх файла с точками
func NewLandmarkFile(path string) *LandmarkFile {
	return &LandmarkFile{path: path}
}

// Detect читает файл и переводит точки в пиксели изображения img
func (f *LandmarkFile) Detect(ctx context.Context, img image.Image) (*entity.LandmarkSet, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read landmarks file: %w", err)
	}

	var doc landmarkDoc
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode landmarks file %s: %w", f.path, err)
	}

	switch {
	case doc.LeftShoulder == nil:
		return nil, fmt.Errorf("%w: left_shoulder missing", entity.ErrLandmarkNotFound)
	case doc.RightShoulder == nil:
		return nil, fmt.Errorf("%w: right_shoulder missing", entity.ErrLandmarkNotFound)
	case doc.LeftHeel == nil:
		return nil, fmt.Errorf("%w: left_heel missing", entity.ErrLandmarkNotFound)
	}

	b := img.Bounds()
	return entity.NewLandmarkSet(
		doc.LeftShoulder.normalized(),
		doc.RightShoulder.normalized(),
		doc.LeftHeel.normalized(),
		b.Dx(), b.Dy(),
	), nil
}

func (l *landmarkJSON) normalized() entity.NormalizedLandmark {
	return entity.NormalizedLandmark{X: l.X, Y: l.Y}
}

var _ port.LandmarkDetector = (*LandmarkFile)(nil)
