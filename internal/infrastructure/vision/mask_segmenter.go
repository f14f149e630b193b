package vision

import (
	"context"
	"fmt"
	"image"

	"github.com/anthonynsimon/bild/effect"
	"github.com/anthonynsimon/bild/segment"
	"github.com/disintegration/imaging"

	"body-measure/internal/domain/entity"
	"body-measure/internal/domain/port"
)

// DefaultMaskLevel порог яркости маски: светлее считается человеком
const DefaultMaskLevel uint8 = 128

// MaskSegmenter строит контур по готовой маске переднего плана.
// Маска должна быть светлой на месте человека и тёмной на фоне.
type MaskSegmenter struct {
	path  string
	Level uint8
}

// NewMaskSegmenter создаёт сегментатор поверх файла маски
func NewMaskSegmenter(path string) *MaskSegmenter {
	return &MaskSegmenter{path: path, Level: DefaultMaskLevel}
}

// Segment загружает маску, приводит её к размеру img и выделяет границы
func (s *MaskSegmenter) Segment(ctx context.Context, img image.Image) (*entity.Outline, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	// маска из того же снимка должна повернуться так же, как фото в imageio.Loader
	mask, err := imaging.Open(s.path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open mask: %w", err)
	}

	b := img.Bounds()
	if mask.Bounds().Dx() != b.Dx() || mask.Bounds().Dy() != b.Dy() {
		mask = imaging.Resize(mask, b.Dx(), b.Dy(), imaging.NearestNeighbor)
	}

	return OutlineFromMask(mask, s.Level)
}

// OutlineFromMask бинаризует маску и находит пиксели её границы
func OutlineFromMask(mask image.Image, level uint8) (*entity.Outline, error) {
	binary := segment.Threshold(mask, level)

	foreground := false
	for _, v := range binary.Pix {
		if v != 0 {
			foreground = true
			break
		}
	}
	if !foreground {
		return nil, fmt.Errorf("%w: mask has no foreground", entity.ErrSegmentationFailed)
	}

	edges := effect.EdgeDetection(binary, 1.0)
	b := edges.Bounds()
	w, h := b.Dx(), b.Dy()

	pix := make([]byte, w*h)
	for y := 0; y < h; y++ {
		row := edges.Pix[y*edges.Stride:]
		for x := 0; x < w; x++ {
			// маска серая, достаточно канала R
			if row[x*4] != 0 {
				pix[y*w+x] = 255
			}
		}
	}

	edgeMap, err := entity.NewEdgeMap(w, h, pix)
	if err != nil {
		return nil, err
	}
	return entity.NewOutline(edgeMap)
}

var _ port.OutlineSegmenter = (*MaskSegmenter)(nil)
