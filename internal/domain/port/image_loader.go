package port

import (
	"context"
	"image"
)

// ImageLoader загружает исходное фото
type ImageLoader interface {
	Load(ctx context.Context, path string) (image.Image, error)
}
