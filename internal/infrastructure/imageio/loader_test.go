package imageio

import (
	"context"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"body-measure/internal/domain/entity"
)

func TestLoader_Load(t *testing.T) {
	path := filepath.Join(t.TempDir(), "person.png")
	src := imaging.New(64, 48, color.NRGBA{R: 200, G: 10, B: 10, A: 255})
	require.NoError(t, imaging.Save(src, path))

	img, err := NewLoader().Load(context.Background(), path)
	require.NoError(t, err)
	require.Equal(t, image.Rect(0, 0, 64, 48), img.Bounds())
}

func TestLoader_Missing(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.jpg"))
	require.ErrorIs(t, err, entity.ErrImageLoad)
}

func TestLoader_Corrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.jpg")
	require.NoError(t, os.WriteFile(path, []byte("definitely not a jpeg"), 0o644))

	_, err := NewLoader().Load(context.Background(), path)
	require.ErrorIs(t, err, entity.ErrImageLoad)
}

func TestLoader_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLoader().Load(ctx, "whatever.png")
	require.ErrorIs(t, err, context.Canceled)
}
