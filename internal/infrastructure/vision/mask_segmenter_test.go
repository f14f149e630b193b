package vision

import (
	"bytes"
	"context"
	"encoding/binary"
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"body-measure/internal/domain/entity"
)

// rectMask маска 100x100 с белым прямоугольником x∈[20,80), y∈[10,90)
func rectMask() *image.Gray {
	mask := image.NewGray(image.Rect(0, 0, 100, 100))
	for y := 10; y < 90; y++ {
		for x := 20; x < 80; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	return mask
}

func TestOutlineFromMask(t *testing.T) {
	outline, err := OutlineFromMask(rectMask(), DefaultMaskLevel)
	require.NoError(t, err)

	edges := outline.Edges
	require.Equal(t, 100, edges.Width())
	require.Equal(t, 100, edges.Height())

	require.True(t, edges.IsEdge(20, 50), "left border")
	require.True(t, edges.IsEdge(79, 50), "right border")
	require.False(t, edges.IsEdge(50, 50), "interior")
	require.False(t, edges.IsEdge(5, 50), "background")

	require.Equal(t, entity.Pt(20, 10), outline.Top)
	require.Equal(t, entity.Pt(20, 89), outline.Bottom)

	require.Equal(t, entity.Pt(20, 50), edges.Scan(entity.Pt(45, 50), entity.ScanLeft))
	require.Equal(t, entity.Pt(79, 50), edges.Scan(entity.Pt(55, 50), entity.ScanRight))
}

func TestOutlineFromMask_Empty(t *testing.T) {
	_, err := OutlineFromMask(image.NewGray(image.Rect(0, 0, 20, 20)), DefaultMaskLevel)
	require.ErrorIs(t, err, entity.ErrSegmentationFailed)
}

func TestMaskSegmenter_ResizesToImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mask.png")
	require.NoError(t, imaging.Save(rectMask(), path))

	img := image.NewRGBA(image.Rect(0, 0, 200, 200))
	outline, err := NewMaskSegmenter(path).Segment(context.Background(), img)
	require.NoError(t, err)
	require.Equal(t, 200, outline.Edges.Width())
	require.Equal(t, 200, outline.Edges.Height())
	require.Equal(t, 20, outline.Top.Y)
}

func TestMaskSegmenter_MissingFile(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	_, err := NewMaskSegmenter(filepath.Join(t.TempDir(), "none.png")).Segment(context.Background(), img)
	require.Error(t, err)
}

// writeRotatedJPEG сохраняет JPEG с EXIF Orientation=6 (повернуть на 90° для показа)
func writeRotatedJPEG(t *testing.T, img image.Image, path string) {
	t.Helper()
	var enc bytes.Buffer
	require.NoError(t, jpeg.Encode(&enc, img, &jpeg.Options{Quality: 100}))

	var exif bytes.Buffer
	exif.WriteString("Exif\x00\x00")
	exif.WriteString("MM")
	binary.Write(&exif, binary.BigEndian, uint16(0x002a))
	binary.Write(&exif, binary.BigEndian, uint32(8))
	binary.Write(&exif, binary.BigEndian, uint16(1))      // одна запись IFD
	binary.Write(&exif, binary.BigEndian, uint16(0x0112)) // Orientation
	binary.Write(&exif, binary.BigEndian, uint16(3))      // SHORT
	binary.Write(&exif, binary.BigEndian, uint32(1))
	binary.Write(&exif, binary.BigEndian, uint16(6))
	binary.Write(&exif, binary.BigEndian, uint16(0))
	binary.Write(&exif, binary.BigEndian, uint32(0))

	data := enc.Bytes()
	var out bytes.Buffer
	out.Write(data[:2]) // SOI
	out.Write([]byte{0xff, 0xe1})
	binary.Write(&out, binary.BigEndian, uint16(exif.Len()+2))
	out.Write(exif.Bytes())
	out.Write(data[2:])

	require.NoError(t, os.WriteFile(path, out.Bytes(), 0o644))
}

func TestMaskSegmenter_FollowsExifOrientation(t *testing.T) {
	// хранится 100x60, силуэт в полосе y∈[5,25), x∈[10,90)
	stored := image.NewGray(image.Rect(0, 0, 100, 60))
	for y := 5; y < 25; y++ {
		for x := 10; x < 90; x++ {
			stored.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	path := filepath.Join(t.TempDir(), "mask.jpg")
	writeRotatedJPEG(t, stored, path)

	// фото уже повернуто загрузчиком: 60x100
	img := image.NewRGBA(image.Rect(0, 0, 60, 100))
	outline, err := NewMaskSegmenter(path).Segment(context.Background(), img)
	require.NoError(t, err)

	require.Equal(t, 60, outline.Edges.Width())
	require.Equal(t, 100, outline.Edges.Height())
	// после поворота полоса x∈[10,90) становится строками y∈[10,90)
	require.Equal(t, 10, outline.Top.Y)
	require.Equal(t, 89, outline.Bottom.Y)
}
