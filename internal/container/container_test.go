package container

import (
	"context"
	"errors"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/require"

	"body-measure/config"
	app "body-measure/internal/application"
	"body-measure/internal/domain/entity"
)

type closingDetector struct {
	closed int
	err    error
}

func (d *closingDetector) Detect(context.Context, image.Image) (*entity.LandmarkSet, error) {
	return nil, entity.ErrLandmarkNotFound
}

func (d *closingDetector) Close() error {
	d.closed++
	return d.err
}

func TestContainer_CloseReleasesModels(t *testing.T) {
	detector := &closingDetector{err: errors.New("close failed")}
	c := New(nil, detector, nil, nil, 66, nil)

	require.Error(t, c.Close())
	require.Equal(t, 1, detector.closed)

	require.NoError(t, c.Close(), "second close is a no-op")
	require.Equal(t, 1, detector.closed)
}

// TestFromConfig_FileSources прогоняет весь конвейер на синтетическом фото
// с точками из JSON и маской-прямоугольником.
func TestFromConfig_FileSources(t *testing.T) {
	dir := t.TempDir()

	photo := filepath.Join(dir, "photo.png")
	require.NoError(t, imaging.Save(imaging.New(100, 200, color.White), photo))

	mask := image.NewGray(image.Rect(0, 0, 100, 200))
	for y := 10; y < 190; y++ {
		for x := 10; x < 91; x++ {
			mask.SetGray(x, y, color.Gray{Y: 255})
		}
	}
	maskPath := filepath.Join(dir, "mask.png")
	require.NoError(t, imaging.Save(mask, maskPath))

	landmarks := filepath.Join(dir, "landmarks.json")
	require.NoError(t, os.WriteFile(landmarks, []byte(`{
		"left_shoulder":  {"x": 0.4, "y": 0.25},
		"right_shoulder": {"x": 0.6, "y": 0.25},
		"left_heel":      {"x": 0.5, "y": 0.75}
	}`), 0o644))

	out := filepath.Join(dir, "result.png")
	cfg := &config.Config{
		ImagePath:      photo,
		HeightInches:   66,
		OutputMode:     config.OutputFile,
		OutputPath:     out,
		MarkerColors:   "#0000ff,#00ffff,#00ff00,#ff0000",
		LandmarkSource: config.SourceFile,
		LandmarksFile:  landmarks,
		OutlineSource:  config.SourceMask,
		MaskFile:       maskPath,
		LogLevel:       "info",
	}

	c, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	res, err := c.MeasurementService.Run(context.Background(), photo)
	require.NoError(t, err)

	m := res.Result
	require.Equal(t, entity.Pt(10, 10), m.Top)
	require.Equal(t, entity.Pt(10, 50), m.Leftmost)
	require.Equal(t, entity.Pt(90, 50), m.Rightmost)
	require.Equal(t, entity.Pt(50, 150), m.Landmarks.LeftHeel)
	require.InDelta(t, 145.602, m.CalibrationPixels, 1e-3)
	require.InDelta(t, 9.066, m.ShoulderInches, 1e-3)

	_, err = os.Stat(out)
	require.NoError(t, err)
}

func TestFromConfig_BadColors(t *testing.T) {
	cfg := &config.Config{
		MarkerColors:   "#fff",
		OutputMode:     config.OutputNone,
		LandmarkSource: config.SourceFile,
		OutlineSource:  config.SourceMask,
	}
	_, err := FromConfig(cfg, nil)
	require.Error(t, err)
}

func TestFromConfig_DefaultPalette(t *testing.T) {
	dir := t.TempDir()
	photo := filepath.Join(dir, "photo.png")
	require.NoError(t, imaging.Save(imaging.New(40, 40, color.White), photo))

	out := filepath.Join(dir, "result.png")
	cfg := &config.Config{
		HeightInches:   66,
		OutputMode:     config.OutputFile,
		OutputPath:     out,
		LandmarkSource: config.SourceFile,
		LandmarksFile:  filepath.Join(dir, "landmarks.json"),
		OutlineSource:  config.SourceMask,
		MaskFile:       filepath.Join(dir, "mask.png"),
	}

	c, err := FromConfig(cfg, nil)
	require.NoError(t, err)
	defer c.Close()

	m := &entity.Measurement{
		Landmarks: entity.LandmarkSet{LeftShoulder: entity.Pt(30, 30)},
	}
	img, err := imaging.Open(photo)
	require.NoError(t, err)
	require.NoError(t, c.MeasurementService.Present(context.Background(), photo, &app.MeasurementOutput{Image: img, Result: m}))

	saved, err := imaging.Open(out)
	require.NoError(t, err)
	require.Equal(t, color.NRGBA{B: 255, A: 255}, color.NRGBAModel.Convert(saved.At(30, 30)), "left shoulder is blue by default")
}
