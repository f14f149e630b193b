package app

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"body-measure/internal/domain/entity"
)

func syntheticInput() MeasureInput {
	return MeasureInput{
		Landmarks: entity.LandmarkSet{
			LeftShoulder:  entity.Pt(40, 50),
			RightShoulder: entity.Pt(60, 50),
			LeftHeel:      entity.Pt(50, 150),
		},
		Top:       entity.Pt(50, 10),
		Bottom:    entity.Pt(50, 160),
		Leftmost:  entity.Pt(10, 50),
		Rightmost: entity.Pt(90, 50),
	}
}

func TestComputeMeasurement(t *testing.T) {
	m, err := ComputeMeasurement(syntheticInput(), DefaultHeightInches)
	require.NoError(t, err)

	require.InDelta(t, 140.0, m.CalibrationPixels, 1e-9)
	require.InDelta(t, 2.121, m.PixelsPerInch, 1e-3)
	require.InDelta(t, 20.0, m.ShoulderPixels, 1e-9)
	require.InDelta(t, 9.43, m.ShoulderInches, 1e-2)
	require.InDelta(t, 80.0, m.OutlinePixels, 1e-9)
	require.InDelta(t, 37.71, m.OutlineInches, 1e-2)
	require.Equal(t, 80, m.OutlineHorizontalPixels)
	require.Equal(t, DefaultHeightInches, m.HeightInches)
	require.Equal(t, entity.Pt(10, 50), m.Leftmost)
	require.Equal(t, entity.Pt(90, 50), m.Rightmost)
}

func TestComputeMeasurement_DegenerateCalibration(t *testing.T) {
	in := syntheticInput()
	in.Top = in.Landmarks.LeftHeel

	m, err := ComputeMeasurement(in, DefaultHeightInches)
	require.ErrorIs(t, err, entity.ErrDegenerateCalibration)
	require.Nil(t, m)
}

func TestComputeMeasurement_InvalidHeight(t *testing.T) {
	for _, h := range []float64{0, -66, math.NaN(), math.Inf(1)} {
		_, err := ComputeMeasurement(syntheticInput(), h)
		require.ErrorIs(t, err, entity.ErrInvalidHeight, "height %v", h)
	}
}

func TestComputeMeasurement_ScaleInvariant(t *testing.T) {
	in := syntheticInput()
	in.Landmarks.RightShoulder = entity.Pt(63, 47)
	in.Leftmost = entity.Pt(12, 51)

	base, err := ComputeMeasurement(in, 70)
	require.NoError(t, err)

	for _, k := range []int{2, 3, 5} {
		scaled := MeasureInput{
			Landmarks: in.Landmarks.Scale(k),
			Top:       in.Top.Scale(k),
			Bottom:    in.Bottom.Scale(k),
			Leftmost:  in.Leftmost.Scale(k),
			Rightmost: in.Rightmost.Scale(k),
		}
		got, err := ComputeMeasurement(scaled, 70)
		require.NoError(t, err)
		require.InDelta(t, base.ShoulderInches, got.ShoulderInches, 1e-9)
		require.InDelta(t, base.OutlineInches, got.OutlineInches, 1e-9)
		require.InDelta(t, base.PixelsPerInch*float64(k), got.PixelsPerInch, 1e-9)
	}
}

func TestComputeMeasurement_HeightIsLinear(t *testing.T) {
	a, err := ComputeMeasurement(syntheticInput(), 66)
	require.NoError(t, err)
	b, err := ComputeMeasurement(syntheticInput(), 72)
	require.NoError(t, err)

	require.InDelta(t, a.ShoulderInches*72/66, b.ShoulderInches, 1e-9)
}
