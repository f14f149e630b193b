package app

import (
	"math"

	"body-measure/internal/domain/entity"
)

// DefaultHeightInches рост субъекта по умолчанию для калибровки
const DefaultHeightInches = 66.0

// MeasureInput пиксельные данные, из которых считается результат
type MeasureInput struct {
	Landmarks entity.LandmarkSet
	Top       entity.Point
	Bottom    entity.Point
	Leftmost  entity.Point
	Rightmost entity.Point
}

// ComputeMeasurement переводит пиксельные расстояния в дюймы.
// Масштаб берётся из расстояния между верхним пикселем контура и левой пяткой,
// которое принимается равным heightInches.
func ComputeMeasurement(in MeasureInput, heightInches float64) (*entity.Measurement, error) {
	if heightInches <= 0 || math.IsNaN(heightInches) || math.IsInf(heightInches, 0) {
		return nil, entity.ErrInvalidHeight
	}

	calibration := entity.Distance(in.Top, in.Landmarks.LeftHeel)
	if calibration == 0 {
		return nil, entity.ErrDegenerateCalibration
	}
	ppi := calibration / heightInches

	shoulder := entity.Distance(in.Landmarks.LeftShoulder, in.Landmarks.RightShoulder)
	outline := entity.Distance(in.Leftmost, in.Rightmost)

	horizontal := in.Rightmost.X - in.Leftmost.X
	if horizontal < 0 {
		horizontal = -horizontal
	}

	return &entity.Measurement{
		Landmarks:               in.Landmarks,
		Top:                     in.Top,
		Bottom:                  in.Bottom,
		Leftmost:                in.Leftmost,
		Rightmost:               in.Rightmost,
		HeightInches:            heightInches,
		CalibrationPixels:       calibration,
		PixelsPerInch:           ppi,
		ShoulderPixels:          shoulder,
		ShoulderInches:          shoulder / ppi,
		OutlinePixels:           outline,
		OutlineInches:           outline / ppi,
		OutlineHorizontalPixels: horizontal,
	}, nil
}
