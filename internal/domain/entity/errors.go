package entity

import "errors"

var (
	// ErrImageLoad файл изображения отсутствует или повреждён
	ErrImageLoad = errors.New("image load failed")
	// ErrLandmarkNotFound модель позы не нашла нужные точки
	ErrLandmarkNotFound = errors.New("pose landmarks not found")
	// ErrSegmentationFailed модель сегментации не дала маску или контур пуст
	ErrSegmentationFailed = errors.New("segmentation failed")
	// ErrDegenerateCalibration опорное расстояние калибровки равно нулю
	ErrDegenerateCalibration = errors.New("degenerate calibration: reference distance is zero")
	// ErrInvalidHeight рост для калибровки не положителен
	ErrInvalidHeight = errors.New("calibration height must be positive")
)
