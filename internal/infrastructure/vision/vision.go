// Package vision содержит внешние модели: детектор позы и сегментатор силуэта.
//
// Реализации на OpenCV DNN собираются только с тегом gocv:
//
//	go build -tags gocv ./...
//
// Без тега доступны LandmarkFile и MaskSegmenter, которые читают результаты
// внешних инструментов с диска.
package vision

import "errors"

// ErrGoCVDisabled возвращается заглушками при сборке без тега gocv
var ErrGoCVDisabled = errors.New("gocv build tag is not enabled")

// Индексы точек в раскладке OpenPose BODY_25
const (
	body25RightShoulder = 2
	body25LeftShoulder  = 5
	body25LeftHeel      = 21
)
