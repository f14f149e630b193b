// Package render выводит результат измерения: текстовый отчёт, размеченный
// файл или окно OpenCV (только при сборке с тегом gocv).
package render

import "errors"

// ErrWindowUnavailable окно OpenCV недоступно в сборке без тега gocv
var ErrWindowUnavailable = errors.New("window output requires the gocv build tag")
