package entity

import (
	"fmt"
	"image"
	"math"
)

// Point пиксельная координата на изображении
type Point struct {
	X int // координата X, растёт вправо
	Y int // координата Y, растёт вниз
}

// Pt короткий конструктор точки
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// Image возвращает точку в виде image.Point
func (p Point) Image() image.Point {
	return image.Pt(p.X, p.Y)
}

// Scale умножает обе координаты на k
func (p Point) Scale(k int) Point {
	return Point{X: p.X * k, Y: p.Y * k}
}

// In проверяет, что точка лежит внутри [0,width) × [0,height)
func (p Point) In(width, height int) bool {
	return p.X >= 0 && p.X < width && p.Y >= 0 && p.Y < height
}

func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Distance возвращает евклидово расстояние между точками в пикселях
func Distance(a, b Point) float64 {
	dx := float64(b.X - a.X)
	dy := float64(b.Y - a.Y)
	return math.Sqrt(dx*dx + dy*dy)
}
