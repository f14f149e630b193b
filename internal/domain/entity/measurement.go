package entity

// Measurement итог измерения одного изображения
type Measurement struct {
	Landmarks LandmarkSet
	Top       Point // верхний пиксель контура
	Bottom    Point // нижний пиксель контура
	Leftmost  Point // граница слева от левого плеча
	Rightmost Point // граница справа от правого плеча

	HeightInches      float64 // принятый рост субъекта
	CalibrationPixels float64 // расстояние от верхнего пикселя до пятки
	PixelsPerInch     float64

	ShoulderPixels float64
	ShoulderInches float64

	OutlinePixels           float64
	OutlineInches           float64
	OutlineHorizontalPixels int // |rightmost.x - leftmost.x|
}

// Markers возвращает четыре отмечаемые точки в порядке:
// левое плечо, правое плечо, левая граница, правая граница.
func (m *Measurement) Markers() [4]Point {
	return [4]Point{m.Landmarks.LeftShoulder, m.Landmarks.RightShoulder, m.Leftmost, m.Rightmost}
}
