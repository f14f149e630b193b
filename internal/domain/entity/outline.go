package entity

// Outline результат сегментации: карта границ и крайние точки силуэта
type Outline struct {
	Edges  *EdgeMap
	Top    Point // верхний пиксель контура, опорная точка калибровки
	Bottom Point
}

// NewOutline находит крайние точки по карте границ.
// Пустая карта означает, что силуэт не найден.
func NewOutline(edges *EdgeMap) (*Outline, error) {
	top, ok := edges.TopPixel()
	if !ok {
		return nil, ErrSegmentationFailed
	}
	bottom, _ := edges.BottomPixel()

	return &Outline{Edges: edges, Top: top, Bottom: bottom}, nil
}
