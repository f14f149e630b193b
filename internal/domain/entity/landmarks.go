package entity

// NormalizedLandmark точка позы в нормализованных координатах [0,1]
type NormalizedLandmark struct {
	X float64
	Y float64
}

// ToPixel переводит нормализованную точку в пиксели.
// Координаты усекаются как int(x*width) и прижимаются к границам изображения.
func (l NormalizedLandmark) ToPixel(width, height int) Point {
	return Point{
		X: clampInt(int(l.X*float64(width)), 0, width-1),
		Y: clampInt(int(l.Y*float64(height)), 0, height-1),
	}
}

// LandmarkSet ключевые точки, нужные для измерения
type LandmarkSet struct {
	LeftShoulder  Point
	RightShoulder Point
	LeftHeel      Point
}

// NewLandmarkSet строит набор точек в пикселях по нормализованным координатам
func NewLandmarkSet(leftShoulder, rightShoulder, leftHeel NormalizedLandmark, width, height int) *LandmarkSet {
	return &LandmarkSet{
		LeftShoulder:  leftShoulder.ToPixel(width, height),
		RightShoulder: rightShoulder.ToPixel(width, height),
		LeftHeel:      leftHeel.ToPixel(width, height),
	}
}

// Scale умножает все координаты на k
func (s LandmarkSet) Scale(k int) LandmarkSet {
	return LandmarkSet{
		LeftShoulder:  s.LeftShoulder.Scale(k),
		RightShoulder: s.RightShoulder.Scale(k),
		LeftHeel:      s.LeftHeel.Scale(k),
	}
}

func clampInt(v, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
