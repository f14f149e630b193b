package entity

import "fmt"

// ScanDirection направление горизонтального поиска границы
type ScanDirection int

const (
	ScanLeft  ScanDirection = -1 // к x = 0
	ScanRight ScanDirection = 1  // к x = width-1
)

func (d ScanDirection) String() string {
	switch d {
	case ScanLeft:
		return "left"
	case ScanRight:
		return "right"
	default:
		return fmt.Sprintf("ScanDirection(%d)", int(d))
	}
}

// EdgeMap бинарная карта границ силуэта.
// Ненулевой байт означает пиксель границы. После создания не меняется.
type EdgeMap struct {
	width  int
	height int
	pix    []byte
}

// NewEdgeMap создаёт карту границ из построчного буфера width*height байт.
// Буфер копируется.
func NewEdgeMap(width, height int, pix []byte) (*EdgeMap, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid edge map size %dx%d", width, height)
	}
	if len(pix) != width*height {
		return nil, fmt.Errorf("edge map buffer has %d bytes, want %d", len(pix), width*height)
	}

	buf := make([]byte, len(pix))
	copy(buf, pix)

	return &EdgeMap{width: width, height: height, pix: buf}, nil
}

func (m *EdgeMap) Width() int  { return m.width }
func (m *EdgeMap) Height() int { return m.height }

// IsEdge сообщает, является ли пиксель границей. Вне карты всегда false.
func (m *EdgeMap) IsEdge(x, y int) bool {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return false
	}
	return m.pix[y*m.width+x] != 0
}

// Count возвращает число пикселей границы
func (m *EdgeMap) Count() int {
	n := 0
	for _, v := range m.pix {
		if v != 0 {
			n++
		}
	}
	return n
}

// Scan идёт по строке start.Y от start.X в направлении dir и возвращает
// первый пиксель границы, включая сам start. Если граница не найдена до края
// изображения, возвращается start без изменений.
func (m *EdgeMap) Scan(start Point, dir ScanDirection) Point {
	if !start.In(m.width, m.height) {
		return start
	}

	step := int(dir)
	if step == 0 {
		return start
	}

	row := m.pix[start.Y*m.width : (start.Y+1)*m.width]
	for x := start.X; x >= 0 && x < m.width; x += step {
		if row[x] != 0 {
			return Point{X: x, Y: start.Y}
		}
	}

	return start
}

// TopPixel возвращает первый пиксель границы в порядке обхода по строкам:
// минимальный y, при равенстве минимальный x.
func (m *EdgeMap) TopPixel() (Point, bool) {
	for i, v := range m.pix {
		if v != 0 {
			return Point{X: i % m.width, Y: i / m.width}, true
		}
	}
	return Point{}, false
}

// BottomPixel возвращает самый левый пиксель границы на нижней строке с границей
func (m *EdgeMap) BottomPixel() (Point, bool) {
	for y := m.height - 1; y >= 0; y-- {
		row := m.pix[y*m.width : (y+1)*m.width]
		for x, v := range row {
			if v != 0 {
				return Point{X: x, Y: y}, true
			}
		}
	}
	return Point{}, false
}
