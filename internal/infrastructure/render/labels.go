package render

import (
	"fmt"
	"image"

	"body-measure/internal/domain/entity"
)

const (
	// MarkerRadius радиус маркера точки в пикселях
	MarkerRadius = 5
	windowTitle  = "Result"
)

var (
	shoulderTextOrigin = image.Pt(50, 50)
	edgeTextOrigin     = image.Pt(50, 90)
)

// ShoulderLabel надпись с шириной плеч
func ShoulderLabel(m *entity.Measurement) string {
	return fmt.Sprintf("Shoulder Length: %.2f inches", m.ShoulderInches)
}

// EdgeLabel надпись с расстоянием между границами силуэта
func EdgeLabel(m *entity.Measurement) string {
	return fmt.Sprintf("Edge Distance: %.2f inches", m.OutlineInches)
}
