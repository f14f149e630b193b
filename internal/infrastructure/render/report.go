package render

import (
	"fmt"
	"io"

	"body-measure/internal/domain/entity"
)

// WriteReport печатает результат измерения в текстовом виде
func WriteReport(w io.Writer, m *entity.Measurement) error {
	_, err := fmt.Fprintf(w,
		"Topmost Pixel: %s\n"+
			"Bottommost Pixel: %s\n"+
			"Pixels Per Inch: %.4f (reference %.2f px = %.2f inches)\n"+
			"Shoulder Length: %.2f inches (%.2f px)\n"+
			"Farthest Length: %.2f inches (%.2f px)\n"+
			"Horizontal Span: %d px\n"+
			"Left Shoulder: %s, Farthest Left Pixel: %s\n"+
			"Right Shoulder: %s, Farthest Right Pixel: %s\n",
		m.Top, m.Bottom,
		m.PixelsPerInch, m.CalibrationPixels, m.HeightInches,
		m.ShoulderInches, m.ShoulderPixels,
		m.OutlineInches, m.OutlinePixels,
		m.OutlineHorizontalPixels,
		m.Landmarks.LeftShoulder, m.Leftmost,
		m.Landmarks.RightShoulder, m.Rightmost,
	)
	return err
}
