//go:build !gocv
// +build !gocv

package vision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStubsRequireGoCV(t *testing.T) {
	_, err := NewPoseDetector("pose.caffemodel", "pose.prototxt")
	require.ErrorIs(t, err, ErrGoCVDisabled)

	_, err = NewSegmenter("selfie.onnx")
	require.ErrorIs(t, err, ErrGoCVDisabled)
}
