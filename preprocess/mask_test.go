package preprocess

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

// maskFrame returns a 4x1 frame covering the edges of the default
// thresholds
func maskFrame() *HSV {
	img := NewHSV(image.Rect(0, 0, 4, 1))
	img.SetHSV(0, 0, 10, 85, 50)  // on the lower saturation and value bounds
	img.SetHSV(1, 0, 10, 84, 100) // saturation too low
	img.SetHSV(2, 0, 10, 200, 49) // too dark
	img.SetHSV(3, 0, 10, 200, 255) // too bright
	return img
}

func TestColorMask(t *testing.T) {

	mask, err := ColorMask(maskFrame(), 85, 50, 254)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 4, 1), mask.Rect)
	assert.Equal(t, []uint8{255, 0, 0, 0}, mask.Pix)
}

func TestColorMaskExtremes(t *testing.T) {

	img := maskFrame()

	tests := []struct {
		name             string
		smin, vmin, vmax int
		expected         []uint8
	}{
		{"all pass", 0, 0, 255, []uint8{255, 255, 255, 255}},
		{"crossed value range", 0, 200, 100, []uint8{0, 0, 0, 0}},
		{"smin above vmax", 255, 0, 10, []uint8{0, 0, 0, 0}},
		{"saturation floor above range", 300, 0, 255, []uint8{0, 0, 0, 0}},
		{"negative thresholds", -10, -10, 255, []uint8{255, 255, 255, 255}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			mask, err := ColorMask(img, tc.smin, tc.vmin, tc.vmax)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, mask.Pix)
		})
	}
}

func TestColorMaskMat(t *testing.T) {

	img := maskFrame()

	src, err := img.Mat()
	require.NoError(t, err)
	defer src.Close()

	dst := gocv.NewMat()
	defer dst.Close()

	ColorMaskMat(src, &dst, 0, 0, 255)
	assert.Equal(t, []uint8{255, 255, 255, 255}, dst.ToBytes())

	ColorMaskMat(src, &dst, 255, 255, 0)
	assert.Equal(t, []uint8{0, 0, 0, 0}, dst.ToBytes())
}

func TestColorMaskOffsetBounds(t *testing.T) {

	img := NewHSV(image.Rect(10, 20, 12, 21))
	img.SetHSV(11, 20, 90, 200, 200)

	mask, err := ColorMask(img, 85, 50, 254)
	require.NoError(t, err)

	assert.Equal(t, img.Rect, mask.Rect)
	assert.Equal(t, uint8(0), mask.GrayAt(10, 20).Y)
	assert.Equal(t, uint8(255), mask.GrayAt(11, 20).Y)
}

func TestColorMaskEmpty(t *testing.T) {

	_, err := ColorMask(NewHSV(image.Rectangle{}), 0, 0, 255)
	assert.ErrorIs(t, err, ErrEmptyFrame)
}
