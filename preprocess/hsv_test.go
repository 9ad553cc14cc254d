package preprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBGRToHSV(t *testing.T) {

	tests := []struct {
		name    string
		b, g, r uint8
		h, s, v uint8
	}{
		{"black", 0, 0, 0, 0, 0, 0},
		{"white", 255, 255, 255, 0, 0, 255},
		{"gray", 128, 128, 128, 0, 0, 128},
		{"red", 0, 0, 255, 0, 255, 255},
		{"green", 0, 255, 0, 60, 255, 255},
		{"blue", 255, 0, 0, 120, 255, 255},
		{"yellow", 0, 255, 255, 30, 255, 255},
		{"cyan", 255, 255, 0, 90, 255, 255},
		{"magenta", 255, 0, 255, 150, 255, 255},
		{"dark red", 0, 0, 128, 0, 255, 128},
		{"pale blue", 255, 128, 128, 120, 127, 255},
		{"red toward magenta", 10, 0, 255, 179, 255, 255},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			h, s, v := BGRToHSV(tc.b, tc.g, tc.r)
			assert.Equal(t, tc.h, h, "hue")
			assert.Equal(t, tc.s, s, "saturation")
			assert.Equal(t, tc.v, v, "value")
		})
	}
}

func TestBGRToHSVHueRange(t *testing.T) {

	for b := 0; b < 256; b += 5 {
		for g := 0; g < 256; g += 5 {
			for r := 0; r < 256; r += 5 {
				h, _, _ := BGRToHSV(uint8(b), uint8(g), uint8(r))
				require.Less(t, int(h), HueRange, "bgr %d,%d,%d", b, g, r)
			}
		}
	}
}

func TestFromBGR(t *testing.T) {

	// 2x1 frame with a blue and a red pixel
	img, err := FromBGR([]byte{255, 0, 0, 0, 0, 255}, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 1), img.Bounds())

	h, s, v := img.HSVAt(0, 0)
	assert.Equal(t, []uint8{120, 255, 255}, []uint8{h, s, v})

	h, s, v = img.HSVAt(1, 0)
	assert.Equal(t, []uint8{0, 255, 255}, []uint8{h, s, v})

	_, err = FromBGR([]byte{1, 2, 3}, 2, 1)
	assert.Error(t, err)

	_, err = FromBGR(nil, 0, 0)
	assert.Error(t, err)
}

func TestFromImage(t *testing.T) {

	src := image.NewRGBA(image.Rect(5, 5, 7, 6))
	src.Set(5, 5, color.RGBA{R: 0, G: 255, B: 0, A: 255})
	src.Set(6, 5, color.RGBA{R: 255, G: 255, B: 0, A: 255})

	img := FromImage(src)

	assert.Equal(t, src.Bounds(), img.Bounds())

	h, s, v := img.HSVAt(5, 5)
	assert.Equal(t, []uint8{60, 255, 255}, []uint8{h, s, v})

	h, _, _ = img.HSVAt(6, 5)
	assert.Equal(t, uint8(30), h)

	// out of bounds reads as zero
	h, s, v = img.HSVAt(0, 0)
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{h, s, v})
}
