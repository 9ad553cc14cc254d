package preprocess

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestConvert(t *testing.T) {

	tests := []struct {
		name    string
		bgr     gocv.Scalar
		h, s, v uint8
	}{
		{"red", gocv.NewScalar(0, 0, 255, 0), 0, 255, 255},
		{"green", gocv.NewScalar(0, 255, 0, 0), 60, 255, 255},
		{"blue", gocv.NewScalar(255, 0, 0, 0), 120, 255, 255},
		{"gray", gocv.NewScalar(128, 128, 128, 0), 0, 0, 128},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {

			// a solid frame is unchanged by blurring
			for _, blur := range []int{0, DefaultBlurSize} {
				img := gocv.NewMatWithSizeFromScalar(tc.bgr, 12, 16, gocv.MatTypeCV8UC3)

				conv := NewConverter(blur)

				hsv, err := conv.Convert(img)
				require.NoError(t, err)

				assert.Equal(t, 16, hsv.Bounds().Dx())
				assert.Equal(t, 12, hsv.Bounds().Dy())

				h, s, v := hsv.HSVAt(7, 5)
				assert.Equal(t, []uint8{tc.h, tc.s, tc.v}, []uint8{h, s, v},
					"blur %d", blur)

				img.Close()
				assert.NoError(t, conv.Close())
			}
		})
	}
}

func TestConvertMatchesBGRToHSV(t *testing.T) {

	img := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(30, 200, 90, 0), 4, 4,
		gocv.MatTypeCV8UC3)
	defer img.Close()

	conv := NewConverter(0)
	defer conv.Close()

	hsv, err := conv.Convert(img)
	require.NoError(t, err)

	h, s, v := hsv.HSVAt(0, 0)
	eh, es, ev := BGRToHSV(30, 200, 90)

	assert.InDelta(t, eh, h, 1)
	assert.InDelta(t, es, s, 1)
	assert.Equal(t, ev, v)
}

func TestConvertErrors(t *testing.T) {

	conv := NewConverter(DefaultBlurSize)
	defer conv.Close()

	empty := gocv.NewMat()
	defer empty.Close()

	_, err := conv.Convert(empty)
	assert.ErrorIs(t, err, ErrEmptyFrame)

	gray := gocv.NewMatWithSize(8, 8, gocv.MatTypeCV8UC1)
	defer gray.Close()

	_, err = conv.Convert(gray)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrEmptyFrame)
}

func TestNewConverterBlurSize(t *testing.T) {

	conv := NewConverter(-3)
	defer conv.Close()

	assert.Equal(t, 0, conv.BlurSize())
}
