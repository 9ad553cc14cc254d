package preprocess

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocv.io/x/gocv"
)

func TestHSVMat(t *testing.T) {

	img := NewHSV(image.Rect(0, 0, 3, 2))
	img.SetHSV(2, 1, 120, 40, 7)

	m, err := img.Mat()
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, gocv.MatTypeCV8UC3, m.Type())

	v := m.GetVecbAt(1, 2)
	assert.Equal(t, []uint8{120, 40, 7}, []uint8{v[0], v[1], v[2]})
}

func TestGrayMatPadded(t *testing.T) {

	// a sub image keeps the parent stride so rows are not contiguous
	parent := image.NewGray(image.Rect(0, 0, 6, 4))
	parent.SetGray(3, 2, color.Gray{Y: 9})

	sub := parent.SubImage(image.Rect(2, 1, 5, 3)).(*image.Gray)

	m, err := GrayMat(sub)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())
	assert.Equal(t, uint8(9), m.GetUCharAt(1, 1))

	back, err := GrayFromMat(m, sub.Rect)
	require.NoError(t, err)
	assert.Equal(t, uint8(9), back.GrayAt(3, 2).Y)
}

func TestGrayFromMatErrors(t *testing.T) {

	m := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC3)
	defer m.Close()

	_, err := GrayFromMat(m, image.Rect(0, 0, 4, 4))
	assert.Error(t, err)

	g := gocv.NewMatWithSize(4, 4, gocv.MatTypeCV8UC1)
	defer g.Close()

	_, err = GrayFromMat(g, image.Rect(0, 0, 5, 4))
	assert.Error(t, err)

	_, err = GrayMat(image.NewGray(image.Rectangle{}))
	assert.ErrorIs(t, err, ErrEmptyFrame)
}
