package render

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swdee/go-camshift/tracker"
	"gocv.io/x/gocv"
)

func TestHistogramBars(t *testing.T) {

	var hist tracker.Histogram
	hist[0] = 255

	img := HistogramBars(hist)
	defer img.Close()

	assert.Equal(t, HistHeight, img.Rows())
	assert.Equal(t, tracker.HistBins*HistBarWidth, img.Cols())
	assert.Equal(t, gocv.MatTypeCV8UC3, img.Type())

	// the first bar is pure red in BGR, an empty bin stays black
	bar := img.GetVecbAt(HistHeight/2, HistBarWidth/2)
	assert.Equal(t, []uint8{0, 0, 255}, []uint8{bar[0], bar[1], bar[2]})

	empty := img.GetVecbAt(HistHeight/2, 5*HistBarWidth+HistBarWidth/2)
	assert.Equal(t, []uint8{0, 0, 0}, []uint8{empty[0], empty[1], empty[2]})
}

func TestBackProjection(t *testing.T) {

	prob := image.NewGray(image.Rect(0, 0, 8, 4))
	prob.Pix[prob.PixOffset(3, 2)] = 200

	m, err := BackProjection(prob)
	require.NoError(t, err)
	defer m.Close()

	assert.Equal(t, 4, m.Rows())
	assert.Equal(t, 8, m.Cols())
	assert.Equal(t, uint8(200), m.GetUCharAt(2, 3))
}
