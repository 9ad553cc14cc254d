package render

import (
	"image"

	"github.com/swdee/go-camshift/tracker"
	"gocv.io/x/gocv"
)

const (
	// HistBarWidth is the width in pixels of each histogram bar
	HistBarWidth = 24
	// HistHeight is the height in pixels of the histogram chart
	HistHeight = 256
)

// HistogramBars renders the hue histogram as a bar chart with each bar
// painted in the hue of its bin.  The returned BGR Mat must be closed by the
// caller
func HistogramBars(hist tracker.Histogram) gocv.Mat {

	bins := len(hist)

	hsvImg := gocv.NewMatWithSizeFromScalar(gocv.NewScalar(0, 0, 0, 0),
		HistHeight, bins*HistBarWidth, gocv.MatTypeCV8UC3)
	defer hsvImg.Close()

	for i, v := range hist {
		h := int(v)
		if h > HistHeight-1 {
			h = HistHeight - 1
		}

		// bars are drawn in HSV space and converted after
		hue := uint8(180 * i / bins)
		rect := image.Rect(i*HistBarWidth+2, HistHeight-1-h, (i+1)*HistBarWidth-2, HistHeight-1)

		gocv.Rectangle(&hsvImg, rect, hsvScalar(hue, 255, 255), -1)
	}

	out := gocv.NewMat()
	gocv.CvtColor(hsvImg, &out, gocv.ColorHSVToBGR)

	return out
}

// BackProjection converts a likelihood map into a single channel Mat for
// display.  The returned Mat must be closed by the caller
func BackProjection(prob *image.Gray) (gocv.Mat, error) {
	return gocv.ImageGrayToMatGray(prob)
}
