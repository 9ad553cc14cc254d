package preprocess

import (
	"image"

	"gocv.io/x/gocv"
)

// ColorMask builds a binary validity mask from the HSV image.  A pixel is set
// to 255 when its hue is in [0,180], saturation in [smin,255] and value in
// [vmin,vmax], otherwise it is 0.  Thresholds are saturated to 0-255 and
// crossed ranges produce an all-zero mask
func ColorMask(img *HSV, smin, vmin, vmax int) (*image.Gray, error) {

	src, err := img.Mat()

	if err != nil {
		return nil, err
	}

	defer src.Close()

	mask := gocv.NewMat()
	defer mask.Close()

	ColorMaskMat(src, &mask, smin, vmin, vmax)

	return GrayFromMat(mask, img.Rect)
}

// ColorMaskMat writes the validity mask of the 8UC3 HSV Mat src into dst
func ColorMaskMat(src gocv.Mat, dst *gocv.Mat, smin, vmin, vmax int) {

	lower := gocv.NewScalar(0, float64(clamp8(smin)), float64(clamp8(vmin)), 0)
	upper := gocv.NewScalar(HueRange, 255, float64(clamp8(vmax)), 0)

	gocv.InRangeWithScalar(src, lower, upper, dst)
}

// clamp8 limits v to the 8-bit range
func clamp8(v int) int {
	return max(0, min(v, 255))
}
