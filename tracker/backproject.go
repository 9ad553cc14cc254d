package tracker

import (
	"fmt"
	"image"

	"github.com/swdee/go-camshift/preprocess"
	"gocv.io/x/gocv"
)

// BackProject maps each pixel of img to the likelihood of its hue under
// hist.  The result is intersected with mask, which must have the bounds of
// img, and any likelihood less than or equal to threshold is zeroed
func BackProject(img *preprocess.HSV, hist Histogram, mask *image.Gray,
	threshold int) (*image.Gray, error) {

	if mask.Rect != img.Rect {
		return nil, fmt.Errorf("mask bounds %v do not match image bounds %v",
			mask.Rect, img.Rect)
	}

	src, err := img.Mat()

	if err != nil {
		return nil, err
	}

	defer src.Close()

	maskMat, err := preprocess.GrayMat(mask)

	if err != nil {
		return nil, err
	}

	defer maskMat.Close()

	prob := gocv.NewMat()
	defer prob.Close()

	if err := BackProjectMat(src, hist, maskMat, threshold, &prob); err != nil {
		return nil, err
	}

	return preprocess.GrayFromMat(prob, img.Rect)
}

// BackProjectMat writes the thresholded back projection of the 8UC3 HSV Mat
// src, intersected with the 8UC1 mask, into dst
func BackProjectMat(src gocv.Mat, hist Histogram, mask gocv.Mat, threshold int,
	dst *gocv.Mat) error {

	lut, err := hist.lookupTable()

	if err != nil {
		return err
	}

	defer lut.Close()

	hue := gocv.NewMat()
	defer hue.Close()

	gocv.ExtractChannel(src, &hue, 0)
	gocv.LUT(hue, lut, dst)
	gocv.Min(*dst, mask, dst)

	// values at or under the threshold are zeroed, those above are kept
	gocv.Threshold(*dst, dst, float32(max(0, min(threshold, 255))), 255,
		gocv.ThresholdToZero)

	return nil
}

// lookupTable returns a 1x256 8UC1 Mat holding the likelihood of every 8-bit
// hue, the caller must Close it
func (h Histogram) lookupTable() (gocv.Mat, error) {

	lut := make([]byte, 256)
	for hue := range lut {
		lut[hue] = h.Likelihood(uint8(hue))
	}

	m, err := gocv.NewMatFromBytes(1, 256, gocv.MatTypeCV8UC1, lut)

	if err != nil {
		return gocv.Mat{}, fmt.Errorf("error creating lookup table: %w", err)
	}

	return m, nil
}
