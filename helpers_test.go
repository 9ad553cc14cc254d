package camshift

import (
	"image"

	"github.com/swdee/go-camshift/preprocess"
)

var (
	// patch is the region of the test object in patchFrame
	patch = image.Rect(50, 50, 90, 90)
)

// patchFrame returns a 160x120 HSV frame with a hue 10 object over patch
// on a hue 100 background, both saturated enough to pass the default mask
func patchFrame() *preprocess.HSV {
	return objectFrame(160, 120, patch)
}

// objectFrame returns a w x h HSV frame with a hue 10 object drawn over r
func objectFrame(w, h int, r image.Rectangle) *preprocess.HSV {
	img := preprocess.NewHSV(image.Rect(0, 0, w, h))

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if image.Pt(x, y).In(r) {
				img.SetHSV(x, y, 10, 255, 200)
				continue
			}
			img.SetHSV(x, y, 100, 255, 200)
		}
	}

	return img
}
