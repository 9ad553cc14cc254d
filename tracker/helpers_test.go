package tracker

import (
	"image"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/swdee/go-camshift/preprocess"
)

// hsvFrame returns a w x h HSV image filled with a single color
func hsvFrame(w, h int, hue, sat, val uint8) *preprocess.HSV {
	img := preprocess.NewHSV(image.Rect(0, 0, w, h))
	fillHSV(img, img.Rect, hue, sat, val)
	return img
}

// fillHSV paints r of img with a single color
func fillHSV(img *preprocess.HSV, r image.Rectangle, hue, sat, val uint8) {
	r = r.Intersect(img.Rect)
	for y := r.Min.Y; y < r.Max.Y; y++ {
		for x := r.Min.X; x < r.Max.X; x++ {
			img.SetHSV(x, y, hue, sat, val)
		}
	}
}

// randomFrame returns an HSV image with random pixel values
func randomFrame(rng *rand.Rand, w, h int) *preprocess.HSV {
	img := preprocess.NewHSV(image.Rect(0, 0, w, h))
	for i := 0; i < len(img.Pix); i += 3 {
		img.Pix[i] = uint8(rng.Intn(preprocess.HueRange))
		img.Pix[i+1] = uint8(rng.Intn(256))
		img.Pix[i+2] = uint8(rng.Intn(256))
	}
	return img
}

// likelihood returns a w x h likelihood map with rects set to v
func likelihood(w, h int, v uint8, rects ...image.Rectangle) *image.Gray {
	prob := image.NewGray(image.Rect(0, 0, w, h))
	for _, r := range rects {
		r = r.Intersect(prob.Rect)
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				prob.Pix[prob.PixOffset(x, y)] = v
			}
		}
	}
	return prob
}

// fullMask returns a mask with every pixel valid
func fullMask(r image.Rectangle) *image.Gray {
	mask := image.NewGray(r)
	for i := range mask.Pix {
		mask.Pix[i] = 255
	}
	return mask
}

// windowCenter returns the pixel index center of r
func windowCenter(r image.Rectangle) (float64, float64) {
	c := rectCenter(r)
	return c.X, c.Y
}

// colorMask builds the validity mask of img failing the test on error
func colorMask(t *testing.T, img *preprocess.HSV, smin, vmin, vmax int) *image.Gray {
	t.Helper()
	mask, err := preprocess.ColorMask(img, smin, vmin, vmax)
	require.NoError(t, err)
	return mask
}

// backProject back projects img failing the test on error
func backProject(t *testing.T, img *preprocess.HSV, hist Histogram,
	mask *image.Gray, threshold int) *image.Gray {
	t.Helper()
	prob, err := BackProject(img, hist, mask, threshold)
	require.NoError(t, err)
	return prob
}
