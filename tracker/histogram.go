package tracker

import (
	"image"

	"github.com/swdee/go-camshift/preprocess"
	"gonum.org/v1/gonum/floats"
)

const (
	// HistBins is the number of bins the hue range is divided into
	HistBins = 16
	// HistCeiling is the value the largest bin is scaled to
	HistCeiling = 255
)

// Histogram is a hue histogram normalized so the largest bin equals
// HistCeiling.  An all-zero Histogram is valid and means no signal
type Histogram [HistBins]float32

// BinIndex returns the histogram bin a hue value falls into, or -1 for hues
// outside of [0,180)
func BinIndex(hue uint8) int {
	if int(hue) >= preprocess.HueRange {
		return -1
	}
	return int(hue) * HistBins / preprocess.HueRange
}

// NewHistogram builds the hue histogram of the selected region of img,
// counting only pixels set in mask.  The selection is constrained to the
// area covered by both the image and the mask
func NewHistogram(img *preprocess.HSV, sel image.Rectangle, mask *image.Gray) Histogram {

	var counts [HistBins]float64

	roi := sel.Intersect(img.Rect).Intersect(mask.Rect)

	for y := roi.Min.Y; y < roi.Max.Y; y++ {
		src := img.PixOffset(roi.Min.X, y)
		m := mask.PixOffset(roi.Min.X, y)

		for x := roi.Min.X; x < roi.Max.X; x++ {
			if mask.Pix[m] != 0 {
				if bin := BinIndex(img.Pix[src]); bin >= 0 {
					counts[bin]++
				}
			}
			src += 3
			m++
		}
	}

	var hist Histogram

	peak := floats.Max(counts[:])

	if peak == 0 {
		return hist
	}

	floats.Scale(HistCeiling/peak, counts[:])

	for i, c := range counts {
		hist[i] = float32(c)
	}

	// guard against rounding leaving the peak a hair under the ceiling
	hist[floats.MaxIdx(counts[:])] = HistCeiling

	return hist
}

// Empty reports whether the histogram holds no signal
func (h Histogram) Empty() bool {
	for _, v := range h {
		if v != 0 {
			return false
		}
	}
	return true
}

// Max returns the largest bin value
func (h Histogram) Max() float32 {
	m := float32(0)
	for _, v := range h {
		if v > m {
			m = v
		}
	}
	return m
}

// Peak returns the index of the largest bin
func (h Histogram) Peak() int {
	idx := 0
	for i, v := range h {
		if v > h[idx] {
			idx = i
		}
	}
	return idx
}

// Likelihood returns the 8-bit likelihood of a hue under the histogram
func (h Histogram) Likelihood(hue uint8) uint8 {
	bin := BinIndex(hue)
	if bin < 0 {
		return 0
	}
	return saturate(h[bin])
}

// saturate rounds a float to the nearest 8-bit value
func saturate(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 255:
		return 255
	}
	return uint8(v + 0.5)
}
