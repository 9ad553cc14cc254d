package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/swdee/go-camshift/preprocess"
	"github.com/swdee/go-camshift/tracker"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// HueGraphStyle defines the parameters used for rendering the hue graph
type HueGraphStyle struct {
	Width  int
	Height int
	// Dim is the brightness factor used for the background of each column
	Dim float64
	// Caption enables drawing the peak bin caption in the top left corner
	Caption      bool
	CaptionColor color.RGBA
}

// DefaultHueGraphStyle returns default hue graph style settings
func DefaultHueGraphStyle() HueGraphStyle {
	return HueGraphStyle{
		Width:        320,
		Height:       200,
		Dim:          0.25,
		Caption:      true,
		CaptionColor: White,
	}
}

// HueGraph renders the histogram as a log scaled graph where the hue sweeps
// across the image from left to right.  Each column is painted in its hue at
// full brightness up to the log scaled bin height and dimmed above it
func HueGraph(hist tracker.Histogram, style HueGraphStyle) *image.RGBA {

	w, h := max(1, style.Width), max(1, style.Height)
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{Black}, image.Point{}, draw.Src)

	// log scale bins so small bins remain visible next to the peak
	var logBins [tracker.HistBins]float64
	hi := 0.0

	for i, v := range hist {
		logBins[i] = math.Log1p(float64(v))
		hi = math.Max(hi, logBins[i])
	}

	for x := 0; x < w; x++ {
		hue := float64(preprocess.HueRange) * float64(x) / float64(max(1, w-1))
		bright := hueToRGBA(hue)
		dim := scaleRGBA(bright, style.Dim)

		val := 0
		if hi > 0 {
			bin := tracker.HistBins * x / w
			val = int(logBins[bin] / hi * float64(h))
		}

		for y := 0; y < h; y++ {
			if y >= h-val {
				img.SetRGBA(x, y, bright)
			} else {
				img.SetRGBA(x, y, dim)
			}
		}
	}

	if style.Caption {
		caption := "no signal"
		if !hist.Empty() {
			peak := hist.Peak()
			lo := peak * preprocess.HueRange / tracker.HistBins
			caption = fmt.Sprintf("peak hue %d-%d", lo, lo+preprocess.HueRange/tracker.HistBins)
		}
		drawCaption(img, caption, style.CaptionColor)
	}

	return img
}

// drawCaption writes text in the top left corner of img
func drawCaption(img *image.RGBA, text string, clr color.RGBA) {

	face := basicfont.Face7x13

	dr := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(clr),
		Face: face,
		Dot: fixed.Point26_6{
			X: fixed.I(4),
			Y: fixed.I(4) + face.Metrics().Ascent,
		},
	}

	dr.DrawString(text)
}
