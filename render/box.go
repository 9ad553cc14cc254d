package render

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/swdee/go-camshift/tracker"
	"gocv.io/x/gocv"
)

// BoxStyle defines the parameters used for rendering the track box
type BoxStyle struct {
	// BoxColor is the color of the rotated rectangle outline
	BoxColor color.RGBA
	// EllipseColor is the color of the ellipse inscribed in the rotated
	// rectangle
	EllipseColor color.RGBA
	// ROIColor is the color of the axis aligned ROI rectangle, drawn only
	// when ShowROI is set
	ROIColor      color.RGBA
	ShowROI       bool
	LineThickness int
	// Label enables drawing the track angle above the ROI
	Label bool
}

// DefaultBoxStyle returns default box style settings
func DefaultBoxStyle() BoxStyle {
	return BoxStyle{
		BoxColor:      Yellow,
		EllipseColor:  Red,
		ROIColor:      Green,
		ShowROI:       true,
		LineThickness: 2,
		Label:         true,
	}
}

// TrackBox renders the rotated track box, its inscribed ellipse and the
// ROI rectangle on the source image.  Empty boxes are not drawn
func TrackBox(img *gocv.Mat, box tracker.RotatedRect, roi image.Rectangle,
	font Font, style BoxStyle) {

	if box.Empty() {
		return
	}

	center := image.Pt(int(math.Round(box.Center.X)), int(math.Round(box.Center.Y)))
	axes := image.Pt(int(math.Round(box.Width/2)), int(math.Round(box.Height/2)))

	gocv.Ellipse(img, center, axes, box.Angle, 0, 360, style.EllipseColor,
		style.LineThickness)

	pts := box.Points()

	for i := range pts {
		a := pts[i]
		b := pts[(i+1)%len(pts)]

		gocv.Line(img,
			image.Pt(int(math.Round(a.X)), int(math.Round(a.Y))),
			image.Pt(int(math.Round(b.X)), int(math.Round(b.Y))),
			style.BoxColor, style.LineThickness,
		)
	}

	if style.ShowROI && !roi.Empty() {
		gocv.Rectangle(img, roi, style.ROIColor, 1)
	}

	if !style.Label || roi.Empty() {
		return
	}

	text := fmt.Sprintf("%.0f deg %dx%d", box.Angle, roi.Dx(), roi.Dy())
	drawLabel(img, text, roi.Min, font, style.ROIColor)
}

// SearchWindow renders the axis aligned search window
func SearchWindow(img *gocv.Mat, window image.Rectangle, clr color.RGBA) {
	if window.Empty() {
		return
	}
	gocv.Rectangle(img, window, clr, 1)
}
