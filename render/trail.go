package render

import (
	"github.com/swdee/go-camshift/tracker"
	"gocv.io/x/gocv"
	"image/color"
)

// TrailStyle defines the parameters used for rendering the trail style
type TrailStyle struct {
	LineColor     color.RGBA
	LineThickness int
	CircleColor   color.RGBA
	CircleRadius  int
}

// DefaultTrailStyle returns default trail style settings
func DefaultTrailStyle() TrailStyle {
	return TrailStyle{
		LineColor:     Yellow,
		LineThickness: 1,
		CircleColor:   Pink,
		CircleRadius:  3,
	}
}

// Trail draws the tracker trail line on the source image with a circle
// marking the most recent center
func Trail(img *gocv.Mat, trail *tracker.Trail, style TrailStyle) {

	if trail == nil {
		return
	}

	points := trail.Points()

	if len(points) < 2 {
		return
	}

	for i := 1; i < len(points); i++ {
		// draw line segment of trail
		gocv.Line(img, points[i-1], points[i], style.LineColor, style.LineThickness)
	}

	// draw center point circle on current box
	gocv.Circle(img, points[len(points)-1], style.CircleRadius, style.CircleColor, -1)
}
