package render

import (
	"image"
	"image/color"

	"gocv.io/x/gocv"
)

// Font defines the parameters for rendering label text on a frame with GoCV
type Font struct {
	Face      gocv.HersheyFont
	Scale     float64
	Color     color.RGBA
	Thickness int
	LineType  gocv.LineType
	// Pad is the space in pixels left around the text inside its backing box
	Pad image.Point
}

// DefaultFont returns default font settings
func DefaultFont() Font {
	return Font{
		Face:      gocv.FontHersheySimplex,
		Scale:     0.5,
		Color:     White,
		Thickness: 1,
		LineType:  gocv.LineAA,
		Pad:       image.Pt(4, 5),
	}
}

// drawLabel writes text on a filled box sitting on top of anchor, the box
// is moved below anchor when it would leave the top of the frame
func drawLabel(img *gocv.Mat, text string, anchor image.Point, font Font,
	bg color.RGBA) {

	size := gocv.GetTextSize(text, font.Face, font.Scale, font.Thickness)

	h := size.Y + 2*font.Pad.Y
	top := anchor.Y - h

	if top < 0 {
		top = anchor.Y
	}

	backing := image.Rect(anchor.X, top, anchor.X+size.X+2*font.Pad.X, top+h)
	gocv.Rectangle(img, backing, bg, -1)

	gocv.PutTextWithParams(img, text,
		image.Pt(backing.Min.X+font.Pad.X, backing.Max.Y-font.Pad.Y),
		font.Face, font.Scale, font.Color, font.Thickness, font.LineType, false)
}
