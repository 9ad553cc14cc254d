package preprocess

import (
	"fmt"
	"image"
	"image/color"
)

// HueRange is the exclusive upper bound of 8-bit hue values, hue is stored
// as degrees/2 so it fits in a byte
const HueRange = 180

// HSV is an in-memory image of interleaved hue, saturation and value bytes.
// It is laid out the same way as image.RGBA with three bytes per pixel
type HSV struct {
	// Pix holds the pixel values as H,S,V triplets in row major order
	Pix []uint8
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels
	Stride int
	// Rect is the image bounds
	Rect image.Rectangle
}

// NewHSV returns a new HSV image with the given bounds
func NewHSV(r image.Rectangle) *HSV {
	w, h := r.Dx(), r.Dy()

	if w < 0 || h < 0 {
		w, h = 0, 0
	}

	return &HSV{
		Pix:    make([]uint8, 3*w*h),
		Stride: 3 * w,
		Rect:   r,
	}
}

// Bounds returns the image bounds
func (p *HSV) Bounds() image.Rectangle {
	return p.Rect
}

// PixOffset returns the index of the first byte of pixel (x, y) in Pix
func (p *HSV) PixOffset(x, y int) int {
	return (y-p.Rect.Min.Y)*p.Stride + (x-p.Rect.Min.X)*3
}

// HSVAt returns the hue, saturation and value of pixel (x, y).  Pixels
// outside the bounds read as zero
func (p *HSV) HSVAt(x, y int) (h, s, v uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return 0, 0, 0
	}

	i := p.PixOffset(x, y)
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// SetHSV sets the hue, saturation and value of pixel (x, y)
func (p *HSV) SetHSV(x, y int, h, s, v uint8) {
	if !(image.Point{x, y}.In(p.Rect)) {
		return
	}

	i := p.PixOffset(x, y)
	p.Pix[i] = h
	p.Pix[i+1] = s
	p.Pix[i+2] = v
}

// BGRToHSV converts a single 8-bit BGR pixel to 8-bit HSV using the same
// mapping as OpenCV's COLOR_BGR2HSV, hue is in [0,180) and saturation and
// value in [0,255]
func BGRToHSV(b, g, r uint8) (h, s, v uint8) {

	bi, gi, ri := int(b), int(g), int(r)

	maxV := ri
	if gi > maxV {
		maxV = gi
	}
	if bi > maxV {
		maxV = bi
	}

	minV := ri
	if gi < minV {
		minV = gi
	}
	if bi < minV {
		minV = bi
	}

	diff := maxV - minV

	if maxV == 0 {
		return 0, 0, 0
	}

	sat := (diff*255 + maxV/2) / maxV

	if diff == 0 {
		return 0, uint8(sat), uint8(maxV)
	}

	// hue segment numerator, one sixth of the circle per diff
	var seg int

	switch maxV {
	case ri:
		seg = gi - bi
	case gi:
		seg = bi - ri + 2*diff
	default:
		seg = ri - gi + 4*diff
	}

	// 30 hue units per segment, rounded half up
	hue := floorDiv(seg*60+diff, 2*diff)

	if hue < 0 {
		hue += HueRange
	}
	if hue >= HueRange {
		hue -= HueRange
	}

	return uint8(hue), uint8(sat), uint8(maxV)
}

// floorDiv performs integer division rounding toward negative infinity
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// FromBGR converts a packed 8-bit BGR buffer of the given dimensions into an
// HSV image
func FromBGR(pix []byte, width, height int) (*HSV, error) {

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid frame dimensions %dx%d", width, height)
	}

	if len(pix) != width*height*3 {
		return nil, fmt.Errorf("BGR buffer length %d does not match %dx%dx3",
			len(pix), width, height)
	}

	img := NewHSV(image.Rect(0, 0, width, height))

	for i := 0; i+2 < len(pix); i += 3 {
		img.Pix[i], img.Pix[i+1], img.Pix[i+2] = BGRToHSV(pix[i], pix[i+1], pix[i+2])
	}

	return img, nil
}

// FromImage converts any image.Image into an HSV image
func FromImage(src image.Image) *HSV {

	b := src.Bounds()
	img := NewHSV(b)

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(src.At(x, y)).(color.RGBA)
			h, s, v := BGRToHSV(c.B, c.G, c.R)
			img.SetHSV(x, y, h, s, v)
		}
	}

	return img
}
