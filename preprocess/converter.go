package preprocess

import (
	"errors"
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// DefaultBlurSize is the box filter kernel size applied to frames before
// HSV conversion to suppress sensor noise
const DefaultBlurSize = 5

var (
	// ErrEmptyFrame is returned when converting a Mat with no pixel data
	ErrEmptyFrame = errors.New("empty frame")
)

// Converter defines the struct used for converting BGR video frames into
// HSV images for tracking
type Converter struct {
	// blurSize is the box filter kernel size, 0 disables blurring
	blurSize int
	// blurMat is a Mat holding the blurred frame
	blurMat gocv.Mat
	// hsvMat is a Mat holding the frame converted to HSV color space
	hsvMat gocv.Mat
}

// NewConverter returns a converter that blurs frames with a box filter of
// the given kernel size before converting them to HSV.  A blurSize of 0 or
// less skips blurring
func NewConverter(blurSize int) *Converter {
	if blurSize < 0 {
		blurSize = 0
	}

	return &Converter{
		blurSize: blurSize,
		blurMat:  gocv.NewMat(),
		hsvMat:   gocv.NewMat(),
	}
}

// Close frees memory allocated during the conversion process
func (c *Converter) Close() error {
	err1 := c.blurMat.Close()
	err2 := c.hsvMat.Close()
	return errors.Join(err1, err2)
}

// BlurSize returns the box filter kernel size used
func (c *Converter) BlurSize() int {
	return c.blurSize
}

// Convert blurs the BGR source Mat and converts it to an HSV image
func (c *Converter) Convert(src gocv.Mat) (*HSV, error) {

	if src.Empty() {
		return nil, ErrEmptyFrame
	}

	if src.Type() != gocv.MatTypeCV8UC3 {
		return nil, fmt.Errorf("unsupported Mat type %v, expected 8UC3", src.Type())
	}

	in := src

	if c.blurSize > 1 {
		gocv.Blur(src, &c.blurMat, image.Pt(c.blurSize, c.blurSize))
		in = c.blurMat
	}

	gocv.CvtColor(in, &c.hsvMat, gocv.ColorBGRToHSV)

	// ToBytes returns a copy of the Mat data so the HSV image does not alias
	// memory owned by the converter
	buf := c.hsvMat.ToBytes()

	w, h := c.hsvMat.Cols(), c.hsvMat.Rows()

	if len(buf) != w*h*3 {
		return nil, fmt.Errorf("error reading HSV data: got %d bytes for %dx%d",
			len(buf), w, h)
	}

	return &HSV{
		Pix:    buf,
		Stride: 3 * w,
		Rect:   image.Rect(0, 0, w, h),
	}, nil
}
