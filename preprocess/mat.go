package preprocess

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Mat returns the image as an 8UC3 Mat for use with GoCV.  The Mat shares
// Pix when the rows are contiguous and must not outlive the image, the
// caller must Close it
func (p *HSV) Mat() (gocv.Mat, error) {
	return packedMat(p.Pix, p.Stride, p.Rect, 3, gocv.MatTypeCV8UC3)
}

// GrayMat returns a gray image as an 8UC1 Mat under the same rules as
// HSV.Mat
func GrayMat(img *image.Gray) (gocv.Mat, error) {
	return packedMat(img.Pix, img.Stride, img.Rect, 1, gocv.MatTypeCV8UC1)
}

// GrayFromMat copies a single channel 8-bit Mat into a gray image with
// bounds r, the Mat must be the size of r
func GrayFromMat(m gocv.Mat, r image.Rectangle) (*image.Gray, error) {

	if m.Type() != gocv.MatTypeCV8UC1 {
		return nil, fmt.Errorf("unsupported Mat type %v, expected 8UC1", m.Type())
	}

	if m.Cols() != r.Dx() || m.Rows() != r.Dy() {
		return nil, fmt.Errorf("Mat size %dx%d does not match bounds %v",
			m.Cols(), m.Rows(), r)
	}

	return &image.Gray{
		Pix:    m.ToBytes(),
		Stride: r.Dx(),
		Rect:   r,
	}, nil
}

// packedMat wraps pixel rows of cn bytes per pixel in a Mat, rows separated
// by padding are packed into a new buffer first
func packedMat(pix []byte, stride int, r image.Rectangle, cn int,
	mt gocv.MatType) (gocv.Mat, error) {

	w, h := r.Dx(), r.Dy()

	if w <= 0 || h <= 0 {
		return gocv.Mat{}, ErrEmptyFrame
	}

	row := w * cn

	if stride < row || len(pix) < (h-1)*stride+row {
		return gocv.Mat{}, fmt.Errorf("pixel buffer of %d bytes too short for %dx%d",
			len(pix), w, h)
	}

	buf := pix[:row*h]

	if stride != row {
		buf = make([]byte, row*h)
		for y := 0; y < h; y++ {
			copy(buf[y*row:(y+1)*row], pix[y*stride:y*stride+row])
		}
	}

	m, err := gocv.NewMatFromBytes(h, w, mt, buf)

	if err != nil {
		return gocv.Mat{}, fmt.Errorf("error creating Mat: %w", err)
	}

	return m, nil
}
