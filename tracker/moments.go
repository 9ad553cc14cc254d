package tracker

import (
	"image"
	"math"

	"gonum.org/v1/gonum/mat"
)

// Moments holds the spatial moments of a weight distribution up to second
// order.  Coordinates are absolute pixel indices
type Moments struct {
	M00 float64
	M10 float64
	M01 float64
	M20 float64
	M11 float64
	M02 float64
}

// ComputeMoments returns the spatial moments of prob within r
func ComputeMoments(prob *image.Gray, r image.Rectangle) Moments {

	var m Moments

	r = r.Intersect(prob.Rect)

	for y := r.Min.Y; y < r.Max.Y; y++ {
		i := prob.PixOffset(r.Min.X, y)
		fy := float64(y)

		// accumulate the row first to reduce float operations per pixel
		var row, rowX, rowXX float64

		for x := r.Min.X; x < r.Max.X; x++ {
			if v := prob.Pix[i]; v != 0 {
				w := float64(v)
				fx := float64(x)
				row += w
				rowX += w * fx
				rowXX += w * fx * fx
			}
			i++
		}

		m.M00 += row
		m.M10 += rowX
		m.M01 += row * fy
		m.M20 += rowXX
		m.M11 += rowX * fy
		m.M02 += row * fy * fy
	}

	return m
}

// Centroid returns the center of mass, the caller must ensure M00 is not zero
func (m Moments) Centroid() Point2f {
	return Point2f{X: m.M10 / m.M00, Y: m.M01 / m.M00}
}

// Covariance returns the normalized second central moments mu20/m00,
// mu11/m00 and mu02/m00
func (m Moments) Covariance() (a, b, c float64) {
	cx, cy := m.M10/m.M00, m.M01/m.M00
	a = m.M20/m.M00 - cx*cx
	b = m.M11/m.M00 - cx*cy
	c = m.M02/m.M00 - cy*cy
	return a, b, c
}

// PrincipalAxes returns the major and minor axis lengths and the orientation
// of the major axis in radians within [0,pi).  Axis lengths are four
// standard deviations of the distribution along each axis
func (m Moments) PrincipalAxes() (major, minor, theta float64) {

	a, b, c := m.Covariance()

	sym := mat.NewSymDense(2, []float64{a, b, b, c})

	var eig mat.EigenSym

	if ok := eig.Factorize(sym, true); !ok {
		return 0, 0, 0
	}

	// eigen values are returned in ascending order
	vals := eig.Values(nil)

	var vecs mat.Dense
	eig.VectorsTo(&vecs)

	major = 4 * math.Sqrt(math.Max(0, vals[1]))
	minor = 4 * math.Sqrt(math.Max(0, vals[0]))

	theta = math.Atan2(vecs.At(1, 1), vecs.At(0, 1))

	// an axis direction is only defined modulo pi
	if theta < 0 {
		theta += math.Pi
	}
	if theta >= math.Pi {
		theta -= math.Pi
	}

	return major, minor, theta
}
