package tracker

import (
	"image"
	"math"
)

const (
	// MinMass is the smallest zeroth moment accepted as evidence of the
	// tracked object within the search window
	MinMass = 1e-6
	// boxTolerance is the number of pixels the converged window is grown
	// by on each side before measuring the object's orientation and size
	boxTolerance = 10
	// boxPad is added to the projected box extents when deriving the next
	// search window
	boxPad = 2
	// minAxis is the smallest track box side length in pixels
	minAxis = 1
)

// Criteria defines when the mean shift iteration stops
type Criteria struct {
	// MaxIter is the maximum number of iterations to perform
	MaxIter int
	// Epsilon is the centroid shift in pixels below which the search is
	// considered converged
	Epsilon float64
}

// DefaultCriteria returns the default termination criteria of 10 iterations
// or a shift under 1 pixel
func DefaultCriteria() Criteria {
	return Criteria{
		MaxIter: 10,
		Epsilon: 1,
	}
}

// Result holds the outcome of a CamShift search
type Result struct {
	// Window is the axis aligned search window to seed the next frame with
	Window image.Rectangle
	// Box is the rotated rectangle fitted to the likelihood distribution
	Box RotatedRect
	// Seed is the window the search started from after degenerate window
	// handling
	Seed image.Rectangle
	// Mass is the zeroth moment found within the final window
	Mass float64
	// Iterations is the number of mean shift iterations run
	Iterations int
	// Converged is true when the centroid shift fell below Epsilon before
	// the iteration cap was reached
	Converged bool
	// Lost is true when the search window held no likelihood mass, Window
	// is then unchanged from Seed, Box is empty and Mass is under MinMass
	Lost bool
	// Reset is true when the input window was degenerate and the search
	// restarted from FullWindow
	Reset bool
}

// FullWindow returns the reset search window for a frame of the given
// bounds, which is the whole frame less a 1 pixel border on the right and
// bottom edges
func FullWindow(bounds image.Rectangle) image.Rectangle {
	return image.Rect(bounds.Min.X, bounds.Min.Y,
		max(bounds.Min.X+1, bounds.Max.X-1), max(bounds.Min.Y+1, bounds.Max.Y-1))
}

// SeedWindow returns the window the search should start from.  A window with
// non-positive width or height, or one which lies entirely outside of bounds,
// is reset to FullWindow
func SeedWindow(window, bounds image.Rectangle) image.Rectangle {

	if degenerate(window, bounds) {
		return FullWindow(bounds)
	}

	return window.Intersect(bounds)
}

// degenerate reports whether window cannot be searched within bounds
func degenerate(window, bounds image.Rectangle) bool {
	return window.Dx() <= 0 || window.Dy() <= 0 || window.Intersect(bounds).Empty()
}

// MeanShift moves and resizes window toward the mode of the likelihood
// distribution in prob.  It returns the final window, the zeroth moment of
// the last window found holding mass, the number of iterations run and
// whether the centroid shift converged below crit.Epsilon
func MeanShift(prob *image.Gray, window image.Rectangle,
	crit Criteria) (image.Rectangle, float64, int, bool) {

	win, _, mass, iters, converged := meanShift(prob, window, crit)
	return win, mass, iters, converged
}

// meanShift runs the mean shift iteration and additionally returns the last
// window examined that held mass
func meanShift(prob *image.Gray, window image.Rectangle,
	crit Criteria) (win, held image.Rectangle, mass float64, iters int, converged bool) {

	bounds := prob.Rect
	win = SeedWindow(window, bounds)
	held = win

	maxIter := max(1, crit.MaxIter)
	eps := math.Max(0, crit.Epsilon)

	for i := 0; i < maxIter; i++ {

		m := ComputeMoments(prob, win)

		if m.M00 < MinMass {
			if i == 0 {
				// no evidence in the window, leave it where it is
				return win, win, m.M00, 1, false
			}

			// the last resize left the mass behind, stay where it was found
			return held, held, mass, i + 1, false
		}

		held = win
		mass = m.M00

		centroid := m.Centroid()
		center := rectCenter(win)
		shift := math.Hypot(centroid.X-center.X, centroid.Y-center.Y)

		w, h := adaptSize(win, m.M00)
		win = rectAt(centroid, w, h, bounds)

		if shift < eps {
			return win, held, mass, i + 1, true
		}
	}

	return win, held, mass, maxIter, false
}

// adaptSize returns the window size supported by a zeroth moment of mass.
// The window area is set to four times the area that mass would cover at
// full likelihood, keeping the aspect ratio of win
func adaptSize(win image.Rectangle, mass float64) (int, int) {

	area := 4 * mass / HistCeiling
	aspect := float64(win.Dx()) / float64(win.Dy())

	w := int(math.Round(math.Sqrt(area * aspect)))
	h := int(math.Round(math.Sqrt(area / aspect)))

	return max(1, w), max(1, h)
}

// CamShift runs a mean shift search from window over the likelihood image
// prob, then fits a rotated rectangle to the second moments of the
// distribution around the converged position
func CamShift(prob *image.Gray, window image.Rectangle, crit Criteria) Result {

	bounds := prob.Rect
	seed := SeedWindow(window, bounds)

	res := Result{
		Window: seed,
		Seed:   seed,
		Reset:  degenerate(window, bounds),
	}

	win, held, mass, iters, converged := meanShift(prob, seed, crit)

	res.Iterations = iters
	res.Converged = converged
	res.Mass = mass

	if mass < MinMass {
		res.Lost = true
		return res
	}

	// measure the object over a slightly larger area than the window so
	// growth of the object between frames can be picked up
	measure := win.Inset(-boxTolerance).Intersect(bounds)

	m := ComputeMoments(prob, measure)

	if m.M00 < MinMass {
		// mass spread around the window center, such as two separate blobs,
		// can shrink the final window onto empty space, measure where the
		// mass was last found instead
		measure = held.Inset(-boxTolerance).Intersect(bounds)
		m = ComputeMoments(prob, measure)
	}

	res.Mass = m.M00

	centroid := m.Centroid()
	major, minor, theta := m.PrincipalAxes()

	// objects a single pixel thick have no spread along one axis
	major = math.Max(major, minAxis)
	minor = math.Max(minor, minAxis)

	res.Box = RotatedRect{
		Center: centroid,
		Width:  major,
		Height: minor,
		Angle:  theta * 180 / math.Pi,
	}

	// next search window covers the projection of the box on each axis
	cs, sn := math.Abs(math.Cos(theta)), math.Abs(math.Sin(theta))

	w := max(int(math.Round(major*cs)), int(math.Round(minor*sn))) + boxPad
	h := max(int(math.Round(major*sn)), int(math.Round(minor*cs))) + boxPad

	res.Window = rectAt(centroid, w, h, bounds)

	return res
}
