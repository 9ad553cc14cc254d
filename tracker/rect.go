package tracker

import (
	"image"
	"math"

	clipper "github.com/ctessum/go.clipper"
)

// Point2f represents a sub-pixel x,y coordinate
type Point2f struct {
	X, Y float64
}

// RotatedRect represents a rectangle rotated about its center.  Width is the
// length of the major axis and Height the length of the minor axis
type RotatedRect struct {
	// Center is the center of the rectangle
	Center Point2f
	// Width is the length of the side along the major axis
	Width float64
	// Height is the length of the side along the minor axis
	Height float64
	// Angle is the orientation of the major axis in degrees within [0,180),
	// measured clockwise from the x axis as y grows downwards in images
	Angle float64
}

// Empty reports whether the rectangle has no area
func (r RotatedRect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Area returns the area of the rectangle
func (r RotatedRect) Area() float64 {
	return r.Width * r.Height
}

// Points returns the four corners of the rectangle in drawing order
func (r RotatedRect) Points() [4]Point2f {

	rad := r.Angle * math.Pi / 180
	cs, sn := math.Cos(rad), math.Sin(rad)

	// half extents along the major and minor axis
	ax, ay := cs*r.Width/2, sn*r.Width/2
	bx, by := -sn*r.Height/2, cs*r.Height/2

	return [4]Point2f{
		{r.Center.X - ax - bx, r.Center.Y - ay - by},
		{r.Center.X + ax - bx, r.Center.Y + ay - by},
		{r.Center.X + ax + bx, r.Center.Y + ay + by},
		{r.Center.X - ax + bx, r.Center.Y - ay + by},
	}
}

// BoundingRect returns the smallest integer axis aligned rectangle
// containing the rotated rectangle
func (r RotatedRect) BoundingRect() image.Rectangle {

	if r.Empty() {
		return image.Rectangle{}
	}

	pts := r.Points()

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for _, p := range pts {
		minX = math.Min(minX, snap(p.X))
		minY = math.Min(minY, snap(p.Y))
		maxX = math.Max(maxX, snap(p.X))
		maxY = math.Max(maxY, snap(p.Y))
	}

	return image.Rect(int(math.Floor(minX)), int(math.Floor(minY)),
		int(math.Ceil(maxX)), int(math.Ceil(maxY)))
}

// ClipTo intersects the rotated rectangle polygon with bounds and returns
// the axis aligned bounding rectangle of what remains.  An empty rectangle
// is returned when nothing of the rotated rectangle lies within bounds
func (r RotatedRect) ClipTo(bounds image.Rectangle) image.Rectangle {

	if r.Empty() || bounds.Empty() {
		return image.Rectangle{}
	}

	var subject clipper.Path

	for _, pt := range r.Points() {
		subject = append(subject, &clipper.IntPoint{
			X: clipper.CInt(math.Round(pt.X)),
			Y: clipper.CInt(math.Round(pt.Y)),
		})
	}

	clip := clipper.Path{
		&clipper.IntPoint{X: clipper.CInt(bounds.Min.X), Y: clipper.CInt(bounds.Min.Y)},
		&clipper.IntPoint{X: clipper.CInt(bounds.Max.X), Y: clipper.CInt(bounds.Min.Y)},
		&clipper.IntPoint{X: clipper.CInt(bounds.Max.X), Y: clipper.CInt(bounds.Max.Y)},
		&clipper.IntPoint{X: clipper.CInt(bounds.Min.X), Y: clipper.CInt(bounds.Max.Y)},
	}

	c := clipper.NewClipper(clipper.IoNone)
	c.AddPath(subject, clipper.PtSubject, true)
	c.AddPath(clip, clipper.PtClip, true)

	solution, ok := c.Execute1(clipper.CtIntersection, clipper.PftNonZero,
		clipper.PftNonZero)

	if !ok {
		return image.Rectangle{}
	}

	var out image.Rectangle
	first := true

	for _, path := range solution {
		for _, pt := range path {
			p := image.Pt(int(pt.X), int(pt.Y))

			if first {
				out = image.Rectangle{Min: p, Max: p}
				first = false
				continue
			}

			out.Min.X = min(out.Min.X, p.X)
			out.Min.Y = min(out.Min.Y, p.Y)
			out.Max.X = max(out.Max.X, p.X)
			out.Max.Y = max(out.Max.Y, p.Y)
		}
	}

	return out.Intersect(bounds)
}

// snap rounds away floating point noise from trigonometry so corners that
// lie on whole pixels are not pushed outward by floor/ceil
func snap(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}

// rectCenter returns the sub-pixel center of an axis aligned rectangle in
// pixel index coordinates
func rectCenter(r image.Rectangle) Point2f {
	return Point2f{
		X: float64(r.Min.X) + float64(r.Dx()-1)/2,
		Y: float64(r.Min.Y) + float64(r.Dy()-1)/2,
	}
}

// rectAt returns a w x h rectangle centered on c, shifted where needed so it
// lies within bounds.  The size is clamped to the bounds size and to a
// minimum of one pixel
func rectAt(c Point2f, w, h int, bounds image.Rectangle) image.Rectangle {

	w = max(1, min(w, bounds.Dx()))
	h = max(1, min(h, bounds.Dy()))

	x := int(math.Round(c.X - float64(w-1)/2))
	y := int(math.Round(c.Y - float64(h-1)/2))

	x = max(bounds.Min.X, min(x, bounds.Max.X-w))
	y = max(bounds.Min.Y, min(y, bounds.Max.Y-h))

	return image.Rect(x, y, x+w, y+h)
}
