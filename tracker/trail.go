package tracker

import (
	"image"
	"sync"
)

// Trail keeps a history of the most recent track box centers used for
// drawing the path of the tracked object
type Trail struct {
	// size is the maximum number of most recent points to keep in history
	size int
	// points is the history of tracked centers, oldest first
	points []image.Point
	sync.Mutex
}

// NewTrail returns a new trail history instance.  Size is the number of most
// recent points to keep and specifies the maximum length of the trail
func NewTrail(size int) *Trail {
	if size < 0 {
		size = 0
	}

	return &Trail{
		size:   size,
		points: make([]image.Point, 0, size),
	}
}

// Reset clears all history
func (t *Trail) Reset() {
	t.Lock()
	defer t.Unlock()

	t.points = t.points[:0]
}

// Add records the center of the track box.  Empty boxes, which occur when
// the track has no likelihood mass, are not recorded
func (t *Trail) Add(box RotatedRect) {
	if box.Empty() || t.size == 0 {
		return
	}

	t.Lock()
	defer t.Unlock()

	t.points = append(t.points, image.Pt(int(box.Center.X+0.5), int(box.Center.Y+0.5)))

	// check if history is exceeded and drop oldest point
	if len(t.points) > t.size {
		t.points = append(t.points[:0], t.points[1:]...)
	}
}

// Points returns a copy of the point history, oldest first
func (t *Trail) Points() []image.Point {
	t.Lock()
	defer t.Unlock()

	out := make([]image.Point, len(t.points))
	copy(out, t.points)
	return out
}

// Len returns the number of points in the history
func (t *Trail) Len() int {
	t.Lock()
	defer t.Unlock()

	return len(t.points)
}
