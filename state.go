package camshift

import (
	"fmt"
	"image"

	"github.com/swdee/go-camshift/preprocess"
	"github.com/swdee/go-camshift/tracker"
)

// TrackState is the per track data carried from one frame to the next
type TrackState struct {
	// Histogram is the hue model of the tracked object
	Histogram tracker.Histogram
	// HasHistogram is true once a selection has been consumed
	HasHistogram bool
	// Window is the axis aligned search window for the next frame
	Window image.Rectangle
	// Box is the rotated track result of the last frame
	Box tracker.RotatedRect
	// Frames is the number of frames processed with a histogram
	Frames int
}

// Output is the result of processing a single frame
type Output struct {
	// Mask is the validity mask of the frame
	Mask *image.Gray
	// Likelihood is the thresholded back projection, nil until a histogram
	// exists
	Likelihood *image.Gray
	// Search is the CamShift search result, zero until a histogram exists
	Search tracker.Result
	// ROI is the axis aligned bounds of the track box clipped to the frame,
	// empty when nothing is tracked
	ROI image.Rectangle
	// Tracking is true when a histogram was available for this frame
	Tracking bool
	// Selected is true when a selection was consumed on this frame and the
	// histogram replaced
	Selected bool
}

// RegionOfInterest returns the tracked region as x offset, y offset, width
// and height
func (o Output) RegionOfInterest() (x, y, width, height int) {
	return o.ROI.Min.X, o.ROI.Min.Y, o.ROI.Dx(), o.ROI.Dy()
}

// SelectionRect converts a selection given as x, y, width and height into
// the image.Rectangle convention used throughout the tracker
func SelectionRect(x, y, width, height int) image.Rectangle {
	return image.Rect(x, y, x+width, y+height)
}

// Step processes one HSV frame.  When sel is not nil the histogram is
// rebuilt from the selected region and the search window restarted there.
// It returns the state to carry into the next frame together with the frame
// output, st is not modified.  On error st is returned unchanged
func Step(frame *preprocess.HSV, p Snapshot, st TrackState,
	sel *image.Rectangle, crit tracker.Criteria) (TrackState, Output, error) {

	p = p.Clamped()

	mask, err := preprocess.ColorMask(frame, p.SMin, p.VMin, p.VMax)

	if err != nil {
		return st, Output{}, fmt.Errorf("error building color mask: %w", err)
	}

	out := Output{Mask: mask}
	prev := st

	if sel != nil {
		st.Histogram = tracker.NewHistogram(frame, *sel, out.Mask)
		st.HasHistogram = true
		st.Window = sel.Canon()
		st.Box = tracker.RotatedRect{}
		out.Selected = true
	}

	if !st.HasHistogram {
		return st, out, nil
	}

	prob, err := tracker.BackProject(frame, st.Histogram, out.Mask, p.Threshold)

	if err != nil {
		return prev, Output{}, fmt.Errorf("error back projecting frame: %w", err)
	}

	st.Frames++
	out.Tracking = true
	out.Likelihood = prob
	out.Search = tracker.CamShift(out.Likelihood, st.Window, crit)

	st.Window = out.Search.Window
	st.Box = out.Search.Box
	out.ROI = out.Search.Box.ClipTo(frame.Bounds())

	return st, out, nil
}
