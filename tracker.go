package camshift

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/google/uuid"
	"github.com/swdee/go-camshift/preprocess"
	"github.com/swdee/go-camshift/tracker"
)

var (
	// ErrFrameSize is returned when a frame does not match the size of the
	// frames previously processed in the session
	ErrFrameSize = errors.New("frame size changed")
)

// Tracker drives the per frame CamShift pipeline and owns the track state
// between frames.  Process must be called from a single goroutine, Select,
// State, Reset and the Params setters may be called from any goroutine.  A
// Reset made while a frame is processing discards that frame's result
type Tracker struct {
	// params are the runtime tunable parameters
	params *Params
	// crit are the mean shift termination criteria
	crit tracker.Criteria
	// log is the logger for track events
	log *slog.Logger
	// trail records the history of track box centers, nil if disabled
	trail *tracker.Trail
	// mu guards pending, state, bounds and session
	mu sync.Mutex
	// pending is a selection waiting to be consumed by the next frame
	pending *image.Rectangle
	// state is the current track state
	state TrackState
	// bounds is the frame size of the session, empty until the first frame
	bounds image.Rectangle
	// session identifies the run of frames since the last reset in logs
	session uuid.UUID
	// gen is incremented by Reset so an in flight frame does not write back
	// state from before the reset
	gen uint64
}

// Option configures a Tracker
type Option func(*Tracker)

// WithCriteria sets the mean shift termination criteria
func WithCriteria(crit tracker.Criteria) Option {
	return func(t *Tracker) {
		t.crit = crit
	}
}

// WithLogger sets the logger used for track events
func WithLogger(log *slog.Logger) Option {
	return func(t *Tracker) {
		if log != nil {
			t.log = log
		}
	}
}

// WithTrail keeps a history of the last size track box centers
func WithTrail(size int) Option {
	return func(t *Tracker) {
		if size > 0 {
			t.trail = tracker.NewTrail(size)
		}
	}
}

// New returns a Tracker reading its tuning values from params.  If params
// is nil the defaults are used
func New(params *Params, opts ...Option) *Tracker {
	if params == nil {
		params = NewParams()
	}

	t := &Tracker{
		params: params,
		crit:   tracker.DefaultCriteria(),
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t
}

// Params returns the tracker parameters
func (t *Tracker) Params() *Params {
	return t.params
}

// Trail returns the track history, or nil when not enabled
func (t *Tracker) Trail() *tracker.Trail {
	return t.trail
}

// Select queues a new selection which replaces the tracked object on the
// next processed frame
func (t *Tracker) Select(r image.Rectangle) {
	r = r.Canon()

	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = &r
}

// State returns a copy of the current track state
func (t *Tracker) State() TrackState {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.state
}

// Session returns the id of the current session, the zero UUID until the
// first frame after New or Reset is processed
func (t *Tracker) Session() uuid.UUID {
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.session
}

// Reset discards the tracked object, any pending selection and the session
// frame size
func (t *Tracker) Reset() {
	t.mu.Lock()
	t.pending = nil
	t.state = TrackState{}
	t.bounds = image.Rectangle{}
	t.session = uuid.UUID{}
	t.gen++
	t.mu.Unlock()

	if t.trail != nil {
		t.trail.Reset()
	}
}

// Process runs the tracking pipeline over an HSV frame
func (t *Tracker) Process(ctx context.Context, frame *preprocess.HSV) (Output, error) {

	if err := ctx.Err(); err != nil {
		return Output{}, err
	}

	if frame == nil || frame.Rect.Empty() {
		return Output{}, preprocess.ErrEmptyFrame
	}

	// take the selection and state together so the frame sees either the
	// old or the new track model, never a mix
	t.mu.Lock()

	if t.bounds.Empty() {
		t.bounds = frame.Rect
		t.session = uuid.New()
		t.log.Debug("session started", "session", t.session, "bounds", t.bounds)
	} else if frame.Rect != t.bounds {
		bounds := t.bounds
		t.mu.Unlock()
		return Output{}, fmt.Errorf("%w: got %v, session is %v", ErrFrameSize,
			frame.Rect, bounds)
	}

	sel := t.pending
	t.pending = nil
	st := t.state
	gen := t.gen
	log := t.log.With("session", t.session)

	t.mu.Unlock()

	next, out, err := Step(frame, t.params.Snapshot(), st, sel, t.crit)

	if err != nil {
		return Output{}, err
	}

	if !t.commit(gen, next) {
		log.Debug("frame discarded after reset")
		return out, nil
	}

	logFrame(log, sel, next, out)

	if t.trail != nil {
		if out.Selected {
			t.trail.Reset()
		}
		t.trail.Add(out.Search.Box)
	}

	return out, nil
}

// commit stores next as the track state unless Reset was called since gen
// was read, it reports whether next was stored
func (t *Tracker) commit(gen uint64, next TrackState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if gen != t.gen {
		return false
	}

	t.state = next
	return true
}

// logFrame records notable track events at debug level
func logFrame(log *slog.Logger, sel *image.Rectangle, st TrackState, out Output) {

	if sel != nil {
		log.Debug("selection consumed", "selection", *sel,
			"peakBin", st.Histogram.Peak(), "empty", st.Histogram.Empty())

		if st.Histogram.Empty() {
			log.Warn("selection holds no valid pixels", "selection", *sel)
		}
	}

	if !out.Tracking {
		return
	}

	if out.Search.Reset {
		log.Debug("search window reset to full frame", "frame", st.Frames)
	}

	if out.Search.Lost {
		log.Debug("no likelihood mass in search window", "frame", st.Frames,
			"window", out.Search.Window)
	}
}
