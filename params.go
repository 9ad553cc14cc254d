package camshift

import "sync/atomic"

// Default tuning values for the color mask and back projection threshold
const (
	DefaultSMin      = 85
	DefaultVMin      = 50
	DefaultVMax      = 254
	DefaultThreshold = 50
)

// Params holds the runtime tunable parameters of the tracker.  Setters may
// be called from any goroutine, such as a UI trackbar callback, while frames
// are being processed.  Every value is clamped to [0,255]
type Params struct {
	// smin is the minimum saturation of a valid pixel
	smin atomic.Int32
	// vmin is the minimum value (brightness) of a valid pixel
	vmin atomic.Int32
	// vmax is the maximum value (brightness) of a valid pixel
	vmax atomic.Int32
	// threshold is the likelihood at or below which back projected pixels
	// are zeroed
	threshold atomic.Int32
}

// Snapshot is a copy of the parameters taken at the start of a frame
type Snapshot struct {
	SMin      int
	VMin      int
	VMax      int
	Threshold int
}

// NewParams returns parameters set to the defaults
func NewParams() *Params {
	p := &Params{}
	p.Set(DefaultSnapshot())
	return p
}

// DefaultSnapshot returns the default parameter values
func DefaultSnapshot() Snapshot {
	return Snapshot{
		SMin:      DefaultSMin,
		VMin:      DefaultVMin,
		VMax:      DefaultVMax,
		Threshold: DefaultThreshold,
	}
}

// clamp limits v to the 8-bit range
func clamp(v int) int32 {
	switch {
	case v < 0:
		return 0
	case v > 255:
		return 255
	}
	return int32(v)
}

// SetSMin sets the saturation floor
func (p *Params) SetSMin(v int) {
	p.smin.Store(clamp(v))
}

// SetVMin sets the value floor
func (p *Params) SetVMin(v int) {
	p.vmin.Store(clamp(v))
}

// SetVMax sets the value ceiling
func (p *Params) SetVMax(v int) {
	p.vmax.Store(clamp(v))
}

// SetThreshold sets the back projection floor cutoff
func (p *Params) SetThreshold(v int) {
	p.threshold.Store(clamp(v))
}

// Set stores all values of s
func (p *Params) Set(s Snapshot) {
	p.SetSMin(s.SMin)
	p.SetVMin(s.VMin)
	p.SetVMax(s.VMax)
	p.SetThreshold(s.Threshold)
}

// Snapshot returns the current parameter values.  Each value is read
// atomically, values changed concurrently may be from different updates
func (p *Params) Snapshot() Snapshot {
	return Snapshot{
		SMin:      int(p.smin.Load()),
		VMin:      int(p.vmin.Load()),
		VMax:      int(p.vmax.Load()),
		Threshold: int(p.threshold.Load()),
	}
}

// Clamped returns a copy of s with every value limited to [0,255]
func (s Snapshot) Clamped() Snapshot {
	return Snapshot{
		SMin:      int(clamp(s.SMin)),
		VMin:      int(clamp(s.VMin)),
		VMax:      int(clamp(s.VMax)),
		Threshold: int(clamp(s.Threshold)),
	}
}
