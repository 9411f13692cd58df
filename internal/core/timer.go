package core

import "time"

// FixedStep gates simulation ticks behind a minimum interval. A tick is due
// once at least the interval has elapsed since the previous tick.
type FixedStep struct {
	interval time.Duration
	last     time.Time
}

// NewFixedStep constructs a FixedStep that allows one tick per interval.
func NewFixedStep(interval time.Duration) *FixedStep {
	fs := &FixedStep{}
	fs.SetInterval(interval)
	return fs
}

// SetInterval changes the minimum tick interval. It is safe to call from the
// main loop.
func (f *FixedStep) SetInterval(interval time.Duration) {
	if interval < 0 {
		interval = 0
	}
	f.interval = interval
}

// Interval returns the configured minimum interval.
func (f *FixedStep) Interval() time.Duration { return f.interval }

// ShouldStep reports whether the simulation should advance by one tick now.
func (f *FixedStep) ShouldStep() bool {
	return f.ShouldStepAt(time.Now())
}

// ShouldStepAt is ShouldStep with an explicit clock reading.
func (f *FixedStep) ShouldStepAt(now time.Time) bool {
	if !f.last.IsZero() && now.Sub(f.last) < f.interval {
		return false
	}
	f.last = now
	return true
}
