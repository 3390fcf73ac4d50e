package core

import "time"

// FramePacer spreads a host loop over a fixed per-frame time budget.
type FramePacer struct {
	budget time.Duration
	start  time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFramePacer constructs a pacer targeting fps frames per second.
func NewFramePacer(fps int) *FramePacer {
	p := &FramePacer{now: time.Now, sleep: time.Sleep}
	p.SetFPS(fps)
	return p
}

// SetFPS changes the frame budget. Non-positive rates fall back to 30.
func (p *FramePacer) SetFPS(fps int) {
	if fps <= 0 {
		fps = 30
	}
	p.budget = time.Second / time.Duration(fps)
}

// Budget returns the target duration of one frame.
func (p *FramePacer) Budget() time.Duration { return p.budget }

// Begin marks the start of a frame.
func (p *FramePacer) Begin() { p.start = p.now() }

// Remaining returns what is left of the frame budget, clamped to zero when the
// frame overran.
func (p *FramePacer) Remaining() time.Duration {
	left := p.budget - p.now().Sub(p.start)
	if left < 0 {
		return 0
	}
	return left
}

// Wait sleeps for the remainder of the frame and returns how long it slept.
func (p *FramePacer) Wait() time.Duration {
	left := p.Remaining()
	if left > 0 {
		p.sleep(left)
	}
	return left
}
