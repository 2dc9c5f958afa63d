package core

import "time"

// MaxFrameDelta caps how much wall-clock time a single frame may feed into
// the simulation. Anything beyond it is dropped, not queued.
const MaxFrameDelta = 100 * time.Millisecond

// Loop is a fixed-timestep scheduler. Wall-clock frames of any length are
// accumulated and drained in constant steps, so the simulation sees the same
// dt no matter how irregularly frames arrive.
//
// Loop does no scheduling of its own: the platform calls Frame once per
// delivered frame (a Bubble Tea tick message, for example). Update and render
// therefore never overlap.
type Loop struct {
	step        time.Duration
	update      func(dt float64)
	render      func()
	running     bool
	last        time.Time
	accumulator time.Duration
	ticks       uint64
}

// NewLoop creates a stopped loop running update tickRate times per second.
// render may be nil when the caller draws on its own schedule.
func NewLoop(tickRate int, update func(dt float64), render func()) *Loop {
	if tickRate <= 0 {
		tickRate = 60
	}
	return &Loop{
		step:   time.Second / time.Duration(tickRate),
		update: update,
		render: render,
	}
}

// Start begins accepting frames, measuring the first one from now.
// Starting a running loop is a no-op.
func (l *Loop) Start(now time.Time) {
	if l.running {
		return
	}
	l.running = true
	l.last = now
	l.accumulator = 0
}

// Stop makes later frames no-ops. A frame already in progress completes.
func (l *Loop) Stop() {
	l.running = false
}

// Running reports whether the loop accepts frames.
func (l *Loop) Running() bool {
	return l.running
}

// Step returns the fixed simulation step.
func (l *Loop) Step() time.Duration {
	return l.step
}

// Ticks returns the number of update calls made so far.
func (l *Loop) Ticks() uint64 {
	return l.ticks
}

// Frame feeds the time elapsed since the previous frame into the loop.
// It returns the number of simulation ticks that ran.
func (l *Loop) Frame(now time.Time) int {
	if !l.running {
		return 0
	}
	elapsed := now.Sub(l.last)
	l.last = now
	return l.Advance(elapsed)
}

// Advance runs as many fixed ticks as the accumulated time allows, then
// renders exactly once. Negative elapsed time counts as zero.
func (l *Loop) Advance(elapsed time.Duration) int {
	if elapsed < 0 {
		elapsed = 0
	}
	if elapsed > MaxFrameDelta {
		elapsed = MaxFrameDelta
	}
	l.accumulator += elapsed

	n := 0
	dt := l.step.Seconds()
	for l.accumulator >= l.step {
		if l.update != nil {
			l.update(dt)
		}
		l.accumulator -= l.step
		l.ticks++
		n++
	}

	if l.render != nil {
		l.render()
	}
	return n
}
