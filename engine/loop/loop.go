// Package loop implements a fixed-timestep accumulator that decouples
// simulation rate from display refresh rate.
package loop

const (
	// DefaultStep is one simulation step in milliseconds (60 steps/sec).
	DefaultStep = 1000.0 / 60.0
	// DefaultMaxDelta caps the elapsed time fed into the accumulator so a
	// stalled frame (debugger, window drag) can't trigger runaway catch-up.
	DefaultMaxDelta = 250.0
)

// Loop drains wall-clock time into constant-size simulation steps.
type Loop struct {
	Step     float64
	MaxDelta float64

	acc float64
}

func New() *Loop {
	return &Loop{Step: DefaultStep, MaxDelta: DefaultMaxDelta}
}

// Advance clamps delta to MaxDelta, adds it to the accumulator, and
// invokes fn once per whole step the accumulator holds. The remainder is
// kept for the next frame, so after Advance returns the accumulator is
// always in [0, Step). Returns the number of steps run.
func (l *Loop) Advance(delta float64, fn func(step float64)) int {
	if delta < 0 {
		delta = 0
	}
	if delta > l.MaxDelta {
		delta = l.MaxDelta
	}
	l.acc += delta

	steps := 0
	for l.acc >= l.Step {
		fn(l.Step)
		l.acc -= l.Step
		steps++
	}
	return steps
}

// Accumulated returns the leftover time waiting for the next step.
func (l *Loop) Accumulated() float64 {
	return l.acc
}

// Reset drops any accumulated time. Called on resume so time spent
// paused doesn't burst into catch-up steps.
func (l *Loop) Reset() {
	l.acc = 0
}
