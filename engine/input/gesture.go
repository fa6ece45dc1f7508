package input

import "time"

// Gesture kind names, used to register listeners.
const (
	GestureTap       = "tap"
	GestureSwipe     = "swipe"
	GestureLongPress = "longPress"
)

// Swipe directions.
const (
	DirLeft  = "left"
	DirRight = "right"
	DirUp    = "up"
	DirDown  = "down"
)

// GestureEvent is delivered synchronously to registered listeners.
type GestureEvent struct {
	Kind      string
	X, Y      float64
	StartX    float64
	StartY    float64
	Direction string // swipes only
	Duration  time.Duration
}

// classify turns a finished touch into a tap or swipe event, or returns
// false when the touch matches neither.
func (h *Handler) classify(t *TouchInfo, endX, endY float64, now time.Time) (GestureEvent, bool) {
	dur := now.Sub(t.Start)
	dx := endX - t.StartX
	dy := endY - t.StartY
	dist := dx*dx + dy*dy

	ev := GestureEvent{
		X:        endX,
		Y:        endY,
		StartX:   t.StartX,
		StartY:   t.StartY,
		Duration: dur,
	}

	swipeMin := h.opts.SwipeMinDistance
	if dist >= swipeMin*swipeMin {
		ev.Kind = GestureSwipe
		ev.Direction = swipeDirection(dx, dy)
		return ev, true
	}

	tapMax := h.opts.TapMaxDistance
	if dur <= h.opts.TapMaxDuration && dist <= tapMax*tapMax {
		ev.Kind = GestureTap
		return ev, true
	}
	return GestureEvent{}, false
}

// swipeDirection picks the dominant axis; ties favor horizontal.
func swipeDirection(dx, dy float64) string {
	ax, ay := dx, dy
	if ax < 0 {
		ax = -ax
	}
	if ay < 0 {
		ay = -ay
	}
	if ax >= ay {
		if dx < 0 {
			return DirLeft
		}
		return DirRight
	}
	if dy < 0 {
		return DirUp
	}
	return DirDown
}
