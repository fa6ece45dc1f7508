package input

import (
	"time"

	"versusbank/common"
)

// Options tunes gesture thresholds and the virtual joystick. Distances
// are in logical pixels.
type Options struct {
	JoystickRadius       float64
	TapMaxDuration       time.Duration
	TapMaxDistance       float64
	SwipeMinDistance     float64
	LongPressDelay       time.Duration
	LongPressMaxDistance float64
}

func DefaultOptions() Options {
	return Options{
		JoystickRadius:       60,
		TapMaxDuration:       250 * time.Millisecond,
		TapMaxDistance:       10,
		SwipeMinDistance:     30,
		LongPressDelay:       500 * time.Millisecond,
		LongPressMaxDistance: 8,
	}
}

// TouchInfo tracks one active touch from start to release.
type TouchInfo struct {
	ID             int64
	X, Y           float64
	StartX, StartY float64
	Start          time.Time

	longPressSent bool
}

// Mouse is the latest pointer state.
type Mouse struct {
	X, Y    float64
	Button  MouseButton
	Pressed bool
}

type joystick struct {
	active           bool
	touchID          int64
	anchorX, anchorY float64
	x, y             float64
}

// Handler polls a Source once per frame and maintains key, mouse, touch,
// joystick, and gesture state.
type Handler struct {
	src  Source
	now  func() time.Time
	opts Options

	width, height float64

	keys    map[Key]bool
	mouse   Mouse
	drag    *TouchInfo // left-button press tracked like a touch
	touches map[int64]*TouchInfo
	order   []int64

	joy joystick

	listeners map[string][]func(GestureEvent)
}

func NewHandler(src Source, opts Options) *Handler {
	return &Handler{
		src:       src,
		now:       time.Now,
		opts:      opts,
		keys:      map[Key]bool{},
		touches:   map[int64]*TouchInfo{},
		listeners: map[string][]func(GestureEvent){},
	}
}

// SetClock overrides the time source. Gesture timing in tests depends on
// this.
func (h *Handler) SetClock(now func() time.Time) { h.now = now }

// SetCanvasSize tells the handler the logical canvas size; the virtual
// joystick only activates for touches starting in the left half.
func (h *Handler) SetCanvasSize(w, h2 float64) {
	h.width, h.height = w, h2
}

// On registers a listener for a gesture kind. Listeners run synchronously
// during Update, in registration order.
func (h *Handler) On(kind string, fn func(GestureEvent)) {
	h.listeners[kind] = append(h.listeners[kind], fn)
}

func (h *Handler) emit(ev GestureEvent) {
	for _, fn := range h.listeners[ev.Kind] {
		fn(ev)
	}
}

// Update polls the source and advances touch, joystick, and gesture
// state one frame.
func (h *Handler) Update() {
	now := h.now()

	for k := range h.keys {
		delete(h.keys, k)
	}
	for _, k := range h.src.PressedKeys() {
		h.keys[k] = true
	}

	mx, my := h.src.Cursor()
	h.mouse.X, h.mouse.Y = mx, my
	switch {
	case h.src.MousePressed(MouseLeft):
		h.mouse.Button, h.mouse.Pressed = MouseLeft, true
	case h.src.MousePressed(MouseRight):
		h.mouse.Button, h.mouse.Pressed = MouseRight, true
	case h.src.MousePressed(MouseMiddle):
		h.mouse.Button, h.mouse.Pressed = MouseMiddle, true
	default:
		h.mouse.Pressed = false
	}
	h.updateDrag(mx, my, now)

	active := make(map[int64]bool, len(h.touches))
	for _, t := range h.src.Touches() {
		active[t.ID] = true
		info, ok := h.touches[t.ID]
		if !ok {
			h.touchStart(t, now)
			continue
		}
		h.touchMove(info, t)
		h.maybeLongPress(info, now)
	}

	for _, id := range append([]int64(nil), h.order...) {
		if !active[id] {
			h.touchEnd(h.touches[id], now)
		}
	}
}

// updateDrag tracks the left mouse button as a synthetic touch so mouse
// users get the same tap/swipe/long-press gestures. The drag never
// drives the virtual joystick.
func (h *Handler) updateDrag(mx, my float64, now time.Time) {
	pressed := h.mouse.Pressed && h.mouse.Button == MouseLeft
	switch {
	case pressed && h.drag == nil:
		h.drag = &TouchInfo{ID: -1, X: mx, Y: my, StartX: mx, StartY: my, Start: now}
	case pressed:
		h.drag.X, h.drag.Y = mx, my
		h.maybeLongPress(h.drag, now)
	case h.drag != nil:
		d := h.drag
		h.drag = nil
		if d.longPressSent {
			return
		}
		if ev, ok := h.classify(d, mx, my, now); ok {
			h.emit(ev)
		}
	}
}

// maybeLongPress fires the long-press gesture once per touch when it
// has been held past the delay without drifting.
func (h *Handler) maybeLongPress(info *TouchInfo, now time.Time) {
	if info.longPressSent || now.Sub(info.Start) < h.opts.LongPressDelay || !h.withinLongPress(info) {
		return
	}
	info.longPressSent = true
	h.emit(GestureEvent{
		Kind:     GestureLongPress,
		X:        info.X,
		Y:        info.Y,
		StartX:   info.StartX,
		StartY:   info.StartY,
		Duration: now.Sub(info.Start),
	})
}

func (h *Handler) touchStart(t Touch, now time.Time) {
	info := &TouchInfo{ID: t.ID, X: t.X, Y: t.Y, StartX: t.X, StartY: t.Y, Start: now}
	h.touches[t.ID] = info
	h.order = append(h.order, t.ID)

	if !h.joy.active && h.width > 0 && t.X < h.width/2 {
		h.joy = joystick{active: true, touchID: t.ID, anchorX: t.X, anchorY: t.Y, x: t.X, y: t.Y}
	}
}

func (h *Handler) touchMove(info *TouchInfo, t Touch) {
	info.X, info.Y = t.X, t.Y

	if h.joy.active && h.joy.touchID == info.ID {
		dx, dy := common.ClampMagnitude(t.X-h.joy.anchorX, t.Y-h.joy.anchorY, h.opts.JoystickRadius)
		h.joy.x = h.joy.anchorX + dx
		h.joy.y = h.joy.anchorY + dy
	}
}

func (h *Handler) touchEnd(info *TouchInfo, now time.Time) {
	if info == nil {
		return
	}
	delete(h.touches, info.ID)
	for i, id := range h.order {
		if id == info.ID {
			h.order = append(h.order[:i], h.order[i+1:]...)
			break
		}
	}

	if h.joy.active && h.joy.touchID == info.ID {
		h.joy = joystick{}
	}

	if info.longPressSent {
		return
	}
	if ev, ok := h.classify(info, info.X, info.Y, now); ok {
		h.emit(ev)
	}
}

func (h *Handler) withinLongPress(info *TouchInfo) bool {
	dx := info.X - info.StartX
	dy := info.Y - info.StartY
	max := h.opts.LongPressMaxDistance
	return dx*dx+dy*dy <= max*max
}

// KeyPressed reports whether the key was down during the last Update.
func (h *Handler) KeyPressed(k Key) bool { return h.keys[k] }

// Mouse returns the latest pointer state.
func (h *Handler) Mouse() Mouse { return h.mouse }

// Touches returns the active touches in start order.
func (h *Handler) Touches() []TouchInfo {
	out := make([]TouchInfo, 0, len(h.order))
	for _, id := range h.order {
		if t, ok := h.touches[id]; ok {
			out = append(out, *t)
		}
	}
	return out
}

// VirtualJoystick returns the stick offset normalized to [-1, 1] per
// axis, and whether a touch is driving it. Inactive sticks read (0, 0).
func (h *Handler) VirtualJoystick() (x, y float64, active bool) {
	if !h.joy.active || h.opts.JoystickRadius <= 0 {
		return 0, 0, false
	}
	return (h.joy.x - h.joy.anchorX) / h.opts.JoystickRadius,
		(h.joy.y - h.joy.anchorY) / h.opts.JoystickRadius,
		true
}
