package scene

import "versusbank/engine/render"

// TransitionType selects the visual used while switching scenes.
type TransitionType int

const (
	TransitionNone TransitionType = iota
	TransitionFade
	TransitionSlideLeft
	TransitionSlideRight
	TransitionSlideUp
	TransitionSlideDown
)

// DefaultDuration is the transition length in milliseconds.
const DefaultDuration = 500.0

// transition tracks one in-progress scene switch. Progress is driven
// purely by elapsed time, sampled once per frame; there is no easing.
type transition struct {
	typ      TransitionType
	from, to string
	elapsed  float64
	duration float64
}

func (t *transition) progress() float64 {
	if t.duration <= 0 {
		return 1
	}
	p := t.elapsed / t.duration
	if p > 1 {
		p = 1
	}
	return p
}

// render composites the outgoing and incoming scenes for the current
// progress value. Transitions are presentation-only: neither scene's
// Update runs while one is active.
func (t *transition) render(r *render.Renderer, from, to Scene) {
	p := t.progress()
	w, h := r.Size()
	fw, fh := float64(w), float64(h)

	switch t.typ {
	case TransitionFade:
		if from != nil {
			r.Push()
			r.SetAlpha(1 - p)
			from.Render(r)
			r.Pop()
		}
		r.Push()
		r.SetAlpha(p)
		to.Render(r)
		r.Pop()
	case TransitionSlideLeft:
		t.slide(r, from, to, -p*fw, 0, fw*(1-p), 0)
	case TransitionSlideRight:
		t.slide(r, from, to, p*fw, 0, -fw*(1-p), 0)
	case TransitionSlideUp:
		t.slide(r, from, to, 0, -p*fh, 0, fh*(1-p))
	case TransitionSlideDown:
		t.slide(r, from, to, 0, p*fh, 0, -fh*(1-p))
	default:
		to.Render(r)
	}
}

func (t *transition) slide(r *render.Renderer, from, to Scene, fx, fy, tx, ty float64) {
	if from != nil {
		r.Push()
		r.Translate(fx, fy)
		from.Render(r)
		r.Pop()
	}
	r.Push()
	r.Translate(tx, ty)
	to.Render(r)
	r.Pop()
}
