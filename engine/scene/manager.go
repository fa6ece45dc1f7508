package scene

import (
	"fmt"
	"log"

	"versusbank/engine/render"
)

type entry struct {
	scene       Scene
	initialized bool
	destroyed   bool
}

// destroy runs Destroy at most once per deactivation; SwitchTo clears
// the flag when the scene becomes live again.
func (e *entry) destroy() {
	if e.initialized && !e.destroyed {
		e.scene.Destroy()
		e.destroyed = true
	}
}

// Manager is a registry of named scenes with a single active scene and
// an optional in-progress transition.
type Manager struct {
	ctx      *Context
	scenes   map[string]*entry
	current  string
	trans    *transition
	Duration float64 // transition length in ms
}

func NewManager() *Manager {
	return &Manager{
		scenes:   map[string]*entry{},
		Duration: DefaultDuration,
	}
}

// SetContext wires the context handed to scenes at Init. The owning game
// calls this once after constructing all managers.
func (m *Manager) SetContext(ctx *Context) { m.ctx = ctx }

// Register adds a scene under a name. Re-registering a name replaces the
// previous scene after destroying it.
func (m *Manager) Register(name string, s Scene) {
	if name == m.current {
		panic(fmt.Sprintf("scene: re-registering active scene %q", name))
	}
	if old, ok := m.scenes[name]; ok {
		old.destroy()
	}
	m.scenes[name] = &entry{scene: s}
}

// Remove deletes a scene. Removing the active scene is a programming
// error and panics.
func (m *Manager) Remove(name string) {
	if name == m.current {
		panic(fmt.Sprintf("scene: removing active scene %q", name))
	}
	if m.trans != nil && (name == m.trans.from || name == m.trans.to) {
		panic(fmt.Sprintf("scene: removing scene %q mid-transition", name))
	}
	if e, ok := m.scenes[name]; ok {
		e.destroy()
		delete(m.scenes, name)
	}
}

// Current returns the active scene name, "" before the first switch.
func (m *Manager) Current() string { return m.current }

// CurrentScene returns the active scene, nil before the first switch.
func (m *Manager) CurrentScene() Scene {
	if e, ok := m.scenes[m.current]; ok {
		return e.scene
	}
	return nil
}

// Transitioning reports whether a switch is in progress.
func (m *Manager) Transitioning() bool { return m.trans != nil }

// Progress returns the current transition progress in [0, 1], 0 when
// idle.
func (m *Manager) Progress() float64 {
	if m.trans == nil {
		return 0
	}
	return m.trans.progress()
}

// SwitchTo starts a transition to the named scene. A switch during an
// active transition is rejected (logged, no-op), as is switching to the
// scene that is already current. The target is initialized exactly once
// per registration; an Init failure aborts the switch.
func (m *Manager) SwitchTo(name string, typ TransitionType) error {
	if m.trans != nil {
		log.Printf("scene: switch to %q ignored, transition in progress", name)
		return nil
	}
	if name == m.current {
		return nil
	}
	e, ok := m.scenes[name]
	if !ok {
		return fmt.Errorf("scene: unknown scene %q", name)
	}
	if !e.initialized {
		if err := e.scene.Init(m.ctx); err != nil {
			return fmt.Errorf("scene: init %q: %w", name, err)
		}
		e.initialized = true
	}
	e.destroyed = false

	if typ == TransitionNone || m.current == "" {
		m.finish(m.current, name)
		return nil
	}
	m.trans = &transition{typ: typ, from: m.current, to: name, duration: m.Duration}
	return nil
}

func (m *Manager) finish(from, to string) {
	if e, ok := m.scenes[from]; ok {
		e.destroy()
	}
	m.current = to
	m.trans = nil
}

// Update advances the active scene, or the transition when one is
// running. Scene updates are suspended for the whole transition window.
func (m *Manager) Update(dt float64) {
	if m.trans != nil {
		m.trans.elapsed += dt
		if m.trans.elapsed >= m.trans.duration {
			m.finish(m.trans.from, m.trans.to)
		}
		return
	}
	if e, ok := m.scenes[m.current]; ok {
		e.scene.Update(dt)
	}
}

// Render draws the active scene, or the transition composition.
func (m *Manager) Render(r *render.Renderer) {
	if m.trans != nil {
		var from Scene
		if e, ok := m.scenes[m.trans.from]; ok {
			from = e.scene
		}
		to := m.scenes[m.trans.to].scene
		m.trans.render(r, from, to)
		return
	}
	if e, ok := m.scenes[m.current]; ok {
		e.scene.Render(r)
	}
}

// Resize forwards the new canvas size to scenes that implement Resizer.
// During a transition both participants are notified.
func (m *Manager) Resize(w, h int) {
	if m.ctx != nil {
		m.ctx.Width, m.ctx.Height = w, h
	}
	notify := func(name string) {
		if e, ok := m.scenes[name]; ok && e.initialized {
			if rs, ok := e.scene.(Resizer); ok {
				rs.Resize(w, h)
			}
		}
	}
	if m.trans != nil {
		notify(m.trans.from)
		notify(m.trans.to)
		return
	}
	notify(m.current)
}

// HasUnsavedProgress asks the active scene whether closing now would
// lose progress.
func (m *Manager) HasUnsavedProgress() bool {
	if e, ok := m.scenes[m.current]; ok {
		if up, ok := e.scene.(UnsavedProgress); ok {
			return up.HasUnsavedProgress()
		}
	}
	return false
}

// Teardown destroys every initialized scene and clears the registry.
func (m *Manager) Teardown() {
	for _, e := range m.scenes {
		e.destroy()
	}
	m.scenes = map[string]*entry{}
	m.current = ""
	m.trans = nil
}
