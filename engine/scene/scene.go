// Package scene manages named game scenes with transition effects
// between them.
package scene

import (
	"versusbank/engine/asset"
	"versusbank/engine/input"
	"versusbank/engine/render"
)

// Context is handed to scenes at Init and carries everything a scene may
// talk to.
type Context struct {
	Assets *asset.Manager
	Input  *input.Handler
	Scenes *Manager
	Width  int
	Height int
}

// Scene is one self-contained game screen. Init runs lazily, once per
// registration, before the scene's first activation.
type Scene interface {
	Init(ctx *Context) error
	Update(dt float64)
	Render(r *render.Renderer)
	Destroy()
}

// Resizer is implemented by scenes that care about canvas size changes.
type Resizer interface {
	Resize(w, h int)
}

// UnsavedProgress is implemented by scenes that may hold progress the
// player would lose on close.
type UnsavedProgress interface {
	HasUnsavedProgress() bool
}
