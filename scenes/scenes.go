// Package scenes holds the game's screens: title, the vault floor, and
// the help page.
package scenes

import "versusbank/engine/scene"

const (
	Title = "title"
	Play  = "play"
	Help  = "help"
)

// RegisterAll registers every scene and activates the title screen.
func RegisterAll(m *scene.Manager) error {
	m.Register(Title, NewTitleScene())
	m.Register(Play, NewPlayScene())
	m.Register(Help, NewHelpScene())
	return m.SwitchTo(Title, scene.TransitionNone)
}
