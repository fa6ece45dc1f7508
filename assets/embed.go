// Package assets embeds the game's bundled files: wave scripts and the
// content page shown by the help scene.
package assets

import "embed"

//go:embed *.tengo *.md
var FS embed.FS

// Load reads an embedded asset by assets-relative path.
func Load(path string) ([]byte, error) {
	return FS.ReadFile(path)
}
