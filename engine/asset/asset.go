// Package asset loads and caches game assets keyed by id. Decoding is
// delegated to per-type codecs; concurrent requests for the same id are
// coalesced through an in-flight table.
package asset

// Type is the asset kind, which selects the codec.
type Type string

const (
	TypeImage       Type = "image"
	TypeAudio       Type = "audio"
	TypeJSON        Type = "json"
	TypeSpritesheet Type = "spritesheet"
	TypeFont        Type = "font"
)

// Request describes one asset to load.
type Request struct {
	ID   string `yaml:"id"`
	Type Type   `yaml:"type"`
	Path string `yaml:"path"`
	// Tile dimensions, spritesheets only.
	TileW int `yaml:"tile_w,omitempty"`
	TileH int `yaml:"tile_h,omitempty"`
}

// Asset is one loaded (or failed) record.
type Asset struct {
	ID      string
	Type    Type
	Path    string
	Loaded  bool
	Err     error
	Payload any
}

// Progress is a snapshot of batch loading state.
type Progress struct {
	Total      int
	Loaded     int
	Failed     int
	Percentage float64
}
