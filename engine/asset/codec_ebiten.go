package asset

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

const sampleRate = 44100

var audioContext *audio.Context

func sharedAudioContext() *audio.Context {
	if audioContext == nil {
		audioContext = audio.NewContext(sampleRate)
	}
	return audioContext
}

// ImageCodec decodes PNG data into an *ebiten.Image.
type ImageCodec struct{}

func (ImageCodec) Decode(req Request, data []byte) (any, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: decode %s: %w", req.Path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

func (ImageCodec) Dispose(payload any) {
	if img, ok := payload.(*ebiten.Image); ok {
		img.Deallocate()
	}
}

// SpritesheetCodec decodes a PNG and wraps it with tile dimensions.
type SpritesheetCodec struct{}

func (SpritesheetCodec) Decode(req Request, data []byte) (any, error) {
	if req.TileW <= 0 || req.TileH <= 0 {
		return nil, fmt.Errorf("asset: spritesheet %s needs tile_w/tile_h", req.Path)
	}
	payload, err := (ImageCodec{}).Decode(req, data)
	if err != nil {
		return nil, err
	}
	return &Spritesheet{Image: payload.(*ebiten.Image), TileW: req.TileW, TileH: req.TileH}, nil
}

func (SpritesheetCodec) Dispose(payload any) {
	if sheet, ok := payload.(*Spritesheet); ok {
		if img, ok := sheet.Image.(*ebiten.Image); ok {
			img.Deallocate()
		}
	}
}

// AudioCodec decodes WAV data into a ready audio player.
type AudioCodec struct{}

func (AudioCodec) Decode(req Request, data []byte) (any, error) {
	stream, err := wav.DecodeF32(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("asset: decode audio %s: %w", req.Path, err)
	}
	player, err := sharedAudioContext().NewPlayerF32(stream)
	if err != nil {
		return nil, fmt.Errorf("asset: audio player %s: %w", req.Path, err)
	}
	return player, nil
}

// Dispose stops playback before the record is dropped.
func (AudioCodec) Dispose(payload any) {
	if p, ok := payload.(*audio.Player); ok {
		p.Pause()
	}
}

// DefaultCodecs wires the full codec set, including the ebiten-backed
// ones.
func DefaultCodecs() map[Type]Codec {
	return map[Type]Codec{
		TypeImage:       ImageCodec{},
		TypeAudio:       AudioCodec{},
		TypeJSON:        JSONCodec{},
		TypeSpritesheet: SpritesheetCodec{},
		TypeFont:        FontCodec{},
	}
}
