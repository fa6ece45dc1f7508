// Package config loads the game configuration from yaml, starting from
// embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"versusbank/engine/asset"
	"versusbank/engine/input"
)

//go:embed default.yaml
var defaultYAML []byte

type Window struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type Game struct {
	BaseWidth  int     `yaml:"base_width"`
	BaseHeight int     `yaml:"base_height"`
	StepMs     float64 `yaml:"step_ms"`
	MaxDeltaMs float64 `yaml:"max_delta_ms"`
}

type Input struct {
	JoystickRadius       float64 `yaml:"joystick_radius"`
	TapMaxMs             int     `yaml:"tap_max_ms"`
	TapMaxDistance       float64 `yaml:"tap_max_distance"`
	SwipeMinDistance     float64 `yaml:"swipe_min_distance"`
	LongPressMs          int     `yaml:"long_press_ms"`
	LongPressMaxDistance float64 `yaml:"long_press_max_distance"`
}

// Options converts the yaml values into input handler options.
func (i Input) Options() input.Options {
	return input.Options{
		JoystickRadius:       i.JoystickRadius,
		TapMaxDuration:       time.Duration(i.TapMaxMs) * time.Millisecond,
		TapMaxDistance:       i.TapMaxDistance,
		SwipeMinDistance:     i.SwipeMinDistance,
		LongPressDelay:       time.Duration(i.LongPressMs) * time.Millisecond,
		LongPressMaxDistance: i.LongPressMaxDistance,
	}
}

type Scene struct {
	TransitionMs float64 `yaml:"transition_ms"`
}

type Config struct {
	Window Window          `yaml:"window"`
	Game   Game            `yaml:"game"`
	Input  Input           `yaml:"input"`
	Scene  Scene           `yaml:"scene"`
	Assets []asset.Request `yaml:"assets"`
	Debug  bool            `yaml:"debug"`
}

// Default returns the embedded default configuration.
func Default() Config {
	var c Config
	if err := yaml.Unmarshal(defaultYAML, &c); err != nil {
		panic(fmt.Sprintf("config: embedded defaults: %v", err))
	}
	return c
}

// Load reads a yaml config file over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	c := Default()
	if path == "" {
		return c, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return c, nil
		}
		return c, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &c); err != nil {
		return c, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	return c, nil
}
