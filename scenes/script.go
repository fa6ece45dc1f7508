package scenes

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
)

// Wave holds the drop parameters for one wave of coins.
type Wave struct {
	IntervalMs float64
	Speed      float64
	Value      int
	Coins      int
}

// WaveScript evaluates the embedded tengo pacing script. The script is
// compiled once; each wave runs against a clone so state never bleeds
// between evaluations.
type WaveScript struct {
	compiled *tengo.Compiled
}

func CompileWaveScript(src []byte) (*WaveScript, error) {
	s := tengo.NewScript(src)
	s.SetImports(stdlib.GetModuleMap("math"))
	if err := s.Add("wave", 0); err != nil {
		return nil, fmt.Errorf("scenes: script var: %w", err)
	}
	compiled, err := s.Compile()
	if err != nil {
		return nil, fmt.Errorf("scenes: compile wave script: %w", err)
	}
	return &WaveScript{compiled: compiled}, nil
}

// Wave evaluates the script for the 0-based wave number.
func (ws *WaveScript) Wave(n int) (Wave, error) {
	c := ws.compiled.Clone()
	if err := c.Set("wave", n); err != nil {
		return Wave{}, fmt.Errorf("scenes: set wave: %w", err)
	}
	if err := c.Run(); err != nil {
		return Wave{}, fmt.Errorf("scenes: run wave script: %w", err)
	}

	w := Wave{
		IntervalMs: c.Get("interval").Float(),
		Speed:      c.Get("speed").Float(),
		Value:      c.Get("value").Int(),
		Coins:      c.Get("coins").Int(),
	}
	if w.IntervalMs <= 0 || w.Coins <= 0 || w.Value <= 0 {
		return Wave{}, fmt.Errorf("scenes: wave %d: script produced %+v", n, w)
	}
	return w, nil
}
