package scenes

import (
	"math"
	"testing"

	"versusbank/assets"
)

func compileEmbedded(t *testing.T) *WaveScript {
	t.Helper()
	src, err := assets.Load("waves.tengo")
	if err != nil {
		t.Fatalf("load waves.tengo: %v", err)
	}
	ws, err := CompileWaveScript(src)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	return ws
}

func TestWaveScriptProgression(t *testing.T) {
	ws := compileEmbedded(t)

	tests := []struct {
		name string
		wave int
		want Wave
	}{
		{
			name: "first wave",
			wave: 0,
			want: Wave{IntervalMs: 900, Speed: 45, Value: 1, Coins: 6},
		},
		{
			name: "gold rush doubles value and tightens interval",
			wave: 4,
			want: Wave{IntervalMs: 372, Speed: 81, Value: 4, Coins: 14},
		},
		{
			name: "interval clamps at floor",
			wave: 10,
			want: Wave{IntervalMs: 280, Speed: 135, Value: 4, Coins: 26},
		},
		{
			name: "speed clamps at ceiling",
			wave: 20,
			want: Wave{IntervalMs: 280, Speed: 170, Value: 7, Coins: 46},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ws.Wave(tt.wave)
			if err != nil {
				t.Fatalf("Wave(%d): %v", tt.wave, err)
			}
			if math.Abs(got.IntervalMs-tt.want.IntervalMs) > 1e-9 {
				t.Errorf("interval = %v, want %v", got.IntervalMs, tt.want.IntervalMs)
			}
			if math.Abs(got.Speed-tt.want.Speed) > 1e-9 {
				t.Errorf("speed = %v, want %v", got.Speed, tt.want.Speed)
			}
			if got.Value != tt.want.Value {
				t.Errorf("value = %d, want %d", got.Value, tt.want.Value)
			}
			if got.Coins != tt.want.Coins {
				t.Errorf("coins = %d, want %d", got.Coins, tt.want.Coins)
			}
		})
	}
}

func TestWaveScriptEvaluationsAreIndependent(t *testing.T) {
	ws := compileEmbedded(t)
	first, err := ws.Wave(0)
	if err != nil {
		t.Fatalf("Wave(0): %v", err)
	}
	if _, err := ws.Wave(7); err != nil {
		t.Fatalf("Wave(7): %v", err)
	}
	again, err := ws.Wave(0)
	if err != nil {
		t.Fatalf("Wave(0) again: %v", err)
	}
	if again != first {
		t.Errorf("re-evaluating wave 0 changed result: %+v vs %+v", again, first)
	}
}

func TestWaveScriptRejectsMissingOutputs(t *testing.T) {
	ws, err := CompileWaveScript([]byte(`interval := 500.0`))
	if err != nil {
		t.Fatalf("compile: %v", err)
	}
	if _, err := ws.Wave(0); err == nil {
		t.Error("expected error for script without coins/value outputs")
	}
}

func TestWaveScriptCompileError(t *testing.T) {
	if _, err := CompileWaveScript([]byte(`interval := wave +`)); err == nil {
		t.Error("expected compile error for broken script")
	}
}
