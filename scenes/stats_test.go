package scenes

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStatsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")

	var s Stats
	if !s.record(12, 3, 10) {
		t.Error("first run should be a new best")
	}
	s.save(path)

	got := loadStats(path)
	want := Stats{BestScore: 12, BestWave: 3, TotalCoins: 10}
	if got != want {
		t.Errorf("loadStats = %+v, want %+v", got, want)
	}
}

func TestStatsRecord(t *testing.T) {
	s := Stats{BestScore: 20, BestWave: 5, TotalCoins: 40}

	if s.record(15, 2, 8) {
		t.Error("lower score should not be a new best")
	}
	if s.BestScore != 20 || s.BestWave != 5 {
		t.Errorf("bests changed on a worse run: %+v", s)
	}
	if s.TotalCoins != 48 {
		t.Errorf("TotalCoins = %d, want 48", s.TotalCoins)
	}

	if !s.record(25, 7, 12) {
		t.Error("higher score should be a new best")
	}
	if s.BestScore != 25 || s.BestWave != 7 {
		t.Errorf("bests not updated: %+v", s)
	}
}

func TestStatsMissingFileYieldsZero(t *testing.T) {
	got := loadStats(filepath.Join(t.TempDir(), "nope.json"))
	if got != (Stats{}) {
		t.Errorf("missing file should load zero stats, got %+v", got)
	}
}

func TestStatsCorruptFileYieldsZero(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stats.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatal(err)
	}
	if got := loadStats(path); got != (Stats{}) {
		t.Errorf("corrupt file should load zero stats, got %+v", got)
	}
}
