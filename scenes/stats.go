package scenes

import (
	"encoding/json"
	"log"
	"os"
)

const statsFileName = "versusbank_stats.json"

// Stats is the small save file written next to the binary.
type Stats struct {
	BestScore  int `json:"best_score"`
	BestWave   int `json:"best_wave"`
	TotalCoins int `json:"total_coins"`
}

// loadStats reads the save file. A missing or unreadable file yields
// zeroed stats so a fresh install just works.
func loadStats(path string) Stats {
	var s Stats
	data, err := os.ReadFile(path)
	if err != nil {
		return s
	}
	if err := json.Unmarshal(data, &s); err != nil {
		log.Printf("stats: corrupt save file %s: %v", path, err)
		return Stats{}
	}
	return s
}

func (s Stats) save(path string) {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		log.Printf("stats: marshal: %v", err)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		log.Printf("stats: write %s: %v", path, err)
	}
}

// record folds one finished run into the stats and reports whether the
// run set a new best score.
func (s *Stats) record(score, wave, coins int) bool {
	s.TotalCoins += coins
	if wave > s.BestWave {
		s.BestWave = wave
	}
	if score > s.BestScore {
		s.BestScore = score
		return true
	}
	return false
}
