package position

import (
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/util"
)

// Frequency counts how many cells sound each of notes. Every note in notes
// has an entry, even if it never appears.
func Frequency(notes []note.Note, layout instrument.Layout) map[note.Note]int {
	res := make(map[note.Note]int, len(notes))
	for _, n := range notes {
		res[n] = 0
	}
	for _, p := range FindAll(notes, layout) {
		res[p.Note]++
	}
	return res
}

type FrequencyStats struct {
	Max int     `json:"max"`
	Min int     `json:"min"`
	Avg float64 `json:"avg"`
}

func Stats(freq map[note.Note]int) FrequencyStats {
	if len(freq) == 0 {
		return FrequencyStats{}
	}
	counts := make([]int, 0, len(freq))
	for _, n := range util.GetKeys(freq) {
		counts = append(counts, freq[n])
	}
	s := FrequencyStats{Max: counts[0], Min: counts[0]}
	for _, count := range counts[1:] {
		s.Max = util.Max(s.Max, count)
		s.Min = util.Min(s.Min, count)
	}
	s.Avg = float64(util.Sum(counts)) / float64(len(counts))
	return s
}

type Level string

const (
	High   Level = "high"
	Medium Level = "medium"
	Low    Level = "low"
)

// LevelOf buckets count relative to max: 70% and up is high, 40% and up
// medium.
func LevelOf(count int, max int) Level {
	if max <= 0 {
		return Low
	}
	intensity := float64(count) / float64(max)
	switch {
	case intensity >= 0.7:
		return High
	case intensity >= 0.4:
		return Medium
	}
	return Low
}
