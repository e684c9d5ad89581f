package view

import (
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/triad"
)

type Features struct {
	Scale     bool `json:"scale"`
	Chords    bool `json:"chords"`
	Intervals bool `json:"intervals"`
	Patterns  bool `json:"patterns"`
	Frequency bool `json:"frequency"`
	Degrees   bool `json:"degrees"`
	Triads    bool `json:"triads"`
	Markers   bool `json:"markers"`
}

// State is everything a render depends on. It is a value; the With methods
// return modified copies.
type State struct {
	Instrument string `json:"instrument"`
	// overrides the instrument's tuning when set
	Tuning        []string `json:"tuning,omitempty"`
	Key           string   `json:"key"`
	Scale         string   `json:"scale"`
	Frets         int      `json:"frets"`
	Chord         string   `json:"chord,omitempty"`
	TriadDegree   int      `json:"triad_degree,omitempty"`
	TriadStrategy string   `json:"triad_strategy,omitempty"`
	PatternIndex  int      `json:"pattern_index,omitempty"`
	Features      Features `json:"features"`
}

func DefaultState() State {
	return State{
		Instrument:    constants.DefaultInstrument,
		Key:           "C",
		Scale:         "Major (Ionian)",
		Frets:         constants.DefaultFrets,
		TriadStrategy: string(triad.Connected),
		Features:      Features{Scale: true},
	}
}

func (s State) WithInstrument(name string) State {
	s.Instrument = name
	s.Tuning = nil
	return s
}

func (s State) WithTuning(names []string) State {
	s.Tuning = append([]string(nil), names...)
	return s
}

func (s State) WithKey(key string) State {
	s.Key = key
	return s
}

func (s State) WithScale(name string) State {
	s.Scale = name
	return s
}

func (s State) WithFrets(frets int) State {
	s.Frets = frets
	return s
}

func (s State) WithChord(symbol string) State {
	s.Chord = symbol
	s.Features.Chords = symbol != ""
	return s
}

func (s State) WithTriad(degree int, strategy string) State {
	s.TriadDegree = degree
	s.TriadStrategy = strategy
	s.Features.Triads = degree > 0
	return s
}

func (s State) WithFeatures(f Features) State {
	s.Features = f
	return s
}
