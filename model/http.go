package model

import "github.com/jsphweid/fretdex/note"

// LayoutRequest picks the board every POST body works on. Tuning, when set,
// replaces the instrument's tuning.
type LayoutRequest struct {
	Instrument string   `json:"instrument"`
	Tuning     []string `json:"tuning,omitempty"`
	Frets      int      `json:"frets,omitempty"`
}

type PositionsRequest struct {
	LayoutRequest
	Notes []string `json:"notes"`
}

type PositionsResponse struct {
	Positions []Position `json:"positions"`
}

type PatternsRequest struct {
	LayoutRequest
	Key                 string `json:"key"`
	Scale               string `json:"scale"`
	ThreeNotesPerString bool   `json:"three_notes_per_string,omitempty"`
}

type PatternsResponse struct {
	Patterns []Pattern `json:"patterns"`
}

type TriadsRequest struct {
	LayoutRequest
	Key    string `json:"key"`
	Scale  string `json:"scale"`
	Degree int    `json:"degree"`
	// empty means every strategy
	Strategy string `json:"strategy,omitempty"`
}

type TriadsResponse struct {
	Triad    string               `json:"triad"`
	Voicings map[string][]Voicing `json:"voicings"`
}

type ScaleResponse struct {
	Key       string      `json:"key,omitempty"`
	Scale     string      `json:"scale"`
	Notes     []note.Note `json:"notes,omitempty"`
	Intervals []int       `json:"intervals"`
}

type CircleResponse struct {
	Fifths  []note.Note `json:"fifths"`
	Fourths []note.Note `json:"fourths"`
}

type ChordResponse struct {
	Symbol  string      `json:"symbol"`
	Root    note.Note   `json:"root"`
	Quality string      `json:"quality"`
	Notes   []note.Note `json:"notes"`
}

type DiatonicChord struct {
	Degree int         `json:"degree"`
	Name   string      `json:"name"`
	Notes  []note.Note `json:"notes"`
}

type DiatonicResponse struct {
	Key      string          `json:"key"`
	Scale    string          `json:"scale"`
	Triads   []DiatonicChord `json:"triads"`
	Sevenths []DiatonicChord `json:"sevenths"`
}

type InstrumentResponse struct {
	Name        string   `json:"name"`
	Tuning      []string `json:"tuning,omitempty"`
	Description string   `json:"description,omitempty"`
	Custom      bool     `json:"custom,omitempty"`
	Grid        bool     `json:"grid,omitempty"`
	Rows        int      `json:"rows,omitempty"`
	Cols        int      `json:"cols,omitempty"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
