package model

import "github.com/jsphweid/fretdex/note"

// Position is a cell on a layout. On grids String is the row and Fret the
// column.
type Position struct {
	String int       `json:"string" yaml:"string"`
	Fret   int       `json:"fret" yaml:"fret"`
	Note   note.Note `json:"note" yaml:"note"`
}

// Pattern is an ordered scale shape, root first.
type Pattern = []Position

type Voicing struct {
	Root     Position `json:"root"`
	Third    Position `json:"third"`
	Fifth    Position `json:"fifth"`
	Strategy string   `json:"strategy"`
	Span     int      `json:"span,omitempty"`
	Strings  []int    `json:"strings,omitempty"`
}

func (v Voicing) Positions() []Position {
	return []Position{v.Root, v.Third, v.Fifth}
}

type Diad struct {
	Lower Position `json:"lower"`
	Upper Position `json:"upper"`
}
