package view

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/pattern"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/scale"
	"github.com/jsphweid/fretdex/triad"
	"golang.org/x/exp/slices"
)

const (
	MarkScaleRoot     = "scale-root"
	MarkScaleNote     = "scale-note"
	MarkChordRoot     = "chord-root"
	MarkChordNote     = "chord-note"
	MarkPatternRoot   = "pattern-root"
	MarkPatternNote   = "pattern-note"
	MarkTriadRoot     = "triad-root"
	MarkTriadThird    = "triad-third"
	MarkTriadFifth    = "triad-fifth"
	MarkFretMarker    = "fret-marker"
	MarkOctaveMarker  = "fret-marker-octave"
	intervalMarkStart = "interval-"
	freqMarkStart     = "freq-"
)

type Cell struct {
	String   int       `json:"string"`
	Fret     int       `json:"fret"`
	Note     note.Note `json:"note"`
	Marks    []string  `json:"marks,omitempty"`
	Degree   int       `json:"degree,omitempty"`
	Interval string    `json:"interval,omitempty"`
}

func (c Cell) Has(mark string) bool {
	return slices.Contains(c.Marks, mark)
}

// Instructions is the rendered board: Rows[line][cell].
type Instructions struct {
	Instrument string                   `json:"instrument"`
	Grid       bool                     `json:"grid"`
	Key        string                   `json:"key"`
	Scale      string                   `json:"scale"`
	ScaleNotes []note.Note              `json:"scale_notes"`
	Rows       [][]Cell                 `json:"rows"`
	Markers    []instrument.Marker      `json:"markers,omitempty"`
	Triad      string                   `json:"triad,omitempty"`
	Voicings   []model.Voicing          `json:"voicings,omitempty"`
	Patterns   []model.Pattern          `json:"patterns,omitempty"`
	Frequency  *position.FrequencyStats `json:"frequency,omitempty"`
}

func (in Instructions) Cell(line int, cell int) (Cell, bool) {
	if line < 0 || line >= len(in.Rows) || cell < 0 || cell >= len(in.Rows[line]) {
		return Cell{}, false
	}
	return in.Rows[line][cell], true
}

func resolveLayout(s State, r *instrument.Registry) (instrument.Layout, error) {
	layout, err := r.Layout(s.Instrument, s.Frets)
	if err != nil {
		return nil, err
	}
	if fb, ok := layout.(instrument.Fretboard); ok && len(s.Tuning) > 0 {
		fb.Tuning = instrument.TuningFromNames(s.Tuning)
		return fb, nil
	}
	return layout, nil
}

// Render computes the marks for every cell of the state's layout. It has no
// side effects. Unknown keys, scales, chords and strategies leave their marks
// off; only an unknown instrument is an error.
func Render(s State, r *instrument.Registry) (Instructions, error) {
	if s.Frets < 0 {
		s.Frets = 0
	}
	if s.Frets > constants.MaxFrets {
		s.Frets = constants.MaxFrets
	}
	layout, err := resolveLayout(s, r)
	if err != nil {
		return Instructions{}, err
	}
	_, isGrid := layout.(instrument.Grid)

	key, keyErr := note.Parse(s.Key)
	scaleNotes := scale.NotesByName(s.Key, s.Scale)

	in := Instructions{
		Instrument: s.Instrument,
		Grid:       isGrid,
		Key:        s.Key,
		Scale:      s.Scale,
		ScaleNotes: scaleNotes,
		Rows:       make([][]Cell, layout.Lines()),
	}

	for line := range in.Rows {
		in.Rows[line] = make([]Cell, layout.Cells())
		for c := range in.Rows[line] {
			n, err := layout.NoteAt(line, c)
			if err != nil {
				n = note.None
			}
			cell := Cell{String: line, Fret: c, Note: n}
			if n.Valid() && keyErr == nil {
				cell.Interval = interval.Name(interval.Between(key, n))
			}
			in.Rows[line][c] = cell
		}
	}

	mark := func(p model.Position, m string) {
		if c, ok := in.Cell(p.String, p.Fret); ok && !c.Has(m) {
			in.Rows[p.String][p.Fret].Marks = append(c.Marks, m)
		}
	}
	each := func(f func(c Cell) (string, bool)) {
		for line := range in.Rows {
			for c := range in.Rows[line] {
				cell := in.Rows[line][c]
				if !cell.Note.Valid() {
					continue
				}
				if m, ok := f(cell); ok {
					mark(model.Position{String: line, Fret: c}, m)
				}
			}
		}
	}

	if s.Features.Scale && len(scaleNotes) > 0 {
		each(func(c Cell) (string, bool) {
			if c.Note == key {
				return MarkScaleRoot, true
			}
			return MarkScaleNote, slices.Contains(scaleNotes, c.Note)
		})
	}

	if s.Features.Degrees && len(scaleNotes) > 0 {
		for line := range in.Rows {
			for c := range in.Rows[line] {
				in.Rows[line][c].Degree = slices.Index(scaleNotes, in.Rows[line][c].Note) + 1
			}
		}
	}

	if s.Features.Intervals && keyErr == nil {
		each(func(c Cell) (string, bool) {
			return intervalMarkStart + interval.Class(interval.Between(key, c.Note)), true
		})
	}

	if s.Features.Chords && s.Chord != "" {
		if root, quality, err := chord.Parse(s.Chord); err == nil {
			chordNotes := chord.Notes(root, quality)
			each(func(c Cell) (string, bool) {
				if c.Note == root {
					return MarkChordRoot, true
				}
				return MarkChordNote, slices.Contains(chordNotes, c.Note)
			})
		}
	}

	if s.Features.Frequency && len(scaleNotes) > 0 {
		freq := position.Frequency(scaleNotes, layout)
		stats := position.Stats(freq)
		in.Frequency = &stats
		each(func(c Cell) (string, bool) {
			count, ok := freq[c.Note]
			if !ok || count == 0 {
				return "", false
			}
			return freqMarkStart + string(position.LevelOf(count, stats.Max)), true
		})
	}

	if s.Features.Patterns && len(scaleNotes) > 0 {
		in.Patterns = pattern.Shapes(scaleNotes, key, layout)
		if s.PatternIndex >= 0 && s.PatternIndex < len(in.Patterns) {
			for i, p := range in.Patterns[s.PatternIndex] {
				if i == 0 {
					mark(p, MarkPatternRoot)
				} else {
					mark(p, MarkPatternNote)
				}
			}
		}
	}

	if s.Features.Triads && s.TriadDegree > 0 && keyErr == nil {
		triads := chord.Triads(key, s.Scale)
		if s.TriadDegree <= len(triads) {
			t := triads[s.TriadDegree-1]
			voicings, err := triad.Find(t, layout, triad.Strategy(s.TriadStrategy))
			if err == nil {
				in.Triad = t.Name()
				in.Voicings = voicings
				for _, v := range voicings {
					mark(v.Root, MarkTriadRoot)
					mark(v.Third, MarkTriadThird)
					mark(v.Fifth, MarkTriadFifth)
				}
			}
		}
	}

	if s.Features.Markers && !isGrid {
		in.Markers = instrument.FretMarkers(s.Frets)
		for _, m := range in.Markers {
			for line := range in.Rows {
				mark(model.Position{String: line, Fret: m.Fret}, MarkFretMarker)
				if m.Octave {
					mark(model.Position{String: line, Fret: m.Fret}, MarkOctaveMarker)
				}
			}
		}
	}

	return in, nil
}
