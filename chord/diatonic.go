package chord

import (
	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/scale"
	"golang.org/x/exp/slices"
)

type TriadQuality int

const (
	Major TriadQuality = iota
	Minor
	Diminished
	Augmented
	Unclassified
)

var triadSuffixes = map[TriadQuality]string{
	Major:        "",
	Minor:        "m",
	Diminished:   "dim",
	Augmented:    "aug",
	Unclassified: "?",
}

var triadQualityNames = map[TriadQuality]string{
	Major:        "major",
	Minor:        "minor",
	Diminished:   "diminished",
	Augmented:    "augmented",
	Unclassified: "unclassified",
}

func (q TriadQuality) Suffix() string {
	return triadSuffixes[q]
}

func (q TriadQuality) String() string {
	if s, ok := triadQualityNames[q]; ok {
		return s
	}
	return triadQualityNames[Unclassified]
}

func ClassifyTriad(root note.Note, third note.Note, fifth note.Note) TriadQuality {
	t := interval.Between(root, third)
	f := interval.Between(root, fifth)
	switch {
	case t == 4 && f == 7:
		return Major
	case t == 3 && f == 7:
		return Minor
	case t == 3 && f == 6:
		return Diminished
	case t == 4 && f == 8:
		return Augmented
	}
	return Unclassified
}

type Triad struct {
	Root    note.Note
	Third   note.Note
	Fifth   note.Note
	Quality TriadQuality
	// 1-based position of Root in the scale
	Degree int
}

func (t Triad) Name() string {
	return t.Root.String() + t.Quality.Suffix()
}

func (t Triad) Notes() []note.Note {
	return []note.Note{t.Root, t.Third, t.Fifth}
}

type Seventh struct {
	Root    note.Note
	Third   note.Note
	Fifth   note.Note
	Seventh note.Note
	Quality string
	Degree  int
}

func (s Seventh) Name() string {
	return s.Root.String() + s.Quality
}

func (s Seventh) Notes() []note.Note {
	return []note.Note{s.Root, s.Third, s.Fifth, s.Seventh}
}

// Triads stacks alternate scale tones on every degree. Scales with fewer
// than three notes have none.
func Triads(root note.Note, scaleName string) []Triad {
	notes := scale.Notes(root, scaleName)
	n := len(notes)
	if n < 3 {
		return nil
	}
	res := make([]Triad, 0, n)
	for i, r := range notes {
		third := notes[(i+2)%n]
		fifth := notes[(i+4)%n]
		res = append(res, Triad{
			Root:    r,
			Third:   third,
			Fifth:   fifth,
			Quality: ClassifyTriad(r, third, fifth),
			Degree:  i + 1,
		})
	}
	return res
}

func Sevenths(root note.Note, scaleName string) []Seventh {
	notes := scale.Notes(root, scaleName)
	n := len(notes)
	if n < 3 {
		return nil
	}
	res := make([]Seventh, 0, n)
	for i, r := range notes {
		s := Seventh{
			Root:    r,
			Third:   notes[(i+2)%n],
			Fifth:   notes[(i+4)%n],
			Seventh: notes[(i+6)%n],
			Degree:  i + 1,
		}
		quality, ok := Identify(s.Notes())
		if !ok {
			quality = "?"
		}
		s.Quality = quality
		res = append(res, s)
	}
	return res
}

func Containing(n note.Note, triads []Triad) []Triad {
	var res []Triad
	for _, t := range triads {
		if slices.Contains(t.Notes(), n) {
			res = append(res, t)
		}
	}
	return res
}
