package chord

import (
	"regexp"

	"github.com/jsphweid/fretdex/interval"
	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownQuality = errors.New("unknown chord quality")

type Quality struct {
	Symbol string
	Name   string
	// offsets above 11 are compound intervals (9ths, 11ths, 13ths)
	Intervals []int
}

var qualities = []Quality{
	{"", "Major", []int{0, 4, 7}},
	{"m", "Minor", []int{0, 3, 7}},
	{"dim", "Diminished", []int{0, 3, 6}},
	{"aug", "Augmented", []int{0, 4, 8}},
	{"sus2", "Suspended 2nd", []int{0, 2, 7}},
	{"sus4", "Suspended 4th", []int{0, 5, 7}},

	{"7", "Dominant 7th", []int{0, 4, 7, 10}},
	{"maj7", "Major 7th", []int{0, 4, 7, 11}},
	{"m7", "Minor 7th", []int{0, 3, 7, 10}},
	{"dim7", "Diminished 7th", []int{0, 3, 6, 9}},
	{"m7b5", "Half-diminished 7th", []int{0, 3, 6, 10}},
	{"aug7", "Augmented 7th", []int{0, 4, 8, 10}},
	{"7sus4", "7th suspended 4th", []int{0, 5, 7, 10}},

	{"9", "Dominant 9th", []int{0, 4, 7, 10, 14}},
	{"maj9", "Major 9th", []int{0, 4, 7, 11, 14}},
	{"m9", "Minor 9th", []int{0, 3, 7, 10, 14}},
	{"11", "Dominant 11th", []int{0, 4, 7, 10, 14, 17}},
	{"13", "Dominant 13th", []int{0, 4, 7, 10, 14, 21}},

	{"add9", "Add 9th", []int{0, 4, 7, 14}},
	{"6", "6th", []int{0, 4, 7, 9}},
	{"m6", "Minor 6th", []int{0, 3, 7, 9}},
	{"6/9", "6/9", []int{0, 4, 7, 9, 14}},

	{"7b5", "7th flat 5", []int{0, 4, 6, 10}},
	{"7#5", "7th sharp 5", []int{0, 4, 8, 10}},
	{"7b9", "7th flat 9", []int{0, 4, 7, 10, 13}},
	{"7#9", "7th sharp 9", []int{0, 4, 7, 10, 15}},
	{"7#11", "7th sharp 11", []int{0, 4, 7, 10, 18}},
}

var rootPattern = regexp.MustCompile(`^[A-G]#?`)

func find(symbol string) (Quality, bool) {
	for _, q := range qualities {
		if q.Symbol == symbol {
			return q, true
		}
	}
	return Quality{}, false
}

func Qualities() []Quality {
	return append([]Quality(nil), qualities...)
}

func Lookup(root note.Note, quality string) ([]note.Note, error) {
	if !root.Valid() {
		return nil, errors.Wrapf(note.ErrUnknownNote, "root %v", int(root))
	}
	q, ok := find(quality)
	if !ok {
		return nil, errors.Wrapf(ErrUnknownQuality, "%q", quality)
	}
	res := make([]note.Note, 0, len(q.Intervals))
	for _, i := range q.Intervals {
		res = append(res, note.Transpose(root, i))
	}
	return res, nil
}

func Notes(root note.Note, quality string) []note.Note {
	res, err := Lookup(root, quality)
	if err != nil {
		return nil
	}
	return res
}

// Parse splits a symbol like "F#maj9" into its root and quality.
func Parse(symbol string) (note.Note, string, error) {
	rootName := rootPattern.FindString(symbol)
	if rootName == "" {
		return note.None, "", errors.Wrapf(note.ErrUnknownNote, "no root in %q", symbol)
	}
	root, err := note.Parse(rootName)
	if err != nil {
		return note.None, "", err
	}
	quality := symbol[len(rootName):]
	if _, ok := find(quality); !ok {
		return root, quality, errors.Wrapf(ErrUnknownQuality, "%q in %q", quality, symbol)
	}
	return root, quality, nil
}

func Name(root note.Note, quality string) string {
	return root.String() + quality
}

func pitchClasses(intervals []int) []int {
	var res []int
	for _, i := range intervals {
		pc := i % 12
		if !slices.Contains(res, pc) {
			res = append(res, pc)
		}
	}
	return res
}

func sameSet(a []int, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for _, v := range a {
		if !slices.Contains(b, v) {
			return false
		}
	}
	return true
}

// Identify names the quality of notes, taking notes[0] as the root. The
// first matching table entry wins.
func Identify(notes []note.Note) (string, bool) {
	if len(notes) == 0 || !notes[0].Valid() {
		return "", false
	}
	var rel []int
	for _, n := range notes {
		if !n.Valid() {
			return "", false
		}
		rel = append(rel, interval.Between(notes[0], n))
	}
	rel = pitchClasses(rel)
	for _, q := range qualities {
		if sameSet(rel, pitchClasses(q.Intervals)) {
			return q.Symbol, true
		}
	}
	return "", false
}
