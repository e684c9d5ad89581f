package triad

import (
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/note"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/util"
)

// Diads pairs every position of lower with positions of upper one or two
// strings away and at most five frets apart.
func Diads(lower note.Note, upper note.Note, layout instrument.Layout) []model.Diad {
	var res []model.Diad
	uppers := position.Find(upper, layout)
	for _, a := range position.Find(lower, layout) {
		for _, b := range uppers {
			ds := util.Abs(a.String - b.String)
			if ds >= 1 && ds <= 2 && util.Abs(a.Fret-b.Fret) <= 5 {
				res = append(res, model.Diad{Lower: a, Upper: b})
			}
		}
	}
	return res
}
