package triad

import (
	"github.com/jsphweid/fretdex/chord"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/jsphweid/fretdex/position"
	"github.com/jsphweid/fretdex/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

var ErrUnknownStrategy = errors.New("unknown voicing strategy")

type Strategy string

const (
	Connected  Strategy = "connected"
	Close      Strategy = "close-voicing"
	Spread     Strategy = "spread"
	StringSets Strategy = "string-sets"
)

var strategies = []Strategy{Connected, Close, Spread, StringSets}

func Strategies() []Strategy {
	return slices.Clone(strategies)
}

func ParseStrategy(name string) (Strategy, error) {
	for _, s := range strategies {
		if string(s) == name {
			return s, nil
		}
	}
	return "", errors.Wrapf(ErrUnknownStrategy, "%q", name)
}

type candidates struct {
	roots  []model.Position
	thirds []model.Position
	fifths []model.Position
}

func gather(t chord.Triad, layout instrument.Layout) candidates {
	return candidates{
		roots:  position.Find(t.Root, layout),
		thirds: position.Find(t.Third, layout),
		fifths: position.Find(t.Fifth, layout),
	}
}

func near(a model.Position, b model.Position, strings int, frets int) bool {
	return util.Abs(a.String-b.String) <= strings && util.Abs(a.Fret-b.Fret) <= frets
}

func fretSpan(root, third, fifth model.Position) int {
	return util.Span(root.Fret, third.Fret, fifth.Fret)
}

func distinctStrings(root, third, fifth model.Position) bool {
	return root.String != third.String && root.String != fifth.String && third.String != fifth.String
}

func voicing(s Strategy, root, third, fifth model.Position) model.Voicing {
	return model.Voicing{Root: root, Third: third, Fifth: fifth, Strategy: string(s)}
}

func connected(c candidates) []model.Voicing {
	var res []model.Voicing
	for _, root := range c.roots {
		for _, third := range c.thirds {
			if !near(third, root, 2, 4) {
				continue
			}
			for _, fifth := range c.fifths {
				if !near(fifth, third, 2, 4) {
					continue
				}
				strings := []int{root.String, third.String, fifth.String}
				slices.Sort(strings)
				if strings[1]-strings[0] <= 2 && strings[2]-strings[1] <= 2 {
					res = append(res, voicing(Connected, root, third, fifth))
				}
			}
		}
	}
	return res
}

func closeVoicings(c candidates) []model.Voicing {
	var res []model.Voicing
	for _, root := range c.roots {
		for _, third := range c.thirds {
			if util.Abs(third.Fret-root.Fret) > 3 {
				continue
			}
			for _, fifth := range c.fifths {
				if util.Abs(fifth.Fret-root.Fret) > 3 {
					continue
				}
				if span := fretSpan(root, third, fifth); span <= 4 {
					v := voicing(Close, root, third, fifth)
					v.Span = span
					res = append(res, v)
				}
			}
		}
	}
	return res
}

func spread(c candidates) []model.Voicing {
	var res []model.Voicing
	for _, root := range c.roots {
		for _, third := range c.thirds {
			for _, fifth := range c.fifths {
				if !distinctStrings(root, third, fifth) {
					continue
				}
				if span := fretSpan(root, third, fifth); span >= 3 && span <= 8 {
					v := voicing(Spread, root, third, fifth)
					v.Span = span
					res = append(res, v)
				}
			}
		}
	}
	return res
}

func stringSets(c candidates, sets [][]int) []model.Voicing {
	var res []model.Voicing
	for _, set := range sets {
		for _, root := range c.roots {
			if !slices.Contains(set, root.String) {
				continue
			}
			for _, third := range c.thirds {
				if !slices.Contains(set, third.String) || third.String == root.String {
					continue
				}
				for _, fifth := range c.fifths {
					if !slices.Contains(set, fifth.String) || !distinctStrings(root, third, fifth) {
						continue
					}
					v := voicing(StringSets, root, third, fifth)
					v.Strings = slices.Clone(set)
					res = append(res, v)
				}
			}
		}
	}
	return res
}

func search(s Strategy, c candidates, layout instrument.Layout) []model.Voicing {
	switch s {
	case Connected:
		return connected(c)
	case Close:
		return closeVoicings(c)
	case Spread:
		return spread(c)
	case StringSets:
		return stringSets(c, StringSetsFor(layout))
	}
	return nil
}

// Find returns every voicing of t on layout that the strategy accepts.
func Find(t chord.Triad, layout instrument.Layout, s Strategy) ([]model.Voicing, error) {
	if !slices.Contains(strategies, s) {
		return nil, errors.Wrapf(ErrUnknownStrategy, "%q", s)
	}
	return search(s, gather(t, layout), layout), nil
}

func All(t chord.Triad, layout instrument.Layout) map[Strategy][]model.Voicing {
	c := gather(t, layout)
	res := make(map[Strategy][]model.Voicing, len(strategies))
	for _, s := range strategies {
		res[s] = search(s, c, layout)
	}
	return res
}
