package midi

import (
	"io"

	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/model"
	"github.com/pkg/errors"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	channel  = 0
	velocity = 100
	tempo    = 90
)

var clock = smf.MetricTicks(96)

func newTrack() smf.Track {
	var tr smf.Track
	tr.Add(0, smf.MetaMeter(4, 4))
	tr.Add(0, smf.MetaTempo(tempo))
	return tr
}

func write(w io.Writer, tr smf.Track) error {
	s := smf.New()
	s.TimeFormat = clock
	if err := s.Add(tr); err != nil {
		return errors.Wrap(err, "could not add track")
	}
	_, err := s.WriteTo(w)
	return err
}

func keys(layout instrument.Layout, positions []model.Position) ([]uint8, error) {
	res := make([]uint8, 0, len(positions))
	for _, p := range positions {
		k, err := Number(layout, p)
		if err != nil {
			return nil, err
		}
		res = append(res, k)
	}
	return res, nil
}

// WriteVoicings writes each voicing as a half-note block chord.
func WriteVoicings(w io.Writer, voicings []model.Voicing, layout instrument.Layout) error {
	tr := newTrack()
	for _, v := range voicings {
		ks, err := keys(layout, v.Positions())
		if err != nil {
			return err
		}
		for _, k := range ks {
			tr.Add(0, midi.NoteOn(channel, k, velocity))
		}
		for i, k := range ks {
			var delta uint32
			if i == 0 {
				delta = clock.Ticks4th() * 2
			}
			tr.Add(delta, midi.NoteOff(channel, k))
		}
	}
	tr.Close(0)
	return write(w, tr)
}

// WritePattern plays the pattern as a run of eighth notes, root first.
func WritePattern(w io.Writer, pattern model.Pattern, layout instrument.Layout) error {
	ks, err := keys(layout, pattern)
	if err != nil {
		return err
	}
	tr := newTrack()
	for _, k := range ks {
		tr.Add(0, midi.NoteOn(channel, k, velocity))
		tr.Add(clock.Ticks8th(), midi.NoteOff(channel, k))
	}
	tr.Close(0)
	return write(w, tr)
}
