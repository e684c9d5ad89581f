package view

import (
	"bytes"
	"strings"
	"testing"

	"github.com/jsphweid/fretdex/constants"
	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/note"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, s State) Instructions {
	t.Helper()
	in, err := Render(s, instrument.NewRegistry())
	require.Nil(t, err)
	return in
}

func cell(t *testing.T, in Instructions, line int, fret int) Cell {
	t.Helper()
	c, ok := in.Cell(line, fret)
	require.True(t, ok, "no cell at %d/%d", line, fret)
	return c
}

func TestDefaultState(t *testing.T) {
	assert := assert.New(t)
	in := render(t, DefaultState())

	assert.Equal("Guitar (Standard)", in.Instrument)
	assert.False(in.Grid)
	assert.Len(in.Rows, 6)
	assert.Len(in.Rows[0], 21)
	assert.Equal([]note.Note{note.C, note.D, note.E, note.F, note.G, note.A, note.B}, in.ScaleNotes)

	low := cell(t, in, 0, 0)
	assert.Equal(note.E, low.Note)
	assert.Equal([]string{MarkScaleNote}, low.Marks)
	assert.Equal("Major 3rd", low.Interval)

	assert.True(cell(t, in, 1, 3).Has(MarkScaleRoot))
	assert.False(cell(t, in, 1, 3).Has(MarkScaleNote))
	assert.Empty(cell(t, in, 0, 2).Marks)

	// other features are off by default
	for _, row := range in.Rows {
		for _, c := range row {
			assert.Zero(c.Degree)
			for _, m := range c.Marks {
				assert.Contains([]string{MarkScaleRoot, MarkScaleNote}, m)
			}
		}
	}
	assert.Nil(in.Voicings)
	assert.Nil(in.Patterns)
	assert.Nil(in.Frequency)
}

func TestRenderErrors(t *testing.T) {
	assert := assert.New(t)
	_, err := Render(DefaultState().WithInstrument("Theremin"), instrument.NewRegistry())
	assert.Equal(instrument.ErrUnknownInstrument, errors.Cause(err))

	for _, s := range []State{
		DefaultState().WithKey("H"),
		DefaultState().WithScale("Nonexistent"),
		DefaultState().WithChord("Xm7"),
		DefaultState().WithTriad(1, "sideways"),
		DefaultState().WithTriad(42, "connected"),
	} {
		in, err := Render(s, instrument.NewRegistry())
		require.Nil(t, err)
		for _, row := range in.Rows {
			for _, c := range row {
				assert.NotContains(c.Marks, MarkChordRoot)
				assert.NotContains(c.Marks, MarkTriadRoot)
			}
		}
		assert.Empty(in.Voicings)
	}

	in := render(t, DefaultState().WithKey("H"))
	assert.Empty(cell(t, in, 1, 3).Marks)
	assert.Empty(cell(t, in, 1, 3).Interval)
}

func TestChordMarks(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState().WithChord("Am")
	s.Features.Scale = false
	in := render(t, s)

	assert.Equal([]string{MarkChordRoot}, cell(t, in, 1, 0).Marks)
	assert.Equal([]string{MarkChordNote}, cell(t, in, 0, 0).Marks)
	assert.Equal([]string{MarkChordNote}, cell(t, in, 1, 3).Marks)
	assert.Empty(cell(t, in, 0, 3).Marks)
}

func TestDegreesAndIntervals(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState()
	s.Features.Degrees = true
	s.Features.Intervals = true
	in := render(t, s)

	assert.Equal(1, cell(t, in, 1, 3).Degree)
	assert.Equal(7, cell(t, in, 1, 2).Degree)
	assert.Equal(0, cell(t, in, 0, 2).Degree)

	assert.True(cell(t, in, 1, 3).Has("interval-root"))
	assert.True(cell(t, in, 0, 0).Has("interval-3rd"))
	assert.True(cell(t, in, 0, 2).Has("interval-tritone"))
}

func TestFrequencyMarks(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState()
	s.Features.Frequency = true
	in := render(t, s)

	require.NotNil(t, in.Frequency)
	assert.True(in.Frequency.Max >= in.Frequency.Min)
	for _, row := range in.Rows {
		for _, c := range row {
			inScale := c.Has(MarkScaleNote) || c.Has(MarkScaleRoot)
			levels := 0
			for _, m := range c.Marks {
				if strings.HasPrefix(m, "freq-") {
					levels++
				}
			}
			if inScale {
				assert.Equal(1, levels, "%s at %d/%d", c.Note, c.String, c.Fret)
			} else {
				assert.Zero(levels)
			}
		}
	}
}

func TestTriadMarks(t *testing.T) {
	assert := assert.New(t)
	in := render(t, DefaultState().WithTriad(1, "connected"))

	assert.Equal("C", in.Triad)
	require.NotEmpty(t, in.Voicings)
	for _, v := range in.Voicings {
		assert.True(cell(t, in, v.Root.String, v.Root.Fret).Has(MarkTriadRoot))
		assert.True(cell(t, in, v.Third.String, v.Third.Fret).Has(MarkTriadThird))
		assert.True(cell(t, in, v.Fifth.String, v.Fifth.Fret).Has(MarkTriadFifth))
	}

	in = render(t, DefaultState().WithTriad(2, "string-sets"))
	assert.Equal("Dm", in.Triad)
	for _, v := range in.Voicings {
		assert.Equal("string-sets", v.Strategy)
	}
}

func TestPatternMarks(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState()
	s.Features.Patterns = true
	in := render(t, s)

	require.NotEmpty(t, in.Patterns)
	first := in.Patterns[0]
	assert.True(cell(t, in, first[0].String, first[0].Fret).Has(MarkPatternRoot))
	for _, p := range first[1:] {
		assert.True(cell(t, in, p.String, p.Fret).Has(MarkPatternNote))
	}

	s.PatternIndex = len(in.Patterns)
	in = render(t, s)
	for _, row := range in.Rows {
		for _, c := range row {
			assert.False(c.Has(MarkPatternRoot))
		}
	}
}

func TestMarkers(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState().WithFrets(12)
	s.Features.Markers = true
	in := render(t, s)

	assert.Len(in.Markers, 5)
	for line := range in.Rows {
		assert.True(cell(t, in, line, 12).Has(MarkOctaveMarker))
		assert.True(cell(t, in, line, 5).Has(MarkFretMarker))
		assert.False(cell(t, in, line, 5).Has(MarkOctaveMarker))
		assert.False(cell(t, in, line, 4).Has(MarkFretMarker))
	}

	in = render(t, s.WithInstrument("Launchpad (Fourths)"))
	assert.True(in.Grid)
	assert.Empty(in.Markers)
	assert.Len(in.Rows, 8)
}

func TestCustomTuning(t *testing.T) {
	assert := assert.New(t)
	in := render(t, DefaultState().WithTuning([]string{"D", "A", "D", "G", "B", "E"}))
	assert.Equal(note.D, cell(t, in, 0, 0).Note)
	assert.Equal(note.A, cell(t, in, 1, 0).Note)
}

func TestStateIsImmutable(t *testing.T) {
	assert := assert.New(t)
	base := DefaultState()
	tuning := []string{"D", "A", "D"}
	changed := base.WithKey("G").WithScale("Dorian").WithTuning(tuning).WithChord("G7")
	tuning[0] = "E"

	assert.Equal(DefaultState(), base)
	assert.Equal("G", changed.Key)
	assert.Equal("Dorian", changed.Scale)
	assert.Equal([]string{"D", "A", "D"}, changed.Tuning)
	assert.True(changed.Features.Chords)
	assert.Nil(changed.WithInstrument("Mandolin").Tuning)
}

func TestNegativeFrets(t *testing.T) {
	in := render(t, DefaultState().WithFrets(-3))
	assert.Len(t, in.Rows[0], 1)
}

func TestFretsAreCapped(t *testing.T) {
	in := render(t, DefaultState().WithFrets(600))
	assert.Len(t, in.Rows[0], constants.MaxFrets+1)
}

func TestUnknownTriadStrategy(t *testing.T) {
	assert := assert.New(t)
	in := render(t, DefaultState().WithTriad(1, "drop-2"))
	assert.Empty(in.Triad)
	assert.Empty(in.Voicings)
	for _, row := range in.Rows {
		for _, c := range row {
			assert.False(c.Has(MarkTriadRoot))
		}
	}
}

func TestTerminal(t *testing.T) {
	assert := assert.New(t)
	s := DefaultState().WithFrets(5)
	s.Features.Markers = true
	in := render(t, s)

	var buf bytes.Buffer
	require.Nil(t, Terminal(in, &buf))
	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")

	// title, fret header, six strings
	require.Len(t, lines, 8)
	assert.Contains(lines[0], "Guitar (Standard) | C Major (Ionian)")
	assert.Contains(lines[1], "3*")
	assert.True(strings.HasPrefix(lines[2], "5  |"))
	assert.True(strings.HasPrefix(lines[7], "0  |E"))
	assert.Contains(lines[7], "-")
	assert.Contains(lines[6], "C")
}
