package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorRoot    = lipgloss.Color("#E5484D")
	colorScale   = lipgloss.Color("#8BC34A")
	colorChord   = lipgloss.Color("#F5A524")
	colorPattern = lipgloss.Color("#3E63DD")
	colorThird   = lipgloss.Color("#8E4EC6")
	colorFifth   = lipgloss.Color("#12A594")
	colorMuted   = lipgloss.Color("#6B7280")
)

// markOrder decides which mark colors a cell when it carries several.
var markOrder = []string{
	MarkTriadRoot,
	MarkTriadThird,
	MarkTriadFifth,
	MarkPatternRoot,
	MarkChordRoot,
	MarkScaleRoot,
	MarkPatternNote,
	MarkChordNote,
	MarkScaleNote,
}

type palette struct {
	marks map[string]lipgloss.Style
	plain lipgloss.Style
	fret  lipgloss.Style
	nut   lipgloss.Style
}

func newPalette(r *lipgloss.Renderer) palette {
	cell := r.NewStyle().Width(4)
	return palette{
		marks: map[string]lipgloss.Style{
			MarkTriadRoot:   cell.Foreground(colorRoot).Bold(true).Underline(true),
			MarkTriadThird:  cell.Foreground(colorThird).Bold(true),
			MarkTriadFifth:  cell.Foreground(colorFifth).Bold(true),
			MarkPatternRoot: cell.Foreground(colorPattern).Bold(true).Underline(true),
			MarkChordRoot:   cell.Foreground(colorRoot).Bold(true),
			MarkScaleRoot:   cell.Foreground(colorRoot).Bold(true),
			MarkPatternNote: cell.Foreground(colorPattern),
			MarkChordNote:   cell.Foreground(colorChord),
			MarkScaleNote:   cell.Foreground(colorScale),
		},
		plain: cell.Foreground(colorMuted).Faint(true),
		fret:  cell.Foreground(colorMuted),
		nut:   r.NewStyle().Foreground(colorMuted),
	}
}

func (p palette) styleFor(c Cell) (lipgloss.Style, bool) {
	for _, m := range markOrder {
		if c.Has(m) {
			return p.marks[m], true
		}
	}
	return p.plain, false
}

func label(c Cell, marked bool) string {
	if !c.Note.Valid() {
		return "x"
	}
	if !marked {
		return "-"
	}
	if c.Degree > 0 {
		return fmt.Sprintf("%s%d", c.Note, c.Degree)
	}
	return c.Note.String()
}

// Terminal draws the instructions as text, highest line on top. Cells without
// a highlighting mark print as "-".
func Terminal(in Instructions, w io.Writer) error {
	p := newPalette(lipgloss.NewRenderer(w))

	var b strings.Builder
	fmt.Fprintf(&b, "%s | %s %s\n", in.Instrument, in.Key, in.Scale)
	if in.Triad != "" {
		fmt.Fprintf(&b, "triad %s (%d voicings)\n", in.Triad, len(in.Voicings))
	}

	if len(in.Rows) > 0 {
		header := []string{p.fret.Render("")}
		for c := range in.Rows[0] {
			text := fmt.Sprint(c)
			for _, m := range in.Markers {
				if m.Fret == c {
					text += "*"
					if m.Octave {
						text += "*"
					}
				}
			}
			header = append(header, p.fret.Render(text))
		}
		b.WriteString(strings.Join(header, "") + "\n")
	}

	for line := len(in.Rows) - 1; line >= 0; line-- {
		cells := []string{p.nut.Render(fmt.Sprintf("%-3d|", line))}
		for _, c := range in.Rows[line] {
			style, marked := p.styleFor(c)
			cells = append(cells, style.Render(label(c, marked)))
		}
		b.WriteString(strings.Join(cells, "") + "\n")
	}

	_, err := io.WriteString(w, b.String())
	return err
}
