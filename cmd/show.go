package cmd

import (
	"io"

	"github.com/jsphweid/fretdex/view"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var showState = view.DefaultState()

func init() {
	flags := showCmd.Flags()
	flags.StringVar(&showState.Key, "key", showState.Key, "key")
	flags.StringVar(&showState.Scale, "scale", showState.Scale, "scale name")
	flags.StringVar(&showState.Chord, "chord", "", "chord symbol to highlight")
	flags.IntVar(&showState.TriadDegree, "triad", 0, "scale degree whose triad voicings to highlight")
	flags.StringVar(&showState.TriadStrategy, "strategy", showState.TriadStrategy, "triad strategy")
	flags.IntVar(&showState.PatternIndex, "pattern", -1, "index of the scale shape to highlight")
	flags.BoolVar(&showState.Features.Degrees, "degrees", false, "label scale degrees")
	flags.BoolVar(&showState.Features.Markers, "markers", true, "show fret markers")
	rootCmd.AddCommand(showCmd)
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Draws the board in the terminal",
	Long:  `Draws the board with the scale, and optionally a chord, a scale shape or triad voicings, highlighted`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		s := showState.WithInstrument(instrumentName).WithFrets(fretsFlag)
		if tuning := splitList(tuningFlag); len(tuning) > 0 {
			s = s.WithTuning(tuning)
		}
		cobra.CheckErr(runShow(cmd.OutOrStdout(), s))
	},
}

func runShow(w io.Writer, s view.State) error {
	if err := checkBoardSize(s.Frets, len(s.Tuning)); err != nil {
		return err
	}
	s = s.WithChord(s.Chord).WithTriad(s.TriadDegree, s.TriadStrategy)
	s.Features.Patterns = s.PatternIndex >= 0
	logger.Debug("render",
		zap.String("instrument", s.Instrument),
		zap.String("key", s.Key),
		zap.String("scale", s.Scale),
		zap.Int("frets", s.Frets))
	instr, err := view.Render(s, registry)
	if err != nil {
		return err
	}
	return view.Terminal(instr, w)
}
