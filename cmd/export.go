package cmd

import (
	"bytes"
	"io"
	"os"
	"strconv"

	"github.com/jsphweid/fretdex/instrument"
	"github.com/jsphweid/fretdex/midi"
	"github.com/jsphweid/fretdex/triad"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	exportPath     string
	exportStrategy string
	exportPattern  int
)

func init() {
	flags := exportCmd.Flags()
	flags.StringVarP(&exportPath, "out", "o", "fretdex.mid", "file to write")
	flags.StringVar(&exportStrategy, "strategy", string(triad.Connected), "triad strategy")
	flags.IntVar(&exportPattern, "pattern", 0, "index of the scale shape to export when no degree is given")
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <key> <scale> [degree]",
	Short: "Writes voicings or a scale shape to a MIDI file",
	Long: `With a degree, writes every voicing of that triad as a block chord.
Without one, writes a scale shape as eighth notes.`,
	Args: cobra.RangeArgs(2, 3),
	Run: func(cmd *cobra.Command, args []string) {
		layout, err := flagLayout()
		cobra.CheckErr(err)
		degree := 0
		if len(args) == 3 {
			degree, err = strconv.Atoi(args[2])
			cobra.CheckErr(err)
		}

		cobra.CheckErr(writeExport(exportPath, args[0], args[1], degree, layout))
		logger.Info("midi written", zap.String("path", exportPath))
	},
}

var errNoPattern = errors.New("no such scale shape")

// writeExport leaves path untouched unless the whole file rendered.
func writeExport(path string, key string, name string, degree int, layout instrument.Layout) error {
	var buf bytes.Buffer
	if err := runExport(&buf, key, name, degree, layout); err != nil {
		return err
	}
	return errors.Wrapf(os.WriteFile(path, buf.Bytes(), 0o644), "could not write %s", path)
}

func runExport(w io.Writer, key string, name string, degree int, layout instrument.Layout) error {
	if degree > 0 {
		t, err := diatonicTriad(key, name, degree)
		if err != nil {
			return err
		}
		s, err := triad.ParseStrategy(exportStrategy)
		if err != nil {
			return err
		}
		voicings, err := triad.Find(t, layout, s)
		if err != nil {
			return err
		}
		return midi.WriteVoicings(w, voicings, layout)
	}

	patterns, err := findPatterns(key, name, false, layout)
	if err != nil {
		return err
	}
	if exportPattern < 0 || exportPattern >= len(patterns) {
		return errors.Wrapf(errNoPattern, "%d of %d", exportPattern, len(patterns))
	}
	return midi.WritePattern(w, patterns[exportPattern], layout)
}
