package cmd

import (
	"fmt"
	"os"

	"github.com/jsphweid/strumsheet/midi"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(exportCmd)
}

var exportCmd = &cobra.Command{
	Use:   "export <song id or file> <out.mid>",
	Short: "Exports a song's strum grid as MIDI",
	Long:  `Writes one note per played stroke, chord markers and lyric events to a Standard MIDI File.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadSong(args[0])
		if err != nil {
			return err
		}

		f, err := os.Create(args[1])
		if err != nil {
			return errors.Wrapf(err, "Couldn't open file: %v", args[1])
		}
		defer f.Close()

		if err := midi.Export(f, data.Meta, phrase.ComposeSong(data, nil)); err != nil {
			return err
		}
		if err := f.Close(); err != nil {
			return errors.Wrapf(err, "Write failed for file: %v", args[1])
		}

		written, err := midi.ReadMidiFile(args[1])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %v: %v chords, %v lyrics\n", args[1], len(midi.Markers(written)), len(midi.Lyrics(written)))
		return nil
	},
}
