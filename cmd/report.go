package cmd

import (
	"fmt"
	"io"

	"github.com/jsphweid/strumsheet/chord"
	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/jsphweid/strumsheet/song"
	"github.com/jsphweid/strumsheet/util"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(reportCmd)
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Creates a report",
	Long:  `Reports songs, phrases that cannot be rendered and chords missing from the chord library.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := OpenLibrary(songsDir)
		if err != nil {
			return err
		}
		printReport(cmd.OutOrStdout(), analyzeLibrary(lib, ReadChords(chordsPath)))
		return nil
	},
}

type libraryReport struct {
	numSongs       int
	numFailed      int
	numBlocks      int
	numLines       int
	numPhrases     int
	skippedPhrases int
	missingChords  map[string]int
}

func analyzeLibrary(lib *song.Library, chords *chord.Library) libraryReport {
	report := libraryReport{missingChords: make(map[string]int)}

	for _, entry := range lib.Entries() {
		report.numSongs += 1
		data, err := lib.Load(entry.ID)
		if err != nil {
			report.numFailed += 1
			continue
		}

		for _, block := range data.Blocks {
			report.numBlocks += 1
			report.numLines += len(block.Lines)
			for _, lines := range phrase.Group(block.Lines, constants.PhraseSize) {
				if _, ok := phrase.Resolve(lines, data.Patterns); !ok {
					report.skippedPhrases += 1
					continue
				}
				report.numPhrases += 1
			}
			for _, line := range block.Lines {
				if _, ok := chords.Shape(line.Chord, data.PreferredVoicings); !ok {
					report.missingChords[line.Chord] += 1
				}
			}
		}
	}

	return report
}

func printReport(w io.Writer, report libraryReport) {
	fmt.Fprintf(w, "songs: %v (%v failed to load)\n", report.numSongs, report.numFailed)
	fmt.Fprintf(w, "blocks: %v\n", report.numBlocks)
	fmt.Fprintf(w, "lines: %v\n", report.numLines)
	fmt.Fprintf(w, "phrases: %v (%v skipped for unknown patterns)\n", report.numPhrases, report.skippedPhrases)
	fmt.Fprintf(w, "chords without shapes: %v\n", len(report.missingChords))
	for _, name := range util.SortedKeys(report.missingChords) {
		fmt.Fprintf(w, "  %v: %v lines\n", name, report.missingChords[name])
	}
}
