package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jsphweid/strumsheet/chord"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(chordsCmd)
}

var chordsCmd = &cobra.Command{
	Use:   "chords [name]",
	Short: "Lists the chord library",
	Long:  `Lists chords grouped by first letter, or the variants of one chord.`,
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := chord.ReadLibrary(chordsPath)
		if err != nil {
			return err
		}
		if len(args) == 1 {
			return printVariants(cmd.OutOrStdout(), lib, args[0])
		}
		printGroups(cmd.OutOrStdout(), lib)
		return nil
	},
}

func printGroups(w io.Writer, lib *chord.Library) {
	groups := lib.Groups()
	if len(groups) == 0 {
		fmt.Fprintln(w, "No chords loaded.")
		return
	}
	for _, g := range groups {
		fmt.Fprintf(w, "%v: %v\n", g.Letter, strings.Join(g.Names, " "))
	}
}

func fretString(frets []int) string {
	parts := make([]string, len(frets))
	for i, f := range frets {
		if f < 0 {
			parts[i] = "x"
		} else {
			parts[i] = strconv.Itoa(f)
		}
	}
	return strings.Join(parts, " ")
}

func printVariants(w io.Writer, lib *chord.Library, name string) error {
	variants, ok := lib.Variants(name)
	if !ok {
		return fmt.Errorf("chord %q not found", name)
	}
	for i, v := range variants {
		fmt.Fprintf(w, "%v (%v): %v from fret %v\n", name, chord.VariantLabel(v, i), fretString(v.Strings), v.StartingFret)
	}
	return nil
}
