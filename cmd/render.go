package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(renderCmd)
}

var renderCmd = &cobra.Command{
	Use:   "render <song id or file>",
	Short: "Renders a song as text",
	Long:  `Prints each phrase of a song as a chord row, a strum row and a lyric row.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := loadSong(args[0])
		if err != nil {
			return err
		}
		renderSong(cmd.OutOrStdout(), data)
		return nil
	},
}

func renderSong(w io.Writer, data model.SongData) {
	fmt.Fprintf(w, "%v - %v\n", data.Meta.Title, data.Meta.Artist)
	ts := data.Meta.TimeSignature
	fmt.Fprintf(w, "BPM: %v | Time: %v/%v\n", data.Meta.BPM, ts[0], ts[1])

	for _, block := range phrase.ComposeSong(data, nil) {
		fmt.Fprintln(w)
		if block.Label != "" {
			fmt.Fprintf(w, "[%v]\n", block.Label)
		}
		for _, view := range block.Phrases {
			fmt.Fprintln(w, phrase.Render(view))
			fmt.Fprintln(w, strings.Repeat("-", view.Width*2))
		}
	}
}
