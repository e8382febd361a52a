package cmd

import (
	"github.com/jsphweid/strumsheet/constants"
	"github.com/spf13/cobra"
)

var (
	songsDir   string
	chordsPath string
)

var rootCmd = &cobra.Command{
	Use:   "strumsheet",
	Short: "Lyrics on strum pattern grids",
	Long:  `Parses tagged lyric sheets into strum pattern grids and serves them with chord shapes.`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&songsDir, "songs", constants.GetSongsDir(), "directory holding index.json and song files")
	rootCmd.PersistentFlags().StringVar(&chordsPath, "chords", constants.GetChordsPath(), "chord library json")
}

func Execute() {
	cobra.CheckErr(rootCmd.Execute())
}
