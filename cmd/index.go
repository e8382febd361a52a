package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/jsphweid/strumsheet/file"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/song"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(indexCmd)
}

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Creates index.json for a song directory",
	Long:  `Scans the song directory for song documents and writes index.json with stable ids.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		entries, err := Index(songsDir)
		if err != nil {
			return err
		}
		fmt.Printf("Indexed %v songs in %v\n", len(entries), songsDir)
		return nil
	},
}

func Index(dir string) ([]model.LibraryEntry, error) {
	paths, err := file.GatherSongPaths(dir)
	if err != nil {
		return nil, err
	}

	var entries []model.LibraryEntry
	for i, path := range paths {
		fmt.Printf("Processing %v of %v song files\n", i+1, len(paths))
		data, err := song.ReadSong(path)
		if err != nil {
			fmt.Printf("Skipping %v because: %v\n", path, err)
			continue
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = filepath.Base(path)
		}
		rel = filepath.ToSlash(rel)
		entries = append(entries, model.LibraryEntry{
			Title:    data.Meta.Title,
			Artist:   data.Meta.Artist,
			Filename: rel,
		})
	}

	entries = file.AssignIDs(entries)
	if err := file.WriteIndex(dir, entries); err != nil {
		return nil, err
	}
	return entries, nil
}
