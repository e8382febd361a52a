package cmd

import (
	"log"
	"os"
	"strings"

	"github.com/jsphweid/strumsheet/chord"
	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/db"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/song"
)

func OpenLibrary(dir string) (*song.Library, error) {
	var metadata song.MetadataSource
	if endpoint := constants.GetDynamoEndpoint(); endpoint != "" {
		store, err := db.Connect(endpoint, constants.GetDynamoTable())
		if err != nil {
			log.Printf("Skipping metadata store because: %v\n", err)
		} else {
			metadata = store
		}
	}
	return song.OpenLibrary(dir, metadata)
}

// ReadChords never fails: a missing library just means no diagrams.
func ReadChords(path string) *chord.Library {
	lib, err := chord.ReadLibrary(path)
	if err != nil {
		log.Printf("Continuing without chord shapes: %v\n", err)
		return chord.NewLibrary(nil)
	}
	return lib
}

// loadSong accepts either a library id or a path to a song file.
func loadSong(ref string) (model.SongData, error) {
	if strings.HasSuffix(ref, ".json") {
		if _, err := os.Stat(ref); err == nil {
			return song.ReadSong(ref)
		}
	}

	lib, err := OpenLibrary(songsDir)
	if err != nil {
		return model.SongData{}, err
	}
	return lib.Load(ref)
}
