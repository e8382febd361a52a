package constants

import "os"

func getEnv(key string, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func GetSongsDir() string {
	return getEnv("SONGS_PATH", "./songs")
}

func GetChordsPath() string {
	return getEnv("CHORDS_PATH", "./chords.json")
}

func GetPort() string {
	return getEnv("PORT", "8080")
}

// GetDynamoEndpoint is empty unless the metadata store is configured.
func GetDynamoEndpoint() string {
	return os.Getenv("DYNAMO_ENDPOINT")
}

func GetDynamoTable() string {
	return getEnv("DYNAMO_TABLE", "strumsheet-metadata")
}

const LibraryIndexFile = "index.json"

const DefaultPatternName = "kino_strum"

const DefaultPatternLength = 16

// lines composed into one grid
const PhraseSize = 2

// MIDI ticks per quarter note for exports; a step is a sixteenth
const TicksPerQuarter = 480
