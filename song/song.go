package song

import (
	"encoding/json"
	"os"

	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/textparser"
	"github.com/jsphweid/strumsheet/util"
	"github.com/pkg/errors"
)

// DefaultPattern picks the pattern that untagged text is parsed against:
// the first pattern name in sorted order, falling back to the package
// defaults when the song defines none.
func DefaultPattern(patterns map[string]model.RhythmPattern) (string, int) {
	name := constants.DefaultPatternName
	if keys := util.SortedKeys(patterns); len(keys) > 0 {
		name = keys[0]
	}
	return name, patternLength(patterns, name)
}

func patternLength(patterns map[string]model.RhythmPattern, name string) int {
	if p, ok := patterns[name]; ok && p.Len > 0 {
		return p.Len
	}
	return constants.DefaultPatternLength
}

// Normalize fills in lines from raw text. Global raw text is used only
// when there are no blocks; block text only when the block has no lines.
func Normalize(data model.SongData) model.SongData {
	defaultName, defaultLen := DefaultPattern(data.Patterns)

	if data.RawText != "" && len(data.Blocks) == 0 {
		data.Blocks = textparser.Parse(string(data.RawText), defaultName, defaultLen)
	}

	blocks := make([]model.SongBlock, len(data.Blocks))
	for i, block := range data.Blocks {
		if block.Text != "" && len(block.Lines) == 0 {
			name, length := defaultName, defaultLen
			if block.Pattern != "" {
				name, length = block.Pattern, patternLength(data.Patterns, block.Pattern)
			}
			block.Lines = textparser.ParseLines(string(block.Text), name, length)
		}
		blocks[i] = block
	}
	data.Blocks = blocks

	return data
}

func Decode(dat []byte) (model.SongData, error) {
	var data model.SongData
	if err := json.Unmarshal(dat, &data); err != nil {
		return data, errors.Wrap(err, "Could not decode song")
	}
	return Normalize(data), nil
}

func ReadSong(path string) (model.SongData, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return model.SongData{}, errors.Wrap(err, "Failed to load song")
	}
	return Decode(dat)
}
