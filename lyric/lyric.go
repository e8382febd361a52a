package lyric

import (
	"strings"

	"github.com/jsphweid/strumsheet/model"
)

// Distribute spaces the words of text evenly from startStep to the end of
// a pattern of patternLength steps. Every word but the last keeps a
// trailing space. With more words than steps the interval truncates to
// zero and words share a step.
func Distribute(text string, startStep int, patternLength int) []model.LyricSegment {
	words := strings.Fields(text)
	if len(words) == 0 {
		return []model.LyricSegment{}
	}

	available := patternLength - startStep
	interval := available / len(words)

	res := make([]model.LyricSegment, 0, len(words))
	for i, word := range words {
		if i < len(words)-1 {
			word += " "
		}
		res = append(res, model.LyricSegment{
			Step: startStep + i*interval,
			Text: word,
		})
	}
	return res
}

// Display strips the trailing syllable hyphen used to mark split words.
func Display(text string) string {
	return strings.TrimSuffix(text, "-")
}
