package textparser

import (
	"strings"

	"github.com/jsphweid/strumsheet/lyric"
	"github.com/jsphweid/strumsheet/model"
)

const (
	OpenDelim   = "<"
	CloseDelim  = ">"
	ModifierTag = "$"

	GeneratedLabel = "Generated"
)

// state is threaded through the scan. Modifiers only ever touch the last
// line in lines.
type state struct {
	lines         []model.SongLine
	pattern       string
	patternLength int
}

// Parse turns tagged lyric text such as "<Am>hello world<$>more text"
// into a single block. Text before the first tag on a physical line and
// fragments without a closing delimiter are ignored.
func Parse(text string, defaultPattern string, defaultPatternLength int) []model.SongBlock {
	s := state{
		lines:         []model.SongLine{},
		pattern:       defaultPattern,
		patternLength: defaultPatternLength,
	}

	for _, rawLine := range strings.Split(strings.TrimSpace(text), "\n") {
		if strings.TrimSpace(rawLine) == "" {
			continue
		}
		s = scanLine(s, rawLine)
	}

	return []model.SongBlock{{Type: GeneratedLabel, Lines: s.lines}}
}

// ParseLines is Parse flattened to its lines.
func ParseLines(text string, defaultPattern string, defaultPatternLength int) []model.SongLine {
	var res []model.SongLine
	for _, b := range Parse(text, defaultPattern, defaultPatternLength) {
		res = append(res, b.Lines...)
	}
	return res
}

func scanLine(s state, rawLine string) state {
	fragments := strings.Split(rawLine, OpenDelim)
	for _, fragment := range fragments[1:] {
		tag, content, ok := strings.Cut(fragment, CloseDelim)
		if !ok {
			continue
		}

		if tag == ModifierTag {
			if len(s.lines) > 0 {
				last := len(s.lines) - 1
				s.lines[last] = applyModifier(s.lines[last], content, s.patternLength)
			}
			continue
		}

		s.lines = append(s.lines, model.SongLine{
			Chord:   tag,
			Pattern: s.pattern,
			Lyrics:  lyric.Distribute(content, 0, s.patternLength),
		})
	}
	return s
}

// applyModifier appends late-entry lyrics starting at the pattern midpoint.
// Blank content leaves the existing lyrics alone.
func applyModifier(line model.SongLine, content string, patternLength int) model.SongLine {
	if strings.TrimSpace(content) == "" {
		if line.Lyrics == nil {
			line.Lyrics = []model.LyricSegment{}
		}
		return line
	}

	extra := lyric.Distribute(content, patternLength/2, patternLength)
	merged := make([]model.LyricSegment, 0, len(line.Lyrics)+len(extra))
	merged = append(merged, line.Lyrics...)
	line.Lyrics = append(merged, extra...)
	return line
}
