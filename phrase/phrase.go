package phrase

import (
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/rhythm"
	"github.com/jsphweid/strumsheet/util"
)

type AbsoluteStep struct {
	rhythm.Step
	AbsoluteIndex int `json:"absoluteIndex"`
	MeasureIndex  int `json:"measureIndex"`
}

type ChordPlacement struct {
	Chord  string            `json:"chord"`
	Offset int               `json:"offset"`
	Shape  *model.ChordShape `json:"shape,omitempty"`
}

type View struct {
	Width  int              `json:"width"`
	Chords []ChordPlacement `json:"chords"`
	Steps  []AbsoluteStep   `json:"steps"`
}

// Resolve looks up each line's pattern. ok is false when any line
// references a pattern the table does not have.
func Resolve(lines []model.SongLine, table map[string]model.RhythmPattern) ([]model.RhythmPattern, bool) {
	patterns := make([]model.RhythmPattern, 0, len(lines))
	for _, line := range lines {
		p, ok := table[line.Pattern]
		if !ok {
			return nil, false
		}
		patterns = append(patterns, p)
	}
	return patterns, true
}

// Compose lays lines end to end on one grid. patterns[i] belongs to
// lines[i]; line i occupies [offset_i, offset_i+len_i). Lines without a
// pattern are left out.
func Compose(lines []model.SongLine, patterns []model.RhythmPattern) View {
	if len(patterns) < len(lines) {
		lines = lines[:len(patterns)]
	}
	patterns = patterns[:len(lines)]

	lengths := make([]int, len(patterns))
	for i, p := range patterns {
		if p.Len > 0 {
			lengths[i] = p.Len
		}
	}
	offsets := util.PrefixSums(lengths)

	view := View{
		Width:  util.Sum(lengths),
		Chords: make([]ChordPlacement, 0, len(lines)),
		Steps:  make([]AbsoluteStep, 0, util.Sum(lengths)),
	}

	for i, line := range lines {
		view.Chords = append(view.Chords, ChordPlacement{Chord: line.Chord, Offset: offsets[i]})

		aligned := rhythm.Align(rhythm.Expand(patterns[i]), line.Lyrics)
		for _, step := range aligned {
			view.Steps = append(view.Steps, AbsoluteStep{
				Step:          step,
				AbsoluteIndex: offsets[i] + step.Index,
				MeasureIndex:  i,
			})
		}
	}
	return view
}

// ComposeLines resolves and composes in one go. ok is false when the
// phrase cannot be rendered and should be skipped.
func ComposeLines(lines []model.SongLine, table map[string]model.RhythmPattern) (View, bool) {
	patterns, ok := Resolve(lines, table)
	if !ok {
		return View{}, false
	}
	return Compose(lines, patterns), true
}

func Group(lines []model.SongLine, size int) [][]model.SongLine {
	return util.Chunk(lines, size)
}
