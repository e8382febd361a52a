package rhythm

import "github.com/jsphweid/strumsheet/model"

// Align returns a copy of steps with lyrics attached by step index. When
// several segments target one step the last one wins.
func Align(steps []Step, lyrics []model.LyricSegment) []Step {
	lookup := make(map[int]string, len(lyrics))
	for _, l := range lyrics {
		lookup[l.Step] = l.Text
	}

	res := make([]Step, len(steps))
	for i, step := range steps {
		if text, ok := lookup[step.Index]; ok {
			step.Lyric = text
			step.HasLyric = true
		} else {
			step.Lyric = ""
			step.HasLyric = false
		}
		res[i] = step
	}
	return res
}
