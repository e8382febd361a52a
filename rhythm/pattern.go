package rhythm

import (
	"strings"

	"github.com/jsphweid/strumsheet/model"
)

const StepsPerBeat = 4

type Step struct {
	Index  int        `json:"index"`
	Stroke StrokeKind `json:"stroke"`
	IsBeat bool       `json:"isBeat"`
	Lyric  string     `json:"lyric,omitempty"`
	// HasLyric distinguishes an unset lyric from an empty one
	HasLyric bool `json:"-"`
}

// Expand returns exactly p.Len steps. Missing trailing tokens sustain,
// surplus tokens are dropped.
func Expand(p model.RhythmPattern) []Step {
	if p.Len <= 0 {
		return []Step{}
	}

	tokens := strings.Fields(p.Scheme)
	steps := make([]Step, 0, p.Len)
	for i := 0; i < p.Len; i++ {
		token := ContinueToken
		if i < len(tokens) {
			token = tokens[i]
		}
		steps = append(steps, Step{
			Index:  i,
			Stroke: Classify(token),
			IsBeat: i%StepsPerBeat == 0,
		})
	}
	return steps
}
