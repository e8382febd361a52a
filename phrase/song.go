package phrase

import (
	"github.com/jsphweid/strumsheet/chord"
	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/model"
)

type BlockView struct {
	Label   string `json:"label,omitempty"`
	Phrases []View `json:"phrases"`
}

// ComposeSong composes every block of an already normalized song, two
// lines per phrase. Phrases with an unknown pattern are skipped. chords
// may be nil, in which case no shapes are attached.
func ComposeSong(song model.SongData, chords *chord.Library) []BlockView {
	res := make([]BlockView, 0, len(song.Blocks))
	for _, block := range song.Blocks {
		bv := BlockView{Label: block.Type, Phrases: []View{}}
		for _, lines := range Group(block.Lines, constants.PhraseSize) {
			view, ok := ComposeLines(lines, song.Patterns)
			if !ok {
				continue
			}
			if chords != nil {
				attachShapes(&view, chords, song.PreferredVoicings)
			}
			bv.Phrases = append(bv.Phrases, view)
		}
		res = append(res, bv)
	}
	return res
}

func attachShapes(view *View, chords *chord.Library, preferred map[string]int) {
	for i, placement := range view.Chords {
		if shape, ok := chords.Shape(placement.Chord, preferred); ok {
			s := shape
			view.Chords[i].Shape = &s
		}
	}
}
