package phrase

import (
	"strings"

	"github.com/jsphweid/strumsheet/lyric"
	"github.com/jsphweid/strumsheet/rhythm"
)

// columns per step in text output
const cellWidth = 2

var strokeGlyphs = map[rhythm.StrokeKind]rune{
	rhythm.Down:     'D',
	rhythm.Up:       'U',
	rhythm.Mute:     'x',
	rhythm.Continue: '.',
	rhythm.Empty:    ' ',
}

// row places text at column positions. Text that would overlap what is
// already written is pushed right past it.
type row struct {
	cells []rune
}

func (r *row) place(col int, text string) {
	if col < len(r.cells) {
		col = len(r.cells)
		if r.cells[col-1] != ' ' {
			col++
		}
	}
	for len(r.cells) < col {
		r.cells = append(r.cells, ' ')
	}
	r.cells = append(r.cells, []rune(text)...)
}

func (r *row) String() string {
	return strings.TrimRight(string(r.cells), " ")
}

// Render draws a phrase as three text rows: chords, strokes and lyrics.
func Render(view View) string {
	var chords, strokes, lyrics row

	for _, c := range view.Chords {
		chords.place(c.Offset*cellWidth, c.Chord)
	}
	for _, step := range view.Steps {
		glyph := strokeGlyphs[step.Stroke]
		if glyph == 0 {
			glyph = ' '
		}
		strokes.place(step.AbsoluteIndex*cellWidth, string(glyph))
		if step.HasLyric {
			lyrics.place(step.AbsoluteIndex*cellWidth, lyric.Display(step.Lyric))
		}
	}

	return strings.Join([]string{chords.String(), strokes.String(), lyrics.String()}, "\n")
}
