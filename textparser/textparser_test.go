package textparser

import (
	"testing"

	"github.com/jsphweid/strumsheet/model"
	"github.com/stretchr/testify/assert"
)

func TestParseChordWithModifier(t *testing.T) {
	blocks := Parse("<Am>hello world<$>more text", "p1", 16)

	assert := assert.New(t)
	assert.Len(blocks, 1)
	assert.Equal(GeneratedLabel, blocks[0].Type)
	assert.Equal([]model.SongLine{{
		Chord:   "Am",
		Pattern: "p1",
		Lyrics: []model.LyricSegment{
			{Step: 0, Text: "hello "},
			{Step: 8, Text: "world"},
			{Step: 8, Text: "more "},
			{Step: 12, Text: "text"},
		},
	}}, blocks[0].Lines)
}

func TestParseSeveralChordsPerLine(t *testing.T) {
	lines := ParseLines("<F#m>one two<C#m>three\n\n   \n<Bm>four<E>", "kino_strum", 16)

	assert := assert.New(t)
	assert.Len(lines, 4)
	assert.Equal("F#m", lines[0].Chord)
	assert.Equal("C#m", lines[1].Chord)
	assert.Equal([]model.LyricSegment{{Step: 0, Text: "three"}}, lines[1].Lyrics)
	assert.Equal("Bm", lines[2].Chord)
	assert.Equal("E", lines[3].Chord)
	assert.Empty(lines[3].Lyrics)
	for _, l := range lines {
		assert.Equal("kino_strum", l.Pattern)
	}
}

func TestParseIgnoresLeadingText(t *testing.T) {
	lines := ParseLines("intro words<G>sing", "p", 16)

	assert := assert.New(t)
	assert.Len(lines, 1)
	assert.Equal("G", lines[0].Chord)
	assert.Equal([]model.LyricSegment{{Step: 0, Text: "sing"}}, lines[0].Lyrics)
}

func TestParseDropsMalformedFragment(t *testing.T) {
	assert := assert.New(t)
	assert.Empty(ParseLines("<Amhello", "p", 16))

	lines := ParseLines("<Amhello<G>ok", "p", 16)
	assert.Len(lines, 1)
	assert.Equal("G", lines[0].Chord)
}

func TestParseOrphanModifierIgnored(t *testing.T) {
	blocks := Parse("<$>nobody home\n<C>here", "p", 16)

	assert := assert.New(t)
	assert.Len(blocks[0].Lines, 1)
	assert.Equal([]model.LyricSegment{{Step: 0, Text: "here"}}, blocks[0].Lines[0].Lyrics)
}

func TestParseBlankModifierKeepsLyrics(t *testing.T) {
	lines := ParseLines("<C>la<$>", "p", 16)

	assert := assert.New(t)
	assert.Len(lines, 1)
	assert.Equal([]model.LyricSegment{{Step: 0, Text: "la"}}, lines[0].Lyrics)

	lines = ParseLines("<C><$>   ", "p", 16)
	assert.NotNil(lines[0].Lyrics)
	assert.Empty(lines[0].Lyrics)
}

func TestParseModifierAppliesAcrossPhysicalLines(t *testing.T) {
	lines := ParseLines("<Am>first\n<$>late entry", "p", 8)

	assert.Equal(t, []model.LyricSegment{
		{Step: 0, Text: "first"},
		{Step: 4, Text: "late "},
		{Step: 6, Text: "entry"},
	}, lines[0].Lyrics)
}

func TestParseModifierUsesFloorMidpoint(t *testing.T) {
	lines := ParseLines("<D><$>x", "p", 7)

	assert.Equal(t, []model.LyricSegment{{Step: 3, Text: "x"}}, lines[0].Lyrics)
}

func TestParseAlwaysOneBlock(t *testing.T) {
	assert := assert.New(t)

	empty := Parse("", "p", 16)
	assert.Len(empty, 1)
	assert.Empty(empty[0].Lines)

	sections := Parse("<A>verse\n\n\n<B>chorus", "p", 16)
	assert.Len(sections, 1)
	assert.Len(sections[0].Lines, 2)
}

func TestParseIsIdempotent(t *testing.T) {
	text := "<Am>hello world<$>more text\n<G>again<C>and again"
	assert.Equal(t, Parse(text, "p", 16), Parse(text, "p", 16))
}
