package model

import (
	"encoding/json"
	"strings"
)

type TimeSignature = [2]int

type SongMeta struct {
	Title         string        `json:"title"`
	Artist        string        `json:"artist"`
	BPM           float64       `json:"bpm"`
	TimeSignature TimeSignature `json:"time_signature"`
}

// RhythmPattern is a named strum template. Len is authoritative, Scheme
// may carry fewer or more tokens than Len.
type RhythmPattern struct {
	Name   string `json:"name"`
	Len    int    `json:"len"`
	Scheme string `json:"scheme"`
}

type LyricSegment struct {
	Step int    `json:"step"`
	Text string `json:"text"`
}

type SongLine struct {
	Chord   string         `json:"chord"`
	Pattern string         `json:"pattern"`
	Lyrics  []LyricSegment `json:"lyrics"`
}

type SongBlock struct {
	Type    string     `json:"type,omitempty"`
	Lines   []SongLine `json:"lines,omitempty"`
	Text    RawText    `json:"text,omitempty"`
	Pattern string     `json:"pattern,omitempty"`
}

type SongData struct {
	Meta              SongMeta                 `json:"meta"`
	Patterns          map[string]RhythmPattern `json:"patterns"`
	Blocks            []SongBlock              `json:"blocks,omitempty"`
	RawText           RawText                  `json:"rawText,omitempty"`
	PreferredVoicings map[string]int           `json:"preferredVoicings,omitempty"`
}

// RawText accepts either a JSON string or an array of strings. Arrays are
// joined with newlines.
type RawText string

func (r *RawText) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*r = RawText(s)
		return nil
	}

	var parts []string
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	*r = RawText(strings.Join(parts, "\n"))
	return nil
}
