package midi

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gitlab.com/gomidi/midi/v2/smf"
)

func ReadMidiFile(filepath string) (*smf.SMF, error) {
	dat, err := os.ReadFile(filepath)
	if err != nil {
		return nil, fmt.Errorf("Error reading midi file... %w", err)
	}
	return ReadMidi(bytes.NewReader(dat))
}

func ReadMidi(r io.Reader) (s *smf.SMF, e error) {
	// handle panics
	// https://github.com/gomidi/midi/issues/20
	defer func() {
		if r, ok := recover().(string); ok {
			s, e = nil, errors.New(r)
		}
	}()

	res, err := smf.ReadFrom(r)
	if err != nil {
		return nil, fmt.Errorf("Error parsing midi file... %w", err)
	}
	return res, nil
}

// Lyrics returns every lyric meta event in track order.
func Lyrics(s *smf.SMF) []string {
	var res []string
	for _, track := range s.Tracks {
		for _, event := range track {
			var lyric string
			if event.Message.GetMetaLyric(&lyric) {
				res = append(res, lyric)
			}
		}
	}
	return res
}

// Markers returns every marker meta event (chord labels on export).
func Markers(s *smf.SMF) []string {
	var res []string
	for _, track := range s.Tracks {
		for _, event := range track {
			var text string
			if event.Message.GetMetaMarker(&text) {
				res = append(res, text)
			}
		}
	}
	return res
}
