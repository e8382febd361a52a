package midi

import (
	"fmt"
	"io"

	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/lyric"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/jsphweid/strumsheet/rhythm"
	gomidi "gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"
)

const (
	strumChannel  uint8 = 0
	steelGuitar   uint8 = 25
	defaultTempo        = 120.0
	stepsPerQuart       = rhythm.StepsPerBeat
)

var strokeKeys = map[rhythm.StrokeKind]uint8{
	rhythm.Down: 52, // E3
	rhythm.Up:   59, // B3
	rhythm.Mute: 40, // E2
}

var strokeVelocity = map[rhythm.StrokeKind]uint8{
	rhythm.Down: 100,
	rhythm.Up:   80,
	rhythm.Mute: 60,
}

// Event is a message at an absolute tick.
type Event struct {
	Time    uint32
	Message smf.Message
}

// StepTicks is the width of one step.
func StepTicks() uint32 {
	return constants.TicksPerQuarter / stepsPerQuart
}

// Events lays the composed blocks end to end, one step after another.
// Played strokes become short notes, chord starts become markers and
// lyrics become lyric events. Sustains and rests emit nothing.
func Events(blocks []phrase.BlockView) []Event {
	var res []Event
	step := StepTicks()
	var base uint32

	for _, block := range blocks {
		for _, view := range block.Phrases {
			chordAt := make(map[int]string, len(view.Chords))
			for _, c := range view.Chords {
				chordAt[c.Offset] = c.Chord
			}

			for _, s := range view.Steps {
				t := base + uint32(s.AbsoluteIndex)*step
				if name, ok := chordAt[s.AbsoluteIndex]; ok {
					res = append(res, Event{Time: t, Message: smf.MetaMarker(name)})
				}
				if s.HasLyric {
					res = append(res, Event{Time: t, Message: smf.MetaLyric(lyric.Display(s.Lyric))})
				}
				key, ok := strokeKeys[s.Stroke]
				if !ok {
					continue
				}
				res = append(res,
					Event{Time: t, Message: smf.Message(gomidi.NoteOn(strumChannel, key, strokeVelocity[s.Stroke]))},
					Event{Time: t + step/2, Message: smf.Message(gomidi.NoteOff(strumChannel, key))},
				)
			}
			base += uint32(view.Width) * step
		}
	}
	return res
}

func tempoTrack(meta model.SongMeta) smf.Track {
	bpm := meta.BPM
	if bpm <= 0 {
		bpm = defaultTempo
	}

	track := smf.Track{}
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTrackSequenceName(meta.Title)})
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTempo(bpm)})
	num, denom := meta.TimeSignature[0], meta.TimeSignature[1]
	if num > 0 && denom > 0 {
		track = append(track, smf.Event{Delta: 0, Message: smf.MetaMeter(uint8(num), uint8(denom))})
	}
	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

func strumTrack(events []Event) smf.Track {
	track := smf.Track{}
	track = append(track, smf.Event{Delta: 0, Message: smf.MetaTrackSequenceName("Strum")})
	track = append(track, smf.Event{Delta: 0, Message: smf.Message(gomidi.ProgramChange(strumChannel, steelGuitar))})

	var lastTime uint32
	for _, event := range events {
		track = append(track, smf.Event{Delta: event.Time - lastTime, Message: event.Message})
		lastTime = event.Time
	}

	track = append(track, smf.Event{Delta: 0, Message: smf.EOT})
	return track
}

// Export writes the composed song as a two track SMF: tempo and meter,
// then the strum grid.
func Export(w io.Writer, meta model.SongMeta, blocks []phrase.BlockView) error {
	s := smf.NewSMF1()
	s.TimeFormat = smf.MetricTicks(constants.TicksPerQuarter)

	if err := s.Add(tempoTrack(meta)); err != nil {
		return fmt.Errorf("error adding tempo track: %w", err)
	}
	if err := s.Add(strumTrack(Events(blocks))); err != nil {
		return fmt.Errorf("error adding strum track: %w", err)
	}

	if _, err := s.WriteTo(w); err != nil {
		return fmt.Errorf("error writing MIDI file: %w", err)
	}
	return nil
}
