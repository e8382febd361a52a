package model

type Barre struct {
	Fret       int `json:"fret"`
	FromString int `json:"fromString"`
	ToString   int `json:"toString"`
}

// ChordShape is one fingering of a chord. Strings run low E to high e:
// 0 is open, -1 is muted, anything else is an absolute fret.
type ChordShape struct {
	Name         string  `json:"name"`
	Variant      string  `json:"variant,omitempty"`
	StartingFret int     `json:"startingFret"`
	Strings      []int   `json:"strings"`
	Fingers      []int   `json:"fingers"`
	Barres       []Barre `json:"barres,omitempty"`
}

type ChordLibrary = map[string][]ChordShape
