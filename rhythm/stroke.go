package rhythm

import "encoding/json"

type StrokeKind uint8

const (
	Empty StrokeKind = iota
	Down
	Up
	Mute
	Continue
)

var strokeNames = map[StrokeKind]string{
	Empty:    "EMPTY",
	Down:     "DOWN",
	Up:       "UP",
	Mute:     "MUTE",
	Continue: "CONTINUE",
}

func (s StrokeKind) String() string {
	if name, ok := strokeNames[s]; ok {
		return name
	}
	return strokeNames[Empty]
}

func (s StrokeKind) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// ContinueToken fills steps the scheme does not supply.
const ContinueToken = "."

// Classify maps one notation token to its stroke. Unknown tokens are Empty.
func Classify(token string) StrokeKind {
	switch token {
	case "D":
		return Down
	case "U", "u":
		return Up
	case "x":
		return Mute
	case ContinueToken:
		return Continue
	default:
		return Empty
	}
}
