package model

type ParseRequestBody struct {
	Text          string `json:"text"`
	Pattern       string `json:"pattern"`
	PatternLength int    `json:"patternLength"`
}

type ParseResponse struct {
	RequestId string      `json:"request_id"`
	Blocks    []SongBlock `json:"blocks"`
}

type ChordGroup struct {
	Letter string   `json:"letter"`
	Names  []string `json:"names"`
}

type ErrorResponse struct {
	Error string `json:"detail"`
}
