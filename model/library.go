package model

type LibraryEntry struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Artist   string `json:"artist"`
	Filename string `json:"filename"`
}

type SongMetadata struct {
	Title  string
	Artist string
}
