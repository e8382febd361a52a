package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/jsphweid/strumsheet/chord"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/jsphweid/strumsheet/song"
	"github.com/stretchr/testify/assert"
)

const testSong = `{
  "meta": {"title": "Test Song", "artist": "Test Artist", "bpm": 100, "time_signature": [4, 4]},
  "patterns": {"kino_strum": {"name": "kino_strum", "len": 16, "scheme": "D . . u . u D . . u D . . u D ."}},
  "rawText": "<Am>hello world<$>more text\n<G>again\n<C>alone"
}`

func writeTestLibrary(t *testing.T) string {
	dir := t.TempDir()
	assert.Nil(t, os.WriteFile(filepath.Join(dir, "test.json"), []byte(testSong), 0644))
	_, err := Index(dir)
	assert.Nil(t, err)
	return dir
}

func newTestServer(t *testing.T) (*Server, string) {
	dir := writeTestLibrary(t)
	lib, err := song.OpenLibrary(dir, nil)
	assert.Nil(t, err)
	chords := chord.NewLibrary(model.ChordLibrary{"Am": {{Name: "Am", StartingFret: 1, Strings: []int{-1, 0, 2, 2, 1, 0}}}})
	return NewServer(lib, chords), lib.Entries()[0].ID
}

func do(h http.Handler, method string, target string, body io.Reader) *http.Response {
	req := httptest.NewRequest(method, target, body)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w.Result()
}

func TestIndexWritesEntries(t *testing.T) {
	dir := writeTestLibrary(t)
	lib, err := song.OpenLibrary(dir, nil)

	assert := assert.New(t)
	assert.Nil(err)
	entries := lib.Entries()
	assert.Len(entries, 1)
	assert.Equal("Test Song", entries[0].Title)
	assert.Equal("test.json", entries[0].Filename)
	assert.NotEmpty(entries[0].ID)
}

func TestHandleSongs(t *testing.T) {
	server, id := newTestServer(t)
	resp := do(server.Handler(), http.MethodGet, "/songs", nil)

	var entries []model.LibraryEntry
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Nil(json.NewDecoder(resp.Body).Decode(&entries))
	assert.Equal(id, entries[0].ID)
}

func TestHandlePhrases(t *testing.T) {
	server, id := newTestServer(t)
	resp := do(server.Handler(), http.MethodGet, "/songs/"+id+"/phrases", nil)

	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)

	var blocks []struct {
		Label   string `json:"label"`
		Phrases []struct {
			Width  int                    `json:"width"`
			Chords []phrase.ChordPlacement `json:"chords"`
			Steps  []struct {
				AbsoluteIndex int    `json:"absoluteIndex"`
				MeasureIndex  int    `json:"measureIndex"`
				Stroke        string `json:"stroke"`
				IsBeat        bool   `json:"isBeat"`
				Lyric         string `json:"lyric"`
			} `json:"steps"`
		} `json:"phrases"`
	}
	assert.Nil(json.NewDecoder(resp.Body).Decode(&blocks))
	assert.Len(blocks, 1)
	assert.Equal("Generated", blocks[0].Label)
	assert.Len(blocks[0].Phrases, 2)

	first := blocks[0].Phrases[0]
	assert.Equal(32, first.Width)
	assert.Equal(16, first.Chords[1].Offset)
	assert.NotNil(first.Chords[0].Shape)
	assert.Nil(first.Chords[1].Shape)
	assert.Equal("DOWN", first.Steps[0].Stroke)
	assert.Equal("hello ", first.Steps[0].Lyric)
	assert.Equal("more ", first.Steps[8].Lyric)
	assert.Equal(1, first.Steps[20].MeasureIndex)

	assert.Equal(16, blocks[0].Phrases[1].Width)
}

func TestHandleSongNotFound(t *testing.T) {
	server, _ := newTestServer(t)
	resp := do(server.Handler(), http.MethodGet, "/songs/nope", nil)

	var body model.ErrorResponse
	assert := assert.New(t)
	assert.Equal(404, resp.StatusCode)
	assert.Nil(json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(`Could not load song "nope": Song not found in library`, body.Error)
}

func TestHandleParse(t *testing.T) {
	server, _ := newTestServer(t)
	body, _ := json.Marshal(model.ParseRequestBody{Text: "<Am>hello world<$>more text", Pattern: "p1"})
	resp := do(server.Handler(), http.MethodPost, "/parse", bytes.NewReader(body))

	var parsed model.ParseResponse
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Nil(json.NewDecoder(resp.Body).Decode(&parsed))
	assert.NotEmpty(parsed.RequestId)
	assert.Equal([]model.SongLine{{
		Chord:   "Am",
		Pattern: "p1",
		Lyrics: []model.LyricSegment{
			{Step: 0, Text: "hello "},
			{Step: 8, Text: "world"},
			{Step: 8, Text: "more "},
			{Step: 12, Text: "text"},
		},
	}}, parsed.Blocks[0].Lines)
}

func TestHandleParseBadBody(t *testing.T) {
	server, _ := newTestServer(t)
	resp := do(server.Handler(), http.MethodPost, "/parse", bytes.NewReader([]byte("{")))
	assert.Equal(t, 400, resp.StatusCode)
}

func TestHandleChords(t *testing.T) {
	server, _ := newTestServer(t)

	resp := do(server.Handler(), http.MethodGet, "/chords", nil)
	var groups []model.ChordGroup
	assert := assert.New(t)
	assert.Equal(200, resp.StatusCode)
	assert.Nil(json.NewDecoder(resp.Body).Decode(&groups))
	assert.Equal([]model.ChordGroup{{Letter: "A", Names: []string{"Am"}}}, groups)

	resp = do(server.Handler(), http.MethodGet, "/chords/Bm", nil)
	assert.Equal(404, resp.StatusCode)
}

func TestHandleReload(t *testing.T) {
	server, _ := newTestServer(t)
	resp := do(server.Handler(), http.MethodPost, "/reload", nil)
	assert.Equal(t, 202, resp.StatusCode)
}
