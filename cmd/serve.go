package cmd

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/strumsheet/chord"
	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/phrase"
	"github.com/jsphweid/strumsheet/song"
	"github.com/jsphweid/strumsheet/textparser"
	"github.com/pkg/errors"
	"github.com/rs/cors"
	"github.com/spf13/cobra"
)

var port string

func init() {
	serveCmd.Flags().StringVar(&port, "port", constants.GetPort(), "port to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "serves",
	Long:  `Serves the song library, composed phrases and the chord library over http.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		lib, err := OpenLibrary(songsDir)
		if err != nil {
			return err
		}
		server := NewServer(lib, ReadChords(chordsPath))
		log.Printf("Serving %v songs on :%v\n", len(lib.Entries()), port)
		log.Fatal(http.ListenAndServe(":"+port, server.Handler()))
		return nil
	},
}

type Server struct {
	lib    *song.Library
	chords *chord.Library
}

func NewServer(lib *song.Library, chords *chord.Library) *Server {
	return &Server{lib: lib, chords: chords}
}

func (s *Server) Handler() http.Handler {
	router := mux.NewRouter().StrictSlash(true)
	router.HandleFunc("/songs", s.HandleSongs).Methods("GET")
	router.HandleFunc("/songs/{id}", s.HandleSong).Methods("GET")
	router.HandleFunc("/songs/{id}/phrases", s.HandlePhrases).Methods("GET")
	router.HandleFunc("/chords", s.HandleChords).Methods("GET")
	router.HandleFunc("/chords/{name}", s.HandleChord).Methods("GET")
	router.HandleFunc("/parse", s.HandleParse).Methods("POST")
	router.HandleFunc("/reload", s.HandleReload).Methods("POST")
	return cors.Default().Handler(router)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("Could not encode response: %v\n", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}

func (s *Server) loadSong(w http.ResponseWriter, r *http.Request) (model.SongData, bool) {
	id := mux.Vars(r)["id"]
	data, err := s.lib.Load(id)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, song.ErrNotFound) {
			status = http.StatusNotFound
		}
		log.Printf("%v\n", err)
		writeError(w, status, err.Error())
		return data, false
	}
	return data, true
}

func (s *Server) HandleSongs(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.lib.Entries())
}

func (s *Server) HandleSong(w http.ResponseWriter, r *http.Request) {
	if data, ok := s.loadSong(w, r); ok {
		writeJSON(w, http.StatusOK, data)
	}
}

func (s *Server) HandlePhrases(w http.ResponseWriter, r *http.Request) {
	if data, ok := s.loadSong(w, r); ok {
		writeJSON(w, http.StatusOK, phrase.ComposeSong(data, s.chords))
	}
}

func (s *Server) HandleChords(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.chords.Groups())
}

func (s *Server) HandleChord(w http.ResponseWriter, r *http.Request) {
	name := mux.Vars(r)["name"]
	variants, ok := s.chords.Variants(name)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown chord: "+name)
		return
	}
	writeJSON(w, http.StatusOK, variants)
}

func (s *Server) HandleParse(w http.ResponseWriter, r *http.Request) {
	reqBody, err := io.ReadAll(r.Body)
	if err != nil {
		writeError(w, http.StatusBadRequest, "Could not read request body")
		return
	}

	var input model.ParseRequestBody
	if err := json.Unmarshal(reqBody, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Could not unmarshal request body: "+err.Error())
		return
	}
	if input.Pattern == "" {
		input.Pattern = constants.DefaultPatternName
	}
	if input.PatternLength <= 0 {
		input.PatternLength = constants.DefaultPatternLength
	}

	writeJSON(w, http.StatusOK, model.ParseResponse{
		RequestId: uuid.New().String(),
		Blocks:    textparser.Parse(input.Text, input.Pattern, input.PatternLength),
	})
}

func (s *Server) HandleReload(w http.ResponseWriter, r *http.Request) {
	s.lib.RequestReload()
	w.WriteHeader(http.StatusAccepted)
}
