package song

import (
	"log"
	"sync"
	"time"

	"github.com/bep/debounce"
	"github.com/jsphweid/strumsheet/file"
	"github.com/jsphweid/strumsheet/model"
)

// MetadataSource supplies titles and artists keyed by song id.
type MetadataSource interface {
	GetSongMetadatas(ids []string) (map[string]model.SongMetadata, error)
}

type Library struct {
	dir      string
	metadata MetadataSource

	mu      sync.RWMutex
	entries []model.LibraryEntry
	songs   map[string]model.SongData

	debounced func(f func())
}

// OpenLibrary reads dir's index. metadata may be nil.
func OpenLibrary(dir string, metadata MetadataSource) (*Library, error) {
	l := &Library{
		dir:       dir,
		metadata:  metadata,
		debounced: debounce.New(250 * time.Millisecond),
	}
	if err := l.Reload(); err != nil {
		return nil, err
	}
	return l, nil
}

func (l *Library) Dir() string {
	return l.dir
}

// Reload rereads the index and drops every cached song.
func (l *Library) Reload() error {
	entries, err := file.ReadIndex(l.dir)
	if err != nil {
		return err
	}
	entries = l.enrich(entries)

	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = entries
	l.songs = make(map[string]model.SongData)
	return nil
}

// RequestReload coalesces bursts of reload requests into one Reload.
func (l *Library) RequestReload() {
	l.debounced(func() {
		if err := l.Reload(); err != nil {
			log.Printf("Reload of %v failed: %v\n", l.dir, err)
			return
		}
		log.Printf("Reloaded library %v\n", l.dir)
	})
}

func (l *Library) enrich(entries []model.LibraryEntry) []model.LibraryEntry {
	if l.metadata == nil || len(entries) == 0 {
		return entries
	}

	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		ids = append(ids, e.ID)
	}
	metadatas, err := l.metadata.GetSongMetadatas(ids)
	if err != nil {
		log.Printf("Skipping metadata lookup because: %v\n", err)
		return entries
	}

	for i, e := range entries {
		if m, ok := metadatas[e.ID]; ok {
			if m.Title != "" {
				entries[i].Title = m.Title
			}
			if m.Artist != "" {
				entries[i].Artist = m.Artist
			}
		}
	}
	return entries
}

func (l *Library) Entries() []model.LibraryEntry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	res := make([]model.LibraryEntry, len(l.entries))
	copy(res, l.entries)
	return res
}

func (l *Library) Entry(id string) (model.LibraryEntry, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	for _, e := range l.entries {
		if e.ID == id {
			return e, true
		}
	}
	return model.LibraryEntry{}, false
}

// Load returns the normalized song for id. Failures come back as
// *LoadError naming the id.
func (l *Library) Load(id string) (model.SongData, error) {
	l.mu.RLock()
	cached, ok := l.songs[id]
	l.mu.RUnlock()
	if ok {
		return cached, nil
	}

	entry, ok := l.Entry(id)
	if !ok {
		return model.SongData{}, &LoadError{ID: id, Err: ErrNotFound}
	}

	data, err := ReadSong(file.ResolvePath(l.dir, entry.Filename))
	if err != nil {
		return model.SongData{}, &LoadError{ID: id, Err: err}
	}

	l.mu.Lock()
	l.songs[id] = data
	l.mu.Unlock()
	return data, nil
}
