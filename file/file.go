package file

import (
	"encoding/json"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/jsphweid/strumsheet/constants"
	"github.com/jsphweid/strumsheet/model"
	"github.com/pkg/errors"
)

// StableID derives an id from a filename so re-indexing never reshuffles.
func StableID(filename string) string {
	return uuid.NewSHA1(uuid.NameSpaceURL, []byte(filename)).String()
}

func AssignIDs(entries []model.LibraryEntry) []model.LibraryEntry {
	res := make([]model.LibraryEntry, len(entries))
	for i, e := range entries {
		if e.ID == "" {
			e.ID = StableID(e.Filename)
		}
		res[i] = e
	}
	return res
}

func GatherSongPaths(dir string) ([]string, error) {
	var res []string
	walk := func(s string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(s, ".json") {
			return nil
		}
		if filepath.Base(s) == constants.LibraryIndexFile {
			return nil
		}
		res = append(res, s)
		return nil
	}
	if err := filepath.WalkDir(dir, walk); err != nil {
		return nil, errors.Wrapf(err, "Error walking %v", dir)
	}
	return res, nil
}

// ResolvePath maps an index filename to a path under dir. Filenames may
// be URL paths like "/songs/x.json".
func ResolvePath(dir string, filename string) string {
	direct := filepath.Join(dir, filepath.FromSlash(filename))
	if _, err := os.Stat(direct); err == nil {
		return direct
	}
	return filepath.Join(dir, filepath.Base(filename))
}

func ReadIndex(dir string) ([]model.LibraryEntry, error) {
	path := filepath.Join(dir, constants.LibraryIndexFile)
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load library")
	}

	var entries []model.LibraryEntry
	if err := json.Unmarshal(dat, &entries); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse library index %v", path)
	}
	return AssignIDs(entries), nil
}

func WriteIndex(dir string, entries []model.LibraryEntry) error {
	dat, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return errors.Wrap(err, "Could not encode library index")
	}
	path := filepath.Join(dir, constants.LibraryIndexFile)
	if err := os.WriteFile(path, dat, 0644); err != nil {
		return errors.Wrapf(err, "Write failed for %v", path)
	}
	return nil
}
