package chord

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/jsphweid/strumsheet/model"
	"github.com/jsphweid/strumsheet/util"
	"github.com/pkg/errors"
	"golang.org/x/exp/slices"
)

type Library struct {
	shapes model.ChordLibrary
}

func NewLibrary(shapes model.ChordLibrary) *Library {
	if shapes == nil {
		shapes = make(model.ChordLibrary)
	}
	return &Library{shapes: shapes}
}

func ReadLibrary(path string) (*Library, error) {
	dat, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to load chords library")
	}

	var shapes model.ChordLibrary
	if err := json.Unmarshal(dat, &shapes); err != nil {
		return nil, errors.Wrapf(err, "Failed to parse chords library %v", path)
	}
	return NewLibrary(shapes), nil
}

func (l *Library) Len() int {
	return len(l.shapes)
}

func (l *Library) Variants(name string) ([]model.ChordShape, bool) {
	variants, ok := l.shapes[name]
	return variants, ok && len(variants) > 0
}

// Shape resolves a chord label to its display variant: the song's
// preferred index for that chord, else variant 0.
func (l *Library) Shape(name string, preferred map[string]int) (model.ChordShape, bool) {
	variants, ok := l.Variants(name)
	if !ok {
		return model.ChordShape{}, false
	}

	idx := preferred[name]
	if idx < 0 || idx >= len(variants) {
		return model.ChordShape{}, false
	}
	return variants[idx], true
}

// VariantLabel is the shape's own variant name or "Variant N" (1-based).
func VariantLabel(shape model.ChordShape, idx int) string {
	if shape.Variant != "" {
		return shape.Variant
	}
	return "Variant " + strconv.Itoa(idx+1)
}

// Groups buckets chord names by their upper-cased first letter. Groups and
// the names inside them are sorted.
func (l *Library) Groups() []model.ChordGroup {
	byLetter := make(map[string][]string)
	for name := range l.shapes {
		r, size := utf8.DecodeRuneInString(name)
		if size == 0 {
			continue
		}
		letter := strings.ToUpper(string(r))
		byLetter[letter] = append(byLetter[letter], name)
	}

	res := make([]model.ChordGroup, 0, len(byLetter))
	for _, letter := range util.SortedKeys(byLetter) {
		names := byLetter[letter]
		slices.Sort(names)
		res = append(res, model.ChordGroup{Letter: letter, Names: names})
	}
	return res
}
