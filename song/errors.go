package song

import (
	"fmt"

	"github.com/pkg/errors"
)

var ErrNotFound = errors.New("Song not found in library")

// LoadError is what a reader sees when a song cannot be shown.
type LoadError struct {
	ID  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("Could not load song %q: %v", e.ID, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

func (e *LoadError) Cause() error {
	return e.Err
}
