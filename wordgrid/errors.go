package wordgrid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("wordgrid: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("wordgrid: all rows must have the same length")
	// ErrNilLexicon is returned when a nil Lexicon is passed to Search.
	ErrNilLexicon = errors.New("wordgrid: lexicon is nil")
	// ErrInvalidConnectivity indicates an unknown adjacency mode.
	ErrInvalidConnectivity = errors.New("wordgrid: connectivity must be Conn4 or Conn8")
	// ErrInvalidOption indicates inconsistent search options.
	ErrInvalidOption = errors.New("wordgrid: invalid search option")
	// ErrTruncated indicates the search stopped early and its result is partial.
	ErrTruncated = errors.New("wordgrid: search truncated")
)

// ShapeError reports a grid whose rows do not form a non-empty rectangle.
// Row is the index of the first offending row, Want the expected rune
// count and Got the actual one. It unwraps to ErrEmptyGrid or ErrNonRectangular.
type ShapeError struct {
	Row, Want, Got int
	Err            error
}

func (e *ShapeError) Error() string {
	if errors.Is(e.Err, ErrEmptyGrid) {
		return e.Err.Error()
	}

	return fmt.Sprintf("%v: row %d has %d letters, want %d", e.Err, e.Row, e.Got, e.Want)
}

func (e *ShapeError) Unwrap() error { return e.Err }
