// Package wordgrid defines core types and options for letter-grid search.
package wordgrid

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	switch c {
	case Conn4:
		return "conn4"
	case Conn8:
		return "conn8"
	default:
		return fmt.Sprintf("Connectivity(%d)", int(c))
	}
}

// Cell is a grid coordinate, 0 ≤ Row < Rows, 0 ≤ Col < Cols.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// GridOptions contains tunable parameters for grid construction.
type GridOptions struct {
	// Conn chooses 4- or 8-directional adjacency.
	Conn Connectivity
}

// DefaultGridOptions returns GridOptions with Conn=Conn8 (Boggle rules).
func DefaultGridOptions() GridOptions {
	return GridOptions{Conn: Conn8}
}

// Grid is an immutable rectangular grid of letters.
// letters[r][c] holds the rune at row r, column c.
// neighborOffsets is precomputed from the connectivity for adjacency lookups.
type Grid struct {
	rows, cols      int
	letters         [][]rune
	conn            Connectivity
	neighborOffsets [][2]int
}

// Lexicon is the capability set a search needs from a word list.
// *lexicon.Lexicon satisfies it.
type Lexicon interface {
	// IsPrefix reports whether s is a prefix of at least one word.
	IsPrefix(s string) bool
	// IsWord reports whether s is a complete word.
	IsWord(s string) bool
}

// Classifier is implemented by lexicons able to answer both questions with
// one traversal. Search uses it when available.
type Classifier interface {
	Classify(s string) (prefix, word bool)
}

// Match is a single discovery: a word and the cells spelling it, in order.
type Match struct {
	Word string
	Path []Cell
}

// Stats reports the work a search performed.
type Stats struct {
	// Starts is the number of start cells whose subtree was fully explored.
	Starts int
	// Visited counts cell entries (path extensions tested against the lexicon).
	Visited int
	// Pruned counts entries abandoned because their letters prefix no word.
	Pruned int
}

func (s *Stats) add(o Stats) {
	s.Starts += o.Starts
	s.Visited += o.Visited
	s.Pruned += o.Pruned
}

// Result is the outcome of a search.
type Result struct {
	// Words holds each distinct word found, longest first, then lexicographic.
	Words []string
	// Paths maps every word in Words to one path spelling it.
	Paths map[string][]Cell
	// Stats aggregates work across all start cells.
	Stats Stats
	// Truncated is true when the search context ended before every start
	// cell was explored; Words then holds only what was found so far.
	Truncated bool
}

// Has reports whether word was found.
func (r *Result) Has(word string) bool {
	_, ok := r.Paths[word]

	return ok
}

// Option configures optional behavior of a search.
// Use with Search(lex, opts...) or Walk(lex, opts...).
type Option func(*SearchOptions)

// SearchOptions holds configurable parameters for a search.
type SearchOptions struct {
	// Ctx allows cancellation or timeouts; defaults to context.Background().
	// It is checked at every recursive step.
	Ctx context.Context

	// Workers is the number of start cells searched concurrently.
	// 1 (the default) searches sequentially; values ≤ 0 mean one worker per start cell.
	Workers int

	// MinLength is the minimum number of letters a recorded word must have.
	// Shorter words are still explored as prefixes. Default 1.
	MinLength int

	// MaxLength, if positive, stops extending paths beyond that many letters.
	// Default 0 (no limit).
	MaxLength int

	// Logger receives search diagnostics; defaults to zap.NewNop().
	Logger *zap.Logger
}

// DefaultOptions returns SearchOptions with:
//   - Background context
//   - Sequential search (Workers = 1)
//   - MinLength = 1, MaxLength = 0 (unlimited)
//   - No-op logger
func DefaultOptions() SearchOptions {
	return SearchOptions{
		Ctx:       context.Background(),
		Workers:   1,
		MinLength: 1,
		MaxLength: 0,
		Logger:    zap.NewNop(),
	}
}

// WithContext returns an Option that sets the Context for the search.
// Passing a nil context has no effect (Background is retained).
func WithContext(ctx context.Context) Option {
	return func(o *SearchOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers returns an Option that searches start cells on n goroutines.
func WithWorkers(n int) Option {
	return func(o *SearchOptions) {
		o.Workers = n
	}
}

// WithMinLength returns an Option that records only words of at least n letters.
func WithMinLength(n int) Option {
	return func(o *SearchOptions) {
		o.MinLength = n
	}
}

// WithMaxLength returns an Option that caps path length at n letters.
// Zero removes the cap.
func WithMaxLength(n int) Option {
	return func(o *SearchOptions) {
		o.MaxLength = n
	}
}

// WithLogger returns an Option that installs l for search diagnostics.
// A nil logger has no effect.
func WithLogger(l *zap.Logger) Option {
	return func(o *SearchOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// validate checks option consistency.
func (o SearchOptions) validate() error {
	if o.MinLength < 0 || o.MaxLength < 0 {
		return fmt.Errorf("%w: negative length limit (min=%d, max=%d)", ErrInvalidOption, o.MinLength, o.MaxLength)
	}
	if o.MaxLength > 0 && o.MinLength > o.MaxLength {
		return fmt.Errorf("%w: min length %d exceeds max length %d", ErrInvalidOption, o.MinLength, o.MaxLength)
	}

	return nil
}
