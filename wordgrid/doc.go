// Package wordgrid treats a rectangular grid of letters as a graph and
// enumerates every dictionary word that can be spelled along a simple path
// of adjacent cells (Boggle rules).
//
// What:
//
//   - Grid wraps an immutable R×C grid of runes with a chosen adjacency mode.
//   - Neighbors lazily yields the in-bounds cells adjacent to a cell.
//   - Words and Search run a depth-first backtracking search from every cell,
//     consulting a Lexicon after each step and abandoning any path whose
//     letters are not a prefix of a known word.
//   - Walk streams every discovery, with its path, as an iter.Seq2 whose
//     final error pair reports a walk that could not start or finish.
//
// Why:
//
//   - Word games: Boggle solvers, word-search puzzle checkers, hint engines.
//   - Prefix pruning keeps an exponential path enumeration tractable: a path
//     is extended only while its letters can still become a word.
//
// Complexity:
//
//   - New:       O(R×C), Memory: O(R×C).
//   - Neighbors: O(d), d = 4 or 8.
//   - Search:    worst case exponential in R×C; in practice bounded by the
//     number of lexicon prefixes present in the grid. Memory: O(R×C) per
//     running start cell plus the result set.
//
// Options:
//
//   - GridOptions.Conn: Conn4 (N/E/S/W) or Conn8 (with diagonals).
//   - WithContext(ctx):   cancel or time out a search; results are truncated
//     and reported via Result.Truncated and ErrTruncated.
//   - WithWorkers(n):     search start cells concurrently on n goroutines.
//   - WithMinLength(n):   only record words of at least n letters.
//   - WithMaxLength(n):   never extend a path beyond n letters.
//   - WithLogger(l):      structured logging of search completion.
//
// Errors:
//
//   - ErrEmptyGrid:           no rows, or an empty first row (as *ShapeError).
//   - ErrNonRectangular:      rows of differing rune counts (as *ShapeError).
//   - ErrInvalidConnectivity: unknown adjacency mode.
//   - ErrNilLexicon:          Search called with a nil Lexicon.
//   - ErrInvalidOption:       negative length limits or MinLength > MaxLength.
//   - ErrTruncated:           the search context ended before completion.
package wordgrid
