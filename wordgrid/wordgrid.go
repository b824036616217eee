package wordgrid

import (
	"fmt"
	"iter"
	"strings"
)

var (
	offsets4 = [][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}
	offsets8 = [][2]int{{-1, 0}, {-1, 1}, {0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}}
)

// New constructs a Grid from a non-empty list of equal-length rows.
// Each row is split into runes; row length is measured in runes.
// It copies the input so later changes to rows cannot affect the grid.
// Returns a *ShapeError wrapping ErrEmptyGrid if rows is empty or the first
// row has no letters, or wrapping ErrNonRectangular if any row length
// differs. Returns ErrInvalidConnectivity for an unknown opts.Conn.
// Algorithmic complexity: O(R×C) time and memory.
func New(rows []string, opts GridOptions) (*Grid, error) {
	// 1. Validate connectivity and pick neighbor offsets
	var offsets [][2]int
	switch opts.Conn {
	case Conn4:
		offsets = offsets4
	case Conn8:
		offsets = offsets8
	default:
		return nil, fmt.Errorf("%w: got %v", ErrInvalidConnectivity, opts.Conn)
	}

	// 2. Validate shape
	if len(rows) == 0 || rows[0] == "" {
		return nil, &ShapeError{Err: ErrEmptyGrid}
	}
	letters := make([][]rune, len(rows))
	for r, row := range rows {
		letters[r] = []rune(row)
	}
	w := len(letters[0])
	for r, row := range letters {
		if len(row) != w {
			return nil, &ShapeError{Row: r, Want: w, Got: len(row), Err: ErrNonRectangular}
		}
	}

	return &Grid{
		rows:            len(letters),
		cols:            w,
		letters:         letters,
		conn:            opts.Conn,
		neighborOffsets: offsets,
	}, nil
}

// Rows returns the number of rows R.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns C.
func (g *Grid) Cols() int { return g.cols }

// Conn returns the adjacency mode the grid was built with.
func (g *Grid) Conn() Connectivity { return g.conn }

// InBounds reports whether c lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(c Cell) bool {
	return c.Row >= 0 && c.Row < g.rows && c.Col >= 0 && c.Col < g.cols
}

// Letter returns the rune at c. It panics if c is out of bounds.
func (g *Grid) Letter(c Cell) rune {
	return g.letters[c.Row][c.Col]
}

// Neighbors returns a lazy sequence of the in-bounds cells adjacent to c,
// clockwise from north. Under Conn8 that is up to 8 cells, under Conn4 up to 4.
// Passing an out-of-bounds cell is a programming error and panics.
// Complexity: O(d).
func (g *Grid) Neighbors(c Cell) iter.Seq[Cell] {
	if !g.InBounds(c) {
		panic(fmt.Sprintf("wordgrid: Neighbors of out-of-bounds cell %v in %d×%d grid", c, g.rows, g.cols))
	}

	return func(yield func(Cell) bool) {
		for _, d := range g.neighborOffsets {
			n := Cell{Row: c.Row + d[0], Col: c.Col + d[1]}
			if !g.InBounds(n) {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// index maps c to a row-major index: Row*Cols + Col.
// Complexity: O(1).
func (g *Grid) index(c Cell) int {
	return c.Row*g.cols + c.Col
}

// cell converts a row-major index back to a Cell.
func (g *Grid) cell(idx int) Cell {
	return Cell{Row: idx / g.cols, Col: idx % g.cols}
}

// String renders the grid one row per line.
func (g *Grid) String() string {
	var sb strings.Builder
	for r, row := range g.letters {
		if r > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(row))
	}

	return sb.String()
}
