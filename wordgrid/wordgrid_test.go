package wordgrid_test

import (
	"errors"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/boggle/wordgrid"
)

//----------------------------------------------------------------------------//
// New and InBounds Tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name string
		rows []string
		opts wordgrid.GridOptions
		err  error
	}{
		{"NilRows", nil, wordgrid.DefaultGridOptions(), wordgrid.ErrEmptyGrid},
		{"EmptyRows", []string{}, wordgrid.DefaultGridOptions(), wordgrid.ErrEmptyGrid},
		{"EmptyCols", []string{""}, wordgrid.DefaultGridOptions(), wordgrid.ErrEmptyGrid},
		{"NonRectangular", []string{"ab", "c"}, wordgrid.DefaultGridOptions(), wordgrid.ErrNonRectangular},
		{"TrailingEmptyRow", []string{"ab", ""}, wordgrid.DefaultGridOptions(), wordgrid.ErrNonRectangular},
		{"BadConn", []string{"ab"}, wordgrid.GridOptions{Conn: wordgrid.Connectivity(7)}, wordgrid.ErrInvalidConnectivity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := wordgrid.New(tc.rows, tc.opts)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%q) error = %v; want %v", tc.rows, err, tc.err)
			}
			if g != nil {
				t.Errorf("New(%q) returned a grid alongside error", tc.rows)
			}
		})
	}
}

// TestNew_ShapeError checks the details carried by a ragged-row failure.
func TestNew_ShapeError(t *testing.T) {
	_, err := wordgrid.New([]string{"aar", "tcd", "xy"}, wordgrid.DefaultGridOptions())

	var se *wordgrid.ShapeError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, 2, se.Row)
	assert.Equal(t, 3, se.Want)
	assert.Equal(t, 2, se.Got)
	assert.ErrorIs(t, err, wordgrid.ErrNonRectangular)
	assert.Contains(t, err.Error(), "row 2 has 2 letters, want 3")
}

// TestNew_RuneWidth ensures row length is counted in letters, not bytes.
func TestNew_RuneWidth(t *testing.T) {
	g, err := wordgrid.New([]string{"éa", "bç"}, wordgrid.DefaultGridOptions())
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.Equal(t, 'é', g.Letter(wordgrid.Cell{Row: 0, Col: 0}))
	assert.Equal(t, 'ç', g.Letter(wordgrid.Cell{Row: 1, Col: 1}))
	assert.Equal(t, "éa\nbç", g.String())
}

// TestNew_CopiesInput ensures later edits to the caller's slice are not visible.
func TestNew_CopiesInput(t *testing.T) {
	rows := []string{"ab", "cd"}
	g, err := wordgrid.New(rows, wordgrid.DefaultGridOptions())
	require.NoError(t, err)

	rows[0] = "zz"
	assert.Equal(t, 'a', g.Letter(wordgrid.Cell{Row: 0, Col: 0}))
}

// TestInBounds checks InBounds on a 2×3 grid.
func TestInBounds(t *testing.T) {
	g, err := wordgrid.New([]string{"aar", "tcd"}, wordgrid.DefaultGridOptions())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, c := range []wordgrid.Cell{{0, 0}, {1, 2}, {1, 1}} {
		if !g.InBounds(c) {
			t.Errorf("InBounds(%v)=false; want true", c)
		}
	}
	for _, c := range []wordgrid.Cell{{-1, 0}, {0, 3}, {2, 1}, {1, -1}} {
		if g.InBounds(c) {
			t.Errorf("InBounds(%v)=true; want false", c)
		}
	}
}

//----------------------------------------------------------------------------//
// Neighbors Tests
//----------------------------------------------------------------------------//

// TestNeighbors covers corner and center cells under both connectivities.
func TestNeighbors(t *testing.T) {
	rows := []string{"aar", "tcd"}
	cases := []struct {
		name string
		conn wordgrid.Connectivity
		at   wordgrid.Cell
		want []wordgrid.Cell
	}{
		{"Conn8Corner", wordgrid.Conn8, wordgrid.Cell{Row: 0, Col: 0}, []wordgrid.Cell{{0, 1}, {1, 1}, {1, 0}}},
		{"Conn8Middle", wordgrid.Conn8, wordgrid.Cell{Row: 1, Col: 1}, []wordgrid.Cell{{0, 1}, {0, 2}, {1, 2}, {1, 0}, {0, 0}}},
		{"Conn4Corner", wordgrid.Conn4, wordgrid.Cell{Row: 0, Col: 0}, []wordgrid.Cell{{0, 1}, {1, 0}}},
		{"Conn4Middle", wordgrid.Conn4, wordgrid.Cell{Row: 1, Col: 1}, []wordgrid.Cell{{0, 1}, {1, 2}, {1, 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := wordgrid.New(rows, wordgrid.GridOptions{Conn: tc.conn})
			require.NoError(t, err)

			got := slices.Collect(g.Neighbors(tc.at))
			assert.Equal(t, tc.want, got)
			assert.NotContains(t, got, tc.at)
		})
	}
}

// TestNeighbors_SingleCell verifies a 1×1 grid has no neighbors.
func TestNeighbors_SingleCell(t *testing.T) {
	g, err := wordgrid.New([]string{"a"}, wordgrid.DefaultGridOptions())
	require.NoError(t, err)

	assert.Empty(t, slices.Collect(g.Neighbors(wordgrid.Cell{})))
}

// TestNeighbors_EarlyStop ensures the sequence honors a stopped range loop.
func TestNeighbors_EarlyStop(t *testing.T) {
	g, err := wordgrid.New([]string{"abc", "def", "ghi"}, wordgrid.DefaultGridOptions())
	require.NoError(t, err)

	n := 0
	for range g.Neighbors(wordgrid.Cell{Row: 1, Col: 1}) {
		n++
		if n == 2 {
			break
		}
	}
	assert.Equal(t, 2, n)
}

// TestNeighbors_OutOfBounds documents that an invalid cell is a programming error.
func TestNeighbors_OutOfBounds(t *testing.T) {
	g, err := wordgrid.New([]string{"ab"}, wordgrid.DefaultGridOptions())
	require.NoError(t, err)

	assert.Panics(t, func() { g.Neighbors(wordgrid.Cell{Row: 1, Col: 0}) })
}
