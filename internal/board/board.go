package board

import (
	"encoding/json"
	"fmt"
)

const (
	// Size is the board edge length.
	Size = 9
	// BoxSize is the edge length of one 3x3 box.
	BoxSize = 3
	// CellCount is the total number of cells.
	CellCount = Size * Size
	// Empty marks an unfilled cell.
	Empty = 0
)

// Grid is a 9x9 Sudoku grid. 0 means empty, 1-9 are placed digits.
// It is a plain value type: assigning or passing a Grid copies all 81
// cells, so snapshots never alias the original.
type Grid [Size][Size]int

// Cell identifies a position on the grid.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// Snapshot returns an independent copy of the grid.
func (g *Grid) Snapshot() Grid {
	return *g
}

// Get returns the value at (r, c).
func (g *Grid) Get(r, c int) int {
	checkCoords(r, c)
	return g[r][c]
}

// Set writes v at (r, c) without any Sudoku-rule validation. Callers
// may introduce conflicting values; only the coordinate and digit
// ranges are enforced.
func (g *Grid) Set(r, c, v int) {
	checkCoords(r, c)
	if v < 0 || v > 9 {
		panic(fmt.Sprintf("board: value %d out of range [0,9]", v))
	}
	g[r][c] = v
}

// Row returns the 9 values of row r, by value.
func (g *Grid) Row(r int) [Size]int {
	checkCoords(r, 0)
	return g[r]
}

// Col returns the 9 values of column c, by value.
func (g *Grid) Col(c int) [Size]int {
	checkCoords(0, c)
	var col [Size]int
	for r := 0; r < Size; r++ {
		col[r] = g[r][c]
	}
	return col
}

// Box returns the 9 values of the 3x3 box containing (r, c), row-major
// from the box origin.
func (g *Grid) Box(r, c int) [Size]int {
	checkCoords(r, c)
	br, bc := (r/BoxSize)*BoxSize, (c/BoxSize)*BoxSize
	var box [Size]int
	for i := 0; i < BoxSize; i++ {
		for j := 0; j < BoxSize; j++ {
			box[i*BoxSize+j] = g[br+i][bc+j]
		}
	}
	return box
}

// EmptyCells returns the coordinates of all empty cells in row-major
// order.
func (g *Grid) EmptyCells() []Cell {
	cells := make([]Cell, 0, CellCount)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == Empty {
				cells = append(cells, Cell{Row: r, Col: c})
			}
		}
	}
	return cells
}

// Parse builds a Grid from an 81-character string read row-major.
// '.' and '0' mark empty cells, '1'-'9' placed digits.
func Parse(s string) (Grid, error) {
	var g Grid
	if len(s) != CellCount {
		return Grid{}, fmt.Errorf("grid string must be exactly %d characters, got %d", CellCount, len(s))
	}
	for i := 0; i < CellCount; i++ {
		ch := s[i]
		switch {
		case ch == '.' || ch == '0':
			// Empty cell, already zero.
		case ch >= '1' && ch <= '9':
			g[i/Size][i%Size] = int(ch - '0')
		default:
			return Grid{}, fmt.Errorf("invalid character %q at position %d", ch, i)
		}
	}
	return g, nil
}

// String renders the grid as an 81-character string, '.' for empty.
func (g *Grid) String() string {
	buf := make([]byte, 0, CellCount)
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if g[r][c] == Empty {
				buf = append(buf, '.')
			} else {
				buf = append(buf, '0'+byte(g[r][c]))
			}
		}
	}
	return string(buf)
}

// ToJSON converts the grid to JSON bytes.
func (g *Grid) ToJSON() ([]byte, error) {
	return json.Marshal(g)
}

// FromJSON creates a Grid from JSON bytes.
func FromJSON(data []byte) (Grid, error) {
	var g Grid
	err := json.Unmarshal(data, &g)
	return g, err
}

func checkCoords(r, c int) {
	if r < 0 || r >= Size || c < 0 || c >= Size {
		panic(fmt.Sprintf("board: coordinates (%d,%d) out of range", r, c))
	}
}
