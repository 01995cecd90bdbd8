package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sudoku_engine_go/internal/board"
)

// A classic, solvable Sudoku (0 = empty).
var sample = board.Grid{
	{5, 3, 0, 0, 7, 0, 0, 0, 0},
	{6, 0, 0, 1, 9, 5, 0, 0, 0},
	{0, 9, 8, 0, 0, 0, 0, 6, 0},
	{8, 0, 0, 0, 6, 0, 0, 0, 3},
	{4, 0, 0, 8, 0, 3, 0, 0, 1},
	{7, 0, 0, 0, 2, 0, 0, 0, 6},
	{0, 6, 0, 0, 0, 0, 2, 8, 0},
	{0, 0, 0, 4, 1, 9, 0, 0, 5},
	{0, 0, 0, 0, 8, 0, 0, 7, 9},
}

// assertValidSolution checks every row, column, and box is a
// permutation of 1-9.
func assertValidSolution(t *testing.T, g board.Grid) {
	t.Helper()
	unit := func(vals [board.Size]int, kind string, idx int) {
		var seen [10]bool
		for _, v := range vals {
			require.True(t, v >= 1 && v <= 9, "%s %d holds %d", kind, idx, v)
			require.False(t, seen[v], "%s %d repeats %d", kind, idx, v)
			seen[v] = true
		}
	}
	for i := 0; i < board.Size; i++ {
		unit(g.Row(i), "row", i)
		unit(g.Col(i), "col", i)
		unit(g.Box((i/3)*3, (i%3)*3), "box", i)
	}
}

func TestSolveGridEmpty(t *testing.T) {
	var g board.Grid
	require.True(t, SolveGrid(&g), "an empty grid is always solvable")
	assertValidSolution(t, g)
}

func TestSolveGridSample(t *testing.T) {
	g := sample
	require.True(t, SolveGrid(&g))
	assertValidSolution(t, g)

	// Givens must survive the solve untouched.
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if sample[r][c] != board.Empty {
				assert.Equal(t, sample[r][c], g[r][c], "given at (%d,%d) changed", r, c)
			}
		}
	}
}

func TestSolveGridUnsolvable(t *testing.T) {
	// (0,8) needs a 9, but its column already holds one.
	var g board.Grid
	for c := 0; c < 8; c++ {
		g[0][c] = c + 1
	}
	g[2][8] = 9

	before := g
	assert.False(t, SolveGrid(&g))
	assert.Equal(t, before, g, "failed solve must leave tried cells reset")
}

func TestValidNumbersExcludePeers(t *testing.T) {
	b, err := New("easy", WithSeed(42))
	require.NoError(t, err)
	g := b.Grid()

	for _, cell := range b.EmptyCells() {
		nums := b.ValidNumbers(cell.Row, cell.Col)
		for _, n := range nums {
			for _, v := range g.Row(cell.Row) {
				assert.NotEqual(t, v, n, "candidate %d already in row %d", n, cell.Row)
			}
			for _, v := range g.Col(cell.Col) {
				assert.NotEqual(t, v, n, "candidate %d already in col %d", n, cell.Col)
			}
			for _, v := range g.Box(cell.Row, cell.Col) {
				assert.NotEqual(t, v, n, "candidate %d already in box of (%d,%d)", n, cell.Row, cell.Col)
			}
		}
		// Ascending order.
		for i := 1; i < len(nums); i++ {
			assert.Less(t, nums[i-1], nums[i])
		}
	}
}

func TestMRVCellNoneIffNoEmptyCells(t *testing.T) {
	b, err := New("medium", WithSeed(7))
	require.NoError(t, err)

	_, ok := b.MRVCell()
	assert.True(t, ok, "a carved puzzle has empty cells")

	require.True(t, b.Solve())
	assert.Empty(t, b.EmptyCells())
	_, ok = b.MRVCell()
	assert.False(t, ok)
}

func TestMRVCellPicksMostConstrained(t *testing.T) {
	b, err := New("easy", WithSeed(3))
	require.NoError(t, err)

	cell, ok := b.MRVCell()
	require.True(t, ok)
	min := len(b.ValidNumbers(cell.Row, cell.Col))
	for _, other := range b.EmptyCells() {
		assert.GreaterOrEqual(t, len(b.ValidNumbers(other.Row, other.Col)), min)
	}
}

func TestIsSolved(t *testing.T) {
	b, err := New("easy", WithSeed(99))
	require.NoError(t, err)
	assert.False(t, b.IsSolved(), "a carved puzzle is not solved")

	require.True(t, b.Solve())
	assert.True(t, b.IsSolved())

	// Idempotent: asking twice changes nothing.
	before := b.Grid()
	assert.True(t, b.IsSolved())
	assert.Equal(t, before, b.Grid())
}

func TestIsSolvedRejectsConflicts(t *testing.T) {
	b, err := New("easy", WithSeed(5))
	require.NoError(t, err)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			b.SetCell(r, c, 1)
		}
	}
	assert.False(t, b.IsSolved())
}

func TestSetCellBypassesValidation(t *testing.T) {
	b, err := New("easy", WithSeed(11))
	require.NoError(t, err)

	var (
		cell        board.Cell
		conflicting int
	)
	g := b.Grid()
	for _, candidate := range b.EmptyCells() {
		for _, v := range g.Row(candidate.Row) {
			if v != board.Empty {
				cell, conflicting = candidate, v
				break
			}
		}
		if conflicting != 0 {
			break
		}
	}
	require.NotZero(t, conflicting, "no empty cell shares a row with a given")

	// A conflicting digit is accepted on the direct-edit path.
	b.SetCell(cell.Row, cell.Col, conflicting)
	assert.Equal(t, conflicting, b.Grid()[cell.Row][cell.Col])

	b.SetCell(cell.Row, cell.Col, 0)
	assert.Equal(t, board.Empty, b.Grid()[cell.Row][cell.Col])
}

func TestClearOneCellRoundTrip(t *testing.T) {
	b, err := New("easy", WithSeed(21))
	require.NoError(t, err)

	sol := b.Solution()
	sol[4][4] = board.Empty
	require.True(t, SolveGrid(&sol))
	assertValidSolution(t, sol)
}
