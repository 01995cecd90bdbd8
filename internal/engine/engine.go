package engine

import (
	"errors"
	"math/rand"
	"time"

	"sudoku_engine_go/internal/board"
)

// Board owns one Sudoku grid together with the difficulty it was
// generated at and the full solution captured before cells were
// removed. All solving happens in place on the owned grid; callers
// only ever see value snapshots.
type Board struct {
	grid       board.Grid
	solution   board.Grid
	difficulty string
	rng        *rand.Rand
}

// Option configures a Board before generation runs.
type Option func(*Board)

// WithSeed makes generation reproducible. Two boards built with the
// same difficulty and seed carve identical puzzles.
func WithSeed(seed int64) Option {
	return func(b *Board) {
		b.rng = rand.New(rand.NewSource(seed))
	}
}

// New generates a puzzle of the given difficulty: it fills an empty
// grid with a randomized-order backtracking solve, snapshots the
// solution, then removes cells until the difficulty's target empty
// count is reached. Unrecognized labels are rejected.
func New(difficulty string, opts ...Option) (*Board, error) {
	if err := checkDifficulty(difficulty); err != nil {
		return nil, err
	}

	b := &Board{difficulty: difficulty}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	if !solve(&b.grid, b.rng) {
		return nil, errors.New("failed to fill grid")
	}
	b.solution = b.grid
	b.carve(difficultyTargets[difficulty])
	return b, nil
}

// Grid returns an independent snapshot of the current grid.
func (b *Board) Grid() board.Grid {
	return b.grid.Snapshot()
}

// Solution returns the completed grid the puzzle was carved from.
func (b *Board) Solution() board.Grid {
	return b.solution.Snapshot()
}

// Difficulty returns the label the board was generated at.
func (b *Board) Difficulty() string {
	return b.difficulty
}

// SetCell writes a digit (or 0 to clear) directly into the grid,
// bypassing the solver. No conflict validation happens on this path;
// it exists for user edits.
func (b *Board) SetCell(r, c, v int) {
	b.grid.Set(r, c, v)
}

// EmptyCells returns the coordinates of all empty cells.
func (b *Board) EmptyCells() []board.Cell {
	return b.grid.EmptyCells()
}

// ValidNumbers returns the candidate digits for (r, c) in ascending
// order: every digit 1-9 not already present in the cell's row,
// column, or 3x3 box.
func (b *Board) ValidNumbers(r, c int) []int {
	return validNumbers(&b.grid, r, c)
}

// MRVCell returns the empty cell with the fewest candidates, ties
// broken by row-major enumeration order. ok is false when the grid
// has no empty cells.
func (b *Board) MRVCell() (cell board.Cell, ok bool) {
	return mrvCell(&b.grid)
}

// Solve completes the current grid in place using backtracking with
// deterministic ascending candidate order. It reports false when the
// grid admits no completion, leaving tried cells reset to 0.
func (b *Board) Solve() bool {
	return solve(&b.grid, nil)
}

// IsSolved reports whether the grid is complete and conflict-free:
// no empty cells, and every cell's value is the unique digit missing
// from its row, column, and box peers.
func (b *Board) IsSolved() bool {
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			v := b.grid[r][c]
			if v == board.Empty {
				return false
			}
			nums := peerCandidates(&b.grid, r, c)
			if len(nums) != 1 || nums[0] != v {
				return false
			}
		}
	}
	return true
}

// SolveGrid completes an arbitrary grid in place with the same
// deterministic backtracking Solve uses. It reports false when the
// grid admits no completion.
func SolveGrid(g *board.Grid) bool {
	return solve(g, nil)
}

// validNumbers returns the ascending digits absent from the union of
// the cell's row, column, and box.
func validNumbers(g *board.Grid, r, c int) []int {
	var used [10]bool
	for _, v := range g.Row(r) {
		used[v] = true
	}
	for _, v := range g.Col(c) {
		used[v] = true
	}
	for _, v := range g.Box(r, c) {
		used[v] = true
	}
	nums := make([]int, 0, board.Size)
	for n := 1; n <= 9; n++ {
		if !used[n] {
			nums = append(nums, n)
		}
	}
	return nums
}

// peerCandidates is validNumbers with the cell itself excluded, so a
// filled cell does not mask its own value.
func peerCandidates(g *board.Grid, r, c int) []int {
	var used [10]bool
	for i := 0; i < board.Size; i++ {
		if i != c {
			used[g[r][i]] = true
		}
		if i != r {
			used[g[i][c]] = true
		}
	}
	br, bc := (r/board.BoxSize)*board.BoxSize, (c/board.BoxSize)*board.BoxSize
	for i := br; i < br+board.BoxSize; i++ {
		for j := bc; j < bc+board.BoxSize; j++ {
			if i != r || j != c {
				used[g[i][j]] = true
			}
		}
	}
	nums := make([]int, 0, board.Size)
	for n := 1; n <= 9; n++ {
		if !used[n] {
			nums = append(nums, n)
		}
	}
	return nums
}

// mrvCell picks the most constrained empty cell.
func mrvCell(g *board.Grid) (board.Cell, bool) {
	var best board.Cell
	bestCount := board.Size + 1
	found := false
	for _, cell := range g.EmptyCells() {
		n := len(validNumbers(g, cell.Row, cell.Col))
		if n < bestCount {
			bestCount = n
			best = cell
			found = true
		}
	}
	return best, found
}

// solve is recursive backtracking with MRV cell selection: place a
// candidate, recurse, undo on failure. The first completion found
// wins. A nil rng keeps candidates in ascending order; otherwise the
// order is shuffled, which is what diversifies generated solutions.
func solve(g *board.Grid, rng *rand.Rand) bool {
	cell, ok := mrvCell(g)
	if !ok {
		return true
	}
	nums := validNumbers(g, cell.Row, cell.Col)
	if rng != nil {
		rng.Shuffle(len(nums), func(i, j int) {
			nums[i], nums[j] = nums[j], nums[i]
		})
	}
	for _, n := range nums {
		g[cell.Row][cell.Col] = n
		if solve(g, rng) {
			return true
		}
		g[cell.Row][cell.Col] = board.Empty
	}
	return false
}
