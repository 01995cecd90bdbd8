package engine

import (
	"math/rand"

	"golang.org/x/sync/errgroup"

	"sudoku_engine_go/internal/board"
)

// sampleTrials is how many randomized re-solves probe each removal
// for alternate solutions.
const sampleTrials = 10

// carve removes cells from the solved grid in shuffled order until at
// least target cells are empty. A removal is kept only when uniqueness
// sampling finds no second solution for the cleared cell; otherwise
// the original value is restored and the next coordinate is tried.
func (b *Board) carve(target int) {
	cells := make([]board.Cell, 0, board.CellCount)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			cells = append(cells, board.Cell{Row: r, Col: c})
		}
	}
	b.rng.Shuffle(len(cells), func(i, j int) {
		cells[i], cells[j] = cells[j], cells[i]
	})

	for _, cell := range cells {
		if len(b.grid.EmptyCells()) >= target {
			break
		}
		v := b.grid[cell.Row][cell.Col]
		if v == board.Empty {
			continue
		}
		b.grid[cell.Row][cell.Col] = board.Empty
		if b.hasAlternateSolution(cell) {
			b.grid[cell.Row][cell.Col] = v
		}
	}
}

// hasAlternateSolution re-solves a snapshot of the carved grid with
// randomized candidate ordering and reports whether the trials fill
// the cleared cell with more than one distinct digit. Trials are
// independent, so they run concurrently; only the aggregate matters.
func (b *Board) hasAlternateSolution(cell board.Cell) bool {
	var (
		g      errgroup.Group
		placed [sampleTrials]int
	)
	for t := 0; t < sampleTrials; t++ {
		t, seed := t, b.rng.Int63()
		g.Go(func() error {
			trial := b.grid.Snapshot()
			if solve(&trial, rand.New(rand.NewSource(seed))) {
				placed[t] = trial[cell.Row][cell.Col]
			}
			return nil
		})
	}
	_ = g.Wait() // trials report no errors

	first := board.Empty
	for _, v := range placed {
		if v == board.Empty {
			continue
		}
		if first == board.Empty {
			first = v
			continue
		}
		if v != first {
			return true
		}
	}
	return false
}
