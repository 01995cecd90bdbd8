package visualizer

import (
	"io"
	"strings"

	"sudoku_engine_go/internal/board"
)

// Visualizer writes human-readable grid renderings.
type Visualizer struct {
	w io.Writer
}

func New(w io.Writer) *Visualizer {
	return &Visualizer{w: w}
}

// Print renders the grid with box-drawing borders. Empty cells show
// as dots.
func (v *Visualizer) Print(g board.Grid) error {
	_, err := io.WriteString(v.w, Render(g))
	return err
}

// Render returns the bordered text form of a grid.
func Render(g board.Grid) string {
	var sb strings.Builder
	writeBorder(&sb)

	for r := 0; r < board.Size; r++ {
		sb.WriteString("│ ")
		for c := 0; c < board.Size; c++ {
			if g[r][c] == board.Empty {
				sb.WriteByte('.')
			} else {
				sb.WriteByte('0' + byte(g[r][c]))
			}
			sb.WriteByte(' ')

			if (c+1)%board.BoxSize == 0 && c < board.Size-1 {
				sb.WriteString("│ ")
			}
		}
		sb.WriteString("│\n")

		if (r+1)%board.BoxSize == 0 && r < board.Size-1 {
			writeBorder(&sb)
		}
	}

	writeBorder(&sb)
	return sb.String()
}

func writeBorder(sb *strings.Builder) {
	sb.WriteString("├")
	for i := 0; i < board.Size; i++ {
		sb.WriteString("──")
		if (i+1)%board.BoxSize == 0 && i < board.Size-1 {
			sb.WriteString("┼")
		}
	}
	sb.WriteString("┤\n")
}
