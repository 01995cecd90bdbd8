package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/board"
	"sudoku_engine_go/internal/engine"
	"sudoku_engine_go/internal/visualizer"
)

// NewSolveCommand creates the solve subcommand. The grid is given as
// an 81-character row-major string ('.' or '0' for empty cells),
// either as an argument or on stdin.
func NewSolveCommand(root *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [grid]",
		Short: "Solve a 9x9 Sudoku grid",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var input string
			if len(args) == 1 {
				input = args[0]
			} else {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read grid from stdin: %w", err)
				}
				input = string(data)
			}

			g, err := board.Parse(strings.TrimSpace(input))
			if err != nil {
				return err
			}

			start := time.Now()
			if !engine.SolveGrid(&g) {
				return errors.New("grid has no solution")
			}
			root.Logger().Debug("solved grid",
				"dur", time.Since(start).Round(time.Millisecond))

			return visualizer.New(cmd.OutOrStdout()).Print(g)
		},
	}
	return cmd
}
