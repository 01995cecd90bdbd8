package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"sudoku_engine_go/internal/board"
	"sudoku_engine_go/internal/config"
	"sudoku_engine_go/internal/engine"
	"sudoku_engine_go/internal/visualizer"
)

// puzzleOutput is the JSON shape of one generated puzzle.
type puzzleOutput struct {
	Grid       board.Grid `json:"grid"`
	Solution   board.Grid `json:"solution"`
	Difficulty string     `json:"difficulty"`
}

// NewGenerateCommand creates the generate subcommand.
func NewGenerateCommand(root *RootOptions) *cobra.Command {
	var (
		difficulty string
		seed       int64
		count      int
		format     string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Sudoku puzzles at a target difficulty",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(root.ConfigPath)
			if err != nil {
				return err
			}
			// Explicit flags beat config file and environment.
			if cmd.Flags().Changed("difficulty") {
				cfg.Difficulty = difficulty
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("count") {
				cfg.Count = count
			}
			if cmd.Flags().Changed("format") {
				cfg.Format = format
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := root.Logger()
			out := cmd.OutOrStdout()
			viz := visualizer.New(out)

			for i := 0; i < cfg.Count; i++ {
				var opts []engine.Option
				if cfg.Seed != 0 {
					opts = append(opts, engine.WithSeed(cfg.Seed+int64(i)))
				}

				start := time.Now()
				b, err := engine.New(cfg.Difficulty, opts...)
				if err != nil {
					return err
				}
				logger.Debug("generated puzzle",
					"difficulty", cfg.Difficulty,
					"empty", len(b.EmptyCells()),
					"dur", time.Since(start).Round(time.Millisecond),
				)

				switch cfg.Format {
				case "json":
					data, err := json.MarshalIndent(puzzleOutput{
						Grid:       b.Grid(),
						Solution:   b.Solution(),
						Difficulty: b.Difficulty(),
					}, "", "  ")
					if err != nil {
						return err
					}
					fmt.Fprintln(out, string(data))
				default:
					if err := viz.Print(b.Grid()); err != nil {
						return err
					}
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&difficulty, "difficulty", "d", "easy", "puzzle difficulty (easy|medium|hard|expert)")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed for reproducible puzzles (0 = time-based)")
	cmd.Flags().IntVarP(&count, "count", "n", 1, "number of puzzles to generate")
	cmd.Flags().StringVar(&format, "format", "text", "output format (json|text)")

	return cmd
}
