package commands

import (
	"fmt"

	"github.com/l3aro/go-katas/internal/config"
	"github.com/l3aro/go-katas/internal/output"
	"github.com/l3aro/go-katas/pkg/squares"
	"github.com/spf13/cobra"
)

// SquaresOutput is the result of the squares command
type SquaresOutput struct {
	N            uint32 `json:"n" yaml:"n" msgpack:"n"`
	SquareOfSum  uint32 `json:"square_of_sum" yaml:"square_of_sum" msgpack:"square_of_sum"`
	SumOfSquares uint32 `json:"sum_of_squares" yaml:"sum_of_squares" msgpack:"sum_of_squares"`
	Difference   uint32 `json:"difference" yaml:"difference" msgpack:"difference"`
	Exact        bool   `json:"exact" yaml:"exact" msgpack:"exact"`
}

func (o SquaresOutput) Heading() string {
	return fmt.Sprintf("Results for N = %d:", o.N)
}

func (o SquaresOutput) Rows() []output.Row {
	return []output.Row{
		{Label: "Square of the sum", Value: o.SquareOfSum},
		{Label: "Sum of the squares", Value: o.SumOfSquares},
		{Label: "Difference", Value: o.Difference},
	}
}

func newSquaresCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "squares [N]",
		Short: "Difference between the square of the sum and the sum of the squares",
		Long: `Computes the square of the sum and the sum of the squares of the first N
natural numbers, and the difference between them.

Results are 32-bit. With overflow=truncate (the default) larger values keep their
low 32 bits and a warning is logged; with overflow=error the command fails instead.
N is read from standard input when not given as an argument.

Examples:
  kata squares 10
  echo 5 | kata squares
  kata squares --overflow error --format json 400`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnv(cmd)
			if err != nil {
				return err
			}

			v, err := readNumber(cmd, args, "Enter a natural number (N):", 32)
			if err != nil {
				return err
			}
			n := uint32(v)
			env.logger.Debug("computing squares", "n", n, "overflow", env.cfg.Overflow)

			var res squares.Result
			if env.cfg.Overflow == config.OverflowError {
				res, err = squares.ComputeChecked(n)
				if err != nil {
					return fmt.Errorf("squares: %w (largest exact N is %d)", err, squares.MaxExactBound)
				}
			} else {
				res = squares.Compute(n)
				if !res.Exact {
					env.logger.Warn("results truncated to 32 bits", "n", n, "max_exact", squares.MaxExactBound)
				}
			}

			return env.write(SquaresOutput{
				N:            res.N,
				SquareOfSum:  res.SquareOfSum,
				SumOfSquares: res.SumOfSquares,
				Difference:   res.Difference,
				Exact:        res.Exact,
			})
		},
	}
}
