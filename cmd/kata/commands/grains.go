package commands

import (
	"fmt"

	"github.com/l3aro/go-katas/internal/output"
	"github.com/l3aro/go-katas/pkg/grains"
	"github.com/spf13/cobra"
)

// BoardSquare is one square of the board listing
type BoardSquare struct {
	Square     int    `json:"square" yaml:"square" msgpack:"square"`
	Grains     uint64 `json:"grains" yaml:"grains" msgpack:"grains"`
	Cumulative uint64 `json:"cumulative" yaml:"cumulative" msgpack:"cumulative"`
}

// GrainsOutput is the result of the grains command
type GrainsOutput struct {
	Square uint64        `json:"square" yaml:"square" msgpack:"square"`
	Grains uint64        `json:"grains" yaml:"grains" msgpack:"grains"`
	Total  uint64        `json:"total" yaml:"total" msgpack:"total"`
	Board  []BoardSquare `json:"board,omitempty" yaml:"board,omitempty" msgpack:"board,omitempty"`
}

func (o GrainsOutput) Heading() string {
	return fmt.Sprintf("Results for square %d:", o.Square)
}

func (o GrainsOutput) Rows() []output.Row {
	rows := []output.Row{
		{Label: "Grains on this square", Value: o.Grains},
		{Label: "Total grains on the whole board", Value: o.Total},
	}
	for _, sq := range o.Board {
		rows = append(rows, output.Row{
			Label: fmt.Sprintf("Square %d", sq.Square),
			Value: fmt.Sprintf("%d (cumulative %d)", sq.Grains, sq.Cumulative),
		})
	}
	return rows
}

func newGrainsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "grains [SQUARE]",
		Short: "Grains of wheat on a chessboard square",
		Long: `Shows how many grains of wheat are on the given chessboard square (1-64)
when each square holds twice as many as the previous one, and the total on the board.
Squares outside the board hold zero grains.

Examples:
  kata grains 64
  kata grains --board 1`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnv(cmd)
			if err != nil {
				return err
			}

			v, err := readNumber(cmd, args, "Square Num (1-64):", 64)
			if err != nil {
				return err
			}

			var index uint8
			if v <= grains.Squares {
				index = uint8(v)
			}
			count := grains.Square(index)
			if count == 0 {
				env.logger.Warn("square is not on the board", "square", v)
			}
			env.logger.Debug("counted grains", "square", v, "grains", count)

			out := GrainsOutput{
				Square: v,
				Grains: count,
				Total:  grains.Total(),
			}

			if showBoard, _ := cmd.Flags().GetBool("board"); showBoard {
				for i, g := range grains.Board() {
					out.Board = append(out.Board, BoardSquare{
						Square:     i + 1,
						Grains:     g,
						Cumulative: grains.TotalThrough(uint8(i + 1)),
					})
				}
			}

			return env.write(out)
		},
	}
	cmd.Flags().BoolP("board", "b", false, "Also list every square with cumulative totals")
	return cmd
}
