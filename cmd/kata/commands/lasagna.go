package commands

import (
	"fmt"

	"github.com/l3aro/go-katas/internal/output"
	"github.com/l3aro/go-katas/pkg/lasagna"
	"github.com/spf13/cobra"
)

// LasagnaOutput is the result of the lasagna command
type LasagnaOutput struct {
	Layers            int `json:"layers" yaml:"layers" msgpack:"layers"`
	ElapsedBakeTime   int `json:"elapsed_bake_time" yaml:"elapsed_bake_time" msgpack:"elapsed_bake_time"`
	PreparationTime   int `json:"preparation_time" yaml:"preparation_time" msgpack:"preparation_time"`
	BakeTimeRemaining int `json:"bake_time_remaining" yaml:"bake_time_remaining" msgpack:"bake_time_remaining"`
	ElapsedTime       int `json:"elapsed_time" yaml:"elapsed_time" msgpack:"elapsed_time"`
}

func (o LasagnaOutput) Heading() string {
	return fmt.Sprintf("Lasagna with %d layers:", o.Layers)
}

func (o LasagnaOutput) Rows() []output.Row {
	return []output.Row{
		{Label: "Preparation time", Value: fmt.Sprintf("%d min", o.PreparationTime)},
		{Label: "Bake time remaining", Value: fmt.Sprintf("%d min", o.BakeTimeRemaining)},
		{Label: "Total time elapsed", Value: fmt.Sprintf("%d min", o.ElapsedTime)},
	}
}

func newLasagnaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lasagna",
		Short: "Lasagna preparation and baking times",
		Long: fmt.Sprintf(`Calculates cooking times for a lasagna that bakes for %d minutes and takes
%d minutes of preparation per layer.`, lasagna.ExpectedBakeTime, lasagna.PreparationTimePerLayer),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnv(cmd)
			if err != nil {
				return err
			}

			layers, _ := cmd.Flags().GetInt("layers")
			elapsed, _ := cmd.Flags().GetInt("elapsed")
			if layers < 0 || elapsed < 0 {
				return fmt.Errorf("layers and elapsed must be non-negative")
			}

			out := LasagnaOutput{
				Layers:            layers,
				ElapsedBakeTime:   elapsed,
				PreparationTime:   lasagna.PreparationTimeInMinutes(layers),
				BakeTimeRemaining: lasagna.BakeTimeRemaining(elapsed),
				ElapsedTime:       lasagna.ElapsedTimeInMinutes(layers, elapsed),
			}
			if out.BakeTimeRemaining < 0 {
				env.logger.Warn("lasagna is overdone", "minutes_over", -out.BakeTimeRemaining)
			}

			return env.write(out)
		},
	}
	cmd.Flags().IntP("layers", "l", 1, "Number of layers")
	cmd.Flags().IntP("elapsed", "e", 0, "Minutes already spent baking")
	return cmd
}
