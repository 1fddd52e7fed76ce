package commands

import (
	"github.com/spf13/cobra"
)

// NewRootCmd builds the kata command tree. Each call returns an independent tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "kata",
		Short: "kata - closed-form arithmetic katas",
		Long: `kata evaluates small arithmetic exercises with closed-form formulas.

Commands:
  squares     Square of the sum, sum of the squares and their difference
  grains      Grains of wheat on a chessboard square and on the whole board
  lasagna     Lasagna preparation and baking times
  verify      Check the formulas against their known properties
  init        Create a configuration file interactively

Use "kata [command] --help" for more information about a command.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringP("format", "f", "", "Output format (text, json, yaml or msgpack)")
	flags.String("overflow", "", "Squares overflow handling (truncate or error)")
	flags.String("config", "", "Config file path")
	flags.Bool("verbose", false, "Verbose logging")
	flags.Bool("no-color", false, "Disable colored output")

	root.AddCommand(newSquaresCmd())
	root.AddCommand(newGrainsCmd())
	root.AddCommand(newLasagnaCmd())
	root.AddCommand(newVerifyCmd())
	root.AddCommand(newInitCmd())

	return root
}

// Execute runs the kata command tree with the given version string.
func Execute(version string) error {
	root := NewRootCmd()
	root.Version = version
	root.SetVersionTemplate(`kata version {{.Version}}
`)
	return root.Execute()
}
