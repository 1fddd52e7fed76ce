package commands

import (
	"fmt"

	"github.com/charmbracelet/huh"
	"github.com/l3aro/go-katas/internal/config"
	"github.com/spf13/cobra"
)

const (
	scopeProject = "project"
	scopeGlobal  = "global"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Initialize kata configuration interactively",
		Long: `Guides you through setting up kata configuration step by step.
Creates a config file with the default output format and overflow handling.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.DefaultConfig()
			scope := scopeProject

			form := huh.NewForm(
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Output format").
						Description("Default format for command results").
						Options(
							huh.NewOption("Text", config.FormatText),
							huh.NewOption("JSON", config.FormatJSON),
							huh.NewOption("YAML", config.FormatYAML),
							huh.NewOption("MessagePack", config.FormatMsgpack),
						).
						Value(&cfg.Format),
					huh.NewSelect[config.OverflowMode]().
						Title("Squares overflow").
						Description("What to do when a result does not fit in 32 bits").
						Options(
							huh.NewOption("Keep the low 32 bits and warn", config.OverflowTruncate),
							huh.NewOption("Fail with an error", config.OverflowError),
						).
						Value(&cfg.Overflow),
					huh.NewConfirm().
						Title("Disable colored output?").
						Affirmative("Yes").
						Negative("No").
						Value(&cfg.NoColor),
				),
				huh.NewGroup(
					huh.NewSelect[string]().
						Title("Where should the config be saved?").
						Options(
							huh.NewOption("This project (.kata/config.yaml)", scopeProject),
							huh.NewOption("Global (~/.kata/config.yaml)", scopeGlobal),
						).
						Value(&scope),
				),
			).WithInput(cmd.InOrStdin()).WithOutput(cmd.ErrOrStderr())

			if err := form.Run(); err != nil {
				return fmt.Errorf("interactive prompt failed: %w", err)
			}

			path, err := saveInitConfig(cfg, scope)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration saved to %s\n", path)
			return nil
		},
	}
}

// saveInitConfig validates cfg and writes it to the file for the chosen scope.
func saveInitConfig(cfg *config.Config, scope string) (string, error) {
	if err := cfg.Validate(); err != nil {
		return "", err
	}

	var path string
	switch scope {
	case scopeProject:
		path = config.ProjectConfigFilePath()
	case scopeGlobal:
		path = config.GlobalConfigFilePath()
	default:
		return "", fmt.Errorf("unknown config scope: %s", scope)
	}

	if err := cfg.Save(path); err != nil {
		return "", err
	}
	return path, nil
}
