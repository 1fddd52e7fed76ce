package commands

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/l3aro/go-katas/internal/config"
	"github.com/l3aro/go-katas/internal/input"
	"github.com/l3aro/go-katas/internal/log"
	"github.com/l3aro/go-katas/internal/output"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// runEnv is the configuration, logger and output settings resolved for one command run.
type runEnv struct {
	cfg        *config.Config
	configPath string
	format     output.Format
	color      bool
	logger     log.Logger
	out        io.Writer
}

// resolveEnv loads the config and applies command-line overrides on top of it.
func resolveEnv(cmd *cobra.Command) (*runEnv, error) {
	var (
		cfg  *config.Config
		path string
		err  error
	)

	if explicit, _ := cmd.Flags().GetString("config"); explicit != "" {
		cfg, err = config.ReadFile(explicit)
		path = explicit
	} else {
		cfg, path, err = config.ReadWithPath()
	}
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format, _ = flags.GetString("format")
	}
	if flags.Changed("overflow") {
		v, _ := flags.GetString("overflow")
		cfg.Overflow = config.OverflowMode(v)
	}
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("no-color") {
		cfg.NoColor, _ = flags.GetBool("no-color")
	}

	cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	format, err := output.ParseFormat(cfg.Format)
	if err != nil {
		return nil, err
	}

	level := log.WarnLevel
	if cfg.Verbose {
		level = log.DebugLevel
	}
	logger := log.New(log.LoggerConfig{
		Level:      level,
		JSONOutput: cfg.LogJSON,
		NoColor:    cfg.NoColor,
		Stderr:     cmd.ErrOrStderr(),
	})
	logger.Debug("config resolved", "path", path, "format", format, "overflow", cfg.Overflow)

	return &runEnv{
		cfg:        cfg,
		configPath: path,
		format:     format,
		color:      !cfg.NoColor && log.IsTerminal(cmd.OutOrStdout()),
		logger:     logger,
		out:        cmd.OutOrStdout(),
	}, nil
}

func (e *runEnv) write(report output.Report) error {
	return output.Write(e.out, e.format, report, output.Options{Color: e.color})
}

// readNumber returns the unsigned integer given as the first argument, or reads one
// from the command's input. A terminal gets an interactive form; any other stream is
// read directly after printing prompt to stderr.
func readNumber(cmd *cobra.Command, args []string, prompt string, bitSize int) (uint64, error) {
	if len(args) > 0 {
		return input.ParseUint(args[0], bitSize)
	}

	in := cmd.InOrStdin()
	if isInteractive(in) {
		var value string
		form := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title(prompt).
					Validate(input.Validator(bitSize)).
					Value(&value),
			),
		).WithInput(in).WithOutput(cmd.ErrOrStderr())
		if err := form.Run(); err != nil {
			return 0, fmt.Errorf("interactive prompt failed: %w", err)
		}
		return input.ParseUint(value, bitSize)
	}

	fmt.Fprintf(cmd.ErrOrStderr(), "%s ", prompt)
	return input.ReadUint(in, bitSize)
}

func isInteractive(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd())
}
