package commands

import (
	"fmt"

	"github.com/l3aro/go-katas/internal/healthcheck"
	"github.com/l3aro/go-katas/internal/output"
	"github.com/spf13/cobra"
)

// VerifyOutput is the result of the verify command
type VerifyOutput healthcheck.HealthCheckResult

func (o VerifyOutput) Heading() string {
	path := o.ConfigPath
	if path == "" {
		path = "(none)"
	}
	return fmt.Sprintf("Using config: %s (%s), overflow=%s", path, o.ConfigScope, o.Overflow)
}

func (o VerifyOutput) Rows() []output.Row {
	rows := make([]output.Row, 0, len(o.Checks))
	for _, c := range o.Checks {
		value := fmt.Sprintf("%s %s", formatStatusIcon(c.Status), c.Status)
		if c.Error != "" {
			value += ": " + c.Error
		}
		rows = append(rows, output.Row{Label: c.Name, Value: value})
	}
	return rows
}

func formatStatusIcon(status string) string {
	switch status {
	case healthcheck.StatusOK:
		return "✓"
	case healthcheck.StatusError:
		return "✗"
	default:
		return "?"
	}
}

func newVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check the formulas against their known properties",
		Long: `Runs every known property of the squares, grains and lasagna formulas
(reference values, board boundaries, identities and overflow limits) and reports
which ones hold. Exits non-zero if any check fails.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			env, err := resolveEnv(cmd)
			if err != nil {
				return err
			}

			result, err := healthcheck.Check(env.cfg, env.configPath)
			if err != nil {
				return fmt.Errorf("health check failed: %w", err)
			}

			if err := env.write(VerifyOutput(*result)); err != nil {
				return err
			}

			if failed := result.Failed(); failed > 0 {
				env.logger.Error("verification failed", "failed", failed, "total", len(result.Checks))
				return fmt.Errorf("verification failed: %d of %d checks did not pass", failed, len(result.Checks))
			}
			return nil
		},
	}
}
