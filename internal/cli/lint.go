package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/internal/system"
)

var lintCmd = &cobra.Command{
	Use:   "lint <vm>",
	Short: "Check a VM configuration against this host",
	Args:  cobra.ExactArgs(1),
	RunE:  runLint,
}

var errLintFailed = errors.New("configuration has errors")

func runLint(cmd *cobra.Command, args []string) error {
	file := openFile(args[0])
	probe := hostProbe()

	s, _, err := file.LoadOrMigrate(probe)
	if err != nil {
		return fmt.Errorf("load %s: %w", file.Path(), err)
	}

	issues := system.Lint(s, probe)
	if len(issues) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "%s: OK\n", file.Path())
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), system.FormatValidationErrors(issues))
	if system.HasFatal(issues) {
		return errLintFailed
	}
	return nil
}
