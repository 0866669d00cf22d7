package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/internal/legacy"
	"github.com/javanstorm/vzconf/internal/system"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate <legacy> [<out>]",
	Short: "Convert a legacy VM configuration",
	Long: `Convert a configuration written by an older release.

The architecture is taken from this host, memory is converted from bytes to
MiB (sub-MiB remainders are dropped), and Mac platform data is kept only on
hosts that can run macOS guests. Without <out> the file is rewritten in place.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	in := openFile(args[0])
	out := in
	if len(args) == 2 {
		out = openFile(args[1])
	}

	old, err := in.LoadLegacy()
	if errors.Is(err, legacy.ErrNotLegacy) {
		return fmt.Errorf("%s is already in the current format", in.Path())
	}
	if err != nil {
		return fmt.Errorf("load %s: %w", in.Path(), err)
	}

	probe := hostProbe()
	s := system.Migrate(old, probe)
	if old.MemorySize%(1<<20) != 0 {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: memory size %d bytes is not a whole number of MiB, truncated to %d MiB\n", old.MemorySize, s.MemorySize)
	}
	if old.MacPlatform != nil && s.MacPlatform() == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Warning: Mac platform data dropped, this host cannot run macOS guests")
	}

	if err := out.Save(s); err != nil {
		return fmt.Errorf("save %s: %w", out.Path(), err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Migrated %s -> %s\n", in.Path(), out.Path())
	if msg := system.FormatValidationErrors(system.Lint(s, probe)); msg != "" {
		fmt.Fprint(cmd.ErrOrStderr(), msg)
	}
	return nil
}
