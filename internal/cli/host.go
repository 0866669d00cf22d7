package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/javanstorm/vzconf/internal/config"
	"github.com/javanstorm/vzconf/internal/host"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Show host capabilities used for defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		p := hostProbe()
		w := cmd.OutOrStdout()

		version := "unknown"
		if v := p.ProductVersion(); v != nil {
			version = v.String()
		}
		fmt.Fprintf(w, "Architecture:      %s\n", p.Architecture())
		fmt.Fprintf(w, "OS:                %s\n", p.OS())
		fmt.Fprintf(w, "macOS version:     %s\n", version)
		fmt.Fprintf(w, "Performance cores: %d\n", p.PerformanceCoreCount())
		fmt.Fprintf(w, "Physical cores:    %d\n", p.PhysicalCoreCount())
		configFile := config.ConfigFileUsed()
		if configFile == "" {
			configFile = "none (defaults and environment)"
		}
		fmt.Fprintf(w, "Config file:       %s\n", configFile)
		for _, f := range []host.Feature{host.MacGuest, host.GenericPlatform} {
			status := "supported"
			if err := host.Check(p, f); err != nil {
				status = err.Error()
			}
			fmt.Fprintf(w, "%-18s %s\n", f.String()+":", status)
		}
		return nil
	},
}
