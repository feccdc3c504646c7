package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/dayx/pkg/core/config"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or generate configuration",
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			source := a.cfg.Source()
			if source == "" {
				source = "(defaults)"
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "source:         %s\n", source)
			fmt.Fprintf(out, "log level:      %s\n", a.cfg.General.LogLevel)
			fmt.Fprintf(out, "log format:     %s\n", a.cfg.General.LogFormat)
			fmt.Fprintf(out, "display format: %s\n", a.cfg.Display.Format)
			fmt.Fprintf(out, "display zone:   %s\n", a.cfg.Display.Zone)
			fmt.Fprintf(out, "color:          %t\n", a.cfg.Display.Color)
			fmt.Fprintf(out, "series count:   %d (max %d)\n", a.cfg.Series.DefaultCount, a.cfg.Series.MaxCount)
			return nil
		},
	}

	defaultCmd := &cobra.Command{
		Use:   "default",
		Short: "Print the built-in configuration as TOML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return config.WriteDefault(cmd.OutOrStdout())
		},
	}

	cmd.AddCommand(showCmd, defaultCmd)
	return cmd
}
