package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ublog/internal/config"
	"github.com/faizmokh/ublog/internal/failure"
)

func newConfigCommand(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the resolved configuration.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := resolveConfigPath(opts.configPath)
			if err != nil {
				return failure.New(failure.Tilde, err)
			}
			settings, err := config.Load(path)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Config path:     %s\n", path)
			for i, target := range settings.TargetFiles {
				label := "Target:"
				if i > 0 {
					label = ""
				}
				fmt.Fprintf(out, "%-16s %s\n", label, target)
			}
			fmt.Fprintf(out, "Time format:     %s\n", settings.DateFormat)
			fmt.Fprintf(out, "Header template: %s\n", settings.HeaderTemplate)
			fmt.Fprintf(out, "Script:          %s\n", settings.Script)
			return nil
		},
	}

	cmd.AddCommand(newConfigInitCommand(opts))
	return cmd
}

func newConfigInitCommand(opts *options) *cobra.Command {
	var overwrite bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Create a sample configuration file.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := resolveConfigPath(strings.TrimSpace(opts.configPath))
			if err != nil {
				return failure.New(failure.Tilde, err)
			}

			if !overwrite {
				if _, err := os.Stat(target); err == nil {
					return fmt.Errorf("config file already exists at %s (use --overwrite to replace it)", target)
				} else if !os.IsNotExist(err) {
					return fmt.Errorf("check config path: %w", err)
				}
			}

			if err := config.CreateSample(target); err != nil {
				return fmt.Errorf("create sample config: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Wrote sample configuration to %s\n", target)
			fmt.Fprintln(out, "Edit target and script before running ublog.")
			return nil
		},
	}

	cmd.Flags().BoolVar(&overwrite, "overwrite", false, "Overwrite existing configuration if present")
	return cmd
}
