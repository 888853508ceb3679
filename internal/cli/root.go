package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/faizmokh/ublog/internal/config"
	"github.com/faizmokh/ublog/internal/failure"
	"github.com/faizmokh/ublog/internal/journal"
	"github.com/faizmokh/ublog/internal/version"
)

// options holds flag values shared by the root command and its subcommands.
type options struct {
	configPath string
	inline     bool
	logLevel   string
	logFormat  string
}

// NewRootCommand creates the top-level Cobra command. Running it without a
// subcommand writes and publishes a new entry.
func NewRootCommand(ctx context.Context) *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:     "ublog",
		Short:   "Write a blog entry, append it to your target files, and publish it.",
		Long:    "ublog opens an editor, prefixes what you write with a timestamped header, appends it to every configured target file, then runs your publish script.",
		Version: version.Info(),
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPost(ctx, cmd, opts)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "Configuration file (default: $UBLOG_CONFIG or ~/.ublogrc)")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "Log level: debug|info|warn|error")
	flags.StringVar(&opts.logFormat, "log-format", "text", "Log format: text|json")
	cmd.Flags().BoolVar(&opts.inline, "inline", false, "Compose the entry in the terminal instead of an external editor")

	cmd.AddCommand(
		newConfigCommand(opts),
		newVersionCommand(),
	)

	return cmd
}

func runPost(ctx context.Context, cmd *cobra.Command, opts *options) error {
	logger, err := newLogger(cmd, opts)
	if err != nil {
		return err
	}

	settings, err := config.Load(opts.configPath)
	if err != nil {
		return err
	}
	logger.Debug("loaded settings", "settings", settings)

	ed, err := chooseEditor(cmd, opts.inline)
	if err != nil {
		return failure.New(failure.Edit, err)
	}

	pipeline := journal.NewPipeline(settings, ed, logger)
	pipeline.Stdin = cmd.InOrStdin()
	pipeline.Stdout = cmd.OutOrStdout()
	pipeline.Stderr = cmd.ErrOrStderr()
	return pipeline.Run(ctx)
}

// ExecuteCommand is a thin wrapper that executes the Cobra root command.
func ExecuteCommand(ctx context.Context) error {
	return NewRootCommand(ctx).Execute()
}

// Main is a helper used by cmd/ublog/main.go to keep wiring contained in one
// package. The exit code tells calling scripts which stage failed.
func Main(ctx context.Context) {
	err := ExecuteCommand(ctx)
	if err != nil {
		printError(os.Stderr, err)
	}
	os.Exit(failure.ExitCode(err))
}
