package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/faizmokh/ublog/internal/editor"
	"github.com/faizmokh/ublog/internal/files"
	"github.com/faizmokh/ublog/internal/journal"
	"github.com/faizmokh/ublog/internal/logging"
	"github.com/faizmokh/ublog/internal/ui"
)

var errorLabel = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))

func newLogger(cmd *cobra.Command, opts *options) (*slog.Logger, error) {
	return logging.New(logging.Options{
		Level:  opts.logLevel,
		Format: opts.logFormat,
		Output: cmd.ErrOrStderr(),
	})
}

// chooseEditor returns the inline composer when asked for, or when no external
// editor exists but a person is at the terminal.
func chooseEditor(cmd *cobra.Command, inline bool) (journal.Editor, error) {
	if inline {
		return &ui.Composer{Input: cmd.InOrStdin(), Output: cmd.OutOrStdout()}, nil
	}

	ext, err := editor.Resolve()
	if err != nil {
		if errors.Is(err, editor.ErrNoEditor) && isTerminal(cmd.InOrStdin()) {
			return &ui.Composer{Input: cmd.InOrStdin(), Output: cmd.OutOrStdout()}, nil
		}
		return nil, err
	}
	ext.Stdin = cmd.InOrStdin()
	ext.Stdout = cmd.OutOrStdout()
	ext.Stderr = cmd.ErrOrStderr()
	return ext, nil
}

func resolveConfigPath(flag string) (string, error) {
	if flag == "" {
		return files.ConfigPath()
	}
	return files.ExpandPath(flag)
}

func isTerminal(stream any) bool {
	f, ok := stream.(*os.File)
	if !ok {
		return false
	}
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

func printError(w io.Writer, err error) {
	label := "error:"
	if isTerminal(w) {
		label = errorLabel.Render(label)
	}
	fmt.Fprintf(w, "%s %v\n", label, err)
}
