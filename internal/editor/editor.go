package editor

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither the environment nor PATH yields an editor.
var ErrNoEditor = errors.New("no editor found; set VISUAL or EDITOR")

// fallbackEditors are tried in order when VISUAL and EDITOR are unset.
var fallbackEditors = []string{"nano", "pico", "vim", "nvim", "vi", "emacs"}

// External hands the terminal to an external editor program and returns what
// the user saved.
type External struct {
	// Command is the program followed by any fixed arguments.
	Command []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Resolve picks the editor command from VISUAL, then EDITOR, then the first
// well-known editor found on PATH.
func Resolve() (*External, error) {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(os.Getenv(key)); len(fields) > 0 {
			return NewExternal(fields...), nil
		}
	}
	for _, name := range fallbackEditors {
		if path, err := exec.LookPath(name); err == nil {
			return NewExternal(path), nil
		}
	}
	return nil, ErrNoEditor
}

// NewExternal builds an editor bound to the process's standard streams.
func NewExternal(command ...string) *External {
	return &External{
		Command: command,
		Stdin:   os.Stdin,
		Stdout:  os.Stdout,
		Stderr:  os.Stderr,
	}
}

// Edit writes initial to a temporary file, runs the editor on it and blocks
// until the editor exits. The file is removed afterwards.
func (e *External) Edit(ctx context.Context, initial string) (string, error) {
	if e == nil || len(e.Command) == 0 {
		return "", ErrNoEditor
	}

	temp, err := os.CreateTemp("", "ublog-*.md")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	path := temp.Name()
	defer os.Remove(path)

	if _, err := temp.WriteString(initial); err != nil {
		temp.Close()
		return "", fmt.Errorf("write temp file: %w", err)
	}
	if err := temp.Close(); err != nil {
		return "", fmt.Errorf("close temp file: %w", err)
	}

	args := append(append([]string{}, e.Command[1:]...), path)
	cmd := exec.CommandContext(ctx, e.Command[0], args...)
	cmd.Stdin = e.Stdin
	cmd.Stdout = e.Stdout
	cmd.Stderr = e.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("run %s: %w", e.Command[0], err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read temp file: %w", err)
	}
	return string(data), nil
}
