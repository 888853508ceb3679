package journal

import (
	"context"
	"errors"
	"io"
	"os/exec"

	"github.com/faizmokh/ublog/internal/failure"
)

// RunScript launches the publish script with no arguments, wired to the given
// streams, and blocks until it exits.
func RunScript(ctx context.Context, script string, stdin io.Reader, stdout, stderr io.Writer) error {
	cmd := exec.CommandContext(ctx, script)
	cmd.Stdin = stdin
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Start(); err != nil {
		return failure.WithPath(failure.ScriptStart, script, err)
	}

	err := cmd.Wait()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if !errors.As(err, &exitErr) {
		// Wait failed before the process state was known, e.g. copying stdio.
		return failure.WithPath(failure.ScriptStart, script, err)
	}

	state := exitErr.ProcessState
	if !state.Exited() {
		return failure.WithPath(failure.ScriptTerminated, script, errors.New(state.String()))
	}
	return failure.ExitStatus(state.ExitCode())
}
