package editor

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

func TestExternalEditReturnsSavedText(t *testing.T) {
	script := writeEditorScript(t, `printf 'from the editor' >> "$1"`)

	ed := NewExternal(script)
	ed.Stdin = strings.NewReader("")
	ed.Stdout = &bytes.Buffer{}
	ed.Stderr = &bytes.Buffer{}

	got, err := ed.Edit(context.Background(), "seed: ")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got != "seed: from the editor" {
		t.Fatalf("Edit = %q", got)
	}
}

func TestExternalEditPassesFixedArguments(t *testing.T) {
	script := writeEditorScript(t, `printf '%s' "$1" > "$2"`)

	ed := NewExternal(script, "--wait")
	ed.Stdin = strings.NewReader("")

	got, err := ed.Edit(context.Background(), "")
	if err != nil {
		t.Fatalf("Edit: %v", err)
	}
	if got != "--wait" {
		t.Fatalf("Edit = %q, want the fixed argument before the file", got)
	}
}

func TestExternalEditFailsOnNonZeroExit(t *testing.T) {
	script := writeEditorScript(t, "exit 1")

	ed := NewExternal(script)
	ed.Stdin = strings.NewReader("")

	if _, err := ed.Edit(context.Background(), ""); err == nil {
		t.Fatal("expected error when the editor exits nonzero")
	}
}

func TestExternalEditMissingProgram(t *testing.T) {
	ed := NewExternal(filepath.Join(t.TempDir(), "no-such-editor"))

	if _, err := ed.Edit(context.Background(), ""); err == nil {
		t.Fatal("expected error when the editor cannot start")
	}
}

func TestResolvePrefersVisual(t *testing.T) {
	t.Setenv("VISUAL", "code --wait")
	t.Setenv("EDITOR", "vim")

	ed, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if strings.Join(ed.Command, " ") != "code --wait" {
		t.Fatalf("Command = %v", ed.Command)
	}
}

func TestResolveFallsBackToEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "hx")

	ed, err := Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if len(ed.Command) != 1 || ed.Command[0] != "hx" {
		t.Fatalf("Command = %v", ed.Command)
	}
}

func TestResolveWithoutAnyEditor(t *testing.T) {
	t.Setenv("VISUAL", "")
	t.Setenv("EDITOR", "")
	t.Setenv("PATH", t.TempDir())

	_, err := Resolve()
	if !errors.Is(err, ErrNoEditor) {
		t.Fatalf("expected ErrNoEditor, got %v", err)
	}
}

func writeEditorScript(t *testing.T, body string) string {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("editor fixtures need a POSIX shell")
	}
	path := filepath.Join(t.TempDir(), "fake-editor")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0o755); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	return path
}
