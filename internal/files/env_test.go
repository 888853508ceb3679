package files

import (
	"errors"
	"os/user"
	"path/filepath"
	"testing"
)

func TestConfigPathHonorsUblogConfig(t *testing.T) {
	tmp := t.TempDir()
	custom := filepath.Join(tmp, "custom.toml")

	t.Setenv("UBLOG_CONFIG", custom)

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}
	if got != custom {
		t.Fatalf("ConfigPath() = %q, want %q", got, custom)
	}
}

func TestConfigPathExpandsTildeOverride(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("UBLOG_CONFIG", "~/conf/ublog.toml")

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	want := filepath.Join(home, "conf", "ublog.toml")
	if got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestConfigPathDefaultsToHomeUblogrc(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("UBLOG_CONFIG", "")

	got, err := ConfigPath()
	if err != nil {
		t.Fatalf("ConfigPath() error = %v", err)
	}

	want := filepath.Join(home, ".ublogrc")
	if got != want {
		t.Fatalf("ConfigPath() = %q, want %q", got, want)
	}
}

func TestExpandPath(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cases := map[string]string{
		"~":                 home,
		"~/blog/index.md":   filepath.Join(home, "blog", "index.md"),
		"/srv/blog.md":      "/srv/blog.md",
		"relative/entry.md": "relative/entry.md",
	}
	for input, want := range cases {
		got, err := ExpandPath(input)
		if err != nil {
			t.Fatalf("ExpandPath(%q) error = %v", input, err)
		}
		if got != want {
			t.Fatalf("ExpandPath(%q) = %q, want %q", input, got, want)
		}
	}
}

func TestExpandPathNamedUser(t *testing.T) {
	current, err := user.Current()
	if err != nil || current.Username == "" || current.HomeDir == "" {
		t.Skip("current user not resolvable")
	}

	got, err := ExpandPath("~" + current.Username + "/notes.md")
	if err != nil {
		t.Fatalf("ExpandPath error = %v", err)
	}
	want := filepath.Join(current.HomeDir, "notes.md")
	if got != want {
		t.Fatalf("ExpandPath = %q, want %q", got, want)
	}
}

func TestExpandPathUnknownUser(t *testing.T) {
	_, err := ExpandPath("~no-such-ublog-user-42/notes.md")
	if err == nil {
		t.Fatal("expected error for unknown user")
	}
	var unknown user.UnknownUserError
	if !errors.Is(err, ErrUnknownUser) && !errors.As(err, &unknown) {
		t.Logf("lookup failed with %v", err)
	}
}
