package files

import (
	"errors"
	"fmt"
	"os"
	"os/user"
	"path/filepath"
	"strings"
)

const (
	// DefaultConfigName is the configuration file under the user's home directory.
	DefaultConfigName = "~/.ublogrc"
)

// ErrUnknownUser is returned when a ~user prefix names an account that does not exist.
var ErrUnknownUser = errors.New("unknown user")

// ConfigPath determines where ublog reads its settings, defaulting to ~/.ublogrc.
// The location can be overridden by exporting UBLOG_CONFIG.
func ConfigPath() (string, error) {
	if override, ok := os.LookupEnv("UBLOG_CONFIG"); ok {
		override = strings.TrimSpace(override)
		if override != "" {
			return ExpandPath(override)
		}
	}
	return ExpandPath(DefaultConfigName)
}

// ExpandPath resolves a leading ~ or ~user to the matching home directory.
// Paths without the shorthand are returned unchanged.
func ExpandPath(input string) (string, error) {
	if !strings.HasPrefix(input, "~") {
		return input, nil
	}

	name, rest := input[1:], ""
	if i := strings.IndexAny(name, "/"+string(filepath.Separator)); i >= 0 {
		name, rest = name[:i], name[i+1:]
	}

	var home string
	if name == "" {
		dir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		home = dir
	} else {
		account, err := user.Lookup(name)
		if err != nil {
			var unknown user.UnknownUserError
			if errors.As(err, &unknown) {
				return "", fmt.Errorf("%w %q", ErrUnknownUser, name)
			}
			return "", fmt.Errorf("lookup user %q: %w", name, err)
		}
		home = account.HomeDir
	}

	if rest == "" {
		return home, nil
	}
	return filepath.Join(home, rest), nil
}
