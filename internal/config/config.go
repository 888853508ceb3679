package config

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"github.com/faizmokh/ublog/internal/failure"
	"github.com/faizmokh/ublog/internal/files"
)

//go:embed sample_ublogrc.toml
var sampleConfig string

// RFC2822 is the default timestamp pattern.
const RFC2822 = "%a, %e %b %Y %T %z"

// DefaultHeaderTemplate renders the bare timestamp.
const DefaultHeaderTemplate = "%t"

// timeFormatAliases maps the named time_format values to strftime patterns.
var timeFormatAliases = map[string]string{
	"ISO-8601": "%Y-%m-%dT%H:%M:%S%:z",
	"RFC-2822": RFC2822,
	"unix":     "%s",
}

// Settings is the resolved configuration for a single run. Every path has its
// home-directory shorthand expanded.
type Settings struct {
	TargetFiles    []string
	DateFormat     string
	HeaderTemplate string
	Script         string
}

// LogValue renders the settings as a structured log group.
func (s *Settings) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Any("target_files", s.TargetFiles),
		slog.String("date_format", s.DateFormat),
		slog.String("header_template", s.HeaderTemplate),
		slog.String("script", s.Script),
	)
}

// Load reads and parses the configuration at path. An empty path resolves to
// files.ConfigPath.
func Load(path string) (*Settings, error) {
	var err error
	if path == "" {
		path, err = files.ConfigPath()
	} else {
		path, err = files.ExpandPath(path)
	}
	if err != nil {
		return nil, failure.New(failure.Tilde, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.WithPath(failure.CfgFile, path, err)
	}

	return Parse(data)
}

// Parse decodes a TOML document into Settings.
func Parse(data []byte) (*Settings, error) {
	var doc any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, failure.New(failure.ParseFail, err)
	}
	table, ok := doc.(map[string]any)
	if !ok {
		return nil, failure.New(failure.Invalid, nil)
	}

	targets, err := parseTargets(table)
	if err != nil {
		return nil, err
	}

	dateFormat, err := optionalString(table, "time_format", RFC2822, failure.BadTimeFormat)
	if err != nil {
		return nil, err
	}
	if pattern, ok := timeFormatAliases[dateFormat]; ok {
		dateFormat = pattern
	}

	header, err := optionalString(table, "header_template", DefaultHeaderTemplate, failure.BadTemplate)
	if err != nil {
		return nil, err
	}

	script, err := parseScript(table)
	if err != nil {
		return nil, err
	}

	return &Settings{
		TargetFiles:    targets,
		DateFormat:     dateFormat,
		HeaderTemplate: header,
		Script:         script,
	}, nil
}

func parseTargets(table map[string]any) ([]string, error) {
	raw, ok := table["target"]
	if !ok {
		return nil, failure.New(failure.NoTarget, nil)
	}

	switch value := raw.(type) {
	case string:
		path, err := expand(value)
		if err != nil {
			return nil, err
		}
		return []string{path}, nil
	case []any:
		targets := make([]string, 0, len(value))
		for i, item := range value {
			s, ok := item.(string)
			if !ok {
				return nil, failure.New(failure.BadTarget, fmt.Errorf("target[%d] is %T, want string", i, item))
			}
			path, err := expand(s)
			if err != nil {
				return nil, err
			}
			targets = append(targets, path)
		}
		return targets, nil
	default:
		return nil, failure.New(failure.BadTarget, fmt.Errorf("target is %T, want string or array", raw))
	}
}

func parseScript(table map[string]any) (string, error) {
	raw, ok := table["script"]
	if !ok {
		return "", failure.New(failure.NoScript, nil)
	}
	s, ok := raw.(string)
	if !ok {
		return "", failure.New(failure.BadScript, fmt.Errorf("script is %T, want string", raw))
	}
	return expand(s)
}

func optionalString(table map[string]any, key, fallback string, kind failure.Kind) (string, error) {
	raw, ok := table[key]
	if !ok {
		return fallback, nil
	}
	s, ok := raw.(string)
	if !ok {
		return "", failure.New(kind, fmt.Errorf("%s is %T, want string", key, raw))
	}
	return s, nil
}

func expand(path string) (string, error) {
	expanded, err := files.ExpandPath(path)
	if err != nil {
		return "", failure.New(failure.Tilde, err)
	}
	return expanded, nil
}

// CreateSample writes the sample configuration to path, creating parent
// directories as needed.
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	return nil
}
