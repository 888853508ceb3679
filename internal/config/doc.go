// Package config loads the ublog settings file.
//
// The file is TOML with four keys: target (a path or list of paths),
// time_format (a named alias or strftime pattern), header_template and
// script. Paths are tilde-expanded before they are returned, and every
// failure is reported as a failure.Error so the caller can pick an exit code.
package config
