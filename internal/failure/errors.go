package failure

import (
	"errors"
	"fmt"
)

// Kind enumerates every way a ublog run can fail.
type Kind uint8

const (
	// CfgFile means the configuration file could not be read.
	CfgFile Kind = iota + 1
	// TargetFile means appending to a target file failed.
	TargetFile
	// Tilde means a path with home-directory shorthand could not be expanded.
	Tilde
	// Edit means the editor could not be launched or returned no usable text.
	Edit
	// ScriptStart means the publish script could not be started.
	ScriptStart
	// ScriptNZExit means the publish script exited with a nonzero status.
	ScriptNZExit
	// ScriptTerminated means the publish script was killed by a signal.
	ScriptTerminated
	// ParseFail means the configuration file is not valid TOML.
	ParseFail
	// Invalid means the configuration document is not a table.
	Invalid
	// BadTimeFormat means time_format is present but not a string.
	BadTimeFormat
	// NoTarget means the target key is missing.
	NoTarget
	// BadTarget means target is neither a string nor an array of strings.
	BadTarget
	// NoScript means the script key is missing.
	NoScript
	// BadScript means script is not a string.
	BadScript
	// BadTemplate means header_template is present but not a string.
	BadTemplate
)

// Exit codes shared with calling automation.
const (
	CodeOK            = 0
	CodeIO            = 128
	CodeTilde         = 129
	CodeEdit          = 130
	CodeScriptStart   = 131
	CodeScriptSignal  = 132
	CodeConfiguration = 133
)

var kindMessages = map[Kind]string{
	CfgFile:          "could not read config file",
	TargetFile:       "could not write target file",
	Tilde:            "could not expand path",
	Edit:             "editor failure",
	ScriptStart:      "could not start script",
	ScriptNZExit:     "script exited with nonzero status",
	ScriptTerminated: "script terminated by signal",
	ParseFail:        "could not parse config file",
	Invalid:          "config file is invalid",
	BadTimeFormat:    "date format is invalid",
	NoTarget:         "no target files",
	BadTarget:        "target file(s) were invalid",
	NoScript:         "no script",
	BadScript:        "invalid script",
	BadTemplate:      "bad template",
}

// Error implements error so a Kind can be matched with errors.Is.
func (k Kind) Error() string {
	if msg, ok := kindMessages[k]; ok {
		return msg
	}
	return fmt.Sprintf("unknown failure kind %d", uint8(k))
}

// Code maps the kind to its process exit code. ScriptNZExit has no fixed
// code; use Error.Code to get the script's own status.
func (k Kind) Code() int {
	switch k {
	case CfgFile, TargetFile:
		return CodeIO
	case Tilde:
		return CodeTilde
	case Edit:
		return CodeEdit
	case ScriptStart:
		return CodeScriptStart
	case ScriptTerminated:
		return CodeScriptSignal
	default:
		return CodeConfiguration
	}
}

// Error is the single error type surfaced by a run. It carries only what is
// needed to render a message and pick an exit code.
type Error struct {
	Kind Kind
	// Err is the underlying cause, usually an OS error.
	Err error
	// Path names the file involved, when there is one.
	Path string
	// Status is the script exit status for ScriptNZExit.
	Status int
}

// New wraps cause under kind.
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Err: cause}
}

// WithPath wraps cause under kind and records the file it concerns.
func WithPath(kind Kind, path string, cause error) *Error {
	return &Error{Kind: kind, Err: cause, Path: path}
}

// ExitStatus reports a script that exited with the given nonzero status.
func ExitStatus(status int) *Error {
	return &Error{Kind: ScriptNZExit, Status: status}
}

func (e *Error) Error() string {
	msg := e.Kind.Error()
	if e.Kind == ScriptNZExit {
		msg = fmt.Sprintf("%s %d", msg, e.Status)
	}
	if e.Path != "" {
		msg = fmt.Sprintf("%s %s", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches a bare Kind target.
func (e *Error) Is(target error) bool {
	kind, ok := target.(Kind)
	return ok && kind == e.Kind
}

// Code returns the process exit code for the error.
func (e *Error) Code() int {
	if e.Kind == ScriptNZExit {
		return e.Status
	}
	return e.Kind.Code()
}

// ExitCode converts the outcome of a run into a process exit code. Errors
// outside the taxonomy, such as CLI usage mistakes, share the generic
// configuration code.
func ExitCode(err error) int {
	if err == nil {
		return CodeOK
	}
	var ferr *Error
	if errors.As(err, &ferr) {
		return ferr.Code()
	}
	var kind Kind
	if errors.As(err, &kind) {
		return kind.Code()
	}
	return CodeConfiguration
}
