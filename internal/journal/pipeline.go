package journal

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/faizmokh/ublog/internal/config"
	"github.com/faizmokh/ublog/internal/failure"
	"github.com/faizmokh/ublog/internal/files"
)

// Editor captures the body of an entry from the user.
type Editor interface {
	Edit(ctx context.Context, initial string) (string, error)
}

// Pipeline runs one blog post from editor to publish script.
type Pipeline struct {
	settings *config.Settings
	editor   Editor
	logger   *slog.Logger

	// Now supplies the wall-clock time used for the header.
	Now func() time.Time

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewPipeline wires the collaborators needed for a run. Streams default to the
// process's own standard streams.
func NewPipeline(settings *config.Settings, editor Editor, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Pipeline{
		settings: settings,
		editor:   editor,
		logger:   logger,
		Now:      time.Now,
		Stdin:    os.Stdin,
		Stdout:   os.Stdout,
		Stderr:   os.Stderr,
	}
}

// Run edits, appends, and publishes a single entry. It stops at the first
// failure; targets already written are left as they are.
func (p *Pipeline) Run(ctx context.Context) error {
	if p == nil || p.settings == nil || p.editor == nil {
		return fmt.Errorf("pipeline not initialized with settings and editor")
	}

	p.logger.Debug("opening editor")
	body, err := p.editor.Edit(ctx, "")
	if err != nil {
		return failure.New(failure.Edit, err)
	}

	entry := p.Entry(body)

	for _, target := range p.settings.TargetFiles {
		if err := files.Append(target, entry); err != nil {
			return err
		}
		p.logger.Debug("appended entry", "target", target, "bytes", len(entry))
	}

	p.logger.Debug("running publish script", "script", p.settings.Script)
	if err := RunScript(ctx, p.settings.Script, p.Stdin, p.Stdout, p.Stderr); err != nil {
		return err
	}
	p.logger.Info("entry published", "targets", len(p.settings.TargetFiles))
	return nil
}

// Entry renders the header for the current time and joins it with body.
func (p *Pipeline) Entry(body string) string {
	now := p.Now().In(time.Local)
	stamp := FormatTimestamp(p.settings.DateFormat, now)
	return ComposeEntry(RenderHeader(p.settings.HeaderTemplate, stamp), body)
}
