package files

import (
	"os"

	"github.com/faizmokh/ublog/internal/failure"
)

const filePermissions = 0o644

// entrySeparator precedes every appended entry.
var entrySeparator = []byte("\n\n\n")

// Append opens path in create-or-append mode and writes the separator followed
// by text. Existing content is never truncated. The separator and text are two
// separate writes, so a crash between them can leave only the separator behind.
func Append(path, text string) (err error) {
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, filePermissions)
	if err != nil {
		return failure.WithPath(failure.TargetFile, path, err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = failure.WithPath(failure.TargetFile, path, cerr)
		}
	}()

	if _, err := file.Write(entrySeparator); err != nil {
		return failure.WithPath(failure.TargetFile, path, err)
	}
	if _, err := file.WriteString(text); err != nil {
		return failure.WithPath(failure.TargetFile, path, err)
	}
	return nil
}
