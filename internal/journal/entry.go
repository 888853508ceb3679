package journal

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// TimestampToken is replaced with the formatted timestamp in header templates.
const TimestampToken = "%t"

// FormatTimestamp renders t with a strftime pattern. The GNU extensions %s
// (seconds since the epoch) and %:z (offset with a colon) are resolved here
// before the remaining specifiers are handed to strftime.
func FormatTimestamp(pattern string, t time.Time) string {
	var b strings.Builder
	b.Grow(len(pattern) + 16)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		switch next := pattern[i+1]; {
		case next == 's':
			b.WriteString(strconv.FormatInt(t.Unix(), 10))
			i++
		case next == ':' && i+2 < len(pattern) && pattern[i+2] == 'z':
			b.WriteString(t.Format("-07:00"))
			i += 2
		default:
			// keep %% together so the escaped percent is not read as a specifier
			b.WriteByte('%')
			b.WriteByte(next)
			i++
		}
	}

	return strftime.Format(b.String(), t)
}

// RenderHeader replaces every occurrence of the %t token with stamp.
func RenderHeader(template, stamp string) string {
	return strings.ReplaceAll(template, TimestampToken, stamp)
}

// ComposeEntry joins header and body with a blank line. The body is kept
// exactly as the editor returned it.
func ComposeEntry(header, body string) string {
	var b strings.Builder
	b.Grow(len(header) + 2 + len(body))
	b.WriteString(header)
	b.WriteString("\n\n")
	b.WriteString(body)
	return b.String()
}
