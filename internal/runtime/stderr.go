package runtime

import (
	"io"
	"strings"
)

// ErrorText drains the error stream of a finished process into a string.
// Invalid UTF-8 is replaced rather than rejected. A process without an error
// stream yields "".
func ErrorText(p Process) string {
	if p == nil {
		return ""
	}
	r := p.Stderr()
	if r == nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil && len(data) == 0 {
		return ""
	}
	return strings.TrimRight(strings.ToValidUTF8(string(data), "�"), " \t\r\n")
}
