package bootstrap

import (
	"errors"
	"io"
	"strings"

	"github.com/sfp-labs/sfp/internal/failure"
)

// readLine returns one line from r without its line terminator. It reads a
// byte at a time so nothing past the newline is consumed; the rest of r stays
// available to the child processes that share it. End of input before any
// text yields "", which the caller rejects as an empty name.
func readLine(r io.Reader) (string, error) {
	if r == nil {
		return "", nil
	}
	var line strings.Builder
	buf := make([]byte, 1)
	for {
		n, err := r.Read(buf)
		if n > 0 {
			if buf[0] == '\n' {
				break
			}
			line.WriteByte(buf[0])
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", failure.New(failure.InputFailed, err)
		}
	}
	return strings.TrimSuffix(line.String(), "\r"), nil
}
