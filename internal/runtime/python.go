package runtime

import (
	"context"
	"strings"

	"github.com/sfp-labs/sfp/internal/failure"
)

// PrefixSnippet prints the interpreter's install prefix.
const PrefixSnippet = "import sys; print(sys.prefix)"

// Interpreter is a Python executable reachable through Runner.
type Interpreter struct {
	Command string
	Runner  Runner
}

// InterpreterInfo is what Check learned about the interpreter. All of it is
// informational.
type InterpreterInfo struct {
	Command string
	Banner  string
	Prefix  string
}

// Check runs `<cmd> --version` and then queries the install prefix. A start
// failure of either call, or a non-zero exit of the first, is reported as
// failure.InterpreterNotFound. The exit status of the prefix query is not
// inspected.
func (i *Interpreter) Check(ctx context.Context) (*InterpreterInfo, error) {
	out, err := i.Runner.Capture(ctx, i.Command, "--version")
	if err != nil {
		return nil, failure.Interpreter(i.Command, err)
	}
	if !out.Success() {
		return nil, failure.Interpreter(i.Command, nil)
	}

	info := &InterpreterInfo{Command: i.Command}
	// Python 2 and some 3.x builds print the banner on stderr.
	info.Banner = strings.TrimSpace(out.Stdout)
	if info.Banner == "" {
		info.Banner = strings.TrimSpace(out.Stderr)
	}

	prefix, err := i.Runner.Capture(ctx, i.Command, "-c", PrefixSnippet)
	if err != nil {
		return nil, failure.Interpreter(i.Command, err)
	}
	info.Prefix = strings.TrimSpace(prefix.Stdout)
	return info, nil
}
