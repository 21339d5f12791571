package scaffold

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/sfp-labs/sfp/internal/failure"
	"github.com/sfp-labs/sfp/internal/runtime"
)

// DefaultCommand is the scaffolding executable.
const DefaultCommand = "kedro"

// Scaffolder drives the interactive `kedro new` prompt.
type Scaffolder struct {
	Command string
	Starter string
	Runner  runtime.Runner
	// WorkDir is where the project directory appears; empty means ".".
	WorkDir string
}

// Args returns the command-line arguments passed to the scaffolder.
func (s *Scaffolder) Args() []string {
	return []string{"new", "--starter=" + s.Starter}
}

// Create runs the scaffolder, answers its project-name prompt with name and
// waits for it to exit. It returns the path of the generated project.
func (s *Scaffolder) Create(ctx context.Context, name string) (string, error) {
	proc, err := s.Runner.Start(ctx, s.Command, s.Args()...)
	if err != nil {
		return "", failure.Scaffold(failure.ScaffoldSpawnFailed, s.Command, "", err)
	}

	stdin, err := proc.Stdin()
	if err != nil {
		// The child has nothing to read from; let it exit before collecting
		// whatever it printed.
		_, _ = proc.Wait()
		return "", failure.Scaffold(failure.ScaffoldSpawnFailed, s.Command, runtime.ErrorText(proc), err)
	}

	_, writeErr := io.WriteString(stdin, name+"\n")
	closeErr := stdin.Close()

	code, waitErr := proc.Wait()
	if waitErr != nil {
		return "", failure.Scaffold(failure.ScaffoldFailed, s.Command, runtime.ErrorText(proc), waitErr)
	}
	if code != 0 {
		return "", failure.Scaffold(failure.ScaffoldFailed, s.Command, runtime.ErrorText(proc), nil)
	}
	// A clean exit with a failed write means the prompt was never answered.
	if writeErr != nil {
		return "", failure.Scaffold(failure.ScaffoldSpawnFailed, s.Command, runtime.ErrorText(proc),
			fmt.Errorf("writing project name: %w", writeErr))
	}
	if closeErr != nil {
		return "", failure.Scaffold(failure.ScaffoldSpawnFailed, s.Command, runtime.ErrorText(proc),
			fmt.Errorf("closing stdin: %w", closeErr))
	}

	return filepath.Join(s.workDir(), name), nil
}

func (s *Scaffolder) workDir() string {
	if s.WorkDir == "" {
		return "."
	}
	return s.WorkDir
}
