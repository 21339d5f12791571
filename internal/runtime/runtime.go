package runtime

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Output captures the result of a finished child process.
type Output struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the process exited with status zero.
func (o *Output) Success() bool { return o.ExitCode == 0 }

// Process is a started child whose stdin is piped to the caller.
type Process interface {
	// Stdin returns the writable end of the child's stdin, or an error when
	// no pipe could be attached.
	Stdin() (io.WriteCloser, error)
	// Stderr returns the captured error stream, or nil if none is attached.
	// It is complete only after Wait returns.
	Stderr() io.Reader
	// Wait blocks until the child exits and returns its exit code. The error
	// is non-nil only when waiting itself failed, not for non-zero exits.
	Wait() (int, error)
}

// Runner starts external commands.
type Runner interface {
	// Capture runs name to completion and buffers stdout and stderr.
	Capture(ctx context.Context, name string, args ...string) (*Output, error)
	// Stream runs name to completion, mirroring its output to the runner's
	// writers while also buffering it.
	Stream(ctx context.Context, name string, args ...string) (*Output, error)
	// Start launches name with a piped stdin.
	Start(ctx context.Context, name string, args ...string) (Process, error)
}

// ExecRunner is the os/exec backed Runner.
type ExecRunner struct {
	// Stdout and Stderr can be set for testing; defaults to os.Stdout/os.Stderr.
	Stdout io.Writer
	Stderr io.Writer
	// Stdin feeds Stream children; defaults to os.Stdin.
	Stdin io.Reader
	// Dir is the working directory for every child; empty means the
	// current directory.
	Dir string
}

// NewExecRunner returns an ExecRunner streaming to the process's own stdio.
func NewExecRunner() *ExecRunner {
	return &ExecRunner{}
}

func (r *ExecRunner) stdout() io.Writer {
	if r.Stdout == nil {
		return os.Stdout
	}
	return r.Stdout
}

func (r *ExecRunner) stderr() io.Writer {
	if r.Stderr == nil {
		return os.Stderr
	}
	return r.Stderr
}

func (r *ExecRunner) stdin() io.Reader {
	if r.Stdin == nil {
		return os.Stdin
	}
	return r.Stdin
}

func (r *ExecRunner) command(ctx context.Context, name string, args []string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = r.Dir
	return cmd
}

// Capture implements Runner.
func (r *ExecRunner) Capture(ctx context.Context, name string, args ...string) (*Output, error) {
	cmd := r.command(ctx, name, args)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	return finish(cmd.Run(), name, &stdoutBuf, &stderrBuf)
}

// Stream implements Runner.
func (r *ExecRunner) Stream(ctx context.Context, name string, args ...string) (*Output, error) {
	cmd := r.command(ctx, name, args)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdin = r.stdin()
	cmd.Stdout = io.MultiWriter(r.stdout(), &stdoutBuf)
	cmd.Stderr = io.MultiWriter(r.stderr(), &stderrBuf)

	return finish(cmd.Run(), name, &stdoutBuf, &stderrBuf)
}

// finish converts the error from exec.Cmd.Run into an Output. A non-zero
// exit is reported through Output.ExitCode, not as an error.
func finish(err error, name string, stdout, stderr *bytes.Buffer) (*Output, error) {
	output := &Output{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			output.ExitCode = exitErr.ExitCode()
			return output, nil
		}
		return output, fmt.Errorf("executing %s: %w", name, err)
	}
	return output, nil
}

// Start implements Runner. Stdout is streamed; stderr is captured so it can
// be reported when the child fails.
func (r *ExecRunner) Start(ctx context.Context, name string, args ...string) (Process, error) {
	cmd := r.command(ctx, name, args)
	cmd.Stdout = r.stdout()

	p := &execProcess{cmd: cmd}
	cmd.Stderr = &p.stderr
	p.stdin, p.stdinErr = cmd.StdinPipe()

	if err := cmd.Start(); err != nil {
		if p.stdin != nil {
			p.stdin.Close()
		}
		return nil, fmt.Errorf("starting %s: %w", name, err)
	}
	return p, nil
}

type execProcess struct {
	cmd      *exec.Cmd
	stdin    io.WriteCloser
	stdinErr error
	stderr   bytes.Buffer
}

func (p *execProcess) Stdin() (io.WriteCloser, error) {
	if p.stdinErr != nil {
		return nil, p.stdinErr
	}
	return p.stdin, nil
}

func (p *execProcess) Stderr() io.Reader { return &p.stderr }

func (p *execProcess) Wait() (int, error) {
	err := p.cmd.Wait()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return exitErr.ExitCode(), nil
		}
		return -1, err
	}
	return 0, nil
}
