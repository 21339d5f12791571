// Package runtimetest provides a scripted runtime.Runner for tests.
package runtimetest

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/sfp-labs/sfp/internal/runtime"
)

// Response scripts the outcome of one command line.
type Response struct {
	ExitCode int
	Stdout   string
	Stderr   string
	// StartErr makes the runner fail as if the executable could not start.
	StartErr error
	// NoStdin makes Process.Stdin fail after a successful start.
	NoStdin bool
	// OnInput runs with whatever was written to stdin, after it is closed.
	OnInput func(input string)
}

// FakeRunner answers commands from a table keyed by the full command line
// ("pip show numpy"). Unscripted commands exit 0 with no output.
type FakeRunner struct {
	mu        sync.Mutex
	responses map[string]Response
	calls     []string
	inputs    map[string]string
}

// NewFakeRunner returns an empty FakeRunner.
func NewFakeRunner() *FakeRunner {
	return &FakeRunner{
		responses: make(map[string]Response),
		inputs:    make(map[string]string),
	}
}

// On scripts the response for a command line.
func (f *FakeRunner) On(cmdline string, resp Response) *FakeRunner {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.responses[cmdline] = resp
	return f
}

// Calls returns every command line run so far, in order.
func (f *FakeRunner) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.calls...)
}

// Called reports whether cmdline was run.
func (f *FakeRunner) Called(cmdline string) bool {
	for _, c := range f.Calls() {
		if c == cmdline {
			return true
		}
	}
	return false
}

// Input returns what was written to the stdin of cmdline.
func (f *FakeRunner) Input(cmdline string) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inputs[cmdline]
}

func (f *FakeRunner) record(name string, args []string) (string, Response) {
	cmdline := strings.Join(append([]string{name}, args...), " ")
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, cmdline)
	return cmdline, f.responses[cmdline]
}

func (f *FakeRunner) run(name string, args []string) (*runtime.Output, error) {
	_, resp := f.record(name, args)
	if resp.StartErr != nil {
		return nil, fmt.Errorf("executing %s: %w", name, resp.StartErr)
	}
	return &runtime.Output{ExitCode: resp.ExitCode, Stdout: resp.Stdout, Stderr: resp.Stderr}, nil
}

// Capture implements runtime.Runner.
func (f *FakeRunner) Capture(_ context.Context, name string, args ...string) (*runtime.Output, error) {
	return f.run(name, args)
}

// Stream implements runtime.Runner.
func (f *FakeRunner) Stream(_ context.Context, name string, args ...string) (*runtime.Output, error) {
	return f.run(name, args)
}

// Start implements runtime.Runner.
func (f *FakeRunner) Start(_ context.Context, name string, args ...string) (runtime.Process, error) {
	cmdline, resp := f.record(name, args)
	if resp.StartErr != nil {
		return nil, fmt.Errorf("starting %s: %w", name, resp.StartErr)
	}
	return &fakeProcess{runner: f, cmdline: cmdline, resp: resp}, nil
}

type fakeProcess struct {
	runner  *FakeRunner
	cmdline string
	resp    Response
	stdin   stdinBuffer
}

type stdinBuffer struct {
	bytes.Buffer
	closed bool
}

func (b *stdinBuffer) Close() error {
	b.closed = true
	return nil
}

func (p *fakeProcess) Stdin() (io.WriteCloser, error) {
	if p.resp.NoStdin {
		return nil, errors.New("stdin not available")
	}
	return &p.stdin, nil
}

func (p *fakeProcess) Stderr() io.Reader {
	return strings.NewReader(p.resp.Stderr)
}

func (p *fakeProcess) Wait() (int, error) {
	input := p.stdin.String()
	p.runner.mu.Lock()
	p.runner.inputs[p.cmdline] = input
	p.runner.mu.Unlock()
	if p.resp.OnInput != nil && !p.resp.NoStdin {
		p.resp.OnInput(input)
	}
	return p.resp.ExitCode, nil
}
