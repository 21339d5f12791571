package scaffold

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/sfp-labs/sfp/internal/failure"
	"github.com/sfp-labs/sfp/internal/runtime/runtimetest"
)

const kedroNew = "kedro new --starter=standalone-datacatalog"

func newScaffolder(fake *runtimetest.FakeRunner, dir string) *Scaffolder {
	return &Scaffolder{
		Command: DefaultCommand,
		Starter: "standalone-datacatalog",
		Runner:  fake,
		WorkDir: dir,
	}
}

func TestCreate_FeedsNameAndReturnsDir(t *testing.T) {
	dir := t.TempDir()
	fake := runtimetest.NewFakeRunner().On(kedroNew, runtimetest.Response{
		OnInput: func(input string) {
			os.Mkdir(filepath.Join(dir, "demo_project"), 0755)
		},
	})

	got, err := newScaffolder(fake, dir).Create(context.Background(), "demo_project")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if want := filepath.Join(dir, "demo_project"); got != want {
		t.Errorf("Create() = %q, want %q", got, want)
	}
	if in := fake.Input(kedroNew); in != "demo_project\n" {
		t.Errorf("stdin = %q, want %q", in, "demo_project\n")
	}
	if _, err := os.Stat(got); err != nil {
		t.Errorf("project dir missing: %v", err)
	}
}

func TestCreate_NonZeroExitCarriesStderr(t *testing.T) {
	fake := runtimetest.NewFakeRunner().On(kedroNew, runtimetest.Response{
		ExitCode: 1,
		Stderr:   "KedroCliError: starter not found\n",
	})

	_, err := newScaffolder(fake, t.TempDir()).Create(context.Background(), "demo")

	var fe *failure.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *failure.Error, got %v", err)
	}
	if fe.Kind != failure.ScaffoldFailed {
		t.Errorf("Kind = %v, want ScaffoldFailed", fe.Kind)
	}
	if fe.Message != "KedroCliError: starter not found" {
		t.Errorf("Message = %q", fe.Message)
	}
}

func TestCreate_SpawnFailure(t *testing.T) {
	fake := runtimetest.NewFakeRunner().On(kedroNew, runtimetest.Response{
		StartErr: errors.New("kedro: not found"),
	})

	_, err := newScaffolder(fake, t.TempDir()).Create(context.Background(), "demo")
	if got := failure.KindOf(err); got != failure.ScaffoldSpawnFailed {
		t.Fatalf("KindOf = %v, want ScaffoldSpawnFailed", got)
	}
}

func TestCreate_NoStdin(t *testing.T) {
	fake := runtimetest.NewFakeRunner().On(kedroNew, runtimetest.Response{
		NoStdin: true,
		Stderr:  "Aborted!",
	})

	_, err := newScaffolder(fake, t.TempDir()).Create(context.Background(), "demo")

	var fe *failure.Error
	if !errors.As(err, &fe) {
		t.Fatalf("expected *failure.Error, got %v", err)
	}
	if fe.Kind != failure.ScaffoldSpawnFailed {
		t.Errorf("Kind = %v, want ScaffoldSpawnFailed", fe.Kind)
	}
	if fe.Message != "Aborted!" {
		t.Errorf("Message = %q, want extracted stderr", fe.Message)
	}
}

func TestScaffolder_Args(t *testing.T) {
	s := &Scaffolder{Starter: "spaceflights-pandas"}
	args := s.Args()
	if len(args) != 2 || args[0] != "new" || args[1] != "--starter=spaceflights-pandas" {
		t.Errorf("Args() = %v", args)
	}
}
