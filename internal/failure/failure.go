package failure

import (
	"errors"
	"fmt"
)

// Kind identifies why a bootstrap step failed.
type Kind int

const (
	// Unknown is reported by KindOf for errors that are not *Error values.
	Unknown Kind = iota
	InterpreterNotFound
	EmptyProjectName
	InputFailed
	ManifestInvalid
	PackageQueryFailed
	PackageInstallFailed
	ScaffoldSpawnFailed
	ScaffoldFailed
	FolderCreationFailed
)

var kindNames = map[Kind]string{
	Unknown:              "Unknown",
	InterpreterNotFound:  "InterpreterNotFound",
	EmptyProjectName:     "EmptyProjectName",
	InputFailed:          "InputFailed",
	ManifestInvalid:      "ManifestInvalid",
	PackageQueryFailed:   "PackageQueryFailed",
	PackageInstallFailed: "PackageInstallFailed",
	ScaffoldSpawnFailed:  "ScaffoldSpawnFailed",
	ScaffoldFailed:       "ScaffoldFailed",
	FolderCreationFailed: "FolderCreationFailed",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Error is a bootstrap failure. Only the fields relevant to Kind are set.
type Error struct {
	Kind    Kind
	Package string // PackageQueryFailed, PackageInstallFailed
	Path    string // FolderCreationFailed, ManifestInvalid
	Command string // the executable that failed, when one did
	Message string // captured stderr or a short diagnostic
	Cause   error
}

func (e *Error) Error() string {
	var msg string
	switch e.Kind {
	case InterpreterNotFound:
		msg = fmt.Sprintf("python is not installed or not runnable as %q", e.Command)
	case EmptyProjectName:
		msg = "project name can't be empty"
	case InputFailed:
		msg = "reading project name"
	case ManifestInvalid:
		msg = fmt.Sprintf("invalid bootstrap manifest %s", e.Path)
	case PackageQueryFailed:
		msg = fmt.Sprintf("querying package %q", e.Package)
	case PackageInstallFailed:
		msg = fmt.Sprintf("an error occurred while trying to install %q", e.Package)
	case ScaffoldSpawnFailed:
		msg = fmt.Sprintf("failed to drive %s", e.Command)
	case ScaffoldFailed:
		msg = "can't create Kedro project"
	case FolderCreationFailed:
		msg = fmt.Sprintf("can't create the folder %s", e.Path)
	default:
		msg = "bootstrap failed"
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Cause }

// Is reports whether target is an *Error of the same Kind, so that
// errors.Is(err, &Error{Kind: ScaffoldFailed}) works.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var fe *Error
	if errors.As(err, &fe) {
		return fe.Kind
	}
	return Unknown
}

// New returns an *Error of the given kind wrapping cause (which may be nil).
func New(kind Kind, cause error) *Error {
	return &Error{Kind: kind, Cause: cause}
}

// Interpreter reports that cmd could not be run as a Python interpreter.
func Interpreter(cmd string, cause error) *Error {
	return &Error{Kind: InterpreterNotFound, Command: cmd, Cause: cause}
}

// Package reports a package-manager failure for pkg.
func Package(kind Kind, pkg string, cause error) *Error {
	return &Error{Kind: kind, Package: pkg, Cause: cause}
}

// Scaffold reports a scaffolder failure with the stderr text it produced.
func Scaffold(kind Kind, cmd, message string, cause error) *Error {
	return &Error{Kind: kind, Command: cmd, Message: message, Cause: cause}
}

// Folder reports that path could not be created.
func Folder(path string, cause error) *Error {
	return &Error{Kind: FolderCreationFailed, Path: path, Cause: cause}
}
