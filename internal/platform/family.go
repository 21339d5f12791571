package platform

import "runtime"

// Family groups operating systems by how they name the Python interpreter.
type Family int

const (
	FamilyOther Family = iota
	FamilyUnix
)

func (f Family) String() string {
	if f == FamilyUnix {
		return "unix"
	}
	return "other"
}

// FamilyOf maps a GOOS value to its Family.
func FamilyOf(goos string) Family {
	switch goos {
	case "linux", "darwin", "freebsd", "openbsd", "netbsd", "dragonfly":
		return FamilyUnix
	default:
		return FamilyOther
	}
}

// Current returns the Family of the running platform.
func Current() Family {
	return FamilyOf(runtime.GOOS)
}

// PythonCommand returns the interpreter binary name conventionally installed
// on the given family: python3 on Unix-like systems, python elsewhere.
func PythonCommand(f Family) string {
	if f == FamilyUnix {
		return "python3"
	}
	return "python"
}
