package platform

import (
	"runtime"
	"testing"
)

func TestFamilyOf(t *testing.T) {
	tests := []struct {
		goos string
		want Family
	}{
		{"linux", FamilyUnix},
		{"darwin", FamilyUnix},
		{"freebsd", FamilyUnix},
		{"windows", FamilyOther},
		{"plan9", FamilyOther},
		{"", FamilyOther},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			if got := FamilyOf(tt.goos); got != tt.want {
				t.Errorf("FamilyOf(%q) = %v, want %v", tt.goos, got, tt.want)
			}
		})
	}
}

func TestPythonCommand(t *testing.T) {
	if got := PythonCommand(FamilyUnix); got != "python3" {
		t.Errorf("PythonCommand(FamilyUnix) = %q, want python3", got)
	}
	if got := PythonCommand(FamilyOther); got != "python" {
		t.Errorf("PythonCommand(FamilyOther) = %q, want python", got)
	}
}

func TestCurrent(t *testing.T) {
	if got, want := Current(), FamilyOf(runtime.GOOS); got != want {
		t.Errorf("Current() = %v, want %v", got, want)
	}
	if runtime.GOOS == "windows" && Current() != FamilyOther {
		t.Error("windows must map to FamilyOther")
	}
}
