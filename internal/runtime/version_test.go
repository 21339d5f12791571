package runtime_test

import (
	"testing"

	"github.com/sfp-labs/sfp/internal/runtime"
)

func TestParsePythonVersion(t *testing.T) {
	tests := []struct {
		banner  string
		want    string
		wantErr bool
	}{
		{"Python 3.11.4", "3.11.4", false},
		{"Python 3.8", "3.8.0", false},
		{"3.10.12", "3.10.12", false},
		{"Python 3.13.0rc1", "3.13.0-rc1", false},
		{"Python 3.12.0b2", "3.12.0-b2", false},
		{"", "", true},
		{"Python notaversion", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.banner, func(t *testing.T) {
			v, err := runtime.ParsePythonVersion(tt.banner)
			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error, got %v", v)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got := v.String(); got != tt.want {
				t.Errorf("version = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMeetsMinimum(t *testing.T) {
	tests := []struct {
		banner string
		min    string
		want   bool
	}{
		{"Python 3.11.4", "3.8", true},
		{"Python 3.8.0", "3.8", true},
		{"Python 3.7.17", "3.8", false},
		{"Python 2.7.18", runtime.DefaultMinPython, false},
		{"Python 3.13.0rc1", "3.8", true},
	}
	for _, tt := range tests {
		t.Run(tt.banner, func(t *testing.T) {
			v, err := runtime.ParsePythonVersion(tt.banner)
			if err != nil {
				t.Fatalf("parse error: %v", err)
			}
			got, err := runtime.MeetsMinimum(v, tt.min)
			if err != nil {
				t.Fatalf("MeetsMinimum error: %v", err)
			}
			if got != tt.want {
				t.Errorf("MeetsMinimum(%s, %s) = %v, want %v", v, tt.min, got, tt.want)
			}
		})
	}
}

func TestMeetsMinimum_InvalidMinimum(t *testing.T) {
	v, _ := runtime.ParsePythonVersion("Python 3.11.4")
	if _, err := runtime.MeetsMinimum(v, "three"); err == nil {
		t.Error("expected error for invalid minimum")
	}
}
