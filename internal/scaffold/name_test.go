package scaffold

import (
	"testing"

	"github.com/sfp-labs/sfp/internal/failure"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"My Project.1", "My_Project_1"},
		{"my-project", "my_project"},
		{"already_ok", "already_ok"},
		{"a  b", "a__b"},
		{"café", "caf_"},
		{"日本", "__"},
		{"", ""},
		{"---", "___"},
		{"Test Project", "Test_Project"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := Normalize(tt.in); got != tt.want {
				t.Errorf("Normalize(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestNormalize_Alphabet(t *testing.T) {
	inputs := []string{
		"My Project.1",
		"\x00\x01\t\n\r",
		"emoji 🚀 rocket",
		"bad \xff utf8",
		"ÀÉÎÕÜ ñ ß",
		"path/to\\thing:v2",
		"<script>alert(1)</script>",
	}
	for _, in := range inputs {
		for _, r := range Normalize(in) {
			ok := r == Separator ||
				(r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
			if !ok {
				t.Errorf("Normalize(%q) produced %q", in, r)
			}
		}
	}
}

func TestProjectName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"My Project.1", "my_project_1"},
		{"Test Project", "test_project"},
		{"  Padded Name \n", "padded_name"},
		{"DATA-2024", "data_2024"},
		{"___", "___"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ProjectName(tt.raw)
			if err != nil {
				t.Fatalf("ProjectName(%q) error: %v", tt.raw, err)
			}
			if got != tt.want {
				t.Errorf("ProjectName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestProjectName_Empty(t *testing.T) {
	for _, raw := range []string{"", "   ", "\t\n"} {
		_, err := ProjectName(raw)
		if got := failure.KindOf(err); got != failure.EmptyProjectName {
			t.Errorf("ProjectName(%q): KindOf = %v, want EmptyProjectName", raw, got)
		}
	}
}
