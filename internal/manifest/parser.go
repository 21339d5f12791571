package manifest

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/sfp-labs/sfp/internal/failure"
)

// Load reads, validates and parses the manifest at path. Fields left out of
// the file keep their built-in defaults. Any problem is reported as
// failure.ManifestInvalid.
func Load(path string) (*Manifest, error) {
	data, err := readFile(path)
	if err != nil {
		return nil, invalid(path, "", err)
	}

	result, err := Validate(data)
	if err != nil {
		return nil, invalid(path, "", err)
	}
	if !result.Valid {
		return nil, invalid(path, result.Summary(), nil)
	}

	m := Default()
	var parsed Manifest
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, invalid(path, "", fmt.Errorf("parsing YAML: %w", err))
	}
	if parsed.Starter != "" {
		m.Starter = parsed.Starter
	}
	if len(parsed.Packages) > 0 {
		m.Packages = parsed.Packages
	}

	if _, err := m.Dependencies(); err != nil {
		return nil, invalid(path, "", err)
	}
	return m, nil
}

// LoadOrDefault loads path, or returns Default when path is empty.
func LoadOrDefault(path string) (*Manifest, error) {
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func invalid(path, msg string, cause error) error {
	return &failure.Error{Kind: failure.ManifestInvalid, Path: path, Message: msg, Cause: cause}
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
