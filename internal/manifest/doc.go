// Package manifest describes what a bootstrap installs and scaffolds: the
// ordered Python dependency list and the Kedro starter. The built-in defaults
// can be replaced by an sfp.yaml file, which is validated against an embedded
// JSON Schema before use.
package manifest
