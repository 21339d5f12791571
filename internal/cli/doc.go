// Package cli defines the Cobra command tree for the sfp CLI. The root
// command (and its alias `new`) runs the project bootstrap; doctor, config
// and version are read-mostly helpers. Commands only wire configuration and
// I/O; the pipeline itself lives in internal/bootstrap.
package cli
