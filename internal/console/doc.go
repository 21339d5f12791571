// Package console renders severity-tagged lines for the interactive bootstrap.
// Severity is passed explicitly with every message and selects a lipgloss
// style; colors are only emitted when the destination is a terminal.
package console
