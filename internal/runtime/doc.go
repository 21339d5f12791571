// Package runtime drives the external Python toolchain: the interpreter, the
// package manager, and the generic process plumbing (Runner) the scaffolder
// also uses. Every call blocks until the child process exits.
package runtime
