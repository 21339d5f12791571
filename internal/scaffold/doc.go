// Package scaffold materializes the project on disk. It normalizes the
// user-supplied project name, drives `kedro new` with that name, and creates
// the auxiliary folders inside the generated project.
package scaffold
