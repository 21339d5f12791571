// Package bootstrap runs the project bootstrap as a linear pipeline: verify
// the interpreter, collect the project name, ensure the dependency list,
// scaffold the project and provision its extra folders. The first failing
// step ends the run; nothing is rolled back.
package bootstrap
