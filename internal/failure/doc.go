// Package failure defines the closed set of error kinds a bootstrap run can
// end with. Each kind carries structured fields (package name, folder path,
// captured stderr) so callers branch on Kind instead of matching messages.
package failure
