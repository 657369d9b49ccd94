// Package testutils provides helpers shared by the engine's test suites.
package testutils

import (
	"github.com/sergi/go-diff/diffmatchpatch"
)

// DiffStrings returns a human-readable diff between expected and actual
// text, for failure messages in byte-exact output assertions. It returns
// the empty string when the inputs are equal.
func DiffStrings(expected, actual string) string {
	if expected == actual {
		return ""
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	return dmp.DiffPrettyText(diffs)
}
