// Package testhelper provides small test-only helpers shared across the
// module's test suites.
package testhelper

import "github.com/pmezard/go-difflib/difflib"

// UnifiedDiff renders a readable unified diff between two strings, for
// linearization round-trip test failures where a raw string mismatch is
// hard to read at a glance.
func UnifiedDiff(want, got string) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  3,
	}
	return difflib.GetUnifiedDiffString(diff)
}
