package testutils

import (
	"testing"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// RequireTextEqual fails the test with a character-level diff when the two
// texts differ. Used for serializer output where a plain Equal failure is
// unreadable.
func RequireTextEqual(t *testing.T, expected, actual string) {
	t.Helper()
	if expected == actual {
		return
	}
	dmp := diffmatchpatch.New()
	diffs := dmp.DiffMain(expected, actual, false)
	t.Fatalf("text mismatch (want vs got):\n%s", dmp.DiffPrettyText(diffs))
}
