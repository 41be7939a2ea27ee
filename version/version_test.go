package version_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/simon/test"
	"github.com/jetsetilly/simon/version"
)

func TestTitle(t *testing.T) {
	ver, rev, rel := version.Version()
	test.ExpectFailure(t, rel)
	test.ExpectInequality(t, ver, "")
	test.ExpectInequality(t, rev, "")
	test.ExpectSuccess(t, strings.HasPrefix(version.Title(), version.ApplicationName))
}
