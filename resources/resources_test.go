package resources_test

import (
	"testing"

	"github.com/jetsetilly/simon/resources"
	"github.com/jetsetilly/simon/test"
)

func TestJoinPath(t *testing.T) {
	pth, err := resources.JoinPath("foo/bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".simon/foo/bar/baz")

	pth, err = resources.JoinPath("foo", "bar", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".simon/foo/bar/baz")

	pth, err = resources.JoinPath("foo/bar", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".simon/foo/bar")

	pth, err = resources.JoinPath("", "baz")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".simon/baz")

	pth, err = resources.JoinPath("", "")
	test.ExpectEquality(t, err, nil)
	test.ExpectEquality(t, pth, ".simon")
}

func TestReadWrite(t *testing.T) {
	s, err := resources.Read("missing")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "")

	err = resources.Write("window", "10 20 300 400")
	test.ExpectSuccess(t, err)

	s, err = resources.Read("window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "10 20 300 400")
}

func TestJoinPathBaseOnce(t *testing.T) {
	// a path that already begins with the base path is not prefixed again
	pth, err := resources.JoinPath(".simon", "window")
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".simon/window")

	pth, err = resources.JoinPath(pth)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, pth, ".simon/window")
}
